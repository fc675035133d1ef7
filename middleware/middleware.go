package middleware

/*
	context key types are used to avoid conflicts when sharing data via contexts
	visit https://vld.bg/articles/go-context-type/ for more info
*/

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/Yashcodes04/codementor-project/internal/service"
	"github.com/golang-jwt/jwt/v4"
	log "github.com/sirupsen/logrus"
)

const (
	KeyJwtSessionCookieName = "jwt_session"
)

// JWTMiddleware authenticates the request before passing it to the handler.
// The token is taken from the Authorization bearer header (the extension
// client) or the jwt_session cookie (browser sessions) and its claims are
// placed on the request context.
func JWTMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r)
		if tokenString == "" {
			if cookie, err := r.Cookie(KeyJwtSessionCookieName); err == nil {
				tokenString = cookie.Value
			}
		}
		if tokenString == "" {
			http.Error(w, "missing credentials", http.StatusUnauthorized)
			return
		}

		var claims service.UserCredentialClaims
		token, err := jwt.ParseWithClaims(
			tokenString,
			&claims,
			func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}
				return []byte(os.Getenv(service.KeyJWTSecret)), nil
			},
		)
		if err != nil || !token.Valid {
			log.Warnf("rejected request with invalid token, %v", err)
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), service.KeyCtxUserCredClaims, claims)
		next(w, r.WithContext(ctx))
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
