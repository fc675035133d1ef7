package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Yashcodes04/codementor-project/internal/service/auth_service"
	"github.com/Yashcodes04/codementor-project/middleware"
	log "github.com/sirupsen/logrus"
)

func (a *Api) HandlerLogin(w http.ResponseWriter, r *http.Request) {
	// extract user details for login
	var request auth_service.UserLoginRequest

	// decode from the json body
	err := decodeJsonBody(r.Body, &request)
	if err != nil {
		msg := fmt.Sprintf("invalid request payload, %s", err.Error())
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	// validate the user and gen a jwt token
	userLoginResponse, jwtToken, tokenExpiry, err := a.AuthServiceConfig.Login(
		r.Context(),
		request,
	)
	if err != nil {
		handlerError(err, w)
		return
	}

	responseBytes, err := json.Marshal(userLoginResponse)
	if err != nil {
		log.WithField("response", userLoginResponse).Errorf("unable to marshal login response %v", err)
		http.Error(w, "internal error. please try again later", http.StatusInternalServerError)
		return
	}

	// set jwt session cookie for browser clients. the extension stores the
	// token from the body instead
	cookie := &http.Cookie{
		Name:     middleware.KeyJwtSessionCookieName,
		Value:    jwtToken,
		Expires:  tokenExpiry,
		Path:     "/",                  // Important: Makes the cookie available across the entire site
		HttpOnly: true,                 // Crucial: Prevents JavaScript access
		Secure:   true,                 // Crucial: Only send over HTTPS
		SameSite: http.SameSiteLaxMode, // Recommended: Protects against CSRF
	}
	http.SetCookie(w, cookie)

	log.WithFields(log.Fields{
		"user_name": userLoginResponse.User.UserName,
		"email":     userLoginResponse.User.Email,
	}).Info("logged in")

	respondWithJson(w, http.StatusOK, responseBytes)
}
