package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Yashcodes04/codementor-project/internal/mentor_errors"
	"github.com/Yashcodes04/codementor-project/internal/service/auth_service"
	log "github.com/sirupsen/logrus"
)

func (a *Api) HandlerRegister(w http.ResponseWriter, r *http.Request) {
	// extract user details for registration
	var request auth_service.UserRegistration

	// decode from the json body
	err := decodeJsonBody(r.Body, &request)
	if err != nil {
		msg := fmt.Sprintf("invalid request payload, %s", err.Error())
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	response, err := a.AuthServiceConfig.Register(r.Context(), request)
	if err != nil {
		handlerError(err, w)
		return
	}

	responseBytes, err := json.Marshal(response)
	if err != nil {
		log.WithField("user_name", request.UserName).Errorf("unable to marshal register response %v", err)
		http.Error(w, mentor_errors.ErrInternal.Error(), http.StatusInternalServerError)
		return
	}

	respondWithJson(w, http.StatusOK, responseBytes)
}
