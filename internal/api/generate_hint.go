package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Yashcodes04/codementor-project/internal/mentor_errors"
	"github.com/Yashcodes04/codementor-project/internal/service/hint_service"
	log "github.com/sirupsen/logrus"
)

func (a *Api) HandlerGenerateHint(w http.ResponseWriter, r *http.Request) {
	// decode hint request from body
	var request hint_service.HintRequest
	err := decodeJsonBody(r.Body, &request)
	if err != nil {
		msg := fmt.Sprintf("invalid request payload, %s", err.Error())
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	response, err := a.HintServiceConfig.GenerateHint(r.Context(), request)
	if err != nil {
		handlerError(err, w)
		return
	}

	// marshal
	responseBytes, err := json.Marshal(response)
	if err != nil {
		log.Errorf("cannot marshal hint response, %v", err)
		http.Error(w, mentor_errors.ErrInternal.Error(), http.StatusInternalServerError)
		return
	}

	respondWithJson(w, http.StatusOK, responseBytes)
}
