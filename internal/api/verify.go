package api

import (
	"encoding/json"
	"net/http"

	"github.com/Yashcodes04/codementor-project/internal/mentor_errors"
	log "github.com/sirupsen/logrus"
)

func (a *Api) HandlerVerify(w http.ResponseWriter, r *http.Request) {
	response, err := a.AuthServiceConfig.Verify(r.Context())
	if err != nil {
		handlerError(err, w)
		return
	}

	// marshal
	responseBytes, err := json.Marshal(response)
	if err != nil {
		log.Errorf("cannot marshal %v, %v", response, err)
		http.Error(w, mentor_errors.ErrInternal.Error(), http.StatusInternalServerError)
		return
	}

	respondWithJson(w, http.StatusOK, responseBytes)
}
