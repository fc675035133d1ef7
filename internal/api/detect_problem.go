package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Yashcodes04/codementor-project/internal/mentor_errors"
	"github.com/Yashcodes04/codementor-project/internal/service/problem_service"
	log "github.com/sirupsen/logrus"
)

func (a *Api) HandlerDetectProblem(w http.ResponseWriter, r *http.Request) {
	// decode problem submission from body
	var submission problem_service.ProblemSubmission
	err := decodeJsonBody(r.Body, &submission)
	if err != nil {
		msg := fmt.Sprintf("invalid request payload, %s", err.Error())
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	problem, err := a.ProblemServiceConfig.DetectProblem(r.Context(), submission)
	if err != nil {
		handlerError(err, w)
		return
	}

	// marshal the response
	responseBytes, err := json.Marshal(problem)
	if err != nil {
		log.Errorf("unable to marshal %v, %v", problem, err)
		http.Error(w, mentor_errors.ErrInternal.Error(), http.StatusInternalServerError)
		return
	}

	respondWithJson(w, http.StatusOK, responseBytes)
}
