package api

import (
	"fmt"
	"net/http"
)

func (a *Api) HandlerTrackEvent(w http.ResponseWriter, r *http.Request) {
	// the event payload is free-form json
	var eventData map[string]any
	err := decodeJsonBody(r.Body, &eventData)
	if err != nil {
		msg := fmt.Sprintf("invalid request payload, %s", err.Error())
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	if err := a.AnalyticsServiceConfig.Track(r.Context(), eventData); err != nil {
		handlerError(err, w)
		return
	}

	respondWithJson(w, http.StatusOK, []byte(`{"status": "tracked"}`))
}
