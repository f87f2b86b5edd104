package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"ulascansenturk/weather-panel/internal/panel"

	"github.com/rs/zerolog/log"
)

var errorCodes = map[int]string{
	http.StatusBadRequest:       "BAD_REQUEST",
	http.StatusNotFound:         "NOT_FOUND",
	http.StatusMethodNotAllowed: "METHOD_NOT_ALLOWED",
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	errorCode, ok := errorCodes[code]
	if !ok {
		errorCode = "INTERNAL_ERROR"
		code = http.StatusInternalServerError
	}

	respondWithJSON(w, code, ErrorResponse{
		Errors: []Error{
			{
				Code:   errorCode,
				Detail: message,
				Status: code,
				Title:  http.StatusText(code),
			},
		},
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// writeViewEvent writes one server-sent "view" event.
func writeViewEvent(w http.ResponseWriter, view panel.View) error {
	data, err := json.Marshal(view)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "event: view\ndata: %s\n\n", data)
	return err
}
