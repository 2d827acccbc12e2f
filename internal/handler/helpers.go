package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dwikurnia/forum-api/internal/errors"
	"github.com/dwikurnia/forum-api/internal/logger"
)

type successBody struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

type errorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeSuccess(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(successBody{Status: "success", Data: data}); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// writeError translates validation codes, maps the error taxonomy to
// status codes and keeps anything unexpected opaque to the client.
func writeError(w http.ResponseWriter, err error) {
	err = errors.Translate(err)
	statusCode := errors.StatusCode(err)

	status := "fail"
	message := err.Error()
	if statusCode >= http.StatusInternalServerError {
		logger.Log.Error("internal error", "error", err)
		status = "error"
		message = "terjadi kegagalan pada server kami"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errorBody{Status: status, Message: message}); err != nil {
		logger.Log.Error("failed to encode error response", "error", err)
	}
}
