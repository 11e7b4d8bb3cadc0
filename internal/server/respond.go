package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/VladyslavHaiko/moviegraph/internal/apperr"
)

// errorBody is the uniform error envelope: the HTTP status mirrored in the
// body plus a client-safe message.
type errorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorBody{Status: status, Message: msg})
}

// writeFailure is the terminal error handler: tagged errors render with their
// own status, store failures and anything untagged collapse into a generic
// 500. Raw engine messages never reach the client.
func writeFailure(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	e := apperr.From(err)
	if e == nil || e.Kind == apperr.KindStore {
		logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeError(w, e.Status, e.Message)
}

func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}
