package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/mhpenta/sdprompt"
)

var validate = validator.New()

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return validate.Struct(v)
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError maps err to a status and writes the error body. Server
// errors are logged at ERROR, client errors at DEBUG.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := classify(err)
	body.TraceID = TraceID(r.Context())

	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	s.logger.Log(r.Context(), level, "API error response",
		"trace_id", body.TraceID,
		"path", r.URL.Path,
		"status_code", status,
		"error", err.Error(),
	)

	respondJSON(w, status, body)
}

func classify(err error) (int, errorResponse) {
	switch {
	case errors.Is(err, sdprompt.ErrEmptyKeyword):
		return http.StatusBadRequest, errorResponse{Error: "Keyword is required"}
	case errors.Is(err, sdprompt.ErrEmptyText):
		return http.StatusBadRequest, errorResponse{Error: "Text is required"}
	case errors.Is(err, sdprompt.ErrKeywordTooLong), errors.Is(err, sdprompt.ErrUnknownStyle):
		return http.StatusBadRequest, errorResponse{Error: "Invalid request", Details: err.Error()}
	case errors.Is(err, sdprompt.ErrNoProviders):
		return http.StatusInternalServerError, errorResponse{Error: "API key not configured"}
	default:
		return http.StatusInternalServerError, errorResponse{Error: "Internal server error", Details: err.Error()}
	}
}

// validationError rewrites decoder and validator failures as a 400 body.
func validationError(err error) errorResponse {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return errorResponse{Error: fe.Field() + " is required"}
		}
		return errorResponse{Error: "Invalid request", Details: fe.Error()}
	}
	return errorResponse{Error: "Invalid request body", Details: err.Error()}
}
