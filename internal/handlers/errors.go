package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"quizowl/internal/service"
	"quizowl/internal/validation"
)

type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string, fields map[string]string) {
	respondJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message, Fields: fields}})
}

// respondWithError logs err (if any) and writes a JSON error with a code
// derived from the status
func respondWithError(w http.ResponseWriter, log *zap.Logger, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		if status >= http.StatusInternalServerError {
			log.Error(logMsg, zap.Error(err))
		} else {
			log.Debug(logMsg, zap.Error(err))
		}
	}

	writeError(w, status, statusCode(status), userMsg, nil)
}

// respondWithServiceError translates a service or validation error into its
// HTTP status. Unknown errors are logged and reported as 500.
func respondWithServiceError(w http.ResponseWriter, log *zap.Logger, logMsg string, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		writeError(w, http.StatusBadRequest, "validation_failed", "Validation failed", verr.Fields)
		return
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid username or password", nil)
	case errors.Is(err, service.ErrUsernameTaken):
		writeError(w, http.StatusConflict, "username_taken", "Username already taken", nil)
	case errors.Is(err, service.ErrPermissionDenied):
		writeError(w, http.StatusForbidden, "permission_denied", "This action is not available for your account", nil)
	case errors.Is(err, service.ErrNoChildSelected):
		writeError(w, http.StatusConflict, "no_child_selected", "Select a child first", nil)
	case errors.Is(err, service.ErrQuestionNotFound):
		writeError(w, http.StatusNotFound, "question_not_found", "Question not found", nil)
	case errors.Is(err, service.ErrInvalidAnswer):
		writeError(w, http.StatusBadRequest, "invalid_answer", err.Error(), nil)
	case errors.Is(err, service.ErrInvalidSelection):
		writeError(w, http.StatusBadRequest, "invalid_selection", err.Error(), nil)
	default:
		respondWithError(w, log, http.StatusInternalServerError, ErrInternalServerError, logMsg, err)
	}
}

// decodeJSON reads a JSON body into v and validates it
func decodeJSON(r *http.Request, w http.ResponseWriter, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return validation.FieldError("body", ErrInvalidRequestBody)
	}
	return validation.Struct(v)
}

func statusCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "error"
	}
	return strings.ReplaceAll(strings.ToLower(text), " ", "_")
}
