// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/platewise/platewise/pkg/errors"
	"go.uber.org/zap"
)

// APIResponse is the success envelope; failures are written as
// errors.ErrorResponse by writeError.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

// writeError maps an error to its HTTP status and writes the failure
// response. Unknown errors become opaque 500s; AppError details are
// safe to surface. The request ID is echoed so a failure report can be
// matched against the request log.
func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.NewInternalError("An unexpected error occurred")
		logger.Error("Unhandled error", zap.Error(err))
	}

	writeJSON(w, logger, appErr.StatusCode(),
		errors.ToErrorResponse(appErr, chimiddleware.GetReqID(r.Context())))
}
