package respond

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-paystack-wallet/internal/apperrors"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/logger"
)

// ErrorResponse is the body of every error reply.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Stable error code
	// example: invalid_input
	Error string `json:"error"`

	// Human readable message
	// example: amount must be greater than 0
	Message string `json:"message"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

// Error writes the domain error wrapped in err.
// Errors outside the taxonomy are logged and reported as internal errors.
func Error(w http.ResponseWriter, err error) {
	appErr, ok := apperrors.From(err)
	if !ok {
		logger.Log.Errorw("internal server error", "error", err)
	}
	JSON(w, appErr.Status, ErrorResponse{
		Error:   appErr.Code,
		Message: appErr.Message,
	})
}
