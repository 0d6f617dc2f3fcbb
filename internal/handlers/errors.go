package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/vastram/retail_pos_backend/internal/apperrors"
)

// ErrorResponse is the generic error body returned by all handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// bindingErrorMessage turns a gin binding failure into a client-facing
// message. Field-level validation failures are listed per field; anything
// else (malformed JSON, wrong types) gets a generic message.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed on %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	return "Invalid request: " + strings.Join(parts, "; ")
}

// respondBindingError writes the 400 for a request that failed binding.
func respondBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
}

// statusForError maps service errors to HTTP status codes. Sentinel matches
// surface the service message; anything unmatched is a 500 and the caller
// should substitute a generic message.
func statusForError(err error) (int, bool) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, true
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, true
	case errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrStateConflict),
		errors.Is(err, apperrors.ErrInsufficientStock):
		return http.StatusConflict, true
	case errors.Is(err, apperrors.ErrUnderpayment),
		errors.Is(err, apperrors.ErrOverpayNotConfirmed),
		errors.Is(err, apperrors.ErrCustomerRequired):
		return http.StatusUnprocessableEntity, true
	case errors.Is(err, apperrors.ErrBackendUnavailable):
		return http.StatusServiceUnavailable, true
	}
	return http.StatusInternalServerError, false
}

// respondServiceError writes the mapped error response. Unknown errors get
// the fallback message so internals never leak to clients.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status, known := statusForError(err)
	if known {
		logger.Warn(fallback, slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	logger.Error(fallback, slog.String("error", err.Error()))
	c.JSON(status, ErrorResponse{Error: fallback})
}
