package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/ramenku/ramenku/internal/account"
	"github.com/ramenku/ramenku/internal/cart"
	"github.com/ramenku/ramenku/internal/order"
)

type ValidationErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details"`
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		log.Error().Err(err).Msg("Failed to write JSON response")
	}
}

func formatValidationErrors(validationErrors validator.ValidationErrors) map[string]string {
	details := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		switch fieldErr.Tag() {
		case "required":
			details[fieldErr.Field()] = "is required"
		case "email":
			details[fieldErr.Field()] = "must be a valid email address"
		case "min":
			details[fieldErr.Field()] = "must be at least " + fieldErr.Param() + " characters or more"
		default:
			details[fieldErr.Field()] = "is invalid"
		}
	}
	return details
}

// respondWithValidation writes either a field-level validation response or a
// generic 500 when the error is not a validator.ValidationErrors.
func respondWithValidation(w http.ResponseWriter, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		respondWithJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:   "Validation failed",
			Details: formatValidationErrors(validationErrors),
		})
		return
	}
	log.Error().Err(err).Msg("Unexpected error type during validation")
	respondWithError(w, http.StatusInternalServerError, "Internal validation error")
}

func mapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, account.ErrValidation),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrUnknownSpiceLevel),
		errors.Is(err, cart.ErrUnknownTopping),
		errors.Is(err, cart.ErrDuplicateTopping),
		errors.Is(err, order.ErrEmptyCart),
		errors.Is(err, order.ErrUnknownPaymentMethod),
		errors.Is(err, order.ErrUnknownStatus):
		return http.StatusBadRequest
	case errors.Is(err, account.ErrInvalidCredentials), errors.Is(err, account.ErrNoSession):
		return http.StatusUnauthorized
	case errors.Is(err, account.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, account.ErrEmailExists):
		return http.StatusConflict
	case errors.Is(err, order.ErrInvalidStatusTransition):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
