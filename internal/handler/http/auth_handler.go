package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ramenku/ramenku/internal/account"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SessionResponse struct {
	ID    uuid.UUID    `json:"id"`
	Name  string       `json:"name"`
	Email string       `json:"email"`
	Role  account.Role `json:"role"`
}

func sessionResponse(sess *account.Session) SessionResponse {
	return SessionResponse{ID: sess.ID, Name: sess.Name, Email: sess.Email, Role: sess.Role}
}

type AuthHandler struct {
	accounts account.Service
	validate *validator.Validate
}

func NewAuthHandler(accounts account.Service) *AuthHandler {
	return &AuthHandler{accounts: accounts, validate: validator.New()}
}

func (h *AuthHandler) RegisterRoutes(router chi.Router) {
	router.Post("/auth/register", h.handleRegister)
	router.Post("/auth/login", h.handleLogin)
	router.Post("/auth/logout", h.handleLogout)
	router.Get("/auth/session", h.handleSession)
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var requestPayload RegisterRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&requestPayload); err != nil {
		log.Warn().Err(err).Msg("Failed to decode register request")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.validate.Struct(requestPayload); err != nil {
		respondWithValidation(w, err)
		return
	}

	sess, err := h.accounts.Register(r.Context(), requestPayload.Name, requestPayload.Email, requestPayload.Password)
	if err != nil {
		log.Error().Err(err).Msg("Failed to register account")

		var clientMessage string
		switch {
		case errors.Is(err, account.ErrEmailExists):
			clientMessage = "Email already registered"
		case errors.Is(err, account.ErrValidation):
			clientMessage = "Invalid registration input"
		default:
			clientMessage = "Failed to register"
		}

		respondWithError(w, mapErrorToStatusCode(err), clientMessage)
		return
	}

	respondWithJSON(w, http.StatusCreated, sessionResponse(sess))
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var requestPayload LoginRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&requestPayload); err != nil {
		log.Warn().Err(err).Msg("Failed to decode login request")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.validate.Struct(requestPayload); err != nil {
		respondWithValidation(w, err)
		return
	}

	sess, err := h.accounts.Login(r.Context(), requestPayload.Email, requestPayload.Password)
	if err != nil {
		var clientMessage string
		switch {
		case errors.Is(err, account.ErrNotFound):
			clientMessage = "No account with that email"
		case errors.Is(err, account.ErrInvalidCredentials):
			clientMessage = "Credentials do not match"
		default:
			log.Error().Err(err).Msg("Failed to log in")
			clientMessage = "Failed to log in"
		}

		respondWithError(w, mapErrorToStatusCode(err), clientMessage)
		return
	}

	respondWithJSON(w, http.StatusOK, sessionResponse(sess))
}

func (h *AuthHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.accounts.Logout(r.Context()); err != nil {
		log.Error().Err(err).Msg("Failed to log out")
		respondWithError(w, http.StatusInternalServerError, "Failed to log out")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) handleSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.accounts.CurrentSession(r.Context())
	if err != nil {
		if errors.Is(err, account.ErrNoSession) {
			respondWithError(w, http.StatusUnauthorized, "Not signed in")
			return
		}
		log.Error().Err(err).Msg("Failed to read current session")
		respondWithError(w, http.StatusInternalServerError, "Failed to read session")
		return
	}

	respondWithJSON(w, http.StatusOK, sessionResponse(sess))
}
