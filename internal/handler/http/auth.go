package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/asemenov/learnhub/internal/logger"
	"github.com/asemenov/learnhub/internal/service"
	"github.com/asemenov/learnhub/internal/store"
	"github.com/asemenov/learnhub/internal/utils"
	"github.com/asemenov/learnhub/internal/validators"
	"github.com/asemenov/learnhub/models"
)

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	utils.WriteJSON(w, models.LandingResponse{
		Service: "learnhub",
		Version: h.services.AppInfoService.Version(ctx),
	}, http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		log.Err(err).Msg("registration payload failed validation")
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided) || errors.Is(err, validators.ErrValidation):
			log.Err(err).Msg("invalid data provided")
			writeError(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			writeError(w, "email already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateSession(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of session failed")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Msg("user successfully registered")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		log.Err(err).Msg("login payload failed validation")
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid email/password")
			writeError(w, "invalid email or password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateSession(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of session failed")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, foundUser, http.StatusOK)
}

// logout destroys the session named by the bearer token. Requests without a
// token, with a malformed token, or with an already-destroyed session still
// succeed: logging out twice is not an error.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	tokenString, err := getTokenFromAuthHeader(authHeader)
	if err != nil {
		log.Debug().Err(err).Msg("logout with unparseable header")
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := h.services.AuthService.Logout(ctx, tokenString); err != nil {
		log.Err(err).Msg("unexpected error occurred during logout")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
