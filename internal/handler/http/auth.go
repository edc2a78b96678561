package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/med-cabinet/internal/logger"
	"github.com/MKhiriev/med-cabinet/internal/service"
	"github.com/MKhiriev/med-cabinet/internal/store"
	"github.com/MKhiriev/med-cabinet/internal/utils"
	"github.com/MKhiriev/med-cabinet/internal/validators"
	"github.com/MKhiriev/med-cabinet/models"
)

// Verbatim client-facing messages of the account endpoints.
const (
	msgUserRegistered     = "User registered successfully!"
	msgEmailAlreadyExists = "Email already exists."
	msgUserLoggedIn       = "User logged in successfully"
	msgInvalidCredentials = "Invalid credentials"
	msgInvalidJSON        = "Invalid JSON was passed"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	_, err := h.services.AuthService.SignUp(ctx, user)
	if err != nil {
		var validationErrs validators.ValidationErrors
		switch {
		case errors.As(err, &validationErrs):
			log.Err(err).Msg("signup validation failed")
			utils.WriteJSON(w, models.ValidationErrorsResponse{Errors: validationErrs.Messages()}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Str("email", user.Email).Msg("email already exists")
			utils.WriteJSON(w, models.MessageResponse{Message: msgEmailAlreadyExists}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgUserRegistered}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email := r.URL.Query().Get("email")
	password := r.URL.Query().Get("Password")

	foundUser, err := h.services.AuthService.Login(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Str("email", email).Msg("invalid credentials")
			utils.WriteJSON(w, models.MessageResponse{Message: msgInvalidCredentials}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{Message: msgUserLoggedIn, Token: token.SignedString}, http.StatusOK)
}
