package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/construction-sites/crm/internal/entity"
	"github.com/construction-sites/crm/internal/usecase"
)

type AuthHandler struct {
	Auth *usecase.AuthService
}

func NewAuthHandler(auth *usecase.AuthService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

type LoginRequest struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

type LoginUser struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON")
		return
	}

	if req.User == "" || req.Password == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_FIELDS", "user and password are required")
		return
	}

	token, operator, err := h.Auth.Login(r.Context(), req.User, req.Password)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidCredentials) {
			writeErrorResponse(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid user or password")
			return
		}
		log.Error().Err(err).Str("user", req.User).Msg("login failed")
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "something went wrong")
		return
	}

	writeJSONResponse(w, http.StatusOK, LoginResponse{
		Token: token,
		User: LoginUser{
			ID:    operator.ID,
			Label: operator.Label,
			Role:  string(operator.Role),
		},
	})
}
