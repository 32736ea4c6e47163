package http

import (
	"encoding/json"
	"net/http"

	"github.com/festivize/festivize/internal/logger"
	"github.com/festivize/festivize/internal/utils"
	"github.com/festivize/festivize/models"
)

// login exchanges credentials for a signed bearer token.
func (h *HTTPHandler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, "invalid request body", http.StatusBadRequest)
		return
	}

	token, err := h.services.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	log.Info().Str("email", req.Email).Msg("user logged in")
	_, _ = utils.WriteJSON(w, models.LoginResponse{
		AccessToken: token.String(),
		Message:     "login successful",
	}, http.StatusOK)
}

// register creates an account. It never returns a token: the client must log
// in explicitly afterwards.
func (h *HTTPHandler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, "invalid request body", http.StatusBadRequest)
		return
	}

	_, err := h.services.Auth.Register(r.Context(), models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "registration successful"}, http.StatusCreated)
}
