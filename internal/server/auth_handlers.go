package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/example/coffee-pos/internal/auth"
	"github.com/example/coffee-pos/internal/store"
)

// LoginRequest is the login request body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the successful login response.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Login authenticates a staff member and issues an access token.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.store.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondJSONError(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		respondJSONError(w, "Internal error", http.StatusInternalServerError)
		return
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		respondJSONError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, _, err := h.jwt.GenerateToken(user.Username)
	if err != nil {
		respondJSONError(w, "Internal error", http.StatusInternalServerError)
		return
	}

	log.Printf("[API] Login: %s", user.Username)
	respondJSON(w, http.StatusOK, LoginResponse{Token: token, Username: user.Username})
}
