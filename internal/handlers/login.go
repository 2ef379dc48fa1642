package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skuznetsov2019/gw-auth-service/internal/logger"
	"github.com/skuznetsov2019/gw-auth-service/internal/services"
)

// Loginer defines the interface the login handler needs from the service.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// example: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// example: securePassword123
	Password string `json:"password"`
}

// NewLoginHandler returns an HTTP handler for user login. On success
// the response body is the raw JWT.
// @Summary User login
// @Description Authenticate user and return a signed JWT
// @Tags auth
// @Accept json
// @Produce plain
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {string} string "Signed JWT"
// @Failure 400 {string} string "Malformed request body"
// @Failure 401 {string} string "Invalid username or password"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				http.Error(w, "Invalid username or password", http.StatusUnauthorized)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(token))
	}
}
