package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skuznetsov2019/gw-auth-service/internal/logger"
	"github.com/skuznetsov2019/gw-auth-service/internal/services"
)

// Registerer defines the interface the signup handler needs from the service.
type Registerer interface {
	Register(ctx context.Context, username, password, email string) error
}

// SignupRequest represents the JSON body for user registration
// swagger:model SignupRequest
type SignupRequest struct {
	// Username
	// required: true
	// example: john_doe
	Username string `json:"username"`

	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: securePassword123
	Password string `json:"password"`
}

// NewSignupHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with a unique username. The password is bcrypt-hashed before storing.
// @Tags auth
// @Accept json
// @Produce plain
// @Param signupRequest body handlers.SignupRequest true "User registration request"
// @Success 200 {string} string "User registered successfully"
// @Failure 400 {string} string "Malformed request body"
// @Failure 409 {string} string "Username is already taken"
// @Router /auth/signup [post]
func NewSignupHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if req.Username == "" || req.Email == "" || req.Password == "" {
			http.Error(w, "username, email and password are required", http.StatusBadRequest)
			return
		}

		if err := svc.Register(r.Context(), req.Username, req.Password, req.Email); err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				http.Error(w, "Username is already taken", http.StatusConflict)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("User registered successfully"))
	}
}
