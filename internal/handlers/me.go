package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/skuznetsov2019/gw-auth-service/internal/logger"
	"github.com/skuznetsov2019/gw-auth-service/internal/middlewares"
	"github.com/skuznetsov2019/gw-auth-service/internal/models"
	"github.com/skuznetsov2019/gw-auth-service/internal/services"
)

// IdentityProvider resolves the authenticated caller's user record.
type IdentityProvider interface {
	Identity(ctx context.Context, username string) (*models.UserDB, error)
}

// MeResponse is the authenticated caller's profile. The password hash
// is never part of it.
// swagger:model MeResponse
type MeResponse struct {
	// User ID
	ID uuid.UUID `json:"id"`

	// Username
	// example: john_doe
	Username string `json:"username"`

	// Email
	// example: john@example.com
	Email string `json:"email"`
}

// NewMeHandler returns an HTTP handler for the current-user profile.
// @Summary Current user profile
// @Description Returns the profile of the user identified by the bearer token
// @Tags users
// @Produce json
// @Success 200 {object} handlers.MeResponse "Caller profile"
// @Failure 401 {string} string "Unauthenticated"
// @Security BearerAuth
// @Router /api/v1/me [get]
func NewMeHandler(svc IdentityProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := middlewares.GetUsernameFromContext(r.Context())
		if username == "" {
			http.Error(w, "Unauthenticated", http.StatusUnauthorized)
			return
		}

		user, err := svc.Identity(r.Context(), username)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				// Token subject no longer resolves to a user.
				http.Error(w, "Unauthenticated", http.StatusUnauthorized)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MeResponse{
			ID:       user.UserID,
			Username: user.Username,
			Email:    user.Email,
		})
	}
}
