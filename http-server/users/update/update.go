package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"dropx/internal/middleware/auth"
	"dropx/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"golang.org/x/crypto/bcrypt"
)

type UserUpdater interface {
	UpdateUser(ctx context.Context, id int64, req storage.UpdateUser) error
}

type PasswordUpdater interface {
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// UpdateUser applies partial profile/role/active changes (admin only, gated
// by the route policy).
func UpdateUser(log *slog.Logger, users UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.users.update.UpdateUser"

		userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid user id", http.StatusBadRequest)
			return
		}

		var req storage.UpdateUser
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := users.UpdateUser(ctx, userID, req); err != nil {
			log.Error("failed to update user", slog.String("op", op),
				slog.Int64("user_id", userID), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{"message": "User updated"})
	}
}

type passwordRequest struct {
	NewPassword string `json:"new_password"`
}

// UpdatePassword changes a password. Admins may change anyone's, everyone
// else only their own.
func UpdatePassword(log *slog.Logger, users PasswordUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.users.update.UpdatePassword"

		userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid user id", http.StatusBadRequest)
			return
		}

		claims, ok := auth.FromContext(r.Context())
		if !ok {
			http.Error(w, "Unauthenticated", http.StatusUnauthorized)
			return
		}
		if claims.Role != storage.RoleAdmin && claims.UserID != userID {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		var req passwordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}
		if req.NewPassword == "" {
			http.Error(w, "new_password required", http.StatusBadRequest)
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Error("failed to hash password", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := users.UpdatePassword(ctx, userID, string(hash)); err != nil {
			log.Error("failed to update password", slog.String("op", op),
				slog.Int64("user_id", userID), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{"message": "Password updated"})
	}
}
