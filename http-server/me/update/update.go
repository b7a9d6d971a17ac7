package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"dropx/internal/middleware/auth"
	"dropx/internal/storage"
	"github.com/go-chi/render"
)

type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, id int64, req storage.UpdateProfile) error
	UserByID(ctx context.Context, id int64) (*storage.User, error)
}

// UpdateMe lets a user edit the safe subset of their own profile and
// returns the refreshed row. Role and active flag stay admin-only.
func UpdateMe(log *slog.Logger, users ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.me.update.UpdateMe"

		claims, ok := auth.FromContext(r.Context())
		if !ok {
			http.Error(w, "Unauthenticated", http.StatusUnauthorized)
			return
		}

		var req storage.UpdateProfile
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}
		if req.Name == nil && req.Age == nil && req.Gender == nil && req.Phone == nil &&
			req.BankAccount == nil && req.IFSC == nil && req.PhotoURL == nil {
			http.Error(w, "No valid fields to update", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := users.UpdateProfile(ctx, claims.UserID, req); err != nil {
			log.Error("failed to update profile", slog.String("op", op),
				slog.Int64("user_id", claims.UserID), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		user, err := users.UserByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "User not found", http.StatusNotFound)
				return
			}
			log.Error("failed to reload profile", slog.String("op", op),
				slog.Int64("user_id", claims.UserID), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, user)
	}
}
