package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"dropx/internal/middleware/auth"
	"dropx/internal/storage"
	"github.com/go-chi/render"
)

type UserProvider interface {
	UserByID(ctx context.Context, id int64) (*storage.User, error)
}

// GetMe returns the calling user's own profile.
func GetMe(log *slog.Logger, users UserProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.me.get.GetMe"

		claims, ok := auth.FromContext(r.Context())
		if !ok {
			http.Error(w, "Unauthenticated", http.StatusUnauthorized)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, err := users.UserByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "User not found", http.StatusNotFound)
				return
			}
			log.Error("failed to load profile", slog.String("op", op),
				slog.Int64("user_id", claims.UserID), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, user)
	}
}
