package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"dropx/internal/storage"
	"github.com/go-chi/render"
)

type UserLister interface {
	ListUsers(ctx context.Context) ([]storage.User, error)
}

func GetUsers(log *slog.Logger, users UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.users.get.GetUsers"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		result, err := users.ListUsers(ctx)
		if err != nil {
			log.Error("failed to list users", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		if result == nil {
			result = []storage.User{}
		}

		render.JSON(w, r, result)
	}
}
