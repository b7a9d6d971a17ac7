package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"dropx/internal/storage"
	"github.com/go-chi/render"
)

type SummaryProvider interface {
	Summary(ctx context.Context) (*storage.DashboardSummary, error)
}

func GetSummary(log *slog.Logger, dashboard SummaryProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.dashboard.get.GetSummary"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		summary, err := dashboard.Summary(ctx)
		if err != nil {
			log.Error("failed to load dashboard", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, summary)
	}
}
