package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"dropx/internal/middleware/auth"
	"dropx/internal/storage"
	"github.com/go-chi/render"
)

type IncomeAggregator interface {
	Summary(ctx context.Context, userID int64, from, to string) (*storage.WorkerSummary, error)
	Monthly(ctx context.Context, userID int64) ([]storage.MonthlyIncome, error)
}

// GetSummary returns the calling worker's own entries and total income:
// GET /api/worker/summary?from=YYYY-MM-DD&to=YYYY-MM-DD (both optional,
// inclusive).
func GetSummary(log *slog.Logger, income IncomeAggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.worker.get.GetSummary"

		claims, ok := auth.FromContext(r.Context())
		if !ok {
			http.Error(w, "Unauthenticated", http.StatusUnauthorized)
			return
		}

		from := r.URL.Query().Get("from")
		to := r.URL.Query().Get("to")
		for _, d := range []string{from, to} {
			if d == "" {
				continue
			}
			if _, err := time.Parse("2006-01-02", d); err != nil {
				http.Error(w, "from/to must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		summary, err := income.Summary(ctx, claims.UserID, from, to)
		if err != nil {
			log.Error("failed to load worker summary", slog.String("op", op),
				slog.Int64("user_id", claims.UserID), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, summary)
	}
}

// GetMonthly returns the worker's income per calendar month, oldest first.
func GetMonthly(log *slog.Logger, income IncomeAggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.worker.get.GetMonthly"

		claims, ok := auth.FromContext(r.Context())
		if !ok {
			http.Error(w, "Unauthenticated", http.StatusUnauthorized)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		months, err := income.Monthly(ctx, claims.UserID)
		if err != nil {
			log.Error("failed to load worker monthly income", slog.String("op", op),
				slog.Int64("user_id", claims.UserID), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, months)
	}
}
