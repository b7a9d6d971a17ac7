package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"dropx/internal/storage"
	"github.com/go-chi/render"
)

type AdjustmentLister interface {
	ListAdjustments(ctx context.Context, year, month int) ([]storage.Adjustment, error)
}

// GetAdjustments lists one month's adjustments:
// GET /api/adjustments?month=YYYY-MM
func GetAdjustments(log *slog.Logger, adjustments AdjustmentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.adjustments.get.GetAdjustments"

		month := r.URL.Query().Get("month")
		if month == "" {
			http.Error(w, "month (YYYY-MM) is required", http.StatusBadRequest)
			return
		}
		parsed, err := time.Parse("2006-01", month)
		if err != nil {
			http.Error(w, "Invalid month format", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		rows, err := adjustments.ListAdjustments(ctx, parsed.Year(), int(parsed.Month()))
		if err != nil {
			log.Error("failed to load adjustments", slog.String("op", op),
				slog.String("month", month), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		if rows == nil {
			rows = []storage.Adjustment{}
		}

		render.JSON(w, r, rows)
	}
}
