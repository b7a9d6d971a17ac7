package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"dropx/internal/storage"
	"github.com/go-chi/render"
)

type PayrollAggregator interface {
	Aggregate(ctx context.Context, year, month int) ([]storage.PayrollRow, error)
}

// GetPayroll returns the aggregated month for every employee:
// GET /api/payroll?month=YYYY-MM
func GetPayroll(log *slog.Logger, payroll PayrollAggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.payroll.get.GetPayroll"

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

		rows, err := payroll.Aggregate(ctx, parsed.Year(), int(parsed.Month()))
		if err != nil {
			log.Error("failed to compute payroll", slog.String("op", op),
				slog.String("month", month), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		if rows == nil {
			rows = []storage.PayrollRow{}
		}

		render.JSON(w, r, rows)
	}
}
