package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"dropx/internal/storage"
	"github.com/go-chi/render"
)

type AdjustmentRecorder interface {
	SaveAdjustment(ctx context.Context, req storage.SaveAdjustment) (int64, error)
}

// SaveAdjustment records a manual incentive or deduction for an employee.
func SaveAdjustment(log *slog.Logger, adjustments AdjustmentRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.adjustments.save.SaveAdjustment"

		var req storage.SaveAdjustment
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.EmployeeID == 0 {
			http.Error(w, "employee_id is required", http.StatusBadRequest)
			return
		}
		if req.Kind != storage.AdjustmentIncentive && req.Kind != storage.AdjustmentDeduction {
			http.Error(w, "kind must be incentive or deduction", http.StatusBadRequest)
			return
		}
		if req.Amount <= 0 {
			http.Error(w, "amount must be a positive number", http.StatusBadRequest)
			return
		}
		if _, err := time.Parse("2006-01-02", req.Date); err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := adjustments.SaveAdjustment(ctx, req)
		if err != nil {
			log.Error("failed to save adjustment", slog.String("op", op),
				slog.Int64("employee_id", req.EmployeeID), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{
			"message": "Adjustment recorded",
			"id":      id,
		})
	}
}
