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

type EntryRecorder interface {
	AddEntry(ctx context.Context, req storage.SaveProductionEntry) (int64, error)
}

func SaveEntry(log *slog.Logger, entries EntryRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.production.save.SaveEntry"

		var req storage.SaveProductionEntry
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.LotID == 0 || req.OperationID == 0 || req.EmployeeID == 0 || req.EntryDate == "" {
			http.Error(w, "lot_id, operation_id, employee_id, pcs, entry_date are required", http.StatusBadRequest)
			return
		}
		if req.Pcs <= 0 {
			http.Error(w, "pcs must be a positive number", http.StatusBadRequest)
			return
		}
		if _, err := time.Parse("2006-01-02", req.EntryDate); err != nil {
			http.Error(w, "entry_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := entries.AddEntry(ctx, req)
		if err != nil {
			log.Error("failed to record production entry", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{
			"message": "Production entry recorded",
			"id":      id,
		})
	}
}
