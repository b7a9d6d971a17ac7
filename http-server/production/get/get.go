package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"dropx/internal/storage"
	"github.com/go-chi/render"
)

type EntryLister interface {
	ListEntries(ctx context.Context, filter storage.ProductionFilter) ([]storage.ProductionEntry, error)
}

// GetEntries lists production entries, optionally narrowed by date range,
// lot and employee.
func GetEntries(log *slog.Logger, entries EntryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.production.get.GetEntries"

		q := r.URL.Query()
		filter := storage.ProductionFilter{
			From: q.Get("from"),
			To:   q.Get("to"),
		}
		if v := q.Get("lot_id"); v != "" {
			id, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				http.Error(w, "Invalid lot_id", http.StatusBadRequest)
				return
			}
			filter.LotID = id
		}
		if v := q.Get("employee_id"); v != "" {
			id, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				http.Error(w, "Invalid employee_id", http.StatusBadRequest)
				return
			}
			filter.EmployeeID = id
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		result, err := entries.ListEntries(ctx, filter)
		if err != nil {
			log.Error("failed to load production entries", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		if result == nil {
			result = []storage.ProductionEntry{}
		}

		render.JSON(w, r, result)
	}
}
