package progress

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"dropx/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type ProgressAggregator interface {
	All(ctx context.Context) ([]storage.LotProgress, error)
	ByLot(ctx context.Context, lotID int64) (*storage.LotProgress, error)
}

func GetLotsProgress(log *slog.Logger, progress ProgressAggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.lots.progress.GetLotsProgress"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		rows, err := progress.All(ctx)
		if err != nil {
			log.Error("failed to compute lot progress", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		if rows == nil {
			rows = []storage.LotProgress{}
		}

		render.JSON(w, r, rows)
	}
}

func GetLotProgress(log *slog.Logger, progress ProgressAggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.lots.progress.GetLotProgress"

		lotID, err := strconv.ParseInt(chi.URLParam(r, "lotId"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid lot id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		row, err := progress.ByLot(ctx, lotID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Lot not found", http.StatusNotFound)
				return
			}
			log.Error("failed to compute lot progress", slog.String("op", op),
				slog.Int64("lot_id", lotID), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, row)
	}
}
