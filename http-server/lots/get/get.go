package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"dropx/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type LotReader interface {
	GetLots(ctx context.Context, withOps bool) ([]storage.Lot, error)
	GetLotOperations(ctx context.Context, lotID int64) ([]storage.LotOperation, error)
}

// GetLots lists all lots, newest first. ?with_ops=1 embeds each lot's
// operation set.
func GetLots(log *slog.Logger, lots LotReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.lots.get.GetLots"

		withOps := r.URL.Query().Get("with_ops") == "1"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		result, err := lots.GetLots(ctx, withOps)
		if err != nil {
			log.Error("failed to load lots", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		if result == nil {
			result = []storage.Lot{}
		}

		render.JSON(w, r, result)
	}
}

func GetLotOperations(log *slog.Logger, lots LotReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.lots.get.GetLotOperations"

		lotID, err := strconv.ParseInt(chi.URLParam(r, "lotId"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid lot id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		ops, err := lots.GetLotOperations(ctx, lotID)
		if err != nil {
			log.Error("failed to load lot operations", slog.String("op", op),
				slog.Int64("lot_id", lotID), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		if ops == nil {
			ops = []storage.LotOperation{}
		}

		render.JSON(w, r, ops)
	}
}
