package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"dropx/http-server/lots/save"
	"dropx/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type LotReplacer interface {
	UpdateLot(ctx context.Context, lotID int64, req storage.SaveLot) error
}

// UpdateLot replaces a lot's fields and its whole operation set. The
// storage call is transactional: either the lot row and all new operations
// land, or nothing does.
func UpdateLot(log *slog.Logger, lots LotReplacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.lots.update.UpdateLot"

		lotID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid lot id", http.StatusBadRequest)
			return
		}

		var req storage.SaveLot
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if msg := save.ValidateLot(&req); msg != "" {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := lots.UpdateLot(ctx, lotID, req); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Lot not found", http.StatusNotFound)
				return
			}
			if errors.Is(err, storage.ErrDuplicate) {
				http.Error(w, "lot_number already exists", http.StatusConflict)
				return
			}
			log.Error("failed to update lot", slog.String("op", op),
				slog.Int64("lot_id", lotID), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{"message": "Lot updated"})
	}
}
