package save

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"dropx/internal/storage"
	"github.com/go-chi/render"
)

type LotCreator interface {
	CreateLot(ctx context.Context, req storage.SaveLot) (int64, error)
}

// ValidateLot checks a lot payload before any write happens; it returns a
// caller-facing message or "" when the payload is fine. The payload is
// normalized in place (trimmed names). Shared with the update handler,
// which enforces the same rules when replacing a lot.
func ValidateLot(req *storage.SaveLot) string {
	req.LotNumber = strings.TrimSpace(req.LotNumber)
	if req.LotNumber == "" {
		return "lot_number is required"
	}
	if req.TargetQty != nil && *req.TargetQty < 0 {
		return "target_qty must be a positive number or empty"
	}
	if len(req.Operations) == 0 {
		return "At least one operation is required"
	}
	for i := range req.Operations {
		req.Operations[i].OpName = strings.TrimSpace(req.Operations[i].OpName)
		if req.Operations[i].OpName == "" {
			return "op_name is required for all operations"
		}
		if req.Operations[i].RatePerPiece <= 0 {
			return "rate_per_piece must be a positive number for all operations"
		}
	}
	return ""
}

func SaveLot(log *slog.Logger, lots LotCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.lots.save.SaveLot"

		var req storage.SaveLot
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if msg := ValidateLot(&req); msg != "" {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		lotID, err := lots.CreateLot(ctx, req)
		if err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				http.Error(w, "lot_number already exists", http.StatusConflict)
				return
			}
			log.Error("failed to create lot", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("lot created",
			slog.Int64("lot_id", lotID),
			slog.String("lot_number", req.LotNumber),
			slog.Int("operations", len(req.Operations)),
		)

		render.JSON(w, r, map[string]interface{}{
			"message": fmt.Sprintf("Lot %s created", req.LotNumber),
			"id":      lotID,
		})
	}
}
