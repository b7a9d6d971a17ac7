package progress

import (
	"context"
	"fmt"
	"math"

	"dropx/internal/storage"
)

type Storage interface {
	GetLotOperationTotals(ctx context.Context, lotID int64) ([]storage.LotOperationTotal, error)
}

type Service struct {
	storage Storage
}

func NewService(storage Storage) *Service {
	return &Service{storage: storage}
}

func (s *Service) All(ctx context.Context) ([]storage.LotProgress, error) {
	const op = "service.progress.All"

	totals, err := s.storage.GetLotOperationTotals(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return fold(totals), nil
}

func (s *Service) ByLot(ctx context.Context, lotID int64) (*storage.LotProgress, error) {
	const op = "service.progress.ByLot"

	totals, err := s.storage.GetLotOperationTotals(ctx, lotID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(totals) == 0 {
		return nil, fmt.Errorf("%s: lot id=%d: %w", op, lotID, storage.ErrNotFound)
	}

	progress := fold(totals)

	return &progress[0], nil
}

// fold collapses lot/operation rows into one progress row per lot. The lot
// runs as a sequential pipeline: it can never be further along than its
// least-advanced operation, so completed_pcs is the minimum of the
// per-operation totals. An operation without entries pins the lot at 0, and
// a lot without operations is 0 by definition. Input order (newest lot
// first) is preserved.
func fold(totals []storage.LotOperationTotal) []storage.LotProgress {
	var out []storage.LotProgress
	index := make(map[int64]int)

	for _, t := range totals {
		i, seen := index[t.LotID]
		if !seen {
			out = append(out, storage.LotProgress{
				ID:        t.LotID,
				LotNumber: t.LotNumber,
				TargetQty: t.TargetQty,
			})
			i = len(out) - 1
			index[t.LotID] = i
			if t.OperationID != nil {
				out[i].CompletedPcs = t.Pcs
			}
			continue
		}
		if t.OperationID != nil && t.Pcs < out[i].CompletedPcs {
			out[i].CompletedPcs = t.Pcs
		}
	}

	for i := range out {
		out[i].ProgressPct = pct(out[i].CompletedPcs, out[i].TargetQty)
	}

	return out
}

// pct is nil when no meaningful target exists, otherwise the completion
// percentage rounded to two decimals.
func pct(completed int64, target *float64) *float64 {
	if target == nil || *target == 0 {
		return nil
	}
	v := math.Round(100*float64(completed)/(*target)*100) / 100
	return &v
}
