package dashboard

import (
	"context"
	"fmt"

	"dropx/internal/storage"
	"golang.org/x/sync/errgroup"
)

const recentLimit = 10

type Storage interface {
	CountEmployees(ctx context.Context) (int64, error)
	CountLots(ctx context.Context) (int64, error)
	RecentEntries(ctx context.Context, limit int) ([]storage.RecentEntry, error)
	LotProducedTotals(ctx context.Context) ([]storage.LotProduced, error)
}

type Service struct {
	storage Storage
}

func NewService(storage Storage) *Service {
	return &Service{storage: storage}
}

// Summary collects the dashboard blocks concurrently; the four reads are
// independent and tolerate each other's in-flight writes.
func (s *Service) Summary(ctx context.Context) (*storage.DashboardSummary, error) {
	const op = "service.dashboard.Summary"

	var summary storage.DashboardSummary

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary.Employees, err = s.storage.CountEmployees(gCtx)
		if err != nil {
			return fmt.Errorf("employees: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		summary.Lots, err = s.storage.CountLots(gCtx)
		if err != nil {
			return fmt.Errorf("lots: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		summary.Recent, err = s.storage.RecentEntries(gCtx, recentLimit)
		if err != nil {
			return fmt.Errorf("recent: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		summary.LotProduced, err = s.storage.LotProducedTotals(gCtx)
		if err != nil {
			return fmt.Errorf("lot produced: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &summary, nil
}
