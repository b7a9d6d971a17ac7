package worker

import (
	"context"
	"fmt"

	"dropx/internal/storage"
)

type Storage interface {
	WorkerEntries(ctx context.Context, employeeID int64, from, to string) ([]storage.WorkerEntry, error)
	WorkerMonthly(ctx context.Context, employeeID int64) ([]storage.MonthlyIncome, error)
}

type EmployeeResolver interface {
	ResolveEmployeeID(ctx context.Context, userID int64) (int64, bool, error)
}

type Service struct {
	storage  Storage
	resolver EmployeeResolver
}

func NewService(storage Storage, resolver EmployeeResolver) *Service {
	return &Service{storage: storage, resolver: resolver}
}

// Summary returns the calling worker's entries and total income, optionally
// bounded by an inclusive date range. A user without a linked employee gets
// an empty summary, not an error.
func (s *Service) Summary(ctx context.Context, userID int64, from, to string) (*storage.WorkerSummary, error) {
	const op = "service.worker.Summary"

	employeeID, linked, err := s.resolver.ResolveEmployeeID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !linked {
		return &storage.WorkerSummary{Entries: []storage.WorkerEntry{}}, nil
	}

	entries, err := s.storage.WorkerEntries(ctx, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	summary := &storage.WorkerSummary{Entries: entries}
	if summary.Entries == nil {
		summary.Entries = []storage.WorkerEntry{}
	}
	for _, e := range entries {
		summary.TotalIncome += e.Income
	}

	return summary, nil
}

// Monthly returns one row per calendar month present in the worker's
// entries, oldest first.
func (s *Service) Monthly(ctx context.Context, userID int64) ([]storage.MonthlyIncome, error) {
	const op = "service.worker.Monthly"

	employeeID, linked, err := s.resolver.ResolveEmployeeID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !linked {
		return []storage.MonthlyIncome{}, nil
	}

	months, err := s.storage.WorkerMonthly(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if months == nil {
		months = []storage.MonthlyIncome{}
	}

	return months, nil
}
