package payroll

import (
	"context"
	"fmt"

	"dropx/internal/storage"
)

type Storage interface {
	PayrollForMonth(ctx context.Context, year, month int) ([]storage.PayrollRow, error)
}

type Service struct {
	storage Storage
}

func NewService(storage Storage) *Service {
	return &Service{storage: storage}
}

// Aggregate computes the month's payroll for every employee. Storage
// delivers the three sums (zero when the month is empty), the net is fixed
// here: earnings + incentives - deductions.
func (s *Service) Aggregate(ctx context.Context, year, month int) ([]storage.PayrollRow, error) {
	const op = "service.payroll.Aggregate"

	rows, err := s.storage.PayrollForMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("%s: year=%d month=%d: %w", op, year, month, err)
	}

	for i := range rows {
		rows[i].NetSalary = rows[i].Earnings + rows[i].Incentives - rows[i].Deductions
	}

	return rows, nil
}
