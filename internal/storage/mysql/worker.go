package mysql

import (
	"context"
	"fmt"

	"dropx/internal/storage"
)

// WorkerEntries lists one employee's production with the income per entry
// (pcs * rate). from/to are inclusive YYYY-MM-DD bounds, empty means open.
func (s *Storage) WorkerEntries(ctx context.Context, employeeID int64, from, to string) ([]storage.WorkerEntry, error) {
	const op = "storage.mysql.WorkerEntries"

	query := `
		SELECT pe.id, pe.entry_date, l.lot_number, lo.op_name, lo.rate_per_piece,
			pe.pcs, (pe.pcs * lo.rate_per_piece) AS income
		FROM production_entries pe
		JOIN lot_operations lo ON pe.operation_id = lo.id
		JOIN lots l ON pe.lot_id = l.id
		WHERE pe.employee_id = ?`

	args := []interface{}{employeeID}
	if from != "" {
		query += ` AND pe.entry_date >= ?`
		args = append(args, from)
	}
	if to != "" {
		query += ` AND pe.entry_date <= ?`
		args = append(args, to)
	}
	query += ` ORDER BY pe.entry_date DESC, pe.id DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: employee id=%d: %w", op, employeeID, err)
	}
	defer rows.Close()

	var entries []storage.WorkerEntry
	for rows.Next() {
		var e storage.WorkerEntry
		err := rows.Scan(&e.ID, &e.EntryDate, &e.LotNumber, &e.OpName, &e.RatePerPiece, &e.Pcs, &e.Income)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return entries, nil
}

func (s *Storage) WorkerMonthly(ctx context.Context, employeeID int64) ([]storage.MonthlyIncome, error) {
	const op = "storage.mysql.WorkerMonthly"

	rows, err := s.db.QueryContext(ctx, `
		SELECT DATE_FORMAT(pe.entry_date, '%Y-%m') AS month,
			SUM(pe.pcs * lo.rate_per_piece) AS total_income
		FROM production_entries pe
		JOIN lot_operations lo ON pe.operation_id = lo.id
		WHERE pe.employee_id = ?
		GROUP BY DATE_FORMAT(pe.entry_date, '%Y-%m')
		ORDER BY month ASC`,
		employeeID)
	if err != nil {
		return nil, fmt.Errorf("%s: employee id=%d: %w", op, employeeID, err)
	}
	defer rows.Close()

	var months []storage.MonthlyIncome
	for rows.Next() {
		var m storage.MonthlyIncome
		if err := rows.Scan(&m.Month, &m.TotalIncome); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		months = append(months, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return months, nil
}
