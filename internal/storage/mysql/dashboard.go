package mysql

import (
	"context"
	"fmt"

	"dropx/internal/storage"
)

func (s *Storage) CountEmployees(ctx context.Context) (int64, error) {
	const op = "storage.mysql.CountEmployees"

	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

func (s *Storage) CountLots(ctx context.Context) (int64, error) {
	const op = "storage.mysql.CountLots"

	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM lots`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

func (s *Storage) RecentEntries(ctx context.Context, limit int) ([]storage.RecentEntry, error) {
	const op = "storage.mysql.RecentEntries"

	rows, err := s.db.QueryContext(ctx, `
		SELECT pe.id, pe.entry_date, e.name, l.lot_number, lo.op_name, pe.pcs
		FROM production_entries pe
		JOIN employees e ON e.id = pe.employee_id
		JOIN lots l ON l.id = pe.lot_id
		JOIN lot_operations lo ON lo.id = pe.operation_id
		ORDER BY pe.entry_date DESC, pe.id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var entries []storage.RecentEntry
	for rows.Next() {
		var e storage.RecentEntry
		err := rows.Scan(&e.ID, &e.EntryDate, &e.EmployeeName, &e.LotNumber, &e.OpName, &e.Pcs)
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

func (s *Storage) LotProducedTotals(ctx context.Context) ([]storage.LotProduced, error) {
	const op = "storage.mysql.LotProducedTotals"

	rows, err := s.db.QueryContext(ctx, `
		SELECT l.id, l.lot_number, l.target_qty, COALESCE(SUM(pe.pcs), 0) AS produced
		FROM lots l
		LEFT JOIN production_entries pe ON pe.lot_id = l.id
		GROUP BY l.id, l.lot_number, l.target_qty
		ORDER BY l.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var lots []storage.LotProduced
	for rows.Next() {
		var l storage.LotProduced
		if err := rows.Scan(&l.ID, &l.LotNumber, &l.TargetQty, &l.Produced); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		lots = append(lots, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return lots, nil
}
