package mysql

import (
	"context"
	"fmt"

	"dropx/internal/storage"
)

// AddEntry appends a production entry. Entries are never updated or deleted
// through the API, payroll and progress only ever see appended rows.
func (s *Storage) AddEntry(ctx context.Context, req storage.SaveProductionEntry) (int64, error) {
	const op = "storage.mysql.AddEntry"

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO production_entries (lot_id, operation_id, employee_id, pcs, entry_date)
		VALUES (?, ?, ?, ?, ?)`,
		req.LotID, req.OperationID, req.EmployeeID, req.Pcs, req.EntryDate)
	if err != nil {
		return 0, fmt.Errorf("%s: lot id=%d op id=%d: %w", op, req.LotID, req.OperationID, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	return id, nil
}

func (s *Storage) ListEntries(ctx context.Context, filter storage.ProductionFilter) ([]storage.ProductionEntry, error) {
	const op = "storage.mysql.ListEntries"

	query := `
		SELECT pe.id, pe.lot_id, pe.operation_id, pe.employee_id, pe.pcs, pe.entry_date,
			lo.op_name, lo.rate_per_piece, e.name, l.lot_number
		FROM production_entries pe
		JOIN lot_operations lo ON lo.id = pe.operation_id
		JOIN employees e ON e.id = pe.employee_id
		JOIN lots l ON l.id = pe.lot_id
		WHERE 1=1`

	var args []interface{}
	if filter.From != "" {
		query += ` AND pe.entry_date >= ?`
		args = append(args, filter.From)
	}
	if filter.To != "" {
		query += ` AND pe.entry_date <= ?`
		args = append(args, filter.To)
	}
	if filter.LotID != 0 {
		query += ` AND pe.lot_id = ?`
		args = append(args, filter.LotID)
	}
	if filter.EmployeeID != 0 {
		query += ` AND pe.employee_id = ?`
		args = append(args, filter.EmployeeID)
	}
	query += ` ORDER BY pe.entry_date DESC, pe.id DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var entries []storage.ProductionEntry
	for rows.Next() {
		var e storage.ProductionEntry
		err := rows.Scan(&e.ID, &e.LotID, &e.OperationID, &e.EmployeeID, &e.Pcs, &e.EntryDate,
			&e.OpName, &e.RatePerPiece, &e.EmployeeName, &e.LotNumber)
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
