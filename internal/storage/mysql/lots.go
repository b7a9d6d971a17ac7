package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dropx/internal/storage"
)

// CreateLot inserts the lot row and its operations in one transaction, so a
// failed operation insert never leaves a lot without operations behind.
func (s *Storage) CreateLot(ctx context.Context, req storage.SaveLot) (int64, error) {
	const op = "storage.mysql.CreateLot"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: begin transaction: %w", op, err)
	}

	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO lots (lot_number, target_qty) VALUES (?, ?)`,
		req.LotNumber, req.TargetQty)
	if err != nil {
		if isDuplicateKey(err) {
			return 0, fmt.Errorf("%s: lot_number=%s: %w", op, req.LotNumber, storage.ErrDuplicate)
		}
		return 0, fmt.Errorf("%s: insert lot: %w", op, err)
	}

	lotID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	if err := insertOperations(ctx, tx, lotID, req.Operations); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return lotID, nil
}

// UpdateLot updates the lot row and replaces its whole operation set in one
// transaction. Any failure rolls everything back, the lot row included.
func (s *Storage) UpdateLot(ctx context.Context, lotID int64, req storage.SaveLot) error {
	const op = "storage.mysql.UpdateLot"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}

	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM lots WHERE id = ?`, lotID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: lot id=%d: %w", op, lotID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("%s: select lot: %w", op, err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE lots SET lot_number = ?, target_qty = ? WHERE id = ?`,
		req.LotNumber, req.TargetQty, lotID)
	if err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("%s: lot_number=%s: %w", op, req.LotNumber, storage.ErrDuplicate)
		}
		return fmt.Errorf("%s: update lot: %w", op, err)
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM lot_operations WHERE lot_id = ?`, lotID)
	if err != nil {
		return fmt.Errorf("%s: delete old operations: %w", op, err)
	}

	if err := insertOperations(ctx, tx, lotID, req.Operations); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}

func insertOperations(ctx context.Context, tx *sql.Tx, lotID int64, ops []storage.SaveOperation) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO lot_operations (lot_id, op_name, rate_per_piece) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, o := range ops {
		if _, err := stmt.ExecContext(ctx, lotID, o.OpName, o.RatePerPiece); err != nil {
			return fmt.Errorf("insert operation op_name=%s: %w", o.OpName, err)
		}
	}

	return nil
}

func (s *Storage) GetLots(ctx context.Context, withOps bool) ([]storage.Lot, error) {
	const op = "storage.mysql.GetLots"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, lot_number, target_qty, created_at FROM lots ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var lots []storage.Lot
	for rows.Next() {
		var l storage.Lot
		if err := rows.Scan(&l.ID, &l.LotNumber, &l.TargetQty, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		lots = append(lots, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	if !withOps || len(lots) == 0 {
		return lots, nil
	}

	args := make([]interface{}, len(lots))
	byLot := make(map[int64]int, len(lots))
	for i, l := range lots {
		args[i] = l.ID
		byLot[l.ID] = i
	}

	query := `SELECT id, lot_id, op_name, rate_per_piece FROM lot_operations
		WHERE lot_id IN (` + placeholders(len(lots)) + `) ORDER BY id ASC`

	opRows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: operations: %w", op, err)
	}
	defer opRows.Close()

	for opRows.Next() {
		var o storage.LotOperation
		if err := opRows.Scan(&o.ID, &o.LotID, &o.OpName, &o.RatePerPiece); err != nil {
			return nil, fmt.Errorf("%s: scan operation: %w", op, err)
		}
		i := byLot[o.LotID]
		lots[i].Operations = append(lots[i].Operations, o)
	}
	if err := opRows.Err(); err != nil {
		return nil, fmt.Errorf("%s: operation rows: %w", op, err)
	}

	return lots, nil
}

func (s *Storage) GetLotOperations(ctx context.Context, lotID int64) ([]storage.LotOperation, error) {
	const op = "storage.mysql.GetLotOperations"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, op_name, rate_per_piece FROM lot_operations WHERE lot_id = ? ORDER BY id ASC`,
		lotID)
	if err != nil {
		return nil, fmt.Errorf("%s: lot id=%d: %w", op, lotID, err)
	}
	defer rows.Close()

	var ops []storage.LotOperation
	for rows.Next() {
		var o storage.LotOperation
		if err := rows.Scan(&o.ID, &o.OpName, &o.RatePerPiece); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		ops = append(ops, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return ops, nil
}
