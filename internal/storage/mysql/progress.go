package mysql

import (
	"context"
	"fmt"

	"dropx/internal/storage"
)

// GetLotOperationTotals returns one row per lot/operation pair with the pcs
// recorded against that operation summed up. Operations without entries come
// back as 0, lots without operations as a single row with a NULL operation
// id. lotID = 0 means all lots. Rows arrive newest lot first, so the caller
// can fold them into per-lot progress without re-sorting.
func (s *Storage) GetLotOperationTotals(ctx context.Context, lotID int64) ([]storage.LotOperationTotal, error) {
	const op = "storage.mysql.GetLotOperationTotals"

	query := `
		SELECT l.id, l.lot_number, l.target_qty, lo.id, COALESCE(pe.op_pcs, 0)
		FROM lots l
		LEFT JOIN lot_operations lo ON lo.lot_id = l.id
		LEFT JOIN (
			SELECT operation_id, SUM(pcs) AS op_pcs
			FROM production_entries
			GROUP BY operation_id
		) pe ON pe.operation_id = lo.id`

	var args []interface{}
	if lotID != 0 {
		query += ` WHERE l.id = ?`
		args = append(args, lotID)
	}
	query += ` ORDER BY l.created_at DESC, lo.id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var totals []storage.LotOperationTotal
	for rows.Next() {
		var t storage.LotOperationTotal
		if err := rows.Scan(&t.LotID, &t.LotNumber, &t.TargetQty, &t.OperationID, &t.Pcs); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return totals, nil
}
