package storage

import "time"

type Lot struct {
	ID         int64          `json:"id"`
	LotNumber  string         `json:"lot_number"`
	TargetQty  *float64       `json:"target_qty"`
	CreatedAt  time.Time      `json:"created_at"`
	Operations []LotOperation `json:"operations,omitempty"`
}

type LotOperation struct {
	ID           int64   `json:"id"`
	LotID        int64   `json:"lot_id,omitempty"`
	OpName       string  `json:"op_name"`
	RatePerPiece float64 `json:"rate_per_piece"`
}

// SaveLot creates or fully replaces a lot: the operations list always
// stands for the complete new set.
type SaveLot struct {
	LotNumber  string          `json:"lot_number"`
	TargetQty  *float64        `json:"target_qty"`
	Operations []SaveOperation `json:"operations"`
}

type SaveOperation struct {
	OpName       string  `json:"op_name"`
	RatePerPiece float64 `json:"rate_per_piece"`
}

// LotOperationTotal is one lot/operation pair with the pcs recorded against
// that operation summed up. A lot without operations yields a single row
// with OperationID = nil.
type LotOperationTotal struct {
	LotID       int64
	LotNumber   string
	TargetQty   *float64
	OperationID *int64
	Pcs         int64
}

type LotProgress struct {
	ID           int64    `json:"id"`
	LotNumber    string   `json:"lot_number"`
	TargetQty    *float64 `json:"target_qty"`
	CompletedPcs int64    `json:"completed_pcs"`
	ProgressPct  *float64 `json:"progress_pct"`
}
