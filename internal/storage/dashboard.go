package storage

import "time"

type DashboardSummary struct {
	Employees   int64         `json:"employees"`
	Lots        int64         `json:"lots"`
	Recent      []RecentEntry `json:"recent"`
	LotProduced []LotProduced `json:"lot_produced"`
}

type RecentEntry struct {
	ID           int64     `json:"id"`
	EntryDate    time.Time `json:"entry_date"`
	EmployeeName string    `json:"employee_name"`
	LotNumber    string    `json:"lot_number"`
	OpName       string    `json:"op_name"`
	Pcs          int64     `json:"pcs"`
}

// LotProduced is the dashboard's coarse per-lot total: all pcs over all
// operations. Progress against target uses the stricter per-operation
// minimum, see the progress service.
type LotProduced struct {
	ID        int64    `json:"id"`
	LotNumber string   `json:"lot_number"`
	TargetQty *float64 `json:"target_qty"`
	Produced  int64    `json:"produced"`
}
