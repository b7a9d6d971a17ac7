package report

import (
	"context"
	"fmt"

	"dropx/internal/storage"
	"github.com/xuri/excelize/v2"
)

type PayrollAggregator interface {
	Aggregate(ctx context.Context, year, month int) ([]storage.PayrollRow, error)
}

type PayrollReportService struct {
	payroll PayrollAggregator
}

func NewPayrollReportService(payroll PayrollAggregator) *PayrollReportService {
	return &PayrollReportService{payroll: payroll}
}

var headers = []string{"Emp Code", "Name", "Earnings", "Incentives", "Deductions", "Net Salary"}

// GenerateExcel renders one month's payroll as an xlsx workbook.
func (g *PayrollReportService) GenerateExcel(ctx context.Context, year, month int) ([]byte, error) {
	const op = "service.report.GenerateExcel"

	rows, err := g.payroll.Aggregate(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("%s: fetch payroll: %w", op, err)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := fmt.Sprintf("Payroll %04d-%02d", year, month)
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	totalStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: []excelize.Border{{Type: "top", Color: "000000", Style: 1}},
	})

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, "A1", "F1", headerStyle)

	var totalEarnings, totalIncentives, totalDeductions, totalNet float64
	for i, r := range rows {
		rowNum := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), r.EmpCode)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), r.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), r.Earnings)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), r.Incentives)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), r.Deductions)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), r.NetSalary)

		totalEarnings += r.Earnings
		totalIncentives += r.Incentives
		totalDeductions += r.Deductions
		totalNet += r.NetSalary
	}

	totalRow := len(rows) + 2
	f.SetCellValue(sheet, fmt.Sprintf("B%d", totalRow), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("C%d", totalRow), totalEarnings)
	f.SetCellValue(sheet, fmt.Sprintf("D%d", totalRow), totalIncentives)
	f.SetCellValue(sheet, fmt.Sprintf("E%d", totalRow), totalDeductions)
	f.SetCellValue(sheet, fmt.Sprintf("F%d", totalRow), totalNet)
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("F%d", totalRow), totalStyle)

	f.SetColWidth(sheet, "A", "F", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: write workbook: %w", op, err)
	}

	return buf.Bytes(), nil
}
