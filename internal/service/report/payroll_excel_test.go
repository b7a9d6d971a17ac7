package report

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xuri/excelize/v2"

	"dropx/internal/storage"
)

type MockAggregator struct {
	mock.Mock
}

func (m *MockAggregator) Aggregate(ctx context.Context, year, month int) ([]storage.PayrollRow, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.PayrollRow), args.Error(1)
}

func TestGenerateExcel_Workbook(t *testing.T) {
	mockPayroll := new(MockAggregator)

	rows := []storage.PayrollRow{
		{EmployeeID: 1, EmpCode: "EMP-001", Name: "Asha", Earnings: 500, Incentives: 50, Deductions: 20, NetSalary: 530},
		{EmployeeID: 2, EmpCode: "EMP-002", Name: "Ravi", Earnings: 200, Incentives: 0, Deductions: 10, NetSalary: 190},
	}

	mockPayroll.On("Aggregate", mock.Anything, 2024, 3).Return(rows, nil)

	service := NewPayrollReportService(mockPayroll)
	data, err := service.GenerateExcel(context.Background(), 2024, 3)

	assert.NoError(t, err)
	assert.NotEmpty(t, data)

	// Re-open the produced bytes and check the cells.
	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer f.Close()

	sheet := "Payroll 2024-03"
	assert.Contains(t, f.GetSheetList(), sheet)

	header, err := f.GetCellValue(sheet, "A1")
	assert.NoError(t, err)
	assert.Equal(t, "Emp Code", header)

	name, _ := f.GetCellValue(sheet, "B2")
	assert.Equal(t, "Asha", name)

	net, _ := f.GetCellValue(sheet, "F2")
	assert.Equal(t, "530", net)

	// Totals land on the row after the last employee.
	totalLabel, _ := f.GetCellValue(sheet, "B4")
	assert.Equal(t, "Total", totalLabel)

	totalNet, _ := f.GetCellValue(sheet, "F4")
	assert.Equal(t, "720", totalNet)

	mockPayroll.AssertExpectations(t)
}

func TestGenerateExcel_EmptyMonthStillProducesWorkbook(t *testing.T) {
	mockPayroll := new(MockAggregator)

	mockPayroll.On("Aggregate", mock.Anything, 2024, 1).Return([]storage.PayrollRow{}, nil)

	service := NewPayrollReportService(mockPayroll)
	data, err := service.GenerateExcel(context.Background(), 2024, 1)

	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer f.Close()

	totalLabel, _ := f.GetCellValue("Payroll 2024-01", "B2")
	assert.Equal(t, "Total", totalLabel)
}

func TestGenerateExcel_AggregateError(t *testing.T) {
	mockPayroll := new(MockAggregator)

	mockPayroll.On("Aggregate", mock.Anything, 2024, 3).
		Return(nil, errors.New("connection timeout"))

	service := NewPayrollReportService(mockPayroll)
	_, err := service.GenerateExcel(context.Background(), 2024, 3)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "service.report.GenerateExcel")
}
