package payroll

import "context"

type PayrollRepository interface {
	// Runs
	CreateRun(ctx context.Context, run PayrollRun) (PayrollRun, error)
	UpdateRunTotals(ctx context.Context, runID string, totals RunTotals) error
	GetRunByID(ctx context.Context, id string) (PayrollRun, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]PayrollRun, int64, error)

	// Payslips
	CreatePayslip(ctx context.Context, payslip Payslip) (Payslip, error)
	ListPayslipsByRun(ctx context.Context, runID string) ([]Payslip, error)

	// Payslip items
	CreatePayslipItem(ctx context.Context, item PayslipItem) (PayslipItem, error)
	ListPayslipItemsByRun(ctx context.Context, runID string) ([]PayslipItem, error)

	// Allowances
	CreateAllowance(ctx context.Context, allowance Allowance) (Allowance, error)
	ListAllowances(ctx context.Context, filter AllowanceFilter) ([]Allowance, error)
}
