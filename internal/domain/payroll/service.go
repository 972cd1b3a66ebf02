package payroll

import "context"

type PayrollService interface {
	RunPayroll(ctx context.Context, req RunPayrollRequest) (PayrollRunResponse, error)
	GetRun(ctx context.Context, id string) (PayrollRunResponse, error)
	ListRuns(ctx context.Context, filter RunFilter) (ListRunsResponse, error)
	RenderPayslipsPDF(ctx context.Context, runID string) ([]byte, error)

	CreateAllowance(ctx context.Context, req CreateAllowanceRequest) (AllowanceResponse, error)
	ListAllowances(ctx context.Context, filter AllowanceFilter) ([]AllowanceResponse, error)
}
