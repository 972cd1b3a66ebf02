package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/report"
	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worker"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) ListPeriodPayslips(ctx context.Context, month, year int, workerType *worker.WorkerType) ([]report.PayslipRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.run_id, p.worker_id, p.worker_name, p.worker_type, p.total_tons, p.gross_pay,
			   p.epf_employee, p.epf_employer, p.socso_employee, p.socso_employer,
			   p.eis_employee, p.eis_employer, p.pcb_mtd, p.total_deductions, p.net_pay
		FROM payroll_payslips p
		JOIN payroll_runs pr ON pr.id = p.run_id
		WHERE pr.month = $1 AND pr.year = $2
	`
	args := []interface{}{month, year}
	if workerType != nil {
		query += " AND p.worker_type = $3"
		args = append(args, string(*workerType))
	}
	query += " ORDER BY pr.created_at, p.worker_name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list period payslips: %w", err)
	}
	defer rows.Close()

	var result []report.PayslipRow
	for rows.Next() {
		var row report.PayslipRow
		if err := rows.Scan(
			&row.RunID, &row.WorkerID, &row.WorkerName, &row.WorkerType, &row.TotalTons, &row.GrossPay,
			&row.EPFEmployee, &row.EPFEmployer, &row.SOCSOEmployee, &row.SOCSOEmployer,
			&row.EISEmployee, &row.EISEmployer, &row.PCB, &row.TotalDeductions, &row.NetPay,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payslip row: %w", err)
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

func (r *reportRepository) SumSettlements(ctx context.Context, from, to time.Time, workerType *worker.WorkerType) (report.SettlementTotals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			   COALESCE(SUM(s.total_tons), 0),
			   COALESCE(SUM(s.gross_pay), 0),
			   COALESCE(SUM(s.total_deductions), 0),
			   COALESCE(SUM(s.net_pay), 0)
		FROM worker_settlements s
		JOIN workers w ON w.id = s.worker_id
		WHERE s.settlement_date BETWEEN $1 AND $2
		  AND s.payment_status <> 'cancelled'
	`
	args := []interface{}{from, to}
	if workerType != nil {
		query += " AND w.type = $3"
		args = append(args, string(*workerType))
	}

	var t report.SettlementTotals
	if err := q.QueryRow(ctx, query, args...).Scan(
		&t.Count, &t.TotalTons, &t.TotalGrossPay, &t.TotalDeductions, &t.TotalNetPay,
	); err != nil {
		return report.SettlementTotals{}, fmt.Errorf("failed to sum settlements: %w", err)
	}

	return t, nil
}
