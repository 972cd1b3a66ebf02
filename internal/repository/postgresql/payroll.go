package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/database"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// ========== RUNS ==========

const payrollRunColumns = `
	id, month, year, worker_type, total_workers, total_gross_pay,
	total_epf_employee, total_epf_employer, total_socso_employee, total_socso_employer,
	total_eis_employee, total_eis_employer, total_pcb, total_deductions, total_net_pay, created_at
`

func scanPayrollRun(row pgx.Row) (payroll.PayrollRun, error) {
	var run payroll.PayrollRun
	t := &run.Totals
	err := row.Scan(
		&run.ID, &run.Month, &run.Year, &run.WorkerType, &t.TotalWorkers, &t.GrossPay,
		&t.EPFEmployee, &t.EPFEmployer, &t.SOCSOEmployee, &t.SOCSOEmployer,
		&t.EISEmployee, &t.EISEmployer, &t.PCB, &t.TotalDeductions, &t.NetPay, &run.CreatedAt,
	)
	return run, err
}

func (r *payrollRepository) CreateRun(ctx context.Context, run payroll.PayrollRun) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_runs (month, year, worker_type)
		VALUES ($1, $2, $3)
		RETURNING` + payrollRunColumns

	created, err := scanPayrollRun(q.QueryRow(ctx, query, run.Month, run.Year, string(run.WorkerType)))
	if err != nil {
		return payroll.PayrollRun{}, fmt.Errorf("failed to create payroll run: %w", err)
	}

	return created, nil
}

func (r *payrollRepository) UpdateRunTotals(ctx context.Context, runID string, totals payroll.RunTotals) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_runs SET
			total_workers = $2,
			total_gross_pay = $3,
			total_epf_employee = $4,
			total_epf_employer = $5,
			total_socso_employee = $6,
			total_socso_employer = $7,
			total_eis_employee = $8,
			total_eis_employer = $9,
			total_pcb = $10,
			total_deductions = $11,
			total_net_pay = $12
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, runID,
		totals.TotalWorkers, totals.GrossPay,
		totals.EPFEmployee, totals.EPFEmployer, totals.SOCSOEmployee, totals.SOCSOEmployer,
		totals.EISEmployee, totals.EISEmployer, totals.PCB, totals.TotalDeductions, totals.NetPay,
	)
	if err != nil {
		return fmt.Errorf("failed to update payroll run totals: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollRunNotFound
	}

	return nil
}

func (r *payrollRepository) GetRunByID(ctx context.Context, id string) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	if !validator.IsUUID(id) {
		return payroll.PayrollRun{}, payroll.ErrPayrollRunNotFound
	}

	query := "SELECT" + payrollRunColumns + "FROM payroll_runs WHERE id = $1"

	run, err := scanPayrollRun(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRun{}, payroll.ErrPayrollRunNotFound
		}
		return payroll.PayrollRun{}, fmt.Errorf("failed to get payroll run: %w", err)
	}

	return run, nil
}

func (r *payrollRepository) ListRuns(ctx context.Context, filter payroll.RunFilter) ([]payroll.PayrollRun, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := " WHERE 1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.Month != nil {
		where += fmt.Sprintf(" AND month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		where += fmt.Sprintf(" AND year = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM payroll_runs"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll runs: %w", err)
	}

	query := "SELECT" + payrollRunColumns + "FROM payroll_runs" + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll runs: %w", err)
	}
	defer rows.Close()

	var runs []payroll.PayrollRun
	for rows.Next() {
		run, err := scanPayrollRun(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, total, rows.Err()
}

// ========== PAYSLIPS ==========

const payslipColumns = `
	id, run_id, worker_id, worker_name, worker_type, total_tons, base_income, total_allowance, gross_pay,
	epf_employee, epf_employer, socso_employee, socso_employer, eis_employee, eis_employer,
	pcb_mtd, total_deduction_non_statutory, total_deductions, net_pay, created_at
`

func scanPayslip(row pgx.Row) (payroll.Payslip, error) {
	var p payroll.Payslip
	d := &p.Deductions
	err := row.Scan(
		&p.ID, &p.RunID, &p.WorkerID, &p.WorkerName, &p.WorkerType, &p.TotalTons, &p.BaseIncome, &p.TotalAllowance, &p.GrossPay,
		&d.EPFEmployee, &d.EPFEmployer, &d.SOCSOEmployee, &d.SOCSOEmployer, &d.EISEmployee, &d.EISEmployer,
		&d.PCB, &p.TotalDeductionNonStatutory, &p.TotalDeductions, &p.NetPay, &p.CreatedAt,
	)
	return p, err
}

func (r *payrollRepository) CreatePayslip(ctx context.Context, p payroll.Payslip) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_payslips (
			run_id, worker_id, worker_name, worker_type, total_tons, base_income, total_allowance, gross_pay,
			epf_employee, epf_employer, socso_employee, socso_employer, eis_employee, eis_employer,
			pcb_mtd, total_deduction_non_statutory, total_deductions, net_pay
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING` + payslipColumns

	d := p.Deductions
	created, err := scanPayslip(q.QueryRow(ctx, query,
		p.RunID, p.WorkerID, p.WorkerName, string(p.WorkerType), p.TotalTons, p.BaseIncome, p.TotalAllowance, p.GrossPay,
		d.EPFEmployee, d.EPFEmployer, d.SOCSOEmployee, d.SOCSOEmployer, d.EISEmployee, d.EISEmployer,
		d.PCB, p.TotalDeductionNonStatutory, p.TotalDeductions, p.NetPay,
	))
	if err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to create payslip: %w", err)
	}

	return created, nil
}

func (r *payrollRepository) ListPayslipsByRun(ctx context.Context, runID string) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT" + payslipColumns + "FROM payroll_payslips WHERE run_id = $1 ORDER BY worker_name, worker_id"

	rows, err := q.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var payslips []payroll.Payslip
	for rows.Next() {
		p, err := scanPayslip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		payslips = append(payslips, p)
	}

	return payslips, rows.Err()
}

// ========== PAYSLIP ITEMS ==========

func (r *payrollRepository) CreatePayslipItem(ctx context.Context, item payroll.PayslipItem) (payroll.PayslipItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_payslip_items (payslip_id, item_type, item_name, item_description, amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		item.PayslipID, string(item.ItemType), item.ItemName, item.ItemDescription, item.Amount,
	).Scan(&item.ID)
	if err != nil {
		return payroll.PayslipItem{}, fmt.Errorf("failed to create payslip item: %w", err)
	}

	return item, nil
}

func (r *payrollRepository) ListPayslipItemsByRun(ctx context.Context, runID string) ([]payroll.PayslipItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT i.id, i.payslip_id, i.item_type, i.item_name, i.item_description, i.amount
		FROM payroll_payslip_items i
		JOIN payroll_payslips p ON p.id = i.payslip_id
		WHERE p.run_id = $1
		ORDER BY i.payslip_id, i.id
	`

	rows, err := q.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslip items: %w", err)
	}
	defer rows.Close()

	var items []payroll.PayslipItem
	for rows.Next() {
		var it payroll.PayslipItem
		if err := rows.Scan(&it.ID, &it.PayslipID, &it.ItemType, &it.ItemName, &it.ItemDescription, &it.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan payslip item: %w", err)
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

// ========== ALLOWANCES ==========

const allowanceColumns = `
	id, worker_id, month, year, allowance_type, description, amount, created_at
`

func scanAllowance(row pgx.Row) (payroll.Allowance, error) {
	var a payroll.Allowance
	err := row.Scan(&a.ID, &a.WorkerID, &a.Month, &a.Year, &a.AllowanceType, &a.Description, &a.Amount, &a.CreatedAt)
	return a, err
}

func (r *payrollRepository) CreateAllowance(ctx context.Context, a payroll.Allowance) (payroll.Allowance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO manual_allowances (worker_id, month, year, allowance_type, description, amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING` + allowanceColumns

	created, err := scanAllowance(q.QueryRow(ctx, query,
		a.WorkerID, a.Month, a.Year, a.AllowanceType, a.Description, a.Amount,
	))
	if err != nil {
		return payroll.Allowance{}, fmt.Errorf("failed to create allowance: %w", err)
	}

	return created, nil
}

func (r *payrollRepository) ListAllowances(ctx context.Context, filter payroll.AllowanceFilter) ([]payroll.Allowance, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT" + allowanceColumns + "FROM manual_allowances WHERE month = $1 AND year = $2"
	args := []interface{}{filter.Month, filter.Year}

	if filter.WorkerID != "" {
		if !validator.IsUUID(filter.WorkerID) {
			return nil, nil
		}
		query += " AND worker_id = $3"
		args = append(args, filter.WorkerID)
	}
	query += " ORDER BY created_at, id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list allowances: %w", err)
	}
	defer rows.Close()

	var allowances []payroll.Allowance
	for rows.Next() {
		a, err := scanAllowance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan allowance: %w", err)
		}
		allowances = append(allowances, a)
	}

	return allowances, rows.Err()
}
