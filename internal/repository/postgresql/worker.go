package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worker"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/database"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type workerRepository struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepository{db: db}
}

const workerColumns = `
	id, name, type, status, age, marital_status, children_count,
	spouse_working, zakat_monthly, epf_no, permit_no, created_at, updated_at
`

func scanWorker(row pgx.Row) (worker.Worker, error) {
	var w worker.Worker
	err := row.Scan(
		&w.ID, &w.Name, &w.Type, &w.Status, &w.Age, &w.MaritalStatus, &w.ChildrenCount,
		&w.SpouseWorking, &w.ZakatMonthly, &w.EPFNo, &w.PermitNo, &w.CreatedAt, &w.UpdatedAt,
	)
	return w, err
}

func (r *workerRepository) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	if !validator.IsUUID(id) {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}

	query := "SELECT" + workerColumns + "FROM workers WHERE id = $1"

	w, err := scanWorker(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker: %w", err)
	}

	return w, nil
}

func (r *workerRepository) GetActiveByIDForUpdate(ctx context.Context, id string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	if !validator.IsUUID(id) {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}

	query := "SELECT" + workerColumns + "FROM workers WHERE id = $1 AND status = 'Active' FOR UPDATE"

	w, err := scanWorker(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to lock worker: %w", err)
	}

	return w, nil
}

func (r *workerRepository) ListActive(ctx context.Context, filter worker.TypeFilter) ([]worker.Worker, error) {
	return r.List(ctx, worker.ListWorkersFilter{
		Type:   string(filter),
		Status: string(worker.WorkerStatusActive),
	})
}

func (r *workerRepository) List(ctx context.Context, filter worker.ListWorkersFilter) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT" + workerColumns + "FROM workers WHERE 1=1"
	args := []interface{}{}
	argIdx := 1

	if t := worker.TypeFilter(filter.Type).WorkerType(); t != nil {
		query += fmt.Sprintf(" AND type = $%d", argIdx)
		args = append(args, string(*t))
		argIdx++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}
	query += " ORDER BY name, id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate workers: %w", err)
	}

	return workers, nil
}

type customerRepository struct {
	db *database.DB
}

func NewCustomerRepository(db *database.DB) worker.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (worker.Customer, error) {
	q := GetQuerier(ctx, r.db)

	if !validator.IsUUID(id) {
		return worker.Customer{}, worker.ErrCustomerNotFound
	}

	query := `SELECT id, name, rate, created_at FROM customers WHERE id = $1`

	var c worker.Customer
	err := q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Rate, &c.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.Customer{}, worker.ErrCustomerNotFound
		}
		return worker.Customer{}, fmt.Errorf("failed to get customer: %w", err)
	}

	return c, nil
}
