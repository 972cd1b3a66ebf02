package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worklog"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/database"
)

type workLogRepository struct {
	db *database.DB
}

func NewWorkLogRepository(db *database.DB) worklog.WorkLogRepository {
	return &workLogRepository{db: db}
}

func (r *workLogRepository) Create(ctx context.Context, log worklog.WorkLog) (worklog.WorkLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_logs (log_date, worker_id, customer_id, tons, rate_per_ton)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, log_date, worker_id, customer_id, tons, rate_per_ton, created_at
	`

	var l worklog.WorkLog
	err := q.QueryRow(ctx, query,
		log.LogDate, log.WorkerID, log.CustomerID, log.Tons, log.RatePerTon,
	).Scan(
		&l.ID, &l.LogDate, &l.WorkerID, &l.CustomerID, &l.Tons, &l.RatePerTon, &l.CreatedAt,
	)
	if err != nil {
		return worklog.WorkLog{}, fmt.Errorf("failed to create work log: %w", err)
	}

	return l, nil
}

func (r *workLogRepository) ListByWorkerBetween(ctx context.Context, workerID string, from, to time.Time) ([]worklog.WorkLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT wl.id, wl.log_date, wl.worker_id, wl.customer_id, wl.tons, wl.rate_per_ton, wl.created_at, c.name
		FROM work_logs wl
		LEFT JOIN customers c ON c.id = wl.customer_id
		WHERE wl.worker_id = $1 AND wl.log_date BETWEEN $2 AND $3
		ORDER BY wl.log_date ASC, wl.id ASC
	`

	return r.list(ctx, q, query, workerID, from, to)
}

func (r *workLogRepository) ListUnsettledByWorker(ctx context.Context, workerID string, forUpdate bool) ([]worklog.WorkLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT wl.id, wl.log_date, wl.worker_id, wl.customer_id, wl.tons, wl.rate_per_ton, wl.created_at, c.name
		FROM work_logs wl
		LEFT JOIN customers c ON c.id = wl.customer_id
		WHERE wl.worker_id = $1
		  AND NOT EXISTS (
			SELECT 1 FROM settlement_work_logs swl WHERE swl.work_log_id = wl.id
		  )
		ORDER BY wl.log_date ASC, wl.id ASC
	`
	if forUpdate {
		query += " FOR UPDATE OF wl"
	}

	return r.list(ctx, q, query, workerID)
}

func (r *workLogRepository) list(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]worklog.WorkLog, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list work logs: %w", err)
	}
	defer rows.Close()

	var logs []worklog.WorkLog
	for rows.Next() {
		var l worklog.WorkLog
		if err := rows.Scan(
			&l.ID, &l.LogDate, &l.WorkerID, &l.CustomerID, &l.Tons, &l.RatePerTon, &l.CreatedAt, &l.CustomerName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan work log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate work logs: %w", err)
	}

	return logs, nil
}
