package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/statutory"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// Lookups run inside a savepoint of the caller's transaction, if any, so a
// failed lookup leaves that transaction usable.
type bracketRepository struct {
	db *database.DB
}

func NewBracketRepository(db *database.DB) statutory.BracketRepository {
	return &bracketRepository{db: db}
}

const localBracketColumns = `id, salary_floor, salary_ceiling, socso_employee, socso_employer, eis_employee, eis_employer`

const foreignBracketColumns = `id, salary_floor, salary_ceiling, employer_contribution`

func scanLocalBracket(row pgx.Row) (statutory.LocalBracket, error) {
	var b statutory.LocalBracket
	err := row.Scan(&b.ID, &b.SalaryFloor, &b.SalaryCeiling, &b.SOCSOEmployee, &b.SOCSOEmployer, &b.EISEmployee, &b.EISEmployer)
	return b, err
}

func scanForeignBracket(row pgx.Row) (statutory.ForeignBracket, error) {
	var b statutory.ForeignBracket
	err := row.Scan(&b.ID, &b.SalaryFloor, &b.SalaryCeiling, &b.EmployerContribution)
	return b, err
}

func (r *bracketRepository) FindLocal(ctx context.Context, grossPay decimal.Decimal) (statutory.LocalBracket, error) {
	query := `
		SELECT ` + localBracketColumns + `
		FROM socso_eis_schedule
		WHERE salary_floor <= $1 AND salary_ceiling >= $1
		ORDER BY salary_floor ASC
		LIMIT 1
	`

	var b statutory.LocalBracket
	err := WithSavepoint(ctx, r.db, func(q database.Querier) error {
		var err error
		b, err = scanLocalBracket(q.QueryRow(ctx, query, grossPay))
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return statutory.LocalBracket{}, statutory.ErrBracketNotFound
		}
		return statutory.LocalBracket{}, fmt.Errorf("failed to find socso/eis bracket: %w", err)
	}

	return b, nil
}

func (r *bracketRepository) TopLocal(ctx context.Context) (statutory.LocalBracket, error) {
	query := `
		SELECT ` + localBracketColumns + `
		FROM socso_eis_schedule
		ORDER BY salary_floor DESC
		LIMIT 1
	`

	var b statutory.LocalBracket
	err := WithSavepoint(ctx, r.db, func(q database.Querier) error {
		var err error
		b, err = scanLocalBracket(q.QueryRow(ctx, query))
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return statutory.LocalBracket{}, statutory.ErrBracketNotFound
		}
		return statutory.LocalBracket{}, fmt.Errorf("failed to get top socso/eis bracket: %w", err)
	}

	return b, nil
}

func (r *bracketRepository) FindForeign(ctx context.Context, grossPay decimal.Decimal) (statutory.ForeignBracket, error) {
	query := `
		SELECT ` + foreignBracketColumns + `
		FROM socso_foreign_schedule
		WHERE salary_floor <= $1 AND salary_ceiling >= $1
		ORDER BY salary_floor ASC
		LIMIT 1
	`

	var b statutory.ForeignBracket
	err := WithSavepoint(ctx, r.db, func(q database.Querier) error {
		var err error
		b, err = scanForeignBracket(q.QueryRow(ctx, query, grossPay))
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return statutory.ForeignBracket{}, statutory.ErrBracketNotFound
		}
		return statutory.ForeignBracket{}, fmt.Errorf("failed to find foreign socso bracket: %w", err)
	}

	return b, nil
}

func (r *bracketRepository) TopForeign(ctx context.Context) (statutory.ForeignBracket, error) {
	query := `
		SELECT ` + foreignBracketColumns + `
		FROM socso_foreign_schedule
		ORDER BY salary_floor DESC
		LIMIT 1
	`

	var b statutory.ForeignBracket
	err := WithSavepoint(ctx, r.db, func(q database.Querier) error {
		var err error
		b, err = scanForeignBracket(q.QueryRow(ctx, query))
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return statutory.ForeignBracket{}, statutory.ErrBracketNotFound
		}
		return statutory.ForeignBracket{}, fmt.Errorf("failed to get top foreign socso bracket: %w", err)
	}

	return b, nil
}

func (r *bracketRepository) ListLocal(ctx context.Context) ([]statutory.LocalBracket, error) {
	rows, err := GetQuerier(ctx, r.db).Query(ctx, "SELECT "+localBracketColumns+" FROM socso_eis_schedule ORDER BY salary_floor ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list socso/eis brackets: %w", err)
	}
	defer rows.Close()

	var brackets []statutory.LocalBracket
	for rows.Next() {
		b, err := scanLocalBracket(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan socso/eis bracket: %w", err)
		}
		brackets = append(brackets, b)
	}

	return brackets, rows.Err()
}

func (r *bracketRepository) ListForeign(ctx context.Context) ([]statutory.ForeignBracket, error) {
	rows, err := GetQuerier(ctx, r.db).Query(ctx, "SELECT "+foreignBracketColumns+" FROM socso_foreign_schedule ORDER BY salary_floor ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list foreign socso brackets: %w", err)
	}
	defer rows.Close()

	var brackets []statutory.ForeignBracket
	for rows.Next() {
		b, err := scanForeignBracket(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan foreign socso bracket: %w", err)
		}
		brackets = append(brackets, b)
	}

	return brackets, rows.Err()
}

// InsertSchedulesIfEmpty locks both schedule tables and inserts the rows only
// when neither holds any, so concurrent starts seed at most once.
func (r *bracketRepository) InsertSchedulesIfEmpty(ctx context.Context, local []statutory.LocalBracket, foreign []statutory.ForeignBracket) (bool, error) {
	seeded := false
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "LOCK TABLE socso_eis_schedule, socso_foreign_schedule IN EXCLUSIVE MODE"); err != nil {
			return fmt.Errorf("failed to lock schedules: %w", err)
		}

		var populated bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS (SELECT 1 FROM socso_eis_schedule)
				OR EXISTS (SELECT 1 FROM socso_foreign_schedule)
		`).Scan(&populated)
		if err != nil {
			return fmt.Errorf("failed to check schedules: %w", err)
		}
		if populated {
			return nil
		}

		batch := &pgx.Batch{}
		for _, b := range local {
			batch.Queue(`
				INSERT INTO socso_eis_schedule (salary_floor, salary_ceiling, socso_employee, socso_employer, eis_employee, eis_employer)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, b.SalaryFloor, b.SalaryCeiling, b.SOCSOEmployee, b.SOCSOEmployer, b.EISEmployee, b.EISEmployer)
		}
		for _, b := range foreign {
			batch.Queue(`
				INSERT INTO socso_foreign_schedule (salary_floor, salary_ceiling, employer_contribution)
				VALUES ($1, $2, $3)
			`, b.SalaryFloor, b.SalaryCeiling, b.EmployerContribution)
		}

		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to insert brackets: %w", err)
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return seeded, nil
}
