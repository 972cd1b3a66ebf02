package postgresql_test

import (
	"context"
	"fmt"
	"os"

	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/database"
)

// ErrNoTestDatabase is returned when TEST_DATABASE_URL is not set.
var ErrNoTestDatabase = fmt.Errorf("TEST_DATABASE_URL is not set")

type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL and applies the migrations in
// migrationsDir.
func NewTestDatabase(ctx context.Context, migrationsDir string) (*TestDatabaseSetup, error) {
	db, err := OpenTestPool(database.PoolOptions{MaxConns: 5, MinConns: 1})
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx, migrationsDir); err != nil {
		db.Close()
		return nil, err
	}

	return &TestDatabaseSetup{DB: db}, nil
}

// OpenTestPool opens an extra pool on TEST_DATABASE_URL without migrating.
func OpenTestPool(opts database.PoolOptions) (*database.DB, error) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		return nil, ErrNoTestDatabase
	}

	db, err := database.NewPostgreSQLDB(dsn, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}
	return db, nil
}

// TruncateAllTables removes every row the payroll tables hold.
func (t *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tx, err := t.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tables := []string{
		"settlement_work_logs",
		"worker_settlements",
		"payroll_payslip_items",
		"payroll_payslips",
		"payroll_runs",
		"manual_allowances",
		"work_logs",
		"customers",
		"workers",
		"socso_eis_schedule",
		"socso_foreign_schedule",
	}

	for _, table := range tables {
		_, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}

func (t *TestDatabaseSetup) Close() {
	t.DB.Close()
}
