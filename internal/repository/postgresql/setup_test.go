package postgresql_test

import (
	"context"
	"fmt"
	"os"

	"github.com/cmlabs-hris/shift-payroll/internal/pkg/database"
	"github.com/cmlabs-hris/shift-payroll/internal/repository/postgresql"
)

// TestDatabaseSetup holds the connection used by the repository tests.
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL and applies the schema. It
// returns nil without error when the variable is unset.
func NewTestDatabase(ctx context.Context) (*TestDatabaseSetup, error) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		return nil, nil
	}

	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolOptions{MaxConns: 4})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}
	if err := postgresql.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &TestDatabaseSetup{DB: db}, nil
}

// TruncateAllTables removes every row written by the tests.
func (t *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	_, err := t.DB.Exec(ctx, `TRUNCATE TABLE timesheets, salaries, leave_requests, shift_cover_requests, shifts, staff CASCADE`)
	return err
}
