package postgresql_test

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/cmlabs-hris/hris-attendance-chart/internal/pkg/database"
)

const testSchema = "attendance_chart_test"

// TestDatabaseSetup holds a pool whose search_path points at an isolated
// schema with the tables the chart reads.
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL. ok is false when the
// variable is unset.
func NewTestDatabase(ctx context.Context) (setup *TestDatabaseSetup, ok bool, err error) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		return nil, false, nil
	}

	admin, err := database.NewPostgreSQLDB(ctx, dsn)
	if err != nil {
		return nil, true, fmt.Errorf("failed to connect to test database: %w", err)
	}
	defer admin.Close()

	if _, err := admin.Exec(ctx, fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, testSchema)); err != nil {
		return nil, true, fmt.Errorf("failed to create test schema: %w", err)
	}

	scoped, err := withSearchPath(dsn, testSchema)
	if err != nil {
		return nil, true, err
	}

	db, err := database.NewPostgreSQLDB(ctx, scoped)
	if err != nil {
		return nil, true, fmt.Errorf("failed to connect to test schema: %w", err)
	}

	setup = &TestDatabaseSetup{DB: db}
	if err := setup.migrate(ctx); err != nil {
		db.Close()
		return nil, true, err
	}
	return setup, true, nil
}

func withSearchPath(dsn, schema string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("invalid TEST_DATABASE_URL: %w", err)
	}
	q := u.Query()
	q.Set("search_path", schema)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (t *TestDatabaseSetup) migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS employees (
			id UUID PRIMARY KEY,
			company_id UUID NOT NULL,
			full_name TEXT NOT NULL,
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS attendances (
			id BIGSERIAL PRIMARY KEY,
			employee_id UUID NOT NULL REFERENCES employees(id),
			company_id UUID NOT NULL,
			date DATE NOT NULL,
			status TEXT NOT NULL,
			clock_in TIMESTAMPTZ,
			clock_out TIMESTAMPTZ
		)`,
	}
	for _, stmt := range statements {
		if _, err := t.DB.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to migrate test schema: %w", err)
		}
	}
	return nil
}

// TruncateAllTables removes all rows from the test tables
func (t *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	_, err := t.DB.Exec(ctx, `TRUNCATE TABLE attendances, employees CASCADE`)
	return err
}

// Close closes the database connection
func (t *TestDatabaseSetup) Close() {
	t.DB.Close()
}
