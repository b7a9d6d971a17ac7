package mysql

import (
	"database/sql"
	"fmt"
	"os"
	"testing"
)

var testDB *sql.DB

// The storage tests run against a live MySQL with sql/schema.sql applied.
// Set TEST_DB_DSN, e.g. "root:@tcp(localhost:3306)/dropx_test?parseTime=true";
// without it the package's DB tests are skipped.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		os.Exit(0)
	}

	var err error
	testDB, err = sql.Open("mysql", dsn)
	if err != nil {
		panic(fmt.Errorf("cannot open test db: %w", err))
	}
	defer testDB.Close()

	if err := testDB.Ping(); err != nil {
		panic(fmt.Errorf("ping failed: %w", err))
	}

	os.Exit(m.Run())
}
