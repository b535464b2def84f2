package database

import (
	"fmt"
	"testing"

	"customer-service/internal/config"
)

var testDBCounter int

// SetupTestDB opens a private in-memory database with the schema applied
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	testDBCounter++
	cfg := &config.StoreConfig{
		Backend: config.BackendSQLite,
		DSN:     fmt.Sprintf("file:customer_test_%d?mode=memory&cache=shared", testDBCounter),
	}

	db, err := Initialize(cfg)
	if err != nil {
		t.Fatalf("failed to set up test database: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	return db
}

// CleanupTestDB removes every row written by a test
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Exec("DELETE FROM customers").Error; err != nil {
		t.Logf("failed to cleanup table customers: %v", err)
	}
}
