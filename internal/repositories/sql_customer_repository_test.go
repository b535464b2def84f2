package repositories

import (
	"testing"

	"customer-service/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLCustomerRepository_PingFollowsDatabaseHealth(t *testing.T) {
	db := database.SetupTestDB(t)
	repo := NewSQLCustomerRepository(db, NewSequenceGenerator())

	require.NoError(t, repo.Ping())

	require.NoError(t, db.Close())

	err := repo.Ping()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "customer database unreachable")
}
