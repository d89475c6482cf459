package checks

import (
	"testing"

	"partflow-sync/core/database"
	"partflow-sync/feature/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckUsersTable(t *testing.T) {
	_, err := CheckUsersTable(nil)
	assert.Error(t, err)

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	report, err := CheckUsersTable(db)
	require.NoError(t, err)
	assert.False(t, report.Exists)
	assert.Equal(t, users.Columns, report.Missing)

	require.NoError(t, users.Migrate(db))

	report, err = CheckUsersTable(db)
	require.NoError(t, err)
	assert.True(t, report.Exists)
	assert.Empty(t, report.Missing)
	assert.ElementsMatch(t, users.Columns, report.Columns)
}
