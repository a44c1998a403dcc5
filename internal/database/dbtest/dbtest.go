// Package dbtest opens throwaway sqlite databases for tests.
package dbtest

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bookclub/backend/internal/config"
	"github.com/bookclub/backend/internal/database"
)

// New returns a migrated database in the test's temp dir, closed on cleanup.
func New(t testing.TB) *database.Database {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.NewDatabase(config.Database{
		Driver:   config.DriverSQLite,
		Path:     filepath.Join(t.TempDir(), "test_"+name+".db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})
	return db
}
