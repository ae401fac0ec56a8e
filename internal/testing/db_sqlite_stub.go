//go:build !sqlite

package testing

import (
	"testing"

	"github.com/carlosnayan/hrmanager/internal/driver"
)

// SetupSQLiteTestDB skips the test when built without the sqlite tag
func SetupSQLiteTestDB(t *testing.T) (driver.Database, func()) {
	t.Skip("SQLite driver not compiled in. Run tests with -tags=sqlite")
	return nil, nil
}
