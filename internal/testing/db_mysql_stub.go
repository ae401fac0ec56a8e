//go:build !mysql

package testing

import (
	"testing"

	"github.com/carlosnayan/hrmanager/internal/driver"
)

// SetupMySQLTestDB skips the test when built without the mysql tag
func SetupMySQLTestDB(t *testing.T) (driver.Database, func()) {
	t.Skip("MySQL tests disabled. Run tests with -tags=mysql and TEST_DATABASE_URL_MYSQL")
	return nil, nil
}
