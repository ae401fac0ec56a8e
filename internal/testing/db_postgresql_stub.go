//go:build !pgx

package testing

import (
	"testing"

	"github.com/carlosnayan/hrmanager/internal/driver"
)

// SetupPostgreSQLTestDB skips the test when built without the pgx tag
func SetupPostgreSQLTestDB(t *testing.T) (driver.Database, func()) {
	t.Skip("PostgreSQL tests disabled. Run tests with -tags=pgx and TEST_DATABASE_URL_POSTGRESQL")
	return nil, nil
}
