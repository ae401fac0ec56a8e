package driver

import (
	"database/sql"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolConfig tunes the connection pool of either backend
type PoolConfig struct {
	MaxOpenConns    int           // upper bound of open connections
	MaxIdleConns    int           // connections kept open while idle
	ConnMaxLifetime time.Duration // maximum age of a connection
	ConnMaxIdleTime time.Duration // maximum idle time before a connection is closed
}

// DefaultPoolConfig returns the pool defaults
func DefaultPoolConfig() *PoolConfig {
	return &PoolConfig{
		MaxOpenConns:    10,
		MaxIdleConns:    2,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}
}

// ConfigurePgxPool applies the pool settings to a pgxpool config
func ConfigurePgxPool(config *pgxpool.Config, poolConfig *PoolConfig) {
	if poolConfig == nil {
		poolConfig = DefaultPoolConfig()
	}

	if poolConfig.MaxOpenConns > 0 {
		config.MaxConns = int32(poolConfig.MaxOpenConns)
	}
	if poolConfig.MaxIdleConns > 0 {
		config.MinConns = int32(min(poolConfig.MaxIdleConns, int(config.MaxConns)))
	}
	if poolConfig.ConnMaxLifetime > 0 {
		config.MaxConnLifetime = poolConfig.ConnMaxLifetime
	}
	if poolConfig.ConnMaxIdleTime > 0 {
		config.MaxConnIdleTime = poolConfig.ConnMaxIdleTime
	}
}

// ConfigureSQLDB applies the pool settings to a database/sql pool
func ConfigureSQLDB(db *sql.DB, poolConfig *PoolConfig) {
	if poolConfig == nil {
		poolConfig = DefaultPoolConfig()
	}

	db.SetMaxOpenConns(poolConfig.MaxOpenConns)
	db.SetMaxIdleConns(poolConfig.MaxIdleConns)
	db.SetConnMaxLifetime(poolConfig.ConnMaxLifetime)
	db.SetConnMaxIdleTime(poolConfig.ConnMaxIdleTime)
}
