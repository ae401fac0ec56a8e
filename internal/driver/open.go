package driver

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strings"

	contextutil "github.com/carlosnayan/hrmanager/internal/context"
	"github.com/carlosnayan/hrmanager/internal/dialect"
	"github.com/carlosnayan/hrmanager/internal/logger"
	"github.com/go-sql-driver/mysql"
	zerologadapter "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
)

// Options describes how to reach the store
type Options struct {
	Provider string
	URL      string
	Pool     *PoolConfig
	Logger   *logger.Logger
}

// Open builds a pool for the configured provider and pings it. PostgreSQL
// uses pgxpool; MySQL and SQLite go through database/sql, whose drivers must
// be registered by the caller.
func Open(ctx context.Context, opts Options) (Database, error) {
	if opts.URL == "" {
		return nil, fmt.Errorf("datasource url is required")
	}

	var (
		db  Database
		err error
	)

	switch strings.ToLower(strings.TrimSpace(opts.Provider)) {
	case "postgresql", "postgres":
		db, err = openPgx(ctx, opts)
	case "mysql", "mariadb":
		var dsn string
		dsn, err = MySQLDSN(opts.URL)
		if err == nil {
			db, err = openSQL(&dialect.MySQLDialect{}, dsn, opts.Pool)
		}
	case "sqlite", "sqlite3":
		db, err = openSQL(&dialect.SQLiteDialect{}, SQLiteDSN(opts.URL), opts.Pool)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", opts.Provider)
	}
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := contextutil.WithPingTimeout(ctx)
	defer cancel()
	if err := db.Ping(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func openPgx(ctx context.Context, opts Options) (Database, error) {
	config, err := pgxpool.ParseConfig(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx pool config: %w", err)
	}

	ConfigurePgxPool(config, opts.Pool)

	if opts.Logger != nil && opts.Logger.Enabled(logger.LogLevelQuery) {
		config.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   zerologadapter.NewLogger(opts.Logger.Zerolog()),
			LogLevel: opts.Logger.TraceLevel(),
		}
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}
	return NewPgxPool(pool), nil
}

func openSQL(d dialect.Dialect, dsn string, poolConfig *PoolConfig) (Database, error) {
	db, err := sql.Open(d.GetDriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", d.Name(), err)
	}
	ConfigureSQLDB(db, poolConfig)
	return NewSQLDB(db), nil
}

// MySQLDSN converts a mysql:// URL or a native DSN into a go-sql-driver DSN.
// URL query parameters are read by the driver's own DSN parser, so driver
// options such as loc or timeout land on mysql.Config and only unknown keys
// are sent to the server as session variables. parseTime is always enabled
// so DATE columns scan as time.Time.
func MySQLDSN(raw string) (string, error) {
	var cfg *mysql.Config

	if strings.HasPrefix(raw, "mysql://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", fmt.Errorf("invalid mysql url: %w", err)
		}

		params := "/"
		if u.RawQuery != "" {
			params += "?" + u.RawQuery
		}
		cfg, err = mysql.ParseDSN(params)
		if err != nil {
			return "", fmt.Errorf("invalid mysql url parameters: %w", err)
		}

		cfg.User = u.User.Username()
		cfg.Passwd, _ = u.User.Password()
		cfg.Net = "tcp"
		if host := u.Hostname(); host != "" {
			port := u.Port()
			if port == "" {
				port = "3306"
			}
			cfg.Addr = net.JoinHostPort(host, port)
		}
		cfg.DBName = strings.TrimPrefix(u.Path, "/")
	} else {
		var err error
		cfg, err = mysql.ParseDSN(raw)
		if err != nil {
			return "", fmt.Errorf("invalid mysql dsn: %w", err)
		}
	}

	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}

// SQLiteDSN turns sqlite://path, sqlite:path or a bare path into a file: DSN
func SQLiteDSN(raw string) string {
	path := raw
	for _, prefix := range []string{"sqlite3://", "sqlite://", "sqlite:"} {
		if strings.HasPrefix(path, prefix) {
			path = strings.TrimPrefix(path, prefix)
			break
		}
	}
	if strings.HasPrefix(path, "file:") {
		return path
	}
	return "file:" + path
}
