package cmd

import (
	"context"
	"fmt"

	"github.com/carlosnayan/hrmanager/cli"
	"github.com/carlosnayan/hrmanager/console"
	"github.com/carlosnayan/hrmanager/employee"
	"github.com/carlosnayan/hrmanager/internal/dialect"
	"github.com/carlosnayan/hrmanager/internal/driver"
	"github.com/carlosnayan/hrmanager/internal/logger"
)

var employeesCmd = &cli.Command{
	Name:  "employees",
	Short: "Manage employee records interactively",
	Long: `Opens the employee menu against the configured datasource:
  search by field or job history period, list, add, update,
  rename, update by field and delete.`,
	Usage: "hrmanager employees",
	Run:   runEmployees,
}

func runEmployees(ctx context.Context, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logger.GetDefaultLogger()

	opts := cfg.DriverOptions()
	opts.Logger = log
	db, err := driver.Open(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", cfg.Datasource.Provider, err)
	}
	defer db.Close()
	log.Info("connected to %s", cfg.Datasource.Provider)

	repo := employee.NewRepository(db, dialect.GetDialect(cfg.Datasource.Provider), employee.WithLogger(log))
	return console.NewEmployeeMenu(repo, console.NewIO(stdin, stdout)).Run(ctx)
}
