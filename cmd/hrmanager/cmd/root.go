package cmd

import (
	"context"
	"io"
	"os"

	"github.com/carlosnayan/hrmanager/cli"
	"github.com/carlosnayan/hrmanager/internal/config"
	"github.com/carlosnayan/hrmanager/internal/logger"
)

var (
	configFile string
	verbose    bool
)

// stdin and stdout are replaced in tests
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

// Execute runs the CLI application with args
func Execute(ctx context.Context, args []string) error {
	app := newApp()
	return app.Execute(ctx, args)
}

func newApp() *cli.App {
	configFile, verbose = "", false

	app := cli.NewApp(
		"hrmanager",
		"0.1.0",
		"Employee records and an in-memory board from the terminal",
	)
	app.Out = stdout

	app.AddGlobalFlag(&cli.Flag{
		Name:  "config",
		Short: "c",
		Usage: "Path to configuration file (default: " + config.FileName + ")",
		Value: &configFile,
	})
	app.AddGlobalFlag(&cli.Flag{
		Name:  "verbose",
		Short: "v",
		Usage: "Verbose mode (log queries and info)",
		Value: &verbose,
	})

	app.AddCommand(initCmd)
	app.AddCommand(employeesCmd)
	app.AddCommand(boardCmd)
	return app
}

// logLevels adds query and info logging in verbose mode
func logLevels(levels []string) []string {
	if !verbose {
		return levels
	}
	return append(levels, "query", "info")
}

// loadConfig reads the configuration and installs the configured logger.
// Logs go to stderr so they do not mix with the menus.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	logger.SetDefaultLogger(logger.NewLogger(logLevels(cfg.Log), os.Stderr, logger.WithPretty(cfg.PrettyLog)))
	return cfg, nil
}
