package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/carlosnayan/hrmanager/cli"
	"github.com/carlosnayan/hrmanager/internal/config"
)

var (
	providerFlag string
	databaseFlag string
	forceFlag    bool
)

var initCmd = &cli.Command{
	Name:  "init",
	Short: "Create " + config.FileName + " in the current directory",
	Long: `Writes a configuration file with the chosen provider. The datasource
URL defaults to env('DATABASE_URL').`,
	Usage: "hrmanager init [--provider postgresql|mysql|sqlite] [--database URL] [--force]",
	Flags: []*cli.Flag{
		{
			Name:  "provider",
			Short: "p",
			Usage: "Database provider (postgresql, mysql, sqlite)",
			Value: &providerFlag,
		},
		{
			Name:  "database",
			Short: "d",
			Usage: "Database connection URL",
			Value: &databaseFlag,
		},
		{
			Name:  "force",
			Short: "f",
			Usage: "Overwrite an existing configuration file",
			Value: &forceFlag,
		},
	},
	Run: runInit,
}

func runInit(ctx context.Context, args []string) error {
	defer func() { providerFlag, databaseFlag, forceFlag = "", "", false }()

	if _, err := os.Stat(config.FileName); err == nil && !forceFlag {
		return fmt.Errorf("%s already exists in this directory. Use 'hrmanager init --force' to overwrite", config.FileName)
	}

	provider := providerFlag
	if provider == "" {
		provider = promptForProvider(stdin, stdout)
	}

	content := generateConfig(provider, databaseFlag)
	if err := os.WriteFile(config.FileName, []byte(content), 0644); err != nil {
		return fmt.Errorf("error creating %s: %w", config.FileName, err)
	}

	fmt.Fprintf(stdout, "Created %s\n\n", config.FileName)
	fmt.Fprintln(stdout, "Next steps:")
	if databaseFlag == "" {
		fmt.Fprintln(stdout, "  1. Set DATABASE_URL in the environment or in .env")
	} else {
		fmt.Fprintln(stdout, "  1. Check the datasource url in "+config.FileName)
	}
	fmt.Fprintln(stdout, "  2. Run 'hrmanager employees'")
	return nil
}

func generateConfig(provider, url string) string {
	if url == "" {
		url = `env('DATABASE_URL')`
	}

	return fmt.Sprintf(`# hrmanager configuration

# query, info, warn, error
log = ["warn", "error"]
pretty_log = true

[datasource]
provider = %q
url = %q

[pool]
max_open_conns = 10
max_idle_conns = 2
`, provider, url)
}

// promptForProvider asks for a provider, defaulting to PostgreSQL
func promptForProvider(in io.Reader, out io.Writer) string {
	reader := bufio.NewReader(in)

	fmt.Fprintln(out, "Select a database provider:")
	fmt.Fprintln(out, "  1) PostgreSQL")
	fmt.Fprintln(out, "  2) MySQL")
	fmt.Fprintln(out, "  3) SQLite")
	fmt.Fprint(out, "Enter choice (1-3) [default: 1]: ")

	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		fmt.Fprintln(out, "\nNo input, defaulting to PostgreSQL")
		return "postgresql"
	}

	switch strings.TrimSpace(input) {
	case "", "1", "postgresql", "postgres":
		return "postgresql"
	case "2", "mysql":
		return "mysql"
	case "3", "sqlite":
		return "sqlite"
	default:
		fmt.Fprintf(out, "Invalid choice '%s', defaulting to PostgreSQL\n", strings.TrimSpace(input))
		return "postgresql"
	}
}
