package cmd

import (
	"context"
	"os"

	"github.com/carlosnayan/hrmanager/board"
	"github.com/carlosnayan/hrmanager/cli"
	"github.com/carlosnayan/hrmanager/console"
	"github.com/carlosnayan/hrmanager/internal/logger"
)

var boardCmd = &cli.Command{
	Name:  "board",
	Short: "Run the in-memory board",
	Long: `Opens the board menu. Posts live in memory only and are lost on exit.
No configuration file is needed.`,
	Usage: "hrmanager board",
	Run:   runBoard,
}

func runBoard(ctx context.Context, args []string) error {
	log := logger.NewLogger(logLevels([]string{"warn", "error"}), os.Stderr)
	svc := board.NewService(board.NewStore(), board.WithLogger(log))
	return console.NewBoardMenu(svc, console.NewIO(stdin, stdout)).Run(ctx)
}
