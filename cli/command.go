package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Command is a named action of the application
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(ctx context.Context, args []string) error
	Subcommands []*Command
	Flags       []*Flag
}

// Flag is a command-line option bound to a variable. Value must be a
// *string, *bool or *int.
type Flag struct {
	Name     string
	Short    string
	Usage    string
	Required bool
	Value    any
}

// App is the command-line application
type App struct {
	Name        string
	Version     string
	Description string
	Commands    []*Command
	GlobalFlags []*Flag

	// Out and Err default to os.Stdout and os.Stderr
	Out io.Writer
	Err io.Writer
}

// NewApp creates a new CLI application
func NewApp(name, version, description string) *App {
	return &App{
		Name:        name,
		Version:     version,
		Description: description,
		Out:         os.Stdout,
		Err:         os.Stderr,
	}
}

// AddCommand registers a command
func (a *App) AddCommand(cmd *Command) {
	a.Commands = append(a.Commands, cmd)
}

// AddGlobalFlag registers a flag accepted before or after any command
func (a *App) AddGlobalFlag(flag *Flag) {
	a.GlobalFlags = append(a.GlobalFlags, flag)
}

// Execute parses args (without the program name) and runs the selected
// command
func (a *App) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return nil
	}

	switch args[0] {
	case "--version":
		fmt.Fprintf(a.Out, "%s version %s\n", a.Name, a.Version)
		return nil
	case "--help", "-h", "help":
		a.printUsage()
		return nil
	}

	_, remaining, err := parseFlags(args, a.GlobalFlags)
	if err != nil {
		return err
	}
	if len(remaining) == 0 {
		a.printUsage()
		return nil
	}

	cmd := find(a.Commands, remaining[0])
	if cmd == nil {
		fmt.Fprintf(a.Err, "Unknown command: %s\n\n", remaining[0])
		a.printUsage()
		return fmt.Errorf("unknown command: %s", remaining[0])
	}
	cmdArgs := remaining[1:]

	if len(cmdArgs) > 0 && !strings.HasPrefix(cmdArgs[0], "-") {
		if sub := find(cmd.Subcommands, cmdArgs[0]); sub != nil {
			cmd, cmdArgs = sub, cmdArgs[1:]
		}
	}

	if hasHelp(cmdArgs) || cmd.Run == nil {
		cmd.PrintUsage(a.Out)
		return nil
	}

	_, finalArgs, err := parseFlags(cmdArgs, cmd.Flags)
	if err != nil {
		return err
	}
	return cmd.Run(ctx, finalArgs)
}

func find(commands []*Command, name string) *Command {
	for _, c := range commands {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func hasHelp(args []string) bool {
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}

// parseFlags binds the known flags in args and returns the values it set
// with the remaining arguments. Unknown flags are left in the remaining
// arguments.
func parseFlags(args []string, flags []*Flag) (map[string]any, []string, error) {
	parsed := make(map[string]any)
	var remaining []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if len(arg) < 2 || arg[0] != '-' {
			remaining = append(remaining, arg)
			continue
		}

		name := strings.TrimLeft(arg, "-")
		value, hasValue := "", false
		if eq := strings.IndexByte(name, '='); eq != -1 {
			name, value, hasValue = name[:eq], name[eq+1:], true
		}

		flag := lookup(flags, name)
		if flag == nil {
			remaining = append(remaining, arg)
			continue
		}

		if _, isBool := flag.Value.(*bool); isBool {
			if !hasValue {
				value = "true"
			}
		} else if !hasValue {
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "-") {
				return nil, nil, fmt.Errorf("flag --%s needs a value", flag.Name)
			}
			i++
			value = args[i]
		}

		if err := setFlagValue(flag, value); err != nil {
			return nil, nil, err
		}
		parsed[flag.Name] = value
	}

	for _, flag := range flags {
		if _, ok := parsed[flag.Name]; flag.Required && !ok {
			return nil, nil, fmt.Errorf("flag --%s is required", flag.Name)
		}
	}

	return parsed, remaining, nil
}

func lookup(flags []*Flag, name string) *Flag {
	for _, f := range flags {
		if f.Name == name || (f.Short != "" && f.Short == name) {
			return f
		}
	}
	return nil
}

func setFlagValue(flag *Flag, value string) error {
	switch v := flag.Value.(type) {
	case *string:
		*v = value
	case *bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("flag --%s: %q is not a boolean", flag.Name, value)
		}
		*v = b
	case *int:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("flag --%s: %q is not a number", flag.Name, value)
		}
		*v = n
	default:
		return fmt.Errorf("flag --%s has unsupported type %T", flag.Name, flag.Value)
	}
	return nil
}

func (a *App) printUsage() {
	fmt.Fprintf(a.Out, "%s - %s\n\n", a.Name, a.Description)
	fmt.Fprintf(a.Out, "Usage:\n  %s [flags] [command] [arguments]\n\n", a.Name)

	if len(a.Commands) > 0 {
		fmt.Fprintln(a.Out, "Commands:")
		for _, cmd := range a.Commands {
			fmt.Fprintf(a.Out, "  %-15s %s\n", cmd.Name, cmd.Short)
		}
		fmt.Fprintln(a.Out)
	}

	if len(a.GlobalFlags) > 0 {
		fmt.Fprintln(a.Out, "Global Flags:")
		printFlags(a.Out, a.GlobalFlags)
		fmt.Fprintln(a.Out)
	}

	fmt.Fprintf(a.Out, "Use '%s [command] --help' for more information about a command.\n", a.Name)
}

// PrintUsage writes the help text of cmd
func (cmd *Command) PrintUsage(w io.Writer) {
	if cmd.Long != "" {
		fmt.Fprintln(w, cmd.Long)
		fmt.Fprintln(w)
	}

	usage := cmd.Usage
	if usage == "" {
		usage = cmd.Name
	}
	fmt.Fprintf(w, "Usage:\n  %s\n\n", usage)

	if len(cmd.Flags) > 0 {
		fmt.Fprintln(w, "Flags:")
		printFlags(w, cmd.Flags)
		fmt.Fprintln(w)
	}

	if len(cmd.Subcommands) > 0 {
		fmt.Fprintln(w, "Subcommands:")
		for _, sub := range cmd.Subcommands {
			fmt.Fprintf(w, "  %-15s %s\n", sub.Name, sub.Short)
		}
		fmt.Fprintln(w)
	}
}

func printFlags(w io.Writer, flags []*Flag) {
	for _, flag := range flags {
		short := ""
		if flag.Short != "" {
			short = fmt.Sprintf("-%s, ", flag.Short)
		}
		required := ""
		if flag.Required {
			required = " (required)"
		}
		fmt.Fprintf(w, "  %s--%s\t%s%s\n", short, flag.Name, flag.Usage, required)
	}
}
