package cli

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"doru/internal/commands"
	"doru/internal/config"
	"doru/internal/exitcode"
	"doru/internal/store"
)

// Dispatcher handles command-line parsing and dispatch.
// Each run loads the store, runs one command, and saves the store if the
// command changed it.
type Dispatcher struct {
	registry *commands.Registry
}

// NewDispatcher creates a new dispatcher with the given registry.
func NewDispatcher(registry *commands.Registry) *Dispatcher {
	return &Dispatcher{
		registry: registry,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> dispatch to "list" command with no args
	if len(args) == 0 {
		return d.dispatch(ctx, "list", nil, out, errOut)
	}

	cmdName := args[0]

	// If first token starts with -, it's an error (flags require a command)
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatch(ctx, cmdName, args[1:], out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	// Create flag set with custom error handling
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var path string
	var quiet bool
	var debug bool

	fs.StringVar(&path, "path", "", "")
	fs.StringVar(&path, "p", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	// Register command-specific flags
	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", flagError(err))
		return exitcode.UserError
	}

	// Check if first positional arg starts with - (should have been parsed as flag)
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	cfg := config.New(path)
	cfg.Quiet = quiet
	cfg.SetDebug(debug, errOut)

	if !cmd.NeedsStore() {
		return cmd.Run(ctx, cfg, nil, positionalArgs, out, errOut)
	}

	if err := cfg.ResolvePath(); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.StorageError
	}

	log := cfg.Logger.With("command", cmd.Name(), "path", cfg.Path)

	st, err := store.Load(cfg.Path)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return commands.ExitCode(err)
	}
	log.Debug("store loaded", "tasks", st.Len(), "next_id", st.NextID())

	// Hold output until the store is saved so a failed save never follows
	// a success message.
	var buf bytes.Buffer
	code := cmd.Run(ctx, cfg, st, positionalArgs, &buf, errOut)

	if code == exitcode.Success && cmd.Mutates() {
		if err := st.Save(cfg.Path); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return commands.ExitCode(err)
		}
		log.Debug("store saved", "tasks", st.Len(), "next_id", st.NextID())
	}

	if _, err := io.Copy(out, &buf); err != nil {
		log.Debug("write output failed", "error", err)
	}
	return code
}

// flagError rewrites flag package errors into the CLI's message style.
func flagError(err error) string {
	errStr := err.Error()

	// Check for missing flag value
	if strings.HasPrefix(errStr, "flag needs an argument:") {
		return "flag needs an argument: " + strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
	}

	// Check for unknown flag
	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		return "unknown flag: " + strings.TrimSpace(strings.TrimPrefix(errStr, "flag provided but not defined:"))
	}

	return errStr
}
