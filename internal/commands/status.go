package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"doru/internal/config"
	"doru/internal/exitcode"
	"doru/internal/output"
	"doru/internal/store"
	"doru/internal/task"
)

func init() {
	Register(&StatusCmd{})
}

// StatusCmd implements the status command.
type StatusCmd struct{}

func (c *StatusCmd) Name() string      { return "status" }
func (c *StatusCmd) Aliases() []string { return nil }
func (c *StatusCmd) Synopsis() string  { return "Change a task's status" }
func (c *StatusCmd) Usage() string     { return "doru status <id> <open|in-progress|done>" }
func (c *StatusCmd) NeedsStore() bool  { return true }
func (c *StatusCmd) Mutates() bool     { return true }

func (c *StatusCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *StatusCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	id, err := ParseTaskID(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	switch len(args) {
	case 1:
		fmt.Fprintln(errOut, "error: status required")
		return exitcode.UserError
	case 2:
	default:
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[2])
		return exitcode.UserError
	}

	status, err := task.ParseStatus(args[1])
	if err != nil {
		fmt.Fprintf(errOut, "error: unknown status: %s\n", args[1])
		return exitcode.UserError
	}

	if err := st.SetStatus(id, status); err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		t, err := st.Get(id)
		if err != nil {
			return reportError(errOut, err)
		}
		output.FormatTask(out, t)
	}
	return exitcode.Success
}
