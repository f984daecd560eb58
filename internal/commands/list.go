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
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `doru` (no args) and `doru list [status]`.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks, optionally by status" }
func (c *ListCmd) Usage() string     { return "doru list [status]" }
func (c *ListCmd) NeedsStore() bool  { return true }
func (c *ListCmd) Mutates() bool     { return false }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
		return exitcode.UserError
	}

	var filter store.Filter
	if len(args) == 1 {
		status, err := task.ParseStatus(args[0])
		if err != nil {
			fmt.Fprintf(errOut, "error: unknown status: %s\n", args[0])
			return exitcode.UserError
		}
		filter.Status = status
	}

	tasks := st.List(filter)
	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	output.FormatTasks(out, tasks)
	return exitcode.Success
}
