package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"doru/internal/config"
	"doru/internal/exitcode"
	"doru/internal/output"
	"doru/internal/store"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command.
type EditCmd struct{}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Replace a task's description" }
func (c *EditCmd) Usage() string     { return "doru edit <id> <description...>" }
func (c *EditCmd) NeedsStore() bool  { return true }
func (c *EditCmd) Mutates() bool     { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	id, err := ParseTaskID(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	description := strings.Join(args[1:], " ")
	if strings.TrimSpace(description) == "" {
		fmt.Fprintln(errOut, "error: description required")
		return exitcode.UserError
	}

	if err := st.Edit(id, description); err != nil {
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
