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
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string     { return "doru add <description...>" }
func (c *AddCmd) NeedsStore() bool  { return true }
func (c *AddCmd) Mutates() bool     { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	// Join args to form the description
	description := strings.Join(args, " ")
	if strings.TrimSpace(description) == "" {
		fmt.Fprintln(errOut, "error: description required")
		return exitcode.UserError
	}

	id, err := st.Add(description)
	if err != nil {
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
