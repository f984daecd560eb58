// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, empty description, unknown task).
	UserError = 1

	// StorageError indicates the store file could not be read, parsed, or written.
	StorageError = 2
)
