package store

import (
	"errors"

	"doru/internal/task"
)

var (
	// ErrInvalidInput indicates an empty description or invalid status.
	ErrInvalidInput = task.ErrInvalidInput

	// ErrNotFound indicates no task has the requested ID.
	ErrNotFound = errors.New("task not found")

	// ErrCorruptStore indicates the store file exists but cannot be parsed.
	ErrCorruptStore = errors.New("corrupt store")

	// ErrStorageUnavailable indicates an I/O failure reading or writing the store file.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
