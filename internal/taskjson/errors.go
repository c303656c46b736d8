package taskjson

import "errors"

var (
	// ErrFileNotFound is returned when a task file cannot be opened.
	ErrFileNotFound = errors.New("task file not found")
	// ErrInvalidFormat is returned when a document is structurally wrong:
	// missing id or title, an unrecognized status, or broken nesting.
	ErrInvalidFormat = errors.New("invalid task file format")
	// ErrWrite is returned when writing a task file fails.
	ErrWrite = errors.New("failed to write task file")
	// ErrParse is returned when a value cannot be converted, such as a
	// non-numeric id or a malformed timestamp.
	ErrParse = errors.New("failed to parse task file")
)
