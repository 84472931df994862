package fs

import "errors"

var (
	// ErrFileTooLarge indicates a read was refused because the file exceeds
	// the configured MaxReadBytes cap.
	ErrFileTooLarge = errors.New("file exceeds configured read cap")

	// ErrInvalidWriteMode indicates the configured WriteMode string could
	// not be parsed as an octal permission mode.
	ErrInvalidWriteMode = errors.New("invalid write mode")
)
