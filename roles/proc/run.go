package proc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Result holds the outcome of one command run. Stdout and Stderr are owned
// copies; the run ID ties the result to the role's log lines.
type Result struct {
	ID       string
	ExitCode int
	Stdout   []byte
	Stderr   []byte
	Duration time.Duration
}

var (
	// ErrEmptyCommand indicates Run was called without a command name.
	ErrEmptyCommand = errors.New("empty command")

	// ErrNonZeroExit indicates Capture's command exited with a non-zero
	// code.
	ErrNonZeroExit = errors.New("command exited with non-zero code")
)

// Run executes the named command with the given arguments, capturing stdout
// and stderr. A non-zero exit is not an error: the Result carries the exit
// code and the caller decides. When ctx has no deadline, the configured
// default timeout applies.
func (r *ProcRole) Run(ctx context.Context, name string, args ...string) (Result, error) {
	if name == "" {
		return Result{}, ErrEmptyCommand
	}

	if _, has := ctx.Deadline(); !has && r.config.DefaultTimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(r.config.DefaultTimeoutSeconds)*time.Second)
		defer cancel()
	}

	runID := uuid.NewString()
	r.logger.Debug("run started", "runID", runID, "command", name, "args", args)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	result := Result{
		ID:       runID,
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		Duration: time.Since(start),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		result.ExitCode = 0
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		r.logger.Error("run failed", "runID", runID, "command", name, "error", err)
		return result, fmt.Errorf("run %s: %w", name, err)
	}

	r.logger.Debug("run finished", "runID", runID, "exitCode", result.ExitCode, "duration", result.Duration)
	return result, nil
}

// Capture runs the command and returns its stdout with surrounding
// whitespace trimmed. Unlike Run, a non-zero exit is reported as an error,
// with stderr included in the message.
func (r *ProcRole) Capture(ctx context.Context, name string, args ...string) (string, error) {
	result, err := r.Run(ctx, name, args...)
	if err != nil {
		return "", err
	}
	if result.ExitCode != 0 {
		return "", fmt.Errorf("%w: %s: exit code %d: %s",
			ErrNonZeroExit, name, result.ExitCode, strings.TrimSpace(string(result.Stderr)))
	}
	return strings.TrimSpace(string(result.Stdout)), nil
}
