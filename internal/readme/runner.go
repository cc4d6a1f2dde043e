package readme

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"runtime"
)

// CmdResult holds the combined output and exit status of a command.
type CmdResult struct {
	Output   string
	ExitCode int
}

// Runner executes a shell command line in a working directory.
type Runner interface {
	// Run returns the combined stdout and stderr of command. A non-zero exit
	// is reported through CmdResult.ExitCode, not as an error. The error is
	// reserved for failures to start the shell or context cancellation.
	Run(ctx context.Context, command, dir string) (CmdResult, error)
}

// ShellRunner runs commands through the platform shell, so command lines may
// use pipes, globs and redirection.
type ShellRunner struct {
	Shell     string
	ShellFlag string
}

// NewShellRunner returns a runner for sh -c, or cmd /C on Windows.
func NewShellRunner() *ShellRunner {
	if runtime.GOOS == "windows" {
		return &ShellRunner{Shell: "cmd", ShellFlag: "/C"}
	}
	return &ShellRunner{Shell: "/bin/sh", ShellFlag: "-c"}
}

// Run blocks until the command exits. There is no timeout.
func (r *ShellRunner) Run(ctx context.Context, command, dir string) (CmdResult, error) {
	cmd := exec.CommandContext(ctx, r.Shell, r.ShellFlag, command)
	cmd.Dir = dir

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	result := CmdResult{Output: out.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}
	return result, nil
}
