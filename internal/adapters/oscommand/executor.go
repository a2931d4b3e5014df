// Package oscommand executes pipelines through the user's shell. It backs
// the --reload flag, which sources the config file after a change.
package oscommand

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/AntonioJCosta/aliaser/internal/core/ports"
)

// OSCommandExecutor implements the CommandExecutor interface using the
// operating system's shell.
type OSCommandExecutor struct{}

// NewOSCommandExecutor creates a new OSCommandExecutor.
func NewOSCommandExecutor() ports.CommandExecutor {
	return &OSCommandExecutor{}
}

// Execute runs the given pipeline string in a shell and returns its stdout,
// stderr, and any error. It prefers $SHELL, falling back to a well-known
// path for the requested shell.
func (e *OSCommandExecutor) Execute(shellName, pipeline string) (string, string, error) {
	shellExecPath := os.Getenv("SHELL")
	if shellExecPath == "" {
		switch shellName {
		case "bash":
			shellExecPath = "/bin/bash"
		case "zsh":
			shellExecPath = "/bin/zsh"
		case "fish":
			shellExecPath = "/usr/bin/fish"
		default:
			shellExecPath = "/bin/sh"
		}
	}

	cmd := exec.Command(shellExecPath, "-c", pipeline)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	stdout := outBuf.String()
	stderr := errBuf.String()

	if err != nil {
		return stdout, stderr, fmt.Errorf("executing pipeline with shell '%s': %w. Stderr: %s", shellExecPath, err, strings.TrimSpace(stderr))
	}
	return stdout, stderr, nil
}
