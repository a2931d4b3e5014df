// Package shelldetection detects the user's shell from the environment.
package shelldetection

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/aliaser/internal/core/domain/dialect"
	"github.com/AntonioJCosta/aliaser/internal/core/ports"
)

// EnvDetector implements ports.ShellDetector by inspecting the SHELL
// environment variable.
type EnvDetector struct{}

// NewEnvDetector creates a new EnvDetector.
func NewEnvDetector() ports.ShellDetector {
	return &EnvDetector{}
}

// Detect returns the dialect for the current shell. It fails when SHELL is
// unset or names an unsupported shell; the caller may then ask the user for
// an explicit override.
func (d *EnvDetector) Detect() (dialect.Kind, error) {
	shellPath := os.Getenv("SHELL")
	if shellPath == "" {
		return dialect.Unknown, fmt.Errorf("could not detect your shell: SHELL environment variable not set")
	}
	kind, err := dialect.Parse(filepath.Base(shellPath))
	if err != nil {
		return dialect.Unknown, fmt.Errorf("could not detect your shell: %w", err)
	}
	return kind, nil
}
