package testutil

import (
	"errors"

	"github.com/AntonioJCosta/aliaser/internal/core/domain/dialect"
)

// MockShellDetector is a mock implementation of ports.ShellDetector for
// testing.
type MockShellDetector struct {
	DetectFunc func() (dialect.Kind, error)
}

func (m *MockShellDetector) Detect() (dialect.Kind, error) {
	if m.DetectFunc != nil {
		return m.DetectFunc()
	}
	return dialect.Unknown, errors.New("MockShellDetector: DetectFunc not implemented")
}
