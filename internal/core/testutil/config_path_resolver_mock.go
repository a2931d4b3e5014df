package testutil

import (
	"errors"

	"github.com/AntonioJCosta/aliaser/internal/core/domain/dialect"
)

// MockConfigPathResolver is a mock implementation of
// ports.ConfigPathResolver for testing.
type MockConfigPathResolver struct {
	ResolveFunc func(kind dialect.Kind) (string, error)
}

func (m *MockConfigPathResolver) Resolve(kind dialect.Kind) (string, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(kind)
	}
	return "", errors.New("MockConfigPathResolver: ResolveFunc not implemented")
}
