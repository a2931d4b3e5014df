package testutil

// MockReservedNameProvider is a mock implementation of
// ports.ReservedNameProvider for testing.
type MockReservedNameProvider struct {
	ReservedNamesFunc func() (map[string]struct{}, error)
}

func (m *MockReservedNameProvider) ReservedNames() (map[string]struct{}, error) {
	if m.ReservedNamesFunc != nil {
		return m.ReservedNamesFunc()
	}
	return map[string]struct{}{}, nil
}
