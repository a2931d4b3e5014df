package testutil

import "errors"

// MockCommandExecutor is a mock implementation of ports.CommandExecutor for
// testing.
type MockCommandExecutor struct {
	ExecuteFunc func(shellName, pipeline string) (string, string, error)
}

func (m *MockCommandExecutor) Execute(shellName, pipeline string) (string, string, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(shellName, pipeline)
	}
	return "", "", errors.New("MockCommandExecutor: ExecuteFunc not implemented")
}
