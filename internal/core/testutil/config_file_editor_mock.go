package testutil

import "errors"

// MockConfigFileEditor is a mock implementation of ports.ConfigFileEditor
// for testing.
type MockConfigFileEditor struct {
	LoadFunc        func(path string) (string, error)
	LocateBlockFunc func(fileText string) (prefix, blockText, suffix string, found bool, err error)
	WriteFunc       func(path, prefix, blockText, suffix string) error
}

func (m *MockConfigFileEditor) Load(path string) (string, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(path)
	}
	return "", errors.New("MockConfigFileEditor: LoadFunc not implemented")
}

func (m *MockConfigFileEditor) LocateBlock(fileText string) (string, string, string, bool, error) {
	if m.LocateBlockFunc != nil {
		return m.LocateBlockFunc(fileText)
	}
	return "", "", "", false, errors.New("MockConfigFileEditor: LocateBlockFunc not implemented")
}

func (m *MockConfigFileEditor) Write(path, prefix, blockText, suffix string) error {
	if m.WriteFunc != nil {
		return m.WriteFunc(path, prefix, blockText, suffix)
	}
	return errors.New("MockConfigFileEditor: WriteFunc not implemented")
}
