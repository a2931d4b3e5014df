/*
Package alias defines the core domain entity for a managed alias and the
validation rules applied to it.
*/
package alias

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

/*
Alias represents a single managed alias, consisting of a short name and the
full command it expands to. This is a core domain entity.
*/
type Alias struct {
	Command string `yaml:"command"`
	Name    string `yaml:"alias"`
}

// Validation and lookup failures for alias entries. These are matched with
// errors.Is by callers that need to distinguish outcomes.
var (
	ErrInvalidName    = errors.New("invalid alias name")
	ErrInvalidCommand = errors.New("invalid alias command")
	ErrReservedName   = errors.New("alias name is reserved")
	ErrDuplicate      = errors.New("alias already exists")
	ErrNotFound       = errors.New("alias not found")
)

// namePattern accepts identifier-like names: a letter or underscore followed
// by letters, digits, underscores, or hyphens. Anything a shell would treat
// as a metacharacter is rejected.
var namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// ValidateName checks that name is a safe alias name.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q contains whitespace or shell metacharacters", ErrInvalidName, name)
	}
	return nil
}

// ValidateCommand checks that command is a non-empty, single-line command
// string. The command may contain quotes; the dialect formatter escapes them.
func ValidateCommand(command string) error {
	if strings.TrimSpace(command) == "" {
		return fmt.Errorf("%w: command is empty", ErrInvalidCommand)
	}
	if strings.ContainsAny(command, "\n\r") {
		return fmt.Errorf("%w: command spans multiple lines", ErrInvalidCommand)
	}
	return nil
}

// Validate checks both fields of a.
func (a Alias) Validate() error {
	if err := ValidateName(a.Name); err != nil {
		return err
	}
	return ValidateCommand(a.Command)
}
