/*
Package dialect encodes the shell-specific alias syntax variants. Each
supported shell maps to a (format, match) pair; everything above this
package is dialect-agnostic.
*/
package dialect

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/aliaser/internal/core/domain/alias"
)

// Kind identifies a supported shell dialect.
type Kind string

const (
	Zsh     Kind = "zsh"
	Bash    Kind = "bash"
	Fish    Kind = "fish"
	Unknown Kind = "unknown"
)

// Parse maps a shell name (e.g. the basename of $SHELL) to a Kind.
// Unrecognized shells yield Unknown and an error so the caller can ask
// for an explicit override.
func Parse(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "zsh":
		return Zsh, nil
	case "bash":
		return Bash, nil
	case "fish":
		return Fish, nil
	default:
		return Unknown, fmt.Errorf("shell %q is not supported (supported: zsh, bash, fish)", name)
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string { return string(k) }

// FormatLine renders a as a single alias-definition line in k's syntax.
//
// zsh and bash use `alias name="command"` with inner double quotes escaped.
// fish uses `alias name 'command'` with inner single quotes escaped.
func (k Kind) FormatLine(a alias.Alias) string {
	switch k {
	case Fish:
		escaped := strings.ReplaceAll(a.Command, `'`, `\'`)
		return fmt.Sprintf("alias %s '%s'", a.Name, escaped)
	default:
		escaped := strings.ReplaceAll(a.Command, `"`, `\"`)
		return fmt.Sprintf(`alias %s="%s"`, a.Name, escaped)
	}
}

// MatchLine attempts to read line as an alias definition in k's syntax.
// It returns the parsed alias and true on success, or false when the line
// is not an alias definition at all. Lines that start like an alias
// definition but are malformed are reported through the error.
func (k Kind) MatchLine(line string) (alias.Alias, bool, error) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "alias ") {
		return alias.Alias{}, false, nil
	}
	rest := strings.TrimSpace(strings.TrimPrefix(trimmed, "alias "))

	if k == Fish {
		return matchFish(rest)
	}
	return matchPosix(rest)
}

// matchPosix parses `name="command"` (the emitted form), tolerating
// single-quoted and bare commands from hand edits.
func matchPosix(rest string) (alias.Alias, bool, error) {
	name, value, ok := strings.Cut(rest, "=")
	if !ok {
		return alias.Alias{}, false, fmt.Errorf("alias definition has no '='")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return alias.Alias{}, false, fmt.Errorf("alias definition has no name")
	}
	command, err := unquote(strings.TrimSpace(value))
	if err != nil {
		return alias.Alias{}, false, err
	}
	return alias.Alias{Name: name, Command: command}, true, nil
}

// matchFish parses `name 'command'` (the emitted form) and `name=...`
// which fish also accepts.
func matchFish(rest string) (alias.Alias, bool, error) {
	if strings.Contains(strings.SplitN(rest, " ", 2)[0], "=") {
		return matchPosix(rest)
	}
	name, value, ok := strings.Cut(rest, " ")
	if !ok || strings.TrimSpace(value) == "" {
		return alias.Alias{}, false, fmt.Errorf("alias definition has no command")
	}
	name = strings.TrimSpace(name)
	command, err := unquote(strings.TrimSpace(value))
	if err != nil {
		return alias.Alias{}, false, err
	}
	return alias.Alias{Name: name, Command: command}, true, nil
}

// unquote strips one layer of matching quotes and undoes the escaping that
// FormatLine applied. A value that opens a quote without closing it is
// malformed. Bare values are returned as-is.
func unquote(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	quote := value[0]
	if quote != '\'' && quote != '"' {
		return value, nil
	}
	if len(value) < 2 || value[len(value)-1] != quote {
		return "", fmt.Errorf("alias command has an unterminated %c quote", quote)
	}
	inner := value[1 : len(value)-1]
	switch quote {
	case '"':
		return strings.ReplaceAll(inner, `\"`, `"`), nil
	default:
		return strings.ReplaceAll(inner, `\'`, `'`), nil
	}
}
