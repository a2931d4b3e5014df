// Package reservednames supplies the denylist of names that aliases must
// not shadow. A built-in default list covers shell keywords and essential
// system commands; users can extend or replace it with a YAML file.
package reservednames

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/aliaser/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// defaultReserved is used when no denylist file exists. It mixes POSIX shell
// keywords with commands whose shadowing tends to break scripts.
var defaultReserved = []string{
	"alias", "bg", "bind", "break", "builtin", "case", "cd", "command",
	"continue", "cp", "do", "done", "echo", "elif", "else", "esac", "eval",
	"exec", "exit", "export", "fg", "fi", "for", "function", "if", "in",
	"jobs", "kill", "ls", "mv", "printf", "pwd", "read", "return", "rm",
	"set", "shift", "source", "sudo", "test", "then", "time", "trap",
	"type", "ulimit", "umask", "unalias", "unset", "until", "wait",
	"while",
}

// yamlDenylist is the on-disk shape of a user denylist file.
type yamlDenylist struct {
	Reserved []string `yaml:"reserved"`
	Replace  bool     `yaml:"replace"`
}

// YAMLProvider implements ports.ReservedNameProvider by merging the
// built-in defaults with an optional YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider. filePath may point at a file
// that does not exist; the defaults are used then.
func NewYAMLProvider(filePath string) (ports.ReservedNameProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("denylist file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// ReservedNames returns the effective denylist as a set.
func (p *YAMLProvider) ReservedNames() (map[string]struct{}, error) {
	fromFile, replace, err := p.readFile()
	if err != nil {
		return nil, err
	}

	names := make(map[string]struct{})
	if !replace {
		for _, n := range defaultReserved {
			names[n] = struct{}{}
		}
	}
	for _, n := range fromFile {
		names[n] = struct{}{}
	}
	return names, nil
}

// readFile reads and parses the denylist file. A missing or empty file is
// not an error; it just contributes nothing.
func (p *YAMLProvider) readFile() (names []string, replace bool, err error) {
	data, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read denylist file %s: %w", p.filePath, err)
	}
	if len(data) == 0 {
		return nil, false, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var list yamlDenylist
	if err := decoder.Decode(&list); err != nil {
		// A file containing only comments decodes to EOF; treat it like an
		// empty file.
		if errors.Is(err, io.EOF) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to unmarshal denylist from %s: %w", p.filePath, err)
	}
	return list.Reserved, list.Replace, nil
}
