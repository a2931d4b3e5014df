/*
Package aliasmanagement orchestrates one load-parse-mutate-render-write
transaction per operation on the managed alias section of a shell
configuration file. Any failure before the final write leaves the file
untouched on disk.
*/
package aliasmanagement

import (
	"fmt"

	"github.com/AntonioJCosta/aliaser/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliaser/internal/core/domain/aliasblock"
	"github.com/AntonioJCosta/aliaser/internal/core/domain/dialect"
	"github.com/AntonioJCosta/aliaser/internal/core/ports"
	"github.com/AntonioJCosta/aliaser/internal/repositories/configfile"
)

type service struct {
	editor   ports.ConfigFileEditor
	reserved ports.ReservedNameProvider
}

// NewService creates a new alias management service.
// It panics if the editor is nil. reserved may be nil; the denylist is then
// empty.
func NewService(editor ports.ConfigFileEditor, reserved ports.ReservedNameProvider) ports.AliasManagementService {
	if editor == nil {
		panic("editor cannot be nil")
	}
	return &service{editor: editor, reserved: reserved}
}

// session holds the resolved state of the target file for one operation.
type session struct {
	prefix string
	suffix string
	found  bool
	store  *aliasblock.Store
}

// load reads the file, locates the managed section, and parses it. When the
// section does not exist yet the whole file becomes the prefix (separated by
// a blank line) and the store starts with just the section header comment.
func (s *service) load(path string, kind dialect.Kind) (*session, error) {
	text, err := s.editor.Load(path)
	if err != nil {
		return nil, err
	}

	prefix, blockText, suffix, found, err := s.editor.LocateBlock(text)
	if err != nil {
		return nil, err
	}
	if !found {
		prefix = configfile.EnsureSeparation(text)
		blockText = configfile.SectionHeader
	}

	reserved, err := s.reservedNames()
	if err != nil {
		return nil, err
	}

	store, err := aliasblock.Parse(kind, reserved, blockText)
	if err != nil {
		return nil, err
	}
	return &session{prefix: prefix, suffix: suffix, found: found, store: store}, nil
}

func (s *service) reservedNames() (map[string]struct{}, error) {
	if s.reserved == nil {
		return nil, nil
	}
	names, err := s.reserved.ReservedNames()
	if err != nil {
		return nil, fmt.Errorf("failed to load reserved names: %w", err)
	}
	return names, nil
}

func (s *service) write(path string, sess *session) error {
	return s.editor.Write(path, sess.prefix, sess.store.Render(), sess.suffix)
}

// CreateAlias adds a new alias to the managed section. With force set, an
// existing alias of the same name is replaced instead of rejected.
func (s *service) CreateAlias(path string, kind dialect.Kind, name, command string, force bool) (alias.Alias, error) {
	sess, err := s.load(path, kind)
	if err != nil {
		return alias.Alias{}, err
	}

	entry := alias.Alias{Name: name, Command: command}
	if force {
		// Replacing rather than erroring; position resets to the end.
		_ = sess.store.Remove(name)
	}
	if err := sess.store.Add(entry); err != nil {
		return alias.Alias{}, err
	}

	if err := s.write(path, sess); err != nil {
		return alias.Alias{}, err
	}
	return entry, nil
}

// ListAliases returns the managed aliases in insertion order. It performs
// no write; a file without a managed section simply yields no aliases.
func (s *service) ListAliases(path string, kind dialect.Kind) ([]alias.Alias, error) {
	sess, err := s.load(path, kind)
	if err != nil {
		return nil, err
	}
	if !sess.found {
		return nil, nil
	}
	return sess.store.List(), nil
}

// UpdateAlias replaces the command of an existing alias, keeping its
// position in the managed section.
func (s *service) UpdateAlias(path string, kind dialect.Kind, name, command string) (alias.Alias, error) {
	sess, err := s.load(path, kind)
	if err != nil {
		return alias.Alias{}, err
	}

	entry, err := sess.store.Update(name, command)
	if err != nil {
		return alias.Alias{}, err
	}

	if err := s.write(path, sess); err != nil {
		return alias.Alias{}, err
	}
	return entry, nil
}

// DeleteAlias removes an existing alias from the managed section.
func (s *service) DeleteAlias(path string, kind dialect.Kind, name string) error {
	sess, err := s.load(path, kind)
	if err != nil {
		return err
	}

	if err := sess.store.Remove(name); err != nil {
		return err
	}
	return s.write(path, sess)
}

// ClearAliases removes every managed alias in a single write and returns
// how many were removed. Passthrough lines in the section are kept.
func (s *service) ClearAliases(path string, kind dialect.Kind) (int, error) {
	sess, err := s.load(path, kind)
	if err != nil {
		return 0, err
	}
	if !sess.found {
		return 0, nil
	}

	removed := sess.store.Clear()
	if removed == 0 {
		return 0, nil
	}
	if err := s.write(path, sess); err != nil {
		return 0, err
	}
	return removed, nil
}
