/*
Package aliasblock owns the in-memory representation of the managed alias
section: parsing it out of raw block text, validating mutations, and
serializing it back. Lines inside the block that are not alias definitions
(comments, blank lines) are preserved verbatim so hand edits survive a
round trip.
*/
package aliasblock

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/aliaser/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliaser/internal/core/domain/dialect"
)

// ParseError reports a line inside the managed block that looks like an
// alias definition but cannot be parsed. The block is refused rather than
// repaired, so no write happens on a ParseError.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d of managed section is malformed (%s): %s", e.Line, e.Reason, e.Text)
}

// blockLine is one line of the managed block: either an alias entry or an
// opaque passthrough line kept verbatim.
type blockLine struct {
	entry       alias.Alias
	text        string
	passthrough bool
}

// Store holds the ordered contents of the managed block for one dialect.
type Store struct {
	dialect  dialect.Kind
	reserved map[string]struct{}
	lines    []blockLine
}

// Parse builds a Store from raw block text. An empty blockText yields an
// empty store. reserved is the denylist consulted by Add; it may be nil.
func Parse(d dialect.Kind, reserved map[string]struct{}, blockText string) (*Store, error) {
	s := &Store{dialect: d, reserved: reserved}
	if blockText == "" {
		return s, nil
	}

	for i, raw := range strings.Split(blockText, "\n") {
		entry, ok, err := d.MatchLine(raw)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Text: raw, Reason: err.Error()}
		}
		if ok {
			s.lines = append(s.lines, blockLine{entry: entry})
			continue
		}
		s.lines = append(s.lines, blockLine{text: raw, passthrough: true})
	}
	return s, nil
}

// Add appends a new alias entry. The name must validate, must not be on the
// reserved denylist, and must not already exist in the store.
func (s *Store) Add(a alias.Alias) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if _, reserved := s.reserved[a.Name]; reserved {
		return fmt.Errorf("%w: %q is a reserved or system command name", alias.ErrReservedName, a.Name)
	}
	if s.indexOf(a.Name) >= 0 {
		return fmt.Errorf("%w: %q", alias.ErrDuplicate, a.Name)
	}
	s.lines = append(s.lines, blockLine{entry: a})
	return nil
}

// Update replaces the command of an existing entry in place, preserving
// its position in the block.
func (s *Store) Update(name, newCommand string) (alias.Alias, error) {
	if err := alias.ValidateCommand(newCommand); err != nil {
		return alias.Alias{}, err
	}
	i := s.indexOf(name)
	if i < 0 {
		return alias.Alias{}, fmt.Errorf("%w: %q", alias.ErrNotFound, name)
	}
	s.lines[i].entry.Command = newCommand
	return s.lines[i].entry, nil
}

// Remove deletes the entry with the given name.
func (s *Store) Remove(name string) error {
	i := s.indexOf(name)
	if i < 0 {
		return fmt.Errorf("%w: %q", alias.ErrNotFound, name)
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	return nil
}

// Get returns the entry with the given name.
func (s *Store) Get(name string) (alias.Alias, error) {
	i := s.indexOf(name)
	if i < 0 {
		return alias.Alias{}, fmt.Errorf("%w: %q", alias.ErrNotFound, name)
	}
	return s.lines[i].entry, nil
}

// List returns all alias entries in insertion order. It never mutates the
// store.
func (s *Store) List() []alias.Alias {
	var entries []alias.Alias
	for _, l := range s.lines {
		if !l.passthrough {
			entries = append(entries, l.entry)
		}
	}
	return entries
}

// Clear removes every alias entry, keeping passthrough lines. It returns
// the number of entries removed.
func (s *Store) Clear() int {
	kept := s.lines[:0]
	removed := 0
	for _, l := range s.lines {
		if l.passthrough {
			kept = append(kept, l)
		} else {
			removed++
		}
	}
	s.lines = kept
	return removed
}

// Render serializes the block back to text. Passthrough lines are emitted
// verbatim; entries are emitted in the store's dialect syntax. Parsing the
// result reproduces an equivalent store.
func (s *Store) Render() string {
	out := make([]string, 0, len(s.lines))
	for _, l := range s.lines {
		if l.passthrough {
			out = append(out, l.text)
			continue
		}
		out = append(out, s.dialect.FormatLine(l.entry))
	}
	return strings.Join(out, "\n")
}

func (s *Store) indexOf(name string) int {
	for i, l := range s.lines {
		if !l.passthrough && l.entry.Name == name {
			return i
		}
	}
	return -1
}
