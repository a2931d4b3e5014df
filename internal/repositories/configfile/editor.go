/*
Package configfile implements the file-level transaction on a shell
configuration file: locating the managed section via its sentinel markers,
splicing in new block text, and writing the result back atomically so the
unmanaged parts of the file are never corrupted.
*/
package configfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/aliaser/internal/core/ports"
)

// Sentinel lines delimiting the managed section. These must stay stable:
// changing them would orphan sections written by earlier versions.
const (
	BeginMarker = "# >>> aliaser >>>"
	EndMarker   = "# <<< aliaser <<<"
)

// SectionHeader is the warning comment written into a freshly created
// section. It is an ordinary passthrough line afterwards.
const SectionHeader = "# Aliases managed by aliaser - DO NOT EDIT THIS SECTION MANUALLY"

// ErrCorruptMarkers indicates that the sentinel markers are present but not
// trustworthy (one missing, duplicated, or out of order). The file is
// refused rather than repaired.
var ErrCorruptMarkers = errors.New("managed section markers are corrupt")

// Editor implements ports.ConfigFileEditor. It remembers which paths it has
// already backed up so each run takes at most one backup per file.
type Editor struct {
	backedUp map[string]bool
}

// NewEditor creates a new Editor.
func NewEditor() *Editor {
	return &Editor{backedUp: make(map[string]bool)}
}

var _ ports.ConfigFileEditor = (*Editor)(nil)

// Load reads the full text of the file at path. A missing file is the
// first-run case and yields an empty string, but only if the parent
// directory exists.
func (e *Editor) Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return string(data), nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if _, statErr := os.Stat(filepath.Dir(path)); statErr != nil {
		return "", fmt.Errorf("config file directory does not exist: %w", statErr)
	}
	return "", nil
}

// LocateBlock scans fileText for the BEGIN/END sentinel pair.
func (e *Editor) LocateBlock(fileText string) (prefix, blockText, suffix string, found bool, err error) {
	lines := strings.Split(fileText, "\n")

	begin, end := -1, -1
	beginCount, endCount := 0, 0
	for i, line := range lines {
		switch strings.TrimSpace(line) {
		case BeginMarker:
			beginCount++
			if begin == -1 {
				begin = i
			}
		case EndMarker:
			endCount++
			if end == -1 {
				end = i
			}
		}
	}

	switch {
	case beginCount == 0 && endCount == 0:
		return fileText, "", "", false, nil
	case beginCount != 1 || endCount != 1:
		return "", "", "", false, fmt.Errorf("%w: found %d begin and %d end markers", ErrCorruptMarkers, beginCount, endCount)
	case end < begin:
		return "", "", "", false, fmt.Errorf("%w: end marker precedes begin marker", ErrCorruptMarkers)
	}

	if begin > 0 {
		prefix = strings.Join(lines[:begin], "\n") + "\n"
	}
	blockText = strings.Join(lines[begin+1:end], "\n")
	suffix = strings.Join(lines[end+1:], "\n")
	return prefix, blockText, suffix, true, nil
}

// Write rebuilds the file content and replaces the file at path atomically.
// prefix and suffix are written back verbatim; only the managed section
// between them changes.
func (e *Editor) Write(path, prefix, blockText, suffix string) error {
	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteString(BeginMarker + "\n")
	if blockText != "" {
		sb.WriteString(blockText)
		sb.WriteString("\n")
	}
	sb.WriteString(EndMarker + "\n")
	sb.WriteString(suffix)

	if err := e.backupOnce(path); err != nil {
		return err
	}
	return atomicWrite(path, sb.String())
}

// EnsureSeparation prepares raw file text for use as the prefix of a newly
// created section: the text must end with a newline and a blank separator
// line so the section does not visually merge with prior content. Text that
// already ends with a blank line is returned unchanged.
func EnsureSeparation(text string) string {
	if text == "" {
		return ""
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if !strings.HasSuffix(text, "\n\n") {
		text += "\n"
	}
	return text
}

// backupOnce copies the current file to <path>.bak before the first write
// of this run, so a human can recover manually from an unexpected problem.
func (e *Editor) backupOnce(path string) error {
	if e.backedUp[path] {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			e.backedUp[path] = true
			return nil
		}
		return fmt.Errorf("failed to read %s for backup: %w", path, err)
	}
	mode := fs.FileMode(0644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path+".bak", data, mode); err != nil {
		return fmt.Errorf("failed to write backup %s.bak: %w", path, err)
	}
	e.backedUp[path] = true
	return nil
}

// atomicWrite writes content to a temporary file in the target directory,
// syncs it, and renames it over path. The original file is never left
// partially written.
func atomicWrite(path, content string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".aliaser-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file %s: %w", tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync temp file %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file %s: %w", tmpPath, err)
	}

	// Keep the original file's permissions if it exists.
	if info, err := os.Stat(path); err == nil {
		if err := os.Chmod(tmpPath, info.Mode()); err != nil {
			os.Remove(tmpPath)
			return fmt.Errorf("failed to set permissions on %s: %w", tmpPath, err)
		}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
