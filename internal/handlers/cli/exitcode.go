package cli

import (
	"errors"
	"io/fs"

	"github.com/AntonioJCosta/aliaser/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliaser/internal/core/domain/aliasblock"
	"github.com/AntonioJCosta/aliaser/internal/repositories/configfile"
)

// ExitCode is the process exit code of aliaser.
type ExitCode int

const (
	// ExitSuccess is a normal exit.
	ExitSuccess ExitCode = 0
	// ExitValidation covers rejected input: bad names, duplicates,
	// missing aliases.
	ExitValidation ExitCode = 1
	// ExitIO covers file system failures.
	ExitIO ExitCode = 2
	// ExitCorrupt means the managed section cannot be trusted and was
	// refused.
	ExitCorrupt ExitCode = 3
)

// MapExitCode translates an error returned by a command into the exit code
// for the process.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}

	var parseErr *aliasblock.ParseError
	if errors.Is(err, configfile.ErrCorruptMarkers) || errors.As(err, &parseErr) {
		return ExitCorrupt
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) || errors.Is(err, fs.ErrPermission) || errors.Is(err, fs.ErrNotExist) {
		return ExitIO
	}

	switch {
	case errors.Is(err, alias.ErrInvalidName),
		errors.Is(err, alias.ErrInvalidCommand),
		errors.Is(err, alias.ErrReservedName),
		errors.Is(err, alias.ErrDuplicate),
		errors.Is(err, alias.ErrNotFound):
		return ExitValidation
	}
	return ExitValidation
}
