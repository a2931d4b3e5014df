package ports

import "github.com/AntonioJCosta/aliaser/internal/core/domain/dialect"

// ShellDetector identifies the user's shell so the right dialect and config
// file can be selected. Detection failure is surfaced as an error so the
// caller can ask for an explicit --shell override.
type ShellDetector interface {
	Detect() (dialect.Kind, error)
}
