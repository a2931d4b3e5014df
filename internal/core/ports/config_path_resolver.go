package ports

import "github.com/AntonioJCosta/aliaser/internal/core/domain/dialect"

// ConfigPathResolver maps a shell dialect to its canonical configuration
// file path (e.g. ~/.zshrc for zsh).
type ConfigPathResolver interface {
	Resolve(kind dialect.Kind) (string, error)
}
