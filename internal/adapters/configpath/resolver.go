// Package configpath maps a shell dialect to its canonical configuration
// file path.
package configpath

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/aliaser/internal/core/domain/dialect"
	"github.com/AntonioJCosta/aliaser/internal/core/ports"
)

// HomeResolver implements ports.ConfigPathResolver relative to the user's
// home directory.
type HomeResolver struct {
	homeDir string
}

// NewHomeResolver creates a resolver for the current user's home directory.
func NewHomeResolver() (ports.ConfigPathResolver, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return &HomeResolver{homeDir: home}, nil
}

// NewHomeResolverAt creates a resolver rooted at an explicit home directory.
// Used by tests.
func NewHomeResolverAt(homeDir string) ports.ConfigPathResolver {
	return &HomeResolver{homeDir: homeDir}
}

// Resolve returns the config file path for kind. For bash, ~/.bash_profile
// wins over ~/.bashrc when it exists, matching what login shells read on
// macOS.
func (r *HomeResolver) Resolve(kind dialect.Kind) (string, error) {
	switch kind {
	case dialect.Zsh:
		return filepath.Join(r.homeDir, ".zshrc"), nil
	case dialect.Bash:
		profile := filepath.Join(r.homeDir, ".bash_profile")
		if _, err := os.Stat(profile); err == nil {
			return profile, nil
		}
		return filepath.Join(r.homeDir, ".bashrc"), nil
	case dialect.Fish:
		return filepath.Join(r.homeDir, ".config", "fish", "config.fish"), nil
	default:
		return "", fmt.Errorf("unsupported shell %q", kind)
	}
}
