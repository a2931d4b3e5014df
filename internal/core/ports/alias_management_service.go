package ports

import (
	"github.com/AntonioJCosta/aliaser/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliaser/internal/core/domain/dialect"
)

// AliasManagementService defines the contract for managing the aliases in a
// shell configuration file. Every operation is a single load-mutate-write
// transaction on the managed section of the file at path; failures before
// the final write leave the file untouched.
type AliasManagementService interface {
	// CreateAlias adds a new alias. When force is set an existing alias with
	// the same name is overwritten instead of producing a duplicate error.
	CreateAlias(path string, kind dialect.Kind, name, command string, force bool) (alias.Alias, error)

	// ListAliases returns the managed aliases in insertion order.
	ListAliases(path string, kind dialect.Kind) ([]alias.Alias, error)

	// UpdateAlias replaces the command of an existing alias, keeping its
	// position in the managed section.
	UpdateAlias(path string, kind dialect.Kind, name, command string) (alias.Alias, error)

	// DeleteAlias removes an existing alias.
	DeleteAlias(path string, kind dialect.Kind, name string) error

	// ClearAliases removes every managed alias and returns how many were
	// removed.
	ClearAliases(path string, kind dialect.Kind) (int, error)
}
