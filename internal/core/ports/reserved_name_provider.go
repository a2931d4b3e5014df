package ports

// ReservedNameProvider supplies the denylist of names that must not be
// shadowed by an alias (shell keywords, essential system commands).
type ReservedNameProvider interface {
	ReservedNames() (map[string]struct{}, error)
}
