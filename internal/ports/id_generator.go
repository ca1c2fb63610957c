package ports

// Source of unique, never-reused entity identifiers.
type IDGenerator interface {
	NewID() (string, error)
}
