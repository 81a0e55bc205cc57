package ports

// ProjectLocator finds a cfgjs project root starting from an arbitrary directory.
type ProjectLocator interface {
	FindRoot(startDir string) (string, error)
}
