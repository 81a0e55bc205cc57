package ports

// ConfigWriter persists a rendered config script.
type ConfigWriter interface {
	WriteConfig(path string, content []byte) error
}
