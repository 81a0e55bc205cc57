package ports

import "github.com/aalvaropc/cfgjs/internal/domain"

// DefinitionsLoader loads name/value definitions from a source (e.g., a .env file).
type DefinitionsLoader interface {
	LoadDefinitions(path string) (domain.Definitions, error)
}
