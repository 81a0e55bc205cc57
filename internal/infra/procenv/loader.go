// Package procenv sources definitions from the process environment, the way
// hosted build pipelines inject secrets.
package procenv

import (
	"os"

	"github.com/aalvaropc/cfgjs/internal/domain"
	"github.com/aalvaropc/cfgjs/internal/infra/dotenv"
	"github.com/aalvaropc/cfgjs/internal/ports"
)

type Loader struct {
	lookup  func(string) (string, bool)
	keys    []string
	overlay ports.DefinitionsLoader
}

type Option func(*Loader)

// WithLookup overrides environment lookup (useful for tests).
func WithLookup(fn func(string) (string, bool)) Option {
	return func(l *Loader) { l.lookup = fn }
}

// WithKeys restricts which variables are read. Defaults to domain.RecognizedKeys.
func WithKeys(keys ...string) Option {
	return func(l *Loader) { l.keys = keys }
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		lookup:  os.LookupEnv,
		keys:    domain.RecognizedKeys,
		overlay: dotenv.NewLoader(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.DefinitionsLoader = (*Loader)(nil)

// LoadDefinitions reads the configured keys from the environment. Keys not set
// there fall back to the optional definitions file at path, parsed with the
// same rules as the root command. An empty path or a missing file skips the
// overlay. The process environment is never modified.
func (l *Loader) LoadDefinitions(path string) (domain.Definitions, error) {
	overlay := domain.Definitions{}
	if path != "" {
		defs, err := l.overlay.LoadDefinitions(path)
		switch {
		case err == nil:
			overlay = defs
		case domain.IsKind(err, domain.KindMissingDefinitions):
		default:
			return nil, err
		}
	}

	defs := domain.Definitions{}
	for _, k := range l.keys {
		if v, ok := l.lookup(k); ok {
			defs[k] = v
			continue
		}
		if v, ok := domain.Get(overlay, k); ok {
			defs[k] = v
		}
	}
	return defs, nil
}
