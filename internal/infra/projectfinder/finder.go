package projectfinder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aalvaropc/cfgjs/internal/domain"
	"github.com/aalvaropc/cfgjs/internal/ports"
)

// ConfigFile is the optional project configuration file name.
const ConfigFile = "cfgjs.yaml"

// Finder locates a cfgjs project root by searching for cfgjs.yaml upward.
type Finder struct {
	ConfigFile string // defaults to "cfgjs.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFile}
}

var _ ports.ProjectLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "projectfinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("startDir is empty: %w", domain.ErrInvalidConfig),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", domain.Execution("projectfinder.findroot", startDir, err)
	}

	cur := filepath.Clean(abs)
	for {
		if _, err := os.Stat(filepath.Join(cur, f.ConfigFile)); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "projectfinder.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
