package cli

import (
	"fmt"
	"path/filepath"

	"github.com/aalvaropc/cfgjs/internal/domain"
	"github.com/aalvaropc/cfgjs/internal/infra/projectfinder"
	"github.com/aalvaropc/cfgjs/internal/ports"
)

type projectCtx struct {
	root string
	cfg  domain.Config
}

// loadProject resolves the project root (nearest cfgjs.yaml, else the working
// directory) and its configuration.
func loadProject(getwd func() (string, error)) (*projectCtx, error) {
	wd, err := getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	wd, err = filepath.Abs(wd)
	if err != nil {
		return nil, fmt.Errorf("invalid working directory: %w", err)
	}

	var locator ports.ProjectLocator = projectfinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		if !domain.IsKind(err, domain.KindNotFound) {
			return nil, err
		}
		root = wd
	}

	cfg, err := projectfinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	return &projectCtx{root: root, cfg: cfg}, nil
}

func (p *projectCtx) resolve(rel string) string {
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	return filepath.Join(p.root, rel)
}

func (p *projectCtx) definitionsPath() string { return p.resolve(p.cfg.Paths.Definitions) }
func (p *projectCtx) examplePath() string     { return p.resolve(p.cfg.Paths.Example) }
func (p *projectCtx) outputPath() string      { return p.resolve(p.cfg.Paths.Output) }
