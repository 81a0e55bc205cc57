package projectfinder

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/cfgjs/internal/domain"
)

// LoadConfig loads cfgjs.yaml from the project root and applies defaults.
// A missing file is not an error.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, domain.Execution("projectfinder.loadconfig", path, err)
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "projectfinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err),
		}
	}

	if p := strings.TrimSpace(y.Cfgjs.Paths.Definitions); p != "" {
		cfg.Paths.Definitions = p
	}
	if p := strings.TrimSpace(y.Cfgjs.Paths.Example); p != "" {
		cfg.Paths.Example = p
	}
	if p := strings.TrimSpace(y.Cfgjs.Paths.Output); p != "" {
		cfg.Paths.Output = p
	}

	return cfg, nil
}

type yamlConfig struct {
	Cfgjs struct {
		Paths struct {
			Definitions string `yaml:"definitions"`
			Example     string `yaml:"example"`
			Output      string `yaml:"output"`
		} `yaml:"paths"`
	} `yaml:"cfgjs"`
}
