package projectfinder

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/cfgjs/internal/domain"
)

func TestLoadConfig_MissingUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != domain.DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfig_AppliesOverrides(t *testing.T) {
	root := t.TempDir()
	y := "cfgjs:\n  paths:\n    definitions: secrets/.env\n    output: public/config.js\n"
	if err := os.WriteFile(filepath.Join(root, ConfigFile), []byte(y), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Paths.Definitions != "secrets/.env" {
		t.Errorf("expected definitions override, got %q", cfg.Paths.Definitions)
	}
	if cfg.Paths.Output != "public/config.js" {
		t.Errorf("expected output override, got %q", cfg.Paths.Output)
	}
	if cfg.Paths.Example != ".env.example" {
		t.Errorf("expected default example path, got %q", cfg.Paths.Example)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ConfigFile), []byte("cfgjs: [\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := LoadConfig(root)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got: %v", err)
	}
	if !errors.Is(err, domain.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got: %v", err)
	}
}
