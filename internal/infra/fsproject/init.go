package fsproject

import (
	_ "embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/cfgjs/internal/domain"
	"github.com/aalvaropc/cfgjs/internal/ports"
)

//go:embed templates/env.example
var envExample []byte

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.ProjectInitializer = (*Initializer)(nil)

// Init writes the example definitions file, seeds the definitions file from it
// and makes sure both secrets and generated output are git-ignored.
// Existing files are kept unless force is set.
func (i *Initializer) Init(spec domain.ProjectSpec, force bool) error {
	root := filepath.Clean(spec.Root)
	paths := spec.Config.Paths

	if err := writeFile(resolve(root, paths.Example), envExample, 0o644, force); err != nil {
		return err
	}
	if err := writeFile(resolve(root, paths.Definitions), envExample, 0o600, force); err != nil {
		return err
	}

	var entries []string
	for _, p := range []string{paths.Definitions, paths.Output} {
		if e, ok := ignoreEntry(root, p); ok {
			entries = append(entries, e)
		}
	}
	return ensureGitignore(root, entries)
}

// ignoreEntry turns a configured path into a root-relative .gitignore pattern.
// Paths outside root cannot be matched by the root .gitignore and are skipped.
func ignoreEntry(root, path string) (string, bool) {
	if filepath.IsAbs(path) {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return "", false
		}
		path = rel
	}
	path = filepath.Clean(path)
	if path == "." || path == ".." || strings.HasPrefix(path, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(path), true
}

func resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}

func writeFile(path string, b []byte, mode fs.FileMode, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return opErr(path, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return opErr(path, err)
	}
	if err := os.WriteFile(path, b, mode); err != nil {
		return opErr(path, err)
	}
	return nil
}

func ensureGitignore(root string, entries []string) error {
	const header = "# cfgjs"

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return opErr(path, err)
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		present[trimmed] = true
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
			present[e] = true
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.Grow(len(existing) + 64)

	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}

func opErr(path string, err error) error {
	return domain.Execution("fsproject.init", path, err)
}
