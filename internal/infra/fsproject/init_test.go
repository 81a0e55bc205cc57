package fsproject

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/cfgjs/internal/domain"
)

func spec(root string) domain.ProjectSpec {
	return domain.ProjectSpec{Root: root, Config: domain.DefaultConfig()}
}

func TestInitializer_Init_CreatesProjectFiles(t *testing.T) {
	tmp := t.TempDir()

	if err := NewInitializer().Init(spec(tmp), false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	example := readFile(t, filepath.Join(tmp, ".env.example"))
	for _, k := range domain.RecognizedKeys {
		if !strings.Contains(example, k+"=") {
			t.Fatalf("expected %s in .env.example, got:\n%s", k, example)
		}
	}

	envPath := filepath.Join(tmp, ".env")
	if readFile(t, envPath) != example {
		t.Fatalf("expected .env to be seeded from .env.example")
	}
	info, err := os.Stat(envPath)
	if err != nil {
		t.Fatalf("stat .env: %v", err)
	}
	if got := info.Mode().Perm(); got != 0o600 {
		t.Fatalf("expected .env mode 600, got %o", got)
	}

	gi := readFile(t, filepath.Join(tmp, ".gitignore"))
	if !strings.Contains(gi, ".env\n") || !strings.Contains(gi, "config.js\n") {
		t.Fatalf("expected .gitignore entries, got:\n%s", gi)
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()
	envPath := filepath.Join(tmp, ".env")
	if err := os.WriteFile(envPath, []byte("GOOGLE_MAPS_API_KEY=mine\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	if err := NewInitializer().Init(spec(tmp), false); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if got := readFile(t, envPath); got != "GOOGLE_MAPS_API_KEY=mine\n" {
		t.Fatalf("expected .env preserved, got %q", got)
	}

	if err := NewInitializer().Init(spec(tmp), true); err != nil {
		t.Fatalf("Init --force error: %v", err)
	}
	if got := readFile(t, envPath); got != string(envExample) {
		t.Fatalf("expected .env overwritten with force, got %q", got)
	}
}

func TestInitializer_Init_CustomPaths(t *testing.T) {
	tmp := t.TempDir()
	s := spec(tmp)
	s.Config.Paths.Definitions = "secrets/app.env"
	s.Config.Paths.Output = "public/config.js"

	if err := NewInitializer().Init(s, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	readFile(t, filepath.Join(tmp, "secrets", "app.env"))
	gi := readFile(t, filepath.Join(tmp, ".gitignore"))
	if !strings.Contains(gi, "secrets/app.env") || !strings.Contains(gi, "public/config.js") {
		t.Fatalf("expected custom entries in .gitignore, got:\n%s", gi)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(b)
}

func TestInitializer_Init_AbsolutePathsBecomeRelativeEntries(t *testing.T) {
	tmp := t.TempDir()
	s := spec(tmp)
	s.Config.Paths.Definitions = filepath.Join(tmp, "secrets", "app.env")
	s.Config.Paths.Output = filepath.Join(tmp, "public", "config.js")

	if err := NewInitializer().Init(s, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	readFile(t, filepath.Join(tmp, "secrets", "app.env"))
	gi := readFile(t, filepath.Join(tmp, ".gitignore"))
	if strings.Contains(gi, tmp) {
		t.Fatalf("expected no absolute paths in .gitignore, got:\n%s", gi)
	}
	if !strings.Contains(gi, "\nsecrets/app.env\n") || !strings.Contains(gi, "\npublic/config.js\n") {
		t.Fatalf("expected root-relative entries, got:\n%s", gi)
	}
}

func TestIgnoreEntry(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "srv", "site")
	cases := []struct {
		path string
		want string
		ok   bool
	}{
		{".env", ".env", true},
		{"./public/config.js", "public/config.js", true},
		{filepath.Join(root, "config.js"), "config.js", true},
		{filepath.Join(string(filepath.Separator), "etc", "app.env"), "", false},
		{"../shared/.env", "", false},
	}
	for _, c := range cases {
		got, ok := ignoreEntry(root, c.path)
		if got != c.want || ok != c.ok {
			t.Errorf("ignoreEntry(%q) = (%q, %v), want (%q, %v)", c.path, got, ok, c.want, c.ok)
		}
	}
}
