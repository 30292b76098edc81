package webassets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// setupTestAssets creates an asset directory holding files and returns an
// Assets rooted at it.
func setupTestAssets(t *testing.T, files ...string) (*Assets, string) {
	t.Helper()
	dir := t.TempDir()
	for _, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("/* "+f+" */"), 0o644); err != nil {
			t.Fatalf("write %s: %v", f, err)
		}
	}
	return New(Config{AssetDir: dir}), dir
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func render(t *testing.T, write func(*bytes.Buffer) error) string {
	t.Helper()
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return buf.String()
}

func TestNewAppliesDefaults(t *testing.T) {
	a := New(Config{CSSRoot: "styles", JSRoot: "/scripts"})
	cfg := a.Config()

	if cfg.CSSRoot != "/styles/" {
		t.Errorf("CSSRoot = %q, want %q", cfg.CSSRoot, "/styles/")
	}
	if cfg.JSRoot != "/scripts/" {
		t.Errorf("JSRoot = %q, want %q", cfg.JSRoot, "/scripts/")
	}
	if cfg.AssetDir != "public" {
		t.Errorf("AssetDir = %q, want %q", cfg.AssetDir, "public")
	}
	if cfg.TitleSeparator != " - " {
		t.Errorf("TitleSeparator = %q, want %q", cfg.TitleSeparator, " - ")
	}
	if cfg.Charset != "UTF-8" {
		t.Errorf("Charset = %q, want %q", cfg.Charset, "UTF-8")
	}
	if a.Title() != "" {
		t.Errorf("Title = %q, want empty", a.Title())
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("WEBASSETS_DIR", "/srv/www")
	t.Setenv("WEBASSETS_CSS_ROOT", "/static/css/")
	t.Setenv("WEBASSETS_NAMESPACE_SEPARATOR", "::")

	cfg := ConfigFromEnv()
	if cfg.AssetDir != "/srv/www" {
		t.Errorf("AssetDir = %q, want %q", cfg.AssetDir, "/srv/www")
	}
	if cfg.CSSRoot != "/static/css/" {
		t.Errorf("CSSRoot = %q, want %q", cfg.CSSRoot, "/static/css/")
	}
	if got := New(cfg).CSSClassURL("Shop::Cart", ""); got != "/static/css/Shop/Cart.css" {
		t.Errorf("CSSClassURL = %q, want %q", got, "/static/css/Shop/Cart.css")
	}
}

func TestNamespaceToPath(t *testing.T) {
	tests := []struct {
		identifier string
		sep        string
		expected   string
	}{
		{"Shop.Cart.Page", ".", "Shop/Cart/Page"},
		{`Shop\Cart`, `\`, "Shop/Cart"},
		{"Shop::Cart", "::", "Shop/Cart"},
		{"Shop/Cart", "/", "Shop/Cart"},
		{"Plain", ".", "Plain"},
	}
	for _, tt := range tests {
		if got := NamespaceToPath(tt.identifier, tt.sep); got != tt.expected {
			t.Errorf("NamespaceToPath(%q, %q) = %q, want %q", tt.identifier, tt.sep, got, tt.expected)
		}
	}
}

type fakeFS map[string]string

func (f fakeFS) Exists(path string) bool {
	_, ok := f[filepath.ToSlash(path)]
	return ok
}

func (f fakeFS) ReadFile(path string) ([]byte, error) {
	content, ok := f[filepath.ToSlash(path)]
	if !ok {
		return nil, os.ErrNotExist
	}
	return []byte(content), nil
}

func TestInjectedCollaborators(t *testing.T) {
	a := New(Config{}, WithDirs(StaticDirs("/srv")), WithFileSystem(fakeFS{
		"/srv/css/site.css": "",
		"/srv/css/main.list": "# css-list\nsite.css\n",
	}))

	if err := a.AddCSSFile("site.css", ""); err != nil {
		t.Fatalf("AddCSSFile failed: %v", err)
	}
	if err := a.AddCSSList("main.list"); err != nil {
		t.Fatalf("AddCSSList failed: %v", err)
	}
	if got := len(a.CSSSources()); got != 2 {
		t.Fatalf("len(CSSSources) = %d, want 2", got)
	}
}
