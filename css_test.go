package webassets

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
)

func TestAddCSSFile(t *testing.T) {
	tests := []struct {
		url      string
		media    string
		expected string
	}{
		{"foo.css", "", `<link href="/css/foo.css" rel="stylesheet" type="text/css"/>`},
		{"foo.css", "print", `<link href="/css/foo.css" media="print" rel="stylesheet" type="text/css"/>`},
		{"/css/foo.css", "", `<link href="/css/foo.css" rel="stylesheet" type="text/css"/>`},
		{"https://cdn.example.com/x.css", "", `<link href="https://cdn.example.com/x.css" rel="stylesheet" type="text/css"/>`},
		{"//cdn.example.com/x.css", "", `<link href="//cdn.example.com/x.css" rel="stylesheet" type="text/css"/>`},
	}
	for _, tt := range tests {
		a, _ := setupTestAssets(t, "css/foo.css")
		if err := a.AddCSSFile(tt.url, tt.media); err != nil {
			t.Fatalf("AddCSSFile(%q) failed: %v", tt.url, err)
		}
		got := render(t, func(b *bytes.Buffer) error { return a.WriteStylesheets(b) })
		if got != tt.expected {
			t.Errorf("AddCSSFile(%q, %q) rendered %q, want %q", tt.url, tt.media, got, tt.expected)
		}
	}
}

func TestAddCSSFileNotFound(t *testing.T) {
	a, dir := setupTestAssets(t)

	err := a.AddCSSFile("not-found.css", "")
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("err = %v, want ErrFileNotFound", err)
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want *NotFoundError", err)
	}
	if want := filepath.Join(dir, "css", "not-found.css"); nf.Path != want {
		t.Errorf("Path = %q, want %q", nf.Path, want)
	}
	if len(a.CSSSources()) != 0 {
		t.Errorf("CSSSources = %v, want none", a.CSSSources())
	}
}

func TestAddCSSClassFile(t *testing.T) {
	a, _ := setupTestAssets(t, "css/Shop/Cart.css", "css/Shop/Cart.print.css")

	if err := a.AddCSSClassFile("Shop.Cart", ""); err != nil {
		t.Fatalf("AddCSSClassFile failed: %v", err)
	}
	if err := a.AddCSSClassFile("Shop.Cart", "print"); err != nil {
		t.Fatalf("AddCSSClassFile print failed: %v", err)
	}
	if err := a.AddCSSClassFile("Shop.Checkout", ""); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("err = %v, want ErrFileNotFound", err)
	}

	got := render(t, func(b *bytes.Buffer) error { return a.WriteStylesheets(b) })
	want := `<link href="/css/Shop/Cart.css" rel="stylesheet" type="text/css"/>` +
		`<link href="/css/Shop/Cart.print.css" media="print" rel="stylesheet" type="text/css"/>`
	if got != want {
		t.Errorf("WriteStylesheets = %q, want %q", got, want)
	}
}

func TestCSSOrder(t *testing.T) {
	a, _ := setupTestAssets(t, "css/first.css", "css/second.css", "css/pushed.css", "css/Shop/Cart.css")

	if err := a.AddCSSFile("first.css", ""); err != nil {
		t.Fatalf("AddCSSFile failed: %v", err)
	}
	if err := a.AddCSSFile("second.css", ""); err != nil {
		t.Fatalf("AddCSSFile failed: %v", err)
	}
	if err := a.PushCSSFile("pushed.css", ""); err != nil {
		t.Fatalf("PushCSSFile failed: %v", err)
	}

	var got []string
	for _, s := range a.CSSSources() {
		got = append(got, s.Href)
	}
	want := []string{"/css/pushed.css", "/css/first.css", "/css/second.css"}
	if len(got) != len(want) {
		t.Fatalf("hrefs = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("hrefs[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if err := a.PushCSSClassFile("Shop.Cart", ""); err != nil {
		t.Fatalf("PushCSSClassFile failed: %v", err)
	}
	if first := a.CSSSources()[0].Href; first != "/css/Shop/Cart.css" {
		t.Errorf("first href = %q, want %q", first, "/css/Shop/Cart.css")
	}
}

func TestAddTrustedCSSFile(t *testing.T) {
	a, _ := setupTestAssets(t)
	a.AddTrustedCSSFile("/css/generated.css", "screen")

	got := render(t, func(b *bytes.Buffer) error { return a.WriteStylesheets(b) })
	want := `<link href="/css/generated.css" media="screen" rel="stylesheet" type="text/css"/>`
	if got != want {
		t.Errorf("WriteStylesheets = %q, want %q", got, want)
	}
}

func TestCSSLines(t *testing.T) {
	a := New(Config{})
	a.AddCSSLine("{")
	a.AddCSSLine("color: red;")
	a.AddCSSLine("}")
	a.PushCSSLine("body")

	got := render(t, func(b *bytes.Buffer) error { return a.WriteStylesheets(b) })
	want := `<style type="text/css" media="all">body{color: red;}</style>`
	if got != want {
		t.Errorf("WriteStylesheets = %q, want %q", got, want)
	}
}

func TestStylesheetsLinksBeforeInline(t *testing.T) {
	a, _ := setupTestAssets(t, "css/foo.css")
	a.AddCSSLine("p{margin:0}")
	if err := a.AddCSSFile("foo.css", ""); err != nil {
		t.Fatalf("AddCSSFile failed: %v", err)
	}

	els := a.StylesheetElements()
	if len(els) != 2 {
		t.Fatalf("len(StylesheetElements) = %d, want 2", len(els))
	}
	if els[0].Tag != "link" || els[1].Tag != "style" {
		t.Errorf("tags = %q, %q; want link, style", els[0].Tag, els[1].Tag)
	}
	if els[1].HTML != "p{margin:0}" {
		t.Errorf("style HTML = %q", els[1].HTML)
	}
}
