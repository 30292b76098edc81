package webassets

import (
	"os"
	"strings"

	"github.com/labstack/echo/v4"
)

// Config holds the URL layout and rendering settings for an Assets collection.
type Config struct {
	AssetDir string // Directory served at the site root (default "public")
	CSSRoot  string // Root-relative URL of CSS files (default "/css/")
	JSRoot   string // Root-relative URL of JavaScript files (default "/js/")

	NamespaceSeparator string // Separator in class identifiers (default ".")
	TitleSeparator     string // Joins title parts (default " - ")
	Charset            string // Value of the charset meta element (default "UTF-8")

	Loader          string // Namespace of the module loader script (default "require")
	InlineScriptVar string // Global holding inline JavaScript (default "webassets_inline_js")
	ListKeyword     string // Keyword required in a CSS list header (default "css-list")
}

func (c *Config) setDefaults() {
	if c.AssetDir == "" {
		c.AssetDir = "public"
	}
	if c.CSSRoot == "" {
		c.CSSRoot = "/css/"
	}
	if c.JSRoot == "" {
		c.JSRoot = "/js/"
	}
	c.CSSRoot = normalizeRoot(c.CSSRoot)
	c.JSRoot = normalizeRoot(c.JSRoot)
	if c.NamespaceSeparator == "" {
		c.NamespaceSeparator = "."
	}
	if c.TitleSeparator == "" {
		c.TitleSeparator = " - "
	}
	if c.Charset == "" {
		c.Charset = "UTF-8"
	}
	if c.Loader == "" {
		c.Loader = "require"
	}
	if c.InlineScriptVar == "" {
		c.InlineScriptVar = "webassets_inline_js"
	}
	if c.ListKeyword == "" {
		c.ListKeyword = "css-list"
	}
}

// normalizeRoot makes sure a root-relative URL has a leading and a trailing slash.
func normalizeRoot(root string) string {
	if !strings.HasPrefix(root, "/") {
		root = "/" + root
	}
	if !strings.HasSuffix(root, "/") {
		root += "/"
	}
	return root
}

// ConfigFromEnv builds a Config from WEBASSETS_* environment variables.
// Unset variables fall back to the defaults applied by New.
func ConfigFromEnv() Config {
	return Config{
		AssetDir:           os.Getenv("WEBASSETS_DIR"),
		CSSRoot:            os.Getenv("WEBASSETS_CSS_ROOT"),
		JSRoot:             os.Getenv("WEBASSETS_JS_ROOT"),
		NamespaceSeparator: os.Getenv("WEBASSETS_NAMESPACE_SEPARATOR"),
		Charset:            os.Getenv("WEBASSETS_CHARSET"),
	}
}

// Option configures additional Assets behavior.
type Option func(*Assets)

// WithDirs sets the resolver for the asset directory.
func WithDirs(d Dirs) Option {
	return func(a *Assets) {
		a.dirs = d
	}
}

// WithFileSystem sets the file system used for existence checks and list files.
func WithFileSystem(fsys FileSystem) Option {
	return func(a *Assets) {
		a.fs = fsys
	}
}

// WithLogger sets the logger. Echo's own logger satisfies the interface.
func WithLogger(l echo.Logger) Option {
	return func(a *Assets) {
		a.logger = l
	}
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
