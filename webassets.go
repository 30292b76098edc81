// Package webassets collects the presentation metadata of a single page while a
// request is handled (title, meta tags, stylesheets, inline CSS and JavaScript)
// and renders it as markup at the end of the request.
//
// An Assets value belongs to one request. Register assets from handlers and
// components, then render the fragments with the Write* methods, the templ
// components, or the structured *Elements methods. Nothing is cached: every
// render reflects the registrations made so far.
package webassets

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// Assets accumulates the web assets of one page.
type Assets struct {
	cfg    Config
	dirs   Dirs
	fs     FileSystem
	logger echo.Logger

	title      string
	cssSources []CSSSource
	cssLines   []string
	javaScript string
	trailer    *ScriptTrailer
	keywords   []string
	meta       [][]Attr
}

var defaultLogger = func() *log.Logger {
	l := log.New("webassets")
	l.SetLevel(log.WARN)
	return l
}()

// New creates an empty Assets with the given configuration.
func New(cfg Config, opts ...Option) *Assets {
	cfg.setDefaults()

	a := &Assets{
		cfg:  cfg,
		dirs: StaticDirs(cfg.AssetDir),
		fs:   OSFileSystem{},
	}

	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = defaultLogger
	}

	return a
}

// Config returns the configuration with defaults applied.
func (a *Assets) Config() Config {
	return a.cfg
}

// fullPath maps a root-relative URL to a path inside the asset directory.
func (a *Assets) fullPath(rootRelativeURL string) (string, error) {
	dir, err := a.dirs.AssetDir()
	if err != nil {
		return "", fmt.Errorf("resolve asset dir: %w", err)
	}
	p := rootRelativeURL
	if u, err := url.Parse(rootRelativeURL); err == nil {
		p = u.Path
	}
	return filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(p, "/"))), nil
}

// checkFile verifies that the file behind a root-relative URL exists and
// returns its path on disk.
func (a *Assets) checkFile(kind, rootRelativeURL string) (string, error) {
	path, err := a.fullPath(rootRelativeURL)
	if err != nil {
		return "", err
	}
	if !a.fs.Exists(path) {
		a.logger.Warnf("%s file '%s' not found", kind, path)
		return path, &NotFoundError{Kind: kind, Path: path}
	}
	return path, nil
}
