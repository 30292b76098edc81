package webassets

import (
	"os"
	"path/filepath"
	"strings"
)

// Dirs resolves the directory that holds the web assets.
type Dirs interface {
	AssetDir() (string, error)
}

// StaticDirs is a Dirs backed by a fixed directory. Relative paths are made
// absolute against the working directory.
type StaticDirs string

// AssetDir returns the absolute path of the directory.
func (d StaticDirs) AssetDir() (string, error) {
	return filepath.Abs(string(d))
}

// FileSystem is the file access Assets needs: existence checks for asset files
// and reading CSS list files.
type FileSystem interface {
	Exists(path string) bool
	ReadFile(path string) ([]byte, error)
}

// OSFileSystem reads from the local disk.
type OSFileSystem struct{}

// Exists reports whether path names a regular file.
func (OSFileSystem) Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ReadFile reads the whole file at path.
func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// NamespaceToPath maps a hierarchical identifier to a slash separated path,
// e.g. "Shop.Cart.Page" with separator "." becomes "Shop/Cart/Page".
func NamespaceToPath(identifier, sep string) string {
	if sep == "" || sep == "/" {
		return identifier
	}
	return strings.ReplaceAll(identifier, sep, "/")
}
