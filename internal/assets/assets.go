// Package assets resolves the resources bundled with the application.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

//go:embed questions.json
var packaged embed.FS

// Packaged returns the read-only resources compiled into the binary.
func Packaged() fs.FS {
	return packaged
}

// Dir returns a provider backed by a directory on disk.
func Dir(path string) (fs.FS, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("assets dir is empty")
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat assets dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("assets dir %q is not a directory", path)
	}
	return os.DirFS(path), nil
}

// Resolve returns Dir(path) when path is set and the packaged resources otherwise.
func Resolve(path string) (fs.FS, error) {
	if strings.TrimSpace(path) == "" {
		return Packaged(), nil
	}
	return Dir(path)
}
