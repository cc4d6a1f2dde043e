// Package project locates the root of the project a tool belongs to.
//
// Tools resolve every relative path against the project they live in, never
// against the process working directory, so they can be invoked from anywhere.
package project

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/mod/modfile"
)

// ErrNoModule is returned when no go.mod is found above a directory.
var ErrNoModule = errors.New("no go.mod found")

// SourceFile returns the source file of the function skip frames above the
// caller. SourceFile(0) is the caller's own file.
func SourceFile(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}
	return file
}

// FindRoot walks up from start to the first directory containing go.mod.
func FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		if info, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil && !info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.Wrapf(ErrNoModule, "searching from %s", start)
		}
		dir = parent
	}
}

// ToolRoot resolves the project root for a tool whose main file is
// sourceFile. When the source is on disk (go run, go test) the search starts
// next to it; a built binary that has been moved away from its source starts
// next to the executable instead.
func ToolRoot(sourceFile string) (string, error) {
	if sourceFile != "" {
		if _, err := os.Stat(sourceFile); err == nil {
			return FindRoot(filepath.Dir(sourceFile))
		}
	}
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, "locating executable")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return FindRoot(filepath.Dir(exe))
}

// ModulePath reads the module path declared in root/go.mod.
func ModulePath(root string) (string, error) {
	path := filepath.Join(root, "go.mod")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "reading go.mod")
	}
	mod := modfile.ModulePath(data)
	if mod == "" {
		return "", errors.Errorf("%s declares no module path", path)
	}
	return mod, nil
}
