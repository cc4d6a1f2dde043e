// Package rename rebrands a freshly cloned template by rewriting its import
// path and short project name in a fixed set of files.
package rename

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
)

// DefaultOldImportPath is the import path the template ships with.
const DefaultOldImportPath = "github.com/AstromechZA/go-cli-template"

// DefaultTargets lists the files, relative to the project root, that carry the
// template's import path or project name.
var DefaultTargets = []string{
	"cmd/readme/main.go",
	"make_official.sh",
	"main.go",
	"go.mod",
}

// Rule is a literal find and replace pair.
type Rule struct {
	Find    string
	Replace string
}

// Apply replaces every occurrence of Find in content. A rule with an empty
// Find leaves content untouched.
func (r Rule) Apply(content string) string {
	if r.Find == "" {
		return content
	}
	return strings.ReplaceAll(content, r.Find, r.Replace)
}

// Rules builds the ordered replacement rules for moving from oldImportPath to
// newImportPath. The full import path is replaced before the short name so the
// short-name rule never sees a half-rewritten path.
func Rules(oldImportPath, newImportPath string) []Rule {
	return []Rule{
		{Find: oldImportPath, Replace: newImportPath},
		{Find: Base(oldImportPath), Replace: Base(newImportPath)},
	}
}

// ApplyRules runs rules over content in order.
func ApplyRules(content string, rules []Rule) string {
	for _, rule := range rules {
		content = rule.Apply(content)
	}
	return content
}

// Base returns the text after the final slash of an import path. A path that
// ends in a slash has an empty base.
func Base(importPath string) string {
	if i := strings.LastIndex(importPath, "/"); i >= 0 {
		return importPath[i+1:]
	}
	return importPath
}

// Config describes what a Renamer rewrites.
type Config struct {
	// Root is the directory Targets are resolved against.
	Root string
	// OldImportPath is the import path being replaced.
	OldImportPath string
	// Targets are project-relative file paths. Missing files are skipped.
	Targets []string
}

// Renamer rewrites the configured targets, then runs its finalize step once.
type Renamer struct {
	cfg      Config
	log      logr.Logger
	finalize func() error
}

// New returns a Renamer. finalize runs after every target has been processed
// successfully; it may be nil.
func New(cfg Config, log logr.Logger, finalize func() error) *Renamer {
	if cfg.OldImportPath == "" {
		cfg.OldImportPath = DefaultOldImportPath
	}
	if cfg.Targets == nil {
		cfg.Targets = DefaultTargets
	}
	return &Renamer{cfg: cfg, log: log, finalize: finalize}
}

// Rename rewrites every existing target to use importPath and returns the
// absolute paths it rewrote, in target order. A failure stops the run where it
// happened; files already rewritten stay rewritten and finalize is not called.
func (r *Renamer) Rename(importPath string) ([]string, error) {
	importPath = strings.TrimSpace(importPath)
	rules := Rules(r.cfg.OldImportPath, importPath)

	var rewritten []string
	for _, target := range r.cfg.Targets {
		path := filepath.Join(r.cfg.Root, filepath.FromSlash(target))
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return rewritten, errors.Wrapf(err, "reading %s", path)
		}
		updated := ApplyRules(string(content), rules)
		r.log.Info("Rewriting content", "path", path)
		if err := os.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
			return rewritten, errors.Wrapf(err, "writing %s", path)
		}
		rewritten = append(rewritten, path)
	}

	if r.finalize != nil {
		if err := r.finalize(); err != nil {
			return rewritten, errors.Wrap(err, "finalizing rename")
		}
	}
	return rewritten, nil
}

// SelfDelete returns a finalize step that removes the Go source file at path
// together with its _test.go companion, then the directory if nothing else is
// left in it.
func SelfDelete(path string) func() error {
	return func() error {
		if err := os.Remove(path); err != nil {
			return err
		}
		testFile := strings.TrimSuffix(path, ".go") + "_test.go"
		if err := os.Remove(testFile); err != nil && !os.IsNotExist(err) {
			return err
		}
		// Fails harmlessly when the directory still has entries.
		_ = os.Remove(filepath.Dir(path))
		return nil
	}
}
