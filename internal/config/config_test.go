package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := LoadFromRoot(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoad(t *testing.T) {
	root := t.TempDir()
	content := `
readme:
  output: docs/README.md
  strict: true
rename:
  old_import_path: github.com/acme/template
  targets:
    - main.go
    - go.mod
`
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte(content), 0o644))

	cfg, err := LoadFromRoot(root)
	require.NoError(t, err)
	assert.Equal(t, "docs/README.md", cfg.Readme.Output)
	assert.True(t, cfg.Readme.Strict)
	assert.Equal(t, "github.com/acme/template", cfg.Rename.OldImportPath)
	assert.Equal(t, []string{"main.go", "go.mod"}, cfg.Rename.Targets)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("readme: [unterminated"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "project")
	abs := filepath.Join(string(filepath.Separator), "elsewhere", "README.md")
	assert.Equal(t, "", Resolve(root, ""))
	assert.Equal(t, "-", Resolve(root, "-"))
	assert.Equal(t, abs, Resolve(root, abs))
	assert.Equal(t, filepath.Join(root, "README.md"), Resolve(root, "README.md"))
}
