// Package testutil sets up file systems, environment variables and recipe
// documents for tests that go through file IO.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// FileTree represents a directory structure for testing. Values are file
// contents (string) or nested FileTrees.
type FileTree map[string]interface{}

// TestEnvironment is a file system with a recipes directory and a config
// location, plus log and config environment variables pointing into a
// temp directory.
type TestEnvironment struct {
	Fs afero.Fs
	// RecipeDir holds recipe documents
	RecipeDir string
	// ConfigFile is where the user config would live; it is not created.
	ConfigFile string

	Type EnvType
	t    *testing.T
}

// NewTestEnvironment creates a new test environment. The process
// environment is isolated with t.Setenv, so tests using it cannot run in
// parallel.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}
	temp := t.TempDir()

	switch envType {
	case EnvMemoryOnly:
		env.Fs = afero.NewMemMapFs()
		env.RecipeDir = "/virtual/recipes"
		env.ConfigFile = "/virtual/config/wort/config.toml"
	case EnvIsolated:
		env.Fs = afero.NewOsFs()
		env.RecipeDir = filepath.Join(temp, "recipes")
		env.ConfigFile = filepath.Join(temp, "config", "wort", "config.toml")
	default:
		t.Fatalf("unknown environment type %d", envType)
	}

	if err := env.Fs.MkdirAll(env.RecipeDir, 0755); err != nil {
		t.Fatalf("Failed to create %s: %v", env.RecipeDir, err)
	}

	t.Setenv("WORT_LOG_FILE", filepath.Join(temp, "wort.log"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(temp, "state"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Dir(filepath.Dir(env.ConfigFile)))
	t.Setenv("WORT_CONFIG", "")
	return env
}

// WithFileTree creates tree under the recipe directory
func (env *TestEnvironment) WithFileTree(tree FileTree) *TestEnvironment {
	env.t.Helper()
	createFileTree(env.t, env.Fs, env.RecipeDir, tree)
	return env
}

// WriteConfig writes content to ConfigFile.
func (env *TestEnvironment) WriteConfig(content string) string {
	env.t.Helper()
	if err := env.Fs.MkdirAll(filepath.Dir(env.ConfigFile), 0755); err != nil {
		env.t.Fatalf("Failed to create config directory: %v", err)
	}
	if err := afero.WriteFile(env.Fs, env.ConfigFile, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write config: %v", err)
	}
	return env.ConfigFile
}

// Recipe is the path of name inside the recipe directory.
func (env *TestEnvironment) Recipe(name string) string {
	return filepath.Join(env.RecipeDir, name)
}

// createFileTree recursively creates a file tree
func createFileTree(t *testing.T, fs afero.Fs, basePath string, tree FileTree) {
	t.Helper()

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := afero.WriteFile(fs, fullPath, []byte(v), 0644); err != nil {
				t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case FileTree:
			if err := fs.MkdirAll(fullPath, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", fullPath, err)
			}
			createFileTree(t, fs, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}
