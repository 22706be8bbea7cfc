package testutil_test

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/wort/pkg/config"
	"github.com/arthur-debert/wort/pkg/recipe"
	"github.com/arthur-debert/wort/pkg/testutil"
)

func TestNewTestEnvironment(t *testing.T) {
	for _, envType := range []testutil.EnvType{testutil.EnvMemoryOnly, testutil.EnvIsolated} {
		t.Run(map[testutil.EnvType]string{testutil.EnvMemoryOnly: "memory", testutil.EnvIsolated: "isolated"}[envType], func(t *testing.T) {
			env := testutil.NewTestEnvironment(t, envType).WithFileTree(testutil.FileTree{
				"ale.yaml": testutil.Ale("House", 10),
				"dark": testutil.FileTree{
					"stout.yaml": testutil.Ale("Stout", 12),
				},
			})

			r, err := recipe.Load(env.Fs, env.Recipe("dark/stout.yaml"))
			require.NoError(t, err)
			assert.Equal(t, "Stout", r.Name)

			assert.Equal(t, env.ConfigFile, config.Path())
			env.WriteConfig("[default]\nefficiency = 0.8\n")
			exists, err := afero.Exists(env.Fs, env.ConfigFile)
			require.NoError(t, err)
			assert.True(t, exists)
			assert.Empty(t, os.Getenv("WORT_CONFIG"))
		})
	}
}

func TestAle(t *testing.T) {
	doc := testutil.Ale("Pale", 9.5, testutil.Parameters("efficiency", "0.7", "boil_time", "90"))

	r, err := recipe.Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "Pale", r.Name)
	assert.Equal(t, 3, r.Ingredients.Len())
	assert.Equal(t, 0.7, r.Parameters["efficiency"])
	assert.Equal(t, 90, r.Parameters["boil_time"])
}
