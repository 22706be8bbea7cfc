package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/wort/pkg/brew"
	"github.com/arthur-debert/wort/pkg/config"
	"github.com/arthur-debert/wort/pkg/errors"
)

const userTOML = `
[default]
efficiency = 0.72
t_sacc = [150.0]

[big-kettle]
r_boil = 1.5
kettle_gap = 0.75

[hot-mash]
t_sacc = [156.0]
`

func memFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
	}
	return fs
}

func TestLoad_DefaultsMatchBrew(t *testing.T) {
	t.Setenv(config.EnvConfig, "/nowhere/config.toml")

	cfg, err := config.Load(config.Options{Fs: afero.NewMemMapFs(), SkipEnv: true})
	require.NoError(t, err)
	assert.Empty(t, cfg.File)
	assert.Equal(t, []string{"default"}, cfg.Sets)

	p, err := cfg.Params()
	require.NoError(t, err)
	assert.Equal(t, brew.Defaults(), p)
}

func TestLoad_Layers(t *testing.T) {
	fs := memFs(t, map[string]string{"/cfg/wort.toml": userTOML})

	tests := []struct {
		name  string
		opts  config.Options
		env   map[string]string
		check func(t *testing.T, p brew.Params)
	}{
		{
			name: "user default set",
			opts: config.Options{},
			check: func(t *testing.T, p brew.Params) {
				assert.Equal(t, 0.72, p.Efficiency)
				assert.Equal(t, []float64{150}, p.TSacc)
				assert.Equal(t, 1.0, p.RBoil)
			},
		},
		{
			name: "sets apply in order",
			opts: config.Options{Sets: []string{"big-kettle", "hot-mash"}},
			check: func(t *testing.T, p brew.Params) {
				assert.Equal(t, 1.5, p.RBoil)
				assert.Equal(t, 0.75, p.KettleGap)
				assert.Equal(t, []float64{156}, p.TSacc)
				assert.Equal(t, 0.72, p.Efficiency)
			},
		},
		{
			name: "environment beats sets",
			opts: config.Options{Sets: []string{"big-kettle"}},
			env:  map[string]string{"WORT_R_BOIL": "2", "WORT_T_SACC": "148,154"},
			check: func(t *testing.T, p brew.Params) {
				assert.Equal(t, 2.0, p.RBoil)
				assert.Equal(t, []float64{148, 154}, p.TSacc)
			},
		},
		{
			name: "overrides beat everything",
			opts: config.Options{Overrides: map[string]any{"R_BOIL": "0.8"}},
			env:  map[string]string{"WORT_R_BOIL": "2"},
			check: func(t *testing.T, p brew.Params) {
				assert.Equal(t, 0.8, p.RBoil)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			opts := tt.opts
			opts.Fs = fs
			opts.Path = "/cfg/wort.toml"

			cfg, err := config.Load(opts)
			require.NoError(t, err)
			assert.Equal(t, "/cfg/wort.toml", cfg.File)
			assert.Equal(t, []string{"big-kettle", "default", "hot-mash"}, cfg.Sets)

			p, err := cfg.Params()
			require.NoError(t, err)
			tt.check(t, p)
		})
	}
}

func TestLoad_YAML(t *testing.T) {
	fs := memFs(t, map[string]string{"/cfg/wort.yaml": "default:\n  boil_time: 90\nlager:\n  t_sacc: [148]\n"})

	cfg, err := config.Load(config.Options{Fs: fs, Path: "/cfg/wort.yaml", Sets: []string{"lager"}, SkipEnv: true})
	require.NoError(t, err)

	p, err := cfg.Params()
	require.NoError(t, err)
	assert.Equal(t, 90.0, p.BoilTime)
	assert.Equal(t, []float64{148}, p.TSacc)
}

func TestLoad_OSFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(userTOML), 0644))
	t.Setenv(config.EnvConfig, path)

	cfg, err := config.Load(config.Options{SkipEnv: true})
	require.NoError(t, err)
	assert.Equal(t, path, cfg.File)
	assert.Equal(t, 0.72, cfg.Values["efficiency"])
}

func TestLoad_Errors(t *testing.T) {
	fs := memFs(t, map[string]string{
		"/cfg/wort.toml": userTOML,
		"/cfg/bad.toml":  "[default\nefficiency = ",
		"/cfg/flat.toml": "efficiency = 0.7\n",
		"/cfg/wort.ini":  "[default]\n",
	})

	tests := []struct {
		name string
		opts config.Options
		code errors.ErrorCode
	}{
		{"missing explicit file", config.Options{Path: "/cfg/none.toml"}, errors.ErrConfigLoad},
		{"unknown set", config.Options{Path: "/cfg/wort.toml", Sets: []string{"nope"}}, errors.ErrNotFound},
		{"malformed toml", config.Options{Path: "/cfg/bad.toml"}, errors.ErrConfigParse},
		{"top-level value", config.Options{Path: "/cfg/flat.toml"}, errors.ErrConfigValid},
		{"unsupported format", config.Options{Path: "/cfg/wort.ini"}, errors.ErrConfigParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			opts.Fs = fs
			opts.SkipEnv = true
			_, err := config.Load(opts)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
		})
	}
}

func TestLoad_UnknownSetListsChoices(t *testing.T) {
	fs := memFs(t, map[string]string{"/cfg/wort.toml": userTOML})

	_, err := config.Load(config.Options{Fs: fs, Path: "/cfg/wort.toml", Sets: []string{"big"}, SkipEnv: true})
	require.Error(t, err)
	assert.Equal(t, []string{"big-kettle", "default", "hot-mash"}, errors.GetErrorDetails(err)["valid_keys"])
}

func TestLoad_EnvIgnoresNonParameters(t *testing.T) {
	t.Setenv(config.EnvConfig, "/nowhere.toml")
	t.Setenv("WORT_LOG_FILE", "/tmp/wort.log")
	t.Setenv("WORT_EFFICIENCY", "0.8")

	cfg, err := config.Load(config.Options{Fs: afero.NewMemMapFs()})
	require.NoError(t, err)
	assert.NotContains(t, cfg.Values, "log_file")
	assert.NotContains(t, cfg.Values, "config")

	p, err := cfg.Params()
	require.NoError(t, err)
	assert.Equal(t, 0.8, p.Efficiency)
}

func TestPath(t *testing.T) {
	t.Setenv(config.EnvConfig, "")
	t.Setenv("XDG_CONFIG_HOME", "/home/brewer/.config")
	assert.Equal(t, "/home/brewer/.config/wort/config.toml", config.Path())

	t.Setenv(config.EnvConfig, "/etc/wort.yaml")
	assert.Equal(t, "/etc/wort.yaml", config.Path())
}

func TestParseOverrides(t *testing.T) {
	got, err := config.ParseOverrides([]string{"efficiency=0.7", " t_sacc = 150,154 "})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"efficiency": "0.7", "t_sacc": "150,154"}, got)

	_, err = config.ParseOverrides([]string{"efficiency"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
