package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/cube-conundrum/internal/model"
)

// testdataPath returns the absolute path to a config fixture.
func testdataPath(t *testing.T, name string) string {
	t.Helper()

	_, filename, _, ok := runtime.Caller(0)
	require.True(t, ok, "runtime.Caller failed to return file info")

	return filepath.Join(filepath.Dir(filename), "..", "..", "tests", "testdata", "config", name)
}

// requireExitCode asserts that err is a CLIError with the given code.
func requireExitCode(t *testing.T, err error, code model.ExitCode) {
	t.Helper()
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr), "expected *model.CLIError, got %T", err)
	assert.Equal(t, code, cliErr.Code)
}

// TestDefault checks the built-in configuration.
func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "input.txt", cfg.Input)

	mode, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, model.IDModePosition, mode)
	assert.Equal(t, model.DefaultConstraints(), cfg.Limits())
	assert.NoError(t, cfg.Validate())
}

// TestLoad_YAML verifies that every field of a YAML file is honoured.
func TestLoad_YAML(t *testing.T) {
	cfg, err := Load(testdataPath(t, "cubes.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "logs/evening.txt", cfg.Input)
	assert.Equal(t, "ordinal", cfg.IDMode)
	assert.Equal(t, model.Round{Red: 20, Green: 30, Blue: 40}, cfg.Limits())
	assert.NoError(t, cfg.Validate())
}

// TestLoad_JSONC verifies comment and trailing comma stripping, partial
// constraints falling back to defaults, and an explicit zero being kept.
func TestLoad_JSONC(t *testing.T) {
	cfg, err := Load(testdataPath(t, "cubes.jsonc"))
	require.NoError(t, err)

	assert.Equal(t, DefaultInput, cfg.Input)
	assert.Equal(t, "label", cfg.IDMode)
	assert.Equal(t, model.Round{Red: 12, Green: 13, Blue: 0}, cfg.Limits())
}

// TestLoad_Errors checks that every load failure maps to ExitConfigError.
func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		message string
	}{
		{"missing file", filepath.Join(t.TempDir(), "none.yaml"), "not found"},
		{"unknown yaml key", testdataPath(t, "unknown-field.yaml"), "gren"},
		{"unsupported extension", testdataPath(t, "cubes.toml"), ".toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			requireExitCode(t, err, model.ExitConfigError)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

// TestLoad_UnknownJSONKey checks strict decoding of JSON files.
func TestLoad_UnknownJSONKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cubes.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"limits": {"red": 1}}`), 0o644))

	_, err := Load(path)
	requireExitCode(t, err, model.ExitConfigError)
	assert.Contains(t, err.Error(), "limits")
}

// TestLoad_EmptyFile checks that an empty file yields the defaults.
func TestLoad_EmptyFile(t *testing.T) {
	for _, name := range []string{"empty.yaml", "empty.jsonc"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, os.WriteFile(path, nil, 0o644))

			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, Default(), cfg)
		})
	}
}

// TestValidate checks the validation rules.
func TestValidate(t *testing.T) {
	t.Run("bad id mode from file", func(t *testing.T) {
		cfg, err := Load(testdataPath(t, "bad-mode.yaml"))
		require.NoError(t, err, "the mode is only checked by Validate")
		requireExitCode(t, cfg.Validate(), model.ExitConfigError)
	})

	t.Run("blank input", func(t *testing.T) {
		cfg := Default()
		cfg.Input = "  "
		requireExitCode(t, cfg.Validate(), model.ExitConfigError)
	})

	t.Run("unset constraint", func(t *testing.T) {
		cfg := &Config{Input: "x", IDMode: "position"}
		err := cfg.Validate()
		requireExitCode(t, err, model.ExitConfigError)
		assert.Contains(t, err.Error(), "red=unset")
	})
}

// TestApplyEnv checks that set variables win over file values and empty
// ones are ignored.
func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvInput:  "from-env.txt",
		EnvIDMode: "",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	cfg.IDMode = "label"
	cfg.ApplyEnv(lookup)

	assert.Equal(t, "from-env.txt", cfg.Input)
	assert.Equal(t, "label", cfg.IDMode)
}

// TestSetLimit checks per-color overrides, including zero.
func TestSetLimit(t *testing.T) {
	cfg := Default()
	cfg.SetLimit(model.Green, 0)
	cfg.SetLimit(model.Blue, 99)

	assert.Equal(t, model.Round{Red: 12, Green: 0, Blue: 99}, cfg.Limits())
	assert.Equal(t, model.DefaultConstraints(), Default().Limits(), "defaults are not shared")
}
