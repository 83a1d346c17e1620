package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Station-Manager/warnings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestEmit_RedirectsToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "warnings.log")
	require.NoError(t, execute(t, "emit", "--redirect-warnings", out,
		"--type", "ResourceWarning", "--code", "RES001", "disk quota low"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Regexp(t, `\(.*:\d+\) \[RES001\] ResourceWarning: disk quota low\n`, string(data))
}

func TestEmit_DedupAcrossArguments(t *testing.T) {
	out := filepath.Join(t.TempDir(), "warnings.log")
	require.NoError(t, execute(t, "emit", "--redirect-warnings", out,
		"--type", warnings.DeprecationName, "--code", "DEP1", "first", "second"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "DeprecationWarning: first")
	assert.NotContains(t, string(data), "second")
}

func TestEmit_ThrowDeprecation(t *testing.T) {
	err := execute(t, "emit", "--throw-deprecation",
		"--type", warnings.DeprecationName, "--code", "DEP1", "old API")
	require.Error(t, err)

	var w *warnings.Warning
	require.ErrorAs(t, err, &w)
	assert.Equal(t, "DEP1", w.Code())
}

func TestEmit_NoWarningsFromEnv(t *testing.T) {
	out := filepath.Join(t.TempDir(), "warnings.log")
	t.Setenv(envNoWarnings, "1")
	t.Setenv(envRedirect, out)

	require.NoError(t, execute(t, "emit", "--throw-deprecation",
		"--type", warnings.DeprecationName, "silenced"))

	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestResolvePolicy_LayersFileEnvFlags(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "warnings.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("enabled = true\ntrace_warnings = true\noutput_path = \"from-file.log\"\n"), 0o644))
	t.Setenv(envRedirect, "from-env.log")

	root := newRootCmd()
	require.NoError(t, root.ParseFlags([]string{"--config", cfgPath, "--trace-warnings=false", "--no-deprecation"}))

	cfg, err := resolvePolicy(root)
	require.NoError(t, err)
	assert.True(t, cfg.Enabled)
	assert.False(t, cfg.TraceWarnings)
	assert.True(t, cfg.NoDeprecation)
	assert.Equal(t, "from-env.log", cfg.OutputPath)
}
