package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csheth/leaddesk/internal/config"
	"github.com/csheth/leaddesk/internal/seed"
)

func TestSeedCommandPrintsDefaultFixture(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(config.EnvSeed, "")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"seed"})
	require.NoError(t, root.Execute())

	fixture, err := seed.Parse(out.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "UX PILOT", fixture.Call.Product)
	assert.Len(t, fixture.Call.Chat, 3)
}

func TestSeedFlagOverridesEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	custom := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(custom, []byte("call:\n  product: Custom\n"), 0o644))
	t.Setenv(config.EnvSeed, filepath.Join(dir, "missing.yaml"))

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"seed", "--seed", custom})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "product: Custom")
}

func TestSeedCommandReportsMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"seed", "--seed", "nope.yaml"})
	err := root.Execute()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "nope.yaml"))
}

func TestResolveConfigAppliesChangedFlagsOnly(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(config.EnvToastDuration, "9s")
	t.Setenv(config.EnvDebug, "true")

	root := newRootCmd()
	require.NoError(t, root.ParseFlags([]string{"--toast-duration", "2s"}))
	got, err := resolveConfig(root, flags{toastDuration: 2 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, got.ToastDuration)
	assert.True(t, got.Debug, "unchanged flag must not reset the environment value")
}

func TestResolveConfigRejectsZeroDuration(t *testing.T) {
	t.Chdir(t.TempDir())
	root := newRootCmd()
	require.NoError(t, root.ParseFlags([]string{"--toast-duration", "0s"}))
	_, err := resolveConfig(root, flags{})
	require.Error(t, err)
}
