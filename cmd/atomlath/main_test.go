// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/atomlath/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateAnalyze(t *testing.T) {
	dir := t.TempDir()
	snap := filepath.Join(dir, "fcc.yaml")
	_, err := run(t, "generate", "fcc", "--reps", "4,4,4", "-o", snap)
	require.NoError(t, err)

	db := filepath.Join(dir, "runs.db")
	out, err := run(t, "analyze", "-i", snap, "--cutoff", "0.8", "--workers", "2", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "atoms: 256 (ghosts 0)")
	assert.Contains(t, out, "mean 12.00")
	assert.Regexp(t, `fcc\s+256`, out)

	_, err = os.Stat(db)
	assert.NoError(t, err)
}

func TestGenerate_Errors(t *testing.T) {
	_, err := run(t, "generate", "quasicrystal")
	assert.Error(t, err)
	_, err = run(t, "generate", "fcc", "--reps", "2,2")
	assert.Error(t, err)
	_, err = run(t, "generate", "fcc", "--a", "0")
	assert.Error(t, err)
}

func TestAnalyze_RequiresInput(t *testing.T) {
	_, err := run(t, "analyze")
	assert.Error(t, err)
}

func TestConfigInitShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atomlath.toml")
	_, err := run(t, "config", "init", path)
	require.NoError(t, err)
	_, err = run(t, "config", "init", path)
	assert.Error(t, err, "existing file without --force")
	_, err = run(t, "config", "init", "--force", path)
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	out, err := run(t, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "[neighbors]"))
	assert.Contains(t, out, `method = "cutoff"`)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "atomlath dev"))
}
