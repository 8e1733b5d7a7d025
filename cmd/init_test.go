package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func chdirTemp(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	return tempDir
}

func runInit(t *testing.T) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"init"})

	err := cmd.Execute()

	return out.String(), err
}

func TestInitCmd_WritesSvgflatDefaults(t *testing.T) {
	tempDir := chdirTemp(t)

	out, err := runInit(t)
	require.NoError(t, err)
	assert.Equal(t, "Wrote svgflat.yaml (samples 51, format svg, output flattened)\n", out)

	targetPath := filepath.Join(tempDir, configFileName)
	assert.Equal(t, "svgflat.yaml", filepath.Base(targetPath))

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "samples: 51")

	var cfg struct {
		Output  string `yaml:"output"`
		Flatten struct {
			Samples int `yaml:"samples"`
		} `yaml:"flatten"`
		Convert struct {
			Format string `yaml:"format"`
		} `yaml:"convert"`
	}
	require.NoError(t, yaml.Unmarshal(contents, &cfg))

	assert.Equal(t, "flattened", cfg.Output)
	assert.Equal(t, 51, cfg.Flatten.Samples)
	assert.Equal(t, "svg", cfg.Convert.Format)
}

func TestInitCmd_KeepsExistingConfig(t *testing.T) {
	tempDir := chdirTemp(t)

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("flatten:\n  samples: 11\n"), 0o644))

	_, err := runInit(t)
	require.Error(t, err)

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Equal(t, "flatten:\n  samples: 11\n", string(contents))
}
