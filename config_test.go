package dafsa

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_GenerateAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	require.NoError(t, GenerateSample(path))

	bin, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(bin), "format: bin")

	cfg, err := NewConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "bin", cfg.Format)
}

func TestNewConfig_MissingFile(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
