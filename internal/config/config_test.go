package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `{"workers": 4, "min_score": 0.3, "verbose": true}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 0.3, cfg.MinScore)
	assert.True(t, cfg.Verbose)
	assert.Empty(t, cfg.Resume)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeConfig(t, `{"workers": `)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_NegativeWorkers(t *testing.T) {
	cfg := &Config{Workers: -1}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MinScoreOutOfRange(t *testing.T) {
	assert.Error(t, (&Config{MinScore: 1.5}).Validate())
	assert.Error(t, (&Config{MinScore: -0.1}).Validate())
	assert.NoError(t, (&Config{MinScore: 0.5}).Validate())
}

func TestValidate_MissingReferencedFiles(t *testing.T) {
	cfg := &Config{Resume: filepath.Join(t.TempDir(), "absent.json")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")
}

func TestValidate_ExistingFilesPass(t *testing.T) {
	resume := writeConfig(t, `{"skills": []}`)
	cfg := &Config{Resume: resume}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Workers: 2}
	defaults := Config{Workers: 8, MinScore: 0.25, Verbose: true, Catalog: "catalog.json"}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, 2, merged.Workers, "explicit value wins")
	assert.Equal(t, 0.25, merged.MinScore, "unset value comes from defaults")
	assert.True(t, merged.Verbose)
	assert.Equal(t, "catalog.json", merged.Catalog)
}
