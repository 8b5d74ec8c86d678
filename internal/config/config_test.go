package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "colony.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[colony]
name = "Block 7"

[rules]
hunger_per_turn = 5
max_mood = 12

[journal]
enabled = true
write_timeout = "2s"

[display]
language = "ru"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Block 7", cfg.Colony.Name)
	assert.Equal(t, 5, cfg.Rules.HungerPerTurn)
	assert.Equal(t, 12, cfg.Rules.MaxMood)
	assert.True(t, cfg.Journal.Enabled)
	assert.Equal(t, 2*time.Second, cfg.Journal.WriteTimeout)
	assert.Equal(t, "ru", cfg.Display.Language)

	// untouched keys keep their defaults
	assert.Equal(t, 1000, cfg.Rules.ColonistArea)
	assert.Equal(t, 10, cfg.Rules.StarvationThreshold)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadRejectsBadSyntax(t *testing.T) {
	_, err := Load(writeConfig(t, "[rules\n"))
	assert.ErrorContains(t, err, "parse config")
}

func TestLoadRejectsBadRules(t *testing.T) {
	_, err := Load(writeConfig(t, `
[rules]
colonist_area = 0
min_mood = 11
`))
	require.Error(t, err)
	assert.ErrorContains(t, err, "colonist_area")
	assert.ErrorContains(t, err, "min_mood")
}

func TestDefaultRulesAreValid(t *testing.T) {
	assert.NoError(t, DefaultRules().Validate())
	assert.Equal(t, DefaultRules(), Default().Rules)
}
