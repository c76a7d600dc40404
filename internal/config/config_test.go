package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "stdio", cfg.Transport)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "en", cfg.TranscriptLang)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "test-key")
	t.Setenv("TRANSPORT", "http")
	t.Setenv("PORT", "9090")
	t.Setenv("YOUTUBE_TRANSCRIPT_LANG", "de")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http", cfg.Transport)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "de", cfg.TranscriptLang)
}

func TestLoadMissingAPIKey(t *testing.T) {
	// t.Setenv registers the restore; unset to simulate a bare environment.
	t.Setenv("YOUTUBE_API_KEY", "")
	os.Unsetenv("YOUTUBE_API_KEY")

	_, err := Load()
	assert.Error(t, err)
}
