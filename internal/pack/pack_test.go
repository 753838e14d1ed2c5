package pack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banglasoft/shomoy/internal/clip"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestName), []byte(content), 0644))
}

func TestLoad_NoManifest(t *testing.T) {
	m, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestLoad_ParsesManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
name: sylheti
language: bn
voice: afsana
clips:
  intro: somoy_oilo.wav
  hour_1: ekta_sylheti.wav
`)

	m, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, "sylheti", m.Name)
	assert.Equal(t, "bn", m.Language)
	assert.Equal(t, "afsana", m.Voice)
	assert.Equal(t, "somoy_oilo.wav", m.Clips["intro"])
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "clips: [not: a: map")

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestOverrides(t *testing.T) {
	m := &Manifest{
		Clips: map[string]string{
			"intro":     "custom_intro.wav",
			"hour_7":    "custom_seven.wav",
			"hour_99":   "bogus.wav",
			"minute_15": "",
		},
	}

	overrides, unknown := m.Overrides()

	assert.Equal(t, "custom_intro.wav", overrides[clip.Intro])
	assert.Equal(t, "custom_seven.wav", overrides[clip.HourClip(7)])
	assert.NotContains(t, overrides, clip.MinuteClip(15), "empty overrides are dropped")
	assert.Equal(t, []string{"hour_99"}, unknown)
}
