package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"Web Developer", "UI/UX Designer", "Frontend Developer", "Creative Thinker"}, cfg.Typing.Phrases)
	assert.Equal(t, time.Second, cfg.Typing.InitialDelay())
	assert.Equal(t, 150*time.Millisecond, cfg.Typing.GrowDelay())
	assert.Equal(t, 100*time.Millisecond, cfg.Typing.ShrinkDelay())
	assert.Equal(t, 2*time.Second, cfg.Typing.FullPause())
	assert.Equal(t, 500*time.Millisecond, cfg.Typing.EmptyPause())

	assert.Equal(t, "line", cfg.Surface.Type)
	assert.Equal(t, "stderr", cfg.Log.Output)
	assert.Equal(t, "info", cfg.Log.Level)

	assert.Equal(t, 50, cfg.Page.NavbarThreshold)
	assert.Equal(t, 500, cfg.Page.ScrollTopThreshold)
	assert.Equal(t, 150, cfg.Page.SectionOffset)
	assert.Equal(t, 80, cfg.Page.NavbarHeight)
}

func TestParse_FileValues(t *testing.T) {
	data := []byte(`
typing:
  phrases: ["Hi", "Go"]
  initial_delay_ms: 0
  grow_delay_ms: 10
surface:
  type: screen
  settings:
    color: "#8b5cf6"
contact:
  messages:
    name_required: "Nama tidak boleh kosong"
page:
  sections:
    - {id: home, top: 0, height: 600}
    - {id: about, top: 600, height: 800}
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"Hi", "Go"}, cfg.Typing.Phrases)
	assert.Equal(t, 10*time.Millisecond, cfg.Typing.GrowDelay())
	assert.Equal(t, 100*time.Millisecond, cfg.Typing.ShrinkDelay(), "unset fields get defaults")
	assert.Equal(t, "screen", cfg.Surface.Type)
	assert.Equal(t, "#8b5cf6", cfg.Surface.Settings["color"])
	assert.Equal(t, "Nama tidak boleh kosong", cfg.GetMessage("name_required"))
	assert.Equal(t, "Email must not be empty", cfg.GetMessage("email_required"))
	require.Len(t, cfg.Page.Sections, 2)
	assert.Equal(t, "about", cfg.Page.Sections[1].ID)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		errMsg string
	}{
		{
			name:   "malformed yaml",
			data:   "typing: [",
			errMsg: "failed to parse config file",
		},
		{
			name:   "empty phrase",
			data:   `typing: {phrases: ["Hi", ""]}`,
			errMsg: "Phrases",
		},
		{
			name:   "unknown surface",
			data:   `surface: {type: hologram}`,
			errMsg: "Type",
		},
		{
			name:   "unknown log level",
			data:   `log: {level: loud}`,
			errMsg: "Level",
		},
		{
			name:   "negative delay",
			data:   `typing: {grow_delay_ms: -5}`,
			errMsg: "GrowDelayMs",
		},
		{
			name:   "section without id",
			data:   `page: {sections: [{top: 0, height: 10}]}`,
			errMsg: "ID",
		},
		{
			name:   "duplicate section",
			data:   `page: {sections: [{id: a, top: 0, height: 10}, {id: a, top: 10, height: 10}]}`,
			errMsg: "duplicate section id",
		},
		{
			name:   "sections out of order",
			data:   `page: {sections: [{id: a, top: 100, height: 10}, {id: b, top: 10, height: 10}]}`,
			errMsg: "above the previous section",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParse_EnvOverride(t *testing.T) {
	t.Setenv("TYPEWRITER_PHRASES", "Gopher | Builder||")
	t.Setenv("TYPEWRITER_SURFACE", "screen")
	t.Setenv("TYPEWRITER_LOG_LEVEL", "debug")

	cfg, err := Parse([]byte(`typing: {phrases: ["ignored"]}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"Gopher", "Builder"}, cfg.Typing.Phrases)
	assert.Equal(t, "screen", cfg.Surface.Type)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typewriter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`typing: {phrases: ["One"]}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"One"}, cfg.Typing.Phrases)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestConfig_GetMessage(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	tests := []struct {
		code     string
		expected string
	}{
		{code: "name_required", expected: "Name must not be empty"},
		{code: "name_too_short", expected: "Name must be at least 3 characters"},
		{code: "email_required", expected: "Email must not be empty"},
		{code: "email_invalid", expected: "Email format is invalid"},
		{code: "message_required", expected: "Message must not be empty"},
		{code: "message_too_short", expected: "Message must be at least 10 characters"},
		{code: "success", expected: "Message sent! Thank you for getting in touch."},
		{code: "no_such_code", expected: "Invalid input"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, cfg.GetMessage(tt.code))
		})
	}
}
