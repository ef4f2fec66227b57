// Package config provides configuration loading from YAML files.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Typing  TypingConfig  `yaml:"typing"`
	Surface SurfaceConfig `yaml:"surface"`
	Contact ContactConfig `yaml:"contact"`
	Page    PageConfig    `yaml:"page"`
}

// LogConfig represents logging configuration.
// stdout is usually taken by the line surface, so logs default to stderr.
type LogConfig struct {
	Output string `yaml:"output" default:"stderr"`
	Level  string `yaml:"level" default:"info" validate:"omitempty,oneof=debug info warn warning error"`
}

// TypingConfig represents the typing animation configuration.
type TypingConfig struct {
	Phrases        []string `yaml:"phrases" default:"[\"Web Developer\",\"UI/UX Designer\",\"Frontend Developer\",\"Creative Thinker\"]" validate:"required,min=1,dive,required"`
	InitialDelayMs int      `yaml:"initial_delay_ms" default:"1000" validate:"gte=0,lte=60000"`
	GrowDelayMs    int      `yaml:"grow_delay_ms" default:"150" validate:"gt=0,lte=10000"`
	ShrinkDelayMs  int      `yaml:"shrink_delay_ms" default:"100" validate:"gt=0,lte=10000"`
	FullPauseMs    int      `yaml:"full_pause_ms" default:"2000" validate:"gte=0,lte=60000"`
	EmptyPauseMs   int      `yaml:"empty_pause_ms" default:"500" validate:"gte=0,lte=60000"`
}

// SurfaceConfig selects and configures the display surface.
type SurfaceConfig struct {
	Type     string         `yaml:"type" default:"line" validate:"omitempty,oneof=line screen"`
	Settings map[string]any `yaml:"settings"`
}

// ContactConfig represents contact form configuration.
type ContactConfig struct {
	Messages ContactMessages `yaml:"messages"`
}

// ContactMessages represents user-facing validation messages.
type ContactMessages struct {
	NameRequired    string `yaml:"name_required" default:"Name must not be empty"`
	NameTooShort    string `yaml:"name_too_short" default:"Name must be at least 3 characters"`
	EmailRequired   string `yaml:"email_required" default:"Email must not be empty"`
	EmailInvalid    string `yaml:"email_invalid" default:"Email format is invalid"`
	MessageRequired string `yaml:"message_required" default:"Message must not be empty"`
	MessageTooShort string `yaml:"message_too_short" default:"Message must be at least 10 characters"`
	Success         string `yaml:"success" default:"Message sent! Thank you for getting in touch."`
	DefaultError    string `yaml:"default_error" default:"Invalid input"`
}

// PageConfig represents the page layout used for scroll tracking.
type PageConfig struct {
	NavbarThreshold    int             `yaml:"navbar_threshold" default:"50" validate:"gte=0"`
	ScrollTopThreshold int             `yaml:"scroll_top_threshold" default:"500" validate:"gte=0"`
	SectionOffset      int             `yaml:"section_offset" default:"150" validate:"gte=0"`
	NavbarHeight       int             `yaml:"navbar_height" default:"80" validate:"gte=0"`
	Sections           []SectionConfig `yaml:"sections" validate:"dive"`
}

// SectionConfig represents one page section.
type SectionConfig struct {
	ID     string `yaml:"id" validate:"required"`
	Top    int    `yaml:"top" validate:"gte=0"`
	Height int    `yaml:"height" validate:"gt=0"`
}

// Load loads configuration from a YAML file.
// Environment variables take precedence over file values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}
	return Parse(data)
}

// Parse builds a configuration from YAML bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	// Override with environment variables
	cfg.overrideFromEnv()

	// Set defaults using creasty/defaults
	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() (*Config, error) {
	return Parse(nil)
}

// overrideFromEnv overrides config values with environment variables.
func (c *Config) overrideFromEnv() {
	if v := os.Getenv("TYPEWRITER_PHRASES"); v != "" {
		var phrases []string
		for _, p := range strings.Split(v, "|") {
			if p = strings.TrimSpace(p); p != "" {
				phrases = append(phrases, p)
			}
		}
		c.Typing.Phrases = phrases
	}
	if v := os.Getenv("TYPEWRITER_SURFACE"); v != "" {
		c.Surface.Type = v
	}
	if v := os.Getenv("TYPEWRITER_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}

	if err := c.validateSections(); err != nil {
		return err
	}

	return nil
}

// validateSections checks that section ids are unique and sections are in
// document order.
func (c *Config) validateSections() error {
	seen := make(map[string]bool, len(c.Page.Sections))
	prevTop := -1
	for i, s := range c.Page.Sections {
		if seen[s.ID] {
			return errors.Newf("duplicate section id %q (section index %d)", s.ID, i)
		}
		seen[s.ID] = true

		if s.Top < prevTop {
			return errors.Newf("section %q (top=%d) is above the previous section (top=%d)", s.ID, s.Top, prevTop)
		}
		prevTop = s.Top
	}
	return nil
}

// InitialDelay returns the delay before the first typing step.
func (t TypingConfig) InitialDelay() time.Duration {
	return time.Duration(t.InitialDelayMs) * time.Millisecond
}

// GrowDelay returns the delay after a normal growing step.
func (t TypingConfig) GrowDelay() time.Duration {
	return time.Duration(t.GrowDelayMs) * time.Millisecond
}

// ShrinkDelay returns the delay after a normal shrinking step.
func (t TypingConfig) ShrinkDelay() time.Duration {
	return time.Duration(t.ShrinkDelayMs) * time.Millisecond
}

// FullPause returns the pause after a phrase is fully typed.
func (t TypingConfig) FullPause() time.Duration {
	return time.Duration(t.FullPauseMs) * time.Millisecond
}

// EmptyPause returns the pause after a phrase is fully deleted.
func (t TypingConfig) EmptyPause() time.Duration {
	return time.Duration(t.EmptyPauseMs) * time.Millisecond
}

// GetMessage returns the contact message for the given code.
func (c *Config) GetMessage(code string) string {
	m := c.Contact.Messages
	switch code {
	case "name_required":
		return m.NameRequired
	case "name_too_short":
		return m.NameTooShort
	case "email_required":
		return m.EmailRequired
	case "email_invalid":
		return m.EmailInvalid
	case "message_required":
		return m.MessageRequired
	case "message_too_short":
		return m.MessageTooShort
	case "success":
		return m.Success
	default:
		return m.DefaultError
	}
}
