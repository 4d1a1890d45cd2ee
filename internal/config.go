package internal

import (
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config represents the application configuration.
type Config struct {
	App    ApplicationConfig `yaml:"app"`
	Posts  PostsConfig       `yaml:"posts"`
	Digest DigestConfig      `yaml:"digest"`
	Build  BuildConfig       `yaml:"build"`
	Watch  WatchConfig       `yaml:"watch"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Posts.Validate(); err != nil {
		return err
	}
	if err := c.Digest.Validate(); err != nil {
		return err
	}
	if err := c.Build.Validate(); err != nil {
		return err
	}
	return c.Watch.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel  slog.Level `yaml:"log_level"`
	LogFormat string     `yaml:"log_format"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	if c.LogFormat == "" {
		c.LogFormat = LogFormatText
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.LogFormat, validation.In(LogFormatText, LogFormatJSON)),
	)
}

// PostsConfig points at the directory of Markdown posts.
type PostsConfig struct {
	Dir string `yaml:"dir"`
}

// Validate validates the posts configuration.
func (c *PostsConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Dir, validation.Required),
	)
}

// DigestConfig controls which posts a digest covers and how it is signed.
type DigestConfig struct {
	// Days is the lookback window ending at the time of the run.
	Days       int    `yaml:"days"`
	LinkPrefix string `yaml:"link_prefix"`
	Signature  string `yaml:"signature"`
}

// Validate validates the digest configuration.
func (c *DigestConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Days, validation.Required, validation.Min(1)),
		validation.Field(&c.Signature, validation.Required),
	)
}

// BuildConfig describes the site builder command.
type BuildConfig struct {
	Command []string `yaml:"command"`
	Dir     string   `yaml:"dir"`
}

// Validate validates the build configuration.
func (c *BuildConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Command, validation.Required, validation.Each(validation.Required)),
	)
}

// WatchConfig holds settings of the watch command.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// Validate validates the watch configuration.
func (c *WatchConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Debounce, validation.Required, validation.Min(10*time.Millisecond)),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel:  slog.LevelInfo,
			LogFormat: LogFormatText,
		},
		Posts: PostsConfig{
			Dir: "posts",
		},
		Digest: DigestConfig{
			Days:       7,
			LinkPrefix: "/blog/",
			Signature:  "Thunderclaw ⚡",
		},
		Build: BuildConfig{
			Command: []string{"python3", "build.py"},
			Dir:     ".",
		},
		Watch: WatchConfig{
			Debounce: 500 * time.Millisecond,
		},
	}
}
