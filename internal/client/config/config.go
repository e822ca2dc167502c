package config

import "time"

// Config holds runtime settings for the journal CLI.
type Config struct {
	DatabasePath    string
	ExportDir       string
	AuthorName      string
	AuthorAvatar    string
	TimestampLayout string
	PersistTimeout  time.Duration
	LogLevel        string
	LogFormat       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "journal.db"
	c.ExportDir = "exports"
	c.AuthorName = "Me"
	c.AuthorAvatar = "M"
	c.TimestampLayout = "15:04"
	c.PersistTimeout = 5 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config from defaults, the environment, an optional
// JSON file and command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
