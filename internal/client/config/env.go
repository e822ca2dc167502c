package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "JOURNAL_"

// parseEnv overlays cfg with JOURNAL_* environment variables. A .env file in
// the working directory is loaded first; variables already set in the
// process environment win over the file. A missing .env is not an error.
//
// Recognised variables: JOURNAL_DATABASE_PATH, JOURNAL_EXPORT_DIR,
// JOURNAL_AUTHOR_NAME, JOURNAL_AUTHOR_AVATAR, JOURNAL_TIMESTAMP_LAYOUT,
// JOURNAL_PERSIST_TIMEOUT (Go duration), JOURNAL_LOG_LEVEL, JOURNAL_LOG_FORMAT.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	setString(&cfg.DatabasePath, "DATABASE_PATH")
	setString(&cfg.ExportDir, "EXPORT_DIR")
	setString(&cfg.AuthorName, "AUTHOR_NAME")
	setString(&cfg.AuthorAvatar, "AUTHOR_AVATAR")
	setString(&cfg.TimestampLayout, "TIMESTAMP_LAYOUT")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.LogFormat, "LOG_FORMAT")

	if v, ok := os.LookupEnv(envPrefix + "PERSIST_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.PersistTimeout = d
	}
}

func setString(dst *string, name string) {
	if v, ok := os.LookupEnv(envPrefix + name); ok && v != "" {
		*dst = v
	}
}
