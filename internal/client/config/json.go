package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophjournal/internal/flagx"
	"github.com/dmitrijs2005/gophjournal/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	DatabasePath    string          `json:"database_path"`
	ExportDir       string          `json:"export_dir"`
	AuthorName      string          `json:"author_name"`
	AuthorAvatar    string          `json:"author_avatar"`
	TimestampLayout string          `json:"timestamp_layout"`
	PersistTimeout  *timex.Duration `json:"persist_timeout"`
	LogLevel        string          `json:"log_level"`
	LogFormat       string          `json:"log_format"`
}

// parseJson overlays cfg with the JSON file named by -c/-config. Without
// either flag it does nothing. Read and decode errors panic; the caller is
// the process entry point.
func parseJson(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.DatabasePath, jc.DatabasePath)
	overlay(&cfg.ExportDir, jc.ExportDir)
	overlay(&cfg.AuthorName, jc.AuthorName)
	overlay(&cfg.AuthorAvatar, jc.AuthorAvatar)
	overlay(&cfg.TimestampLayout, jc.TimestampLayout)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.LogFormat, jc.LogFormat)
	if jc.PersistTimeout != nil {
		cfg.PersistTimeout = jc.PersistTimeout.Duration
	}
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
