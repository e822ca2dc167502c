// Package config loads runtime configuration for the journal CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: a .env file in the working directory (if present) is
//     loaded first, then JOURNAL_* variables are read (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path to the SQLite database file
//	-e string   directory that receives export archives
//	-n string   author name used for new entries
//	-t int      persistence timeout (seconds)
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
// Durations accept strings like "5s" or integer nanoseconds:
//
//	{
//	  "database_path": "journal.db",
//	  "export_dir": "exports",
//	  "author_name": "Me",
//	  "author_avatar": "M",
//	  "timestamp_layout": "15:04",
//	  "persist_timeout": "5s",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
//
// Empty JSON fields leave the previous value in place.
package config
