package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gophjournal/internal/flagx"
)

// parseFlags populates cfg from command-line flags. Only the flags listed
// here are looked at (see flagx.FilterArgs); parse errors panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-e", "-n", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the journal database")
	fs.StringVar(&cfg.ExportDir, "e", cfg.ExportDir, "directory for export archives")
	fs.StringVar(&cfg.AuthorName, "n", cfg.AuthorName, "author name for new entries")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	timeout := fs.Int("t", int(cfg.PersistTimeout.Seconds()), "persistence timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.PersistTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
