package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/gophjournal/internal/filex"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

func (a *App) markdown() error {
	a.printf("%s", a.journal.ExportMarkdown())
	return nil
}

func (a *App) archiveName() string {
	return fmt.Sprintf("journal-%s-%s.zip", a.now().Format("2006-01-02"), uuid.NewString())
}

// export writes the archive into the configured export directory.
func (a *App) export() error {
	dir, err := filex.EnsureDir(a.config.ExportDir)
	if err != nil {
		return err
	}
	path := filepath.Join(dir, a.archiveName())

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		return err
	}
	if err := a.journal.WriteArchive(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("write archive: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return err
	}

	a.printf("Exported to %s\n", path)
	return nil
}

func (a *App) usage(ctx context.Context) error {
	u := a.journal.StorageUsageEstimate(ctx)
	if u.QuotaBytes == 0 {
		a.printf("Storage used: %s\n", humanize.Bytes(u.UsedBytes))
		return nil
	}
	pct := float64(u.UsedBytes) / float64(u.QuotaBytes) * 100
	a.printf("Storage used: %s of %s available (%.1f%%)\n",
		humanize.Bytes(u.UsedBytes), humanize.Bytes(u.QuotaBytes), pct)
	return nil
}
