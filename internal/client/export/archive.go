package export

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"path"

	"github.com/dmitrijs2005/gophjournal/internal/client/models"
)

// WriteArchive writes b as a zip: one folder per day holding journal.md and
// its images, plus a root journal.json with the raw entries.
func WriteArchive(w io.Writer, b Bundle, entries []models.Entry) error {
	zw := zip.NewWriter(w)

	for _, d := range b.Days {
		if err := writeFile(zw, path.Join(d.Key, "journal.md"), []byte(d.Markdown)); err != nil {
			return err
		}
		for _, img := range d.Images {
			if err := writeFile(zw, path.Join(d.Key, img.Name), img.Data); err != nil {
				return err
			}
		}
	}

	if entries == nil {
		entries = []models.Entry{}
	}
	raw, err := json.MarshalIndent(entries, "", "\t")
	if err != nil {
		return fmt.Errorf("marshal entries: %w", err)
	}
	if err := writeFile(zw, "journal.json", raw); err != nil {
		return err
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}
	return nil
}

func writeFile(zw *zip.Writer, name string, data []byte) error {
	f, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
