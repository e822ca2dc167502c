package cli

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
)

const maxImageBytes = 8 << 20

// loadImage reads an image file and encodes it as a base64 data URI.
func loadImage(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.Size() > maxImageBytes {
		return "", fmt.Errorf("%s is %s, the limit is %s", path,
			humanize.Bytes(uint64(info.Size())), humanize.Bytes(maxImageBytes))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%s does not look like an image (%s)", path, mime)
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func (a *App) image(args string) error {
	path, caption, _ := strings.Cut(args, " ")
	if path == "" {
		return errUsage
	}
	uri, err := loadImage(path)
	if err != nil {
		return err
	}
	if a.journal.Append(strings.TrimSpace(caption), uri) {
		a.printf("Posted image.\n")
	}
	return nil
}
