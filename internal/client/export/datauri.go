package export

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var ErrMalformedDataURI = errors.New("malformed data URI")

// DataURI is a decoded data: URI.
type DataURI struct {
	MIME string
	Data []byte
}

// ParseDataURI decodes "data:[<mime>][;params][;base64],<payload>".
func ParseDataURI(s string) (DataURI, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return DataURI{}, fmt.Errorf("%w: missing data: scheme", ErrMalformedDataURI)
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return DataURI{}, fmt.Errorf("%w: missing comma", ErrMalformedDataURI)
	}

	params := strings.Split(meta, ";")
	mime := strings.ToLower(strings.TrimSpace(params[0]))
	isBase64 := false
	for _, p := range params[1:] {
		if strings.EqualFold(strings.TrimSpace(p), "base64") {
			isBase64 = true
		}
	}

	var data []byte
	if isBase64 {
		d, err := decodeBase64(payload)
		if err != nil {
			return DataURI{}, fmt.Errorf("%w: %w", ErrMalformedDataURI, err)
		}
		data = d
	} else {
		d, err := url.PathUnescape(payload)
		if err != nil {
			return DataURI{}, fmt.Errorf("%w: %w", ErrMalformedDataURI, err)
		}
		data = []byte(d)
	}
	if len(data) == 0 {
		return DataURI{}, fmt.Errorf("%w: empty payload", ErrMalformedDataURI)
	}

	return DataURI{MIME: mime, Data: data}, nil
}

func decodeBase64(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if d, err := base64.StdEncoding.DecodeString(s); err == nil {
		return d, nil
	}
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
}

// Extension derives a file extension from the MIME subtype: "image/jpeg"
// gives "jpeg", "image/svg+xml" gives "svg". Without a usable subtype it
// falls back to "png".
func Extension(mime string) string {
	_, sub, ok := strings.Cut(mime, "/")
	if !ok {
		return "png"
	}
	sub, _, _ = strings.Cut(sub, "+")
	sub = strings.TrimSpace(sub)
	if sub == "" || strings.ContainsAny(sub, `/\.`) {
		return "png"
	}
	return sub
}
