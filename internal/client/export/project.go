package export

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophjournal/internal/client/models"
)

// DayLayout formats day keys and day headings.
const DayLayout = "2006-01-02"

type Mode int

const (
	// ModeInline embeds data URIs directly in the Markdown.
	ModeInline Mode = iota
	// ModeArchive extracts images into separate files.
	ModeArchive
)

type Options struct {
	Mode Mode
	// Location decides which calendar day an entry falls on. Defaults to time.Local.
	Location *time.Location
}

// Image is an extracted image file belonging to a Day.
type Image struct {
	Name string
	MIME string
	Data []byte
}

// Day is the export of a single calendar day.
type Day struct {
	Key      string
	Markdown string
	Images   []Image
}

// Bundle is the projected export, days in chronological order.
type Bundle struct {
	Days []Day
}

// DayKey returns the YYYY-MM-DD day an entry id falls on.
func DayKey(id int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(id).In(loc).Format(DayLayout)
}

// Project renders entries into a Bundle.
func Project(entries []models.Entry, opts Options) Bundle {
	var (
		order  []string
		groups = map[string][]models.Entry{}
	)
	for _, e := range entries {
		key := DayKey(e.Id, opts.Location)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], e)
	}
	// Day keys are zero-padded dates, so lexical order is chronological.
	slices.Sort(order)

	b := Bundle{Days: make([]Day, 0, len(order))}
	for _, key := range order {
		b.Days = append(b.Days, renderDay(key, groups[key], opts.Mode))
	}
	return b
}

// Markdown returns the inline-image document of every day, concatenated.
func Markdown(entries []models.Entry, loc *time.Location) string {
	b := Project(entries, Options{Mode: ModeInline, Location: loc})
	docs := make([]string, len(b.Days))
	for i, d := range b.Days {
		docs[i] = d.Markdown
	}
	return strings.Join(docs, "\n")
}

type dayWriter struct {
	sb     strings.Builder
	mode   Mode
	images []Image
}

func renderDay(key string, entries []models.Entry, mode Mode) Day {
	w := &dayWriter{mode: mode}
	w.block("# " + key)

	for _, e := range entries {
		w.block(strings.TrimSpace("## " + e.Timestamp + " " + e.User.Name))
		w.body(e.Text, e.Image)
		for _, r := range e.Replies {
			w.block("### " + r.Timestamp)
			w.body(r.Text, r.Image)
		}
	}

	return Day{Key: key, Markdown: w.sb.String(), Images: w.images}
}

func (w *dayWriter) block(s string) {
	w.sb.WriteString(s)
	w.sb.WriteString("\n\n")
}

func (w *dayWriter) body(text, image string) {
	if strings.TrimSpace(text) != "" {
		w.block(text)
	}
	if ref, ok := w.imageRef(image); ok {
		w.block(fmt.Sprintf("![image](%s)", ref))
	}
}

// imageRef returns what the Markdown image link should point at.
func (w *dayWriter) imageRef(image string) (string, bool) {
	if image == "" {
		return "", false
	}
	if w.mode == ModeInline {
		return image, true
	}

	uri, err := ParseDataURI(image)
	if err != nil {
		return "", false
	}
	name := fmt.Sprintf("image-%d.%s", len(w.images)+1, Extension(uri.MIME))
	w.images = append(w.images, Image{Name: name, MIME: uri.MIME, Data: uri.Data})
	return name, true
}
