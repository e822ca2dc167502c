package export

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophjournal/internal/client/journal"
	"github.com/dmitrijs2005/gophjournal/internal/client/models"
)

const (
	pngURI = "data:image/png;base64,iVBORw0KGgo="
	gifURI = "data:image/gif;base64,R0lGODlh"
)

var me = models.Author{Name: "Me", Avatar: "M"}

func TestProject_TwoDaysScenario(t *testing.T) {
	entries := []models.Entry{
		{Id: 1000000000000, User: me, Text: "hello", Timestamp: "01:46"},
		{Id: 1000086400000, User: me, Text: "world", Timestamp: "01:46"},
	}

	b := Project(entries, Options{Mode: ModeArchive, Location: time.UTC})

	require.Len(t, b.Days, 2)
	assert.Equal(t, "2001-09-09", b.Days[0].Key)
	assert.Equal(t, "2001-09-10", b.Days[1].Key)

	assert.Equal(t, "# 2001-09-09\n\n## 01:46 Me\n\nhello\n\n", b.Days[0].Markdown)
	assert.Equal(t, "# 2001-09-10\n\n## 01:46 Me\n\nworld\n\n", b.Days[1].Markdown)
	for _, d := range b.Days {
		assert.Equal(t, 1, strings.Count(d.Markdown, "\n## "))
	}
}

func TestProject_DaysAreChronological(t *testing.T) {
	day := int64(86400000)
	base := int64(1000000000000)
	entries := []models.Entry{
		{Id: base + day, Text: "b"},
		{Id: base + 60000, Text: "c"},
		{Id: base, Text: "a"},
	}

	b := Project(entries, Options{Location: time.UTC})

	require.Len(t, b.Days, 2)
	assert.Equal(t, "2001-09-09", b.Days[0].Key)
	assert.Equal(t, "2001-09-10", b.Days[1].Key)

	// entries within a day keep log order
	first := b.Days[0].Markdown
	assert.Less(t, strings.Index(first, "c\n"), strings.Index(first, "a\n"))
	assert.NotContains(t, first, "b\n")
	assert.Contains(t, b.Days[1].Markdown, "b\n")
}

func TestProject_GeneratedIDsKeepEncounterOrder(t *testing.T) {
	clock := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)
	gen := journal.NewIDGenerator(func() time.Time { return clock })

	var entries []models.Entry
	var encountered []string
	for i := 0; i < 4; i++ {
		id := gen.Next()
		entries = append(entries, models.Entry{Id: id, User: me, Text: "x"})
		if key := DayKey(id, time.UTC); len(encountered) == 0 || encountered[len(encountered)-1] != key {
			encountered = append(encountered, key)
		}
		clock = clock.Add(12 * time.Hour)
	}

	b := Project(entries, Options{Location: time.UTC})

	keys := make([]string, len(b.Days))
	for i, d := range b.Days {
		keys[i] = d.Key
	}
	assert.Equal(t, encountered, keys)
	assert.Equal(t, []string{"2024-03-01", "2024-03-02", "2024-03-03"}, keys)
}

func TestProject_RepliesAndArchiveImages(t *testing.T) {
	entries := []models.Entry{
		{Id: 1000000000000, User: me, Text: "with pic", Timestamp: "01:46", Image: pngURI,
			Replies: []models.Reply{
				{Id: 1000000000001, User: me, Text: "nice", Timestamp: "01:47"},
				{Id: 1000000000002, User: me, Timestamp: "01:48", Image: gifURI},
			}},
	}

	b := Project(entries, Options{Mode: ModeArchive, Location: time.UTC})
	require.Len(t, b.Days, 1)
	d := b.Days[0]

	want := "# 2001-09-09\n\n" +
		"## 01:46 Me\n\nwith pic\n\n![image](image-1.png)\n\n" +
		"### 01:47\n\nnice\n\n" +
		"### 01:48\n\n![image](image-2.gif)\n\n"
	assert.Equal(t, want, d.Markdown)

	require.Len(t, d.Images, 2)
	assert.Equal(t, "image-1.png", d.Images[0].Name)
	assert.Equal(t, "image/png", d.Images[0].MIME)
	assert.Equal(t, "image-2.gif", d.Images[1].Name)
	assert.Equal(t, []byte("GIF89a"), d.Images[1].Data)
}

func TestProject_ImageNumberingRestartsPerDay(t *testing.T) {
	entries := []models.Entry{
		{Id: 1000000000000, Image: pngURI},
		{Id: 1000086400000, Image: pngURI},
	}
	b := Project(entries, Options{Mode: ModeArchive, Location: time.UTC})

	require.Len(t, b.Days, 2)
	assert.Equal(t, "image-1.png", b.Days[0].Images[0].Name)
	assert.Equal(t, "image-1.png", b.Days[1].Images[0].Name)
}

func TestProject_MalformedImageIsSkipped(t *testing.T) {
	entries := []models.Entry{
		{Id: 1000000000000, User: me, Text: "broken", Timestamp: "01:46", Image: "data:image/png;base64,@@@"},
		{Id: 1000000000001, User: me, Text: "fine", Timestamp: "01:46", Image: pngURI},
	}

	b := Project(entries, Options{Mode: ModeArchive, Location: time.UTC})
	d := b.Days[0]

	assert.Contains(t, d.Markdown, "broken\n")
	assert.Contains(t, d.Markdown, "fine\n")
	assert.Equal(t, 1, strings.Count(d.Markdown, "![image]"))
	require.Len(t, d.Images, 1)
	assert.Equal(t, "image-1.png", d.Images[0].Name)
}

func TestProject_InlineEmbedsDataURI(t *testing.T) {
	entries := []models.Entry{{Id: 1000000000000, User: me, Text: "x", Timestamp: "01:46", Image: pngURI}}

	b := Project(entries, Options{Mode: ModeInline, Location: time.UTC})

	assert.Contains(t, b.Days[0].Markdown, "![image]("+pngURI+")")
	assert.Empty(t, b.Days[0].Images)
}

func TestProject_DoesNotMutateInput(t *testing.T) {
	entries := []models.Entry{
		{Id: 1000000000000, User: me, Text: "x", Image: pngURI,
			Replies: []models.Reply{{Id: 1000000000001, Text: "y"}}},
	}
	before := []models.Entry{entries[0].Clone()}

	_ = Project(entries, Options{Mode: ModeArchive, Location: time.UTC})
	_ = Markdown(entries, time.UTC)

	assert.Empty(t, cmp.Diff(before, entries))
}

func TestProject_Empty(t *testing.T) {
	assert.Empty(t, Project(nil, Options{}).Days)
	assert.Equal(t, "", Markdown(nil, time.UTC))
}

func TestMarkdown_ConcatenatesDays(t *testing.T) {
	entries := []models.Entry{
		{Id: 1000000000000, User: me, Text: "hello", Timestamp: "01:46"},
		{Id: 1000086400000, User: me, Text: "world", Timestamp: "01:46"},
	}

	got := Markdown(entries, time.UTC)

	assert.Equal(t,
		"# 2001-09-09\n\n## 01:46 Me\n\nhello\n\n\n# 2001-09-10\n\n## 01:46 Me\n\nworld\n\n",
		got)
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "2001-09-09", DayKey(1000000000000, time.UTC))
	tokyo := time.FixedZone("JST", 9*3600)
	assert.Equal(t, "2001-09-09", DayKey(1000000000000, tokyo))
	assert.Equal(t, "2001-09-10", DayKey(1000000000000+15*3600*1000, tokyo))
}
