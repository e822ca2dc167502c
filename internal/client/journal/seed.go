package journal

import (
	"time"

	"github.com/dmitrijs2005/gophjournal/internal/client/models"
)

// SystemAuthor signs the seeded welcome content.
var SystemAuthor = models.Author{Name: "Journal", Avatar: "J"}

const (
	welcomeText = "Welcome to your journal! Post a thought, attach an image, " +
		"or reply to an entry to start a thread. Everything stays on this device."
	welcomeReplyText = "Replies live under their entry. Try `reply <id> <text>`."
)

// Stamp formats the display timestamp stored with a new entry or reply.
func Stamp(id int64, layout string, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(id).In(loc).Format(layout)
}

// Seed builds the content written to an empty store on first start: one
// welcome entry with one reply.
func Seed(gen *IDGenerator, layout string, loc *time.Location) Log {
	entryID := gen.Next()
	replyID := gen.Next()

	return Log{{
		Id:        entryID,
		User:      SystemAuthor,
		Text:      welcomeText,
		Timestamp: Stamp(entryID, layout, loc),
		Replies: []models.Reply{{
			Id:        replyID,
			User:      SystemAuthor,
			Text:      welcomeReplyText,
			Timestamp: Stamp(replyID, layout, loc),
		}},
	}}
}
