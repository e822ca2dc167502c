package journal

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophjournal/internal/client/models"
	"github.com/dmitrijs2005/gophjournal/internal/common"
)

// NoReply addresses the entry itself in EditText. Real ids are Unix
// milliseconds and therefore never zero.
const NoReply int64 = 0

// Log is an ordered, immutable snapshot of top-level entries.
type Log []models.Entry

// Clone returns a deep copy of the log.
func (l Log) Clone() Log {
	if l == nil {
		return nil
	}
	out := make(Log, len(l))
	for i, e := range l {
		out[i] = e.Clone()
	}
	return out
}

// Find returns the entry with the given id.
func (l Log) Find(entryID int64) (models.Entry, bool) {
	if i := l.index(entryID); i >= 0 {
		return l[i], true
	}
	return models.Entry{}, false
}

// MaxID returns the largest entry or reply id in the log, or 0 if empty.
func (l Log) MaxID() int64 {
	var maxID int64
	for _, e := range l {
		if e.Id > maxID {
			maxID = e.Id
		}
		for _, r := range e.Replies {
			if r.Id > maxID {
				maxID = r.Id
			}
		}
	}
	return maxID
}

func (l Log) index(entryID int64) int {
	for i := range l {
		if l[i].Id == entryID {
			return i
		}
	}
	return -1
}

func replyIndex(e models.Entry, replyID int64) int {
	for i := range e.Replies {
		if e.Replies[i].Id == replyID {
			return i
		}
	}
	return -1
}

// replace returns a copy of l with position i swapped for e.
func (l Log) replace(i int, e models.Entry) Log {
	out := make(Log, len(l))
	copy(out, l)
	out[i] = e
	return out
}

// Append adds entry at the end of the log.
func Append(l Log, entry models.Entry) (Log, error) {
	if !entry.HasContent() {
		return l, common.ErrEmptyContent
	}
	out := make(Log, len(l), len(l)+1)
	copy(out, l)
	return append(out, entry.Clone()), nil
}

// AppendReply adds reply at the end of the addressed entry's replies.
func AppendReply(l Log, entryID int64, reply models.Reply) (Log, error) {
	if !reply.HasContent() {
		return l, common.ErrEmptyContent
	}
	i := l.index(entryID)
	if i < 0 {
		return l, fmt.Errorf("entry %d: %w", entryID, common.ErrNotFound)
	}

	e := l[i]
	replies := make([]models.Reply, len(e.Replies), len(e.Replies)+1)
	copy(replies, e.Replies)
	e.Replies = append(replies, reply)

	return l.replace(i, e), nil
}

// EditText replaces the text of an entry (replyID == NoReply) or of one of
// its replies. Every other field is left as it was.
func EditText(l Log, entryID, replyID int64, text string) (Log, error) {
	if strings.TrimSpace(text) == "" {
		return l, common.ErrEmptyContent
	}
	i := l.index(entryID)
	if i < 0 {
		return l, fmt.Errorf("entry %d: %w", entryID, common.ErrNotFound)
	}

	e := l[i]
	if replyID == NoReply {
		e.Text = text
		return l.replace(i, e), nil
	}

	j := replyIndex(e, replyID)
	if j < 0 {
		return l, fmt.Errorf("reply %d of entry %d: %w", replyID, entryID, common.ErrNotFound)
	}
	replies := make([]models.Reply, len(e.Replies))
	copy(replies, e.Replies)
	replies[j].Text = text
	e.Replies = replies

	return l.replace(i, e), nil
}

// DeleteEntry removes the entry together with all of its replies.
func DeleteEntry(l Log, entryID int64) (Log, error) {
	i := l.index(entryID)
	if i < 0 {
		return l, fmt.Errorf("entry %d: %w", entryID, common.ErrNotFound)
	}
	out := make(Log, 0, len(l)-1)
	out = append(out, l[:i]...)
	return append(out, l[i+1:]...), nil
}

// DeleteReply removes a single reply; siblings keep their relative order.
func DeleteReply(l Log, entryID, replyID int64) (Log, error) {
	i := l.index(entryID)
	if i < 0 {
		return l, fmt.Errorf("entry %d: %w", entryID, common.ErrNotFound)
	}
	e := l[i]
	j := replyIndex(e, replyID)
	if j < 0 {
		return l, fmt.Errorf("reply %d of entry %d: %w", replyID, entryID, common.ErrNotFound)
	}

	replies := make([]models.Reply, 0, len(e.Replies)-1)
	replies = append(replies, e.Replies[:j]...)
	e.Replies = append(replies, e.Replies[j+1:]...)

	return l.replace(i, e), nil
}
