package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophjournal/internal/client/journal"
	"github.com/dmitrijs2005/gophjournal/internal/client/models"
)

var errUsage = errors.New("wrong arguments, type 'help' for usage")

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// splitID parses a leading id and returns the remaining text.
func splitID(args string) (int64, string, error) {
	head, rest, _ := strings.Cut(args, " ")
	if head == "" {
		return 0, "", errUsage
	}
	id, err := parseID(head)
	if err != nil {
		return 0, "", err
	}
	return id, strings.TrimSpace(rest), nil
}

func (a *App) list() error {
	entries := a.journal.Snapshot()
	if len(entries) == 0 {
		a.printf("The journal is empty.\n")
		return nil
	}
	for _, e := range entries {
		a.printf("[%d] %s %s%s\n", e.Id, e.Timestamp, e.User.Name, imageMark(e.Image))
		a.printBody("    ", e.Text)
		for _, r := range e.Replies {
			a.printf("    ↳ [%d] %s %s%s\n", r.Id, r.Timestamp, r.User.Name, imageMark(r.Image))
			a.printBody("      ", r.Text)
		}
	}
	return nil
}

func imageMark(image string) string {
	if image == "" {
		return ""
	}
	return " [image]"
}

func (a *App) printBody(indent, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	for _, line := range strings.Split(text, "\n") {
		a.printf("%s%s\n", indent, line)
	}
}

// readText returns inline text, or prompts for a multi-line body when none
// was given on the command line.
func (a *App) readText(inline, prompt string) (string, error) {
	if inline != "" {
		return inline, nil
	}
	return GetMultiline(a.reader, prompt, a.out)
}

func (a *App) post(args string) error {
	text, err := a.readText(args, "Write your entry")
	if err != nil {
		return err
	}
	if a.journal.Append(text, "") {
		a.printf("Posted.\n")
	}
	return nil
}

func (a *App) reply(args string) error {
	entryID, text, err := splitID(args)
	if err != nil {
		return err
	}
	if text, err = a.readText(text, "Write your reply"); err != nil {
		return err
	}
	if a.journal.AppendReply(entryID, text, "") {
		a.printf("Replied.\n")
	}
	return nil
}

func (a *App) edit(args string) error {
	fields := strings.Fields(args)
	if len(fields) == 0 || len(fields) > 2 {
		return errUsage
	}
	entryID, err := parseID(fields[0])
	if err != nil {
		return err
	}
	replyID := journal.NoReply
	if len(fields) == 2 {
		if replyID, err = parseID(fields[1]); err != nil {
			return err
		}
	}

	current, ok := findText(a.journal.Snapshot(), entryID, replyID)
	if !ok {
		a.printf("Not found.\n")
		return nil
	}
	a.printBody("  | ", current)

	text, err := GetMultiline(a.reader, "New text", a.out)
	if err != nil {
		return err
	}
	if a.journal.EditText(entryID, replyID, text) {
		a.printf("Updated.\n")
	}
	return nil
}

func findText(entries []models.Entry, entryID, replyID int64) (string, bool) {
	e, ok := journal.Log(entries).Find(entryID)
	if !ok {
		return "", false
	}
	if replyID == journal.NoReply {
		return e.Text, true
	}
	for _, r := range e.Replies {
		if r.Id == replyID {
			return r.Text, true
		}
	}
	return "", false
}

func (a *App) delete(args string) error {
	fields := strings.Fields(args)
	if len(fields) != 1 {
		return errUsage
	}
	entryID, err := parseID(fields[0])
	if err != nil {
		return err
	}
	if a.journal.DeleteEntry(entryID) {
		a.printf("Deleted.\n")
	}
	return nil
}

func (a *App) deleteReply(args string) error {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return errUsage
	}
	entryID, err := parseID(fields[0])
	if err != nil {
		return err
	}
	replyID, err := parseID(fields[1])
	if err != nil {
		return err
	}
	if a.journal.DeleteReply(entryID, replyID) {
		a.printf("Deleted.\n")
	}
	return nil
}

func (a *App) clear() error {
	ok, err := Confirm(a.reader, "Delete every entry and reply?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		a.printf("Cancelled.\n")
		return nil
	}
	if a.journal.ClearAll() {
		a.printf("Journal cleared.\n")
	}
	return nil
}
