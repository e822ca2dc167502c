package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/gophjournal/internal/client/config"
	"github.com/dmitrijs2005/gophjournal/internal/client/models"
	"github.com/dmitrijs2005/gophjournal/internal/client/services"
	"github.com/dmitrijs2005/gophjournal/internal/client/storage"
	"github.com/dmitrijs2005/gophjournal/internal/common"
	"github.com/dmitrijs2005/gophjournal/internal/logging"
)

// Journal is the part of services.JournalService the shell drives.
type Journal interface {
	Initialize(ctx context.Context) ([]models.Entry, error)
	Append(text, image string) bool
	AppendReply(entryID int64, text, image string) bool
	EditText(entryID, replyID int64, text string) bool
	DeleteEntry(entryID int64) bool
	DeleteReply(entryID, replyID int64) bool
	ClearAll() bool
	Snapshot() []models.Entry
	Status() services.Status
	Subscribe(fn func(services.Change)) func()
	ExportMarkdown() string
	WriteArchive(w io.Writer) error
	StorageUsageEstimate(ctx context.Context) storage.Usage
}

type App struct {
	config  *config.Config
	journal Journal
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer
	now     func() time.Time
}

func NewApp(c *config.Config, j Journal, logger logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		config:  c,
		journal: j,
		logger:  logger,
		reader:  bufio.NewReader(in),
		out:     out,
		now:     time.Now,
	}
}

// Run initializes the journal and serves commands until exit, EOF or ctx
// cancellation.
func (a *App) Run(ctx context.Context) error {
	cancel := a.journal.Subscribe(a.reportRejection)
	defer cancel()

	entries, err := a.journal.Initialize(ctx)
	switch {
	case errors.Is(err, common.ErrStoreUnavailable):
		a.printf("Warning: the journal could not be loaded (%v).\n", err)
		a.printf("You can keep writing, but nothing will be saved in this session.\n")
	case err != nil:
		return err
	}

	a.printf("Journal (%d entries). Type 'help' for commands.\n", len(entries))
	return a.repl(ctx)
}

// reportRejection prints why an operation was refused.
func (a *App) reportRejection(c services.Change) {
	if c.Err == nil {
		return
	}
	switch {
	case errors.Is(c.Err, common.ErrEmptyContent):
		a.printf("Nothing to save: text is empty and no image is attached.\n")
	case errors.Is(c.Err, common.ErrNotFound):
		a.printf("Not found: %v\n", c.Err)
	default:
		a.printf("Rejected %s: %v\n", c.Op, c.Err)
	}
}

func (a *App) prompt() string {
	if a.journal.Status().Degraded {
		return "journal (unsaved)> "
	}
	return "journal> "
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
