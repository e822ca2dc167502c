package services

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophjournal/internal/client/export"
	"github.com/dmitrijs2005/gophjournal/internal/client/journal"
	"github.com/dmitrijs2005/gophjournal/internal/client/models"
	"github.com/dmitrijs2005/gophjournal/internal/client/storage"
	"github.com/dmitrijs2005/gophjournal/internal/common"
	"github.com/dmitrijs2005/gophjournal/internal/logging"
)

// Store is the durable store adapter used by JournalService.
// storage.Store implements it.
type Store interface {
	Open(ctx context.Context) error
	LoadAll(ctx context.Context) ([]models.Entry, error)
	ReplaceAll(ctx context.Context, entries []models.Entry) error
	ClearAll(ctx context.Context) error
	Usage(ctx context.Context) (storage.Usage, error)
}

type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Change is delivered to subscribers after every mutation attempt.
type Change struct {
	Op      string
	Version uint64
	// Entries is the log after the operation. Subscribers own this copy.
	Entries []models.Entry
	// Err is nil for accepted operations.
	Err error
}

type Status struct {
	State    State
	Degraded bool
	Version  uint64
	// LastError is the outcome of the most recent store call, nil on success.
	LastError error
}

type Options struct {
	Author          models.Author
	TimestampLayout string
	Location        *time.Location
	// PersistTimeout bounds each background store call; zero means no limit.
	PersistTimeout time.Duration
	Now            func() time.Time
}

func (o *Options) setDefaults() {
	if o.Author.Name == "" {
		o.Author = models.Author{Name: "Me", Avatar: "M"}
	}
	if o.TimestampLayout == "" {
		o.TimestampLayout = "15:04"
	}
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

type JournalService struct {
	store     Store
	logger    logging.Logger
	opts      Options
	ids       *journal.IDGenerator
	persister *persister

	initMu sync.Mutex

	mu       sync.Mutex
	state    State
	log      journal.Log
	version  uint64
	degraded bool
	lastErr  error
	subs     map[int]func(Change)
	nextSub  int
}

// NewJournalService wires the service to store and starts its persistence
// worker. Call Close to stop the worker.
func NewJournalService(store Store, logger logging.Logger, opts Options) *JournalService {
	opts.setDefaults()
	s := &JournalService{
		store:  store,
		logger: logger.With("component", "journal"),
		opts:   opts,
		ids:    journal.NewIDGenerator(opts.Now),
		subs:   make(map[int]func(Change)),
	}
	s.persister = newPersister(store, s.logger, opts.PersistTimeout, s.persistResult)
	return s
}

// Initialize loads the journal, seeding an empty store. On an already
// initialized service it returns the current log without touching the store.
func (s *JournalService) Initialize(ctx context.Context) ([]models.Entry, error) {
	s.initMu.Lock()
	defer s.initMu.Unlock()

	s.mu.Lock()
	switch s.state {
	case StateReady:
		snap := s.log.Clone()
		s.mu.Unlock()
		return snap, nil
	case StateClosed:
		s.mu.Unlock()
		return nil, common.ErrClosed
	}
	s.state = StateLoading
	s.mu.Unlock()

	loaded, seeded, err := s.load(ctx)

	s.mu.Lock()
	if s.state == StateClosed {
		s.mu.Unlock()
		s.logger.Warn(ctx, "journal closed while loading", "error", err)
		return nil, common.ErrClosed
	}
	s.log = loaded
	s.state = StateReady
	s.degraded = err != nil
	s.lastErr = err
	s.version++
	s.ids.Observe(loaded.MaxID())
	change := s.changeLocked("initialize", nil)
	snap := s.log.Clone()
	s.mu.Unlock()

	if err != nil {
		s.logger.Error(ctx, "journal running in degraded mode: changes will not be saved", "error", err)
	} else {
		s.logger.Info(ctx, "journal loaded", "entries", len(loaded), "seeded", seeded)
	}
	s.notify(change)

	return snap, err
}

func (s *JournalService) load(ctx context.Context) (journal.Log, bool, error) {
	if err := s.store.Open(ctx); err != nil {
		return s.seed(), true, fmt.Errorf("open store: %w", err)
	}

	stored, err := s.store.LoadAll(ctx)
	if err != nil {
		return s.seed(), true, fmt.Errorf("load entries: %w", err)
	}
	if len(stored) > 0 {
		return journal.Log(stored), false, nil
	}

	seed := s.seed()
	if err := s.store.ReplaceAll(ctx, seed); err != nil {
		return seed, true, fmt.Errorf("persist seed: %w", err)
	}
	return seed, true, nil
}

func (s *JournalService) seed() journal.Log {
	return journal.Seed(s.ids, s.opts.TimestampLayout, s.opts.Location)
}

func (s *JournalService) stamp(id int64) string {
	return journal.Stamp(id, s.opts.TimestampLayout, s.opts.Location)
}

// Append posts a new entry by the configured author.
func (s *JournalService) Append(text, image string) bool {
	return s.mutate("append", func(l journal.Log) (journal.Log, error) {
		id := s.ids.Next()
		return journal.Append(l, models.Entry{
			Id:        id,
			User:      s.opts.Author,
			Text:      text,
			Timestamp: s.stamp(id),
			Image:     image,
		})
	})
}

// AppendReply adds a reply under entryID.
func (s *JournalService) AppendReply(entryID int64, text, image string) bool {
	return s.mutate("append_reply", func(l journal.Log) (journal.Log, error) {
		id := s.ids.Next()
		return journal.AppendReply(l, entryID, models.Reply{
			Id:        id,
			User:      s.opts.Author,
			Text:      text,
			Timestamp: s.stamp(id),
			Image:     image,
		})
	})
}

// EditText replaces the text of an entry, or of one of its replies when
// replyID is not journal.NoReply. Blank text is rejected.
func (s *JournalService) EditText(entryID, replyID int64, text string) bool {
	return s.mutate("edit_text", func(l journal.Log) (journal.Log, error) {
		return journal.EditText(l, entryID, replyID, text)
	})
}

func (s *JournalService) DeleteEntry(entryID int64) bool {
	return s.mutate("delete_entry", func(l journal.Log) (journal.Log, error) {
		return journal.DeleteEntry(l, entryID)
	})
}

func (s *JournalService) DeleteReply(entryID, replyID int64) bool {
	return s.mutate("delete_reply", func(l journal.Log) (journal.Log, error) {
		return journal.DeleteReply(l, entryID, replyID)
	})
}

// ClearAll empties the store and the in-memory log. The journal is not
// re-seeded.
func (s *JournalService) ClearAll() bool {
	return s.apply("clear_all", opClear, func(journal.Log) (journal.Log, error) {
		return nil, nil
	})
}

func (s *JournalService) mutate(op string, fn func(journal.Log) (journal.Log, error)) bool {
	return s.apply(op, opReplace, fn)
}

func (s *JournalService) apply(op string, kind opKind, fn func(journal.Log) (journal.Log, error)) bool {
	s.mu.Lock()
	var err error
	switch s.state {
	case StateReady:
		var next journal.Log
		if next, err = fn(s.log); err != nil {
			break
		}
		// Enqueued under s.mu so the worker sees ops in mutation order.
		if !s.degraded && !s.persister.enqueue(kind, next) {
			s.logger.Error(context.Background(), "persistence stopped, change dropped", "op", op)
			err = common.ErrClosed
			break
		}
		s.log = next
		s.version++
	case StateClosed:
		err = common.ErrClosed
	default:
		err = common.ErrNotReady
	}
	change := s.changeLocked(op, err)
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn(context.Background(), "mutation rejected", "op", op, "error", err)
	}
	s.notify(change)
	return err == nil
}

func (s *JournalService) persistResult(_ uint64, err error) {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
}

// Subscribe registers fn for change notifications. fn runs on the goroutine
// that issued the mutation, after the service lock is released. The
// returned function unsubscribes.
func (s *JournalService) Subscribe(fn func(Change)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *JournalService) changeLocked(op string, err error) Change {
	c := Change{Op: op, Version: s.version, Err: err}
	if len(s.subs) > 0 {
		c.Entries = s.log.Clone()
	}
	return c
}

func (s *JournalService) notify(c Change) {
	s.mu.Lock()
	subs := make([]func(Change), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(c)
	}
}

// Snapshot returns a copy of the current log.
func (s *JournalService) Snapshot() []models.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.Clone()
}

func (s *JournalService) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{State: s.state, Degraded: s.degraded, Version: s.version, LastError: s.lastErr}
}

// ExportMarkdown renders the journal with images embedded as data URIs.
func (s *JournalService) ExportMarkdown() string {
	return export.Markdown(s.Snapshot(), s.opts.Location)
}

// ExportArchive projects the journal with images extracted into files.
func (s *JournalService) ExportArchive() export.Bundle {
	return export.Project(s.Snapshot(), export.Options{Mode: export.ModeArchive, Location: s.opts.Location})
}

// WriteArchive writes the archive export as a zip to w.
func (s *JournalService) WriteArchive(w io.Writer) error {
	entries := s.Snapshot()
	b := export.Project(entries, export.Options{Mode: export.ModeArchive, Location: s.opts.Location})
	return export.WriteArchive(w, b, entries)
}

// StorageUsageEstimate is best effort: failures are logged and reported
// as zero usage.
func (s *JournalService) StorageUsageEstimate(ctx context.Context) storage.Usage {
	u, err := s.store.Usage(ctx)
	if err != nil {
		s.logger.Warn(ctx, "storage usage unavailable", "error", err)
		return storage.Usage{}
	}
	return u
}

// Flush waits until every persistence call issued so far has completed.
func (s *JournalService) Flush(ctx context.Context) error {
	return s.persister.flush(ctx)
}

// Close rejects further mutations, waits for pending writes and stops the
// worker. It does not close the store.
func (s *JournalService) Close(ctx context.Context) error {
	s.mu.Lock()
	s.state = StateClosed
	s.mu.Unlock()

	return s.persister.close(ctx)
}
