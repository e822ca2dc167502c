package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrijs2005/gophjournal/internal/client/models"
	"github.com/dmitrijs2005/gophjournal/internal/client/repositories/entries"
	"github.com/dmitrijs2005/gophjournal/internal/common"
	"github.com/dmitrijs2005/gophjournal/internal/dbx"
	"github.com/dmitrijs2005/gophjournal/internal/logging"
)

var errClosed = errors.New("store closed")

// Usage is a best-effort estimate of storage consumption.
type Usage struct {
	UsedBytes  uint64
	QuotaBytes uint64
}

// Store is the journal's durable store adapter.
type Store struct {
	dsn    string
	logger logging.Logger

	open singleflight.Group
	// repo binds the entries repository to a handle or transaction.
	repo func(dbx.DBTX) entries.Repository

	mu     sync.Mutex
	db     *sql.DB
	closed bool
}

// New prepares a Store for dsn. No I/O happens until the first operation.
func New(dsn string, logger logging.Logger) *Store {
	return &Store{
		dsn:    dsn,
		logger: logger.With("component", "storage"),
		repo: func(db dbx.DBTX) entries.Repository {
			return entries.NewSQLiteRepository(db)
		},
	}
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", common.ErrStoreUnavailable, op, err)
}

func (s *Store) current() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, errClosed
	}
	return s.db, nil
}

// Open establishes the database handle, creating the file and schema when
// absent. Safe for concurrent use; only the first successful call does I/O.
func (s *Store) Open(ctx context.Context) error {
	_, err := s.handle(ctx)
	return err
}

func (s *Store) handle(ctx context.Context) (*sql.DB, error) {
	db, err := s.current()
	if err != nil {
		return nil, unavailable("open", err)
	}
	if db != nil {
		return db, nil
	}

	v, err, _ := s.open.Do("open", func() (any, error) {
		if db, err := s.current(); err != nil || db != nil {
			return db, err
		}

		db, err := InitDatabase(ctx, s.dsn)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			_ = db.Close()
			return nil, errClosed
		}
		s.db = db
		s.logger.Info(ctx, "database opened", "dsn", s.dsn)
		return db, nil
	})
	if err != nil {
		return nil, unavailable("open", err)
	}
	return v.(*sql.DB), nil
}

// LoadAll returns every stored entry in the order it was written.
func (s *Store) LoadAll(ctx context.Context) ([]models.Entry, error) {
	db, err := s.handle(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.repo(db).GetAll(ctx)
	if err != nil {
		return nil, unavailable("load all", err)
	}
	return list, nil
}

// ReplaceAll clears the table and writes every entry in one transaction.
// Either all entries land or the previous content is kept.
func (s *Store) ReplaceAll(ctx context.Context, list []models.Entry) error {
	db, err := s.handle(ctx)
	if err != nil {
		return err
	}

	err = dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if _, err := repo.DeleteAll(ctx); err != nil {
			return err
		}
		for i, e := range list {
			if err := repo.Insert(ctx, i, e); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return unavailable("replace all", err)
	}
	s.logger.Debug(ctx, "entries replaced", "count", len(list))
	return nil
}

// ClearAll removes every entry.
func (s *Store) ClearAll(ctx context.Context) error {
	db, err := s.handle(ctx)
	if err != nil {
		return err
	}
	n, err := s.repo(db).DeleteAll(ctx)
	if err != nil {
		return unavailable("clear all", err)
	}
	s.logger.Debug(ctx, "entries cleared", "count", n)
	return nil
}

// Usage reports the database size and the quota available to it: the
// database size plus the free space of the filesystem holding the file.
// QuotaBytes is zero for in-memory databases and unsupported platforms.
func (s *Store) Usage(ctx context.Context) (Usage, error) {
	db, err := s.handle(ctx)
	if err != nil {
		return Usage{}, err
	}

	var pageCount, pageSize uint64
	if err := db.QueryRowContext(ctx, `PRAGMA page_count`).Scan(&pageCount); err != nil {
		return Usage{}, unavailable("usage", err)
	}
	if err := db.QueryRowContext(ctx, `PRAGMA page_size`).Scan(&pageSize); err != nil {
		return Usage{}, unavailable("usage", err)
	}
	u := Usage{UsedBytes: pageCount * pageSize}

	if isFilePath(s.dsn) {
		free, err := freeBytes(filepath.Dir(s.dsn))
		if err != nil {
			s.logger.Warn(ctx, "free space unavailable", "error", err)
		} else if free > 0 {
			u.QuotaBytes = u.UsedBytes + free
		}
	}
	return u, nil
}

// Close releases the handle. The store cannot be reopened afterwards.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
