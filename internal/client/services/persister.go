package services

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophjournal/internal/client/models"
	"github.com/dmitrijs2005/gophjournal/internal/logging"
)

type opKind int

const (
	opReplace opKind = iota
	opClear
)

func (k opKind) String() string {
	if k == opClear {
		return "clear"
	}
	return "replace"
}

type persistOp struct {
	seq     uint64
	kind    opKind
	entries []models.Entry
}

// persister serializes store writes on one goroutine. Only the newest
// pending op is kept; older ones are superseded.
type persister struct {
	store    Store
	logger   logging.Logger
	timeout  time.Duration
	onResult func(seq uint64, err error)

	mu      sync.Mutex
	pending *persistOp
	issued  uint64
	settled uint64
	closed  bool
	changed chan struct{}

	wake chan struct{}
	done chan struct{}
}

func newPersister(store Store, logger logging.Logger, timeout time.Duration, onResult func(uint64, error)) *persister {
	p := &persister{
		store:    store,
		logger:   logger,
		timeout:  timeout,
		onResult: onResult,
		changed:  make(chan struct{}),
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	go p.run()
	return p
}

// enqueue schedules op and reports false once the persister is closed.
func (p *persister) enqueue(kind opKind, entries []models.Entry) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return false
	}
	p.issued++
	if p.pending != nil {
		p.logger.Debug(context.Background(), "pending write superseded",
			"seq", p.pending.seq, "by", p.issued)
	}
	p.pending = &persistOp{seq: p.issued, kind: kind, entries: entries}

	select {
	case p.wake <- struct{}{}:
	default:
	}
	return true
}

func (p *persister) run() {
	defer close(p.done)

	for range p.wake {
		for {
			p.mu.Lock()
			op := p.pending
			p.pending = nil
			p.mu.Unlock()

			if op == nil {
				break
			}
			p.settle(op.seq, p.apply(op))
		}
	}
}

func (p *persister) apply(op *persistOp) error {
	ctx := context.Background()
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	var err error
	switch op.kind {
	case opClear:
		err = p.store.ClearAll(ctx)
	default:
		err = p.store.ReplaceAll(ctx, op.entries)
	}

	if err != nil {
		p.logger.Error(ctx, "persist failed", "seq", op.seq, "op", op.kind.String(), "error", err)
	} else {
		p.logger.Debug(ctx, "persisted", "seq", op.seq, "op", op.kind.String(), "entries", len(op.entries))
	}
	return err
}

func (p *persister) settle(seq uint64, err error) {
	p.mu.Lock()
	if seq > p.settled {
		p.settled = seq
	}
	ch := p.changed
	p.changed = make(chan struct{})
	p.mu.Unlock()

	close(ch)
	if p.onResult != nil {
		p.onResult(seq, err)
	}
}

// flush waits until every op issued before the call has settled.
func (p *persister) flush(ctx context.Context) error {
	p.mu.Lock()
	target := p.issued
	for p.settled < target {
		ch := p.changed
		p.mu.Unlock()

		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}

		p.mu.Lock()
	}
	p.mu.Unlock()
	return nil
}

// close stops accepting ops, lets the worker drain what is pending and
// waits for it to exit.
func (p *persister) close(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.wake)
	}
	p.mu.Unlock()

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
