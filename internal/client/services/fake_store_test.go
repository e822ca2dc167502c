package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophjournal/internal/client/models"
	"github.com/dmitrijs2005/gophjournal/internal/client/storage"
	"github.com/dmitrijs2005/gophjournal/internal/common"
)

// fakeStore is an in-memory Store that records calls. ReplaceAll blocks on
// gate and LoadAll on loadGate while they are set.
type fakeStore struct {
	mu sync.Mutex

	data    []models.Entry
	saves   [][]models.Entry
	clears  int
	loads   int
	opens   int
	usage   storage.Usage
	gate     chan struct{}
	loadGate chan struct{}
	waiting  int
	running  int
	maxRun   int

	OpenErr    error
	LoadErr    error
	ReplaceErr error
	UsageErr   error
}

func newFakeStore(initial ...models.Entry) *fakeStore {
	return &fakeStore{data: initial}
}

func storeErr(op string) error {
	return fmt.Errorf("%w: %s: boom", common.ErrStoreUnavailable, op)
}

func (f *fakeStore) Open(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opens++
	return f.OpenErr
}

func (f *fakeStore) LoadAll(ctx context.Context) ([]models.Entry, error) {
	f.mu.Lock()
	gate := f.loadGate
	f.mu.Unlock()
	f.wait(ctx, gate)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	return append([]models.Entry(nil), f.data...), nil
}

func (f *fakeStore) ReplaceAll(ctx context.Context, entries []models.Entry) error {
	f.mu.Lock()
	gate := f.gate
	f.running++
	if f.running > f.maxRun {
		f.maxRun = f.running
	}
	f.mu.Unlock()

	f.wait(ctx, gate)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.running--
	if f.ReplaceErr != nil {
		return f.ReplaceErr
	}
	cp := make([]models.Entry, len(entries))
	for i, e := range entries {
		cp[i] = e.Clone()
	}
	f.data = cp
	f.saves = append(f.saves, cp)
	return nil
}

func (f *fakeStore) ClearAll(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clears++
	f.data = nil
	return nil
}

func (f *fakeStore) Usage(context.Context) (storage.Usage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.usage, f.UsageErr
}

func (f *fakeStore) wait(ctx context.Context, gate chan struct{}) {
	if gate == nil {
		return
	}
	f.mu.Lock()
	f.waiting++
	f.mu.Unlock()

	select {
	case <-gate:
	case <-ctx.Done():
	}

	f.mu.Lock()
	f.waiting--
	f.mu.Unlock()
}

func (f *fakeStore) setLoadGate(ch chan struct{}) {
	f.mu.Lock()
	f.loadGate = ch
	f.mu.Unlock()
}

// blocked reports how many calls are parked on a gate.
func (f *fakeStore) blocked() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.waiting
}

func (f *fakeStore) loadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loads
}

func (f *fakeStore) openCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.opens
}

func (f *fakeStore) clearCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.clears
}

func (f *fakeStore) maxInFlight() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.maxRun
}

func (f *fakeStore) setGate(ch chan struct{}) {
	f.mu.Lock()
	f.gate = ch
	f.mu.Unlock()
}

func (f *fakeStore) stored() []models.Entry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data
}

func (f *fakeStore) saveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.saves)
}
