package journal

import (
	"sync"
	"time"
)

// IDGenerator hands out creation ids: the current Unix-millisecond time,
// bumped to last+1 when the clock has not advanced (or went backwards).
// Ids therefore stay strictly increasing and still decode to a creation
// time within a few milliseconds of the real one.
type IDGenerator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewIDGenerator(now func() time.Time) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now}
}

func (g *IDGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// Observe makes sure future ids are greater than id. It is called with the
// largest id found in storage after a reload.
func (g *IDGenerator) Observe(id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if id > g.last {
		g.last = id
	}
}
