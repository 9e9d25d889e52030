package content

import (
	"sync"

	"github.com/sandevgo/reachout/internal/core"
)

// Rotation cycles through result sets so consecutive generations reference
// different items. A single counter is shared by every result set.
type Rotation struct {
	mu      sync.Mutex
	counter int
}

func NewRotation() *Rotation {
	return &Rotation{}
}

// Select returns the item at counter mod len and advances the counter. An empty
// set selects nothing and leaves the counter as is.
func (r *Rotation) Select(rs *core.ResultSet) (core.SourceItem, bool) {
	if rs.Empty() {
		return core.SourceItem{}, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item := rs.Items[r.counter%len(rs.Items)]
	r.counter++
	return item, true
}

func (r *Rotation) Value() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.counter
}

func (r *Rotation) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.counter = 0
}
