package outreach

import (
	"context"
	"slices"
	"sync"

	"github.com/sandevgo/reachout/internal/core"
	"github.com/sandevgo/reachout/pkg/log"
)

var serviceOrder = []string{
	core.ServiceNewsAPI,
	core.ServiceNewsdata,
	core.ServiceGNews,
	core.ServiceTavily,
	core.ServiceGoogleNews,
	core.ServiceLLM,
}

// Usage counts successful calls per external service. Limits are soft: going
// past one logs a warning and nothing else.
type Usage struct {
	mu     sync.Mutex
	limits map[string]int
	counts map[string]int
}

func NewUsage(limits map[string]int) *Usage {
	return &Usage{
		limits: limits,
		counts: make(map[string]int),
	}
}

func (u *Usage) Track(ctx context.Context, service string) {
	u.mu.Lock()
	u.counts[service]++
	count, limit := u.counts[service], u.limits[service]
	u.mu.Unlock()

	if limit > 0 && count > limit {
		log.FromCtx(ctx).Warn().
			Str("service", service).
			Int("count", count).
			Int("limit", limit).
			Msg("approaching free limit, some features may be limited")
	}
}

// Stats lists every service with a limit or a non-zero count.
func (u *Usage) Stats() []core.UsageStat {
	u.mu.Lock()
	defer u.mu.Unlock()

	seen := make(map[string]bool)
	var names []string
	for _, name := range serviceOrder {
		if u.limits[name] > 0 || u.counts[name] > 0 {
			names = append(names, name)
			seen[name] = true
		}
	}
	var extra []string
	for name := range u.counts {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	slices.Sort(extra)
	names = append(names, extra...)

	stats := make([]core.UsageStat, 0, len(names))
	for _, name := range names {
		stats = append(stats, core.UsageStat{Service: name, Count: u.counts[name], Limit: u.limits[name]})
	}
	return stats
}

func (u *Usage) Reset() {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.counts = make(map[string]int)
}
