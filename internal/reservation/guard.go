package reservation

import (
	"errors"
	"strings"
	"sync"
)

var ErrSubmissionInFlight = errors.New("a submission for this visitor is already being sent")

// Guard allows one in-flight dispatch per submitter.
type Guard struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewGuard() *Guard {
	return &Guard{inFlight: make(map[string]struct{})}
}

// Acquire claims key and returns the function that releases it.
// It fails with ErrSubmissionInFlight when key is already claimed.
func (g *Guard) Acquire(key string) (func(), error) {
	key = normalizeKey(key)

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.inFlight[key]; busy {
		return nil, ErrSubmissionInFlight
	}
	g.inFlight[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.inFlight, key)
			g.mu.Unlock()
		})
	}, nil
}

// InFlight reports whether key is currently claimed.
func (g *Guard) InFlight(key string) bool {
	key = normalizeKey(key)

	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.inFlight[key]
	return busy
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
