package views

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/plantkeeper/plantkeeper/internal/common"
)

// ParsePlantID parses a route id segment. Anything that is not a positive
// integer is a validation error and fails fast, before any backend call.
func ParsePlantID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid plant id %q", common.ErrValidation, raw)
	}
	return id, nil
}

// SubmitGuard is a single-flight latch for mutating operations. A second
// submission with the same key while one is active is refused with
// common.ErrBusy instead of firing a duplicate backend call.
type SubmitGuard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func NewSubmitGuard() *SubmitGuard {
	return &SubmitGuard{active: make(map[string]struct{})}
}

// Begin claims the key. The caller must End it when the operation finishes.
func (g *SubmitGuard) Begin(key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.active[key]; busy {
		return common.ErrBusy
	}
	g.active[key] = struct{}{}
	return nil
}

func (g *SubmitGuard) End(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.active, key)
}
