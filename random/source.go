package random

import (
	"golang.org/x/exp/rand"
)

// rawSource adapts the core stream to gonum's rand.Source without
// locking. Only for use while r.mu is already held.
type rawSource struct {
	r *Random
}

func (s rawSource) Uint64() uint64 {
	return uint64(s.r.next32())<<32 | uint64(s.r.next32())
}

func (s rawSource) Seed(seed uint64) {
	s.r.seed(seed)
}

type lockedSource struct {
	r *Random
}

func (s lockedSource) Uint64() uint64 {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()
	return uint64(s.r.next32())<<32 | uint64(s.r.next32())
}

func (s lockedSource) Seed(seed uint64) {
	s.r.Seed(seed)
}

// Source exposes the generator as a rand.Source so it can drive gonum
// distributions directly. Each Uint64 consumes two core draws under the
// instance lock.
func (r *Random) Source() rand.Source {
	return lockedSource{r}
}
