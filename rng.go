package megahal

import (
	"math/rand"
	"time"
)

// Rand is the subset of math/rand's API that reply generation needs.
// An Engine holds one in its exported Rand field, which callers can
// replace to make replies reproducible in tests without reaching into
// package internals.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// defaultRand wraps a *rand.Rand seeded from the wall clock, matching
// the original implementation's srand(time(NULL)) at startup.
type defaultRand struct {
	r *rand.Rand
}

// NewRand returns a Rand seeded from the current time.
func NewRand() Rand {
	return &defaultRand{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (d *defaultRand) Intn(n int) int   { return d.r.Intn(n) }
func (d *defaultRand) Float64() float64 { return d.r.Float64() }
