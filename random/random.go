package random

import (
	"math/rand"

	k8srand "k8s.io/apimachinery/pkg/util/rand"
)

// Source provides the random numbers used to build and spin tables
type Source interface {
	// Intn returns a non-negative pseudo-random number in [0,n). It panics if n <= 0.
	Intn(n int) int
}

var _ Source = &rand.Rand{}

type globalSource struct{}

func (globalSource) Intn(n int) int {
	return k8srand.Intn(n)
}

// Global returns a Source backed by the process-wide, time-seeded generator
func Global() Source {
	return globalSource{}
}

// New returns a deterministic Source for the given seed
func New(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Coin returns true with probability 1/2
func Coin(s Source) bool {
	return s.Intn(2) == 1
}
