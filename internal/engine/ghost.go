package engine

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// Source is the randomness behind ghost events. *rand.Rand satisfies it.
type Source interface {
	// IntN returns a random int in [0, n). n must be positive.
	IntN(n int) int
}

// NewSource returns a generator seeded once for the whole session. A zero
// seed is replaced by the current time.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

const (
	calmDrain  = 5
	ghostDrain = 10
)

// GhostChance is the percent chance of a ghost appearing at the given sanity.
func GhostChance(sanity int) int {
	switch {
	case sanity >= 75:
		return 5
	case sanity >= 50:
		return 15
	default:
		return 25
	}
}

// randomEvent runs once per room transition. It is the only place sanity
// drops.
func (e *Engine) randomEvent() {
	chance := GhostChance(e.state.Sanity)
	roll := e.rng.IntN(100) + 1

	e.logger.Debug("ghost roll",
		zap.Int("sanity", e.state.Sanity),
		zap.Int("chance", chance),
		zap.Int("roll", roll),
	)

	if roll > chance {
		e.state.DrainSanity(calmDrain)
		return
	}

	if ghosts := e.content.Ghosts(); len(ghosts) > 0 {
		e.out.ShowLine("")
		e.out.ShowLine(ghosts[e.rng.IntN(len(ghosts))])
		e.out.ShowLine("")
	}
	e.state.DrainSanity(ghostDrain)
}
