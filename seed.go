package pollinations

import (
	"math/rand"
	"strconv"
	"time"
)

// Seeder supplies the seed sent with each generation request so the remote
// API varies its output. Injected so tests can pin the value.
type Seeder interface {
	Seed() string
}

// SeedFunc adapts a plain function to the Seeder interface.
type SeedFunc func() string

func (f SeedFunc) Seed() string { return f() }

// RandomSeeder draws a uniform two digit seed in [10,99].
type RandomSeeder struct {
	rnd *rand.Rand
}

func NewSeeder() *RandomSeeder {
	return &RandomSeeder{rnd: rand.New(rand.NewSource(time.Now().UTC().UnixNano()))}
}

func (s *RandomSeeder) Seed() string {
	return strconv.Itoa(10 + s.rnd.Intn(90))
}
