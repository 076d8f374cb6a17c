package hash

import (
	"fmt"
	"math/bits"
	"math/rand"

	"github.com/SamSunny4/fks/internal/primes"
)

// DefaultPrime is the modulus both levels use unless configured otherwise,
// the Mersenne prime 2^31 - 1.
const DefaultPrime uint64 = 1<<31 - 1

// maxModulus keeps a*x + b mod p computable with one 128 bit
// multiply-divide and an overflow-free add.
const maxModulus = uint64(1) << 63

var (
	ErrNotPrime = fmt.Errorf("family modulus must be a prime below 2^63")
	ErrNoSource = fmt.Errorf("family needs a random source to draw from")
)

// Params is one member of the family, the (a, b) pair of
// h(x) = (a*x + b) mod p together with its modulus.
type Params struct {
	A uint64
	B uint64
	P uint64
}

// Sum evaluates the hash for key x. Keys at or above the modulus are
// reduced first, so keys congruent mod P collide at every draw.
func (p Params) Sum(x uint64) uint64 {
	hi, lo := bits.Mul64(p.A, x%p.P)
	_, h := bits.Div64(hi, lo, p.P)
	h += p.B
	if h >= p.P {
		h -= p.P
	}
	return h
}

// Slot reduces the hash into a table of size slots.
func (p Params) Slot(x uint64, size uint64) uint64 {
	return p.Sum(x) % size
}

func (p Params) String() string {
	return fmt.Sprintf("(%d*x + %d) mod %d", p.A, p.B, p.P)
}

// Family draws members of the universal family over a fixed prime modulus.
// The random source is injected so that callers control determinism.
type Family struct {
	p   uint64
	rnd *rand.Rand
}

// NewFamily validates the modulus and binds the family to a random source.
func NewFamily(p uint64, rnd *rand.Rand) (Family, error) {
	if p >= maxModulus || !primes.IsPrime(p) {
		return Family{}, ErrNotPrime
	}
	if rnd == nil {
		return Family{}, ErrNoSource
	}
	return Family{p: p, rnd: rnd}, nil
}

// Draw samples fresh parameters, a uniform in [1, p-1] and b uniform
// in [0, p-1].
func (f Family) Draw() Params {
	a := 1 + uint64(f.rnd.Int63n(int64(f.p-1)))
	b := uint64(f.rnd.Int63n(int64(f.p)))
	return Params{A: a, B: b, P: f.p}
}

// Identity returns the a=1, b=0 member for tables where a single slot
// holds the only key.
func (f Family) Identity() Params {
	return Params{A: 1, B: 0, P: f.p}
}

// Prime reports the family modulus.
func (f Family) Prime() uint64 {
	return f.p
}
