package keygen

import (
	"fmt"

	"github.com/alecthomas/unsafeslice"
	bloom "github.com/bits-and-blooms/bloom/v3"
)

// FalsePositive is the false positive rate of the membership filter
// backing a Sequence, expressed in terms of 0-1 is 0% - 100%. A false
// positive only costs a skipped counter, never a repeated key.
const FalsePositive = 1e-6

var ErrEmptyUniverse = fmt.Errorf("sequence universe must hold at least one key")

// Sequence yields a deterministic stream of distinct pseudorandom keys
// below a universe bound. The universe should be much larger than the
// number of keys drawn or Next degenerates into scanning for the few
// residues it has not seen yet.
type Sequence struct {
	mix  Mixer
	max  uint64
	ctr  uint64
	neg  uint64
	seen *bloom.BloomFilter
}

// NewSequence builds a sequence over [0, universe) expected to produce
// around capacity keys.
func NewSequence(mix Mixer, universe uint64, capacity uint) (*Sequence, error) {
	if mix == nil {
		return nil, ErrUnknownMixer
	}
	if universe == 0 {
		return nil, ErrEmptyUniverse
	}

	return &Sequence{
		mix:  mix,
		max:  universe,
		neg:  ^uint64(0),
		seen: bloom.NewWithEstimates(capacity, FalsePositive),
	}, nil
}

// Next returns the next key. No key is ever returned twice, by Next or
// by Absent.
func (s *Sequence) Next() uint64 {
	for {
		s.ctr++
		x := s.mix.Mix64(s.ctr) % s.max
		b := keyBytes(x)
		if s.seen.Test(b) {
			continue
		}
		s.seen.Add(b)
		return x
	}
}

// Absent returns a key the sequence never produced, for miss probes.
// Counters walk down from the top of the range so the two streams
// never reuse each other's draws.
func (s *Sequence) Absent() uint64 {
	for {
		x := s.mix.Mix64(s.neg) % s.max
		s.neg--
		b := keyBytes(x)
		if s.seen.Test(b) {
			continue
		}
		s.seen.Add(b)
		return x
	}
}

func keyBytes(x uint64) []byte {
	return unsafeslice.ByteSliceFromUint64Slice([]uint64{x})
}
