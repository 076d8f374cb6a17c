package fks

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/SamSunny4/fks/internal/hash"
)

// SecondaryTable is the second level of one bucket, an injective hash
// of the bucket's k keys into k*k slots. A nil SecondaryTable is an
// empty bucket.
type SecondaryTable struct {
	params hash.Params
	slots  []uint64
	occ    *bitset.BitSet
	keys   int
}

// Contains probes the single slot key x can occupy.
func (s *SecondaryTable) Contains(x uint64) bool {
	if s == nil {
		return false
	}
	slot := s.params.Slot(x, uint64(len(s.slots)))
	return s.occ.Test(uint(slot)) && s.slots[slot] == x
}

// Size returns the number of allocated slots.
func (s *SecondaryTable) Size() int {
	if s == nil {
		return 0
	}
	return len(s.slots)
}

// Keys returns the number of keys placed in the table.
func (s *SecondaryTable) Keys() int {
	if s == nil {
		return 0
	}
	return s.keys
}

// Builder searches for collision free secondary functions within a
// fixed attempt budget.
type Builder struct {
	family hash.Family
	budget int
}

func newBuilder(family hash.Family, budget int) *Builder {
	return &Builder{family: family, budget: budget}
}

// Build places keys into a fresh secondary table of len(keys)^2 slots.
// It reports the number of parameter draws spent. Exceeding the budget
// returns ErrNoCollisionFree, which is certain when keys repeat or are
// congruent modulo the family prime.
func (b *Builder) Build(keys []uint64) (*SecondaryTable, int, error) {
	k := uint64(len(keys))
	switch k {
	case 0:
		return nil, 0, nil
	case 1:
		// one key needs no search, slot 0 under the identity member
		t := &SecondaryTable{
			params: b.family.Identity(),
			slots:  []uint64{keys[0]},
			occ:    bitset.New(1),
			keys:   1,
		}
		t.occ.Set(0)
		return t, 0, nil
	}

	size := k * k
	t := &SecondaryTable{
		slots: make([]uint64, size),
		occ:   bitset.New(uint(size)),
		keys:  int(k),
	}
	for attempt := 1; attempt <= b.budget; attempt++ {
		t.params = b.family.Draw()
		if t.place(keys) {
			return t, attempt, nil
		}
		t.occ.ClearAll()
	}

	return nil, b.budget, ErrNoCollisionFree
}

// place routes every key to its slot, failing on the first collision.
func (t *SecondaryTable) place(keys []uint64) bool {
	size := uint64(len(t.slots))
	for _, x := range keys {
		slot := t.params.Slot(x, size)
		if t.occ.Test(uint(slot)) {
			return false
		}
		t.occ.Set(uint(slot))
		t.slots[slot] = x
	}
	return true
}
