package fks

import "github.com/SamSunny4/fks/internal/hash"

// PrimaryTable is the first level of the table. A single universal hash
// function drawn at construction routes every key to one of n buckets.
// The buckets hold the raw keys so the second level can always be
// rebuilt from them.
type PrimaryTable struct {
	params  hash.Params
	buckets [][]uint64
}

func newPrimaryTable(params hash.Params, n uint64) *PrimaryTable {
	return &PrimaryTable{
		params:  params,
		buckets: make([][]uint64, n),
	}
}

// Route returns the bucket index key x falls into.
func (p *PrimaryTable) Route(x uint64) uint64 {
	return p.params.Slot(x, uint64(len(p.buckets)))
}

// Len returns the number of primary buckets.
func (p *PrimaryTable) Len() int {
	return len(p.buckets)
}

func (p *PrimaryTable) add(b, x uint64) {
	p.buckets[b] = append(p.buckets[b], x)
}

// keys returns the live key slice of bucket b, callers must not hold
// onto it across inserts.
func (p *PrimaryTable) keys(b uint64) []uint64 {
	return p.buckets[b]
}

// removeLast undoes the most recent add to bucket b.
func (p *PrimaryTable) removeLast(b uint64) {
	p.buckets[b] = p.buckets[b][:len(p.buckets[b])-1]
}
