package fks

import (
	"fmt"

	"github.com/SamSunny4/fks/internal/hash"
)

// Counters accumulate over the lifetime of a table, all public.
type Counters struct {
	Elements     int // number of keys currently residing in the table
	Inserts      int // number of times Insert has been called
	Fails        int // number of inserts rejected or rolled back
	Lookups      int // number of times Search has been called
	Hits         int // number of lookups that found their key
	Rebuilds     int // number of secondary table rebuilds
	Draws        int // total secondary parameter draws across rebuilds
	WorstRebuild int // most draws a single rebuild needed
}

// Table is a two level perfect hash table over integer keys. The first
// level routes a key to a bucket, the bucket's second level holds it at
// the one slot its collision free function allows, so Search probes
// exactly one slot.
//
// A Table is not safe for concurrent use.
type Table struct {
	Config
	Counters
	primary   *PrimaryTable
	secondary []*SecondaryTable
	builder   *Builder
}

// New returns a table with n primary buckets and defaults everywhere
// else.
func New(n int) (*Table, error) {
	return NewWithConfig(Config{Buckets: n})
}

// NewWithConfig returns a table shaped by cfg. The primary hash
// parameters are drawn once and stay fixed for the table's lifetime.
func NewWithConfig(cfg Config) (*Table, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	pf, err := hash.NewFamily(cfg.PrimaryPrime, cfg.Rand)
	if err != nil {
		return nil, fmt.Errorf("primary modulus %d: %w", cfg.PrimaryPrime, ErrInvalidPrime)
	}
	sf, err := hash.NewFamily(cfg.SecondaryPrime, cfg.Rand)
	if err != nil {
		return nil, fmt.Errorf("secondary modulus %d: %w", cfg.SecondaryPrime, ErrInvalidPrime)
	}

	return &Table{
		Config:    cfg,
		primary:   newPrimaryTable(pf.Draw(), uint64(cfg.Buckets)),
		secondary: make([]*SecondaryTable, cfg.Buckets),
		builder:   newBuilder(sf, cfg.MaxAttempts),
	}, nil
}

// Insert adds key to the table and rebuilds the key's bucket from
// scratch. On any failure the table is left exactly as it was, the
// previous secondary table keeps serving lookups. Duplicates are not
// filtered, a second copy of a key collides with the first under
// every draw and the insert fails once the budget runs out.
func (t *Table) Insert(key uint64) error {
	t.Inserts++

	b := t.primary.Route(key)
	t.primary.add(b, key)

	next, draws, err := t.builder.Build(t.primary.keys(b))
	t.Rebuilds++
	t.Draws += draws
	if draws > t.WorstRebuild {
		t.WorstRebuild = draws
	}
	if err != nil {
		t.primary.removeLast(b)
		t.Fails++
		t.Logger.V(1).Info("insert rolled back", "key", key, "bucket", b, "draws", draws)
		return fmt.Errorf("bucket %d with %d keys: %w", b, len(t.primary.keys(b))+1, err)
	}

	t.secondary[b] = next
	t.Elements++
	t.Logger.V(2).Info("rebuilt bucket", "bucket", b, "keys", next.Keys(), "draws", draws)
	return nil
}

// Search reports whether key is in the table.
func (t *Table) Search(key uint64) bool {
	t.Lookups++
	if t.contains(key) {
		t.Hits++
		return true
	}
	return false
}

func (t *Table) contains(key uint64) bool {
	return t.secondary[t.primary.Route(key)].Contains(key)
}

// Len returns the number of keys in the table.
func (t *Table) Len() int {
	return t.Elements
}

// LoadFactor returns the ratio of keys to primary buckets.
func (t *Table) LoadFactor() float64 {
	return float64(t.Elements) / float64(t.primary.Len())
}
