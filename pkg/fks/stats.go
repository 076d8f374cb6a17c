package fks

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/c2h5oh/datasize"
)

// Stats is a point in time summary of a table's shape and the work it
// has done so far.
type Stats struct {
	Counters
	Buckets    int     // primary bucket count
	Occupied   int     // buckets holding at least one key
	MaxBucket  int     // keys in the fullest bucket
	Slots      int     // allocated secondary slots
	Bytes      uint64  // resident payload estimate
	LoadFactor float64 // Elements over Buckets
}

// Stats snapshots the table.
func (t *Table) Stats() Stats {
	s := Stats{Counters: t.Counters, Buckets: t.primary.Len()}
	for _, sec := range t.secondary {
		k := sec.Keys()
		if k > 0 {
			s.Occupied++
		}
		if k > s.MaxBucket {
			s.MaxBucket = k
		}
		s.Slots += sec.Size()
	}
	// slot values, their occupancy bits and the primary key copies
	s.Bytes = 8*uint64(s.Slots) + uint64(s.Slots+7)/8 + 8*uint64(s.Elements)
	s.LoadFactor = float64(s.Elements) / float64(s.Buckets)

	return s
}

// Describe writes a human readable statistics dump to w.
func (t *Table) Describe(w io.Writer) error {
	s := t.Stats()
	_, err := fmt.Fprintf(w,
		"keys:     %d\n"+
			"buckets:  %d, %d occupied, fullest holds %d, load factor %.3f\n"+
			"slots:    %d, about %s resident\n"+
			"rebuilds: %d taking %d draws, worst rebuild %d\n"+
			"inserts:  %d, %d failed\n"+
			"lookups:  %d, %d hits\n",
		s.Elements,
		s.Buckets, s.Occupied, s.MaxBucket, s.LoadFactor,
		s.Slots, datasize.ByteSize(s.Bytes).HumanReadable(),
		s.Rebuilds, s.Draws, s.WorstRebuild,
		s.Inserts, s.Fails,
		s.Lookups, s.Hits)

	return err
}

// Dump writes the full two level layout to w, one line per bucket.
// Meant for small demonstration tables.
func (t *Table) Dump(w io.Writer) error {
	for i, sec := range t.secondary {
		if sec == nil {
			if _, err := fmt.Fprintf(w, "bucket %d: empty\n", i); err != nil {
				return err
			}
			continue
		}

		row := make([]string, len(sec.slots))
		for j := range sec.slots {
			if sec.occ.Test(uint(j)) {
				row[j] = strconv.FormatUint(sec.slots[j], 10)
			} else {
				row[j] = "_"
			}
		}
		if _, err := fmt.Fprintf(w, "bucket %d: %s -> [%s]\n", i, sec.params, strings.Join(row, " ")); err != nil {
			return err
		}
	}

	return nil
}
