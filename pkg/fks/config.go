package fks

import (
	"math/rand"

	"github.com/go-logr/logr"

	"github.com/SamSunny4/fks/internal/hash"
	"github.com/SamSunny4/fks/internal/primes"
	"github.com/SamSunny4/fks/internal/rng"
)

// DefaultMaxAttempts bounds the per bucket search for a collision free
// secondary function. A bucket of k keys hashed into k*k slots is
// collision free with probability above 1/2 on every draw, so the
// budget runs out only on keys no draw can separate.
const DefaultMaxAttempts = 100

// DefaultPrime is the modulus both hash families default to.
const DefaultPrime = hash.DefaultPrime

// Config tunes a Table. Every zero field selects a default, so
// NewWithConfig(Config{Buckets: n}) is the common call.
type Config struct {
	// Buckets is the primary bucket count. A negative count is
	// promoted to the next prime at or above its magnitude.
	Buckets int

	// MaxAttempts bounds the search for a collision free secondary
	// function during one rebuild. Defaults to DefaultMaxAttempts.
	MaxAttempts int

	// Seed makes runs reproducible. 0 draws a seed from the operating
	// system.
	Seed int64

	// PrimaryPrime and SecondaryPrime are the moduli of the two hash
	// families and default to hash.DefaultPrime. Keys are expected to
	// lie below the primary prime, keys congruent modulo it look
	// identical to the table and cannot share it.
	PrimaryPrime   uint64
	SecondaryPrime uint64

	// Rand overrides Seed with a caller owned source.
	// Not safe for concurrent use with the table.
	Rand *rand.Rand

	// Logger receives rebuild traces at verbosity 2 and rollback
	// notices at verbosity 1. Silent unless set.
	Logger logr.Logger
}

// withDefaults materializes defaults and validates what remains.
func (c Config) withDefaults() (Config, error) {
	if c.Buckets < 0 {
		c.Buckets = int(primes.Next(uint64(-c.Buckets)))
	}
	if c.Buckets == 0 {
		return c, ErrInvalidBuckets
	}
	if c.MaxAttempts < 0 {
		return c, ErrInvalidAttempts
	}
	if c.MaxAttempts == 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.PrimaryPrime == 0 {
		c.PrimaryPrime = hash.DefaultPrime
	}
	if c.SecondaryPrime == 0 {
		c.SecondaryPrime = hash.DefaultPrime
	}
	if c.Rand == nil {
		seed := c.Seed
		if seed == 0 {
			var err error
			if seed, err = rng.RandomSeed(); err != nil {
				return c, err
			}
		}
		c.Seed = seed
		c.Rand = rng.NewSource(seed)
	}
	if c.Logger.GetSink() == nil {
		c.Logger = logr.Discard()
	}

	return c, nil
}
