package fks

import "fmt"

var (
	// ErrNoCollisionFree reports that the builder exhausted its attempt
	// budget without finding an injective secondary function.
	ErrNoCollisionFree = fmt.Errorf("no collision free hash function found within the attempt budget")

	// ErrInvalidBuckets reports a table sized to zero primary buckets.
	ErrInvalidBuckets = fmt.Errorf("bucket count must be at least 1")

	// ErrInvalidPrime reports a hash family modulus the table cannot
	// use.
	ErrInvalidPrime = fmt.Errorf("modulus must be a prime below 2^63")

	// ErrInvalidAttempts reports a non positive attempt budget.
	ErrInvalidAttempts = fmt.Errorf("attempt budget must be at least 1")
)
