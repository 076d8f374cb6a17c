package primes

import "math/bits"

// witnesses is a fixed Miller-Rabin base set that decides primality
// deterministically for every 64 bit value. The same set doubles as a
// small-divisor screen.
var witnesses = []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// mulmod computes (a * b) mod m in 128 bit intermediate space.
// Callers must pass a, b < m.
func mulmod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// powmod computes (base ^ exp) mod m by square and multiply.
func powmod(base, exp, m uint64) uint64 {
	result := uint64(1)
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			result = mulmod(result, base, m)
		}
		base = mulmod(base, base, m)
		exp >>= 1
	}
	return result
}

// IsPrime reports whether n is prime.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	for _, p := range witnesses {
		if n == p {
			return true
		}
		if n%p == 0 {
			return false
		}
	}

	// write n-1 as d * 2^r with d odd
	d := n - 1
	r := 0
	for d&1 == 0 {
		d >>= 1
		r++
	}

witness:
	for _, a := range witnesses {
		x := powmod(a, d, n)
		if x == 1 || x == n-1 {
			continue
		}
		for i := 0; i < r-1; i++ {
			x = mulmod(x, x, n)
			if x == n-1 {
				continue witness
			}
		}
		return false
	}
	return true
}

// Next returns the smallest prime greater than or equal to n.
func Next(n uint64) uint64 {
	if n <= 2 {
		return 2
	}
	if n&1 == 0 {
		n++
	}
	for !IsPrime(n) {
		n += 2
	}
	return n
}
