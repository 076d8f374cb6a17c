package primes

import "testing"

func TestIsPrime(t *testing.T) {
	primeTests := []struct {
		n    uint64
		want bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{37, true},
		{1763, false}, // 41 * 43, survives the small-divisor screen
		{2147483647, true},
		{2147483649, false}, // 3 * 715827883
		{1000000007, true},
		{4294967291, true},
		{2305843009213693951, true},  // 2^61 - 1
		{2305843009213693953, false}, // 2^61 + 1
	}

	for _, tt := range primeTests {
		if got := IsPrime(tt.n); got != tt.want {
			t.Errorf("IsPrime(%d): want: %v, got: %v", tt.n, tt.want, got)
		}
	}
}

func TestNext(t *testing.T) {
	nextTests := []struct {
		n    uint64
		want uint64
	}{
		{0, 2},
		{2, 2},
		{3, 3},
		{4, 5},
		{9, 11},
		{14, 17},
		{31, 31},
		{2147483646, 2147483647},
	}

	for _, tt := range nextTests {
		if got := Next(tt.n); got != tt.want {
			t.Errorf("Next(%d): want: %d, got: %d", tt.n, tt.want, got)
		}
	}
}

func TestNextReturnsPrime(t *testing.T) {
	for n := uint64(0); n < 2000; n++ {
		p := Next(n)
		if p < n {
			t.Fatalf("Next(%d) = %d is below its argument", n, p)
		}
		if !IsPrime(p) {
			t.Fatalf("Next(%d) = %d is not prime", n, p)
		}
		for m := n; m < p; m++ {
			if IsPrime(m) {
				t.Fatalf("Next(%d) = %d skipped the smaller prime %d", n, p, m)
			}
		}
	}
}

func BenchmarkIsPrime(b *testing.B) {
	for i := 0; i < b.N; i++ {
		IsPrime(2305843009213693951)
	}
}
