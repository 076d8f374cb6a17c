package util

import (
	"strings"
	"testing"
)

func TestReadKeys(t *testing.T) {
	in := "10\n25\n\n35\n45\n"
	var got []uint64
	for k := range ReadKeys(4, strings.NewReader(in)) {
		got = append(got, k)
	}
	want := []uint64{10, 25, 35, 45}
	if len(got) != len(want) {
		t.Fatalf("read %d keys, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestReadKeysStopsAtN(t *testing.T) {
	in := "1\n2\n3\n4\n5\n"
	var n int
	for range ReadKeys(3, strings.NewReader(in)) {
		n++
	}
	if n != 3 {
		t.Fatalf("read %d keys, want 3", n)
	}
}

func TestReadKeysBadLine(t *testing.T) {
	in := "1\n2\nnot-a-key\n4\n"
	var got []uint64
	for k := range ReadKeys(4, strings.NewReader(in)) {
		got = append(got, k)
	}
	if len(got) != 2 {
		t.Fatalf("read %d keys before the bad line, want 2", len(got))
	}
}

func TestReadKeysNoTrailingNewline(t *testing.T) {
	var got []uint64
	for k := range ReadKeys(2, strings.NewReader("7\n9")) {
		got = append(got, k)
	}
	if len(got) != 2 || got[1] != 9 {
		t.Fatalf("got %v, want [7 9]", got)
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"", 0},
		{"1\n", 1},
		{"1\n2\n3\n", 3},
		{"1\n\n2\n", 2},
		{"1\n2", 2},
	}
	for _, tt := range tests {
		got, err := Count(strings.NewReader(tt.in))
		if err != nil {
			t.Fatalf("Count(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Count(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
