package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"

	"github.com/zeebo/blake3"
)

// NewSource returns a generator over the given seed. Two generators
// built from the same seed produce identical streams.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandomSeed draws a fresh seed from the operating system.
func RandomSeed() (int64, error) {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}

// drbg adapts a blake3 extendable output to rand.Source64, a
// deterministic random bit generator in the style of NIST SP 800-90A.
type drbg struct {
	h *blake3.Hasher
	x *blake3.Digest
}

// NewDRBG returns a generator whose stream is a pure function of the
// seed bytes.
func NewDRBG(seed []byte) *rand.Rand {
	d := &drbg{h: blake3.New()}
	d.reseed(seed)
	return rand.New(d)
}

func (d *drbg) reseed(seed []byte) {
	d.h.Reset()
	d.h.Write(seed)
	d.x = d.h.Digest()
}

func (d *drbg) Uint64() uint64 {
	var buf [8]byte
	d.x.Read(buf[:])
	return binary.LittleEndian.Uint64(buf[:])
}

func (d *drbg) Int63() int64 {
	return int64(d.Uint64() >> 1)
}

func (d *drbg) Seed(seed int64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(seed))
	d.reseed(buf[:])
}
