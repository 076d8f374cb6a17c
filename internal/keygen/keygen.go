package keygen

import (
	"encoding/binary"
	"fmt"

	"github.com/dchest/siphash"
	"github.com/minio/highwayhash"
	"github.com/shivakar/metrohash"
	"github.com/twmb/murmur3"
)

const (
	SaltLength = 32

	SIP = iota
	Murmur3
	Highway
	Metro
)

var (
	ErrUnknownMixer       = fmt.Errorf("cannot create a mixer of unknown mixer type")
	ErrSaltLengthMismatch = fmt.Errorf("provided salt is not %d length", SaltLength)
)

// Mixer scrambles a counter into a pseudorandom 64 bit key.
type Mixer interface {
	Mix64(uint64) uint64
}

// NewMixer creates a mixer of type t keyed with salt.
func NewMixer(t int, salt []byte) (Mixer, error) {
	if len(salt) != SaltLength {
		return nil, ErrSaltLengthMismatch
	}

	switch t {
	case SIP:
		return newSIPMixer(salt), nil
	case Murmur3:
		return murmur64{salt: salt}, nil
	case Highway:
		return highway{key: salt}, nil
	case Metro:
		return metro{salt: salt}, nil
	default:
		return nil, ErrUnknownMixer
	}
}

// SIP implementation of Mixer
type sip64 struct {
	key0, key1 uint64
}

// newSIPMixer keys the SIP round function with the head of the salt.
func newSIPMixer(salt []byte) sip64 {
	var key0 = binary.BigEndian.Uint64(salt[:8])
	var key1 = binary.BigEndian.Uint64(salt[8:16])

	return sip64{key0: key0, key1: key1}
}

func (s sip64) Mix64(x uint64) uint64 {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], x)
	return siphash.Hash(s.key0, s.key1, b[:])
}

// Murmur3 implementation of Mixer
type murmur64 struct {
	salt []byte
}

func (m murmur64) Mix64(x uint64) uint64 {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], x)
	// prepend the salt and then Sum
	return murmur3.Sum64(append(m.salt, b[:]...))
}

// HighwayHash implementation of Mixer
type highway struct {
	key []byte
}

func (h highway) Mix64(x uint64) uint64 {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], x)
	return highwayhash.Sum64(b[:], h.key)
}

// MetroHash implementation of Mixer
type metro struct {
	salt []byte
}

func (m metro) Mix64(x uint64) uint64 {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], x)
	h := metrohash.NewMetroHash64()
	h.Write(m.salt)
	h.Write(b[:])
	return h.Sum64()
}
