package primitive

import "errors"

// Key is the set of integer kinds the containers accept. Signed and
// unsigned kinds hash identically through their two's-complement bits.
type Key interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// ErrTableOverflow reports that a container cannot grow any further.
// It is used as a panic value; table growth failure is unrecoverable.
var ErrTableOverflow = errors.New("primitive: hash table capacity overflow")

const (
	// minCapacity is the smallest backing array ever allocated.
	minCapacity = 8

	// maxCapacity is the largest power-of-two capacity supported.
	maxCapacity = 1 << 62
)

// mix64 is the splitmix64 finalizer. It avalanches every input bit into
// every output bit, which keeps linear probing healthy for the dense,
// small-stride key spaces graphs produce.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// hashKey maps a key to its home slot in a table of the given mask
// (mask = capacity-1, capacity a power of two).
func hashKey[K Key](k K, mask uint64) uint64 {
	return mix64(uint64(k)) & mask
}

// tableCapacity returns the smallest valid capacity holding n entries
// under the 3/4 load-factor bound.
func tableCapacity(n int) int {
	c := minCapacity
	for c < maxCapacity && n > c/4*3 {
		c <<= 1
	}
	if n > c/4*3 {
		panic(ErrTableOverflow)
	}

	return c
}
