package prng

import (
	"crypto/rc4"
	"strconv"
)

const (
	arc4Width        = 256
	arc4Chunks       = 6
	arc4StartDenom   = 1 << 48
	arc4Significance = 1 << 52
	arc4Overflow     = 1 << 53
)

// ARC4 is a seedrandom-compatible generator: the seed's decimal form keys an
// RC4 stream whose first 256 bytes are dropped, and each draw assembles a
// 52-bit fraction from the keystream.
type ARC4 struct {
	cipher *rc4.Cipher
	zero   [arc4Width]byte
	out    [arc4Width]byte
}

func NewARC4() *ARC4 {
	a := &ARC4{}
	a.Seed(0)
	return a
}

func (a *ARC4) Seed(v int64) {
	a.SeedString(strconv.FormatInt(v, 10) + "\x00")
}

// SeedString keys the generator with a raw string, the way seedrandom does
// for string seeds. Numeric seeds are keyed with a trailing NUL.
func (a *ARC4) SeedString(s string) {
	c, err := rc4.NewCipher(mixKey(s))
	if err != nil {
		// mixKey never returns an empty or oversized key.
		panic(err)
	}
	a.cipher = c
	a.bytes(arc4Width)
}

// bytes reads count keystream bytes (count <= 256) as a big-endian integer.
func (a *ARC4) bytes(count int) uint64 {
	buf := a.out[:count]
	a.cipher.XORKeyStream(buf, a.zero[:count])
	var r uint64
	for _, b := range buf {
		r = r*arc4Width + uint64(b)
	}
	return r
}

func (a *ARC4) Next() float64 {
	n := float64(a.bytes(arc4Chunks))
	d := float64(arc4StartDenom)
	var x uint64
	for n < arc4Significance {
		n = (n + float64(x)) * arc4Width
		d *= arc4Width
		x = a.bytes(1)
	}
	for n >= arc4Overflow {
		n /= 2
		d /= 2
		x >>= 1
	}
	return (n + float64(x)) / d
}

// mixKey smears a seed string into an RC4 key of at most 256 bytes.
func mixKey(seed string) []byte {
	key := make([]byte, 0, arc4Width)
	smear := 0
	for j := 0; j < len(seed); j++ {
		idx := j & (arc4Width - 1)
		prev := 0
		if idx < len(key) {
			prev = int(key[idx])
		}
		smear ^= prev * 19
		v := byte((smear + int(seed[j])) & (arc4Width - 1))
		if idx < len(key) {
			key[idx] = v
		} else {
			key = append(key, v)
		}
	}
	if len(key) == 0 {
		key = append(key, 0)
	}
	return key
}
