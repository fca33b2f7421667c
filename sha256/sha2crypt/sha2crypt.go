// Package sha2crypt provides low-level access to SHA-2 family crypt functions.
//
// Encrypt implements the two-phase SHA-crypt mixing schedule shared by the
// $5$ (SHA-256) and $6$ (SHA-512) modular crypt formats: it is byte-for-byte
// the same schedule for both, parameterized only by the digest and the
// final byte permutation.
package sha2crypt

import (
	"crypto"
	"strconv"

	"github.com/sergeymakinen/go-shacrypt/internal/cryptoutil"
)

// PermSHA256 is the final byte-permutation table for the $5$ (SHA-256) variant.
var PermSHA256 = [32]byte{
	20, 10, 0, 11,
	1, 21, 2, 22,
	12, 23, 13, 3,
	14, 4, 24, 5,
	25, 15, 26, 16,
	6, 17, 7, 27,
	8, 28, 18, 29,
	19, 9, 30, 31,
}

// PermSHA512 is the final byte-permutation table for the $6$ (SHA-512) variant.
var PermSHA512 = [64]byte{
	42, 21, 0, 1,
	43, 22, 23, 2,
	44, 45, 24, 3,
	4, 46, 25, 26,
	5, 47, 48, 27,
	6, 7, 49, 28,
	29, 8, 50, 51,
	30, 9, 10, 52,
	31, 32, 11, 53,
	54, 33, 12, 13,
	55, 34, 35, 14,
	56, 57, 36, 15,
	16, 58, 37, 38,
	17, 59, 60, 39,
	18, 19, 61, 40,
	41, 20, 62, 63,
}

// UnsupportedHashError values describe errors resulting from a crypto.Hash
// that is neither SHA-256 nor SHA-512.
type UnsupportedHashError crypto.Hash

func (e UnsupportedHashError) Error() string {
	return "unsupported hash " + strconv.Itoa(int(e))
}

// Encrypt performs raw SHA-2 family crypt calculation. password and salt
// are consumed but never retained; rounds is the caller-resolved (already
// clamped) round count, and permutation is the digest-length byte
// permutation table applied to the final digest before it is returned.
func Encrypt(h crypto.Hash, password, salt []byte, rounds uint32, permutation []byte) ([]byte, error) {
	switch h {
	case crypto.SHA256, crypto.SHA512:
	default:
		return nil, UnsupportedHashError(h)
	}
	k := h.Size()
	l := len(password)

	// Phase 1 — bootstrap digests A and B.
	b := h.New()
	b.Write(password)
	b.Write(salt)
	b.Write(password)
	db := b.Sum(nil)
	defer zero(db)

	a := h.New()
	a.Write(password)
	a.Write(salt)
	for i := 0; i < l/k; i++ {
		a.Write(db)
	}
	a.Write(db[:l%k])
	for block := l; block != 0; block >>= 1 {
		if block&1 != 0 {
			a.Write(db)
		} else {
			a.Write(password)
		}
	}
	da := a.Sum(nil)
	defer zero(da)

	// Phase 2 — derive P and S.
	bp := h.New()
	for i := 0; i < l; i++ {
		bp.Write(password)
	}
	dp := bp.Sum(nil)
	defer zero(dp)
	p := duplicate(dp, l, k)
	defer zero(p)

	bs := h.New()
	for i := 0; i < 16+int(da[0]); i++ {
		bs.Write(salt)
	}
	ds := bs.Sum(nil)
	defer zero(ds)
	s := duplicate(ds, len(salt), k)
	defer zero(s)

	// Phase 3 — the rounds-iteration mixing loop. da is the rolling A/C
	// accumulator; it is overwritten every round.
	for i := uint32(0); i < rounds; i++ {
		c := h.New()
		if i%2 != 0 {
			c.Write(p)
		} else {
			c.Write(da)
		}
		if i%3 != 0 {
			c.Write(s)
		}
		if i%7 != 0 {
			c.Write(p)
		}
		if i%2 != 0 {
			c.Write(da)
		} else {
			c.Write(p)
		}
		da = c.Sum(da[:0])
	}
	return cryptoutil.Permute(da, permutation), nil
}

// duplicate returns a slice of length n built by repeating src (of length
// k) as many whole times as fit, followed by the leading n%k bytes of one
// more copy.
func duplicate(src []byte, n, k int) []byte {
	buf := make([]byte, 0, n)
	for len(buf)+k <= n {
		buf = append(buf, src...)
	}
	return append(buf, src[:n-len(buf)]...)
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
