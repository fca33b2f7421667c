package crypt

import (
	"crypto"
	_ "crypto/sha256"
	_ "crypto/sha512"
	"strconv"

	crypthash "github.com/sergeymakinen/go-shacrypt/hash"
	"github.com/sergeymakinen/go-shacrypt/sha256/sha2crypt"
)

// MaxEncodedLen is the largest number of bytes Crypt can ever write to out
// (the $6$ variant with a full rounds= clause and a 16-byte salt), plus a
// terminating NUL: 3 + 17 + 16 + 1 + 86 + 1.
const MaxEncodedLen = 124

// Crypt computes the SHA-crypt hash of pw using the parameters encoded in
// salt and writes the canonical modular-crypt string, including a
// terminating NUL, to out. It returns the number of bytes written,
// excluding the NUL.
//
// Crypt mirrors the C px_crypt_shacrypt contract: a null pw or salt is
// rejected with ErrNullArgument, and out must be at least MaxEncodedLen
// bytes long regardless of which variant salt selects, checked before any
// hashing begins.
func Crypt(pw, salt, out []byte) (int, error) {
	if pw == nil || salt == nil {
		return 0, ErrNullArgument
	}
	if len(out) < MaxEncodedLen {
		return 0, &InsufficientBufferSizeError{Have: len(out), Want: MaxEncodedLen}
	}
	spec, err := ParseSalt(salt)
	if err != nil {
		return 0, err
	}

	var (
		h           crypto.Hash
		permutation []byte
		sumLength   int
	)
	switch spec.Variant {
	case SHA256:
		h, permutation, sumLength = crypto.SHA256, sha2crypt.PermSHA256[:], 43
	case SHA512:
		h, permutation, sumLength = crypto.SHA512, sha2crypt.PermSHA512[:], 86
	default:
		return 0, UnknownCryptIdentifierError(byte(spec.Variant))
	}

	prefixLen := 3 + len(spec.Salt)
	if spec.RoundsExplicit {
		prefixLen += len("rounds=") + len(strconv.FormatUint(uint64(spec.Rounds), 10)) + 1
	}
	if prefixLen > 3+17+len(spec.Salt) {
		return 0, InvalidSaltError("prefix too long")
	}

	key, err := sha2crypt.Encrypt(h, pw, spec.Salt, spec.Rounds, permutation)
	if err != nil {
		return 0, &CryptFailureError{Err: err}
	}

	sum := make([]byte, sumLength)
	crypthash.LittleEndianEncoding.Encode(sum, key)
	n := copy(out, AssembleHash(spec, sum))
	out[n] = 0
	return n, nil
}
