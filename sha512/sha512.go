// Package sha512 implements the $6$ SHA-crypt hashing algorithm for crypt(3).
package sha512

import (
	"crypto"
	_ "crypto/sha512"
	"crypto/subtle"
	"strconv"

	crypt "github.com/sergeymakinen/go-shacrypt"
	crypthash "github.com/sergeymakinen/go-shacrypt/hash"
	"github.com/sergeymakinen/go-shacrypt/internal/hashutil"
	"github.com/sergeymakinen/go-shacrypt/sha256/sha2crypt"
)

const (
	MaxSaltLength     = 16
	DefaultSaltLength = MaxSaltLength
)

// InvalidSaltLengthError values describe errors resulting from an invalid length of a salt.
type InvalidSaltLengthError int

func (e InvalidSaltLengthError) Error() string {
	return "invalid salt length " + strconv.FormatInt(int64(e), 10)
}

// InvalidSumLengthError values describe errors resulting from a hash whose
// digest field is not sumLength bytes long.
type InvalidSumLengthError int

func (e InvalidSumLengthError) Error() string {
	return "invalid sum length " + strconv.Itoa(int(e))
}

const (
	MinRounds      = 1000
	MaxRounds      = 999999999
	DefaultRounds  = 656000
	ImplicitRounds = 5000 // the effective value when the rounds parameter is omitted from the hash string
)

// clampRounds folds an out-of-range round count into [MinRounds, MaxRounds],
// matching the reference px_crypt_shacrypt behavior of silently clamping
// rather than rejecting the request.
func clampRounds(rounds uint32) uint32 {
	switch {
	case rounds < MinRounds:
		return MinRounds
	case rounds > MaxRounds:
		return MaxRounds
	default:
		return rounds
	}
}

// Key returns a SHA-512 crypt key derived from the password, salt and
// rounds. rounds is clamped into [MinRounds, MaxRounds] before use.
func Key(password, salt []byte, rounds uint32) ([]byte, error) {
	if n := len(salt); n > MaxSaltLength {
		return nil, InvalidSaltLengthError(n)
	}
	key, err := sha2crypt.Encrypt(crypto.SHA512, password, salt, clampRounds(rounds), sha2crypt.PermSHA512[:])
	if err != nil {
		return nil, &crypt.CryptFailureError{Err: err}
	}
	return key, nil
}

const Prefix = "$6$"

// UnsupportedPrefixError values describe errors resulting from an unsupported prefix string.
type UnsupportedPrefixError string

func (e UnsupportedPrefixError) Error() string {
	return "unsupported prefix " + strconv.Quote(string(e))
}

const sumLength = 86

// NewHash returns the crypt(3) SHA-512 hash of the password. A rounds of 0
// selects the implicit round count and omits the rounds= clause from the
// output; any other value is clamped into [MinRounds, MaxRounds] and
// recorded explicitly.
func NewHash(password string, rounds uint32) (string, error) {
	spec := crypt.SaltSpec{
		Variant: crypt.SHA512,
		Salt:    hashutil.HashEncoding.Rand(DefaultSaltLength),
	}
	effective := uint32(ImplicitRounds)
	if rounds != 0 {
		spec.Rounds = clampRounds(rounds)
		spec.RoundsExplicit = true
		effective = spec.Rounds
	}
	key, err := Key([]byte(password), spec.Salt, effective)
	if err != nil {
		return "", err
	}
	sum := make([]byte, sumLength)
	crypthash.LittleEndianEncoding.Encode(sum, key)
	return crypt.AssembleHash(spec, sum), nil
}

// Params returns the hashing salt and rounds used to create
// the given crypt(3) SHA-512 hash.
func Params(hash string) (salt []byte, rounds uint32, err error) {
	spec, _, err := crypt.ParseHash([]byte(hash))
	if err != nil {
		return nil, 0, err
	}
	if spec.Variant != crypt.SHA512 {
		return nil, 0, UnsupportedPrefixError("$" + string(rune(spec.Variant)) + "$")
	}
	return spec.Salt, spec.Rounds, nil
}

// Check compares the given crypt(3) SHA-512 hash with a new hash derived from the password.
// Returns nil on success, or an error on failure.
func Check(hash, password string) error {
	spec, sum, err := crypt.ParseHash([]byte(hash))
	if err != nil {
		return err
	}
	if spec.Variant != crypt.SHA512 {
		return UnsupportedPrefixError("$" + string(rune(spec.Variant)) + "$")
	}
	if len(sum) != sumLength {
		return InvalidSumLengthError(len(sum))
	}
	key, err := Key([]byte(password), spec.Salt, spec.Rounds)
	if err != nil {
		return err
	}
	var b [sumLength]byte
	crypthash.LittleEndianEncoding.Encode(b[:], key)
	if subtle.ConstantTimeCompare(b[:], sum) == 0 {
		return crypt.ErrPasswordMismatch
	}
	return nil
}

func init() {
	crypt.RegisterHash(Prefix, Check)
}
