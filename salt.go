package crypt

import "strconv"

// Variant identifies a SHA-crypt digest algorithm.
type Variant byte

const (
	SHA256 Variant = '5'
	SHA512 Variant = '6'
)

// MaxSaltLength is the maximum number of raw salt bytes kept by SaltSpec;
// longer salts are truncated at parse time.
const MaxSaltLength = 16

const (
	MinRounds      = 1000
	MaxRounds      = 999999999
	ImplicitRounds = 5000
)

// SaltSpec is the result of parsing a modular crypt salt string: the
// selected variant, the resolved (already-clamped) round count, whether
// the caller's salt string carried an explicit rounds= clause, and the
// raw salt bytes.
type SaltSpec struct {
	Variant        Variant
	Rounds         uint32
	RoundsExplicit bool
	Salt           []byte
}

// clampRounds folds an out-of-range round count into [MinRounds, MaxRounds].
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

// parseSaltSpec parses the "$V$[rounds=N$]salt" preamble shared by a bare
// salt string and a complete hash string, and returns whatever follows
// the salt's own terminating '$' — nil if s has none, which is the bare
// salt-string case. ParseSalt and ParseHash both build on this.
func parseSaltSpec(s []byte) (SaltSpec, []byte, error) {
	if s == nil {
		return SaltSpec{}, nil, ErrNullArgument
	}
	if len(s) < 3 {
		return SaltSpec{}, nil, InvalidSaltError("too short")
	}
	if s[0] != '$' || s[2] != '$' {
		return SaltSpec{}, nil, InvalidSaltFormatError("magic separators not at expected positions")
	}
	var variant Variant
	switch s[1] {
	case byte(SHA256):
		variant = SHA256
	case byte(SHA512):
		variant = SHA512
	default:
		return SaltSpec{}, nil, UnknownCryptIdentifierError(s[1])
	}
	spec := SaltSpec{Variant: variant, Rounds: ImplicitRounds}
	rest := s[3:]
	const roundsPrefix = "rounds="
	if len(rest) >= len(roundsPrefix) && string(rest[:len(roundsPrefix)]) == roundsPrefix {
		rest = rest[len(roundsPrefix):]
		i := indexByte(rest, '$')
		if i < 0 {
			return SaltSpec{}, nil, InvalidRoundsOptionError("missing terminating '$'")
		}
		digits := rest[:i]
		// An empty digit string ("rounds=$...") is not a parse failure: it
		// matches strtoul consuming zero characters and yielding 0, which
		// is then clamped up to MinRounds below, same as the C reference.
		var n uint64
		if len(digits) > 0 {
			var err error
			n, err = strconv.ParseUint(string(digits), 10, 64)
			if err != nil {
				return SaltSpec{}, nil, InvalidRoundsOptionError(string(digits))
			}
		}
		if n > MaxRounds {
			n = MaxRounds
		}
		spec.Rounds = clampRounds(uint32(n))
		spec.RoundsExplicit = true
		rest = rest[i+1:]
	}
	var tail []byte
	if i := indexByte(rest, '$'); i >= 0 {
		tail = rest[i+1:]
		rest = rest[:i]
	}
	if len(rest) > MaxSaltLength {
		rest = rest[:MaxSaltLength]
	}
	spec.Salt = rest
	return spec, tail, nil
}

// ParseSalt parses a modular crypt salt string of the form
// "$5$[rounds=N$]salt[$...]" or "$6$[rounds=N$]salt[$...]" into a SaltSpec.
func ParseSalt(salt []byte) (SaltSpec, error) {
	spec, _, err := parseSaltSpec(salt)
	return spec, err
}

// ParseHash parses a complete modular crypt hash string of the form
// "$5$[rounds=N$]salt$sum" or "$6$[rounds=N$]salt$sum" into its SaltSpec
// and the raw, still radix-64 encoded, sum field.
func ParseHash(hash []byte) (SaltSpec, []byte, error) {
	spec, sum, err := parseSaltSpec(hash)
	if err != nil {
		return SaltSpec{}, nil, err
	}
	if sum == nil {
		return SaltSpec{}, nil, InvalidSaltFormatError("missing sum field")
	}
	return spec, sum, nil
}

// AssembleHash renders spec and an already radix-64-encoded sum into the
// canonical "$V$[rounds=N$]salt$sum" modular crypt string.
func AssembleHash(spec SaltSpec, sum []byte) string {
	buf := make([]byte, 0, len("rounds=")+20+2*len(spec.Salt)+len(sum)+4)
	buf = append(buf, '$', byte(spec.Variant), '$')
	if spec.RoundsExplicit {
		buf = append(buf, "rounds="...)
		buf = strconv.AppendUint(buf, uint64(spec.Rounds), 10)
		buf = append(buf, '$')
	}
	buf = append(buf, spec.Salt...)
	buf = append(buf, '$')
	buf = append(buf, sum...)
	return string(buf)
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}
