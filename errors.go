package crypt

import "strconv"

// ErrNullArgument is returned by Crypt when the password or salt argument is nil.
var ErrNullArgument = errNullArgument("null argument")

type errNullArgument string

func (e errNullArgument) Error() string { return string(e) }

// InsufficientBufferSizeError values describe errors resulting from an
// output buffer too small to hold the encoded hash for the requested
// variant.
type InsufficientBufferSizeError struct {
	Have, Want int
}

func (e *InsufficientBufferSizeError) Error() string {
	return "insufficient buffer size: have " + strconv.Itoa(e.Have) + ", want " + strconv.Itoa(e.Want)
}

// InvalidSaltError values describe errors resulting from a salt that is
// too short to contain a magic identifier, or whose encoded preamble
// would overflow its own salt length.
type InvalidSaltError string

func (e InvalidSaltError) Error() string { return "invalid salt: " + string(e) }

// InvalidSaltFormatError values describe errors resulting from a salt
// whose '$'-delimited preamble is malformed.
type InvalidSaltFormatError string

func (e InvalidSaltFormatError) Error() string { return "invalid salt format: " + string(e) }

// UnknownCryptIdentifierError values describe errors resulting from a
// magic byte that names neither the SHA-256 nor the SHA-512 variant.
type UnknownCryptIdentifierError byte

func (e UnknownCryptIdentifierError) Error() string {
	return "unknown crypt identifier " + strconv.QuoteRuneToASCII(rune(e))
}

// InvalidRoundsOptionError values describe errors resulting from a
// rounds= clause that is not terminated by '$' or whose value is not a
// valid unsigned decimal integer.
type InvalidRoundsOptionError string

func (e InvalidRoundsOptionError) Error() string { return "invalid rounds option: " + string(e) }

// CryptFailureError wraps a failure from the underlying digest provider.
type CryptFailureError struct {
	Err error
}

func (e *CryptFailureError) Error() string { return "crypt failure: " + e.Err.Error() }

func (e *CryptFailureError) Unwrap() error { return e.Err }
