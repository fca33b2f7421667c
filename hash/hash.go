// Package hash provides the little-endian base64 encoding used for the
// sum field of crypt(3) hashes.
package hash

import "github.com/sergeymakinen/go-shacrypt/hash/base64le"

const encoder = "./0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// LittleEndianEncoding is the unpadded little-endian base64 encoding, defined by
// the 64-character alphabet used by crypt(3).
var LittleEndianEncoding = base64le.NewEncoding(encoder).WithPadding(base64le.NoPadding)
