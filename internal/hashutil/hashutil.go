package hashutil

import (
	"crypto/rand"
	"math/big"
)

const encoderHash = "./0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Encoding implements alphabet-specific actions useful to hashes.
type Encoding struct {
	encoder string
	encMax  *big.Int
}

// Rand returns a byte slice consisting of n cryptographically secure
// random characters from the e alphabet.
func (enc Encoding) Rand(n int) []byte {
	buf := make([]byte, n)
	for i := 0; i < len(buf); i++ {
		n, err := rand.Int(rand.Reader, enc.encMax)
		if err != nil {
			panic(err)
		}
		buf[i] = enc.encoder[n.Uint64()]
	}
	return buf
}

// NewEncoding returns a new Encoding defined by the given alphabet.
func NewEncoding(encoder string) *Encoding {
	return &Encoding{
		encoder: encoder,
		encMax:  big.NewInt(int64(len(encoder))),
	}
}

var HashEncoding = NewEncoding(encoderHash)
