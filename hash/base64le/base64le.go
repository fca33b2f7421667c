// Derived from Go which is licensed as follows:
//
// Copyright (c) 2009 The Go Authors. All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are
// met:
//
//   * Redistributions of source code must retain the above copyright
// notice, this list of conditions and the following disclaimer.
//   * Redistributions in binary form must reproduce the above
// copyright notice, this list of conditions and the following disclaimer
// in the documentation and/or other materials provided with the
// distribution.
//   * Neither the name of Google Inc. nor the names of its
// contributors may be used to endorse or promote products derived from
// this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
// "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
// LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
// A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
// OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
// SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
// LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
// DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
// THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
// (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
// OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

// Package base64le implements a little-endian variant of base64 as used
// by crypt(3) hashes.
//
// Unlike RFC 4648 base64, each group of input bytes is treated as a
// little-endian integer (the first byte holds the least-significant
// bits) and the output characters are emitted from the least-significant
// 6-bit group to the most-significant, rather than the other way round.
package base64le

import (
	"io"
	"strconv"
)

// Encoding is a little-endian base64 encoding/decoding scheme, defined by
// a 64-character alphabet.
type Encoding struct {
	encode    [64]byte
	decodeMap [256]byte
	padChar   rune
	strict    bool
}

const (
	StdPadding rune = '=' // Standard padding character
	NoPadding  rune = -1  // No padding
)

const invalidIndex = 0xFF

// NewEncoding returns a new Encoding defined by the given alphabet, which
// must be a 64-byte string that does not contain the padding character or
// CR / LF ('\r', '\n').
func NewEncoding(encoder string) *Encoding {
	if len(encoder) != 64 {
		panic("base64le: encoding alphabet is not 64 bytes long")
	}
	for i := 0; i < len(encoder); i++ {
		if encoder[i] == '\n' || encoder[i] == '\r' {
			panic("base64le: encoding alphabet contains newline character")
		}
	}
	e := &Encoding{padChar: StdPadding}
	copy(e.encode[:], encoder)
	for i := 0; i < len(e.decodeMap); i++ {
		e.decodeMap[i] = invalidIndex
	}
	for i := 0; i < len(encoder); i++ {
		e.decodeMap[encoder[i]] = byte(i)
	}
	return e
}

// WithPadding creates a new encoding identical to enc except with a
// specified padding character, or NoPadding to disable padding.
func (enc Encoding) WithPadding(padding rune) *Encoding {
	if padding == '\r' || padding == '\n' || padding > 0xFF {
		panic("base64le: invalid padding")
	}
	enc.padChar = padding
	return &enc
}

// Strict creates a new encoding identical to enc except with strict
// decoding enabled. In this mode, the decoder requires that trailing
// padding bits are zero.
func (enc Encoding) Strict() *Encoding {
	enc.strict = true
	return &enc
}

// Encode encodes src using the encoding enc, writing
// EncodedLen(len(src)) bytes to dst.
func (enc *Encoding) Encode(dst, src []byte) {
	if len(src) == 0 {
		return
	}
	di, si := 0, 0
	n := (len(src) / 3) * 3
	for si < n {
		val := uint(src[si]) | uint(src[si+1])<<8 | uint(src[si+2])<<16
		dst[di+0] = enc.encode[val&0x3F]
		dst[di+1] = enc.encode[(val>>6)&0x3F]
		dst[di+2] = enc.encode[(val>>12)&0x3F]
		dst[di+3] = enc.encode[(val>>18)&0x3F]
		si += 3
		di += 4
	}
	remain := len(src) - si
	if remain == 0 {
		return
	}
	var val uint
	val = uint(src[si])
	if remain == 2 {
		val |= uint(src[si+1]) << 8
	}
	dst[di+0] = enc.encode[val&0x3F]
	dst[di+1] = enc.encode[(val>>6)&0x3F]
	if remain == 2 {
		dst[di+2] = enc.encode[(val>>12)&0x3F]
		di += 3
	} else {
		di += 2
	}
	if enc.padChar != NoPadding {
		for ; di%4 != 0; di++ {
			dst[di] = byte(enc.padChar)
		}
	}
}

// EncodeToString returns the little-endian base64 encoding of src.
func (enc *Encoding) EncodeToString(src []byte) string {
	buf := make([]byte, enc.EncodedLen(len(src)))
	enc.Encode(buf, src)
	return string(buf)
}

// EncodedLen returns the length in bytes of the little-endian base64
// encoding of an input buffer of length n.
func (enc *Encoding) EncodedLen(n int) int {
	if enc.padChar == NoPadding {
		return (n*8 + 5) / 6
	}
	return (n + 2) / 3 * 4
}

// CorruptInputError values describe the byte offset of the first invalid
// byte encountered while decoding.
type CorruptInputError int64

func (e CorruptInputError) Error() string {
	return "illegal base64le data at input byte " + strconv.FormatInt(int64(e), 10)
}

// DecodedLen returns the maximum length in bytes of the decoded data
// corresponding to n bytes of little-endian base64-encoded data.
func (enc *Encoding) DecodedLen(n int) int {
	if enc.padChar == NoPadding {
		return n * 6 / 8
	}
	return n / 4 * 3
}

// Decode decodes src using the encoding enc. It writes at most
// DecodedLen(len(src)) bytes to dst and returns the number of bytes
// written.
func (enc *Encoding) Decode(dst, src []byte) (n int, err error) {
	if len(src) == 0 {
		return 0, nil
	}
	src = stripNewlines(src)
	if enc.padChar != NoPadding {
		if len(src)%4 != 0 {
			return 0, CorruptInputError(len(src) / 4 * 4)
		}
		for len(src) > 0 && src[len(src)-1] == byte(enc.padChar) {
			src = src[:len(src)-1]
		}
	}
	di := 0
	for len(src) > 0 {
		group := src
		if len(group) > 4 {
			group = group[:4]
		}
		var vals [4]byte
		for i, c := range group {
			v := enc.decodeMap[c]
			if v == invalidIndex {
				return di, CorruptInputError(i)
			}
			vals[i] = v
		}
		var val uint
		for i := 0; i < len(group); i++ {
			val |= uint(vals[i]) << uint(6*i)
		}
		if enc.strict && ((len(group) == 3 && val>>16 != 0) || (len(group) == 2 && val>>8 != 0)) {
			return di, CorruptInputError(len(group) - 1)
		}
		switch len(group) {
		case 4:
			dst[di], dst[di+1], dst[di+2] = byte(val), byte(val>>8), byte(val>>16)
			di += 3
		case 3:
			dst[di], dst[di+1] = byte(val), byte(val>>8)
			di += 2
		case 2:
			dst[di] = byte(val)
			di++
		default:
			return di, CorruptInputError(len(src) - 1)
		}
		src = src[len(group):]
	}
	return di, nil
}

// DecodeString returns the bytes represented by the little-endian base64
// string s.
func (enc *Encoding) DecodeString(s string) ([]byte, error) {
	dbuf := make([]byte, enc.DecodedLen(len(s)))
	n, err := enc.Decode(dbuf, []byte(s))
	return dbuf[:n], err
}

func stripNewlines(src []byte) []byte {
	out := src[:0:0]
	clean := true
	for _, b := range src {
		if b == '\r' || b == '\n' {
			clean = false
			break
		}
	}
	if clean {
		return src
	}
	out = make([]byte, 0, len(src))
	for _, b := range src {
		if b != '\r' && b != '\n' {
			out = append(out, b)
		}
	}
	return out
}

type encoder struct {
	enc *Encoding
	w   io.Writer
	buf [3]byte
	nbuf int
	out  [1024]byte
	err  error
}

// NewEncoder returns a new little-endian base64 stream encoder. Data
// written to the returned writer is encoded using enc and then written to
// w. Base64 encodings operate in 3-byte blocks; when finished writing,
// the caller must call Close to flush any partially written blocks.
func NewEncoder(enc *Encoding, w io.Writer) io.WriteCloser {
	return &encoder{enc: enc, w: w}
}

func (e *encoder) Write(p []byte) (n int, err error) {
	if e.err != nil {
		return 0, e.err
	}
	for len(p) > 0 {
		var i int
		for i = 0; i < len(p) && e.nbuf < 3; i++ {
			e.buf[e.nbuf] = p[i]
			e.nbuf++
		}
		n += i
		p = p[i:]
		if e.nbuf < 3 {
			return n, nil
		}
		nn := e.enc.EncodedLen(3)
		e.enc.Encode(e.out[:nn], e.buf[:3])
		if _, e.err = e.w.Write(e.out[:nn]); e.err != nil {
			return n, e.err
		}
		e.nbuf = 0
	}
	return n, nil
}

func (e *encoder) Close() error {
	if e.err == nil && e.nbuf > 0 {
		nn := e.enc.EncodedLen(e.nbuf)
		e.enc.Encode(e.out[:nn], e.buf[:e.nbuf])
		e.nbuf = 0
		_, e.err = e.w.Write(e.out[:nn])
	}
	return e.err
}

type decoder struct {
	enc  *Encoding
	r    io.Reader
	buf  []byte
	eof  bool
	nbuf int
	err  error
	out  []byte
}

// NewDecoder constructs a new little-endian base64 stream decoder.
func NewDecoder(enc *Encoding, r io.Reader) io.Reader {
	return &decoder{enc: enc, r: r, buf: make([]byte, 4096)}
}

func (d *decoder) Read(p []byte) (n int, err error) {
	if len(d.out) > 0 {
		n = copy(p, d.out)
		d.out = d.out[n:]
		return n, nil
	}
	if d.err != nil {
		return 0, d.err
	}
	if !d.eof {
		rn, rerr := d.r.Read(d.buf[d.nbuf:])
		d.nbuf += rn
		if rerr == io.EOF {
			d.eof = true
		} else if rerr != nil {
			d.err = rerr
			return 0, rerr
		}
	}
	if d.nbuf == 0 && d.eof {
		d.err = io.EOF
		return 0, io.EOF
	}
	usable := d.nbuf
	if !d.eof {
		usable = d.nbuf / 4 * 4
	}
	if usable == 0 {
		if d.eof {
			usable = d.nbuf
		} else {
			return d.Read(p)
		}
	}
	dst := make([]byte, d.enc.DecodedLen(usable))
	nn, derr := d.enc.Decode(dst, d.buf[:usable])
	copy(d.buf, d.buf[usable:d.nbuf])
	d.nbuf -= usable
	if derr != nil {
		d.err = derr
	}
	n = copy(p, dst[:nn])
	d.out = dst[n:nn]
	if n == 0 && d.err != nil {
		return 0, d.err
	}
	return n, nil
}
