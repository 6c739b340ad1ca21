// Copyright 2025 The go-encoding Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package japanese provides streaming codecs for the EUC-JP and Shift JIS
// encodings, backed by caller-supplied JIS X 0208 and JIS X 0212 tables.
package japanese

import (
	"unicode/utf8"

	encoding "github.com/michaelsproul/go-encoding"
)

// NewEUCJP returns the EUC-JP (Extended Unix Code Japanese) encoding over
// the given JIS X 0208 and JIS X 0212 tables. The decoder understands both
// character sets plus half-width katakana; the encoder emits JIS X 0208
// and half-width katakana only.
func NewEUCJP(jis0208, jis0212 Table) encoding.Encoding {
	return &eucJP{jis0208: jis0208, jis0212: jis0212}
}

type eucJP struct {
	jis0208, jis0212 Table
}

func (e *eucJP) Name() string { return "EUC-JP" }

func (e *eucJP) NewEncoder() encoding.Encoder {
	return &eucJPEncoder{jis0208: e.jis0208}
}

func (e *eucJP) NewDecoder() encoding.Decoder {
	return &eucJPDecoder{jis0208: e.jis0208, jis0212: e.jis0212}
}

func invalidSeq(upto int) error {
	return &encoding.CodecError{Reason: encoding.InvalidSequence, Upto: upto}
}

func unrepresentable(upto int) error {
	return &encoding.CodecError{Reason: encoding.UnrepresentableCharacter, Upto: upto}
}

// trailUpto positions the fault offset for a malformed trailing byte: a
// byte that could never be part of a two-byte unit is excluded, so it can
// be reinterpreted as the start of the next sequence.
func trailUpto(i int, b byte) int {
	if b < 0xa1 || 0xfe < b {
		return i
	}
	return i + 1
}

type eucJPEncoder struct {
	jis0208 Table
}

func (e *eucJPEncoder) Feed(src string, dst encoding.ByteWriter) (int, error) {
	dst.Reserve(len(src))
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		switch {
		case r < utf8.RuneSelf:
			dst.WriteByte(byte(r))

		case r == 0x00a5:
			dst.WriteByte(0x5c)

		case r == 0x203e:
			dst.WriteByte(0x7e)

		case 0xff61 <= r && r <= 0xff9f:
			dst.WriteByte(0x8e)
			dst.WriteByte(byte(r - (0xff61 - 0xa1)))

		default:
			// Invalid UTF-8 decodes to utf8.RuneError, which no JIS
			// table maps, so it is reported here too.
			ptr, ok := e.jis0208.Backward(r)
			if !ok {
				return i, unrepresentable(i + size)
			}
			dst.WriteByte(0xa1 + byte(ptr/94))
			dst.WriteByte(0xa1 + byte(ptr%94))
		}
		i += size
	}
	return len(src), nil
}

func (e *eucJPEncoder) Finish(dst encoding.ByteWriter) error { return nil }

func (e *eucJPEncoder) Reset() {}

// eucJPState says what an unfinished multi-byte sequence is waiting for.
type eucJPState int

const (
	eucJPClean    eucJPState = iota
	eucJPKatakana            // after a 0x8e prefix
	eucJPLead                // after a JIS X 0208 lead; pending holds it
	eucJPExtLead             // after a 0x8f prefix
	eucJPExtMid              // after 0x8f and one coordinate byte; pending holds it
)

type eucJPDecoder struct {
	jis0208, jis0212 Table

	state   eucJPState
	pending byte
}

func (d *eucJPDecoder) Feed(src []byte, dst encoding.StringWriter) (int, error) {
	dst.Reserve(len(src))
	n := 0 // count of src bytes whose translation is committed
	for i := 0; i < len(src); i++ {
		b := src[i]
		switch d.state {
		case eucJPClean:
			switch {
			case b < 0x80:
				dst.WriteRune(rune(b))
				n = i + 1
			case b == 0x8e:
				d.state = eucJPKatakana
			case b == 0x8f:
				d.state = eucJPExtLead
			case 0xa1 <= b && b <= 0xfe:
				d.state, d.pending = eucJPLead, b
			default:
				return n, invalidSeq(i + 1)
			}

		case eucJPKatakana:
			d.state = eucJPClean
			if b < 0xa1 || 0xdf < b {
				return n, invalidSeq(trailUpto(i, b))
			}
			dst.WriteRune(rune(b) + (0xff61 - 0xa1))
			n = i + 1

		case eucJPLead:
			lead := d.pending
			d.state = eucJPClean
			if b < 0xa1 || 0xfe < b {
				return n, invalidSeq(i)
			}
			r, ok := d.jis0208.Forward(uint16(lead-0xa1)*94 + uint16(b-0xa1))
			if !ok {
				return n, invalidSeq(i + 1)
			}
			dst.WriteRune(r)
			n = i + 1

		case eucJPExtLead:
			if b < 0xa1 || 0xfe < b {
				d.state = eucJPClean
				return n, invalidSeq(i)
			}
			d.state, d.pending = eucJPExtMid, b

		case eucJPExtMid:
			mid := d.pending
			d.state = eucJPClean
			if b < 0xa1 || 0xfe < b {
				return n, invalidSeq(i)
			}
			r, ok := d.jis0212.Forward(uint16(mid-0xa1)*94 + uint16(b-0xa1))
			if !ok {
				return n, invalidSeq(i + 1)
			}
			dst.WriteRune(r)
			n = i + 1
		}
	}
	return len(src), nil
}

func (d *eucJPDecoder) Finish(dst encoding.StringWriter) error {
	if d.state != eucJPClean {
		d.Reset()
		return &encoding.CodecError{Reason: encoding.IncompleteSequence}
	}
	return nil
}

func (d *eucJPDecoder) Reset() {
	d.state, d.pending = eucJPClean, 0
}
