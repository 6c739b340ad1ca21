// Copyright 2025 The go-encoding Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package charmap provides simple 8-bit character encodings whose low half
// is ASCII and whose high half is table-driven, such as ISO 8859-2 and
// Windows 1252.
package charmap

import (
	"unicode/utf8"

	encoding "github.com/michaelsproul/go-encoding"
)

// Charmap is a single-byte encoding. Bytes 0x00-0x7F are ASCII; bytes
// 0x80-0xFF decode through a 128-entry table.
type Charmap struct {
	name   string
	decode [128]rune
	encode map[rune]byte
}

// New builds a Charmap from the decodings of bytes 0x80-0xFF. Cells with
// no assigned character hold utf8.RuneError. When two cells decode to the
// same character, the lower byte wins on the encode side.
func New(name string, table [128]rune) *Charmap {
	c := &Charmap{
		name:   name,
		decode: table,
		encode: make(map[rune]byte, len(table)),
	}
	for i, r := range table {
		if r == utf8.RuneError {
			continue
		}
		if _, ok := c.encode[r]; !ok {
			c.encode[r] = 0x80 + byte(i)
		}
	}
	return c
}

func (c *Charmap) Name() string { return c.name }

func (c *Charmap) NewEncoder() encoding.Encoder { return &charmapEncoder{c} }

func (c *Charmap) NewDecoder() encoding.Decoder { return &charmapDecoder{c} }

type charmapEncoder struct {
	c *Charmap
}

func (e *charmapEncoder) Feed(src string, dst encoding.ByteWriter) (int, error) {
	dst.Reserve(len(src))
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		switch {
		case r < utf8.RuneSelf:
			dst.WriteByte(byte(r))
		default:
			b, ok := e.c.encode[r]
			if !ok {
				return i, &encoding.CodecError{
					Reason: encoding.UnrepresentableCharacter,
					Upto:   i + size,
				}
			}
			dst.WriteByte(b)
		}
		i += size
	}
	return len(src), nil
}

func (e *charmapEncoder) Finish(dst encoding.ByteWriter) error { return nil }

func (e *charmapEncoder) Reset() {}

type charmapDecoder struct {
	c *Charmap
}

func (d *charmapDecoder) Feed(src []byte, dst encoding.StringWriter) (int, error) {
	dst.Reserve(len(src))
	for i, b := range src {
		if b < 0x80 {
			dst.WriteRune(rune(b))
			continue
		}
		r := d.c.decode[b-0x80]
		if r == utf8.RuneError {
			return i, &encoding.CodecError{
				Reason: encoding.InvalidSequence,
				Upto:   i + 1,
			}
		}
		dst.WriteRune(r)
	}
	return len(src), nil
}

func (d *charmapDecoder) Finish(dst encoding.StringWriter) error { return nil }

func (d *charmapDecoder) Reset() {}
