// Copyright 2025 The go-encoding Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package japanese

import (
	"unicode/utf8"

	encoding "github.com/michaelsproul/go-encoding"
)

// NewShiftJIS returns the Shift JIS (Japanese Industrial Standards)
// encoding, also known as Code Page 932, over the given JIS X 0208 table.
func NewShiftJIS(jis0208 Table) encoding.Encoding {
	return &shiftJIS{jis0208: jis0208}
}

type shiftJIS struct {
	jis0208 Table
}

func (e *shiftJIS) Name() string { return "Shift JIS" }

func (e *shiftJIS) NewEncoder() encoding.Encoder {
	return &shiftJISEncoder{jis0208: e.jis0208}
}

func (e *shiftJIS) NewDecoder() encoding.Decoder {
	return &shiftJISDecoder{jis0208: e.jis0208}
}

type shiftJISEncoder struct {
	jis0208 Table
}

func (e *shiftJISEncoder) Feed(src string, dst encoding.ByteWriter) (int, error) {
	dst.Reserve(len(src))
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		switch {
		case r <= 0x80:
			// U+0080 itself passes through as a raw byte.
			dst.WriteByte(byte(r))

		case r == 0x00a5:
			dst.WriteByte(0x5c)

		case r == 0x203e:
			dst.WriteByte(0x7e)

		case 0xff61 <= r && r <= 0xff9f:
			dst.WriteByte(byte(r - (0xff61 - 0xa1)))

		default:
			ptr, ok := e.jis0208.Backward(r)
			if !ok {
				return i, unrepresentable(i + size)
			}
			lead, trail := ptr/188, ptr%188
			if lead < 0x1f {
				lead += 0x81
			} else {
				lead += 0xc1
			}
			if trail < 0x3f {
				trail += 0x40
			} else {
				trail += 0x41
			}
			dst.WriteByte(byte(lead))
			dst.WriteByte(byte(trail))
		}
		i += size
	}
	return len(src), nil
}

func (e *shiftJISEncoder) Finish(dst encoding.ByteWriter) error { return nil }

func (e *shiftJISEncoder) Reset() {}

type shiftJISDecoder struct {
	jis0208 Table

	// lead is a pending lead byte, or 0 when no sequence is in flight.
	// Lead bytes are always >= 0x81, so 0 is unambiguous.
	lead byte
}

func (d *shiftJISDecoder) Feed(src []byte, dst encoding.StringWriter) (int, error) {
	dst.Reserve(len(src))
	n := 0 // count of src bytes whose translation is committed
	for i := 0; i < len(src); i++ {
		b := src[i]
		if lead := d.lead; lead != 0 {
			d.lead = 0
			if (b < 0x40 || 0x7e < b) && (b < 0x80 || 0xfc < b) {
				return n, invalidSeq(i)
			}
			leadOffset, trailOffset := uint16(0x81), uint16(0x40)
			if lead >= 0xa0 {
				leadOffset = 0xc1
			}
			if b >= 0x7f {
				trailOffset = 0x41
			}
			r, ok := d.jis0208.Forward((uint16(lead)-leadOffset)*188 + uint16(b) - trailOffset)
			if !ok {
				return n, invalidSeq(i + 1)
			}
			dst.WriteRune(r)
			n = i + 1
			continue
		}
		switch {
		case b < 0x80:
			dst.WriteRune(rune(b))
			n = i + 1
		case 0xa1 <= b && b <= 0xdf:
			dst.WriteRune(rune(b) + (0xff61 - 0xa1))
			n = i + 1
		case (0x81 <= b && b <= 0x9f) || (0xe0 <= b && b <= 0xfc):
			d.lead = b
		default:
			return n, invalidSeq(i + 1)
		}
	}
	return len(src), nil
}

func (d *shiftJISDecoder) Finish(dst encoding.StringWriter) error {
	if d.lead != 0 {
		d.lead = 0
		return &encoding.CodecError{Reason: encoding.IncompleteSequence}
	}
	return nil
}

func (d *shiftJISDecoder) Reset() {
	d.lead = 0
}
