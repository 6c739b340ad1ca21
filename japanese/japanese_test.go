// Copyright 2025 The go-encoding Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package japanese

import (
	"errors"
	"testing"

	encoding "github.com/michaelsproul/go-encoding"
)

// encodeAll encodes s with a fresh encoder and fails the test on error.
func encodeAll(t *testing.T, enc encoding.Encoding, s string) []byte {
	t.Helper()
	b, err := encoding.Encode(enc, s)
	if err != nil {
		t.Fatalf("%s: Encode(%q): %v", enc.Name(), s, err)
	}
	return b
}

// decodeAll decodes b with a fresh decoder and fails the test on error.
func decodeAll(t *testing.T, enc encoding.Encoding, b []byte) string {
	t.Helper()
	s, err := encoding.Decode(enc, b)
	if err != nil {
		t.Fatalf("%s: Decode(% x): %v", enc.Name(), b, err)
	}
	return s
}

// checkCodecError asserts reason, consumed count and fault offset.
func checkCodecError(t *testing.T, desc string, n int, err error, wantN int, wantReason encoding.Reason, wantUpto int) {
	t.Helper()
	var ce *encoding.CodecError
	if !errors.As(err, &ce) {
		t.Fatalf("%s: err = %v; want *CodecError", desc, err)
	}
	if n != wantN || ce.Reason != wantReason || ce.Upto != wantUpto {
		t.Errorf("%s: n, reason, upto = %d, %v, %d; want %d, %v, %d",
			desc, n, ce.Reason, ce.Upto, wantN, wantReason, wantUpto)
	}
}

// checkChunkInvariance decodes b in every two-chunk partition and one byte
// at a time, checking each split yields the one-shot result.
func checkChunkInvariance(t *testing.T, enc encoding.Encoding, b []byte, want string) {
	t.Helper()
	for split := 0; split <= len(b); split++ {
		var sb encoding.StringBuffer
		d := enc.NewDecoder()
		for _, chunk := range [][]byte{b[:split], b[split:]} {
			if n, err := d.Feed(chunk, &sb); err != nil || n != len(chunk) {
				t.Fatalf("%s: split %d of % x: Feed = %d, %v", enc.Name(), split, b, n, err)
			}
		}
		if err := d.Finish(&sb); err != nil {
			t.Fatalf("%s: split %d of % x: Finish: %v", enc.Name(), split, b, err)
		}
		if got := sb.String(); got != want {
			t.Errorf("%s: split %d of % x: got %q, want %q", enc.Name(), split, b, got, want)
		}
	}

	var sb encoding.StringBuffer
	d := enc.NewDecoder()
	for i := range b {
		if _, err := d.Feed(b[i:i+1], &sb); err != nil {
			t.Fatalf("%s: byte-at-a-time % x: %v", enc.Name(), b, err)
		}
	}
	if err := d.Finish(&sb); err != nil {
		t.Fatalf("%s: byte-at-a-time % x: Finish: %v", enc.Name(), b, err)
	}
	if got := sb.String(); got != want {
		t.Errorf("%s: byte-at-a-time % x: got %q, want %q", enc.Name(), b, got, want)
	}
}

// checkASCIIIdentity round-trips a pure ASCII string.
func checkASCIIIdentity(t *testing.T, enc encoding.Encoding) {
	t.Helper()
	const s = "The quick brown fox\tjumps over 13 lazy dogs.\r\n"
	b := encodeAll(t, enc, s)
	if string(b) != s {
		t.Errorf("%s: ASCII encode changed bytes: % x", enc.Name(), b)
	}
	if got := decodeAll(t, enc, b); got != s {
		t.Errorf("%s: ASCII round trip = %q", enc.Name(), got)
	}
}

// checkRoundTrip encodes then decodes each string and expects identity.
func checkRoundTrip(t *testing.T, enc encoding.Encoding, inputs []string) {
	t.Helper()
	for _, s := range inputs {
		if got := decodeAll(t, enc, encodeAll(t, enc, s)); got != s {
			t.Errorf("%s: round trip of %q = %q", enc.Name(), s, got)
		}
	}
}
