// Copyright 2025 The go-encoding Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

// Encode converts s to enc's byte representation in one call. It fails on
// the first unrepresentable character.
func Encode(enc Encoding, s string) ([]byte, error) {
	var buf Buffer
	e := enc.NewEncoder()
	if _, err := e.Feed(s, &buf); err != nil {
		return nil, err
	}
	if err := e.Finish(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode converts b from enc to UTF-8 in one call. It fails on the first
// invalid or truncated sequence.
func Decode(enc Encoding, b []byte) (string, error) {
	var buf StringBuffer
	d := enc.NewDecoder()
	if _, err := d.Feed(b, &buf); err != nil {
		return "", err
	}
	if err := d.Finish(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
