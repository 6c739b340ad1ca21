// Copyright 2025 The go-encoding Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package encoding defines a streaming interface for converting between
// legacy character encodings and Unicode text. Concrete encodings, such as
// EUC-JP and ISO 8859-2, are provided in other packages, such as
// github.com/michaelsproul/go-encoding/japanese.
package encoding

// Encoding is the immutable identity of a character encoding. An Encoding
// owns no mutable state and may be shared freely; each call to NewEncoder
// or NewDecoder returns a fresh instance with empty carry state.
type Encoding interface {
	// Name returns the canonical name of the encoding.
	Name() string

	// NewEncoder returns a fresh encoder that converts UTF-8 text to
	// this encoding.
	NewEncoder() Encoder

	// NewDecoder returns a fresh decoder that converts bytes of this
	// encoding to UTF-8 text.
	NewDecoder() Decoder
}

// Encoder converts text to bytes, one chunk at a time.
//
// Feed processes src left to right, appending the encoded form of each
// character to dst as soon as it is known. On success it returns
// (len(src), nil). On failure it returns the byte offset within src of the
// first character whose encoding was not committed to dst, and a
// *CodecError whose Upto marks where the offending character ends; output
// for everything before that character remains in dst.
//
// Finish must be called exactly once after the last chunk. Encoders here
// hold no carry state, so Finish never writes and never fails, but callers
// should not rely on that for other implementations of this interface.
type Encoder interface {
	Feed(src string, dst ByteWriter) (int, error)
	Finish(dst ByteWriter) error

	// Reset clears any internal state so the instance can encode a new,
	// unrelated stream.
	Reset()
}

// Decoder converts bytes to text, one chunk at a time.
//
// Feed processes src left to right, appending each fully resolved
// character to dst. A multi-byte sequence split across chunks is carried
// in the decoder's private state and resumed by the next call; it is never
// reprocessed from scratch. On success Feed returns (len(src), nil), the
// trailing carry included in the count. On failure it returns the number
// of src bytes whose translation was committed to dst — a safe resumption
// point — and a *CodecError whose Upto marks where the invalid input ends.
// Upto may exceed the consumed count, because detecting a bad two-byte
// unit can require reading one byte past the last good one.
//
// Finish must be called exactly once after the last chunk. It reports
// IncompleteSequence if the stream ended in the middle of a multi-byte
// unit, and clears the carry either way.
type Decoder interface {
	Feed(src []byte, dst StringWriter) (int, error)
	Finish(dst StringWriter) error

	// Reset discards any carried bytes so the instance can decode a new,
	// unrelated stream.
	Reset()
}
