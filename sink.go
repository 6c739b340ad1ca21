// Copyright 2025 The go-encoding Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import "strings"

// ByteWriter is an append-only sink for encoder output.
type ByteWriter interface {
	WriteByte(b byte)

	// Reserve hints that at least n more bytes are coming. It is
	// advisory: correctness must not depend on it being honored.
	Reserve(n int)
}

// StringWriter is an append-only sink for decoder output.
type StringWriter interface {
	WriteRune(r rune)

	// Reserve hints that the output of roughly n more input units is
	// coming. Advisory only.
	Reserve(n int)
}

// Buffer is a ByteWriter that accumulates bytes in memory.
// The zero value is ready to use.
type Buffer struct {
	b []byte
}

func (w *Buffer) WriteByte(b byte) { w.b = append(w.b, b) }

func (w *Buffer) Reserve(n int) {
	if free := cap(w.b) - len(w.b); free < n {
		b := make([]byte, len(w.b), len(w.b)+n)
		copy(b, w.b)
		w.b = b
	}
}

// Bytes returns the accumulated bytes. The slice aliases the buffer's
// storage and is valid until the next write.
func (w *Buffer) Bytes() []byte { return w.b }

// Len returns the number of accumulated bytes.
func (w *Buffer) Len() int { return len(w.b) }

// Reset truncates the buffer to empty, retaining storage.
func (w *Buffer) Reset() { w.b = w.b[:0] }

// StringBuffer is a StringWriter that accumulates UTF-8 text in memory.
// The zero value is ready to use.
type StringBuffer struct {
	b strings.Builder
}

func (w *StringBuffer) WriteRune(r rune) { w.b.WriteRune(r) }

func (w *StringBuffer) Reserve(n int) { w.b.Grow(n) }

// String returns the accumulated text.
func (w *StringBuffer) String() string { return w.b.String() }

// Len returns the number of accumulated UTF-8 bytes.
func (w *StringBuffer) Len() int { return w.b.Len() }

// Reset truncates the buffer to empty.
func (w *StringBuffer) Reset() { w.b.Reset() }
