// Copyright 2025 The go-encoding Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import (
	"io"
	"unicode/utf8"
)

// Reader wraps another io.Reader, decoding the bytes read through d into
// UTF-8.
type Reader struct {
	r io.Reader
	d Decoder

	// out[outPos:] holds decoded text not yet copied out via Read.
	out    string
	outPos int
	sink   StringBuffer

	src []byte

	// err is returned once out is drained; done reports whether no more
	// input will be decoded, regardless of whether decoding succeeded.
	err  error
	done bool
}

// NewReader returns a Reader that decodes r through d. The decoder must be
// fresh, or Reset; a decode error surfaces on Read after all text decoded
// before the error has been returned.
func NewReader(r io.Reader, d Decoder) *Reader {
	return &Reader{
		r:   r,
		d:   d,
		src: make([]byte, 4096),
	}
}

// Read implements the io.Reader interface.
func (r *Reader) Read(p []byte) (int, error) {
	for {
		// Copy out any decoded text, and the final error if we are done.
		if r.outPos < len(r.out) {
			n := copy(p, r.out[r.outPos:])
			r.outPos += n
			if r.outPos == len(r.out) && r.done {
				return n, r.err
			}
			return n, nil
		} else if r.done {
			return 0, r.err
		}

		// Decode another chunk. As the io.Reader documentation says,
		// process the n > 0 bytes returned before considering the error.
		n, err := r.r.Read(r.src)
		r.sink.Reset()
		if n > 0 {
			if _, ferr := r.d.Feed(r.src[:n], &r.sink); ferr != nil {
				r.err, r.done = ferr, true
			}
		}
		if !r.done {
			switch err {
			case nil:
			case io.EOF:
				r.err, r.done = io.EOF, true
				if ferr := r.d.Finish(&r.sink); ferr != nil {
					r.err = ferr
				}
			default:
				r.err, r.done = err, true
			}
		}
		r.out, r.outPos = r.sink.String(), 0
	}
}

// Writer wraps another io.Writer, encoding the UTF-8 text written to it
// through e. A rune split across Write calls is carried until complete.
// Close must be called to run the encoder's Finish.
type Writer struct {
	w io.Writer
	e Encoder

	pending  [utf8.UTFMax]byte
	npending int

	sink Buffer
	err  error
}

// NewWriter returns a Writer that encodes through e into w.
func NewWriter(w io.Writer, e Encoder) *Writer {
	return &Writer{w: w, e: e}
}

// Write implements the io.Writer interface. It accepts UTF-8; a trailing
// incomplete rune is buffered and counted as written.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	written := 0

	// Complete a rune left over from the previous call.
	for w.npending > 0 && len(p) > 0 {
		w.pending[w.npending] = p[0]
		w.npending++
		p = p[1:]
		written++
		if utf8.FullRune(w.pending[:w.npending]) || w.npending == len(w.pending) {
			n := w.npending
			w.npending = 0
			if err := w.feed(string(w.pending[:n])); err != nil {
				return written, err
			}
			break
		}
	}
	if w.npending > 0 {
		return written, nil // p exhausted inside the pending rune
	}

	// Hold back a trailing incomplete rune for the next call. Anything
	// that cannot still become a rune is fed through so the encoder can
	// report it.
	boundary := len(p)
	if n := len(p); n > 0 {
		start := n - 1
		for start > 0 && !utf8.RuneStart(p[start]) && n-start < utf8.UTFMax {
			start--
		}
		if utf8.RuneStart(p[start]) && !utf8.FullRune(p[start:]) {
			boundary = start
		}
	}
	if err := w.feed(string(p[:boundary])); err != nil {
		return written, err
	}
	written += boundary
	w.npending = copy(w.pending[:], p[boundary:])
	written += w.npending
	return written, nil
}

// Close encodes any buffered partial rune, runs Finish and flushes. It
// does not close the underlying writer.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	if w.npending > 0 {
		n := w.npending
		w.npending = 0
		if err := w.feed(string(w.pending[:n])); err != nil {
			return err
		}
	}
	w.sink.Reset()
	if err := w.e.Finish(&w.sink); err != nil {
		w.err = err
		return err
	}
	return w.flush()
}

func (w *Writer) feed(s string) error {
	w.sink.Reset()
	_, err := w.e.Feed(s, &w.sink)
	if ferr := w.flush(); ferr != nil {
		return ferr
	}
	if err != nil {
		w.err = err
	}
	return err
}

func (w *Writer) flush() error {
	if w.sink.Len() == 0 {
		return nil
	}
	if _, err := w.w.Write(w.sink.Bytes()); err != nil {
		w.err = err
		return err
	}
	w.sink.Reset()
	return nil
}
