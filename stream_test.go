// Copyright 2025 The go-encoding Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	encoding "github.com/michaelsproul/go-encoding"
	"github.com/michaelsproul/go-encoding/charmap"
	"github.com/michaelsproul/go-encoding/japanese"
)

// eucJP returns an EUC-JP encoding over a small table of genuine
// JIS X 0208 assignments, enough to spell にほん and 日本.
func eucJP(t *testing.T) encoding.Encoding {
	t.Helper()
	jis0208, err := japanese.ParseIndex(strings.NewReader(
		"324\t0x306B\n340\t0x307B\n364\t0x3093\n3569\t0x65E5\n4007\t0x672C\n"))
	if err != nil {
		t.Fatal(err)
	}
	return japanese.NewEUCJP(jis0208, &japanese.MatrixTable{})
}

func TestReader(t *testing.T) {
	src := []byte{'a', 0xa4, 0xcb, 0xa4, 0xdb, 0xa4, 0xf3, '!'}
	const want = "aにほん!"

	enc := eucJP(t)
	for _, wrap := range []func(io.Reader) io.Reader{
		func(r io.Reader) io.Reader { return r },
		iotest.OneByteReader, // multi-byte units split across Read calls
	} {
		r := encoding.NewReader(wrap(bytes.NewReader(src)), enc.NewDecoder())
		got, err := io.ReadAll(r)
		if err != nil {
			t.Fatalf("ReadAll: %v", err)
		}
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}

func TestReaderError(t *testing.T) {
	// The good prefix is readable; the error surfaces afterwards.
	r := encoding.NewReader(bytes.NewReader([]byte{'o', 'k', 0x85}), charmap.ISO8859_2.NewDecoder())
	got, err := io.ReadAll(r)
	if string(got) != "ok" {
		t.Errorf("got %q, want %q", got, "ok")
	}
	var ce *encoding.CodecError
	if !errors.As(err, &ce) || ce.Reason != encoding.InvalidSequence {
		t.Errorf("err = %v; want InvalidSequence", err)
	}
}

func TestReaderTruncated(t *testing.T) {
	r := encoding.NewReader(bytes.NewReader([]byte{'a', 0xa4}), eucJP(t).NewDecoder())
	got, err := io.ReadAll(r)
	if string(got) != "a" {
		t.Errorf("got %q, want %q", got, "a")
	}
	var ce *encoding.CodecError
	if !errors.As(err, &ce) || ce.Reason != encoding.IncompleteSequence {
		t.Errorf("err = %v; want IncompleteSequence", err)
	}
}

func TestWriter(t *testing.T) {
	const src = "aにほん!"
	want := []byte{'a', 0xa4, 0xcb, 0xa4, 0xdb, 0xa4, 0xf3, '!'}

	// One shot, and one byte at a time so runes split across Write calls.
	for _, step := range []int{len(src), 1, 2} {
		var out bytes.Buffer
		w := encoding.NewWriter(&out, eucJP(t).NewEncoder())
		for i := 0; i < len(src); i += step {
			end := i + step
			if end > len(src) {
				end = len(src)
			}
			if n, err := w.Write([]byte(src[i:end])); err != nil || n != end-i {
				t.Fatalf("step %d: Write = %d, %v", step, n, err)
			}
		}
		if err := w.Close(); err != nil {
			t.Fatalf("step %d: Close: %v", step, err)
		}
		if !bytes.Equal(out.Bytes(), want) {
			t.Errorf("step %d: got % x, want % x", step, out.Bytes(), want)
		}
	}
}

func TestWriterUnrepresentable(t *testing.T) {
	var out bytes.Buffer
	w := encoding.NewWriter(&out, charmap.ISO8859_2.NewEncoder())
	_, err := w.Write([]byte("ab€"))
	var ce *encoding.CodecError
	if !errors.As(err, &ce) || ce.Reason != encoding.UnrepresentableCharacter {
		t.Fatalf("err = %v; want UnrepresentableCharacter", err)
	}
	if out.String() != "ab" {
		t.Errorf("committed prefix: got %q, want %q", out.String(), "ab")
	}
	// The error is sticky.
	if _, err := w.Write([]byte("c")); err == nil {
		t.Error("Write after error succeeded")
	}
}

func TestWriterTruncatedRune(t *testing.T) {
	var out bytes.Buffer
	w := encoding.NewWriter(&out, charmap.Windows1252.NewEncoder())
	if _, err := w.Write([]byte("ab\xc3")); err != nil { // first byte of é
		t.Fatal(err)
	}
	if err := w.Close(); err == nil {
		t.Error("Close after truncated rune succeeded")
	}
	if out.String() != "ab" {
		t.Errorf("got %q, want %q", out.String(), "ab")
	}
}
