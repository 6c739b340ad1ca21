// Copyright 2025 The go-encoding Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package japanese

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// matrixSize is the number of cells in a 94×94 character set.
const matrixSize = 94 * 94

// A Table maps matrix coordinates of a 94×94 character set, such as
// JIS X 0208 or JIS X 0212, to code points and back. A coordinate is
// row*94 + col, in [0, 94*94).
//
// Implementations must be deterministic and side-effect free; the codecs
// in this package call them concurrently from independent instances.
type Table interface {
	// Forward returns the code point at coordinate ptr, if any.
	Forward(ptr uint16) (rune, bool)

	// Backward returns the coordinate of r, if any.
	Backward(r rune) (uint16, bool)
}

// MatrixTable is a Table backed by a dense forward array and a backward
// map. Use ParseIndex to build one.
type MatrixTable struct {
	forward  [matrixSize]rune // 0 means unmapped
	backward map[rune]uint16
}

func (t *MatrixTable) Forward(ptr uint16) (rune, bool) {
	if ptr >= matrixSize {
		return 0, false
	}
	r := t.forward[ptr]
	return r, r != 0
}

func (t *MatrixTable) Backward(r rune) (uint16, bool) {
	ptr, ok := t.backward[r]
	return ptr, ok
}

// ParseIndex reads a WHATWG-style index file — lines of
// "pointer<TAB>0xXXXX", with blank lines and # comments ignored — and
// returns the Table it describes. When several pointers share a code
// point, the first one wins on the backward mapping.
func ParseIndex(r io.Reader) (*MatrixTable, error) {
	t := &MatrixTable{backward: make(map[rune]uint16)}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		if s == "" || s[0] == '#' {
			continue
		}
		x, y := 0, 0
		if _, err := fmt.Sscanf(s, "%d\t0x%x", &x, &y); err != nil {
			return nil, fmt.Errorf("japanese: cannot parse index line %q", s)
		}
		if x < 0 || matrixSize <= x {
			return nil, fmt.Errorf("japanese: pointer %d out of range", x)
		}
		t.forward[x] = rune(y)
		if _, ok := t.backward[rune(y)]; !ok {
			t.backward[rune(y)] = uint16(x)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return t, nil
}
