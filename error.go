// Copyright 2025 The go-encoding Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import "fmt"

// Reason classifies codec failures.
type Reason int

const (
	// InvalidSequence means a decoder met bytes that are not a valid
	// encoded unit, or a well-formed unit with no character assigned.
	InvalidSequence Reason = 1 + iota

	// UnrepresentableCharacter means an encoder met a character with no
	// representation in the target encoding.
	UnrepresentableCharacter

	// IncompleteSequence means the stream ended in the middle of a
	// multi-byte unit.
	IncompleteSequence
)

func (r Reason) String() string {
	switch r {
	case InvalidSequence:
		return "invalid sequence"
	case UnrepresentableCharacter:
		return "unrepresentable character"
	case IncompleteSequence:
		return "incomplete sequence"
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// CodecError reports where and why a Feed or Finish call failed.
//
// Upto is the chunk-relative offset just past the offending input: a
// caller that discards input up to Upto and feeds the remainder again
// resumes at the first unit not yet examined. Upto is measured in bytes of
// the chunk passed to the failing call; for Finish it is always zero.
type CodecError struct {
	Reason Reason
	Upto   int
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("encoding: %s at offset %d", e.Reason, e.Upto)
}
