// Copyright 2025 The go-encoding Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import "sync"

var (
	registryMu sync.RWMutex
	registry   = map[string]Encoding{}
)

// Register makes enc available to Lookup under the given labels, in
// addition to its canonical name. Labels are matched case-insensitively
// with surrounding ASCII whitespace ignored. Register panics if a label
// is already taken by a different encoding.
func Register(enc Encoding, labels ...string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	for _, label := range append(labels, enc.Name()) {
		key := normalizeLabel(label)
		if key == "" {
			panic("encoding: Register with empty label")
		}
		if prev, ok := registry[key]; ok && prev != enc {
			panic("encoding: Register called twice for label " + key)
		}
		registry[key] = enc
	}
}

// Lookup returns the Encoding registered for label, or nil if there is
// none.
func Lookup(label string) Encoding {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registry[normalizeLabel(label)]
}

// normalizeLabel lowercases ASCII letters and strips surrounding ASCII
// whitespace, per the WHATWG label matching rules.
func normalizeLabel(label string) string {
	for len(label) > 0 && isLabelSpace(label[0]) {
		label = label[1:]
	}
	for len(label) > 0 && isLabelSpace(label[len(label)-1]) {
		label = label[:len(label)-1]
	}
	b := []byte(label)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func isLabelSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
