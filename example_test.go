// Copyright 2025 The go-encoding Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding_test

import (
	"bytes"
	"fmt"
	"io"
	"os"

	encoding "github.com/michaelsproul/go-encoding"
	"github.com/michaelsproul/go-encoding/charmap"
)

func ExampleDecode() {
	s, _ := encoding.Decode(charmap.Windows1252, []byte("Gar\xe7on !"))
	fmt.Println(s)
	// Output: Garçon !
}

func ExampleNewReader() {
	sr := bytes.NewReader([]byte("\xa3\xf3d\xbc"))
	r := encoding.NewReader(sr, charmap.ISO8859_2.NewDecoder())
	io.Copy(os.Stdout, r)
	// Output: Łódź
}
