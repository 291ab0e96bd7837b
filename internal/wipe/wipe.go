// Copyright 2016 The pass2key Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wipe zeroizes buffers that held key material.
package wipe

// Bytes overwrites b with zeros. Best effort: the garbage collector may
// already have moved or copied the data, and the compiler is free to keep
// stale copies in registers.
func Bytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
