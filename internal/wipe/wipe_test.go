// Copyright 2016 The pass2key Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wipe

import "testing"

func TestBytes(t *testing.T) {
	t.Parallel()
	b := []byte("sensitive key material")
	Bytes(b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d not cleared: %#x", i, v)
		}
	}
	Bytes(nil) // must not panic
}
