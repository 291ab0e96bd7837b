// Copyright 2016 The pass2key Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pass2key

// Cipher is the bulk encryption boundary that consumes keys produced by Key.
// Implementations transform src into dst under a previously derived key;
// dst and src must be the same length.
//
// TODO: the bulk contract (framing, IV handling, in-place aliasing) is not
// settled yet; pin it down when the first consuming format lands.
type Cipher interface {
	Encrypt(dst, src []byte)
	Decrypt(dst, src []byte)
}
