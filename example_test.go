// Copyright 2016 The pass2key Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pass2key_test

import (
	"fmt"

	"github.com/splcrypto/pass2key"
)

// Derive the AES-128 key for an existing legacy volume from its recorded
// salt and the user's passphrase.
func ExampleKey() {
	salt := make([]byte, 8) // read from the volume header; zero here

	key, err := pass2key.Key([]byte("correcthorse"), salt, 16)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%x\n", key)
	// Output:
	// 7acf6fe6513ce20077297811c35a2e71
}
