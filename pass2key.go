// Copyright 2016 The pass2key Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pass2key implements the legacy passphrase-to-key derivation used
// by Solaris-era encrypted dataset formats: the passphrase is zero-padded or
// truncated to the key size, and the key is produced by running 1000 chained
// AES-CBC encryptions over a buffer seeded with the salt and a fixed
// iteration counter.
//
// The construction predates vetted password-based KDFs and is weak. It is
// not PBKDF2: passphrase bytes beyond the key size are silently discarded,
// and for single-block (16-byte) keys the encryption chain collapses so that
// the salt has no effect on the output. The package exists solely to read
// and write data in the legacy format. New designs should use
// golang.org/x/crypto/scrypt or golang.org/x/crypto/argon2 instead.
package pass2key // import "github.com/splcrypto/pass2key"

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"

	"github.com/splcrypto/pass2key/internal/wipe"
)

// Iterations is the iteration count of the derivation. The format encodes
// it as a 4-byte counter appended to the salt inside the working buffer, so
// it can never be made configurable.
const Iterations = 1000

const (
	// blockSize is the cipher block size the format is defined over.
	blockSize = 16
	// maxKeyMaterial is the largest supported key size (AES-256).
	maxKeyMaterial = 32
)

var (
	// ErrSaltTooLong is returned when the salt and the 4-byte iteration
	// counter do not fit inside a working buffer of the desired key length.
	ErrSaltTooLong = errors.New("pass2key: salt and iteration counter exceed the key length")

	// ErrDerivation is returned when the chained encryption rounds cannot
	// be run, which happens when the working buffer is not a whole number
	// of cipher blocks. Of the accepted key lengths only 16 and 32 derive
	// to completion; 24 sets up the cipher and then fails its first round,
	// as the legacy code does.
	ErrDerivation = errors.New("pass2key: chained encryption rounds failed")
)

// KeySizeError is returned when the desired key length is not one of the
// cipher's key sizes.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "pass2key: unsupported key length " + strconv.Itoa(int(k))
}

// Key derives a key of keyLen bytes from passphrase and salt, using AES as
// the chaining cipher. keyLen must be an AES key size: 16, 24 or 32.
//
// Only the first min(len(passphrase), keyLen) passphrase bytes contribute to
// the key, and the salt must satisfy len(salt)+4 <= keyLen. Both limits are
// fixed by the on-disk format. For a given input triple the output is
// deterministic; the caller owns the returned buffer and is responsible for
// disposing of it.
func Key(passphrase, salt []byte, keyLen int) ([]byte, error) {
	return BlockKey(aes.NewCipher, passphrase, salt, keyLen)
}

// BlockKey derives a key of keyLen bytes like Key, but drives the block
// cipher built by newCipher instead of AES. The constructor is keyed with
// the padded passphrase material and must yield a cipher with a 16-byte
// block, or the derivation fails.
func BlockKey(newCipher func(key []byte) (cipher.Block, error), passphrase, salt []byte, keyLen int) ([]byte, error) {
	switch keyLen {
	case 16, 24, 32:
	default:
		return nil, KeySizeError(keyLen)
	}
	if len(salt)+4 > keyLen {
		return nil, ErrSaltTooLong
	}

	// Key material: the passphrase cut or zero-padded to keyLen inside a
	// zeroed maximum-size buffer.
	material := make([]byte, maxKeyMaterial)
	n := len(passphrase)
	if n > keyLen {
		n = keyLen
	}
	copy(material, passphrase[:n])

	block, err := newCipher(material[:keyLen])
	wipe.Bytes(material)
	if err != nil {
		return nil, fmt.Errorf("pass2key: key setup: %w", err)
	}
	if block.BlockSize() != blockSize || keyLen%blockSize != 0 {
		return nil, ErrDerivation
	}

	// Working buffer: salt, then the little-endian iteration counter,
	// remainder zero.
	buf := make([]byte, keyLen)
	copy(buf, salt)
	binary.LittleEndian.PutUint32(buf[len(salt):], Iterations)

	// The IV is zero for the first round only. The legacy code keeps one CBC
	// context across all rounds, so each round chains off the previous
	// round's last ciphertext block; BlockMode carries that state between
	// CryptBlocks calls.
	mode := cipher.NewCBCEncrypter(block, make([]byte, blockSize))
	for i := 0; i < Iterations; i++ {
		mode.CryptBlocks(buf, buf)
	}
	return buf, nil
}
