// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crypto

import (
	crand "crypto/rand"
	"encoding/binary"
	"encoding/hex"
)

// CRandBytes bytes from the OS randomness
func CRandBytes(numBytes int) []byte {
	b := make([]byte, numBytes)
	_, err := crand.Read(b)
	if err != nil {
		panic("Panic on a Crisis" + err.Error())
	}
	return b
}

// CRandHex RandHex(24) gives 96 bits of randomness, strong enough for most purposes.
func CRandHex(numDigits int) string {
	return hex.EncodeToString(CRandBytes(numDigits / 2))
}

// RandUint64 uniformly random uint64, used as the salt of a commitment
func RandUint64() uint64 {
	return binary.LittleEndian.Uint64(CRandBytes(8))
}
