// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package address

import (
	"encoding/binary"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPubkeyToAddress(t *testing.T) {
	pubkey := "024a17b0c6eb3143839482faa7e917c9b90a8cfe5008dff748789b8cea1a3d08d5"
	b, err := hex.DecodeString(pubkey)
	require.NoError(t, err)
	addr := PubKeyToAddress(b)
	require.NoError(t, CheckAddress(addr.String()))

	parsed, err := NewAddrFromString(addr.String())
	require.NoError(t, err)
	assert.Equal(t, addr.Hash160, parsed.Hash160)
	assert.Equal(t, addr.String(), parsed.String())
}

func TestCheckAddress(t *testing.T) {
	addr := ExecAddress("rps")
	require.NoError(t, CheckAddress(addr))

	raw, err := Decode(addr)
	require.NoError(t, err)
	assert.Len(t, raw, AddressLength)

	assert.Error(t, CheckAddress(""))
	assert.Error(t, CheckAddress("0OIl"))
	//修改最后一个字符，校验和失败
	bad := addr[:len(addr)-1] + "1"
	if bad == addr {
		bad = addr[:len(addr)-1] + "2"
	}
	assert.Error(t, CheckAddress(bad))
}

func TestDeriveAddress(t *testing.T) {
	seed := make([]byte, 8)
	binary.LittleEndian.PutUint64(seed, 10)
	game := DeriveAddress("rps", "game", seed)
	require.NoError(t, CheckAddress(game))
	assert.Equal(t, game, DeriveAddress("rps", "game", seed))

	binary.LittleEndian.PutUint64(seed, 11)
	assert.NotEqual(t, game, DeriveAddress("rps", "game", seed))

	escrow := DeriveAddress("rps", "escrow", []byte(game))
	authority := DeriveAddress("rps", "authority", []byte(game))
	assert.NotEqual(t, escrow, authority)
	assert.NotEqual(t, escrow, DeriveAddress("token", "escrow", []byte(game)))
	assert.NotEqual(t, ExecAddress("rps"), DeriveAddress("rps", ""))
}

func BenchmarkExecAddress(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ExecAddress("rps")
	}
}
