// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package secp256k1

import (
	"testing"

	"github.com/33cn/rpschain/common/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerify(t *testing.T) {
	c, err := crypto.New(Name)
	require.NoError(t, err)
	priv, err := c.GenKey()
	require.NoError(t, err)

	msg := []byte("rock paper scissors")
	sig := priv.Sign(msg)
	assert.True(t, priv.PubKey().VerifyBytes(msg, sig))
	assert.False(t, priv.PubKey().VerifyBytes([]byte("rock paper lizard"), sig))

	other, err := c.GenKey()
	require.NoError(t, err)
	assert.False(t, other.PubKey().VerifyBytes(msg, sig))

	sig2, err := c.SignatureFromBytes(sig.Bytes())
	require.NoError(t, err)
	assert.True(t, sig.Equals(sig2))
}

func TestKeyFromBytes(t *testing.T) {
	c, err := crypto.New(Name)
	require.NoError(t, err)
	priv, err := c.GenKey()
	require.NoError(t, err)

	priv2, err := c.PrivKeyFromBytes(priv.Bytes())
	require.NoError(t, err)
	assert.True(t, priv.Equals(priv2))
	assert.True(t, priv.PubKey().Equals(priv2.PubKey()))

	pub, err := c.PubKeyFromBytes(priv.PubKey().Bytes())
	require.NoError(t, err)
	assert.True(t, pub.Equals(priv.PubKey()))

	_, err = c.PrivKeyFromBytes([]byte{1, 2})
	assert.Error(t, err)
	_, err = c.PubKeyFromBytes([]byte{1, 2})
	assert.Error(t, err)

	assert.Equal(t, ID, crypto.GetType(Name))
	assert.Equal(t, Name, crypto.GetName(ID))
}
