// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/33cn/rpschain/common/address"
	"github.com/33cn/rpschain/common/crypto"
	"github.com/33cn/rpschain/common/crypto/secp256k1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAction struct {
	Ty    uint32
	Value uint64
	Note  *testNote `rlp:"nil"`
}

type testNote struct {
	Text string
}

func genKey(t *testing.T) crypto.PrivKey {
	c, err := crypto.New(secp256k1.Name)
	require.NoError(t, err)
	priv, err := c.GenKey()
	require.NoError(t, err)
	return priv
}

func TestTxSign(t *testing.T) {
	priv := genKey(t)
	tx := CreateTx("coins", &testAction{Ty: 1, Value: 10})
	assert.False(t, tx.CheckSign())
	_, err := tx.Signer()
	assert.Equal(t, ErrSign, err)

	tx.Sign(uint32(secp256k1.ID), priv)
	assert.True(t, tx.CheckSign())
	assert.Equal(t, address.PubKeyToAddress(priv.PubKey().Bytes()).String(), tx.From())

	signer, err := tx.Signer()
	require.NoError(t, err)
	assert.Equal(t, tx.From(), signer.Address())
	assert.Equal(t, "signer", OwnerKind(signer))

	// 修改 payload 后签名失效
	hash := tx.Hash()
	tx.Payload = Encode(&testAction{Ty: 1, Value: 11})
	assert.False(t, tx.CheckSign())
	assert.NotEqual(t, hash, tx.Hash())
}

func TestTxHexRoundTrip(t *testing.T) {
	priv := genKey(t)
	tx := CreateTx("coins", &testAction{Ty: 2, Note: &testNote{Text: "hi"}})
	tx.Sign(uint32(secp256k1.ID), priv)

	tx2, err := DecodeTx(EncodeTx(tx))
	require.NoError(t, err)
	assert.Equal(t, tx.Hash(), tx2.Hash())
	assert.True(t, tx2.CheckSign())

	var action testAction
	require.NoError(t, Decode(tx2.Payload, &action))
	assert.Equal(t, uint32(2), action.Ty)
	require.NotNil(t, action.Note)
	assert.Equal(t, "hi", action.Note.Text)

	_, err = DecodeTx("zz")
	assert.ErrorIs(t, err, ErrInvalidParam)
	_, err = DecodeTx("0x0102")
	assert.ErrorIs(t, err, ErrDecode)
}

func TestTxExpire(t *testing.T) {
	tx := &Transaction{}
	assert.False(t, tx.IsExpire(100, 0))
	tx.Expire = 10
	assert.False(t, tx.IsExpire(9, 0))
	assert.True(t, tx.IsExpire(10, 0))
	tx.Expire = ExpireBound + 100
	assert.False(t, tx.IsExpire(1, int64(ExpireBound)+99))
	assert.True(t, tx.IsExpire(1, int64(ExpireBound)+100))
}

func TestTxCheck(t *testing.T) {
	priv := genKey(t)
	tx := CreateTx("coins", &testAction{Ty: 1})
	assert.Equal(t, ErrSign, tx.Check(1, 0))
	tx.Expire = 5
	tx.Sign(uint32(secp256k1.ID), priv)
	assert.NoError(t, tx.Check(1, 0))
	assert.Equal(t, ErrTxExpire, tx.Check(5, 0))
}

func TestProgramAuthority(t *testing.T) {
	a := NewProgramAuthority("rps", "authority", []byte("game"))
	b := NewProgramAuthority("rps", "authority", []byte("game"))
	c := NewProgramAuthority("rps", "escrow", []byte("game"))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a.Address(), c.Address())
	assert.NoError(t, address.CheckAddress(a.Address()))
	assert.Equal(t, "program", OwnerKind(a))
}

func TestMergeReceipt(t *testing.T) {
	r1 := &Receipt{Ty: ExecOk, KV: []*KeyValue{{Key: []byte("a")}}}
	r2 := &Receipt{Ty: ExecOk, KV: []*KeyValue{{Key: []byte("b")}}, Logs: []*ReceiptLog{{Ty: TyLogTransfer}}}
	r := MergeReceipt(r1, r2)
	assert.Equal(t, 2, len(r.KV))
	assert.Equal(t, 1, len(r.Logs))
	assert.Equal(t, r2, MergeReceipt(nil, r2))
	assert.Equal(t, r1, MergeReceipt(r1, nil))
}
