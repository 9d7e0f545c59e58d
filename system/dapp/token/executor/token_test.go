// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor_test

import (
	"encoding/json"
	"testing"

	"github.com/33cn/rpschain/account"
	"github.com/33cn/rpschain/common/address"
	"github.com/33cn/rpschain/common/crypto"
	"github.com/33cn/rpschain/common/crypto/secp256k1"
	"github.com/33cn/rpschain/common/db"
	chainexec "github.com/33cn/rpschain/executor"
	_ "github.com/33cn/rpschain/system"
	tokenty "github.com/33cn/rpschain/system/dapp/token/types"
	"github.com/33cn/rpschain/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type user struct {
	priv crypto.PrivKey
	addr string
}

func newUser(t *testing.T) *user {
	c, err := crypto.New(secp256k1.Name)
	require.NoError(t, err)
	priv, err := c.GenKey()
	require.NoError(t, err)
	return &user{priv: priv, addr: address.PubKeyToAddr(priv.PubKey().Bytes())}
}

func execTx(t *testing.T, exec *chainexec.Executor, u *user, action *tokenty.TokenAction) uint32 {
	tx := types.CreateTx(types.TokenX, action)
	tx.Sign(uint32(secp256k1.ID), u.priv)
	receipts, err := exec.ExecBlock([]*types.Transaction{tx}, int64(exec.Height()+1))
	require.NoError(t, err)
	return receipts[0].Ty
}

func query(exec *chainexec.Executor, funcName string, in interface{}) (interface{}, error) {
	params, _ := json.Marshal(in)
	return exec.Query(types.TokenX, funcName, params)
}

func TestTokenExec(t *testing.T) {
	alice, bob := newUser(t), newUser(t)
	backend, err := db.NewDB("test", db.MemDBBackendStr, "", 0)
	require.NoError(t, err)
	defer backend.Close()
	cfg := types.DefaultConfig()
	cfg.Genesis = []*types.GenesisAccount{{Addr: alice.addr, Amount: 1e12}, {Addr: bob.addr, Amount: 1e12}}
	exec, err := chainexec.New(cfg, backend)
	require.NoError(t, err)

	ok, fail := uint32(types.ExecOk), uint32(types.ExecErr)
	mint := account.MintAddress(alice.addr, "GOLD")
	assert.Equal(t, ok, execTx(t, exec, alice, &tokenty.TokenAction{CreateMint: &tokenty.TokenCreateMint{Symbol: "GOLD", Decimals: 2}}))
	assert.Equal(t, fail, execTx(t, exec, alice, &tokenty.TokenAction{CreateMint: &tokenty.TokenCreateMint{Symbol: "GOLD", Decimals: 2}}))

	res, err := query(exec, "GetMint", &tokenty.ReqAddr{Addr: mint})
	require.NoError(t, err)
	assert.Equal(t, alice.addr, res.(*types.Mint).Authority)
	assert.Equal(t, uint32(2), res.(*types.Mint).Decimals)

	for _, u := range []*user{alice, bob} {
		assert.Equal(t, ok, execTx(t, exec, u, &tokenty.TokenAction{CreateAccount: &tokenty.TokenCreateAccount{Mint: mint}}))
	}
	aliceTA := account.AssociatedAddress(alice.addr, mint)
	bobTA := account.AssociatedAddress(bob.addr, mint)

	assert.Equal(t, ok, execTx(t, exec, alice, &tokenty.TokenAction{MintTo: &tokenty.TokenMintTo{Mint: mint, To: aliceTA, Amount: 500}}))
	//只有 authority 可以增发
	assert.Equal(t, fail, execTx(t, exec, bob, &tokenty.TokenAction{MintTo: &tokenty.TokenMintTo{Mint: mint, To: bobTA, Amount: 500}}))

	assert.Equal(t, ok, execTx(t, exec, alice, &tokenty.TokenAction{Transfer: &tokenty.TokenTransfer{From: aliceTA, To: bobTA, Amount: 200}}))
	//bob 不能动用 alice 的账户
	assert.Equal(t, fail, execTx(t, exec, bob, &tokenty.TokenAction{Transfer: &tokenty.TokenTransfer{From: aliceTA, To: bobTA, Amount: 1}}))
	assert.Equal(t, fail, execTx(t, exec, bob, &tokenty.TokenAction{Transfer: &tokenty.TokenTransfer{From: bobTA, To: aliceTA, Amount: 201}}))

	res, err = query(exec, "GetAccount", &tokenty.ReqAddr{Addr: aliceTA})
	require.NoError(t, err)
	assert.Equal(t, uint64(300), res.(*types.TokenAccount).Amount)
	res, err = query(exec, "GetAssociatedAccount", &tokenty.ReqAssociated{Owner: bob.addr, Mint: mint})
	require.NoError(t, err)
	assert.Equal(t, uint64(200), res.(*types.TokenAccount).Amount)
	assert.Equal(t, bob.addr, res.(*types.TokenAccount).Owner)

	res, err = query(exec, "GetMint", &tokenty.ReqAddr{Addr: mint})
	require.NoError(t, err)
	assert.Equal(t, uint64(500), res.(*types.Mint).Supply)
}
