// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"testing"

	"github.com/33cn/rpschain/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenEnv struct {
	coins   *DB
	token   *TokenDB
	creator types.Signer
	alice   types.Signer
	mint    string
	aliceTA string
}

func newTokenEnv(t *testing.T) *tokenEnv {
	coins := GenerAccDb(t)
	env := &tokenEnv{coins: coins, token: NewTokenDB(coins.db, coins), creator: signer(t), alice: signer(t)}
	_, err := coins.GenesisInit(env.creator.Address(), 1e8)
	require.NoError(t, err)
	_, err = coins.GenesisInit(env.alice.Address(), 1e8)
	require.NoError(t, err)

	env.mint = MintAddress(env.creator.Address(), "M")
	_, err = env.token.CreateMint(env.creator.Address(), env.mint, "M", 2, env.creator.Address())
	require.NoError(t, err)
	env.aliceTA = AssociatedAddress(env.alice.Address(), env.mint)
	_, err = env.token.InitAccount(env.alice.Address(), env.aliceTA, env.mint, env.alice.Address())
	require.NoError(t, err)
	_, err = env.token.MintTo(env.mint, env.creator, env.aliceTA, 100)
	require.NoError(t, err)
	return env
}

func TestTokenMint(t *testing.T) {
	env := newTokenEnv(t)
	mint, err := env.token.LoadMint(env.mint)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), mint.Supply)
	assert.Equal(t, "M", mint.Symbol)

	bal, err := env.token.Balance(env.aliceTA)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), bal)

	// mint 和 token 账户都交了押金
	rent, _ := env.coins.MinimumBalance(types.MintSpace)
	assert.Equal(t, rent, env.coins.LoadAccount(env.mint).Balance)
	rent, _ = env.coins.MinimumBalance(types.TokenAccountSpace)
	assert.Equal(t, rent, env.coins.LoadAccount(env.aliceTA).Balance)

	_, err = env.token.CreateMint(env.creator.Address(), env.mint, "M", 2, env.creator.Address())
	assert.ErrorIs(t, err, types.ErrMintExists)
	_, err = env.token.MintTo(env.mint, env.alice, env.aliceTA, 1)
	assert.ErrorIs(t, err, types.ErrMintAuthority)
	_, err = env.token.InitAccount(env.alice.Address(), env.aliceTA, env.mint, env.alice.Address())
	assert.ErrorIs(t, err, types.ErrTokenAccountExists)
	_, err = env.token.InitAccount(env.alice.Address(), "nomint", "nosuchmint", env.alice.Address())
	assert.ErrorIs(t, err, types.ErrMintNotExist)
}

func TestTokenTransfer(t *testing.T) {
	env := newTokenEnv(t)
	authority := types.NewProgramAuthority("rps", "authority", []byte("g"))
	escrow := AssociatedAddress(authority.Address(), env.mint)
	_, err := env.token.InitAccount(env.alice.Address(), escrow, env.mint, authority.Address())
	require.NoError(t, err)

	receipt, err := env.token.Transfer(env.aliceTA, escrow, env.alice, 40)
	require.NoError(t, err)
	assert.Equal(t, 2, len(receipt.KV))
	bal, _ := env.token.Balance(escrow)
	assert.Equal(t, uint64(40), bal)

	// 签名者不能动用 program 账户
	_, err = env.token.Transfer(escrow, env.aliceTA, env.alice, 1)
	assert.ErrorIs(t, err, types.ErrTokenOwner)
	_, err = env.token.Transfer(escrow, env.aliceTA, authority, 41)
	assert.ErrorIs(t, err, types.ErrNoBalance)
	_, err = env.token.Transfer(escrow, env.aliceTA, authority, 40)
	require.NoError(t, err)

	// 不同币种
	other := MintAddress(env.creator.Address(), "N")
	_, err = env.token.CreateMint(env.creator.Address(), other, "N", 0, env.creator.Address())
	require.NoError(t, err)
	otherTA := AssociatedAddress(env.alice.Address(), other)
	_, err = env.token.InitAccount(env.alice.Address(), otherTA, other, env.alice.Address())
	require.NoError(t, err)
	_, err = env.token.Transfer(env.aliceTA, otherTA, env.alice, 1)
	assert.ErrorIs(t, err, types.ErrMintMismatch)
	_, err = env.token.Transfer(env.aliceTA, env.aliceTA, env.alice, 1)
	assert.Equal(t, types.ErrSendSameToRecv, err)
	_, err = env.token.Transfer(env.aliceTA, otherTA, env.alice, 0)
	assert.Equal(t, types.ErrAmount, err)
}

func TestTokenCloseAccount(t *testing.T) {
	env := newTokenEnv(t)
	_, err := env.token.CloseAccount(env.aliceTA, env.alice, env.creator.Address())
	assert.ErrorIs(t, err, types.ErrNonZeroBalance)

	authority := types.NewProgramAuthority("rps", "authority", []byte("g"))
	escrow := AssociatedAddress(authority.Address(), env.mint)
	_, err = env.token.InitAccount(env.alice.Address(), escrow, env.mint, authority.Address())
	require.NoError(t, err)
	rent := env.coins.LoadAccount(escrow).Balance
	before := env.coins.LoadAccount(env.creator.Address()).Balance

	_, err = env.token.CloseAccount(escrow, env.alice, env.creator.Address())
	assert.ErrorIs(t, err, types.ErrTokenOwner)
	_, err = env.token.CloseAccount(escrow, authority, env.creator.Address())
	require.NoError(t, err)
	_, err = env.token.LoadAccount(escrow)
	assert.ErrorIs(t, err, types.ErrTokenAccountNotExist)
	assert.Equal(t, before+rent, env.coins.LoadAccount(env.creator.Address()).Balance)
}
