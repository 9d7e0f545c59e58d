// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"testing"

	"github.com/33cn/rpschain/common/address"
	"github.com/33cn/rpschain/common/crypto"
	"github.com/33cn/rpschain/common/crypto/secp256k1"
	"github.com/33cn/rpschain/common/db"
	"github.com/33cn/rpschain/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	addr1 = address.ExecAddress("user1")
	addr2 = address.ExecAddress("user2")
	addr3 = address.ExecAddress("user3")
)

func GenerAccDb(t *testing.T) *DB {
	//构造账户数据库
	stroedb, err := db.NewGoMemDB("gomemdb", "test", 128)
	require.NoError(t, err)
	accCoin, err := NewCoinsAccount("rps", stroedb)
	require.NoError(t, err)
	accCoin.SetRent(10, 100)
	return accCoin
}

func (acc *DB) GenerAccData() {
	// 加入账户
	acc.SaveAccount(&types.Account{Balance: 1000 * 1e8, Addr: addr1})
	acc.SaveAccount(&types.Account{Balance: 900 * 1e8, Addr: addr2})
}

func TestNewCoinsAccount(t *testing.T) {
	_, err := NewCoinsAccount("a-b", nil)
	assert.Equal(t, types.ErrTokenSymbol, err)
	_, err = NewCoinsAccount("", nil)
	assert.Equal(t, types.ErrTokenSymbol, err)
}

func TestTransfer(t *testing.T) {
	accCoin := GenerAccDb(t)
	accCoin.GenerAccData()

	require.NoError(t, accCoin.CheckTransfer(addr1, addr2, 10*1e8))
	assert.Equal(t, types.ErrNoBalance, accCoin.CheckTransfer(addr3, addr2, 1))

	receipt, err := accCoin.Transfer(addr1, addr2, 10*1e8)
	require.NoError(t, err)
	assert.Equal(t, uint32(types.ExecOk), receipt.Ty)
	assert.Equal(t, 2, len(receipt.KV))
	assert.Equal(t, 2, len(receipt.Logs))
	assert.Equal(t, uint64(990*1e8), accCoin.LoadAccount(addr1).Balance)
	assert.Equal(t, uint64(910*1e8), accCoin.LoadAccount(addr2).Balance)

	var log types.ReceiptAccountTransfer
	require.NoError(t, types.Decode(receipt.Logs[0].Log, &log))
	assert.Equal(t, uint64(1000*1e8), log.Prev.Balance)
	assert.Equal(t, uint64(990*1e8), log.Current.Balance)

	_, err = accCoin.Transfer(addr1, addr1, 1)
	assert.Equal(t, types.ErrSendSameToRecv, err)
	_, err = accCoin.Transfer(addr1, addr2, 0)
	assert.Equal(t, types.ErrAmount, err)
	_, err = accCoin.Transfer(addr3, addr2, 1)
	assert.ErrorIs(t, err, types.ErrNoBalance)
}

func TestGenesisInit(t *testing.T) {
	accCoin := GenerAccDb(t)
	receipt, err := accCoin.GenesisInit(addr3, 100)
	require.NoError(t, err)
	assert.Equal(t, uint32(types.TyLogGenesis), receipt.Logs[0].Ty)
	assert.Equal(t, uint64(100), accCoin.LoadAccount(addr3).Balance)

	_, err = accCoin.GenesisInit(addr3, types.MaxCoin)
	assert.Equal(t, types.ErrOverflow, err)
}

func TestRent(t *testing.T) {
	accCoin := GenerAccDb(t)
	accCoin.GenerAccData()

	rent, err := accCoin.MinimumBalance(50)
	require.NoError(t, err)
	assert.Equal(t, uint64(1500), rent)

	receipt, err := accCoin.Allocate(addr1, addr3, 50)
	require.NoError(t, err)
	assert.Equal(t, uint32(types.TyLogRent), receipt.Logs[0].Ty)
	assert.Equal(t, uint64(1500), accCoin.LoadAccount(addr3).Balance)
	assert.Equal(t, uint64(1000*1e8-1500), accCoin.LoadAccount(addr1).Balance)

	//押金已经足够, 不再转账
	receipt, err = accCoin.Allocate(addr1, addr3, 50)
	require.NoError(t, err)
	assert.Empty(t, receipt.KV)
	assert.Equal(t, uint64(1500), accCoin.LoadAccount(addr3).Balance)

	receipt, err = accCoin.Release(addr3, addr2)
	require.NoError(t, err)
	assert.Equal(t, uint32(types.TyLogRentBack), receipt.Logs[0].Ty)
	assert.Equal(t, uint64(0), accCoin.LoadAccount(addr3).Balance)
	assert.Equal(t, uint64(900*1e8+1500), accCoin.LoadAccount(addr2).Balance)

	_, err = accCoin.Release(addr3, addr2)
	assert.ErrorIs(t, err, types.ErrAccountNotExist)

	//事先转入的余额计入押金, 只补差额
	_, err = accCoin.Transfer(addr2, addr3, 100)
	require.NoError(t, err)
	_, err = accCoin.Allocate(addr1, addr3, 50)
	require.NoError(t, err)
	assert.Equal(t, uint64(1500), accCoin.LoadAccount(addr3).Balance)
	assert.Equal(t, uint64(1000*1e8-1500-1400), accCoin.LoadAccount(addr1).Balance)

	accCoin.SetRent(1<<62, 100)
	_, err = accCoin.MinimumBalance(50)
	assert.Equal(t, types.ErrOverflow, err)
}

func signer(t *testing.T) types.Signer {
	c, err := crypto.New(secp256k1.Name)
	require.NoError(t, err)
	priv, err := c.GenKey()
	require.NoError(t, err)
	tx := types.CreateTx(types.TokenX, &types.KeyValue{})
	tx.Sign(uint32(secp256k1.ID), priv)
	s, err := tx.Signer()
	require.NoError(t, err)
	return s
}
