// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package account 实现账本资产操作

	1. load from db
	2. save to db
	3. KVSet
	4. Transfer
	5. 租金: Allocate / Release
	6. token 账户
*/
package account

import (
	"strings"

	dbm "github.com/33cn/rpschain/common/db"
	"github.com/33cn/rpschain/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var alog = log.New("module", "account")

// DB for account
type DB struct {
	db               dbm.KVDB
	accountKeyPerfix []byte
	symbol           string
	rentPerByte      uint64
	accountOverhead  uint64
}

//NewCoinsAccount 原生币账户
func NewCoinsAccount(symbol string, db dbm.KVDB) (*DB, error) {
	if symbol == "" || strings.ContainsRune(symbol, '-') {
		return nil, types.ErrTokenSymbol
	}
	acc := &DB{
		accountKeyPerfix: []byte("mavl-coins-" + symbol + "-"),
		symbol:           symbol,
		rentPerByte:      types.DefaultRentPerByte,
		accountOverhead:  types.DefaultAccountOverhead,
	}
	acc.SetDB(db)
	return acc, nil
}

//SetDB 设置db
func (acc *DB) SetDB(db dbm.KVDB) *DB {
	acc.db = db
	return acc
}

//SetRent 设置租金参数
func (acc *DB) SetRent(rentPerByte, accountOverhead uint64) *DB {
	acc.rentPerByte = rentPerByte
	acc.accountOverhead = accountOverhead
	return acc
}

//Symbol 币种
func (acc *DB) Symbol() string {
	return acc.symbol
}

//LoadAccount 读取账户, 不存在时余额为0
func (acc *DB) LoadAccount(addr string) *types.Account {
	value, err := acc.db.Get(acc.AccountKey(addr))
	if err != nil || len(value) == 0 {
		return &types.Account{Currency: acc.symbol, Addr: addr}
	}
	var acc1 types.Account
	err = types.Decode(value, &acc1)
	if err != nil {
		panic(err) //数据库已经损坏
	}
	return &acc1
}

//CheckTransfer 检查余额
func (acc *DB) CheckTransfer(from, to string, amount uint64) error {
	if amount == 0 {
		return types.ErrAmount
	}
	if acc.LoadAccount(from).Balance < amount {
		return types.ErrNoBalance
	}
	return nil
}

//Transfer 转账
func (acc *DB) Transfer(from, to string, amount uint64) (*types.Receipt, error) {
	return acc.transfer(from, to, amount, types.TyLogTransfer)
}

func (acc *DB) transfer(from, to string, amount uint64, ty uint32) (*types.Receipt, error) {
	if amount == 0 {
		return nil, types.ErrAmount
	}
	accFrom := acc.LoadAccount(from)
	accTo := acc.LoadAccount(to)
	if accFrom.Addr == accTo.Addr {
		return nil, types.ErrSendSameToRecv
	}
	if accFrom.Balance < amount {
		return nil, errors.Wrapf(types.ErrNoBalance, "addr %s balance %d need %d", from, accFrom.Balance, amount)
	}
	toBalance, err := safeAdd(accTo.Balance, amount)
	if err != nil {
		return nil, err
	}
	copyfrom := *accFrom
	copyto := *accTo

	accFrom.Balance -= amount
	accTo.Balance = toBalance

	receiptBalanceFrom := &types.ReceiptAccountTransfer{
		Prev:    &copyfrom,
		Current: accFrom,
	}
	receiptBalanceTo := &types.ReceiptAccountTransfer{
		Prev:    &copyto,
		Current: accTo,
	}

	acc.SaveAccount(accFrom)
	acc.SaveAccount(accTo)
	return acc.transferReceipt(ty, accFrom, accTo, receiptBalanceFrom, receiptBalanceTo), nil
}

//GenesisInit 创世账户
func (acc *DB) GenesisInit(addr string, amount uint64) (*types.Receipt, error) {
	if amount == 0 {
		return nil, types.ErrAmount
	}
	accTo := acc.LoadAccount(addr)
	copyto := *accTo
	balance, err := safeAdd(accTo.Balance, amount)
	if err != nil {
		return nil, err
	}
	accTo.Balance = balance
	receiptBalanceTo := &types.ReceiptAccountTransfer{
		Prev:    &copyto,
		Current: accTo,
	}
	acc.SaveAccount(accTo)
	log1 := &types.ReceiptLog{
		Ty:  types.TyLogGenesis,
		Log: types.Encode(receiptBalanceTo),
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   acc.GetKVSet(accTo),
		Logs: []*types.ReceiptLog{log1},
	}, nil
}

func (acc *DB) transferReceipt(ty uint32, accFrom, accTo *types.Account, receiptFrom, receiptTo *types.ReceiptAccountTransfer) *types.Receipt {
	log1 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptFrom),
	}
	log2 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptTo),
	}
	kv := acc.GetKVSet(accFrom)
	kv = append(kv, acc.GetKVSet(accTo)...)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv,
		Logs: []*types.ReceiptLog{log1, log2},
	}
}

//SaveAccount 保存账户
func (acc *DB) SaveAccount(acc1 *types.Account) {
	set := acc.GetKVSet(acc1)
	for i := 0; i < len(set); i++ {
		err := acc.db.Set(set[i].Key, set[i].Value)
		if err != nil {
			alog.Error("SaveAccount", "addr", acc1.Addr, "err", err)
		}
	}
}

//GetKVSet 账户的kv
func (acc *DB) GetKVSet(acc1 *types.Account) (kvset []*types.KeyValue) {
	value := types.Encode(acc1)
	kvset = append(kvset, &types.KeyValue{
		Key:   acc.AccountKey(acc1.Addr),
		Value: value,
	})
	return kvset
}

//AccountKey 账户的 key
func (acc *DB) AccountKey(address string) (key []byte) {
	key = make([]byte, 0, len(acc.accountKeyPerfix)+len(address))
	key = append(key, acc.accountKeyPerfix...)
	key = append(key, []byte(address)...)
	return key
}

func safeAdd(balance, amount uint64) (uint64, error) {
	if balance+amount < amount || balance+amount > types.MaxCoin {
		return balance, types.ErrOverflow
	}
	return balance + amount, nil
}

func safeMul(a, b uint64) (uint64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	c := a * b
	if c/b != a {
		return 0, types.ErrOverflow
	}
	return c, nil
}
