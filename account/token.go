// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"github.com/33cn/rpschain/common/address"
	dbm "github.com/33cn/rpschain/common/db"
	"github.com/33cn/rpschain/types"
	"github.com/pkg/errors"
)

const (
	mintKeyPrefix    = "mavl-token-mint-"
	accountKeyPrefix = "mavl-token-account-"
)

//TokenDB token 的托管与转账, 存储押金由 coins 支付
type TokenDB struct {
	db    dbm.KVDB
	coins *DB
}

//NewTokenDB new
func NewTokenDB(db dbm.KVDB, coins *DB) *TokenDB {
	return &TokenDB{db: db, coins: coins}
}

//MintAddress 创建者和 symbol 决定 mint 地址
func MintAddress(creator, symbol string) string {
	return address.DeriveAddress(types.TokenX, "mint", []byte(creator), []byte(symbol))
}

//AssociatedAddress owner 持有 mint 的默认 token 账户地址
func AssociatedAddress(owner, mint string) string {
	return address.DeriveAddress(types.TokenX, "account", []byte(owner), []byte(mint))
}

//MintKey key
func MintKey(addr string) []byte {
	return []byte(mintKeyPrefix + addr)
}

//TokenAccountKey key
func TokenAccountKey(addr string) []byte {
	return []byte(accountKeyPrefix + addr)
}

//LoadMint 读取币种
func (t *TokenDB) LoadMint(addr string) (*types.Mint, error) {
	value, err := t.db.Get(MintKey(addr))
	if err != nil || len(value) == 0 {
		return nil, errors.Wrapf(types.ErrMintNotExist, "mint %s", addr)
	}
	var mint types.Mint
	if err := types.Decode(value, &mint); err != nil {
		panic(err)
	}
	return &mint, nil
}

//LoadAccount 读取 token 账户
func (t *TokenDB) LoadAccount(addr string) (*types.TokenAccount, error) {
	value, err := t.db.Get(TokenAccountKey(addr))
	if err != nil || len(value) == 0 {
		return nil, errors.Wrapf(types.ErrTokenAccountNotExist, "account %s", addr)
	}
	var acc types.TokenAccount
	if err := types.Decode(value, &acc); err != nil {
		panic(err)
	}
	return &acc, nil
}

//Balance 余额
func (t *TokenDB) Balance(addr string) (uint64, error) {
	acc, err := t.LoadAccount(addr)
	if err != nil {
		return 0, err
	}
	return acc.Amount, nil
}

func (t *TokenDB) saveMint(mint *types.Mint) *types.KeyValue {
	kv := &types.KeyValue{Key: MintKey(mint.Addr), Value: types.Encode(mint)}
	t.set(kv)
	return kv
}

func (t *TokenDB) saveAccount(acc *types.TokenAccount) *types.KeyValue {
	kv := &types.KeyValue{Key: TokenAccountKey(acc.Addr), Value: types.Encode(acc)}
	t.set(kv)
	return kv
}

func (t *TokenDB) set(kv *types.KeyValue) {
	if err := t.db.Set(kv.Key, kv.Value); err != nil {
		alog.Error("token set", "key", string(kv.Key), "err", err)
	}
}

//CreateMint 创建币种, payer 支付存储押金
func (t *TokenDB) CreateMint(payer, addr, symbol string, decimals uint32, authority string) (*types.Receipt, error) {
	if symbol == "" || decimals > 18 {
		return nil, types.ErrTokenSymbol
	}
	if _, err := t.LoadMint(addr); err == nil {
		return nil, errors.Wrapf(types.ErrMintExists, "mint %s", addr)
	}
	receipt, err := t.coins.Allocate(payer, addr, types.MintSpace)
	if err != nil {
		return nil, err
	}
	mint := &types.Mint{Addr: addr, Symbol: symbol, Decimals: decimals, Authority: authority}
	kv := t.saveMint(mint)
	log := &types.ReceiptLog{Ty: types.TyLogTokenCreateMint, Log: types.Encode(&types.ReceiptMint{Current: mint})}
	return types.MergeReceipt(receipt, &types.Receipt{Ty: types.ExecOk, KV: []*types.KeyValue{kv}, Logs: []*types.ReceiptLog{log}}), nil
}

//InitAccount 创建 token 账户, payer 支付存储押金, owner 拥有转出权限
func (t *TokenDB) InitAccount(payer, addr, mint, owner string) (*types.Receipt, error) {
	if _, err := t.LoadMint(mint); err != nil {
		return nil, err
	}
	if _, err := t.LoadAccount(addr); err == nil {
		return nil, errors.Wrapf(types.ErrTokenAccountExists, "account %s", addr)
	}
	receipt, err := t.coins.Allocate(payer, addr, types.TokenAccountSpace)
	if err != nil {
		return nil, err
	}
	acc := &types.TokenAccount{Addr: addr, Mint: mint, Owner: owner}
	kv := t.saveAccount(acc)
	log := &types.ReceiptLog{Ty: types.TyLogTokenInitAccount, Log: types.Encode(&types.ReceiptTokenAccount{Current: acc})}
	return types.MergeReceipt(receipt, &types.Receipt{Ty: types.ExecOk, KV: []*types.KeyValue{kv}, Logs: []*types.ReceiptLog{log}}), nil
}

//MintTo 增发到 to, 只有 mint 的 authority 可以操作
func (t *TokenDB) MintTo(mintAddr string, authority types.Owner, to string, amount uint64) (*types.Receipt, error) {
	if amount == 0 {
		return nil, types.ErrAmount
	}
	mint, err := t.LoadMint(mintAddr)
	if err != nil {
		return nil, err
	}
	if mint.Authority != authority.Address() {
		return nil, errors.Wrapf(types.ErrMintAuthority, "mint %s", mintAddr)
	}
	acc, err := t.LoadAccount(to)
	if err != nil {
		return nil, err
	}
	if acc.Mint != mint.Addr {
		return nil, errors.Wrapf(types.ErrMintMismatch, "account %s mint %s", to, acc.Mint)
	}
	if mint.Supply+amount < amount || acc.Amount+amount < amount {
		return nil, types.ErrOverflow
	}
	prevMint, prevAcc := *mint, *acc
	mint.Supply += amount
	acc.Amount += amount
	kv1 := t.saveMint(mint)
	kv2 := t.saveAccount(acc)
	logs := []*types.ReceiptLog{
		{Ty: types.TyLogTokenMint, Log: types.Encode(&types.ReceiptMint{Prev: &prevMint, Current: mint})},
		{Ty: types.TyLogTokenMint, Log: types.Encode(&types.ReceiptTokenAccount{Prev: &prevAcc, Current: acc})},
	}
	return &types.Receipt{Ty: types.ExecOk, KV: []*types.KeyValue{kv1, kv2}, Logs: logs}, nil
}

//Transfer 转账, owner 必须是 from 账户的所有者, 两边必须是同一种 token
func (t *TokenDB) Transfer(from, to string, owner types.Owner, amount uint64) (*types.Receipt, error) {
	if amount == 0 {
		return nil, types.ErrAmount
	}
	if from == to {
		return nil, types.ErrSendSameToRecv
	}
	accFrom, err := t.LoadAccount(from)
	if err != nil {
		return nil, err
	}
	if accFrom.Owner != owner.Address() {
		return nil, errors.Wrapf(types.ErrTokenOwner, "account %s owner %s", from, owner.Address())
	}
	accTo, err := t.LoadAccount(to)
	if err != nil {
		return nil, err
	}
	if accFrom.Mint != accTo.Mint {
		return nil, errors.Wrapf(types.ErrMintMismatch, "from mint %s to mint %s", accFrom.Mint, accTo.Mint)
	}
	if accFrom.Amount < amount {
		return nil, errors.Wrapf(types.ErrNoBalance, "account %s amount %d need %d", from, accFrom.Amount, amount)
	}
	if accTo.Amount+amount < amount {
		return nil, types.ErrOverflow
	}
	prevFrom, prevTo := *accFrom, *accTo
	accFrom.Amount -= amount
	accTo.Amount += amount
	kv1 := t.saveAccount(accFrom)
	kv2 := t.saveAccount(accTo)
	logs := []*types.ReceiptLog{
		{Ty: types.TyLogTokenTransfer, Log: types.Encode(&types.ReceiptTokenAccount{Prev: &prevFrom, Current: accFrom})},
		{Ty: types.TyLogTokenTransfer, Log: types.Encode(&types.ReceiptTokenAccount{Prev: &prevTo, Current: accTo})},
	}
	return &types.Receipt{Ty: types.ExecOk, KV: []*types.KeyValue{kv1, kv2}, Logs: logs}, nil
}

//CloseAccount 关闭余额为0的账户, 存储押金退给 dest
func (t *TokenDB) CloseAccount(addr string, owner types.Owner, dest string) (*types.Receipt, error) {
	acc, err := t.LoadAccount(addr)
	if err != nil {
		return nil, err
	}
	if acc.Owner != owner.Address() {
		return nil, errors.Wrapf(types.ErrTokenOwner, "account %s owner %s", addr, owner.Address())
	}
	if acc.Amount != 0 {
		return nil, errors.Wrapf(types.ErrNonZeroBalance, "account %s amount %d", addr, acc.Amount)
	}
	kv := &types.KeyValue{Key: TokenAccountKey(addr)}
	t.set(kv)
	log := &types.ReceiptLog{Ty: types.TyLogTokenCloseAccount, Log: types.Encode(&types.ReceiptTokenAccount{Prev: acc})}
	receipt := &types.Receipt{Ty: types.ExecOk, KV: []*types.KeyValue{kv}, Logs: []*types.ReceiptLog{log}}
	if t.coins.LoadAccount(addr).Balance == 0 {
		return receipt, nil
	}
	refund, err := t.coins.Release(addr, dest)
	if err != nil {
		return nil, err
	}
	return types.MergeReceipt(receipt, refund), nil
}
