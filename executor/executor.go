// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 执行区块中的交易, 维护状态数据和本地索引
package executor

import (
	"encoding/binary"
	"sync"
	"time"

	"github.com/33cn/rpschain/account"
	"github.com/33cn/rpschain/common/db"
	"github.com/33cn/rpschain/metrics"
	"github.com/33cn/rpschain/pluginmgr"
	drivers "github.com/33cn/rpschain/system/dapp"
	"github.com/33cn/rpschain/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var (
	elog          = log.New("module", "execs")
	heightKey     = []byte("Exec:Height")
	receiptPrefix = []byte("TxReceipt:")
)

//Executor 单节点的交易执行器, 区块高度即为超时使用的 slot
type Executor struct {
	mu        sync.Mutex
	cfg       *types.Config
	db        db.DB
	state     *StateDB
	local     *LocalDB
	coins     *account.DB
	height    uint64
	blocktime int64
}

//New 创建执行器, 空数据库时写入创世账户
func New(cfg *types.Config, backend db.DB) (*Executor, error) {
	pluginmgr.InitExec(cfg)
	exec := &Executor{
		cfg:   cfg,
		db:    backend,
		state: NewStateDB(backend),
		local: NewLocalDB(backend),
	}
	coins, err := account.NewCoinsAccount(cfg.Ledger.CoinSymbol, exec.state)
	if err != nil {
		return nil, err
	}
	exec.coins = coins.SetRent(cfg.Ledger.RentPerByte, cfg.Ledger.AccountOverhead)

	value, err := backend.Get(heightKey)
	if err == nil && len(value) == 8 {
		exec.height = binary.BigEndian.Uint64(value)
		elog.Info("executor load", "height", exec.height)
		return exec, nil
	}
	if err != nil && err != db.ErrNotFoundInDb {
		return nil, err
	}
	if err := exec.genesis(); err != nil {
		return nil, err
	}
	return exec, nil
}

func (e *Executor) genesis() error {
	for _, g := range e.cfg.Genesis {
		if _, err := e.coins.GenesisInit(g.Addr, g.Amount); err != nil {
			e.state.Rollback()
			return errors.Wrapf(err, "genesis %s", g.Addr)
		}
		elog.Info("genesis", "addr", g.Addr, "amount", g.Amount)
	}
	return e.flush(0)
}

func (e *Executor) flush(height uint64) error {
	batch := e.db.NewBatch(true)
	e.state.Flush(batch)
	e.local.Flush(batch)
	var h [8]byte
	binary.BigEndian.PutUint64(h[:], height)
	batch.Set(heightKey, h[:])
	return batch.Write()
}

//Height 已经执行的高度
func (e *Executor) Height() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.height
}

//BlockTime 最后一个区块的时间
func (e *Executor) BlockTime() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.blocktime
}

//ExecBlock 执行一个区块, 返回每个交易的回执, 失败的交易回执类型为 ExecErr
func (e *Executor) ExecBlock(txs []*types.Transaction, blocktime int64) ([]*types.ReceiptData, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	start := time.Now()
	defer metrics.Timer("executor.block").UpdateSince(start)

	height := e.height + 1
	receipts := make([]*types.ReceiptData, 0, len(txs))
	for i, tx := range txs {
		receipt, save := e.execTx(tx, height, blocktime, i)
		receipt.Height = height
		receipt.Index = uint32(i)
		if receipt.Ty == types.ExecOk {
			metrics.Counter("executor.tx.ok").Inc(1)
		} else {
			metrics.Counter("executor.tx.err").Inc(1)
		}
		if save {
			if err := e.local.Set(ReceiptKey(tx.Hash()), types.Encode(receipt)); err != nil {
				return nil, err
			}
		}
		receipts = append(receipts, receipt)
	}
	if err := e.flush(height); err != nil {
		elog.Error("ExecBlock flush", "height", height, "err", err)
		return nil, err
	}
	e.height = height
	e.blocktime = blocktime
	elog.Debug("ExecBlock", "height", height, "txs", len(txs), "cost", time.Since(start))
	return receipts, nil
}

// save 为 false 时回执不保存, 保证同一交易的回执不会被伪造的交易覆盖
func (e *Executor) execTx(tx *types.Transaction, height uint64, blocktime int64, index int) (*types.ReceiptData, bool) {
	if err := tx.Check(height, blocktime); err != nil {
		return types.NewErrReceipt(err), false
	}
	if _, err := e.local.Get(ReceiptKey(tx.Hash())); err == nil {
		return types.NewErrReceipt(types.ErrTxDup), false
	}
	driver, err := e.loadDriver(string(tx.Execer), height, blocktime)
	if err != nil {
		return types.NewErrReceipt(err), true
	}
	if err := driver.CheckTx(tx, index); err != nil {
		return types.NewErrReceipt(err), true
	}
	e.state.Begin()
	receipt, err := driver.Exec(tx, index)
	if err != nil {
		e.state.Rollback()
		elog.Debug("exec tx failed", "execer", string(tx.Execer), "action", driver.GetActionName(tx), "err", err)
		return types.NewErrReceipt(err), true
	}
	if err := e.state.Commit(); err != nil {
		return types.NewErrReceipt(err), true
	}
	if receipt == nil {
		receipt = &types.Receipt{Ty: types.ExecOk}
	}
	data := &types.ReceiptData{Ty: receipt.Ty, Height: height, Index: uint32(index), Logs: receipt.Logs}

	e.local.Begin()
	set, err := driver.ExecLocal(tx, data, index)
	if err != nil {
		e.local.Rollback()
		elog.Error("ExecLocal", "execer", string(tx.Execer), "err", err)
		return data, true
	}
	for _, kv := range set.KV {
		if err := e.local.Set(kv.Key, kv.Value); err != nil {
			e.local.Rollback()
			return data, true
		}
	}
	if err := e.local.Commit(); err != nil {
		elog.Error("ExecLocal commit", "execer", string(tx.Execer), "err", err)
	}
	return data, true
}

func (e *Executor) loadDriver(name string, height uint64, blocktime int64) (drivers.Driver, error) {
	driver, err := drivers.LoadDriver(name)
	if err != nil {
		return nil, errors.Wrapf(err, "execer %s", name)
	}
	driver.SetEnv(height, blocktime)
	driver.SetConfig(e.cfg)
	driver.SetCoinsAccount(e.coins)
	driver.SetStateDB(e.state)
	driver.SetLocalDB(e.local)
	return driver, nil
}

//Query 调用执行器的 Query_funcName, params 为 json
func (e *Executor) Query(execer, funcName string, params []byte) (interface{}, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	driver, err := e.loadDriver(execer, e.height, e.blocktime)
	if err != nil {
		return nil, err
	}
	return driver.Query(funcName, params)
}

//GetBalance 原生币余额
func (e *Executor) GetBalance(addr string) *types.Account {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.coins.LoadAccount(addr)
}

//GetTokenAccount token 账户
func (e *Executor) GetTokenAccount(addr string) (*types.TokenAccount, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return account.NewTokenDB(e.state, e.coins).LoadAccount(addr)
}

//GetReceipt 交易回执
func (e *Executor) GetReceipt(hash []byte) (*types.ReceiptData, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	value, err := e.local.Get(ReceiptKey(hash))
	if err != nil {
		return nil, err
	}
	var receipt types.ReceiptData
	if err := types.Decode(value, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

//ReceiptKey 交易回执的 key
func ReceiptKey(hash []byte) []byte {
	key := make([]byte, 0, len(receiptPrefix)+len(hash))
	key = append(key, receiptPrefix...)
	return append(key, hash...)
}
