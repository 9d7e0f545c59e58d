// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import (
	"container/list"
	"sync"

	"github.com/33cn/rpschain/metrics"
	"github.com/33cn/rpschain/types"
	"github.com/pkg/errors"
)

// mempool 错误
var (
	ErrTxExist = errors.New("ErrTxExist")
	ErrMemFull = errors.New("ErrMemFull")
)

// Mempool 按到达顺序排队的交易池, 同一个哈希只保留一个
type Mempool struct {
	mu      sync.Mutex
	m       map[string]*list.Element
	l       *list.List
	maxsize int
}

// NewMempool 创建交易池
func NewMempool(maxsize int) *Mempool {
	return &Mempool{
		m:       make(map[string]*list.Element),
		l:       list.New(),
		maxsize: maxsize,
	}
}

// Size 交易数目
func (mem *Mempool) Size() int {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	return len(mem.m)
}

// Exist 是否存在
func (mem *Mempool) Exist(hash []byte) bool {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	_, ok := mem.m[string(hash)]
	return ok
}

// Push 检查签名和过期后加入队尾
func (mem *Mempool) Push(tx *types.Transaction, height uint64, blocktime int64) error {
	//下一个区块打包, 用下一个区块的高度判断过期
	if err := tx.Check(height+1, blocktime); err != nil {
		return err
	}
	if types.LoadExecutorType(string(tx.Execer)) == nil {
		return errors.Wrapf(types.ErrExecNotFound, "execer %s", string(tx.Execer))
	}
	hash := string(tx.Hash())
	mem.mu.Lock()
	defer mem.mu.Unlock()
	if _, ok := mem.m[hash]; ok {
		return ErrTxExist
	}
	if len(mem.m) >= mem.maxsize {
		return ErrMemFull
	}
	mem.m[hash] = mem.l.PushBack(tx)
	metrics.Meter("mempool.tx").Mark(1)
	return nil
}

// Pop 从队头取出最多 count 个交易
func (mem *Mempool) Pop(count int) []*types.Transaction {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	var txs []*types.Transaction
	for e := mem.l.Front(); e != nil && len(txs) < count; e = mem.l.Front() {
		tx := mem.l.Remove(e).(*types.Transaction)
		delete(mem.m, string(tx.Hash()))
		txs = append(txs, tx)
	}
	return txs
}
