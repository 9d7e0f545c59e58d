// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package node 把存储, 执行器, 出块和 rpc 组装成一个节点
package node

import (
	"context"
	"sync"

	"github.com/33cn/rpschain/common/db"
	"github.com/33cn/rpschain/executor"
	"github.com/33cn/rpschain/metrics"
	"github.com/33cn/rpschain/rpc"
	"github.com/33cn/rpschain/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var nlog = log.New("module", "node")

// 交易池默认容量
const defaultMempoolSize = 10240

// Node 单节点
type Node struct {
	cfg     *types.Config
	db      db.DB
	exec    *executor.Executor
	mempool *Mempool
	solo    *Solo
	rpc     *rpc.RPC
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// New 打开数据库, 加载执行器
func New(cfg *types.Config) (*Node, error) {
	backend, err := db.NewDB(cfg.Title, cfg.Store.Driver, cfg.Store.DbPath, int(cfg.Store.DbCache))
	if err != nil {
		return nil, errors.Wrapf(err, "open db %s", cfg.Store.Driver)
	}
	exec, err := executor.New(cfg, backend)
	if err != nil {
		backend.Close()
		return nil, err
	}
	mempool := NewMempool(defaultMempoolSize)
	n := &Node{
		cfg:     cfg,
		db:      backend,
		exec:    exec,
		mempool: mempool,
		solo:    NewSolo(exec, mempool, cfg.Ledger),
	}
	n.rpc = rpc.New(cfg.RPC, n)
	return n, nil
}

// Start 开始出块以及 rpc 监听, 返回 jrpc 端口
func (n *Node) Start() (int, error) {
	port, err := n.rpc.Listen()
	if err != nil {
		return 0, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	n.cancel = cancel
	metrics.StartMetrics(ctx, n.cfg.Metrics)
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		n.solo.Run(ctx)
	}()
	nlog.Info("node start", "title", n.cfg.Title, "height", n.exec.Height())
	return port, nil
}

// Close 停止出块, 关闭 rpc 和数据库
func (n *Node) Close() {
	if n.cancel != nil {
		n.cancel()
	}
	n.wg.Wait()
	n.rpc.Close()
	n.db.Close()
	nlog.Info("node closed")
}

// Solo 出块
func (n *Node) Solo() *Solo {
	return n.solo
}

// SendTx 交易进入交易池, 返回交易哈希
func (n *Node) SendTx(tx *types.Transaction) ([]byte, error) {
	if err := n.mempool.Push(tx, n.exec.Height(), n.exec.BlockTime()); err != nil {
		nlog.Debug("SendTx", "err", err)
		return nil, err
	}
	return tx.Hash(), nil
}

// Query 执行器查询
func (n *Node) Query(execer, funcName string, params []byte) (interface{}, error) {
	return n.exec.Query(execer, funcName, params)
}

// GetHeight 当前高度
func (n *Node) GetHeight() uint64 {
	return n.exec.Height()
}

// GetBalance 原生币余额
func (n *Node) GetBalance(addr string) *types.Account {
	return n.exec.GetBalance(addr)
}

// GetTokenAccount token 账户
func (n *Node) GetTokenAccount(addr string) (*types.TokenAccount, error) {
	return n.exec.GetTokenAccount(addr)
}

// GetReceipt 交易回执
func (n *Node) GetReceipt(hash []byte) (*types.ReceiptData, error) {
	return n.exec.GetReceipt(hash)
}
