// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import (
	"context"
	"time"

	"github.com/33cn/rpschain/executor"
	"github.com/33cn/rpschain/metrics"
	"github.com/33cn/rpschain/types"
	log "github.com/inconshreveable/log15"
)

var slog = log.New("module", "solo")

// Solo 单节点出块, 每个区块高度对应一个 slot
type Solo struct {
	exec      *executor.Executor
	mempool   *Mempool
	maxTxs    int
	sleepTime time.Duration
}

// NewSolo new
func NewSolo(exec *executor.Executor, mempool *Mempool, cfg *types.Ledger) *Solo {
	return &Solo{
		exec:      exec,
		mempool:   mempool,
		maxTxs:    cfg.MaxTxsPerBlock,
		sleepTime: time.Duration(cfg.BlockTime) * time.Millisecond,
	}
}

// CreateBlock 打包交易池中的交易, 没有交易时也出空块, 让超时的高度向前推进
func (s *Solo) CreateBlock() ([]*types.ReceiptData, error) {
	txs := s.mempool.Pop(s.maxTxs)
	blocktime := time.Now().Unix()
	if last := s.exec.BlockTime(); last >= blocktime {
		blocktime = last + 1
	}
	receipts, err := s.exec.ExecBlock(txs, blocktime)
	if err != nil {
		slog.Error("CreateBlock", "txs", len(txs), "err", err)
		return nil, err
	}
	metrics.Gauge("solo.mempool").Update(int64(s.mempool.Size()))
	if len(txs) > 0 {
		slog.Info("CreateBlock", "height", s.exec.Height(), "txs", len(txs))
	}
	return receipts, nil
}

// Run 按 blockTime 出块, 直到 ctx 结束
func (s *Solo) Run(ctx context.Context) {
	ticker := time.NewTicker(s.sleepTime)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Info("consensus solo closed")
			return
		case <-ticker.C:
			if _, err := s.CreateBlock(); err != nil {
				slog.Error("Run", "err", err)
			}
		}
	}
}
