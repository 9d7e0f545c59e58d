// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	rt "github.com/33cn/rpschain/plugin/dapp/rps/types"
	"github.com/33cn/rpschain/types"
)

func (r *rps) updateIndex(log *rt.ReceiptGame) (kvs []*types.KeyValue) {
	if log.Status != rt.StatusClosed {
		kvs = append(kvs, addStatusIndex(log.Status, log.Addr, log.Index))
		kvs = append(kvs, addAddrIndex(log.Player1, log.Status, log.Addr, log.Index))
		if log.Player2 != "" {
			kvs = append(kvs, addAddrIndex(log.Player2, log.Status, log.Addr, log.Index))
		}
	}
	if log.PrevStatus != rt.StatusClosed {
		kvs = append(kvs, delStatusIndex(log.PrevStatus, log.PrevIndex))
		kvs = append(kvs, delAddrIndex(log.Player1, log.PrevStatus, log.PrevIndex))
		// join 之前的索引里没有 player2
		if log.Player2 != "" && log.PrevStatus != rt.StatusCreated {
			kvs = append(kvs, delAddrIndex(log.Player2, log.PrevStatus, log.PrevIndex))
		}
	}
	return kvs
}

func (r *rps) execLocal(receipt *types.ReceiptData) (*types.LocalDBSet, error) {
	dbSet := &types.LocalDBSet{}
	if receipt.Ty != types.ExecOk {
		return dbSet, nil
	}
	for _, item := range receipt.Logs {
		switch item.Ty {
		case rt.TyLogRpsCreate, rt.TyLogRpsJoin, rt.TyLogRpsReveal,
			rt.TyLogRpsSettle, rt.TyLogRpsClean, rt.TyLogRpsExpire:
			var log rt.ReceiptGame
			if err := types.Decode(item.Log, &log); err != nil {
				return nil, err
			}
			dbSet.KV = append(dbSet.KV, r.updateIndex(&log)...)
		}
	}
	return dbSet, nil
}

// ExecLocal_Create 建立索引
func (r *rps) ExecLocal_Create(payload *rt.RpsCreate, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execLocal(receipt)
}

// ExecLocal_Join 更新索引
func (r *rps) ExecLocal_Join(payload *rt.RpsJoin, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execLocal(receipt)
}

// ExecLocal_Reveal 更新索引
func (r *rps) ExecLocal_Reveal(payload *rt.RpsReveal, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execLocal(receipt)
}

// ExecLocal_Settle 更新索引
func (r *rps) ExecLocal_Settle(payload *rt.RpsSettle, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execLocal(receipt)
}

// ExecLocal_Clean 删除索引
func (r *rps) ExecLocal_Clean(payload *rt.RpsClean, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execLocal(receipt)
}

// ExecLocal_Expire 更新索引
func (r *rps) ExecLocal_Expire(payload *rt.RpsExpire, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execLocal(receipt)
}
