// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	rt "github.com/33cn/rpschain/plugin/dapp/rps/types"
	"github.com/33cn/rpschain/types"
)

// Exec_Create 创建游戏
func (r *rps) Exec_Create(payload *rt.RpsCreate, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := NewAction(r, tx, index)
	if err != nil {
		return nil, err
	}
	return action.GameCreate(payload)
}

// Exec_Join 加入游戏
func (r *rps) Exec_Join(payload *rt.RpsJoin, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := NewAction(r, tx, index)
	if err != nil {
		return nil, err
	}
	return action.GameJoin(payload)
}

// Exec_Reveal 开奖
func (r *rps) Exec_Reveal(payload *rt.RpsReveal, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := NewAction(r, tx, index)
	if err != nil {
		return nil, err
	}
	return action.GameReveal(payload)
}

// Exec_Settle 结算
func (r *rps) Exec_Settle(payload *rt.RpsSettle, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := NewAction(r, tx, index)
	if err != nil {
		return nil, err
	}
	return action.GameSettle(payload)
}

// Exec_Clean 清理
func (r *rps) Exec_Clean(payload *rt.RpsClean, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := NewAction(r, tx, index)
	if err != nil {
		return nil, err
	}
	return action.GameClean(payload)
}

// Exec_Expire 超时
func (r *rps) Exec_Expire(payload *rt.RpsExpire, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := NewAction(r, tx, index)
	if err != nil {
		return nil, err
	}
	return action.GameExpire(payload)
}
