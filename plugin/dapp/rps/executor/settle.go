// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	rt "github.com/33cn/rpschain/plugin/dapp/rps/types"
	"github.com/33cn/rpschain/types"
	"github.com/pkg/errors"
)

// 从托管账户付款, 只有游戏的 authority 可以转出
func (action *Action) pay(game *rt.Game, to string, amount uint64) (*types.Receipt, error) {
	if amount == 0 {
		return nil, nil
	}
	return action.tokenDB.Transfer(game.Escrow, to, Authority(game.Addr), amount)
}

// 多出来的 token 归胜者, 平局和取消时归 player1
func residualAccount(game *rt.Game) string {
	if game.Outcome == rt.OutcomePlayer2Win || game.Outcome == rt.OutcomeForfeit {
		return game.Player2Account
	}
	return game.Player1Account
}

// 托管账户的余额不能少于 amount1 + amount2, 全部付出, 调用前需要设置 game.Outcome
func (action *Action) payout(game *rt.Game, amount1, amount2 uint64) (*types.Receipt, error) {
	total := amount1 + amount2
	if total < amount1 {
		return nil, rt.ErrArithmeticOverflow
	}
	balance, err := action.tokenDB.Balance(game.Escrow)
	if err != nil {
		return nil, err
	}
	if balance < total {
		return nil, errors.Wrapf(rt.ErrInvalidState, "escrow %s balance %d payout %d", game.Escrow, balance, total)
	}
	if surplus := balance - total; surplus > 0 {
		rlog.Info("payout surplus", "game", game.Addr, "surplus", surplus, "to", residualAccount(game))
		if residualAccount(game) == game.Player2Account {
			amount2 += surplus
		} else {
			amount1 += surplus
		}
	}
	receipt, err := action.pay(game, game.Player1Account, amount1)
	if err != nil {
		return nil, err
	}
	r, err := action.pay(game, game.Player2Account, amount2)
	if err != nil {
		return nil, err
	}
	receipt = types.MergeReceipt(receipt, r)
	if receipt == nil {
		receipt = &types.Receipt{Ty: types.ExecOk}
	}
	return receipt, nil
}

// GameSettle 计算结果并从托管账户付款, 任何人都可以调用
func (action *Action) GameSettle(settle *rt.RpsSettle) (*types.Receipt, error) {
	game, err := action.readGame(settle.Game)
	if err != nil {
		return nil, action.fail("GameSettle", settle.Game, err)
	}
	if game.Status != rt.StatusRevealed {
		return nil, action.fail("GameSettle", game.Addr, errors.Wrapf(rt.ErrInvalidState, "status %s", rt.StatusName(game.Status)))
	}
	amount1, amount2, outcome, err := rt.Payout(game.Player1Choice, game.Player2Choice, game.Stake)
	if err != nil {
		return nil, action.fail("GameSettle", game.Addr, err)
	}
	game.Outcome = outcome
	receipt, err := action.payout(game, amount1, amount2)
	if err != nil {
		return nil, action.fail("GameSettle.payout", game.Addr, err)
	}
	game.Status = rt.StatusSettled
	game.SettleTxHash = action.txhash
	action.nextIndex(game)
	kv := action.saveGame(game)
	receipt.KV = append(receipt.KV, kv)
	receipt.Logs = append(receipt.Logs, action.receiptLog(rt.TyLogRpsSettle, game, rt.StatusRevealed))
	return receipt, nil
}

// GameExpire 超时处理
//  Created: player1 随时可以取消, 其他人要等过期, 押注退回 player1
//  Joined: 过期后任何人都可以调用, player1 没有开奖, 全部押注归 player2
func (action *Action) GameExpire(expire *rt.RpsExpire) (*types.Receipt, error) {
	game, err := action.readGame(expire.Game)
	if err != nil {
		return nil, action.fail("GameExpire", expire.Game, err)
	}
	expired := action.height > game.ExpiryHeight
	prevStatus := game.Status
	var receipt *types.Receipt
	switch game.Status {
	case rt.StatusCreated:
		if !expired && game.Player1 != action.signer.Address() {
			return nil, action.fail("GameExpire", game.Addr, errors.Wrapf(rt.ErrGameNotExpired, "expiry height %d", game.ExpiryHeight))
		}
		game.Outcome = rt.OutcomeCancelled
		receipt, err = action.payout(game, game.Stake, 0)
	case rt.StatusJoined:
		if !expired {
			return nil, action.fail("GameExpire", game.Addr, errors.Wrapf(rt.ErrGameNotExpired, "expiry height %d", game.ExpiryHeight))
		}
		pot, perr := rt.Pot(game.Stake)
		if perr != nil {
			return nil, action.fail("GameExpire", game.Addr, perr)
		}
		game.Outcome = rt.OutcomeForfeit
		receipt, err = action.payout(game, 0, pot)
	default:
		return nil, action.fail("GameExpire", game.Addr, errors.Wrapf(rt.ErrInvalidState, "status %s", rt.StatusName(game.Status)))
	}
	if err != nil {
		return nil, action.fail("GameExpire.payout", game.Addr, err)
	}
	game.Status = rt.StatusSettled
	game.SettleTxHash = action.txhash
	action.nextIndex(game)
	kv := action.saveGame(game)
	receipt.KV = append(receipt.KV, kv)
	receipt.Logs = append(receipt.Logs, action.receiptLog(rt.TyLogRpsExpire, game, prevStatus))
	return receipt, nil
}

func (action *Action) sweep(game *rt.Game) (*types.Receipt, error) {
	balance, err := action.tokenDB.Balance(game.Escrow)
	if err != nil {
		return nil, err
	}
	return action.pay(game, residualAccount(game), balance)
}

// GameClean 关闭托管账户, 删除游戏记录, 两份存储押金都归调用者
func (action *Action) GameClean(clean *rt.RpsClean) (*types.Receipt, error) {
	game, err := action.readGame(clean.Game)
	if err != nil {
		return nil, action.fail("GameClean", clean.Game, err)
	}
	if game.Status != rt.StatusSettled {
		return nil, action.fail("GameClean", game.Addr, errors.Wrapf(rt.ErrInvalidState, "status %s", rt.StatusName(game.Status)))
	}
	cleaner := action.signer.Address()
	// 结算之后转入托管账户的 token 先转出, 否则账户不能关闭
	receipt, err := action.sweep(game)
	if err != nil {
		return nil, action.fail("GameClean.sweep", game.Addr, err)
	}
	r, err := action.tokenDB.CloseAccount(game.Escrow, Authority(game.Addr), cleaner)
	if err != nil {
		return nil, action.fail("GameClean.CloseAccount", game.Addr, err)
	}
	receipt = types.MergeReceipt(receipt, r)
	if action.coinsAccount.LoadAccount(game.Addr).Balance > 0 {
		r, err = action.coinsAccount.Release(game.Addr, cleaner)
		if err != nil {
			return nil, action.fail("GameClean.Release", game.Addr, err)
		}
		receipt = types.MergeReceipt(receipt, r)
	}
	kv := &types.KeyValue{Key: Key(game.Addr)}
	if err := action.db.Set(kv.Key, nil); err != nil {
		return nil, action.fail("GameClean", game.Addr, err)
	}
	game.Status = rt.StatusClosed
	action.nextIndex(game)
	receipt.KV = append(receipt.KV, kv)
	receipt.Logs = append(receipt.Logs, action.receiptLog(rt.TyLogRpsClean, game, rt.StatusSettled))
	return receipt, nil
}
