// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"encoding/json"

	"github.com/33cn/rpschain/common"
	rt "github.com/33cn/rpschain/plugin/dapp/rps/types"
	"github.com/33cn/rpschain/types"
)

// CommitReq 计算承诺, Salt 为 0 时随机生成
type CommitReq struct {
	Player string `json:"player"`
	Choice string `json:"choice"`
	Salt   uint64 `json:"salt"`
}

// CommitReply 承诺以及对应的 salt, salt 需要保存到开奖
type CommitReply struct {
	Commitment string `json:"commitment"`
	Salt       uint64 `json:"salt"`
	Choice     uint8  `json:"choice"`
}

// CreateTxReq 创建游戏, Commitment 为 hex
type CreateTxReq struct {
	Seed         uint64 `json:"seed"`
	Mint         string `json:"mint"`
	Commitment   string `json:"commitment"`
	Stake        uint64 `json:"stake"`
	TokenAccount string `json:"tokenAccount"`
}

// GameReq 只需要游戏地址的 action
type GameReq struct {
	Game string `json:"game"`
}

// Commit 计算 player1 的承诺, 不会上链
func (j *Jrpc) Commit(in *CommitReq, result *interface{}) error {
	if in == nil || in.Player == "" {
		return types.ErrInvalidParam
	}
	choice, err := rt.ParseChoice(in.Choice)
	if err != nil {
		return err
	}
	salt := in.Salt
	if salt == 0 {
		salt = rt.NewSalt()
	}
	c, err := rt.Commit(in.Player, salt, choice)
	if err != nil {
		return err
	}
	*result = &CommitReply{Commitment: common.ToHex(c[:]), Salt: salt, Choice: uint8(choice)}
	return nil
}

// RpsCreateTx 创建游戏的交易
func (j *Jrpc) RpsCreateTx(in *CreateTxReq, result *interface{}) error {
	if in == nil {
		return types.ErrInvalidParam
	}
	commitment, err := common.FromHex(in.Commitment)
	if err != nil {
		return types.ErrInvalidParam
	}
	tx, err := rt.CreateRawCreateTx(&rt.RpsCreate{
		Seed:         in.Seed,
		Mint:         in.Mint,
		Commitment:   commitment,
		Stake:        in.Stake,
		TokenAccount: in.TokenAccount,
	})
	if err != nil {
		return err
	}
	*result = types.EncodeTx(tx)
	return nil
}

// RpsJoinTx 加入游戏的交易
func (j *Jrpc) RpsJoinTx(in *rt.RpsJoin, result *interface{}) error {
	tx, err := rt.CreateRawJoinTx(in)
	if err != nil {
		return err
	}
	*result = types.EncodeTx(tx)
	return nil
}

// RpsRevealTx 开奖的交易
func (j *Jrpc) RpsRevealTx(in *rt.RpsReveal, result *interface{}) error {
	tx, err := rt.CreateRawRevealTx(in)
	if err != nil {
		return err
	}
	*result = types.EncodeTx(tx)
	return nil
}

// RpsSettleTx 结算的交易
func (j *Jrpc) RpsSettleTx(in *GameReq, result *interface{}) error {
	if in == nil {
		return types.ErrInvalidParam
	}
	tx, err := rt.CreateRawSettleTx(in.Game)
	if err != nil {
		return err
	}
	*result = types.EncodeTx(tx)
	return nil
}

// RpsCleanTx 清理的交易
func (j *Jrpc) RpsCleanTx(in *GameReq, result *interface{}) error {
	if in == nil {
		return types.ErrInvalidParam
	}
	tx, err := rt.CreateRawCleanTx(in.Game)
	if err != nil {
		return err
	}
	*result = types.EncodeTx(tx)
	return nil
}

// RpsExpireTx 超时处理的交易
func (j *Jrpc) RpsExpireTx(in *GameReq, result *interface{}) error {
	if in == nil {
		return types.ErrInvalidParam
	}
	tx, err := rt.CreateRawExpireTx(in.Game)
	if err != nil {
		return err
	}
	*result = types.EncodeTx(tx)
	return nil
}

// GetGame 查询游戏
func (j *Jrpc) GetGame(in *rt.QueryGame, result *interface{}) error {
	if in == nil {
		return types.ErrInvalidParam
	}
	params, err := json.Marshal(in)
	if err != nil {
		return err
	}
	reply, err := j.cli.Query(rt.RpsX, rt.FuncNameGetGame, params)
	if err != nil {
		return err
	}
	*result = reply
	return nil
}
