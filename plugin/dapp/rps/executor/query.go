// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	rt "github.com/33cn/rpschain/plugin/dapp/rps/types"
	"github.com/33cn/rpschain/types"
	"github.com/pkg/errors"
)

// Query_GetGame 按地址查询游戏, 地址为空时由 seed 推导
func (r *rps) Query_GetGame(in *rt.QueryGame) (*rt.Game, error) {
	addr := in.Addr
	if addr == "" {
		addr = GameAddress(in.Seed)
	}
	return readGame(r.GetStateDB(), addr)
}

// Query_ListGames 按状态分页列出游戏, 指定 Addr 时只列出该玩家参与的
func (r *rps) Query_ListGames(in *rt.QueryGameList) (*rt.ReplyGameList, error) {
	if _, ok := rt.StatusNameOK(in.Status); !ok || in.Status == rt.StatusClosed {
		return nil, errors.Wrapf(types.ErrInvalidParam, "status %d", in.Status)
	}
	if in.Direction != rt.ListDESC && in.Direction != rt.ListASC {
		return nil, errors.Wrapf(types.ErrInvalidParam, "direction %d", in.Direction)
	}
	count := in.Count
	if count <= 0 {
		count = rt.DefaultCount
	}
	if count > rt.MaxCount {
		count = rt.MaxCount
	}
	var prefix []byte
	if in.Addr == "" {
		prefix = calcStatusPrefix(in.Status)
	} else {
		prefix = calcAddrPrefix(in.Addr, in.Status)
	}
	var key []byte
	if in.Index > 0 {
		key = append(append(key, prefix...), []byte(fmt.Sprintf("%018d", in.Index))...)
	}
	values, err := r.GetLocalDB().List(prefix, key, count, in.Direction)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, types.ErrNotFound
	}
	reply := &rt.ReplyGameList{}
	for _, value := range values {
		var record rt.GameRecord
		if err := types.Decode(value, &record); err != nil {
			rlog.Error("Query_ListGames decode", "err", err)
			continue
		}
		game, err := readGame(r.GetStateDB(), record.Addr)
		if err != nil {
			rlog.Error("Query_ListGames", "game", record.Addr, "err", err)
			continue
		}
		reply.Games = append(reply.Games, game)
	}
	return reply, nil
}

// Query_GetEscrow 游戏托管账户
func (r *rps) Query_GetEscrow(in *rt.QueryGame) (*types.TokenAccount, error) {
	game, err := r.Query_GetGame(in)
	if err != nil {
		return nil, err
	}
	return r.GetTokenDB().LoadAccount(game.Escrow)
}
