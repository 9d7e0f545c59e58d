// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"encoding/binary"
	"fmt"

	"github.com/33cn/rpschain/common/address"
	dbm "github.com/33cn/rpschain/common/db"
	rt "github.com/33cn/rpschain/plugin/dapp/rps/types"
	"github.com/33cn/rpschain/types"
	"github.com/pkg/errors"
)

/*
 状态数据库:
   mavl-rps-game-<addr> = Game

 本地索引, 游戏状态变化时删除老状态的索引:
   LODB-rps-status:<status>:<index>
   LODB-rps-addr:<player>:<status>:<index>
   index = height*MaxTxsPerBlock + txindex
*/

// Key 游戏记录的 key
func Key(addr string) []byte {
	return []byte("mavl-" + rt.RpsX + "-game-" + addr)
}

// GameAddress 由 seed 推导游戏地址
func GameAddress(seed uint64) string {
	var s [8]byte
	binary.LittleEndian.PutUint64(s[:], seed)
	return address.DeriveAddress(rt.RpsX, rt.GameTag, s[:])
}

// EscrowAddress 游戏的托管 token 账户
func EscrowAddress(game string) string {
	return address.DeriveAddress(rt.RpsX, rt.EscrowTag, []byte(game))
}

// Authority 托管账户的所有者
func Authority(game string) types.ProgramAuthority {
	return types.NewProgramAuthority(rt.RpsX, rt.AuthorityTag, []byte(game))
}

func readGame(db dbm.KVDB, addr string) (*rt.Game, error) {
	value, err := db.Get(Key(addr))
	if err != nil || len(value) == 0 {
		return nil, errors.Wrapf(rt.ErrGameNotFound, "game %s", addr)
	}
	var game rt.Game
	if err := types.Decode(value, &game); err != nil {
		panic(err) //数据错误了，已经被修改了
	}
	return &game, nil
}

func calcStatusKey(status uint32, index uint64) []byte {
	return []byte(fmt.Sprintf("LODB-rps-status:%d:%018d", status, index))
}

func calcStatusPrefix(status uint32) []byte {
	return []byte(fmt.Sprintf("LODB-rps-status:%d:", status))
}

func calcAddrKey(addr string, status uint32, index uint64) []byte {
	return []byte(fmt.Sprintf("LODB-rps-addr:%s:%d:%018d", addr, status, index))
}

func calcAddrPrefix(addr string, status uint32) []byte {
	return []byte(fmt.Sprintf("LODB-rps-addr:%s:%d:", addr, status))
}

func addStatusIndex(status uint32, game string, index uint64) *types.KeyValue {
	record := &rt.GameRecord{Addr: game, Index: index}
	return &types.KeyValue{Key: calcStatusKey(status, index), Value: types.Encode(record)}
}

func addAddrIndex(addr string, status uint32, game string, index uint64) *types.KeyValue {
	record := &rt.GameRecord{Addr: game, Index: index}
	return &types.KeyValue{Key: calcAddrKey(addr, status, index), Value: types.Encode(record)}
}

func delStatusIndex(status uint32, index uint64) *types.KeyValue {
	return &types.KeyValue{Key: calcStatusKey(status, index)}
}

func delAddrIndex(addr string, status uint32, index uint64) *types.KeyValue {
	//value置nil,提交时，会自动执行删除操作
	return &types.KeyValue{Key: calcAddrKey(addr, status, index)}
}
