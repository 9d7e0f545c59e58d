// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"bytes"
	"encoding/binary"

	"github.com/33cn/rpschain/common"
	"github.com/33cn/rpschain/common/address"
	"github.com/33cn/rpschain/common/crypto"
	"github.com/33cn/rpschain/types"
	"github.com/pkg/errors"
)

// Commit keccak256(player 地址字节 || salt 小端 8 字节 || choice 1 字节)
func Commit(player string, salt uint64, choice Choice) (c [CommitmentSize]byte, err error) {
	if !choice.Valid() {
		return c, ErrInvalidChoice
	}
	if err := address.CheckAddress(player); err != nil {
		return c, errors.Wrapf(types.ErrInvalidAddress, "player %q", player)
	}
	id, err := address.Decode(player)
	if err != nil {
		return c, errors.Wrapf(types.ErrInvalidAddress, "player %q", player)
	}
	var s [8]byte
	binary.LittleEndian.PutUint64(s[:], salt)
	return common.Keccak256(id, s[:], []byte{byte(choice)}), nil
}

// VerifyCommitment 重新计算承诺并逐字节比较
func VerifyCommitment(commitment []byte, player string, salt uint64, choice Choice) bool {
	if len(commitment) != CommitmentSize || !choice.Valid() {
		return false
	}
	c, err := Commit(player, salt, choice)
	if err != nil {
		return false
	}
	return bytes.Equal(commitment, c[:])
}

// NewSalt 随机 salt, 开奖前只有 player1 知道
func NewSalt() uint64 {
	return crypto.RandUint64()
}
