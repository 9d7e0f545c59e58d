// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/rpschain/common/address"
	"github.com/33cn/rpschain/types"
)

// ReqAddr 查询参数
type ReqAddr struct {
	Addr string `json:"addr"`
}

// Query_GetAccount 查询余额
func (c *Coins) Query_GetAccount(in *ReqAddr) (*types.Account, error) {
	if err := address.CheckAddress(in.Addr); err != nil {
		return nil, types.ErrInvalidAddress
	}
	return c.GetCoinsAccount().LoadAccount(in.Addr), nil
}
