// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
coins 是一个货币的exec。内置货币的执行器。

主要提供一种操作：
Transfer -> 转移资产
*/

import (
	drivers "github.com/33cn/rpschain/system/dapp"
	cty "github.com/33cn/rpschain/system/dapp/coins/types"
	"github.com/33cn/rpschain/types"
)

var driverName = cty.CoinsX

// Init 注册执行器
func Init(name string, cfg *types.Config) {
	if name != driverName {
		panic("system dapp can't be rename")
	}
	drivers.Register(driverName, newCoins)
}

// GetName 执行器名称
func GetName() string {
	return newCoins().GetName()
}

// Coins 执行器
type Coins struct {
	drivers.DriverBase
}

func newCoins() drivers.Driver {
	c := &Coins{}
	c.SetChild(c)
	return c
}

// GetDriverName 驱动名称
func (c *Coins) GetDriverName() string {
	return driverName
}

// GetPayloadValue action
func (c *Coins) GetPayloadValue() interface{} {
	return &cty.CoinsAction{}
}

// CheckTx 检查交易
func (c *Coins) CheckTx(tx *types.Transaction, index int) error {
	var action cty.CoinsAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		return err
	}
	if action.Transfer != nil {
		if action.Transfer.Amount == 0 {
			return types.ErrAmount
		}
		return drivers.CheckAddress(action.Transfer.To)
	}
	return nil
}
