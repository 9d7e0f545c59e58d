// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	drivers "github.com/33cn/rpschain/system/dapp"
	tokenty "github.com/33cn/rpschain/system/dapp/token/types"
	"github.com/33cn/rpschain/types"
	log "github.com/inconshreveable/log15"
)

var (
	tokenlog   = log.New("module", "execs.token")
	driverName = tokenty.TokenX
)

// Init 注册执行器
func Init(name string, cfg *types.Config) {
	if name != driverName {
		panic("system dapp can't be rename")
	}
	drivers.Register(driverName, newToken)
}

// GetName 执行器名称
func GetName() string {
	return newToken().GetName()
}

type token struct {
	drivers.DriverBase
}

func newToken() drivers.Driver {
	t := &token{}
	t.SetChild(t)
	return t
}

// GetDriverName 驱动名称
func (t *token) GetDriverName() string {
	return driverName
}

// GetPayloadValue action
func (t *token) GetPayloadValue() interface{} {
	return &tokenty.TokenAction{}
}

// CheckTx 参数检查
func (t *token) CheckTx(tx *types.Transaction, index int) error {
	var action tokenty.TokenAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		return err
	}
	switch {
	case action.CreateMint != nil:
		if action.CreateMint.Symbol == "" {
			return types.ErrTokenSymbol
		}
	case action.MintTo != nil:
		if action.MintTo.Amount == 0 {
			return types.ErrAmount
		}
	case action.Transfer != nil:
		if action.Transfer.Amount == 0 {
			return types.ErrAmount
		}
	}
	return nil
}
