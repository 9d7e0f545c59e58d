// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types coins 执行器的数据结构
package types

import (
	"github.com/33cn/rpschain/types"
)

var (
	// CoinsX 执行器名称
	CoinsX     = types.CoinsX
	actionName = map[string]int32{
		"Transfer": types.CoinsActionTransfer,
	}
)

// CoinsAction oneof
type CoinsAction struct {
	Transfer *CoinsTransfer `json:"transfer,omitempty" rlp:"nil"`
}

// CoinsTransfer 转账
type CoinsTransfer struct {
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
	Note   string `json:"note"`
}

func init() {
	types.RegistorExecutor(CoinsX, NewType())
}

// CoinsType 执行器类型
type CoinsType struct {
	types.ExecTypeBase
}

// NewType new
func NewType() *CoinsType {
	c := &CoinsType{}
	c.SetChild(c)
	return c
}

// GetName 执行器名称
func (c *CoinsType) GetName() string {
	return CoinsX
}

// GetPayload action
func (c *CoinsType) GetPayload() interface{} {
	return &CoinsAction{}
}

// GetTypeMap action 名字
func (c *CoinsType) GetTypeMap() map[string]int32 {
	return actionName
}
