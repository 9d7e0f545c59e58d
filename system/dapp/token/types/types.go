// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types token 执行器的数据结构
package types

import (
	"github.com/33cn/rpschain/types"
)

var (
	// TokenX 执行器名称
	TokenX     = types.TokenX
	actionName = map[string]int32{
		"CreateMint":    types.TokenActionCreateMint,
		"CreateAccount": types.TokenActionCreateAccount,
		"MintTo":        types.TokenActionMintTo,
		"Transfer":      types.TokenActionTransfer,
	}
)

// TokenAction oneof
type TokenAction struct {
	CreateMint    *TokenCreateMint    `json:"createMint,omitempty" rlp:"nil"`
	CreateAccount *TokenCreateAccount `json:"createAccount,omitempty" rlp:"nil"`
	MintTo        *TokenMintTo        `json:"mintTo,omitempty" rlp:"nil"`
	Transfer      *TokenTransfer      `json:"transfer,omitempty" rlp:"nil"`
}

// TokenCreateMint 创建币种, 签名者为 authority
type TokenCreateMint struct {
	Symbol   string `json:"symbol"`
	Decimals uint32 `json:"decimals"`
}

// TokenCreateAccount 为签名者创建 mint 的关联账户
type TokenCreateAccount struct {
	Mint string `json:"mint"`
}

// TokenMintTo 增发到 token 账户
type TokenMintTo struct {
	Mint   string `json:"mint"`
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
}

// TokenTransfer token 账户之间转账
type TokenTransfer struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
}

// ReqAddr 查询参数
type ReqAddr struct {
	Addr string `json:"addr"`
}

// ReqAssociated 关联账户查询
type ReqAssociated struct {
	Owner string `json:"owner"`
	Mint  string `json:"mint"`
}

func init() {
	types.RegistorExecutor(TokenX, NewType())
}

// TokenType 执行器类型
type TokenType struct {
	types.ExecTypeBase
}

// NewType new
func NewType() *TokenType {
	c := &TokenType{}
	c.SetChild(c)
	return c
}

// GetName 执行器名称
func (t *TokenType) GetName() string {
	return TokenX
}

// GetPayload action
func (t *TokenType) GetPayload() interface{} {
	return &TokenAction{}
}

// GetTypeMap action 名字
func (t *TokenType) GetTypeMap() map[string]int32 {
	return actionName
}
