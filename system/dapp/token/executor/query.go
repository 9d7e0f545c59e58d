// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/rpschain/account"
	tokenty "github.com/33cn/rpschain/system/dapp/token/types"
	"github.com/33cn/rpschain/types"
)

// Query_GetMint 查询币种
func (t *token) Query_GetMint(in *tokenty.ReqAddr) (*types.Mint, error) {
	return t.GetTokenDB().LoadMint(in.Addr)
}

// Query_GetAccount 查询 token 账户
func (t *token) Query_GetAccount(in *tokenty.ReqAddr) (*types.TokenAccount, error) {
	return t.GetTokenDB().LoadAccount(in.Addr)
}

// Query_GetAssociatedAccount 查询 owner 在 mint 下的关联账户
func (t *token) Query_GetAssociatedAccount(in *tokenty.ReqAssociated) (*types.TokenAccount, error) {
	return t.GetTokenDB().LoadAccount(account.AssociatedAddress(in.Owner, in.Mint))
}
