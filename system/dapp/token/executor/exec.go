// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/rpschain/account"
	tokenty "github.com/33cn/rpschain/system/dapp/token/types"
	"github.com/33cn/rpschain/types"
)

// Exec_CreateMint 创建币种, mint 地址由签名者和 symbol 决定
func (t *token) Exec_CreateMint(payload *tokenty.TokenCreateMint, tx *types.Transaction, index int) (*types.Receipt, error) {
	signer, err := tx.Signer()
	if err != nil {
		return nil, err
	}
	mint := account.MintAddress(signer.Address(), payload.Symbol)
	receipt, err := t.GetTokenDB().CreateMint(signer.Address(), mint, payload.Symbol, payload.Decimals, signer.Address())
	if err != nil {
		tokenlog.Error("CreateMint", "addr", signer.Address(), "symbol", payload.Symbol, "err", err)
		return nil, err
	}
	return receipt, nil
}

// Exec_CreateAccount 为签名者创建关联账户
func (t *token) Exec_CreateAccount(payload *tokenty.TokenCreateAccount, tx *types.Transaction, index int) (*types.Receipt, error) {
	signer, err := tx.Signer()
	if err != nil {
		return nil, err
	}
	addr := account.AssociatedAddress(signer.Address(), payload.Mint)
	receipt, err := t.GetTokenDB().InitAccount(signer.Address(), addr, payload.Mint, signer.Address())
	if err != nil {
		tokenlog.Error("CreateAccount", "addr", signer.Address(), "mint", payload.Mint, "err", err)
		return nil, err
	}
	return receipt, nil
}

// Exec_MintTo 增发
func (t *token) Exec_MintTo(payload *tokenty.TokenMintTo, tx *types.Transaction, index int) (*types.Receipt, error) {
	signer, err := tx.Signer()
	if err != nil {
		return nil, err
	}
	receipt, err := t.GetTokenDB().MintTo(payload.Mint, signer, payload.To, payload.Amount)
	if err != nil {
		tokenlog.Error("MintTo", "addr", signer.Address(), "mint", payload.Mint, "err", err)
		return nil, err
	}
	return receipt, nil
}

// Exec_Transfer token 转账, 签名者必须拥有 from
func (t *token) Exec_Transfer(payload *tokenty.TokenTransfer, tx *types.Transaction, index int) (*types.Receipt, error) {
	signer, err := tx.Signer()
	if err != nil {
		return nil, err
	}
	receipt, err := t.GetTokenDB().Transfer(payload.From, payload.To, signer, payload.Amount)
	if err != nil {
		tokenlog.Error("Transfer", "addr", signer.Address(), "from", payload.From, "err", err)
		return nil, err
	}
	return receipt, nil
}
