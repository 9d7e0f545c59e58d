// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

//Account coins 账户
type Account struct {
	Currency string `json:"currency"`
	Balance  uint64 `json:"balance"`
	Addr     string `json:"addr"`
}

//Mint 一种 token, Authority 可以增发
type Mint struct {
	Addr      string `json:"addr"`
	Symbol    string `json:"symbol"`
	Decimals  uint32 `json:"decimals"`
	Authority string `json:"authority"`
	Supply    uint64 `json:"supply"`
}

//TokenAccount 持有某个 Mint 的账户, 只有 Owner 可以转出
type TokenAccount struct {
	Addr   string `json:"addr"`
	Mint   string `json:"mint"`
	Owner  string `json:"owner"`
	Amount uint64 `json:"amount"`
}

//ReceiptAccountTransfer 余额变化
type ReceiptAccountTransfer struct {
	Prev    *Account `json:"prev"`
	Current *Account `json:"current"`
}

//ReceiptTokenAccount token 账户变化, 新建时 Prev 为空
type ReceiptTokenAccount struct {
	Prev    *TokenAccount `json:"prev" rlp:"nil"`
	Current *TokenAccount `json:"current" rlp:"nil"`
}

//ReceiptMint 币种变化
type ReceiptMint struct {
	Prev    *Mint `json:"prev" rlp:"nil"`
	Current *Mint `json:"current" rlp:"nil"`
}
