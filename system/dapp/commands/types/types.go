// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types commands中结构体定义
package types

// AccountResult defines account result command
type AccountResult struct {
	Currency string `json:"currency,omitempty"`
	Balance  string `json:"balance"`
	Addr     string `json:"addr,omitempty"`
}

// TokenAccountResult defines accounts result of token command
type TokenAccountResult struct {
	Addr    string `json:"addr"`
	Mint    string `json:"mint"`
	Owner   string `json:"owner"`
	Balance string `json:"balance"`
	Amount  uint64 `json:"amount"`
}

// KeyResult 新生成的账户
type KeyResult struct {
	Privkey string `json:"privkey"`
	Pubkey  string `json:"pubkey"`
	Addr    string `json:"addr"`
}

// SendResult 发送交易的结果
type SendResult struct {
	Hash string `json:"hash"`
	From string `json:"from"`
}
