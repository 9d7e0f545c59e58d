// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// coin conversation
const (
	Coin           uint64 = 1e8
	MaxCoin        uint64 = 1e17
	MaxTxSize             = 100000 //100K
	MaxTxsPerBlock        = 100000
	// ExpireBound Expire小于该值时按高度计算, 否则按时间计算
	ExpireBound uint64 = 1000000000
)

// 系统执行器
const (
	CoinsX = "coins"
	TokenX = "token"
)

// 账户所占空间, 用于计算租金
const (
	TokenAccountSpace = 165
	MintSpace         = 82
)

// ledger 默认参数
const (
	DefaultRentPerByte     = uint64(6960)
	DefaultAccountOverhead = uint64(128)
	DefaultCoinSymbol      = "rps"
)

// log type
const (
	TyLogReserved = 0
	TyLogErr      = 1

	TyLogTransfer = 3
	TyLogGenesis  = 4
	TyLogDeposit  = 5
	TyLogRent     = 6
	TyLogRentBack = 7

	TyLogTokenCreateMint   = 311
	TyLogTokenInitAccount  = 312
	TyLogTokenTransfer     = 313
	TyLogTokenMint         = 314
	TyLogTokenCloseAccount = 315
)

//exec type
const (
	ExecErr = 0
	ExecOk  = 2
)

// coins action type
const (
	CoinsActionTransfer = 1
)

// token action type
const (
	TokenActionCreateMint    = 1
	TokenActionCreateAccount = 2
	TokenActionMintTo        = 3
	TokenActionTransfer      = 4
)

// 数据库前缀, mavl 为状态数据, LODB 为本地索引
var (
	LocalPrefix = []byte("LODB")
	StatePrefix = []byte("mavl")
)
