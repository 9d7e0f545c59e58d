// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	// ErrInvalidState 操作与游戏当前状态不符
	ErrInvalidState = errors.New("ErrInvalidState")
	// ErrUnauthorized 签名者没有权限, 或者加入自己创建的游戏
	ErrUnauthorized = errors.New("ErrUnauthorized")
	// ErrAlreadyJoined 已经有第二个玩家
	ErrAlreadyJoined = errors.New("ErrAlreadyJoined")
	// ErrMintMismatch 押注账户的 token 与游戏不同
	ErrMintMismatch = errors.New("ErrMintMismatch")
	// ErrInvalidReveal 开奖的选择和 salt 与承诺不符
	ErrInvalidReveal = errors.New("ErrInvalidReveal")
	// ErrArithmeticOverflow 押注或者结算溢出
	ErrArithmeticOverflow = errors.New("ErrArithmeticOverflow")

	ErrGameNotFound   = errors.New("ErrGameNotFound")
	ErrInvalidChoice  = errors.New("ErrInvalidChoice")
	ErrStakeZero      = errors.New("ErrStakeZero")
	ErrStakeTooLarge  = errors.New("ErrStakeTooLarge")
	ErrGameNotExpired = errors.New("ErrGameNotExpired")
	ErrCommitmentSize = errors.New("ErrCommitmentSize")
)
