// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "math"

// Outcome 石头赢剪刀, 剪刀赢布, 布赢石头, 相同为平局
func Outcome(p1, p2 Choice) uint32 {
	switch (3 + int(p1) - int(p2)) % 3 {
	case 0:
		return OutcomeTie
	case 1:
		return OutcomePlayer1Win
	default:
		return OutcomePlayer2Win
	}
}

// Payout 计算双方应得的 token, 两者之和等于 2*stake
func Payout(p1, p2 Choice, stake uint64) (uint64, uint64, uint32, error) {
	if !p1.Valid() || !p2.Valid() {
		return 0, 0, OutcomeNone, ErrInvalidChoice
	}
	pot, err := Pot(stake)
	if err != nil {
		return 0, 0, OutcomeNone, err
	}
	outcome := Outcome(p1, p2)
	switch outcome {
	case OutcomePlayer1Win:
		return pot, 0, outcome, nil
	case OutcomePlayer2Win:
		return 0, pot, outcome, nil
	default:
		return stake, stake, outcome, nil
	}
}

// Pot 两个玩家的押注之和
func Pot(stake uint64) (uint64, error) {
	if stake > math.MaxUint64/2 {
		return 0, ErrArithmeticOverflow
	}
	return stake * 2, nil
}
