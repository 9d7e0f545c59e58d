// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"math"
	"testing"

	"github.com/33cn/rpschain/common"
	"github.com/33cn/rpschain/common/address"
	"github.com/33cn/rpschain/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var choices = []Choice{Rock, Paper, Scissors}

func TestCommit(t *testing.T) {
	player := address.ExecAddress("player1")
	c, err := Commit(player, 42, Paper)
	require.NoError(t, err)
	assert.True(t, VerifyCommitment(c[:], player, 42, Paper))
	assert.False(t, VerifyCommitment(c[:], player, 43, Paper))
	assert.False(t, VerifyCommitment(c[:], player, 42, Rock))
	assert.False(t, VerifyCommitment(c[:], address.ExecAddress("player2"), 42, Paper))
	assert.False(t, VerifyCommitment(c[:16], player, 42, Paper))
	assert.False(t, VerifyCommitment(c[:], player, 42, Choice(3)))

	//任何一位的变化都会导致验证失败
	for i := 0; i < CommitmentSize*8; i++ {
		bad := c
		bad[i/8] ^= 1 << uint(i%8)
		assert.False(t, VerifyCommitment(bad[:], player, 42, Paper), "bit %d", i)
	}
	//选择不同, 承诺不同
	seen := make(map[[CommitmentSize]byte]bool)
	for _, ch := range choices {
		c, err := Commit(player, 42, ch)
		require.NoError(t, err)
		seen[c] = true
	}
	assert.Len(t, seen, 3)

	//地址写错时不能生成承诺
	_, err = Commit(player[:len(player)-1], 42, Paper)
	assert.ErrorIs(t, err, types.ErrInvalidAddress)
	_, err = Commit("not an address", 42, Paper)
	assert.ErrorIs(t, err, types.ErrInvalidAddress)
	_, err = Commit(player, 42, Choice(3))
	assert.ErrorIs(t, err, ErrInvalidChoice)
	assert.False(t, VerifyCommitment(c[:], "not an address", 42, Paper))
}

// 所有字段都取最大长度时, 编码后的大小不能超过 GameSpace
func TestGameSpace(t *testing.T) {
	addr := address.ExecAddress("rps")
	hash := common.ToHex(common.Sha256([]byte("tx")))
	game := &Game{
		Addr:           addr,
		Seed:           math.MaxUint64,
		Mint:           addr,
		Stake:          math.MaxUint64,
		Player1:        addr,
		Player1Account: addr,
		Player2:        addr,
		Player2Account: addr,
		Commitment:     make([]byte, CommitmentSize),
		Player2Choice:  Scissors,
		Player1Choice:  Scissors,
		Status:         math.MaxUint32,
		Outcome:        math.MaxUint32,
		Escrow:         addr,
		Authority:      addr,
		CreateHeight:   math.MaxUint64,
		ExpiryHeight:   math.MaxUint64,
		Index:          math.MaxUint64,
		PrevIndex:      math.MaxUint64,
		CreateTxHash:   hash,
		JoinTxHash:     hash,
		RevealTxHash:   hash,
		SettleTxHash:   hash,
	}
	assert.LessOrEqual(t, types.Size(game), GameSpace)
}

func TestOutcome(t *testing.T) {
	cases := []struct {
		p1, p2 Choice
		want   uint32
	}{
		{Rock, Rock, OutcomeTie},
		{Rock, Paper, OutcomePlayer2Win},
		{Rock, Scissors, OutcomePlayer1Win},
		{Paper, Rock, OutcomePlayer1Win},
		{Paper, Paper, OutcomeTie},
		{Paper, Scissors, OutcomePlayer2Win},
		{Scissors, Rock, OutcomePlayer2Win},
		{Scissors, Paper, OutcomePlayer1Win},
		{Scissors, Scissors, OutcomeTie},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Outcome(c.p1, c.p2), "%s vs %s", c.p1, c.p2)
	}
}

func TestPayoutConservation(t *testing.T) {
	for _, stake := range []uint64{1, 10, 12345, math.MaxUint64 / 2} {
		for _, p1 := range choices {
			for _, p2 := range choices {
				a1, a2, outcome, err := Payout(p1, p2, stake)
				require.NoError(t, err)
				assert.Equal(t, 2*stake, a1+a2)
				switch outcome {
				case OutcomePlayer1Win:
					assert.Equal(t, uint64(0), a2)
				case OutcomePlayer2Win:
					assert.Equal(t, uint64(0), a1)
				case OutcomeTie:
					assert.Equal(t, stake, a1)
					assert.Equal(t, stake, a2)
				default:
					t.Fatalf("outcome %d", outcome)
				}
			}
		}
	}
	_, _, _, err := Payout(Rock, Paper, math.MaxUint64/2+1)
	assert.ErrorIs(t, err, ErrArithmeticOverflow)
	_, _, _, err = Payout(Choice(5), Paper, 10)
	assert.ErrorIs(t, err, ErrInvalidChoice)
}

func TestParseChoice(t *testing.T) {
	for s, want := range map[string]Choice{
		"rock": Rock, "R": Rock, "0": Rock,
		"Paper": Paper, "p": Paper, "1": Paper,
		" scissors ": Scissors, "s": Scissors, "2": Scissors,
	} {
		c, err := ParseChoice(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, c, s)
	}
	_, err := ParseChoice("lizard")
	assert.ErrorIs(t, err, ErrInvalidChoice)
	assert.Equal(t, "unknown", Choice(3).String())
	assert.False(t, Choice(3).Valid())
}

func TestCreateTransaction(t *testing.T) {
	ety := types.LoadExecutorType(RpsX)
	require.NotNil(t, ety)

	tx, err := ety.CreateTransaction("Join", []byte(`{"game":"g1","choice":2}`))
	require.NoError(t, err)
	payload, err := ety.DecodePayload(tx)
	require.NoError(t, err)
	action := payload.(*RpsAction)
	require.NotNil(t, action.Join)
	assert.Nil(t, action.Create)
	assert.Equal(t, "g1", action.Join.Game)
	assert.Equal(t, Scissors, action.Join.Choice)

	_, err = ety.CreateTransaction("Bet", nil)
	assert.ErrorIs(t, err, types.ErrActionNotSupport)

	_, err = CreateRawCreateTx(&RpsCreate{Seed: 1, Mint: "m", Commitment: []byte{1, 2}, Stake: 1})
	assert.ErrorIs(t, err, ErrCommitmentSize)
	_, err = CreateRawJoinTx(&RpsJoin{Game: "g", Choice: Choice(7)})
	assert.ErrorIs(t, err, ErrInvalidChoice)
	_, err = CreateRawSettleTx("")
	assert.ErrorIs(t, err, types.ErrInvalidParam)
}

func TestLoadConfig(t *testing.T) {
	conf, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultJoinTimeout, conf.JoinTimeout)

	cfg, err := types.ParseConfig(`
[exec.rps]
joinTimeout = 10
maxStake = 1000
`)
	require.NoError(t, err)
	conf, err = LoadConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), conf.JoinTimeout)
	assert.Equal(t, DefaultRevealTimeout, conf.RevealTimeout)
	assert.Equal(t, uint64(1000), conf.MaxStake)
}
