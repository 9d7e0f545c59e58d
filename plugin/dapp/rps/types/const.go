// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// RpsX 执行器名称
const RpsX = "rps"

//rps action ty
const (
	RpsActionCreate = iota + 1
	RpsActionJoin
	RpsActionReveal
	RpsActionSettle
	RpsActionClean
	RpsActionExpire
)

//game status
const (
	// StatusClosed 只出现在 clean 的回执中, 记录已经删除
	StatusClosed = uint32(iota)
	StatusCreated
	StatusJoined
	StatusRevealed
	StatusSettled
)

//game outcome
const (
	OutcomeNone = uint32(iota)
	OutcomePlayer1Win
	OutcomePlayer2Win
	OutcomeTie
	// OutcomeCancelled 没有人加入, 过期后退回 player1
	OutcomeCancelled
	// OutcomeForfeit player1 没有在期限内开奖, player2 获得全部
	OutcomeForfeit
)

// log type
const (
	TyLogRpsCreate = 801
	TyLogRpsJoin   = 802
	TyLogRpsReveal = 803
	TyLogRpsSettle = 804
	TyLogRpsClean  = 805
	TyLogRpsExpire = 806
)

// 地址推导使用的 tag
const (
	GameTag      = "game"
	EscrowTag    = "escrow"
	AuthorityTag = "authority"
)

// CommitmentSize keccak256
const CommitmentSize = 32

// GameSpace 游戏记录编码后的最大长度, 用于计算存储押金
// 8 个地址(35) + 4 个交易哈希(68) + 承诺(33) + 6 个 uint64(9) + choice/status/outcome(12) + 列表头(3) = 654
const GameSpace = 660

// 默认超时, 单位为区块高度
const (
	DefaultJoinTimeout   = uint64(7200)
	DefaultRevealTimeout = uint64(7200)
)

// 查询
const (
	FuncNameGetGame   = "GetGame"
	FuncNameListGames = "ListGames"
	FuncNameGetEscrow = "GetEscrow"

	ListDESC     = int32(0)
	ListASC      = int32(1)
	DefaultCount = int32(20)
	MaxCount     = int32(100)
)

// ExecerRps []byte name
var ExecerRps = []byte(RpsX)

var (
	actionName = map[string]int32{
		"Create": RpsActionCreate,
		"Join":   RpsActionJoin,
		"Reveal": RpsActionReveal,
		"Settle": RpsActionSettle,
		"Clean":  RpsActionClean,
		"Expire": RpsActionExpire,
	}
	statusName = map[uint32]string{
		StatusClosed:   "closed",
		StatusCreated:  "created",
		StatusJoined:   "joined",
		StatusRevealed: "revealed",
		StatusSettled:  "settled",
	}
	outcomeName = map[uint32]string{
		OutcomeNone:       "none",
		OutcomePlayer1Win: "player1",
		OutcomePlayer2Win: "player2",
		OutcomeTie:        "tie",
		OutcomeCancelled:  "cancelled",
		OutcomeForfeit:    "forfeit",
	}
)

// StatusName 状态名
func StatusName(status uint32) string {
	if name, ok := statusName[status]; ok {
		return name
	}
	return "unknown"
}

// StatusNameOK 状态是否存在
func StatusNameOK(status uint32) (string, bool) {
	name, ok := statusName[status]
	return name, ok
}

// OutcomeName 结果名
func OutcomeName(outcome uint32) string {
	if name, ok := outcomeName[outcome]; ok {
		return name
	}
	return "unknown"
}
