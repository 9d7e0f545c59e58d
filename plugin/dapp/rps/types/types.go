// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"strings"

	"github.com/33cn/rpschain/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var tlog = log.New("module", RpsX)

func init() {
	types.RegistorExecutor(RpsX, NewType())
}

// Choice 石头 剪刀 布
type Choice uint8

// choice 的编码参与承诺计算, 不能修改
const (
	Rock     Choice = 0
	Paper    Choice = 1
	Scissors Choice = 2
)

// Valid 是否是合法的选择
func (c Choice) Valid() bool {
	return c <= Scissors
}

func (c Choice) String() string {
	switch c {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	}
	return "unknown"
}

// ParseChoice rock/paper/scissors 或者 0/1/2
func ParseChoice(s string) (Choice, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rock", "r", "0":
		return Rock, nil
	case "paper", "p", "1":
		return Paper, nil
	case "scissors", "scissor", "s", "2":
		return Scissors, nil
	}
	return 0, errors.Wrapf(ErrInvalidChoice, "choice %q", s)
}

// Game 游戏记录, 保存在状态数据库 mavl-rps-game-<addr>
type Game struct {
	Addr           string `json:"addr"`
	Seed           uint64 `json:"seed"`
	Mint           string `json:"mint"`
	Stake          uint64 `json:"stake"`
	Player1        string `json:"player1"`
	Player1Account string `json:"player1Account"`
	Player2        string `json:"player2"`
	Player2Account string `json:"player2Account"`
	Commitment     []byte `json:"commitment"`
	Player2Choice  Choice `json:"player2Choice"`
	Player1Choice  Choice `json:"player1Choice"`
	Status         uint32 `json:"status"`
	Outcome        uint32 `json:"outcome"`
	Escrow         string `json:"escrow"`
	Authority      string `json:"authority"`
	CreateHeight   uint64 `json:"createHeight"`
	ExpiryHeight   uint64 `json:"expiryHeight"`
	Index          uint64 `json:"index"`
	PrevIndex      uint64 `json:"prevIndex"`
	CreateTxHash   string `json:"createTxHash"`
	JoinTxHash     string `json:"joinTxHash"`
	RevealTxHash   string `json:"revealTxHash"`
	SettleTxHash   string `json:"settleTxHash"`
}

// Joined player2 是否已经加入
func (g *Game) Joined() bool {
	return g.Player2 != ""
}

// RpsAction oneof
type RpsAction struct {
	Create *RpsCreate `json:"create,omitempty" rlp:"nil"`
	Join   *RpsJoin   `json:"join,omitempty" rlp:"nil"`
	Reveal *RpsReveal `json:"reveal,omitempty" rlp:"nil"`
	Settle *RpsSettle `json:"settle,omitempty" rlp:"nil"`
	Clean  *RpsClean  `json:"clean,omitempty" rlp:"nil"`
	Expire *RpsExpire `json:"expire,omitempty" rlp:"nil"`
}

// RpsCreate 创建游戏, TokenAccount 为空时使用签名者在 Mint 下的关联账户
type RpsCreate struct {
	Seed         uint64 `json:"seed"`
	Mint         string `json:"mint"`
	Commitment   []byte `json:"commitment"`
	Stake        uint64 `json:"stake"`
	TokenAccount string `json:"tokenAccount"`
}

// RpsJoin 加入游戏, Commitment 保留给对称承诺的版本, 目前不使用
type RpsJoin struct {
	Game         string `json:"game"`
	Choice       Choice `json:"choice"`
	Commitment   []byte `json:"commitment"`
	TokenAccount string `json:"tokenAccount"`
}

// RpsReveal player1 公开选择和 salt
type RpsReveal struct {
	Game   string `json:"game"`
	Choice Choice `json:"choice"`
	Salt   uint64 `json:"salt"`
}

// RpsSettle 结算, 任何人都可以调用
type RpsSettle struct {
	Game string `json:"game"`
}

// RpsClean 清理, 存储押金退给调用者
type RpsClean struct {
	Game string `json:"game"`
}

// RpsExpire 超时处理
type RpsExpire struct {
	Game string `json:"game"`
}

// ReceiptGame 每个 action 的日志, 用于本地索引
type ReceiptGame struct {
	Addr       string `json:"addr"`
	Actor      string `json:"actor"`
	Player1    string `json:"player1"`
	Player2    string `json:"player2"`
	Status     uint32 `json:"status"`
	PrevStatus uint32 `json:"prevStatus"`
	Outcome    uint32 `json:"outcome"`
	Index      uint64 `json:"index"`
	PrevIndex  uint64 `json:"prevIndex"`
}

// GameRecord 本地索引的值
type GameRecord struct {
	Addr  string `json:"addr"`
	Index uint64 `json:"index"`
}

// QueryGame 按地址或者 seed 查询
type QueryGame struct {
	Addr string `json:"addr"`
	Seed uint64 `json:"seed"`
}

// QueryGameList 按状态(可选地址)分页查询, Index 为上一页最后一条的 index
type QueryGameList struct {
	Status    uint32 `json:"status"`
	Addr      string `json:"addr"`
	Count     int32  `json:"count"`
	Direction int32  `json:"direction"`
	Index     uint64 `json:"index"`
}

// ReplyGameList 查询结果
type ReplyGameList struct {
	Games []*Game `json:"games"`
}

// Config [exec.rps] 配置
type Config struct {
	// 创建后等待加入的区块数
	JoinTimeout uint64 `json:"joinTimeout"`
	// 加入后等待开奖的区块数
	RevealTimeout uint64 `json:"revealTimeout"`
	// 0 表示不限制
	MaxStake uint64 `json:"maxStake"`
}

// DefaultConfig 默认配置
func DefaultConfig() *Config {
	return &Config{JoinTimeout: DefaultJoinTimeout, RevealTimeout: DefaultRevealTimeout}
}

// LoadConfig 读取 [exec.rps], 没有配置的项使用默认值
func LoadConfig(cfg *types.Config) (*Config, error) {
	conf := DefaultConfig()
	if cfg == nil {
		return conf, nil
	}
	if err := cfg.ExecConfig(RpsX, conf); err != nil {
		return nil, err
	}
	if conf.JoinTimeout == 0 {
		conf.JoinTimeout = DefaultJoinTimeout
	}
	if conf.RevealTimeout == 0 {
		conf.RevealTimeout = DefaultRevealTimeout
	}
	return conf, nil
}

// RpsType 执行器类型
type RpsType struct {
	types.ExecTypeBase
}

// NewType new
func NewType() *RpsType {
	c := &RpsType{}
	c.SetChild(c)
	return c
}

// GetName 执行器名称
func (r *RpsType) GetName() string {
	return RpsX
}

// GetPayload action
func (r *RpsType) GetPayload() interface{} {
	return &RpsAction{}
}

// GetTypeMap action 名字
func (r *RpsType) GetTypeMap() map[string]int32 {
	return actionName
}

// CreateRawCreateTx 构造创建游戏的交易
func CreateRawCreateTx(parm *RpsCreate) (*types.Transaction, error) {
	if parm == nil {
		tlog.Error("CreateRawCreateTx", "parm", parm)
		return nil, types.ErrInvalidParam
	}
	if len(parm.Commitment) != CommitmentSize {
		return nil, ErrCommitmentSize
	}
	return types.CreateTx(RpsX, &RpsAction{Create: parm}), nil
}

// CreateRawJoinTx 构造加入游戏的交易
func CreateRawJoinTx(parm *RpsJoin) (*types.Transaction, error) {
	if parm == nil || parm.Game == "" {
		return nil, types.ErrInvalidParam
	}
	if !parm.Choice.Valid() {
		return nil, ErrInvalidChoice
	}
	return types.CreateTx(RpsX, &RpsAction{Join: parm}), nil
}

// CreateRawRevealTx 构造开奖交易
func CreateRawRevealTx(parm *RpsReveal) (*types.Transaction, error) {
	if parm == nil || parm.Game == "" {
		return nil, types.ErrInvalidParam
	}
	if !parm.Choice.Valid() {
		return nil, ErrInvalidChoice
	}
	return types.CreateTx(RpsX, &RpsAction{Reveal: parm}), nil
}

// CreateRawSettleTx 构造结算交易
func CreateRawSettleTx(game string) (*types.Transaction, error) {
	if game == "" {
		return nil, types.ErrInvalidParam
	}
	return types.CreateTx(RpsX, &RpsAction{Settle: &RpsSettle{Game: game}}), nil
}

// CreateRawCleanTx 构造清理交易
func CreateRawCleanTx(game string) (*types.Transaction, error) {
	if game == "" {
		return nil, types.ErrInvalidParam
	}
	return types.CreateTx(RpsX, &RpsAction{Clean: &RpsClean{Game: game}}), nil
}

// CreateRawExpireTx 构造超时处理交易
func CreateRawExpireTx(game string) (*types.Transaction, error) {
	if game == "" {
		return nil, types.ErrInvalidParam
	}
	return types.CreateTx(RpsX, &RpsAction{Expire: &RpsExpire{Game: game}}), nil
}
