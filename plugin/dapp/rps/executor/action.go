// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/rpschain/account"
	"github.com/33cn/rpschain/common"
	dbm "github.com/33cn/rpschain/common/db"
	rt "github.com/33cn/rpschain/plugin/dapp/rps/types"
	"github.com/33cn/rpschain/types"
	"github.com/pkg/errors"
)

// Action 一次 rps 交易的执行环境
type Action struct {
	coinsAccount *account.DB
	tokenDB      *account.TokenDB
	db           dbm.KV
	txhash       string
	signer       types.Signer
	height       uint64
	index        int
	conf         *rt.Config
}

// NewAction 签名检查失败时返回错误
func NewAction(r *rps, tx *types.Transaction, index int) (*Action, error) {
	signer, err := tx.Signer()
	if err != nil {
		return nil, err
	}
	conf, err := rt.LoadConfig(r.GetConfig())
	if err != nil {
		return nil, err
	}
	return &Action{
		coinsAccount: r.GetCoinsAccount(),
		tokenDB:      r.GetTokenDB(),
		db:           r.GetStateDB(),
		txhash:       common.ToHex(tx.Hash()),
		signer:       signer,
		height:       r.GetHeight(),
		index:        index,
		conf:         conf,
	}, nil
}

func (action *Action) fail(op, game string, err error) error {
	rlog.Error(op, "addr", action.signer.Address(), "game", game, "err", err)
	return err
}

//GetIndex height*MaxTxsPerBlock + index
func (action *Action) GetIndex() uint64 {
	return action.height*types.MaxTxsPerBlock + uint64(action.index)
}

func (action *Action) readGame(addr string) (*rt.Game, error) {
	return readGame(action.db, addr)
}

func (action *Action) saveGame(game *rt.Game) *types.KeyValue {
	kv := &types.KeyValue{Key: Key(game.Addr), Value: types.Encode(game)}
	if err := action.db.Set(kv.Key, kv.Value); err != nil {
		rlog.Error("saveGame", "game", game.Addr, "err", err)
	}
	return kv
}

// 状态变化前调用, 记录上一次 action 的 index
func (action *Action) nextIndex(game *rt.Game) {
	game.PrevIndex = game.Index
	game.Index = action.GetIndex()
}

func (action *Action) receiptLog(ty uint32, game *rt.Game, prevStatus uint32) *types.ReceiptLog {
	r := &rt.ReceiptGame{
		Addr:       game.Addr,
		Actor:      action.signer.Address(),
		Player1:    game.Player1,
		Player2:    game.Player2,
		Status:     game.Status,
		PrevStatus: prevStatus,
		Outcome:    game.Outcome,
		Index:      game.Index,
		PrevIndex:  game.PrevIndex,
	}
	return &types.ReceiptLog{Ty: ty, Log: types.Encode(r)}
}

func (action *Action) expiry(timeout uint64) (uint64, error) {
	if action.height+timeout < action.height {
		return 0, rt.ErrArithmeticOverflow
	}
	return action.height + timeout, nil
}

// 玩家用来押注的 token 账户, 默认为关联账户
func (action *Action) depositAccount(tokenAccount, mint string) (string, error) {
	if tokenAccount == "" {
		tokenAccount = account.AssociatedAddress(action.signer.Address(), mint)
	}
	acc, err := action.tokenDB.LoadAccount(tokenAccount)
	if err != nil {
		return "", err
	}
	if acc.Mint != mint {
		return "", errors.Wrapf(rt.ErrMintMismatch, "account %s mint %s game mint %s", tokenAccount, acc.Mint, mint)
	}
	return tokenAccount, nil
}

// GameCreate 创建游戏, 分配游戏记录和托管账户, player1 押注转入托管账户
func (action *Action) GameCreate(create *rt.RpsCreate) (*types.Receipt, error) {
	gameAddr := GameAddress(create.Seed)
	if create.Stake == 0 {
		return nil, action.fail("GameCreate", gameAddr, rt.ErrStakeZero)
	}
	if _, err := rt.Pot(create.Stake); err != nil {
		return nil, action.fail("GameCreate", gameAddr, err)
	}
	if action.conf.MaxStake > 0 && create.Stake > action.conf.MaxStake {
		return nil, action.fail("GameCreate", gameAddr, errors.Wrapf(rt.ErrStakeTooLarge, "stake %d max %d", create.Stake, action.conf.MaxStake))
	}
	if len(create.Commitment) != rt.CommitmentSize {
		return nil, action.fail("GameCreate", gameAddr, rt.ErrCommitmentSize)
	}
	if _, err := action.readGame(gameAddr); err == nil {
		return nil, action.fail("GameCreate", gameAddr, errors.Wrapf(rt.ErrInvalidState, "game %s in use", gameAddr))
	}
	if _, err := action.tokenDB.LoadMint(create.Mint); err != nil {
		return nil, action.fail("GameCreate", gameAddr, err)
	}
	from, err := action.depositAccount(create.TokenAccount, create.Mint)
	if err != nil {
		return nil, action.fail("GameCreate", gameAddr, err)
	}
	expiry, err := action.expiry(action.conf.JoinTimeout)
	if err != nil {
		return nil, action.fail("GameCreate", gameAddr, err)
	}
	player1 := action.signer.Address()
	escrow := EscrowAddress(gameAddr)
	authority := Authority(gameAddr)

	receipt, err := action.coinsAccount.Allocate(player1, gameAddr, rt.GameSpace)
	if err != nil {
		return nil, action.fail("GameCreate.Allocate", gameAddr, err)
	}
	r, err := action.tokenDB.InitAccount(player1, escrow, create.Mint, authority.Address())
	if err != nil {
		return nil, action.fail("GameCreate.InitAccount", gameAddr, err)
	}
	receipt = types.MergeReceipt(receipt, r)
	r, err = action.tokenDB.Transfer(from, escrow, action.signer, create.Stake)
	if err != nil {
		return nil, action.fail("GameCreate.Transfer", gameAddr, err)
	}
	receipt = types.MergeReceipt(receipt, r)

	game := &rt.Game{
		Addr:           gameAddr,
		Seed:           create.Seed,
		Mint:           create.Mint,
		Stake:          create.Stake,
		Player1:        player1,
		Player1Account: from,
		Commitment:     common.CopyBytes(create.Commitment),
		Status:         rt.StatusCreated,
		Escrow:         escrow,
		Authority:      authority.Address(),
		CreateHeight:   action.height,
		ExpiryHeight:   expiry,
		Index:          action.GetIndex(),
		CreateTxHash:   action.txhash,
	}
	kv := action.saveGame(game)
	receipt.KV = append(receipt.KV, kv)
	receipt.Logs = append(receipt.Logs, action.receiptLog(rt.TyLogRpsCreate, game, rt.StatusClosed))
	return receipt, nil
}

// GameJoin player2 明文给出选择, 押注转入托管账户
func (action *Action) GameJoin(join *rt.RpsJoin) (*types.Receipt, error) {
	game, err := action.readGame(join.Game)
	if err != nil {
		return nil, action.fail("GameJoin", join.Game, err)
	}
	if game.Player1 == action.signer.Address() {
		return nil, action.fail("GameJoin", game.Addr, errors.Wrap(rt.ErrUnauthorized, "can't join your own game"))
	}
	if game.Joined() {
		return nil, action.fail("GameJoin", game.Addr, rt.ErrAlreadyJoined)
	}
	if game.Status != rt.StatusCreated {
		return nil, action.fail("GameJoin", game.Addr, errors.Wrapf(rt.ErrInvalidState, "status %s", rt.StatusName(game.Status)))
	}
	if !join.Choice.Valid() {
		return nil, action.fail("GameJoin", game.Addr, rt.ErrInvalidChoice)
	}
	from, err := action.depositAccount(join.TokenAccount, game.Mint)
	if err != nil {
		return nil, action.fail("GameJoin", game.Addr, err)
	}
	expiry, err := action.expiry(action.conf.RevealTimeout)
	if err != nil {
		return nil, action.fail("GameJoin", game.Addr, err)
	}
	receipt, err := action.tokenDB.Transfer(from, game.Escrow, action.signer, game.Stake)
	if err != nil {
		return nil, action.fail("GameJoin.Transfer", game.Addr, err)
	}
	game.Player2 = action.signer.Address()
	game.Player2Account = from
	game.Player2Choice = join.Choice
	game.Status = rt.StatusJoined
	game.ExpiryHeight = expiry
	game.JoinTxHash = action.txhash
	action.nextIndex(game)
	kv := action.saveGame(game)
	receipt.KV = append(receipt.KV, kv)
	receipt.Logs = append(receipt.Logs, action.receiptLog(rt.TyLogRpsJoin, game, rt.StatusCreated))
	return receipt, nil
}

// GameReveal player1 公开选择和 salt, 与承诺不符时游戏状态不变
func (action *Action) GameReveal(reveal *rt.RpsReveal) (*types.Receipt, error) {
	game, err := action.readGame(reveal.Game)
	if err != nil {
		return nil, action.fail("GameReveal", reveal.Game, err)
	}
	if game.Player1 != action.signer.Address() {
		return nil, action.fail("GameReveal", game.Addr, errors.Wrap(rt.ErrUnauthorized, "only player1 can reveal"))
	}
	if game.Status != rt.StatusJoined {
		return nil, action.fail("GameReveal", game.Addr, errors.Wrapf(rt.ErrInvalidState, "status %s", rt.StatusName(game.Status)))
	}
	if !rt.VerifyCommitment(game.Commitment, game.Player1, reveal.Salt, reveal.Choice) {
		return nil, action.fail("GameReveal", game.Addr, rt.ErrInvalidReveal)
	}
	game.Player1Choice = reveal.Choice
	game.Status = rt.StatusRevealed
	game.RevealTxHash = action.txhash
	action.nextIndex(game)
	kv := action.saveGame(game)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kv},
		Logs: []*types.ReceiptLog{action.receiptLog(rt.TyLogRpsReveal, game, rt.StatusJoined)},
	}, nil
}
