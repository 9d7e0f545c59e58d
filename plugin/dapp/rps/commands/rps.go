// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands rps 命令行
package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/33cn/rpschain/common"
	"github.com/33cn/rpschain/common/crypto"
	"github.com/33cn/rpschain/plugin/dapp/rps/executor"
	rt "github.com/33cn/rpschain/plugin/dapp/rps/types"
	"github.com/33cn/rpschain/rpc/jsonclient"
	rpctypes "github.com/33cn/rpschain/rpc/types"
	commandtypes "github.com/33cn/rpschain/system/dapp/commands/types"
	"github.com/33cn/rpschain/types"
	"github.com/spf13/cobra"
)

// Cmd rps 命令
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rps",
		Short: "Rock paper scissors game management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		CommitCmd(),
		CreateCmd(),
		JoinCmd(),
		RevealCmd(),
		SettleCmd(),
		CleanCmd(),
		ExpireCmd(),
		ShowCmd(),
		ListCmd(),
	)
	return cmd
}

// CreateResult 创建游戏的输出, salt 必须保存到开奖
type CreateResult struct {
	Game       string `json:"game"`
	Seed       uint64 `json:"seed"`
	Choice     string `json:"choice"`
	Salt       uint64 `json:"salt"`
	Commitment string `json:"commitment"`
	Hash       string `json:"hash,omitempty"`
	Tx         string `json:"tx,omitempty"`
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(string(data))
}

// CommitCmd 计算承诺
func CommitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Compute a commitment of choice and salt for a player",
		Run:   commit,
	}
	cmd.Flags().StringP("player", "p", "", "player address")
	cmd.MarkFlagRequired("player")
	cmd.Flags().StringP("choice", "c", "", "rock | paper | scissors")
	cmd.MarkFlagRequired("choice")
	cmd.Flags().Uint64P("salt", "s", 0, "salt, random if 0")
	return cmd
}

func commit(cmd *cobra.Command, args []string) {
	player, _ := cmd.Flags().GetString("player")
	choiceStr, _ := cmd.Flags().GetString("choice")
	salt, _ := cmd.Flags().GetUint64("salt")
	choice, err := rt.ParseChoice(choiceStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if salt == 0 {
		salt = rt.NewSalt()
	}
	c, err := rt.Commit(player, salt, choice)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	printJSON(map[string]interface{}{
		"commitment": common.ToHex(c[:]),
		"salt":       salt,
		"choice":     choice.String(),
	})
}

// CreateCmd 创建游戏
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a game, commit to a hidden choice and escrow the stake",
		Run:   create,
	}
	cmd.Flags().Uint64P("seed", "e", 0, "game seed, random if 0")
	cmd.Flags().StringP("mint", "m", "", "mint of the stake")
	cmd.MarkFlagRequired("mint")
	cmd.Flags().Uint64P("stake", "a", 0, "stake in the mint's base units")
	cmd.MarkFlagRequired("stake")
	cmd.Flags().StringP("choice", "c", "", "rock | paper | scissors, requires --key")
	cmd.Flags().Uint64P("salt", "s", 0, "salt, random if 0")
	cmd.Flags().StringP("commitment", "o", "", "hex commitment, used when --key is empty")
	cmd.Flags().StringP("account", "t", "", "token account paying the stake, default the associated account")
	commandtypes.AddKeyFlag(cmd)
	return cmd
}

func create(cmd *cobra.Command, args []string) {
	seed, _ := cmd.Flags().GetUint64("seed")
	mint, _ := cmd.Flags().GetString("mint")
	stake, _ := cmd.Flags().GetUint64("stake")
	choiceStr, _ := cmd.Flags().GetString("choice")
	salt, _ := cmd.Flags().GetUint64("salt")
	commitmentHex, _ := cmd.Flags().GetString("commitment")
	tokenAccount, _ := cmd.Flags().GetString("account")
	key, _ := cmd.Flags().GetString("key")
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")

	if seed == 0 {
		seed = crypto.RandUint64()
	}
	result := &CreateResult{Game: executor.GameAddress(seed), Seed: seed}
	var commitment []byte
	if key != "" {
		player, err := commandtypes.KeyAddress(key)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		choice, err := rt.ParseChoice(choiceStr)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		if salt == 0 {
			salt = rt.NewSalt()
		}
		c, err := rt.Commit(player, salt, choice)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		commitment = c[:]
		result.Choice = choice.String()
		result.Salt = salt
	} else {
		var err error
		commitment, err = common.FromHex(commitmentHex)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
	}
	result.Commitment = common.ToHex(commitment)
	tx, err := rt.CreateRawCreateTx(&rt.RpsCreate{
		Seed:         seed,
		Mint:         mint,
		Commitment:   commitment,
		Stake:        stake,
		TokenAccount: tokenAccount,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if key == "" {
		result.Tx = types.EncodeTx(tx)
		printJSON(result)
		return
	}
	sent, err := commandtypes.SendTx(rpcLaddr, tx, key)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	result.Hash = sent.Hash
	printJSON(result)
}

// JoinCmd 加入游戏
func JoinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join",
		Short: "Join a game with a plain choice and escrow the same stake",
		Run:   join,
	}
	addGameFlag(cmd)
	cmd.Flags().StringP("choice", "c", "", "rock | paper | scissors")
	cmd.MarkFlagRequired("choice")
	cmd.Flags().StringP("account", "t", "", "token account paying the stake, default the associated account")
	commandtypes.AddKeyFlag(cmd)
	return cmd
}

func join(cmd *cobra.Command, args []string) {
	game, _ := cmd.Flags().GetString("game")
	choiceStr, _ := cmd.Flags().GetString("choice")
	tokenAccount, _ := cmd.Flags().GetString("account")
	choice, err := rt.ParseChoice(choiceStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	tx, err := rt.CreateRawJoinTx(&rt.RpsJoin{Game: game, Choice: choice, TokenAccount: tokenAccount})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	commandtypes.SendOrPrint(cmd, tx)
}

// RevealCmd 开奖
func RevealCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Reveal the committed choice and salt",
		Run:   reveal,
	}
	addGameFlag(cmd)
	cmd.Flags().StringP("choice", "c", "", "rock | paper | scissors")
	cmd.MarkFlagRequired("choice")
	cmd.Flags().Uint64P("salt", "s", 0, "salt used in create")
	cmd.MarkFlagRequired("salt")
	commandtypes.AddKeyFlag(cmd)
	return cmd
}

func reveal(cmd *cobra.Command, args []string) {
	game, _ := cmd.Flags().GetString("game")
	choiceStr, _ := cmd.Flags().GetString("choice")
	salt, _ := cmd.Flags().GetUint64("salt")
	choice, err := rt.ParseChoice(choiceStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	tx, err := rt.CreateRawRevealTx(&rt.RpsReveal{Game: game, Choice: choice, Salt: salt})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	commandtypes.SendOrPrint(cmd, tx)
}

func addGameFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("game", "g", "", "game address")
	cmd.MarkFlagRequired("game")
}

func gameCmd(use, short string, create func(game string) (*types.Transaction, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Run: func(cmd *cobra.Command, args []string) {
			game, _ := cmd.Flags().GetString("game")
			tx, err := create(game)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			commandtypes.SendOrPrint(cmd, tx)
		},
	}
	addGameFlag(cmd)
	commandtypes.AddKeyFlag(cmd)
	return cmd
}

// SettleCmd 结算
func SettleCmd() *cobra.Command {
	return gameCmd("settle", "Pay out a revealed game", rt.CreateRawSettleTx)
}

// CleanCmd 清理
func CleanCmd() *cobra.Command {
	return gameCmd("clean", "Close a settled game and collect its rent deposits", rt.CreateRawCleanTx)
}

// ExpireCmd 超时
func ExpireCmd() *cobra.Command {
	return gameCmd("expire", "Cancel an unjoined game or claim an unrevealed one after expiry", rt.CreateRawExpireTx)
}

// ShowCmd 查询游戏
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a game by address or seed",
		Run:   show,
	}
	cmd.Flags().StringP("game", "g", "", "game address")
	cmd.Flags().Uint64P("seed", "e", 0, "game seed")
	return cmd
}

func show(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	game, _ := cmd.Flags().GetString("game")
	seed, _ := cmd.Flags().GetUint64("seed")
	payload, err := json.Marshal(&rt.QueryGame{Addr: game, Seed: seed})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	params := rpctypes.Query4Jrpc{Execer: rt.RpsX, FuncName: rt.FuncNameGetGame, Payload: payload}
	var res rt.Game
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain.Query", params, &res)
	ctx.SetResultCb(func(res interface{}) (interface{}, error) {
		return newGameResult(res.(*rt.Game)), nil
	})
	ctx.Run()
}

// ListCmd 按状态列出游戏
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List games by status, optionally of one player",
		Run:   list,
	}
	cmd.Flags().Uint32P("status", "s", rt.StatusCreated, "1:created 2:joined 3:revealed 4:settled")
	cmd.Flags().StringP("addr", "a", "", "player address")
	cmd.Flags().Int32P("count", "n", rt.DefaultCount, "page size")
	cmd.Flags().Int32P("direction", "d", rt.ListDESC, "0:desc 1:asc")
	cmd.Flags().Uint64P("index", "i", 0, "index of the last game of the previous page")
	return cmd
}

func list(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	status, _ := cmd.Flags().GetUint32("status")
	addr, _ := cmd.Flags().GetString("addr")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	index, _ := cmd.Flags().GetUint64("index")
	payload, err := json.Marshal(&rt.QueryGameList{Status: status, Addr: addr, Count: count, Direction: direction, Index: index})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	params := rpctypes.Query4Jrpc{Execer: rt.RpsX, FuncName: rt.FuncNameListGames, Payload: payload}
	var res rt.ReplyGameList
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain.Query", params, &res)
	ctx.SetResultCb(func(res interface{}) (interface{}, error) {
		var games []*GameResult
		for _, g := range res.(*rt.ReplyGameList).Games {
			games = append(games, newGameResult(g))
		}
		return games, nil
	})
	ctx.Run()
}

// GameResult 游戏的显示格式
type GameResult struct {
	*rt.Game
	StatusName    string `json:"statusName"`
	OutcomeName   string `json:"outcomeName"`
	Player1Choice string `json:"player1Choice"`
	Player2Choice string `json:"player2Choice"`
	Commitment    string `json:"commitment"`
}

func newGameResult(g *rt.Game) *GameResult {
	r := &GameResult{
		Game:        g,
		StatusName:  rt.StatusName(g.Status),
		OutcomeName: rt.OutcomeName(g.Outcome),
		Commitment:  common.ToHex(g.Commitment),
	}
	if g.Joined() {
		r.Player2Choice = g.Player2Choice.String()
	}
	if g.Status >= rt.StatusRevealed {
		r.Player1Choice = g.Player1Choice.String()
	}
	return r
}
