// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/33cn/rpschain/account"
	"github.com/33cn/rpschain/rpc/jsonclient"
	rpctypes "github.com/33cn/rpschain/rpc/types"
	commandtypes "github.com/33cn/rpschain/system/dapp/commands/types"
	tokenty "github.com/33cn/rpschain/system/dapp/token/types"
	"github.com/33cn/rpschain/types"
	"github.com/spf13/cobra"
)

// TokenCmd token command
func TokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Token management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		CreateMintCmd(),
		CreateTokenAccountCmd(),
		MintToCmd(),
		TokenTransferCmd(),
		TokenBalanceCmd(),
		GetMintCmd(),
	)
	return cmd
}

func queryMint(rpcLaddr, mint string) (*types.Mint, error) {
	rpc, err := jsonclient.NewJSONClient(rpcLaddr)
	if err != nil {
		return nil, err
	}
	params, err := json.Marshal(&tokenty.ReqAddr{Addr: mint})
	if err != nil {
		return nil, err
	}
	var res types.Mint
	err = rpc.Call("Chain.Query", rpctypes.Query4Jrpc{Execer: tokenty.TokenX, FuncName: "GetMint", Payload: params}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func tokenAmount(cmd *cobra.Command, mint string) (uint64, error) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	amountStr, _ := cmd.Flags().GetString("amount")
	m, err := queryMint(rpcLaddr, mint)
	if err != nil {
		return 0, err
	}
	return commandtypes.FormatAmountDisplay2Value(amountStr, int32(m.Decimals))
}

// CreateMintCmd 创建币种
func CreateMintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create_mint",
		Short: "Create a token mint, the signer is the mint authority",
		Run:   createMint,
	}
	cmd.Flags().StringP("symbol", "s", "", "token symbol")
	cmd.MarkFlagRequired("symbol")
	cmd.Flags().Uint32P("decimals", "d", 0, "token decimals")
	commandtypes.AddKeyFlag(cmd)
	return cmd
}

func createMint(cmd *cobra.Command, args []string) {
	symbol, _ := cmd.Flags().GetString("symbol")
	decimals, _ := cmd.Flags().GetUint32("decimals")
	key, _ := cmd.Flags().GetString("key")
	if key != "" {
		creator, err := commandtypes.KeyAddress(key)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		fmt.Println("mint:", account.MintAddress(creator, symbol))
	}
	tx := types.CreateTx(tokenty.TokenX, &tokenty.TokenAction{CreateMint: &tokenty.TokenCreateMint{Symbol: symbol, Decimals: decimals}})
	commandtypes.SendOrPrint(cmd, tx)
}

// CreateTokenAccountCmd 创建关联账户
func CreateTokenAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create_account",
		Short: "Create the signer's associated token account of a mint",
		Run:   createTokenAccount,
	}
	cmd.Flags().StringP("mint", "m", "", "mint address")
	cmd.MarkFlagRequired("mint")
	commandtypes.AddKeyFlag(cmd)
	return cmd
}

func createTokenAccount(cmd *cobra.Command, args []string) {
	mint, _ := cmd.Flags().GetString("mint")
	key, _ := cmd.Flags().GetString("key")
	if key != "" {
		owner, err := commandtypes.KeyAddress(key)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		fmt.Println("account:", account.AssociatedAddress(owner, mint))
	}
	tx := types.CreateTx(tokenty.TokenX, &tokenty.TokenAction{CreateAccount: &tokenty.TokenCreateAccount{Mint: mint}})
	commandtypes.SendOrPrint(cmd, tx)
}

// MintToCmd 增发
func MintToCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Mint tokens to a token account",
		Run:   mintTo,
	}
	cmd.Flags().StringP("mint", "m", "", "mint address")
	cmd.MarkFlagRequired("mint")
	cmd.Flags().StringP("to", "t", "", "token account address")
	cmd.MarkFlagRequired("to")
	cmd.Flags().StringP("amount", "a", "", "amount, e.g. 10.5")
	cmd.MarkFlagRequired("amount")
	commandtypes.AddKeyFlag(cmd)
	return cmd
}

func mintTo(cmd *cobra.Command, args []string) {
	mint, _ := cmd.Flags().GetString("mint")
	to, _ := cmd.Flags().GetString("to")
	amount, err := tokenAmount(cmd, mint)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	tx := types.CreateTx(tokenty.TokenX, &tokenty.TokenAction{MintTo: &tokenty.TokenMintTo{Mint: mint, To: to, Amount: amount}})
	commandtypes.SendOrPrint(cmd, tx)
}

// TokenTransferCmd token 转账
func TokenTransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer tokens between token accounts of the same mint",
		Run:   tokenTransfer,
	}
	cmd.Flags().StringP("from", "f", "", "source token account, owned by the signer")
	cmd.MarkFlagRequired("from")
	cmd.Flags().StringP("to", "t", "", "destination token account")
	cmd.MarkFlagRequired("to")
	cmd.Flags().StringP("mint", "m", "", "mint address")
	cmd.MarkFlagRequired("mint")
	cmd.Flags().StringP("amount", "a", "", "amount, e.g. 10.5")
	cmd.MarkFlagRequired("amount")
	commandtypes.AddKeyFlag(cmd)
	return cmd
}

func tokenTransfer(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	mint, _ := cmd.Flags().GetString("mint")
	amount, err := tokenAmount(cmd, mint)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	tx := types.CreateTx(tokenty.TokenX, &tokenty.TokenAction{Transfer: &tokenty.TokenTransfer{From: from, To: to, Amount: amount}})
	commandtypes.SendOrPrint(cmd, tx)
}

// TokenBalanceCmd token 账户余额
func TokenBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get a token account, by address or by owner and mint",
		Run:   tokenBalance,
	}
	cmd.Flags().StringP("addr", "a", "", "token account address")
	cmd.Flags().StringP("owner", "o", "", "owner of the associated account")
	cmd.Flags().StringP("mint", "m", "", "mint of the associated account")
	return cmd
}

func tokenBalance(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	addr, _ := cmd.Flags().GetString("addr")
	owner, _ := cmd.Flags().GetString("owner")
	mint, _ := cmd.Flags().GetString("mint")
	if addr == "" {
		if owner == "" || mint == "" {
			fmt.Fprintln(os.Stderr, "addr or owner and mint required")
			return
		}
		addr = account.AssociatedAddress(owner, mint)
	}
	var res types.TokenAccount
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain.GetTokenAccount", rpctypes.ReqAddr{Addr: addr}, &res)
	ctx.SetResultCb(func(res interface{}) (interface{}, error) {
		acc := res.(*types.TokenAccount)
		m, err := queryMint(rpcLaddr, acc.Mint)
		if err != nil {
			return nil, err
		}
		return &commandtypes.TokenAccountResult{
			Addr:    acc.Addr,
			Mint:    acc.Mint,
			Owner:   acc.Owner,
			Amount:  acc.Amount,
			Balance: commandtypes.FormatAmountValue2Display(acc.Amount, int32(m.Decimals)),
		}, nil
	})
	ctx.Run()
}

// GetMintCmd 查询币种
func GetMintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get_mint",
		Short: "Get a token mint",
		Run:   getMint,
	}
	cmd.Flags().StringP("mint", "m", "", "mint address")
	cmd.MarkFlagRequired("mint")
	return cmd
}

func getMint(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	mint, _ := cmd.Flags().GetString("mint")
	m, err := queryMint(rpcLaddr, mint)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	printJSON(m)
}
