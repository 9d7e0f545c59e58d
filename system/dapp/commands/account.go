// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands 系统执行器的命令行
package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/33cn/rpschain/common"
	"github.com/33cn/rpschain/common/address"
	"github.com/33cn/rpschain/common/crypto"
	"github.com/33cn/rpschain/common/crypto/secp256k1"
	"github.com/33cn/rpschain/rpc/jsonclient"
	rpctypes "github.com/33cn/rpschain/rpc/types"
	commandtypes "github.com/33cn/rpschain/system/dapp/commands/types"
	"github.com/33cn/rpschain/types"
	"github.com/spf13/cobra"
)

// AccountCmd account command
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account management",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		NewAccountCmd(),
		GetBalanceCmd(),
		KeyAddrCmd(),
	)

	return cmd
}

// NewAccountCmd 生成新的私钥
func NewAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate a new secp256k1 key pair",
		Run:   newAccount,
	}
	return cmd
}

func newAccount(cmd *cobra.Command, args []string) {
	c, err := crypto.New(secp256k1.Name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	priv, err := c.GenKey()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	printJSON(&commandtypes.KeyResult{
		Privkey: common.ToHex(priv.Bytes()),
		Pubkey:  common.ToHex(priv.PubKey().Bytes()),
		Addr:    address.PubKeyToAddr(priv.PubKey().Bytes()),
	})
}

// KeyAddrCmd 私钥对应的地址
func KeyAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addr",
		Short: "Get the address of a private key",
		Run:   keyAddr,
	}
	cmd.Flags().StringP("key", "k", "", "hex private key")
	cmd.MarkFlagRequired("key")
	return cmd
}

func keyAddr(cmd *cobra.Command, args []string) {
	key, _ := cmd.Flags().GetString("key")
	addr, err := commandtypes.KeyAddress(key)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(addr)
}

// GetBalanceCmd get balance of an address
func GetBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get coins balance of a account address",
		Run:   balance,
	}
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func balance(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	addr, _ := cmd.Flags().GetString("addr")
	var res types.Account
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain.GetBalance", rpctypes.ReqAddr{Addr: addr}, &res)
	ctx.SetResultCb(parseBalance)
	ctx.Run()
}

func parseBalance(res interface{}) (interface{}, error) {
	acc := res.(*types.Account)
	return &commandtypes.AccountResult{
		Currency: acc.Currency,
		Addr:     acc.Addr,
		Balance:  commandtypes.FormatAmountValue2Display(acc.Balance, commandtypes.CoinDecimals),
	}, nil
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(string(data))
}
