// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/33cn/rpschain/rpc/jsonclient"
	rpctypes "github.com/33cn/rpschain/rpc/types"
	commandtypes "github.com/33cn/rpschain/system/dapp/commands/types"
	"github.com/33cn/rpschain/types"
	"github.com/spf13/cobra"
)

// TxCmd transaction command
func TxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		CreateTxCmd(),
		SignTxCmd(),
		SendTxCmd(),
		DecodeTxCmd(),
		ReceiptCmd(),
	)
	return cmd
}

// CreateTxCmd 由节点按 action 名字构造交易
func CreateTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an unsigned transaction of any executor",
		Run:   createTx,
	}
	cmd.Flags().StringP("exec", "e", "", "executor name")
	cmd.MarkFlagRequired("exec")
	cmd.Flags().StringP("action", "a", "", "action name, e.g. Transfer")
	cmd.MarkFlagRequired("action")
	cmd.Flags().StringP("payload", "p", "{}", "action payload in json")
	return cmd
}

func createTx(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	exec, _ := cmd.Flags().GetString("exec")
	action, _ := cmd.Flags().GetString("action")
	payload, _ := cmd.Flags().GetString("payload")
	params := rpctypes.CreateTxIn{Execer: exec, ActionName: action, Payload: json.RawMessage(payload)}
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain.CreateTransaction", params, nil)
	ctx.RunWithoutMarshal()
}

// SignTxCmd 本地签名
func SignTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a raw transaction with a private key",
		Run:   signTx,
	}
	cmd.Flags().StringP("data", "d", "", "raw transaction hex")
	cmd.MarkFlagRequired("data")
	cmd.Flags().StringP("key", "k", "", "hex private key")
	cmd.MarkFlagRequired("key")
	cmd.Flags().Int64P("expire", "e", 0, "expire height, 0 means never")
	return cmd
}

func signTx(cmd *cobra.Command, args []string) {
	data, _ := cmd.Flags().GetString("data")
	key, _ := cmd.Flags().GetString("key")
	expire, _ := cmd.Flags().GetInt64("expire")
	tx, err := types.DecodeTx(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if expire > 0 {
		tx.Expire = uint64(expire)
	}
	if err := commandtypes.SignTx(tx, key); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(types.EncodeTx(tx))
}

// SendTxCmd 发送已签名的交易
func SendTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a signed transaction",
		Run:   sendTx,
	}
	cmd.Flags().StringP("data", "d", "", "signed transaction hex")
	cmd.MarkFlagRequired("data")
	return cmd
}

func sendTx(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	data, _ := cmd.Flags().GetString("data")
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain.SendTransaction", rpctypes.RawParm{Data: data}, nil)
	ctx.RunWithoutMarshal()
}

// DecodeTxCmd 解析交易
func DecodeTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a raw transaction",
		Run:   decodeTx,
	}
	cmd.Flags().StringP("data", "d", "", "transaction hex")
	cmd.MarkFlagRequired("data")
	return cmd
}

func decodeTx(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	data, _ := cmd.Flags().GetString("data")
	var res rpctypes.TransactionResult
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain.DecodeTransaction", rpctypes.RawParm{Data: data}, &res)
	ctx.Run()
}

// ReceiptCmd 交易回执
func ReceiptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "receipt",
		Short: "Get the receipt of a transaction",
		Run:   receipt,
	}
	cmd.Flags().StringP("hash", "s", "", "transaction hash")
	cmd.MarkFlagRequired("hash")
	return cmd
}

func receipt(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	hash, _ := cmd.Flags().GetString("hash")
	var res rpctypes.ReceiptDataResult
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain.GetReceipt", rpctypes.ReqHash{Hash: hash}, &res)
	ctx.Run()
}

// HeightCmd 当前高度
func HeightCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "height",
		Short: "Get the current block height",
		Run: func(cmd *cobra.Command, args []string) {
			rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
			var res rpctypes.ReplyHeight
			ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain.GetHeight", rpctypes.ReqNil{}, &res)
			ctx.Run()
		},
	}
	return cmd
}
