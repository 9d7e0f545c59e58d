// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"

	cty "github.com/33cn/rpschain/system/dapp/coins/types"
	commandtypes "github.com/33cn/rpschain/system/dapp/commands/types"
	"github.com/33cn/rpschain/types"
	"github.com/spf13/cobra"
)

// CoinsCmd coins command func
func CoinsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coins",
		Short: "Construct system coins transactions",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		CreateRawTransferCmd(),
	)
	return cmd
}

// CreateRawTransferCmd create raw transfer tx
func CreateRawTransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Create a transfer transaction",
		Run:   createTransfer,
	}
	addCreateTransferFlags(cmd)
	return cmd
}

func addCreateTransferFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("to", "t", "", "receiver account address")
	cmd.MarkFlagRequired("to")

	cmd.Flags().StringP("amount", "a", "", "transaction amount, e.g. 1.5")
	cmd.MarkFlagRequired("amount")

	cmd.Flags().StringP("note", "n", "", "transaction note info")
	commandtypes.AddKeyFlag(cmd)
}

func createTransfer(cmd *cobra.Command, args []string) {
	toAddr, _ := cmd.Flags().GetString("to")
	amountStr, _ := cmd.Flags().GetString("amount")
	note, _ := cmd.Flags().GetString("note")
	amount, err := commandtypes.FormatAmountDisplay2Value(amountStr, commandtypes.CoinDecimals)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	tx := types.CreateTx(cty.CoinsX, &cty.CoinsAction{Transfer: &cty.CoinsTransfer{To: toAddr, Amount: amount, Note: note}})
	commandtypes.SendOrPrint(cmd, tx)
}
