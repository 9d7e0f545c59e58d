// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"

	"github.com/33cn/rpschain/common/log"
	"github.com/33cn/rpschain/pluginmgr"
	"github.com/33cn/rpschain/system/dapp/commands"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rpschain-cli",
	Short: "rpschain client tools",
}

func init() {
	rootCmd.AddCommand(
		commands.AccountCmd(),
		commands.CoinsCmd(),
		commands.TokenCmd(),
		commands.TxCmd(),
		commands.HeightCmd(),
	)
}

//Run : 命令行入口, RPCAddr 为默认的 rpc 地址
func Run(RPCAddr string) {
	pluginmgr.AddCmd(rootCmd)
	log.SetLogLevel("error")
	if env := os.Getenv("RPSCHAIN_RPC_LADDR"); env != "" {
		RPCAddr = env
	}
	rootCmd.PersistentFlags().String("rpc_laddr", RPCAddr, "http url")
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
