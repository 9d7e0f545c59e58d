// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rps 石头剪刀布游戏插件
package rps

import (
	"github.com/33cn/rpschain/plugin/dapp/rps/commands"
	"github.com/33cn/rpschain/plugin/dapp/rps/executor"
	"github.com/33cn/rpschain/plugin/dapp/rps/rpc"
	// 注册 rps 执行器类型
	_ "github.com/33cn/rpschain/plugin/dapp/rps/types"
	"github.com/33cn/rpschain/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     "rps",
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.Cmd,
		RPC:      rpc.Init,
	})
}
