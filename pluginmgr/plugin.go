// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	rpctypes "github.com/33cn/rpschain/rpc/types"
	"github.com/33cn/rpschain/types"
	"github.com/spf13/cobra"
)

// Plugin 一个 dapp 插件: 执行器, 命令行, rpc
type Plugin interface {
	// 获取整个插件的包名，用以计算唯一值、做前缀等
	GetName() string
	// 获取插件中执行器名
	GetExecutorName() string
	// 初始化执行器时会调用该接口
	InitExec(cfg *types.Config)
	AddCmd(rootCmd *cobra.Command)
	AddRPC(s rpctypes.RPCServer)
}
