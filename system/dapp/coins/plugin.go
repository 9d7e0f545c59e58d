// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coins 原生币执行器插件
package coins

import (
	"github.com/33cn/rpschain/pluginmgr"
	"github.com/33cn/rpschain/system/dapp/coins/executor"
	// 注册 coins 执行器类型
	_ "github.com/33cn/rpschain/system/dapp/coins/types"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     "coins",
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      nil,
		RPC:      nil,
	})
}
