// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package token token 执行器插件
package token

import (
	"github.com/33cn/rpschain/pluginmgr"
	"github.com/33cn/rpschain/system/dapp/token/executor"
	// 注册 token 执行器类型
	_ "github.com/33cn/rpschain/system/dapp/token/types"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     "token",
		ExecName: executor.GetName(),
		Exec:     executor.Init,
	})
}
