// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pluginmgr 插件管理, 插件在 init 中注册
package pluginmgr

import (
	"sort"
	"sync"

	rpctypes "github.com/33cn/rpschain/rpc/types"
	"github.com/33cn/rpschain/types"
	log "github.com/inconshreveable/log15"
	"github.com/spf13/cobra"
)

var (
	mgrlog      = log.New("module", "plugin.manager")
	pluginItems = make(map[string]Plugin)
	once        = &sync.Once{}
)

// InitExec 初始化所有插件的执行器, 只执行一次
func InitExec(cfg *types.Config) {
	once.Do(func() {
		for _, item := range sortedItems() {
			mgrlog.Debug("InitExec", "plugin", item.GetName(), "exec", item.GetExecutorName())
			item.InitExec(cfg)
		}
	})
}

// HasExec 是否有插件提供该执行器
func HasExec(name string) bool {
	for _, item := range pluginItems {
		if item.GetExecutorName() == name {
			return true
		}
	}
	return false
}

// Register 注册插件
func Register(p Plugin) {
	if p == nil {
		panic("plugin param is nil")
	}
	packageName := p.GetName()
	if len(packageName) == 0 {
		panic("plugin package name is empty")
	}
	if _, ok := pluginItems[packageName]; ok {
		panic("execute plugin item is existed. name = " + packageName)
	}
	pluginItems[packageName] = p
}

// AddCmd 添加所有插件的命令行
func AddCmd(rootCmd *cobra.Command) {
	for _, item := range sortedItems() {
		item.AddCmd(rootCmd)
	}
}

// AddRPC 注册所有插件的 rpc
func AddRPC(s rpctypes.RPCServer) {
	for _, item := range sortedItems() {
		item.AddRPC(s)
	}
}

func sortedItems() []Plugin {
	items := make([]Plugin, 0, len(pluginItems))
	for _, item := range pluginItems {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].GetName() < items[j].GetName() })
	return items
}
