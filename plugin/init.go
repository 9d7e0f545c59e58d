// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plugin 插件执行器
package plugin

import (
	_ "github.com/33cn/rpschain/plugin/dapp/rps" //register rps
)
