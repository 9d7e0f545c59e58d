// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	_ "github.com/33cn/rpschain/plugin"
	_ "github.com/33cn/rpschain/system"
	"github.com/33cn/rpschain/util/cli"
)

func main() {
	cli.RunNode("rpschain")
}
