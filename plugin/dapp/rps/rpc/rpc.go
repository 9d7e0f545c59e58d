// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpc rps 的 jrpc 服务, 构造未签名的交易
package rpc

import (
	rpctypes "github.com/33cn/rpschain/rpc/types"
	log "github.com/inconshreveable/log15"
)

var rlog = log.New("module", "rps.rpc")

// Jrpc rps jrpc
type Jrpc struct {
	cli *channelClient
}

type channelClient struct {
	rpctypes.ChannelClient
}

// Init 注册 rps 服务
func Init(name string, s rpctypes.RPCServer) {
	cli := &channelClient{}
	if err := cli.Init(name, s, &Jrpc{cli: cli}); err != nil {
		rlog.Error("Init", "name", name, "err", err)
	}
}
