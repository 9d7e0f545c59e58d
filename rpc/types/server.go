// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types rpc 服务与插件之间的接口
package types

import (
	"net/rpc"

	"github.com/33cn/rpschain/types"
)

// ChainAPI 节点对 rpc 提供的功能
type ChainAPI interface {
	SendTx(tx *types.Transaction) ([]byte, error)
	Query(execer, funcName string, params []byte) (interface{}, error)
	GetHeight() uint64
	GetBalance(addr string) *types.Account
	GetTokenAccount(addr string) (*types.TokenAccount, error)
	GetReceipt(hash []byte) (*types.ReceiptData, error)
}

// RPCServer interface
type RPCServer interface {
	JRPC() *rpc.Server
	API() ChainAPI
}

// ChannelClient 插件 rpc 的公共部分
type ChannelClient struct {
	ChainAPI
	jrpc interface{}
}

// Init 注册插件的 jrpc 服务, 服务名为 name
func (c *ChannelClient) Init(name string, s RPCServer, jrpc interface{}) error {
	if c.ChainAPI == nil {
		c.ChainAPI = s.API()
	}
	c.jrpc = jrpc
	if jrpc != nil {
		return s.JRPC().RegisterName(name, jrpc)
	}
	return nil
}
