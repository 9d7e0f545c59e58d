// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/33cn/rpschain/common"
	"github.com/33cn/rpschain/rpc/jsonclient"
	rpctypes "github.com/33cn/rpschain/rpc/types"
	"github.com/33cn/rpschain/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAPI struct {
	sent []*types.Transaction
}

func (m *mockAPI) SendTx(tx *types.Transaction) ([]byte, error) {
	m.sent = append(m.sent, tx)
	return tx.Hash(), nil
}

func (m *mockAPI) Query(execer, funcName string, params []byte) (interface{}, error) {
	if execer != "mock" {
		return nil, types.ErrExecNotFound
	}
	return map[string]string{"func": funcName, "params": string(params)}, nil
}

func (m *mockAPI) GetHeight() uint64 { return 7 }

func (m *mockAPI) GetBalance(addr string) *types.Account {
	return &types.Account{Addr: addr, Balance: 100}
}

func (m *mockAPI) GetTokenAccount(addr string) (*types.TokenAccount, error) {
	return nil, types.ErrTokenAccountNotExist
}

func (m *mockAPI) GetReceipt(hash []byte) (*types.ReceiptData, error) {
	return &types.ReceiptData{Ty: types.ExecOk, Height: 3}, nil
}

func newTestServer(t *testing.T, cfg *types.RPC) (*mockAPI, *jsonclient.JSONClient, string) {
	api := &mockAPI{}
	if cfg.JrpcBindAddr == "" {
		cfg.JrpcBindAddr = "127.0.0.1:0"
	}
	r := New(cfg, api)
	port, err := r.Listen()
	require.NoError(t, err)
	t.Cleanup(r.Close)
	url := fmt.Sprintf("http://127.0.0.1:%d", port)
	client, err := jsonclient.NewJSONClient(url)
	require.NoError(t, err)
	return api, client, url
}

func TestChainMethods(t *testing.T) {
	api, client, _ := newTestServer(t, &types.RPC{})

	var height rpctypes.ReplyHeight
	require.NoError(t, client.Call("Chain.GetHeight", rpctypes.ReqNil{}, &height))
	assert.Equal(t, uint64(7), height.Height)

	tx := types.CreateTx("coins", struct{ A uint64 }{A: 1})
	var hash string
	require.NoError(t, client.Call("SendTransaction", rpctypes.RawParm{Data: types.EncodeTx(tx)}, &hash))
	assert.Equal(t, common.ToHex(tx.Hash()), hash)
	require.Len(t, api.sent, 1)

	err := client.Call("SendTransaction", rpctypes.RawParm{Data: "zz"}, &hash)
	assert.Error(t, err)

	var res map[string]string
	require.NoError(t, client.Call("Query", rpctypes.Query4Jrpc{Execer: "mock", FuncName: "F", Payload: []byte(`{"a":1}`)}, &res))
	assert.Equal(t, "F", res["func"])
	assert.Equal(t, `{"a":1}`, res["params"])
	err = client.Call("Query", rpctypes.Query4Jrpc{Execer: "none", FuncName: "F"}, &res)
	assert.Contains(t, err.Error(), types.ErrExecNotFound.Error())

	err = client.Call("GetTokenAccount", rpctypes.ReqAddr{Addr: "x"}, &res)
	assert.Contains(t, err.Error(), types.ErrTokenAccountNotExist.Error())

	var receipt rpctypes.ReceiptDataResult
	require.NoError(t, client.Call("GetReceipt", rpctypes.ReqHash{Hash: "0x01"}, &receipt))
	assert.Equal(t, "ExecOk", receipt.TyName)

	err = client.Call("CreateTransaction", rpctypes.CreateTxIn{Execer: "nosuchexec", ActionName: "A"}, &hash)
	assert.Contains(t, err.Error(), types.ErrExecNotFound.Error())
}

func TestFuncBlacklist(t *testing.T) {
	_, client, _ := newTestServer(t, &types.RPC{JrpcFuncBlacklist: []string{"Chain.SendTransaction"}})
	var hash string
	err := client.Call("SendTransaction", rpctypes.RawParm{Data: "0x00"}, &hash)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")

	var height rpctypes.ReplyHeight
	assert.NoError(t, client.Call("GetHeight", rpctypes.ReqNil{}, &height))
}

func TestHTTPMethod(t *testing.T) {
	_, _, url := newTestServer(t, &types.RPC{})
	resp, err := http.Get(url)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Post(url, "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestIPWhitelist(t *testing.T) {
	InitCfg(&types.RPC{})
	assert.True(t, checkIPWhitelist("127.0.0.1"))
	assert.True(t, checkIPWhitelist("::1"))
	assert.False(t, checkIPWhitelist("192.168.1.1"))

	InitCfg(&types.RPC{Whitelist: []string{"192.168.1.1"}})
	assert.True(t, checkIPWhitelist("192.168.1.1"))
	assert.True(t, checkIPWhitelist("::ffff:192.168.1.1"))
	assert.False(t, checkIPWhitelist("192.168.1.2"))

	InitCfg(&types.RPC{Whitelist: []string{"0.0.0.0"}})
	assert.True(t, checkIPWhitelist("10.0.0.1"))
}
