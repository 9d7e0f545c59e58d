// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import (
	"fmt"
	"testing"

	"github.com/33cn/rpschain/common"
	"github.com/33cn/rpschain/common/address"
	"github.com/33cn/rpschain/common/crypto"
	"github.com/33cn/rpschain/common/crypto/secp256k1"
	"github.com/33cn/rpschain/common/db"
	"github.com/33cn/rpschain/metrics"
	_ "github.com/33cn/rpschain/plugin"
	rpsrpc "github.com/33cn/rpschain/plugin/dapp/rps/rpc"
	rt "github.com/33cn/rpschain/plugin/dapp/rps/types"
	"github.com/33cn/rpschain/rpc/jsonclient"
	rpctypes "github.com/33cn/rpschain/rpc/types"
	_ "github.com/33cn/rpschain/system"
	cty "github.com/33cn/rpschain/system/dapp/coins/types"
	"github.com/33cn/rpschain/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genKey(t *testing.T) crypto.PrivKey {
	c, err := crypto.New(secp256k1.Name)
	require.NoError(t, err)
	priv, err := c.GenKey()
	require.NoError(t, err)
	return priv
}

func transferTx(to string, amount uint64) *types.Transaction {
	return types.CreateTx(cty.CoinsX, &cty.CoinsAction{Transfer: &cty.CoinsTransfer{To: to, Amount: amount}})
}

func TestMempool(t *testing.T) {
	priv := genKey(t)
	mem := NewMempool(2)
	accepted := metrics.Meter("mempool.tx").Count()
	to := address.ExecAddress("to")

	tx1 := transferTx(to, 1)
	assert.Equal(t, types.ErrSign, mem.Push(tx1, 0, 0))
	tx1.Sign(uint32(secp256k1.ID), priv)
	require.NoError(t, mem.Push(tx1, 0, 0))
	assert.Equal(t, ErrTxExist, mem.Push(tx1, 0, 0))
	assert.True(t, mem.Exist(tx1.Hash()))

	tx2 := transferTx(to, 2)
	tx2.Sign(uint32(secp256k1.ID), priv)
	require.NoError(t, mem.Push(tx2, 0, 0))
	tx3 := transferTx(to, 3)
	tx3.Sign(uint32(secp256k1.ID), priv)
	assert.Equal(t, ErrMemFull, mem.Push(tx3, 0, 0))

	unknown := types.CreateTx("nosuchexec", &cty.CoinsAction{})
	unknown.Sign(uint32(secp256k1.ID), priv)
	assert.ErrorIs(t, mem.Push(unknown, 0, 0), types.ErrExecNotFound)
	assert.Equal(t, accepted+2, metrics.Meter("mempool.tx").Count())

	//按到达顺序出队
	txs := mem.Pop(1)
	require.Len(t, txs, 1)
	assert.Equal(t, tx1.Hash(), txs[0].Hash())
	assert.Equal(t, 1, mem.Size())
	txs = mem.Pop(10)
	require.Len(t, txs, 1)
	assert.Equal(t, tx2.Hash(), txs[0].Hash())
	assert.Equal(t, 0, mem.Size())
	assert.False(t, mem.Exist(tx1.Hash()))
}

func newTestNode(t *testing.T, genesis string) (*Node, *jsonclient.JSONClient) {
	cfg := types.DefaultConfig()
	cfg.Store.Driver = db.MemDBBackendStr
	cfg.RPC.JrpcBindAddr = "127.0.0.1:0"
	//测试中手动出块
	cfg.Ledger.BlockTime = 3600 * 1000
	cfg.Genesis = []*types.GenesisAccount{{Addr: genesis, Amount: 1e12}}
	n, err := New(cfg)
	require.NoError(t, err)
	port, err := n.Start()
	require.NoError(t, err)
	t.Cleanup(n.Close)
	client, err := jsonclient.NewJSONClient(fmt.Sprintf("http://127.0.0.1:%d", port))
	require.NoError(t, err)
	return n, client
}

func TestNodeJSONRPC(t *testing.T) {
	priv := genKey(t)
	from := address.PubKeyToAddr(priv.PubKey().Bytes())
	to := address.PubKeyToAddr(genKey(t).PubKey().Bytes())
	n, client := newTestNode(t, from)

	var height rpctypes.ReplyHeight
	require.NoError(t, client.Call("GetHeight", rpctypes.ReqNil{}, &height))
	assert.Equal(t, uint64(0), height.Height)

	var rawTx string
	err := client.Call("Chain.CreateTransaction", rpctypes.CreateTxIn{
		Execer:     cty.CoinsX,
		ActionName: "Transfer",
		Payload:    []byte(fmt.Sprintf(`{"to":"%s","amount":1000}`, to)),
	}, &rawTx)
	require.NoError(t, err)
	tx, err := types.DecodeTx(rawTx)
	require.NoError(t, err)
	tx.Sign(uint32(secp256k1.ID), priv)

	var hash string
	require.NoError(t, client.Call("SendTransaction", rpctypes.RawParm{Data: types.EncodeTx(tx)}, &hash))
	assert.Equal(t, common.ToHex(tx.Hash()), hash)
	//同一个交易不能重复进入交易池
	err = client.Call("SendTransaction", rpctypes.RawParm{Data: types.EncodeTx(tx)}, &hash)
	assert.Error(t, err)

	receipts, err := n.Solo().CreateBlock()
	require.NoError(t, err)
	require.Len(t, receipts, 1)
	assert.Equal(t, uint32(types.ExecOk), receipts[0].Ty)

	var receipt rpctypes.ReceiptDataResult
	require.NoError(t, client.Call("GetReceipt", rpctypes.ReqHash{Hash: hash}, &receipt))
	assert.Equal(t, "ExecOk", receipt.TyName)
	assert.Equal(t, uint64(1), receipt.Height)

	var acc types.Account
	require.NoError(t, client.Call("GetBalance", rpctypes.ReqAddr{Addr: to}, &acc))
	assert.Equal(t, uint64(1000), acc.Balance)
	assert.Error(t, client.Call("GetBalance", rpctypes.ReqAddr{Addr: "bad"}, &acc))

	var decoded rpctypes.TransactionResult
	require.NoError(t, client.Call("DecodeTransaction", rpctypes.RawParm{Data: types.EncodeTx(tx)}, &decoded))
	assert.Equal(t, cty.CoinsX, decoded.Execer)
	assert.Equal(t, from, decoded.From)

	//空块也会推进高度
	_, err = n.Solo().CreateBlock()
	require.NoError(t, err)
	require.NoError(t, client.Call("GetHeight", rpctypes.ReqNil{}, &height))
	assert.Equal(t, uint64(2), height.Height)
}

func TestNodeRpsRPC(t *testing.T) {
	priv := genKey(t)
	player := address.PubKeyToAddr(priv.PubKey().Bytes())
	_, client := newTestNode(t, player)

	var reply rpsrpc.CommitReply
	require.NoError(t, client.Call("rps.Commit", &rpsrpc.CommitReq{Player: player, Choice: "paper", Salt: 9}, &reply))
	c, err := rt.Commit(player, 9, rt.Paper)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), reply.Salt)
	assert.Equal(t, uint8(rt.Paper), reply.Choice)
	assert.Equal(t, common.ToHex(c[:]), reply.Commitment)
	//地址写错时返回错误, 不生成无法开奖的承诺
	assert.Error(t, client.Call("rps.Commit", &rpsrpc.CommitReq{Player: player + "x", Choice: "paper", Salt: 9}, &reply))

	var rawTx string
	require.NoError(t, client.Call("rps.RpsCreateTx", &rpsrpc.CreateTxReq{
		Seed: 1, Mint: "mint", Commitment: reply.Commitment, Stake: 10,
	}, &rawTx))
	tx, err := types.DecodeTx(rawTx)
	require.NoError(t, err)
	var action rt.RpsAction
	require.NoError(t, types.Decode(tx.Payload, &action))
	require.NotNil(t, action.Create)
	assert.Equal(t, c[:], action.Create.Commitment)

	var game rt.Game
	err = client.Call("Chain.Query", rpctypes.Query4Jrpc{Execer: rt.RpsX, FuncName: rt.FuncNameGetGame, Payload: []byte(`{"seed":1}`)}, &game)
	assert.Error(t, err)
}
