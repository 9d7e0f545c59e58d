// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"github.com/33cn/rpschain/common"
	"github.com/33cn/rpschain/common/address"
	rpctypes "github.com/33cn/rpschain/rpc/types"
	"github.com/33cn/rpschain/types"
	"github.com/pkg/errors"
)

// SendTransaction 发送已签名的交易, 返回交易哈希
func (c *Chain) SendTransaction(in rpctypes.RawParm, result *interface{}) error {
	tx, err := types.DecodeTx(in.Data)
	if err != nil {
		return err
	}
	rlog.Debug("SendTransaction", "tx", common.ToHex(tx.Hash()))
	hash, err := c.cli.SendTx(tx)
	if err != nil {
		return err
	}
	*result = common.ToHex(hash)
	return nil
}

// CreateTransaction 按执行器的 action 名字构造未签名交易
func (c *Chain) CreateTransaction(in rpctypes.CreateTxIn, result *interface{}) error {
	ety := types.LoadExecutorType(in.Execer)
	if ety == nil {
		return errors.Wrapf(types.ErrExecNotFound, "execer %s", in.Execer)
	}
	tx, err := ety.CreateTransaction(in.ActionName, in.Payload)
	if err != nil {
		return err
	}
	*result = types.EncodeTx(tx)
	return nil
}

// DecodeTransaction 解析 hex 交易
func (c *Chain) DecodeTransaction(in rpctypes.RawParm, result *interface{}) error {
	tx, err := types.DecodeTx(in.Data)
	if err != nil {
		return err
	}
	res := &rpctypes.TransactionResult{
		Execer: string(tx.Execer),
		Nonce:  tx.Nonce,
		Expire: tx.Expire,
		Hash:   common.ToHex(tx.Hash()),
	}
	if len(tx.Signature.Signature) > 0 {
		res.From = tx.From()
	}
	if ety := types.LoadExecutorType(res.Execer); ety != nil {
		if payload, err := ety.DecodePayload(tx); err == nil {
			res.Payload = payload
		}
	}
	*result = res
	return nil
}

// Query 调用执行器的 Query_xxx
func (c *Chain) Query(in rpctypes.Query4Jrpc, result *interface{}) error {
	reply, err := c.cli.Query(in.Execer, in.FuncName, in.Payload)
	if err != nil {
		return err
	}
	*result = reply
	return nil
}

// GetBalance 原生币余额
func (c *Chain) GetBalance(in rpctypes.ReqAddr, result *interface{}) error {
	if err := address.CheckAddress(in.Addr); err != nil {
		return err
	}
	*result = c.cli.GetBalance(in.Addr)
	return nil
}

// GetTokenAccount token 账户
func (c *Chain) GetTokenAccount(in rpctypes.ReqAddr, result *interface{}) error {
	acc, err := c.cli.GetTokenAccount(in.Addr)
	if err != nil {
		return err
	}
	*result = acc
	return nil
}

// GetHeight 当前高度
func (c *Chain) GetHeight(in rpctypes.ReqNil, result *interface{}) error {
	*result = &rpctypes.ReplyHeight{Height: c.cli.GetHeight()}
	return nil
}

// GetReceipt 交易回执
func (c *Chain) GetReceipt(in rpctypes.ReqHash, result *interface{}) error {
	hash, err := common.FromHex(in.Hash)
	if err != nil {
		return err
	}
	receipt, err := c.cli.GetReceipt(hash)
	if err != nil {
		return err
	}
	*result = rpctypes.DecodeReceipt(receipt)
	return nil
}
