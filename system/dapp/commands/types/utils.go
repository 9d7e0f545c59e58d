// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/33cn/rpschain/common"
	"github.com/33cn/rpschain/common/address"
	"github.com/33cn/rpschain/common/crypto"
	"github.com/33cn/rpschain/common/crypto/secp256k1"
	"github.com/33cn/rpschain/rpc/jsonclient"
	rpctypes "github.com/33cn/rpschain/rpc/types"
	"github.com/33cn/rpschain/types"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// CoinDecimals 原生币的精度, types.Coin = 1e8
const CoinDecimals = 8

// FormatAmountValue2Display 将传输、计算的amount值格式化成显示值
func FormatAmountValue2Display(amount uint64, decimals int32) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(amount), -decimals).StringFixed(decimals)
}

// FormatAmountDisplay2Value 将显示、输入的amount值格式化成传输、计算值, 多余的小数位报错
func FormatAmountDisplay2Value(amount string, decimals int32) (uint64, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, errors.Wrapf(types.ErrAmount, "amount %s", amount)
	}
	if d.Sign() <= 0 {
		return 0, errors.Wrapf(types.ErrAmount, "amount %s", amount)
	}
	v := d.Shift(decimals)
	if !v.Equal(v.Truncate(0)) {
		return 0, errors.Wrapf(types.ErrAmount, "amount %s has more than %d decimals", amount, decimals)
	}
	b := v.BigInt()
	if !b.IsUint64() {
		return 0, errors.Wrapf(types.ErrOverflow, "amount %s", amount)
	}
	return b.Uint64(), nil
}

// LoadPrivKey hex 私钥
func LoadPrivKey(key string) (crypto.PrivKey, error) {
	data, err := common.FromHex(key)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidParam, "privkey: %v", err)
	}
	c, err := crypto.New(secp256k1.Name)
	if err != nil {
		return nil, err
	}
	return c.PrivKeyFromBytes(data)
}

// KeyAddress 私钥对应的地址
func KeyAddress(key string) (string, error) {
	priv, err := LoadPrivKey(key)
	if err != nil {
		return "", err
	}
	return address.PubKeyToAddr(priv.PubKey().Bytes()), nil
}

// SignTx 用 hex 私钥签名
func SignTx(tx *types.Transaction, key string) error {
	priv, err := LoadPrivKey(key)
	if err != nil {
		return err
	}
	tx.Sign(uint32(secp256k1.ID), priv)
	return nil
}

// SendOrPrint 没有私钥时输出未签名的交易, 否则签名后发送, 输出交易哈希
func SendOrPrint(cmd *cobra.Command, tx *types.Transaction) {
	key, _ := cmd.Flags().GetString("key")
	if key == "" {
		fmt.Println(types.EncodeTx(tx))
		return
	}
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	result, err := SendTx(rpcLaddr, tx, key)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	data, err := json.MarshalIndent(result, "", "    ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(string(data))
}

// SendTx 签名并发送
func SendTx(rpcLaddr string, tx *types.Transaction, key string) (*SendResult, error) {
	if err := SignTx(tx, key); err != nil {
		return nil, err
	}
	rpc, err := jsonclient.NewJSONClient(rpcLaddr)
	if err != nil {
		return nil, err
	}
	var hash string
	if err := rpc.Call("Chain.SendTransaction", rpctypes.RawParm{Data: types.EncodeTx(tx)}, &hash); err != nil {
		return nil, err
	}
	return &SendResult{Hash: hash, From: tx.From()}, nil
}

// AddKeyFlag 签名用的私钥
func AddKeyFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", "hex private key, print the unsigned tx if empty")
}
