// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/33cn/rpschain/common"
	"github.com/33cn/rpschain/common/address"
	"github.com/33cn/rpschain/common/crypto"
	// 默认签名算法
	_ "github.com/33cn/rpschain/common/crypto/secp256k1"
	"github.com/pkg/errors"
)

//Signature 签名
type Signature struct {
	Ty        uint32 `json:"ty"`
	Pubkey    []byte `json:"pubkey"`
	Signature []byte `json:"signature"`
}

//Transaction 交易, Payload 为执行器 action 的 rlp 编码
type Transaction struct {
	Execer    []byte    `json:"execer"`
	Payload   []byte    `json:"payload"`
	Nonce     uint64    `json:"nonce"`
	Expire    uint64    `json:"expire"`
	Signature Signature `json:"signature"`
}

//CreateTx 创建未签名交易
func CreateTx(execer string, action interface{}) *Transaction {
	return &Transaction{
		Execer:  []byte(execer),
		Payload: Encode(action),
		Nonce:   crypto.RandUint64(),
	}
}

func (tx *Transaction) unsigned() []byte {
	copytx := *tx
	copytx.Signature = Signature{}
	return Encode(&copytx)
}

//Hash 交易哈希, 不包含签名
func (tx *Transaction) Hash() []byte {
	return common.Sha256(tx.unsigned())
}

//Size 交易大小
func (tx *Transaction) Size() int {
	return Size(tx)
}

//Sign 交易签名
func (tx *Transaction) Sign(ty uint32, priv crypto.PrivKey) {
	data := tx.unsigned()
	pub := priv.PubKey()
	sign := priv.Sign(data)
	tx.Signature = Signature{
		Ty:        ty,
		Pubkey:    pub.Bytes(),
		Signature: sign.Bytes(),
	}
}

//CheckSign 检查签名
func (tx *Transaction) CheckSign() bool {
	if len(tx.Signature.Signature) == 0 {
		return false
	}
	c, err := crypto.New(crypto.GetName(int32(tx.Signature.Ty)))
	if err != nil {
		return false
	}
	pub, err := c.PubKeyFromBytes(tx.Signature.Pubkey)
	if err != nil {
		return false
	}
	sig, err := c.SignatureFromBytes(tx.Signature.Signature)
	if err != nil {
		return false
	}
	return pub.VerifyBytes(tx.unsigned(), sig)
}

//From 交易发送者地址
func (tx *Transaction) From() string {
	return address.PubKeyToAddress(tx.Signature.Pubkey).String()
}

//Signer 签名校验通过后得到签名者身份
func (tx *Transaction) Signer() (Signer, error) {
	if !tx.CheckSign() {
		return Signer{}, ErrSign
	}
	return Signer{addr: tx.From()}, nil
}

//SetExpire 设置过期, 小于 ExpireBound 为高度, 否则为时间
func (tx *Transaction) SetExpire(expire time.Duration) {
	if expire > time.Duration(ExpireBound) {
		tx.Expire = uint64(time.Now().Unix() + int64(expire/time.Second))
	} else {
		tx.Expire = uint64(expire)
	}
}

//IsExpire 是否过期
func (tx *Transaction) IsExpire(height uint64, blocktime int64) bool {
	valid := tx.Expire
	// Expire为0，返回false
	if valid == 0 {
		return false
	}
	if valid <= ExpireBound {
		//Expire小于1e9，为height valid > height 未过期返回false else true过期
		return valid <= height
	}
	// Expire大于1e9，为blockTime  valid > blocktime返回false 未过期 else true过期
	return int64(valid) <= blocktime
}

//Check 交易基本检查
func (tx *Transaction) Check(height uint64, blocktime int64) error {
	if tx.Size() > MaxTxSize {
		return ErrTxMsgSizeTooBig
	}
	if tx.IsExpire(height, blocktime) {
		return ErrTxExpire
	}
	if !tx.CheckSign() {
		return ErrSign
	}
	return nil
}

//EncodeTx 交易的 hex 编码
func EncodeTx(tx *Transaction) string {
	return hex.EncodeToString(Encode(tx))
}

//DecodeTx 从 hex 解码交易
func DecodeTx(data string) (*Transaction, error) {
	b, err := common.FromHex(data)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidParam, "hex: %v", err)
	}
	var tx Transaction
	if err := Decode(b, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

//JSON 交易的 json 格式
func (tx *Transaction) JSON() string {
	type txjson struct {
		Execer    string `json:"execer"`
		Payload   string `json:"payload"`
		Nonce     uint64 `json:"nonce"`
		Expire    uint64 `json:"expire"`
		Pubkey    string `json:"pubkey"`
		Signature string `json:"signature"`
		From      string `json:"from"`
		Hash      string `json:"hash"`
	}
	data, err := json.MarshalIndent(&txjson{
		Execer:    string(tx.Execer),
		Payload:   common.ToHex(tx.Payload),
		Nonce:     tx.Nonce,
		Expire:    tx.Expire,
		Pubkey:    common.ToHex(tx.Signature.Pubkey),
		Signature: common.ToHex(tx.Signature.Signature),
		From:      tx.From(),
		Hash:      common.ToHex(tx.Hash()),
	}, "", "    ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
