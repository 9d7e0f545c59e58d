// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"

	"github.com/33cn/rpschain/common"
	"github.com/33cn/rpschain/types"
)

// RawParm 十六进制的原始数据
type RawParm struct {
	Data string `json:"data"`
}

// ReqHash 交易哈希
type ReqHash struct {
	Hash string `json:"hash"`
}

// ReqAddr 地址
type ReqAddr struct {
	Addr string `json:"addr"`
}

// ReqNil 无参数
type ReqNil struct{}

// Query4Jrpc 执行器查询, Payload 为 Query_xxx 参数的 json
type Query4Jrpc struct {
	Execer   string          `json:"execer"`
	FuncName string          `json:"funcName"`
	Payload  json.RawMessage `json:"payload"`
}

// CreateTxIn 构造未签名交易, Payload 为 action 参数的 json
type CreateTxIn struct {
	Execer     string          `json:"execer"`
	ActionName string          `json:"actionName"`
	Payload    json.RawMessage `json:"payload"`
}

// ReplyHeight 当前高度
type ReplyHeight struct {
	Height uint64 `json:"height"`
}

// ReceiptLogResult 日志
type ReceiptLogResult struct {
	Ty  uint32 `json:"ty"`
	Log string `json:"log"`
	Err string `json:"err,omitempty"`
}

// ReceiptDataResult 交易回执
type ReceiptDataResult struct {
	Ty     uint32              `json:"ty"`
	TyName string              `json:"tyName"`
	Height uint64              `json:"height"`
	Index  uint32              `json:"index"`
	Logs   []*ReceiptLogResult `json:"logs"`
}

// DecodeReceipt 回执转换成 json 友好的格式
func DecodeReceipt(r *types.ReceiptData) *ReceiptDataResult {
	var tyName string
	switch r.Ty {
	case types.ExecErr:
		tyName = "ExecErr"
	case types.ExecOk:
		tyName = "ExecOk"
	default:
		tyName = "Unknown"
	}
	rd := &ReceiptDataResult{Ty: r.Ty, TyName: tyName, Height: r.Height, Index: r.Index}
	for _, l := range r.Logs {
		item := &ReceiptLogResult{Ty: l.Ty, Log: common.ToHex(l.Log)}
		if l.Ty == types.TyLogErr {
			var e types.ReceiptLogErr
			if err := types.Decode(l.Log, &e); err == nil {
				item.Err = e.Err
			}
		}
		rd.Logs = append(rd.Logs, item)
	}
	return rd
}

// TransactionResult 交易的 json 格式
type TransactionResult struct {
	Execer  string      `json:"execer"`
	Payload interface{} `json:"payload"`
	Nonce   uint64      `json:"nonce"`
	Expire  uint64      `json:"expire"`
	From    string      `json:"from"`
	Hash    string      `json:"hash"`
}
