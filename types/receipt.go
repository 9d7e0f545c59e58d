// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

//KeyValue kv
type KeyValue struct {
	Key   []byte `json:"key"`
	Value []byte `json:"value"`
}

//ReceiptLog 日志
type ReceiptLog struct {
	Ty  uint32 `json:"ty"`
	Log []byte `json:"log"`
}

//Receipt 执行结果, KV 为状态数据的修改
type Receipt struct {
	Ty   uint32        `json:"ty"`
	KV   []*KeyValue   `json:"kv"`
	Logs []*ReceiptLog `json:"logs"`
}

//ReceiptData 保存到本地的交易回执
type ReceiptData struct {
	Ty     uint32        `json:"ty"`
	Height uint64        `json:"height"`
	Index  uint32        `json:"index"`
	Logs   []*ReceiptLog `json:"logs"`
}

//LocalDBSet 本地索引的修改, Value 为空表示删除
type LocalDBSet struct {
	KV []*KeyValue `json:"kv"`
}

//ReceiptLogErr 执行失败
type ReceiptLogErr struct {
	Err string `json:"err"`
}

//MergeReceipt 合并 receipt, 以 r1 的类型为准
func MergeReceipt(r1, r2 *Receipt) *Receipt {
	if r2 == nil {
		return r1
	}
	if r1 == nil {
		return r2
	}
	r1.KV = append(r1.KV, r2.KV...)
	r1.Logs = append(r1.Logs, r2.Logs...)
	return r1
}

//NewErrReceipt 失败的交易也需要记录
func NewErrReceipt(err error) *ReceiptData {
	log := &ReceiptLog{Ty: TyLogErr, Log: Encode(&ReceiptLogErr{Err: err.Error()})}
	return &ReceiptData{Ty: ExecErr, Logs: []*ReceiptLog{log}}
}
