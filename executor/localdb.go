// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/rpschain/common/db"
)

//LocalDB 本地数据库，不加入区块链的状态。
//数据的get set 主要经过 cache, List 只读取已经落盘的数据
type LocalDB struct {
	*StateDB
	list *db.ListHelper
}

//NewLocalDB 创建一个新的LocalDB
func NewLocalDB(backend db.DB) *LocalDB {
	return &LocalDB{StateDB: NewStateDB(backend), list: db.NewListHelper(backend)}
}

//List 列表
func (l *LocalDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	values := l.list.List(prefix, key, count, direction)
	return values, nil
}
