// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	log "github.com/inconshreveable/log15"
)

//ListHelper ...
type ListHelper struct {
	db IteratorDB
}

var listlog = log.New("module", "db.ListHelper")

//NewListHelper new
func NewListHelper(db IteratorDB) *ListHelper {
	return &ListHelper{db}
}

//const
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
)

//PrefixScan 前缀
func (db *ListHelper) PrefixScan(prefix []byte) (values [][]byte) {
	it := db.db.Iterator(prefix, nil, false)
	defer it.Close()

	for it.Rewind(); it.Valid(); it.Next() {
		value := it.ValueCopy()
		if it.Error() != nil {
			listlog.Error("PrefixScan it.Value()", "error", it.Error())
			return nil
		}
		values = append(values, value)
	}
	return
}

//List 列表, key 为空时从头(尾)开始, 否则从 key 之后开始(不含 key)
func (db *ListHelper) List(prefix, key []byte, count, direction int32) (values [][]byte) {
	if len(key) == 0 {
		return db.IteratorScanFromStart(prefix, count, direction)
	}
	return db.IteratorScan(prefix, key, count, direction)
}

//IteratorScan 迭代
func (db *ListHelper) IteratorScan(prefix []byte, key []byte, count int32, direction int32) (values [][]byte) {
	it := db.db.Iterator(prefix, nil, direction == ListDESC)
	defer it.Close()

	var i int32
	if !it.Seek(key) {
		return nil
	}
	// 游标本身已经返回过
	if string(it.Key()) == string(key) {
		it.Next()
	}
	for ; it.Valid(); it.Next() {
		value := it.ValueCopy()
		if it.Error() != nil {
			listlog.Error("IteratorScan it.Value()", "error", it.Error())
			return nil
		}
		values = append(values, value)
		i++
		if i == count {
			break
		}
	}
	return
}

//IteratorScanFromStart 从头迭代, 倒序时从尾迭代
func (db *ListHelper) IteratorScanFromStart(prefix []byte, count int32, direction int32) (values [][]byte) {
	it := db.db.Iterator(prefix, nil, direction == ListDESC)
	defer it.Close()

	var i int32
	for it.Rewind(); it.Valid(); it.Next() {
		value := it.ValueCopy()
		if it.Error() != nil {
			listlog.Error("IteratorScanFromStart it.Value()", "error", it.Error())
			return nil
		}
		values = append(values, value)
		i++
		if i == count {
			break
		}
	}
	return
}

//PrefixCount 前缀数量
func (db *ListHelper) PrefixCount(prefix []byte) (count int64) {
	it := db.db.Iterator(prefix, nil, true)
	defer it.Close()
	for it.Rewind(); it.Valid(); it.Next() {
		if it.Error() != nil {
			listlog.Error("PrefixCount it.Value()", "error", it.Error())
			return 0
		}
		count++
	}
	return
}
