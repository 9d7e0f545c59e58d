// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db key/value 存储后端: goleveldb, memdb, gobadgerdb
package db

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrNotFoundInDb key 不存在
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

//KV 带事务的状态存储, 执行器只通过这个接口访问状态
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
	Begin()
	Rollback()
	Commit() error
}

//KVDB 简单的读写接口
type KVDB interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
}

//KVDBList 本地数据库, 支持按前缀分页
type KVDBList interface {
	KVDB
	List(prefix, key []byte, count, direction int32) ([][]byte, error)
}

//IteratorDB 迭代
type IteratorDB interface {
	Iterator(start []byte, end []byte, reserver bool) Iterator
}

//DB db
type DB interface {
	KVDB
	IteratorDB
	SetSync([]byte, []byte) error
	Delete([]byte) error
	DeleteSync([]byte) error
	Close()
	NewBatch(sync bool) Batch
	Stats() map[string]string
}

//Batch 批量写
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	ValueSize() int
	Reset()
}

//Iterator 迭代器
type Iterator interface {
	Rewind() bool
	Next() bool
	Valid() bool
	Seek(key []byte) bool
	Key() []byte
	Value() []byte
	ValueCopy() []byte
	Error() error
	Close()
}

type itBase struct {
	start   []byte
	end     []byte
	reverse bool
}

// end 为空时按 start 前缀匹配, 否则为 [start, end) 区间
func (it *itBase) checkKey(key []byte) bool {
	if it.end == nil {
		return bytes.HasPrefix(key, it.start)
	}
	return bytes.Compare(key, it.start) >= 0 && bytes.Compare(key, it.end) < 0
}

//const
const (
	LevelDBBackendStr    = "leveldb" // legacy, defaults to goleveldb.
	GoLevelDBBackendStr  = "goleveldb"
	MemDBBackendStr      = "memdb"
	GoBadgerDBBackendStr = "gobadgerdb"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

//NewDB new
func NewDB(name string, backend string, dir string, cache int) (DB, error) {
	creator, ok := backends[backend]
	if !ok {
		return nil, fmt.Errorf("db backend %s not registered", backend)
	}
	return creator(name, dir, cache)
}

//CopyBytes 复制
func CopyBytes(b []byte) (copiedBytes []byte) {
	if b == nil {
		return nil
	}
	copiedBytes = make([]byte, len(b))
	copy(copiedBytes, b)
	return copiedBytes
}

func cloneByte(v []byte) []byte {
	value := make([]byte, len(v))
	copy(value, v)
	return value
}
