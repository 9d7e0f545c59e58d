// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/rpschain/common/db"
	"github.com/33cn/rpschain/types"
)

// StateDB 区块执行期间的状态缓存
// cache 保存本区块已经提交的修改, txcache 保存当前交易的修改
// 值为 nil 表示该 key 已删除
type StateDB struct {
	db      db.DB
	cache   map[string][]byte
	txcache map[string][]byte
	keys    []string
	intx    bool
}

// NewStateDB new state db
func NewStateDB(backend db.DB) *StateDB {
	return &StateDB{
		db:    backend,
		cache: make(map[string][]byte),
	}
}

// Begin 开启内存事务处理
func (s *StateDB) Begin() {
	s.intx = true
	s.keys = nil
	s.txcache = nil
}

// Rollback reset tx
func (s *StateDB) Rollback() {
	s.resetTx()
}

// Commit canche tx
func (s *StateDB) Commit() error {
	for k, v := range s.txcache {
		s.cache[k] = v
	}
	s.resetTx()
	return nil
}

func (s *StateDB) resetTx() {
	s.intx = false
	s.txcache = nil
	s.keys = nil
}

// Get get value from state db
func (s *StateDB) Get(key []byte) ([]byte, error) {
	skey := string(key)
	if s.intx && s.txcache != nil {
		if value, ok := s.txcache[skey]; ok {
			return found(value)
		}
	}
	if value, ok := s.cache[skey]; ok {
		return found(value)
	}
	value, err := s.db.Get(key)
	if err != nil {
		if err == db.ErrNotFoundInDb {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	return found(value)
}

func found(value []byte) ([]byte, error) {
	if len(value) == 0 {
		return nil, types.ErrNotFound
	}
	return value, nil
}

// Set set key value to state db, value 为空表示删除
func (s *StateDB) Set(key []byte, value []byte) error {
	skey := string(key)
	if len(value) == 0 {
		value = nil
	}
	if s.intx {
		if s.txcache == nil {
			s.txcache = make(map[string][]byte)
		}
		s.keys = append(s.keys, skey)
		s.txcache[skey] = value
	} else {
		s.cache[skey] = value
	}
	return nil
}

// GetSetKeys  get state db set keys
func (s *StateDB) GetSetKeys() (keys []string) {
	return s.keys
}

// Flush 把本区块的修改写入 batch, 并清空缓存
func (s *StateDB) Flush(batch db.Batch) {
	for k, v := range s.cache {
		if v == nil {
			batch.Delete([]byte(k))
		} else {
			batch.Set([]byte(k), v)
		}
	}
	s.cache = make(map[string][]byte)
	s.resetTx()
}
