// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
	"fmt"
	"path"

	"github.com/dgraph-io/badger"
	"github.com/dgraph-io/badger/options"
	log "github.com/inconshreveable/log15"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var blog = log.New("module", "db.gobadgerdb")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(GoBadgerDBBackendStr, dbCreator, false)
}

//GoBadgerDB db
type GoBadgerDB struct {
	db *badger.DB
}

// badger 的日志输出到 log15
type badgerLog struct{}

func (badgerLog) Errorf(format string, args ...interface{}) {
	blog.Error(fmt.Sprintf(format, args...))
}

func (badgerLog) Warningf(format string, args ...interface{}) {
	blog.Warn(fmt.Sprintf(format, args...))
}

func (badgerLog) Infof(format string, args ...interface{}) {
	blog.Debug(fmt.Sprintf(format, args...))
}

func (badgerLog) Debugf(format string, args ...interface{}) {
	blog.Debug(fmt.Sprintf(format, args...))
}

//NewGoBadgerDB new
func NewGoBadgerDB(name string, dir string, cache int) (*GoBadgerDB, error) {
	dbPath := path.Join(dir, name+".db")
	opts := badger.DefaultOptions(dbPath).WithLogger(badgerLog{})
	opts.ValueLogLoadingMode = options.FileIO
	if cache > 0 {
		opts.MaxTableSize = int64(cache) << 20
	}
	db, err := badger.Open(opts)
	if err != nil {
		blog.Error("NewGoBadgerDB", "error", err)
		return nil, err
	}
	return &GoBadgerDB{db: db}, nil
}

//Get get
func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return ErrNotFoundInDb
			}
			blog.Error("Get", "txn.Get.error", err)
			return err
		}
		val, err = item.ValueCopy(nil)
		if err != nil {
			blog.Error("Get", "item.Value.error", err)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// badger 不区分 nil 和空值
	if val == nil {
		val = make([]byte, 0)
	}
	return val, nil
}

//Set set
func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		blog.Error("Set", "error", err)
		return err
	}
	return nil
}

//SetSync 同步
func (db *GoBadgerDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

//Delete 删除
func (db *GoBadgerDB) Delete(key []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		blog.Error("Delete", "error", err)
		return err
	}
	return nil
}

//DeleteSync 删除同步
func (db *GoBadgerDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

//DB db
func (db *GoBadgerDB) DB() *badger.DB {
	return db.db
}

//Close 关闭
func (db *GoBadgerDB) Close() {
	err := db.db.Close()
	if err != nil {
		blog.Error("Close", "error", err)
	}
}

//Stats ...
func (db *GoBadgerDB) Stats() map[string]string {
	lsm, vlog := db.db.Size()
	return map[string]string{
		"badger.lsm.size":  fmt.Sprint(lsm),
		"badger.vlog.size": fmt.Sprint(vlog),
	}
}

//Iterator 迭代器
func (db *GoBadgerDB) Iterator(start, end []byte, reverse bool) Iterator {
	txn := db.db.NewTransaction(false)
	opts := badger.DefaultIteratorOptions
	opts.Reverse = reverse
	it := txn.NewIterator(opts)
	limit := end
	if limit == nil {
		limit = util.BytesPrefix(start).Limit
	}
	return &goBadgerDBIt{it, itBase{start, end, reverse}, txn, limit, nil}
}

type goBadgerDBIt struct {
	*badger.Iterator
	itBase
	txn   *badger.Txn
	limit []byte
	err   error
}

//Next next
func (it *goBadgerDBIt) Next() bool {
	it.Iterator.Next()
	return it.Valid()
}

//Rewind 回到起点
func (it *goBadgerDBIt) Rewind() bool {
	if !it.reverse {
		it.Iterator.Seek(it.start)
		return it.Valid()
	}
	if it.limit == nil {
		// 前缀为全 0xff, 从最后一个 key 开始
		it.Iterator.Rewind()
		return it.Valid()
	}
	it.Iterator.Seek(it.limit)
	if it.Iterator.Valid() && bytes.Equal(it.Iterator.Item().Key(), it.limit) {
		it.Iterator.Next()
	}
	return it.Valid()
}

//Seek 反向时 badger 定位到 <= key 的最后一项
func (it *goBadgerDBIt) Seek(key []byte) bool {
	it.Iterator.Seek(key)
	return it.Valid()
}

//Close 关闭
func (it *goBadgerDBIt) Close() {
	it.Iterator.Close()
	it.txn.Discard()
}

//Valid 是否合法
func (it *goBadgerDBIt) Valid() bool {
	return it.Iterator.Valid() && it.checkKey(it.Key())
}

func (it *goBadgerDBIt) Key() []byte {
	return it.Item().Key()
}

func (it *goBadgerDBIt) Value() []byte {
	value, err := it.Item().ValueCopy(nil)
	if err != nil {
		it.err = err
	}
	return value
}

func (it *goBadgerDBIt) ValueCopy() []byte {
	return it.Value()
}

func (it *goBadgerDBIt) Error() error {
	return it.err
}

//GoBadgerDBBatch batch
type GoBadgerDBBatch struct {
	db    *GoBadgerDB
	batch *badger.Txn
	size  int
	err   error
}

//NewBatch new
func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &GoBadgerDBBatch{db: db, batch: db.db.NewTransaction(true)}
}

//Set set
func (mBatch *GoBadgerDBBatch) Set(key, value []byte) {
	mBatch.put(func(txn *badger.Txn) error { return txn.Set(key, value) })
	mBatch.size += len(value)
}

//Delete 删除
func (mBatch *GoBadgerDBBatch) Delete(key []byte) {
	mBatch.put(func(txn *badger.Txn) error { return txn.Delete(key) })
	mBatch.size++
}

// 事务过大时先提交已有部分
func (mBatch *GoBadgerDBBatch) put(op func(txn *badger.Txn) error) {
	if mBatch.err != nil {
		return
	}
	err := op(mBatch.batch)
	if err == badger.ErrTxnTooBig {
		if err = mBatch.batch.Commit(); err != nil {
			mBatch.err = err
			return
		}
		mBatch.batch = mBatch.db.db.NewTransaction(true)
		err = op(mBatch.batch)
	}
	mBatch.err = err
}

//Write 写入
func (mBatch *GoBadgerDBBatch) Write() error {
	defer mBatch.batch.Discard()
	if mBatch.err != nil {
		blog.Error("Write", "error", mBatch.err)
		return mBatch.err
	}
	if err := mBatch.batch.Commit(); err != nil {
		blog.Error("Write", "error", err)
		return err
	}
	return nil
}

//ValueSize batch大小
func (mBatch *GoBadgerDBBatch) ValueSize() int {
	return mBatch.size
}

//Reset 重置
func (mBatch *GoBadgerDBBatch) Reset() {
	mBatch.batch.Discard()
	mBatch.batch = mBatch.db.db.NewTransaction(true)
	mBatch.size = 0
	mBatch.err = nil
}
