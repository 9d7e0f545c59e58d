// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDBs(t *testing.T) map[string]DB {
	dbs := make(map[string]DB)
	for _, backend := range []string{MemDBBackendStr, GoLevelDBBackendStr, GoBadgerDBBackendStr} {
		dir, err := os.MkdirTemp("", "rpsdb")
		require.NoError(t, err)
		t.Cleanup(func() { os.RemoveAll(dir) })
		d, err := NewDB("test", backend, dir, 16)
		require.NoError(t, err, backend)
		t.Cleanup(d.Close)
		dbs[backend] = d
	}
	return dbs
}

func TestNewDBUnknownBackend(t *testing.T) {
	_, err := NewDB("test", "nosuchdb", "", 0)
	assert.Error(t, err)
}

func TestGetSetDelete(t *testing.T) {
	for name, d := range newTestDBs(t) {
		_, err := d.Get([]byte("a"))
		assert.Equal(t, ErrNotFoundInDb, err, name)

		require.NoError(t, d.Set([]byte("a"), []byte("1")))
		v, err := d.Get([]byte("a"))
		require.NoError(t, err, name)
		assert.Equal(t, []byte("1"), v, name)

		require.NoError(t, d.Delete([]byte("a")))
		_, err = d.Get([]byte("a"))
		assert.Equal(t, ErrNotFoundInDb, err, name)
	}
}

func TestBatch(t *testing.T) {
	for name, d := range newTestDBs(t) {
		require.NoError(t, d.Set([]byte("gone"), []byte("x")))
		b := d.NewBatch(true)
		b.Set([]byte("k1"), []byte("v1"))
		b.Set([]byte("k2"), []byte("v2"))
		b.Delete([]byte("gone"))
		assert.True(t, b.ValueSize() > 0, name)
		require.NoError(t, b.Write(), name)

		v, err := d.Get([]byte("k2"))
		require.NoError(t, err, name)
		assert.Equal(t, []byte("v2"), v, name)
		_, err = d.Get([]byte("gone"))
		assert.Equal(t, ErrNotFoundInDb, err, name)
	}
}

func fill(t *testing.T, d DB) {
	for i := 0; i < 5; i++ {
		require.NoError(t, d.Set([]byte(fmt.Sprintf("key:%d", i)), []byte(fmt.Sprint(i))))
	}
	require.NoError(t, d.Set([]byte("kez"), []byte("other")))
	require.NoError(t, d.Set([]byte("kex"), []byte("other")))
}

func TestIteratorPrefix(t *testing.T) {
	for name, d := range newTestDBs(t) {
		fill(t, d)
		var got []string
		it := d.Iterator([]byte("key:"), nil, false)
		for it.Rewind(); it.Valid(); it.Next() {
			got = append(got, string(it.Value()))
		}
		it.Close()
		assert.Equal(t, []string{"0", "1", "2", "3", "4"}, got, name)

		got = nil
		it = d.Iterator([]byte("key:"), nil, true)
		for it.Rewind(); it.Valid(); it.Next() {
			got = append(got, string(it.Value()))
		}
		it.Close()
		assert.Equal(t, []string{"4", "3", "2", "1", "0"}, got, name)
	}
}

func TestListHelper(t *testing.T) {
	for name, d := range newTestDBs(t) {
		fill(t, d)
		list := NewListHelper(d)
		prefix := []byte("key:")

		assert.Equal(t, 5, len(list.PrefixScan(prefix)), name)
		assert.Equal(t, int64(5), list.PrefixCount(prefix), name)

		values := list.List(prefix, nil, 2, ListASC)
		assert.Equal(t, [][]byte{[]byte("0"), []byte("1")}, values, name)

		values = list.List(prefix, nil, 2, ListDESC)
		assert.Equal(t, [][]byte{[]byte("4"), []byte("3")}, values, name)

		values = list.List(prefix, []byte("key:1"), 2, ListASC)
		assert.Equal(t, [][]byte{[]byte("2"), []byte("3")}, values, name)

		values = list.List(prefix, []byte("key:3"), 10, ListDESC)
		assert.Equal(t, [][]byte{[]byte("2"), []byte("1"), []byte("0")}, values, name)

		values = list.List(prefix, []byte("key:4"), 10, ListASC)
		assert.Nil(t, values, name)
	}
}
