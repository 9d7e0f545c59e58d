// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dapp 系统基础dapp包
package dapp

//store package store the world - state data
import (
	"encoding/json"
	"reflect"

	"github.com/33cn/rpschain/account"
	dbm "github.com/33cn/rpschain/common/db"
	"github.com/33cn/rpschain/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var (
	blog = log.New("module", "execs.base")
	elog = log.New("module", "execs")
)

// Driver 执行器驱动
type Driver interface {
	SetStateDB(dbm.KV)
	GetStateDB() dbm.KV
	SetLocalDB(dbm.KVDBList)
	GetLocalDB() dbm.KVDBList
	SetCoinsAccount(*account.DB)
	GetCoinsAccount() *account.DB
	GetTokenDB() *account.TokenDB
	SetConfig(*types.Config)
	GetConfig() *types.Config
	//驱动的名字，这个名称是固定的
	GetDriverName() string
	GetName() string
	SetName(string)
	GetActionName(tx *types.Transaction) string
	SetEnv(height uint64, blocktime int64)
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
	Query(funcName string, params []byte) (interface{}, error)
	//action 的 oneof 结构体指针, 每次返回新的值
	GetPayloadValue() interface{}
}

// DriverBase 执行器公共部分, 按 action 名字分发到 Exec_xxx / ExecLocal_xxx / Query_xxx
type DriverBase struct {
	statedb      dbm.KV
	localdb      dbm.KVDBList
	coinsaccount *account.DB
	tokendb      *account.TokenDB
	cfg          *types.Config
	height       uint64
	blocktime    int64
	name         string
	child        Driver
	childValue   reflect.Value
}

// SetChild 设置具体的执行器
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
	d.childValue = reflect.ValueOf(e)
}

// GetPayloadValue 默认没有 action
func (d *DriverBase) GetPayloadValue() interface{} {
	return nil
}

// SetEnv 设置区块高度与时间
func (d *DriverBase) SetEnv(height uint64, blocktime int64) {
	d.height = height
	d.blocktime = blocktime
}

// GetHeight 当前区块高度
func (d *DriverBase) GetHeight() uint64 {
	return d.height
}

// GetBlockTime 当前区块时间
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

// SetStateDB 设置状态数据库
func (d *DriverBase) SetStateDB(db dbm.KV) {
	d.statedb = db
	if d.coinsaccount != nil {
		d.coinsaccount.SetDB(db)
	}
	d.tokendb = nil
}

// GetStateDB 状态数据库
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

// SetLocalDB 设置本地数据库
func (d *DriverBase) SetLocalDB(db dbm.KVDBList) {
	d.localdb = db
}

// GetLocalDB 本地数据库
func (d *DriverBase) GetLocalDB() dbm.KVDBList {
	return d.localdb
}

// SetCoinsAccount 设置原生币账户
func (d *DriverBase) SetCoinsAccount(acc *account.DB) {
	d.coinsaccount = acc
	d.tokendb = nil
}

// GetCoinsAccount 原生币账户
func (d *DriverBase) GetCoinsAccount() *account.DB {
	return d.coinsaccount
}

// GetTokenDB token 账户, 与 coins 使用同一个状态数据库
func (d *DriverBase) GetTokenDB() *account.TokenDB {
	if d.tokendb == nil {
		d.tokendb = account.NewTokenDB(d.statedb, d.coinsaccount)
	}
	return d.tokendb
}

// SetConfig 设置配置
func (d *DriverBase) SetConfig(cfg *types.Config) {
	d.cfg = cfg
}

// GetConfig 配置
func (d *DriverBase) GetConfig() *types.Config {
	return d.cfg
}

// GetName 执行器名称
func (d *DriverBase) GetName() string {
	if d.name == "" {
		return d.child.GetDriverName()
	}
	return d.name
}

// SetName 设置执行器名称
func (d *DriverBase) SetName(name string) {
	d.name = name
}

// CheckTx 默认不检查
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	return nil
}

// GetActionName 交易的 action 名字
func (d *DriverBase) GetActionName(tx *types.Transaction) string {
	name, _, err := d.decodePayload(tx)
	if err != nil {
		return "unknown"
	}
	return name
}

func (d *DriverBase) decodePayload(tx *types.Transaction) (string, reflect.Value, error) {
	payload := d.child.GetPayloadValue()
	if payload == nil {
		return "", reflect.Value{}, types.ErrActionNotSupport
	}
	if err := types.Decode(tx.Payload, payload); err != nil {
		return "", reflect.Value{}, err
	}
	return GetActionValue(payload)
}

// GetActionValue 找出 oneof 结构体中唯一非空的字段
func GetActionValue(action interface{}) (string, reflect.Value, error) {
	v := reflect.ValueOf(action)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return "", reflect.Value{}, types.ErrActionNotSupport
	}
	v = v.Elem()
	var name string
	var value reflect.Value
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if f.Kind() != reflect.Ptr || f.IsNil() {
			continue
		}
		if name != "" {
			return "", reflect.Value{}, errors.Wrapf(types.ErrActionNotSupport, "both %s and %s", name, v.Type().Field(i).Name)
		}
		name = v.Type().Field(i).Name
		value = f
	}
	if name == "" {
		return "", reflect.Value{}, types.ErrActionNotSupport
	}
	return name, value, nil
}

// Exec 调用子类的 Exec_xxx
func (d *DriverBase) Exec(tx *types.Transaction, index int) (receipt *types.Receipt, err error) {
	name, value, err := d.decodePayload(tx)
	if err != nil {
		return nil, err
	}
	method := d.childValue.MethodByName("Exec_" + name)
	if !method.IsValid() {
		return nil, errors.Wrapf(types.ErrActionNotSupport, "Exec_%s", name)
	}
	ret := method.Call([]reflect.Value{value, reflect.ValueOf(tx), reflect.ValueOf(index)})
	r, err := returnValue(ret)
	if err != nil {
		blog.Debug("Exec", "execer", d.GetName(), "action", name, "err", err)
		return nil, err
	}
	if r == nil {
		return nil, nil
	}
	receipt, ok := r.(*types.Receipt)
	if !ok {
		return nil, types.ErrActionNotSupport
	}
	return receipt, nil
}

// ExecLocal 调用子类的 ExecLocal_xxx, 没有实现时返回空
func (d *DriverBase) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	name, value, err := d.decodePayload(tx)
	if err != nil {
		return nil, err
	}
	method := d.childValue.MethodByName("ExecLocal_" + name)
	if !method.IsValid() {
		return &types.LocalDBSet{}, nil
	}
	ret := method.Call([]reflect.Value{value, reflect.ValueOf(tx), reflect.ValueOf(receipt), reflect.ValueOf(index)})
	r, err := returnValue(ret)
	if err != nil {
		return nil, err
	}
	set, ok := r.(*types.LocalDBSet)
	if !ok || set == nil {
		return &types.LocalDBSet{}, nil
	}
	return set, nil
}

// Query 调用子类的 Query_xxx, 参数为 json
func (d *DriverBase) Query(funcName string, params []byte) (interface{}, error) {
	method := d.childValue.MethodByName("Query_" + funcName)
	if !method.IsValid() {
		return nil, errors.Wrapf(types.ErrQueryNotSupport, "%s.%s", d.GetName(), funcName)
	}
	mtype := method.Type()
	if mtype.NumIn() != 1 || mtype.In(0).Kind() != reflect.Ptr || mtype.NumOut() != 2 {
		return nil, types.ErrQueryNotSupport
	}
	in := reflect.New(mtype.In(0).Elem())
	if len(params) > 0 {
		if err := json.Unmarshal(params, in.Interface()); err != nil {
			return nil, errors.Wrapf(types.ErrInvalidParam, "%v", err)
		}
	}
	return returnValue(method.Call([]reflect.Value{in}))
}

func returnValue(ret []reflect.Value) (interface{}, error) {
	if len(ret) != 2 {
		return nil, types.ErrActionNotSupport
	}
	var err error
	if e := ret[1].Interface(); e != nil {
		err = e.(error)
	}
	if err != nil {
		return nil, err
	}
	if ret[0].Kind() == reflect.Ptr && ret[0].IsNil() {
		return nil, nil
	}
	return ret[0].Interface(), nil
}
