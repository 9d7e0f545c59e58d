// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"reflect"
	"sync"

	"github.com/pkg/errors"
)

//ExecutorType 执行器的 action 类型信息, 用于构造和解析交易
type ExecutorType interface {
	GetName() string
	//action 的 oneof 结构体指针, 每次返回新的值
	GetPayload() interface{}
	GetTypeMap() map[string]int32
	CreateTransaction(action string, data json.RawMessage) (*Transaction, error)
	DecodePayload(tx *Transaction) (interface{}, error)
}

var (
	executorMap = make(map[string]ExecutorType)
	executorMu  sync.RWMutex
)

//RegistorExecutor 注册执行器类型
func RegistorExecutor(name string, ety ExecutorType) {
	executorMu.Lock()
	defer executorMu.Unlock()
	if _, ok := executorMap[name]; ok {
		panic("RegistorExecutor dup name " + name)
	}
	executorMap[name] = ety
}

//LoadExecutorType 读取执行器类型, 没有注册返回 nil
func LoadExecutorType(name string) ExecutorType {
	executorMu.RLock()
	defer executorMu.RUnlock()
	return executorMap[name]
}

//ExecTypeBase 执行器类型的公共实现
type ExecTypeBase struct {
	child ExecutorType
}

//SetChild 设置具体类型
func (base *ExecTypeBase) SetChild(child ExecutorType) {
	base.child = child
}

//CreateTransaction 按 action 名字构造未签名交易, data 为 action 参数的 json
func (base *ExecTypeBase) CreateTransaction(action string, data json.RawMessage) (*Transaction, error) {
	if _, ok := base.child.GetTypeMap()[action]; !ok {
		return nil, errors.Wrapf(ErrActionNotSupport, "%s.%s", base.child.GetName(), action)
	}
	payload := base.child.GetPayload()
	field := reflect.ValueOf(payload).Elem().FieldByName(action)
	if !field.IsValid() || field.Kind() != reflect.Ptr {
		return nil, errors.Wrapf(ErrActionNotSupport, "%s.%s", base.child.GetName(), action)
	}
	value := reflect.New(field.Type().Elem())
	if len(data) > 0 {
		if err := json.Unmarshal(data, value.Interface()); err != nil {
			return nil, errors.Wrapf(ErrInvalidParam, "%s.%s: %v", base.child.GetName(), action, err)
		}
	}
	field.Set(value)
	return CreateTx(base.child.GetName(), payload), nil
}

//DecodePayload 解析交易的 action
func (base *ExecTypeBase) DecodePayload(tx *Transaction) (interface{}, error) {
	payload := base.child.GetPayload()
	if err := Decode(tx.Payload, payload); err != nil {
		return nil, err
	}
	return payload, nil
}
