// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"sync"

	"github.com/33cn/rpschain/common/address"
	"github.com/33cn/rpschain/types"
)

// DriverCreate defines a drivercreate function
type DriverCreate func() Driver

var (
	execDrivers        = make(map[string]DriverCreate)
	execAddressNameMap = make(map[string]string)
	mu                 sync.RWMutex
)

// Register register driver
func Register(name string, create DriverCreate) {
	mu.Lock()
	defer mu.Unlock()
	if create == nil {
		panic("Execute: Register driver is nil")
	}
	if _, dup := execDrivers[name]; dup {
		panic("Execute: Register called twice for driver " + name)
	}
	execDrivers[name] = create
	execAddressNameMap[ExecAddress(name)] = name
}

// LoadDriver load driver
func LoadDriver(name string) (driver Driver, err error) {
	mu.RLock()
	defer mu.RUnlock()
	c, ok := execDrivers[name]
	if !ok {
		elog.Debug("LoadDriver", "driver", name)
		return nil, types.ErrExecNotFound
	}
	return c(), nil
}

// IsDriverAddress 是否是执行器地址
func IsDriverAddress(addr string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := execAddressNameMap[addr]
	return ok
}

// ExecAddress 执行器地址
func ExecAddress(name string) string {
	return address.ExecAddress(name)
}

// CheckAddress 普通地址或者执行器地址
func CheckAddress(addr string) error {
	if IsDriverAddress(addr) {
		return nil
	}
	if err := address.CheckAddress(addr); err != nil {
		return types.ErrInvalidAddress
	}
	return nil
}
