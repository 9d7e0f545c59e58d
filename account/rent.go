// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"github.com/33cn/rpschain/types"
	"github.com/pkg/errors"
)

//MinimumBalance 存放 space 字节数据需要的押金
func (acc *DB) MinimumBalance(space int) (uint64, error) {
	if space < 0 {
		return 0, types.ErrInvalidParam
	}
	size, err := safeAdd(uint64(space), acc.accountOverhead)
	if err != nil {
		return 0, err
	}
	return safeMul(size, acc.rentPerByte)
}

//Allocate payer 为地址 addr 补足存储押金, addr 上已有的余额计入押金
//调用者需要保证 addr 上还没有数据记录
func (acc *DB) Allocate(payer, addr string, space int) (*types.Receipt, error) {
	rent, err := acc.MinimumBalance(space)
	if err != nil {
		return nil, err
	}
	balance := acc.LoadAccount(addr).Balance
	if balance >= rent {
		return &types.Receipt{Ty: types.ExecOk}, nil
	}
	receipt, err := acc.transfer(payer, addr, rent-balance, types.TyLogRent)
	if err != nil {
		alog.Error("Allocate", "payer", payer, "addr", addr, "rent", rent, "err", err)
		return nil, err
	}
	return receipt, nil
}

//Release 把 addr 的全部押金退给 dest
func (acc *DB) Release(addr, dest string) (*types.Receipt, error) {
	balance := acc.LoadAccount(addr).Balance
	if balance == 0 {
		return nil, errors.Wrapf(types.ErrAccountNotExist, "addr %s", addr)
	}
	receipt, err := acc.transfer(addr, dest, balance, types.TyLogRentBack)
	if err != nil {
		alog.Error("Release", "addr", addr, "dest", dest, "err", err)
		return nil, err
	}
	return receipt, nil
}
