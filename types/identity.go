// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "github.com/33cn/rpschain/common/address"

//Owner 可以操作 token 账户的身份
type Owner interface {
	Address() string
	ownerKind() string
}

//Signer 交易签名者, 只能通过 Transaction.Signer 得到
type Signer struct {
	addr string
}

//Address 地址
func (s Signer) Address() string { return s.addr }

func (s Signer) ownerKind() string { return "signer" }

//IsZero 未设置
func (s Signer) IsZero() bool { return s.addr == "" }

//ProgramAuthority 由执行器推导出的地址, 没有私钥
type ProgramAuthority struct {
	addr string
}

//NewProgramAuthority 推导 execer 的某个权限地址
func NewProgramAuthority(execer, tag string, seeds ...[]byte) ProgramAuthority {
	return ProgramAuthority{addr: address.DeriveAddress(execer, tag, seeds...)}
}

//Address 地址
func (p ProgramAuthority) Address() string { return p.addr }

func (p ProgramAuthority) ownerKind() string { return "program" }

//OwnerKind signer 或者 program
func OwnerKind(o Owner) string {
	return o.ownerKind()
}
