// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	rt "github.com/33cn/rpschain/plugin/dapp/rps/types"
	drivers "github.com/33cn/rpschain/system/dapp"
	"github.com/33cn/rpschain/types"
	log "github.com/inconshreveable/log15"
)

var rlog = log.New("module", "execs.rps")

// Init 注册执行器, 配置错误时 panic
func Init(name string, cfg *types.Config) {
	if _, err := rt.LoadConfig(cfg); err != nil {
		panic(err)
	}
	drivers.Register(GetName(), newRps)
}

type rps struct {
	drivers.DriverBase
}

func newRps() drivers.Driver {
	r := &rps{}
	r.SetChild(r)
	return r
}

// GetName 执行器名称
func GetName() string {
	return newRps().GetName()
}

func (r *rps) GetDriverName() string {
	return rt.RpsX
}

func (r *rps) GetPayloadValue() interface{} {
	return &rt.RpsAction{}
}
