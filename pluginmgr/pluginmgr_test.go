// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"net/rpc"
	"testing"

	rpctypes "github.com/33cn/rpschain/rpc/types"
	"github.com/33cn/rpschain/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

type mockServer struct {
	s *rpc.Server
}

func (m *mockServer) JRPC() *rpc.Server { return m.s }

func (m *mockServer) API() rpctypes.ChainAPI { return nil }

func TestRegister(t *testing.T) {
	var execNames, rpcNames []string
	for _, name := range []string{"zeta", "alpha"} {
		name := name
		Register(&PluginBase{
			Name:     name,
			ExecName: name + "x",
			Exec:     func(n string, cfg *types.Config) { execNames = append(execNames, n) },
			Cmd:      func() *cobra.Command { return &cobra.Command{Use: name + "-cmd"} },
			RPC:      func(n string, s rpctypes.RPCServer) { rpcNames = append(rpcNames, n) },
		})
	}
	assert.Panics(t, func() { Register(&PluginBase{Name: "alpha"}) })
	assert.Panics(t, func() { Register(&PluginBase{}) })

	InitExec(types.DefaultConfig())
	InitExec(types.DefaultConfig())
	assert.Equal(t, []string{"alphax", "zetax"}, execNames)
	assert.True(t, HasExec("zetax"))
	assert.False(t, HasExec("zeta"))

	root := &cobra.Command{Use: "root"}
	AddCmd(root)
	assert.Len(t, root.Commands(), 2)

	AddRPC(&mockServer{s: rpc.NewServer()})
	assert.Equal(t, []string{"alphax", "zetax"}, rpcNames)
}
