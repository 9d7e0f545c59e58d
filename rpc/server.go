// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpc 节点的 json rpc 服务
package rpc

import (
	"net"
	"net/http"
	"net/rpc"
	"sync"
	"time"

	"github.com/33cn/rpschain/pluginmgr"
	rpctypes "github.com/33cn/rpschain/rpc/types"
	"github.com/33cn/rpschain/types"
	log "github.com/inconshreveable/log15"
	"github.com/rs/cors"
)

var (
	remoteIPWhitelist = make(map[string]bool)
	jrpcFuncBlacklist = make(map[string]bool)
	funcListLock      = sync.RWMutex{}
	rpcCfg            *types.RPC
	rlog              = log.New("module", "rpc")
)

// Chain 系统 jrpc 服务
type Chain struct {
	cli rpctypes.ChannelClient
}

// JSONRPCServer  a json rpcserver object
type JSONRPCServer struct {
	jrpc *Chain
	s    *rpc.Server
	l    net.Listener
	srv  *http.Server
}

// NewJSONRPCServer new json rpcserver object
func NewJSONRPCServer(api rpctypes.ChainAPI) *JSONRPCServer {
	j := &JSONRPCServer{jrpc: &Chain{}, s: rpc.NewServer()}
	j.jrpc.cli.ChainAPI = api
	if err := j.s.RegisterName("Chain", j.jrpc); err != nil {
		panic(err)
	}
	return j
}

// JRPC 插件在这里注册服务
func (s *JSONRPCServer) JRPC() *rpc.Server {
	return s.s
}

// API 节点接口
func (s *JSONRPCServer) API() rpctypes.ChainAPI {
	return s.jrpc.cli.ChainAPI
}

// Listen 监听 addr, 返回实际的端口
func (s *JSONRPCServer) Listen(addr string, corsOrigins []string) (int, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return 0, err
	}
	s.l = listener
	var handler http.Handler = &httpHandler{server: s.s}
	if len(corsOrigins) > 0 {
		handler = cors.New(cors.Options{
			AllowedOrigins: corsOrigins,
			AllowedMethods: []string{http.MethodPost},
			AllowedHeaders: []string{"Content-Type"},
		}).Handler(handler)
	}
	s.srv = &http.Server{Handler: handler, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := s.srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			rlog.Error("jrpc serve", "err", err)
		}
	}()
	return listener.Addr().(*net.TCPAddr).Port, nil
}

// Close json rpcserver close
func (s *JSONRPCServer) Close() {
	if s.srv != nil {
		if err := s.srv.Close(); err != nil {
			rlog.Error("JSONRPCServer close", "err", err)
		}
	}
}

// RPC a type object
type RPC struct {
	cfg  *types.RPC
	japi *JSONRPCServer
}

// InitCfg 初始化 ip 白名单和方法黑名单
func InitCfg(cfg *types.RPC) {
	funcListLock.Lock()
	defer funcListLock.Unlock()
	rpcCfg = cfg
	remoteIPWhitelist = make(map[string]bool)
	jrpcFuncBlacklist = make(map[string]bool)
	if len(cfg.Whitelist) == 0 {
		remoteIPWhitelist["127.0.0.1"] = true
	}
	for _, ip := range cfg.Whitelist {
		remoteIPWhitelist[ip] = true
	}
	for _, funcName := range cfg.JrpcFuncBlacklist {
		jrpcFuncBlacklist[funcName] = true
	}
}

// New 创建 rpc 服务并注册插件的 jrpc
func New(cfg *types.RPC, api rpctypes.ChainAPI) *RPC {
	InitCfg(cfg)
	r := &RPC{cfg: cfg, japi: NewJSONRPCServer(api)}
	pluginmgr.AddRPC(r.japi)
	return r
}

// JRPC json rpc server
func (r *RPC) JRPC() *JSONRPCServer {
	return r.japi
}

// Listen 开始监听
func (r *RPC) Listen() (int, error) {
	port, err := r.japi.Listen(r.cfg.JrpcBindAddr, r.cfg.CorsOrigins)
	if err != nil {
		return 0, err
	}
	rlog.Info("jrpc listen", "addr", r.cfg.JrpcBindAddr, "port", port)
	return port, nil
}

// Close rpc close
func (r *RPC) Close() {
	r.japi.Close()
}

func checkIPWhitelist(addr string) bool {
	//回环网络直接允许
	ip := net.ParseIP(addr)
	if ip.IsLoopback() {
		return true
	}
	ipv4 := ip.To4()
	if ipv4 != nil {
		addr = ipv4.String()
	}
	funcListLock.RLock()
	defer funcListLock.RUnlock()
	if _, ok := remoteIPWhitelist["0.0.0.0"]; ok {
		return true
	}
	if _, ok := remoteIPWhitelist[addr]; ok {
		return true
	}
	return false
}

func checkJrpcFuncBlacklist(funcName string) bool {
	funcListLock.RLock()
	defer funcListLock.RUnlock()
	if _, ok := jrpcFuncBlacklist[funcName]; ok {
		return true
	}
	return false
}
