// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli RunNode 加载配置, 启动节点, 等待退出信号;
// Run 是命令行工具的入口, 插件的命令在这里加入
package cli

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	clog "github.com/33cn/rpschain/common/log"
	"github.com/33cn/rpschain/node"
	"github.com/33cn/rpschain/types"
	log "github.com/inconshreveable/log15"
	"github.com/joho/godotenv"
)

var (
	configPath = flag.String("f", "", "configfile")
	datadir    = flag.String("datadir", "", "data dir of rpschain, override store.dbPath")
	rpcAddr    = flag.String("rpc", "", "jrpc bind address, override rpc.jrpcBindAddr")
)

// 环境变量, 可以写在 .env 文件中, 命令行参数优先
const (
	envConfig  = "RPSCHAIN_CONFIG"
	envDatadir = "RPSCHAIN_DATADIR"
	envRPCAddr = "RPSCHAIN_RPC_ADDR"
)

func loadEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn("load .env", "err", err)
	}
	if *configPath == "" {
		*configPath = os.Getenv(envConfig)
	}
	if *datadir == "" {
		*datadir = os.Getenv(envDatadir)
	}
	if *rpcAddr == "" {
		*rpcAddr = os.Getenv(envRPCAddr)
	}
}

func loadConfig(name string) (*types.Config, error) {
	if *configPath == "" {
		*configPath = name + ".toml"
	}
	var cfg *types.Config
	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		log.Warn("config file not found, use default", "file", *configPath)
		cfg = types.DefaultConfig()
	} else {
		cfg, err = types.LoadConfig(*configPath)
		if err != nil {
			return nil, err
		}
	}
	if *datadir != "" {
		cfg.Store.DbPath = *datadir
	}
	if *rpcAddr != "" {
		cfg.RPC.JrpcBindAddr = *rpcAddr
	}
	return cfg, nil
}

//RunNode : run rpschain
func RunNode(name string) {
	flag.Parse()
	if name == "" {
		name = "rpschain"
	}
	loadEnv()
	cfg, err := loadConfig(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	//set file log
	clog.SetFileLog(cfg.Log)
	log.Info("loading config", "file", *configPath, "title", cfg.Title)

	//set watching
	t := time.NewTicker(10 * time.Minute)
	defer t.Stop()
	go func() {
		for range t.C {
			watching()
		}
	}()

	log.Info("loading node")
	n, err := node.New(cfg)
	if err != nil {
		log.Crit("node.New", "err", err)
		os.Exit(1)
	}
	port, err := n.Start()
	if err != nil {
		log.Crit("node.Start", "err", err)
		n.Close()
		os.Exit(1)
	}
	log.Info("jrpc listen", "addr", cfg.RPC.JrpcBindAddr, "port", port)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	sig := <-interrupt
	log.Info("begin close node", "signal", sig)
	n.Close()
}

func watching() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Info("info:", "NumGoroutine:", runtime.NumGoroutine())
	log.Info("info:", "Mem:", m.Sys/(1024*1024))
	log.Info("info:", "HeapAlloc:", m.HeapAlloc/(1024*1024))
}
