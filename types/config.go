// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"os"

	tml "github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

//Config 节点配置
type Config struct {
	Title   string                 `toml:"title"`
	Log     *Log                   `toml:"log"`
	Store   *Store                 `toml:"store"`
	RPC     *RPC                   `toml:"rpc"`
	Metrics *Metrics               `toml:"metrics"`
	Ledger  *Ledger                `toml:"ledger"`
	Genesis []*GenesisAccount      `toml:"genesis"`
	Exec    map[string]interface{} `toml:"exec"`
}

//Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `toml:"loglevel"`
	LogConsoleLevel string `toml:"logConsoleLevel"`
	// 日志文件名，可带目录，所有生成的日志文件都放到此目录下
	LogFile string `toml:"logFile"`
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize uint32 `toml:"maxFileSize"`
	// 最多保存的历史日志文件个数
	MaxBackups uint32 `toml:"maxBackups"`
	// 最多保存的历史日志消息（单位：天）
	MaxAge uint32 `toml:"maxAge"`
	// 日志文件名是否使用本地事件（否则使用UTC时间）
	LocalTime bool `toml:"localTime"`
	// 历史日志文件是否压缩（压缩格式为gz）
	Compress bool `toml:"compress"`
	// 是否打印调用源文件和行号
	CallerFile bool `toml:"callerFile"`
	// 是否打印调用方法
	CallerFunction bool `toml:"callerFunction"`
}

//Store 存储配置
type Store struct {
	// 数据存储格式名称，支持 memdb/goleveldb/gobadgerdb
	Driver  string `toml:"driver"`
	DbPath  string `toml:"dbPath"`
	DbCache int32  `toml:"dbCache"`
}

//RPC rpc 配置
type RPC struct {
	JrpcBindAddr string `toml:"jrpcBindAddr"`
	// 允许访问的远程 ip, 0.0.0.0 表示不限制, 回环地址总是允许
	Whitelist   []string `toml:"whitelist"`
	CorsOrigins []string `toml:"corsOrigins"`
	// 禁止调用的 jrpc 方法, 例如 Chain.SendTransaction
	JrpcFuncBlacklist []string `toml:"jrpcFuncBlacklist"`
}

//Metrics 统计配置
type Metrics struct {
	Enable bool `toml:"enable"`
	// 输出到日志的间隔（单位：秒）
	Interval int64 `toml:"interval"`
}

//Ledger 账本参数
type Ledger struct {
	CoinSymbol      string `toml:"coinSymbol"`
	RentPerByte     uint64 `toml:"rentPerByte"`
	AccountOverhead uint64 `toml:"accountOverhead"`
	// 出块间隔（单位：毫秒）
	BlockTime      int64 `toml:"blockTime"`
	MaxTxsPerBlock int   `toml:"maxTxsPerBlock"`
}

//GenesisAccount 创世账户
type GenesisAccount struct {
	Addr   string `toml:"addr"`
	Amount uint64 `toml:"amount"`
}

//DefaultConfig 默认配置
func DefaultConfig() *Config {
	cfg := &Config{Title: "local"}
	fillDefault(cfg)
	return cfg
}

func fillDefault(cfg *Config) {
	if cfg.Title == "" {
		cfg.Title = "local"
	}
	if cfg.Log == nil {
		cfg.Log = &Log{Loglevel: "info", LogConsoleLevel: "info", LogFile: "logs/rpschain.log", MaxFileSize: 300, MaxBackups: 100, MaxAge: 28}
	}
	if cfg.Store == nil {
		cfg.Store = &Store{}
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = "goleveldb"
	}
	if cfg.Store.DbPath == "" {
		cfg.Store.DbPath = "datadir"
	}
	if cfg.RPC == nil {
		cfg.RPC = &RPC{}
	}
	if cfg.RPC.JrpcBindAddr == "" {
		cfg.RPC.JrpcBindAddr = "localhost:8801"
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &Metrics{}
	}
	if cfg.Metrics.Interval <= 0 {
		cfg.Metrics.Interval = 60
	}
	if cfg.Ledger == nil {
		cfg.Ledger = &Ledger{}
	}
	if cfg.Ledger.CoinSymbol == "" {
		cfg.Ledger.CoinSymbol = DefaultCoinSymbol
	}
	if cfg.Ledger.RentPerByte == 0 {
		cfg.Ledger.RentPerByte = DefaultRentPerByte
	}
	if cfg.Ledger.AccountOverhead == 0 {
		cfg.Ledger.AccountOverhead = DefaultAccountOverhead
	}
	if cfg.Ledger.BlockTime <= 0 {
		cfg.Ledger.BlockTime = 1000
	}
	if cfg.Ledger.MaxTxsPerBlock <= 0 {
		cfg.Ledger.MaxTxsPerBlock = 1000
	}
	if cfg.Exec == nil {
		cfg.Exec = make(map[string]interface{})
	}
}

//ParseConfig 从字符串解析配置, 没有配置的项使用默认值
func ParseConfig(cfgstring string) (*Config, error) {
	var cfg Config
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, errors.Wrapf(ErrConfig, "toml: %v", err)
	}
	fillDefault(&cfg)
	for _, g := range cfg.Genesis {
		if g.Addr == "" || g.Amount == 0 {
			return nil, errors.Wrapf(ErrConfig, "genesis %v", g)
		}
	}
	return &cfg, nil
}

//LoadConfig 读取配置文件
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(ErrConfig, "read %s: %v", path, err)
	}
	return ParseConfig(string(data))
}

//ExecConfig 执行器的子配置 [exec.name], 不存在时 v 保持不变
func (c *Config) ExecConfig(name string, v interface{}) error {
	sub, ok := c.Exec[name]
	if !ok {
		return nil
	}
	data, err := json.Marshal(sub)
	if err != nil {
		return errors.Wrapf(ErrConfig, "exec.%s: %v", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrapf(ErrConfig, "exec.%s: %v", name, err)
	}
	return nil
}
