// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonclient 实现 JSON RPC 客户端请求功能
package jsonclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// JSONClient a object of jsonclient
type JSONClient struct {
	url    string
	prefix string
	client *http.Client
}

func addPrefix(prefix, name string) string {
	if strings.Contains(name, ".") {
		return name
	}
	return prefix + "." + name
}

// NewJSONClient produce a json object
func NewJSONClient(url string) (*JSONClient, error) {
	return New("Chain", url)
}

// New 指定默认的服务名, 方法名不带 "." 时加上 prefix
func New(prefix, url string) (*JSONClient, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "http://" + url
	}
	return &JSONClient{
		url:    url,
		prefix: prefix,
		client: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

type clientRequest struct {
	Method string         `json:"method"`
	Params [1]interface{} `json:"params"`
	ID     string         `json:"id"`
}

type clientResponse struct {
	ID     string          `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  interface{}     `json:"error"`
}

// Call jsonclient call method
func (client *JSONClient) Call(method string, params, resp interface{}) error {
	method = addPrefix(client.prefix, method)
	req := &clientRequest{Method: method, ID: uuid.New().String()}
	req.Params[0] = params
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	postresp, err := client.client.Post(client.url, "application/json", bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	defer postresp.Body.Close()
	b, err := io.ReadAll(postresp.Body)
	if err != nil {
		return err
	}
	if postresp.StatusCode != http.StatusOK {
		return errors.Errorf("%s: http status %d %s", method, postresp.StatusCode, strings.TrimSpace(string(b)))
	}
	cresp := &clientResponse{}
	if err := json.Unmarshal(b, cresp); err != nil {
		return err
	}
	if cresp.ID != req.ID {
		return errors.Errorf("%s: response id %s, request id %s", method, cresp.ID, req.ID)
	}
	if cresp.Error != nil {
		x, ok := cresp.Error.(string)
		if !ok {
			return fmt.Errorf("invalid error %v", cresp.Error)
		}
		if x == "" {
			x = "unspecified error"
		}
		return errors.New(x)
	}
	if len(cresp.Result) == 0 || string(cresp.Result) == "null" {
		return errors.Errorf("%s: empty result", method)
	}
	if resp == nil {
		return nil
	}
	return json.Unmarshal(cresp.Result, resp)
}

// Callback 在输出之前转换 rpc 结果
type Callback func(res interface{}) (interface{}, error)

// RPCCtx 命令行的一次 rpc 调用, 结果以 json 输出
type RPCCtx struct {
	Method string
	Params interface{}
	Res    interface{}
	client *JSONClient
	err    error
	cb     Callback
	out    io.Writer
	errOut io.Writer
}

// NewRPCCtx laddr 为节点的 rpc 地址
func NewRPCCtx(laddr, method string, params, res interface{}) *RPCCtx {
	client, err := NewJSONClient(laddr)
	return &RPCCtx{
		Method: method,
		Params: params,
		Res:    res,
		client: client,
		err:    err,
		out:    os.Stdout,
		errOut: os.Stderr,
	}
}

// SetResultCb 设置结果转换函数
func (c *RPCCtx) SetResultCb(cb Callback) {
	c.cb = cb
}

// SetOutput 默认输出到 stdout 和 stderr
func (c *RPCCtx) SetOutput(out, errOut io.Writer) {
	c.out, c.errOut = out, errOut
}

// RunResult 调用并返回转换后的结果
func (c *RPCCtx) RunResult() (interface{}, error) {
	if c.err != nil {
		return nil, c.err
	}
	if err := c.client.Call(c.Method, c.Params, c.Res); err != nil {
		return nil, err
	}
	if c.cb == nil {
		return c.Res, nil
	}
	return c.cb(c.Res)
}

// Run 调用并输出缩进的 json
func (c *RPCCtx) Run() {
	result, err := c.RunResult()
	if err != nil {
		fmt.Fprintln(c.errOut, err)
		return
	}
	data, err := json.MarshalIndent(result, "", "    ")
	if err != nil {
		fmt.Fprintln(c.errOut, err)
		return
	}
	fmt.Fprintln(c.out, string(data))
}

// RunWithoutMarshal 结果是字符串(比如 hex 编码的交易)时直接输出
func (c *RPCCtx) RunWithoutMarshal() {
	var res string
	c.Res = &res
	if _, err := c.RunResult(); err != nil {
		fmt.Fprintln(c.errOut, err)
		return
	}
	fmt.Fprintln(c.out, res)
}
