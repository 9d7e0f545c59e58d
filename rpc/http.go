// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
)

// 单个请求的最大长度
const maxRequestSize = 1 << 20

// HTTPConn adapt HTTP connection to ReadWriteCloser
type HTTPConn struct {
	in  io.Reader
	out io.Writer
}

func (c *HTTPConn) Read(p []byte) (n int, err error)  { return c.in.Read(p) }
func (c *HTTPConn) Write(d []byte) (n int, err error) { return c.out.Write(d) }

// Close rpc 的连接由 http 管理
func (c *HTTPConn) Close() error { return nil }

type httpHandler struct {
	server *rpc.Server
}

type serverRequest struct {
	Method string           `json:"method"`
	ID     *json.RawMessage `json:"id"`
}

type serverResponse struct {
	ID     *json.RawMessage `json:"id"`
	Result interface{}      `json:"result"`
	Error  interface{}      `json:"error"`
}

func writeError(w http.ResponseWriter, id *json.RawMessage, msg string) {
	w.Header().Set("Content-type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(&serverResponse{ID: id, Error: msg}); err != nil {
		rlog.Error("writeError", "err", err)
	}
}

func (h *httpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" || r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || !checkIPWhitelist(ip) {
		rlog.Error("ServeHTTP", "remote", r.RemoteAddr, "err", "reject by whitelist")
		w.WriteHeader(http.StatusForbidden)
		return
	}
	data, err := io.ReadAll(io.LimitReader(r.Body, maxRequestSize))
	if err != nil {
		writeError(w, nil, err.Error())
		return
	}
	var req serverRequest
	if err := json.Unmarshal(data, &req); err != nil {
		writeError(w, nil, "json: "+err.Error())
		return
	}
	if checkJrpcFuncBlacklist(req.Method) {
		writeError(w, req.ID, req.Method+" is forbidden")
		return
	}
	rlog.Debug("ServeHTTP", "method", req.Method)
	serverCodec := jsonrpc.NewServerCodec(&HTTPConn{in: bytes.NewReader(data), out: w})
	w.Header().Set("Content-type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := h.server.ServeRequest(serverCodec); err != nil {
		rlog.Error("Error while serving JSON request", "err", err)
	}
}
