// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonclient

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoParams struct {
	Name string `json:"name"`
}

// 按方法名返回不同的结果
func newEchoServer(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string          `json:"method"`
			Params []echoParams    `json:"params"`
			ID     json.RawMessage `json:"id"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		resp := map[string]interface{}{"id": req.ID}
		switch req.Method {
		case "Chain.Echo":
			resp["result"] = req.Params[0]
		case "Chain.Fail":
			resp["error"] = "ErrFail"
		case "Chain.Hex":
			resp["result"] = "0x" + req.Params[0].Name
		case "Chain.Null":
			resp["result"] = nil
		case "Chain.BadID":
			resp["id"] = "other"
			resp["result"] = 1
		case "Chain.Status":
			w.WriteHeader(http.StatusForbidden)
			return
		}
		assert.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCall(t *testing.T) {
	srv := newEchoServer(t)
	client, err := NewJSONClient(srv.URL)
	require.NoError(t, err)

	var res echoParams
	require.NoError(t, client.Call("Echo", &echoParams{Name: "rps"}, &res))
	assert.Equal(t, "rps", res.Name)

	err = client.Call("Fail", nil, &res)
	require.Error(t, err)
	assert.Equal(t, "ErrFail", err.Error())

	assert.Error(t, client.Call("Null", nil, &res))
	assert.Error(t, client.Call("BadID", nil, &res))
	assert.Error(t, client.Call("Status", nil, &res))
}

func TestAddPrefix(t *testing.T) {
	assert.Equal(t, "Chain.GetHeight", addPrefix("Chain", "GetHeight"))
	assert.Equal(t, "rps.Commit", addPrefix("Chain", "rps.Commit"))

	client, err := New("rps", "localhost:8801")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8801", client.url)
}

func TestRPCCtx(t *testing.T) {
	srv := newEchoServer(t)
	var res echoParams
	ctx := NewRPCCtx(srv.URL, "Chain.Echo", &echoParams{Name: "a"}, &res)
	ctx.SetResultCb(func(r interface{}) (interface{}, error) {
		return r.(*echoParams).Name + "!", nil
	})
	out, err := ctx.RunResult()
	require.NoError(t, err)
	assert.Equal(t, "a!", out)
}

func TestRPCCtxRun(t *testing.T) {
	srv := newEchoServer(t)
	var out, errOut bytes.Buffer

	var res echoParams
	ctx := NewRPCCtx(srv.URL, "Chain.Echo", &echoParams{Name: "rps"}, &res)
	ctx.SetOutput(&out, &errOut)
	ctx.Run()
	assert.Equal(t, "{\n    \"name\": \"rps\"\n}\n", out.String())
	assert.Empty(t, errOut.String())

	out.Reset()
	ctx = NewRPCCtx(srv.URL, "Chain.Hex", &echoParams{Name: "ab"}, nil)
	ctx.SetOutput(&out, &errOut)
	ctx.RunWithoutMarshal()
	assert.Equal(t, "0xab\n", out.String())

	out.Reset()
	ctx = NewRPCCtx(srv.URL, "Chain.Fail", nil, &res)
	ctx.SetOutput(&out, &errOut)
	ctx.Run()
	assert.Empty(t, out.String())
	assert.Equal(t, "ErrFail\n", errOut.String())
}
