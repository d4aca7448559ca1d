// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package e2etest

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/routehubproject/routehub-core/config"
	"github.com/routehubproject/routehub-core/server/routehub"
	"github.com/routehubproject/routehub-core/testutil"
)

const (
	_owner      = "0x07b1b0bfbe2a53e430fcbd9a23ebfaac10f93b31"
	_chainAdmin = "0x543851eb4d8a30ce8d9aeac3c3ab5610c4b9ccff"
	_depositor  = "0x2fc8b1f0aab149e0c2f48e4a4f6e7dca85c4ebe7"
	_newAdmin   = "0xbd7ef4b551ed4184ae24b1e9828c51ecfb7f4b50"
	_hubOnNine  = "0x8361ddf478f087a4e1e712629dbf92207b12d6f2"
)

// e2etest runs a full hub node and drives it through the JSON-RPC frontend the
// way an external client would.
type e2etest struct {
	cfg    config.Config
	svr    *routehub.Server
	client *resty.Client
	url    string
	t      *testing.T
	reqID  int
}

func testConfig(t *testing.T) config.Config {
	cfg := config.Default
	cfg.Owner = _owner
	// tests that want bolt set their own temp path; the default would point the
	// node at the production /var/data/hub.db
	cfg.DB.DbPath = ""
	cfg.API.HTTPPort = testutil.RandomPort()
	cfg.API.WebSocketPort = testutil.RandomPort()
	require.True(t, cfg.API.HTTPPort > 0)
	require.True(t, cfg.API.WebSocketPort > 0)
	return cfg
}

// newE2ETest starts a node backed by bolt when the config carries a db path,
// and by a mem store otherwise
func newE2ETest(t *testing.T, cfg config.Config) *e2etest {
	require := require.New(t)
	var (
		svr *routehub.Server
		err error
	)
	if cfg.DB.DbPath != "" {
		svr, err = routehub.NewServer(cfg)
	} else {
		svr, err = routehub.NewInMemTestServer(cfg)
	}
	require.NoError(err)
	require.NoError(svr.Start(context.Background()))
	e := &e2etest{
		cfg:    cfg,
		svr:    svr,
		client: resty.New().SetTimeout(5 * time.Second),
		url:    fmt.Sprintf("http://localhost:%d", cfg.API.HTTPPort),
		t:      t,
	}
	e.waitServerUp()
	return e
}

func (e *e2etest) teardown() {
	require.NoError(e.t, e.svr.Stop(context.Background()))
}

func (e *e2etest) wsURL() string {
	return fmt.Sprintf("ws://localhost:%d", e.cfg.API.WebSocketPort)
}

// call posts a single JSON-RPC request and returns the whole response envelope
func (e *e2etest) call(method, params string) gjson.Result {
	e.reqID++
	body := fmt.Sprintf(`{"jsonrpc":"2.0","id":%d,"method":%q,"params":%s}`, e.reqID, method, params)
	resp, err := e.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(e.url)
	require.NoError(e.t, err)
	require.Equal(e.t, http.StatusOK, resp.StatusCode())
	return gjson.ParseBytes(resp.Body())
}

// mustCall posts a request that is expected to succeed and returns its result
func (e *e2etest) mustCall(method, params string) gjson.Result {
	res := e.call(method, params)
	require.False(e.t, res.Get("error").Exists(),
		"method %s failed: %s", method, res.Get("error.message").String())
	return res.Get("result")
}

// callExpectError posts a request that is expected to fail and asserts on the
// error message
func (e *e2etest) callExpectError(method, params, contains string) {
	res := e.call(method, params)
	require.True(e.t, res.Get("error").Exists(), "method %s unexpectedly succeeded", method)
	require.Contains(e.t, res.Get("error.message").String(), contains)
}

func (e *e2etest) waitServerUp() {
	require.NoError(e.t, testutil.WaitUntil(100*time.Millisecond, 5*time.Second, func() (bool, error) {
		resp, err := e.client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(`{"jsonrpc":"2.0","id":0,"method":"hub_chainId","params":[]}`).
			Post(e.url)
		return err == nil && resp.StatusCode() == http.StatusOK, nil
	}))
}
