// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Package routectl is the command-line client of the hub. Commands talk to a
// running node over its JSON-RPC endpoint.
package routectl

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/routehubproject/routehub-core/routectl/config"
)

// Client defines the interface the routectl commands run on
type Client interface {
	// Config returns the client's resolved settings
	Config() config.Config
	// SetEndpoint overrides the configured endpoint for this invocation
	SetEndpoint(endpoint string)
	// Account returns the sending account: the override if given, the
	// configured account otherwise
	Account(override string) (string, error)
	// Call posts a single JSON-RPC request to the hub and returns its result
	Call(ctx context.Context, method string, params interface{}) (gjson.Result, error)
}

type client struct {
	cfg      config.Config
	endpoint string
	http     *resty.Client
	nextID   int
}

// NewClient creates a client on the given settings
func NewClient(cfg config.Config) Client {
	return &client{
		cfg:      cfg,
		endpoint: cfg.Endpoint,
		http:     resty.New().SetTimeout(15 * time.Second),
	}
}

func (c *client) Config() config.Config {
	return c.cfg
}

func (c *client) SetEndpoint(endpoint string) {
	if endpoint != "" {
		c.endpoint = endpoint
	}
}

func (c *client) Account(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if c.cfg.Account != "" {
		return c.cfg.Account, nil
	}
	return "", errors.New(`no sending account, use --from or "routectl config set account"`)
}

func (c *client) Call(ctx context.Context, method string, params interface{}) (gjson.Result, error) {
	if params == nil {
		params = []interface{}{}
	}
	c.nextID++
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      c.nextID,
			"method":  method,
			"params":  params,
		}).
		Post(c.endpoint)
	if err != nil {
		return gjson.Result{}, errors.Wrapf(err, "failed to reach the hub at %s", c.endpoint)
	}
	if resp.StatusCode() != http.StatusOK {
		return gjson.Result{}, errors.Errorf("hub returned status %d", resp.StatusCode())
	}
	res := gjson.ParseBytes(resp.Body())
	if res.Get("error").Exists() {
		return gjson.Result{}, errors.Errorf("%s", res.Get("error.message").String())
	}
	return res.Get("result"), nil
}
