// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package httputil

import (
	"net"
	"net/http"
	"time"

	"golang.org/x/net/netutil"
)

const _connectionCount = 400

type (
	// ServerOption is an option to override the default server config
	ServerOption func(*ServerConfig)

	// ServerConfig is the configuration of a HTTP server
	ServerConfig struct {
		ReadHeaderTimeout time.Duration
		ReadTimeout       time.Duration
		WriteTimeout      time.Duration
		IdleTimeout       time.Duration
	}
)

// DefaultServerConfig is the default config of a HTTP server
var DefaultServerConfig = ServerConfig{
	ReadHeaderTimeout: 1 * time.Second,
	ReadTimeout:       5 * time.Second,
	WriteTimeout:      10 * time.Second,
	IdleTimeout:       120 * time.Second,
}

// ReadHeaderTimeout sets the amount of time allowed to read request headers
func ReadHeaderTimeout(h time.Duration) ServerOption {
	return func(cfg *ServerConfig) {
		cfg.ReadHeaderTimeout = h
	}
}

// NewServer creates a HTTP server with time out settings
func NewServer(addr string, handler http.Handler, opts ...ServerOption) http.Server {
	cfg := DefaultServerConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return http.Server{
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		Addr:              addr,
		Handler:           handler,
	}
}

// LimitListener creates a tcp listener with the connection number limited
func LimitListener(addr string) (net.Listener, error) {
	if addr == "" {
		addr = ":80"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	return netutil.LimitListener(ln, _connectionCount), nil
}
