// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Package api serves the hub over JSON-RPC: POST requests over HTTP, plus a
// websocket endpoint that additionally supports event subscriptions.
package api

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// Server bundles the HTTP and websocket frontends of the hub
type Server struct {
	svc      HubService
	listener Listener
	httpSvr  *HTTPServer
	wsSvr    *HTTPServer
}

// NewServer creates a server exposing svc
func NewServer(cfg Config, svc HubService) *Server {
	listener := NewHubListener(cfg.ListenerLimit)
	handler := NewWeb3Handler(svc, listener, cfg.BatchRequestLimit)
	var limiter *rate.Limiter
	if cfg.WebsocketRateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.WebsocketRateLimit), 1)
	}
	return &Server{
		svc:      svc,
		listener: listener,
		httpSvr:  NewHTTPServer("", cfg.HTTPPort, newHTTPHandler(handler)),
		wsSvr:    NewHTTPServer("", cfg.WebSocketPort, NewWebsocketHandler(listener, handler, limiter)),
	}
}

// Start starts the server and hooks the listener into the hub's event feed
func (svr *Server) Start(ctx context.Context) error {
	if err := svr.listener.Start(); err != nil {
		return errors.Wrap(err, "failed to start the event listener")
	}
	if err := svr.svc.AddEventListener(svr.listener); err != nil {
		return errors.Wrap(err, "failed to subscribe to hub events")
	}
	if svr.httpSvr != nil {
		if err := svr.httpSvr.Start(ctx); err != nil {
			return errors.Wrap(err, "failed to start the http server")
		}
	}
	if svr.wsSvr != nil {
		if err := svr.wsSvr.Start(ctx); err != nil {
			return errors.Wrap(err, "failed to start the websocket server")
		}
	}
	return nil
}

// Stop stops the server
func (svr *Server) Stop(ctx context.Context) error {
	if svr.wsSvr != nil {
		if err := svr.wsSvr.Stop(ctx); err != nil {
			return errors.Wrap(err, "failed to stop the websocket server")
		}
	}
	if svr.httpSvr != nil {
		if err := svr.httpSvr.Stop(ctx); err != nil {
			return errors.Wrap(err, "failed to stop the http server")
		}
	}
	if err := svr.svc.RemoveEventListener(svr.listener); err != nil {
		return errors.Wrap(err, "failed to unsubscribe from hub events")
	}
	return svr.listener.Stop()
}
