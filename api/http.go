// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/routehubproject/routehub-core/pkg/log"
	"github.com/routehubproject/routehub-core/pkg/util/httputil"
)

const (
	_maxConcurrentRequests = 10000
	_acquireTimeout        = 10 * time.Second
)

type (
	// HTTPServer creates a http server
	HTTPServer struct {
		svr *http.Server
	}

	// hTTPHandler handles requests from http protocol
	hTTPHandler struct {
		msgHandler Web3Handler
		sem        *semaphore.Weighted
	}
)

// NewHTTPServer creates a new http server
func NewHTTPServer(route string, port int, handler http.Handler) *HTTPServer {
	if port == 0 {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/"+route, handler)

	svr := httputil.NewServer(":"+strconv.Itoa(port), mux, httputil.ReadHeaderTimeout(10*time.Second))
	return &HTTPServer{
		svr: &svr,
	}
}

// Start starts the http server
func (hSvr *HTTPServer) Start(_ context.Context) error {
	go func() {
		if err := hSvr.svr.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L().Fatal("Node failed to serve.", zap.Error(err))
		}
	}()
	return nil
}

// Stop stops the http server
func (hSvr *HTTPServer) Stop(ctx context.Context) error {
	return hSvr.svr.Shutdown(ctx)
}

// newHTTPHandler creates a new http handler
func newHTTPHandler(web3Handler Web3Handler) *hTTPHandler {
	return &hTTPHandler{
		msgHandler: web3Handler,
		sem:        semaphore.NewWeighted(_maxConcurrentRequests),
	}
}

func (handler *hTTPHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	switch req.Method {
	case http.MethodPost:
	case http.MethodOptions:
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		return
	default:
		w.Write([]byte("RouteHub RPC endpoint is ready."))
		return
	}

	acquireCtx, cancel := context.WithTimeout(req.Context(), _acquireTimeout)
	defer cancel()
	if err := handler.sem.Acquire(acquireCtx, 1); err != nil {
		w.WriteHeader(http.StatusTooManyRequests)
		log.Logger("api").Warn("Request limit reached.", zap.Error(err))
		return
	}
	defer handler.sem.Release(1)

	if err := handler.msgHandler.HandlePOSTReq(req.Context(), req.Body,
		NewResponseWriter(
			func(resp interface{}) (int, error) {
				w.Header().Set("Access-Control-Allow-Origin", "*")
				w.Header().Set("Content-Type", "application/json; charset=UTF-8")
				raw, err := json.Marshal(resp)
				if err != nil {
					return 0, err
				}
				return w.Write(raw)
			}),
	); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Logger("api").Error("Failed to respond to request.", zap.Error(err))
	}
}
