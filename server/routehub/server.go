// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Package routehub wires the hub, its persistence, the simulated collaborators
// and the JSON-RPC frontends into a single runnable node.
package routehub

import (
	"context"
	"fmt"
	"net/http"
	"net/http/pprof"
	"runtime"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/routehubproject/routehub-core/api"
	"github.com/routehubproject/routehub-core/config"
	"github.com/routehubproject/routehub-core/db"
	"github.com/routehubproject/routehub-core/hub"
	"github.com/routehubproject/routehub-core/pkg/lifecycle"
	"github.com/routehubproject/routehub-core/pkg/log"
	"github.com/routehubproject/routehub-core/pkg/probe"
	"github.com/routehubproject/routehub-core/pkg/routine"
	"github.com/routehubproject/routehub-core/pkg/util/httputil"
	"github.com/routehubproject/routehub-core/simulation"
)

// Server is the hub node. It owns the backing store, the hub service, the
// simulated collaborator deployments and the API servers, and starts and stops
// them in dependency order.
type Server struct {
	cfg       config.Config
	kv        db.KVStore
	env       *simulation.Environment
	hub       *hub.Hub
	apiServer *api.Server
	lifecycle lifecycle.Lifecycle
}

// NewServer creates a server from config
func NewServer(cfg config.Config) (*Server, error) {
	return newServer(cfg, db.NewBoltDB(cfg.DB))
}

// NewInMemTestServer creates a server with in-memory persistence
func NewInMemTestServer(cfg config.Config) (*Server, error) {
	return newServer(cfg, db.NewMemKVStore())
}

func newServer(cfg config.Config, kv db.KVStore) (*Server, error) {
	if !common.IsHexAddress(cfg.Owner) {
		return nil, errors.Errorf("invalid owner address %s", cfg.Owner)
	}
	env := simulation.NewEnvironment()
	h := hub.New(
		cfg.Hub,
		cfg.OwnerAddress(),
		kv,
		env.Directory,
		hub.WithCustodian(env.Custodian),
	)
	svr := &Server{
		cfg:       cfg,
		kv:        kv,
		env:       env,
		hub:       h,
		apiServer: api.NewServer(cfg.API, h),
	}
	svr.lifecycle.AddModels(kv, h, svr.apiServer)
	return svr, nil
}

// Start starts the server
func (s *Server) Start(ctx context.Context) error {
	return errors.Wrap(s.lifecycle.OnStart(ctx), "error when starting server")
}

// Stop stops the server
func (s *Server) Stop(ctx context.Context) error {
	return errors.Wrap(s.lifecycle.OnStop(ctx), "error when stopping server")
}

// Hub returns the hub service
func (s *Server) Hub() *hub.Hub { return s.hub }

// Environment returns the simulated collaborator deployments
func (s *Server) Environment() *simulation.Environment { return s.env }

// StartServer starts a hub node. It blocks until ctx is canceled, then tears
// the node down.
func StartServer(ctx context.Context, svr *Server, probeSvr *probe.Server, cfg config.Config) {
	if err := svr.Start(ctx); err != nil {
		log.L().Fatal("Failed to start server.", zap.Error(err))
		return
	}
	probeSvr.Ready()

	if cfg.System.HeartbeatInterval > 0 {
		task := routine.NewRecurringTask(NewHeartbeatHandler(svr).Log, cfg.System.HeartbeatInterval)
		if err := task.Start(ctx); err != nil {
			log.L().Panic("Failed to start heartbeat routine.", zap.Error(err))
		}
		defer func() {
			if err := task.Stop(ctx); err != nil {
				log.L().Panic("Failed to stop heartbeat routine.", zap.Error(err))
			}
		}()
	}

	var adminserv http.Server
	if cfg.System.HTTPAdminPort > 0 {
		mux := http.NewServeMux()
		log.RegisterLevelConfigMux(mux)
		mux.Handle("/debug/pprof/", http.HandlerFunc(pprof.Index))
		mux.Handle("/debug/pprof/cmdline", http.HandlerFunc(pprof.Cmdline))
		mux.Handle("/debug/pprof/profile", http.HandlerFunc(pprof.Profile))
		mux.Handle("/debug/pprof/symbol", http.HandlerFunc(pprof.Symbol))
		mux.Handle("/debug/pprof/trace", http.HandlerFunc(pprof.Trace))

		port := fmt.Sprintf(":%d", cfg.System.HTTPAdminPort)
		adminserv = httputil.NewServer(port, mux)
		go func() {
			runtime.SetMutexProfileFraction(1)
			runtime.SetBlockProfileRate(1)
			ln, err := httputil.LimitListener(adminserv.Addr)
			if err != nil {
				log.L().Error("Error when listen to admin port.", zap.Error(err))
				return
			}
			if err := adminserv.Serve(ln); err != nil {
				log.L().Error("Error when serving performance profiling data.", zap.Error(err))
			}
		}()
	}

	<-ctx.Done()
	probeSvr.NotReady()
	if err := adminserv.Shutdown(ctx); err != nil {
		log.L().Error("Error when shutting down the admin server.", zap.Error(err))
	}
	if err := svr.Stop(ctx); err != nil {
		log.L().Panic("Failed to stop server.", zap.Error(err))
	}
}
