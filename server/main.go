// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Usage:
//   make build
//   ./bin/server -config-path=./config.yaml
//
// The config file is optional: without one the node runs with the default
// config and the owner taken from the HUB_OWNER environment variable.

package main

import (
	"context"
	"flag"
	"fmt"
	glog "log"
	"os"
	"os/signal"
	"syscall"

	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"

	"github.com/routehubproject/routehub-core/config"
	"github.com/routehubproject/routehub-core/pkg/log"
	"github.com/routehubproject/routehub-core/pkg/probe"
	"github.com/routehubproject/routehub-core/server/routehub"
)

var _configPath string

func init() {
	flag.StringVar(&_configPath, "config-path", "", "Config path")
	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr,
			"usage: server -config-path=[string]\n")
		flag.PrintDefaults()
		os.Exit(2)
	}
}

func main() {
	flag.Parse()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	signal.Notify(stop, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	livenessCtx, livenessCancel := context.WithCancel(context.Background())

	var configPaths []string
	if _configPath != "" {
		configPaths = append(configPaths, _configPath)
	}
	cfg, err := config.New(configPaths)
	if err != nil {
		glog.Fatalln("Failed to new config.", zap.Error(err))
	}
	initLogger(cfg)
	log.S().Infof("Config in use: %+v", cfg)

	// liveness start
	probeSvr := probe.New(cfg.System.HTTPStatsPort)
	if err := probeSvr.Start(ctx); err != nil {
		log.L().Fatal("Failed to start probe server.", zap.Error(err))
	}
	go func() {
		<-stop
		// start stopping
		cancel()
		<-stopped

		// liveness end
		if err := probeSvr.Stop(livenessCtx); err != nil {
			log.L().Error("Error when stopping probe server.", zap.Error(err))
		}
		livenessCancel()
	}()

	// create and start the node
	svr, err := routehub.NewServer(cfg)
	if err != nil {
		log.L().Fatal("Failed to create server.", zap.Error(err))
	}

	routehub.StartServer(ctx, svr, probeSvr, cfg)
	close(stopped)
	<-livenessCtx.Done()
}

func initLogger(cfg config.Config) {
	if err := log.InitLoggers(cfg.Log, cfg.SubLogs, zap.Fields(
		zap.String("owner", cfg.Owner),
		zap.Uint64("ownChainID", cfg.Hub.OwnChainID),
	)); err != nil {
		glog.Println("Cannot config global logger, use default one: ", err)
	}
}
