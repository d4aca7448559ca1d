// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package routehub

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/routehubproject/routehub-core/config"
	"github.com/routehubproject/routehub-core/pkg/probe"
	"github.com/routehubproject/routehub-core/request"
	"github.com/routehubproject/routehub-core/testutil"
)

const _testOwner = "0x07b1b0bfbe2a53e430fcbd9a23ebfaac10f93b31"

func testConfig(t *testing.T) config.Config {
	cfg := config.Default
	cfg.Owner = _testOwner
	cfg.API.HTTPPort = testutil.RandomPort()
	cfg.API.WebSocketPort = testutil.RandomPort()
	require.True(t, cfg.API.HTTPPort > 0)
	require.True(t, cfg.API.WebSocketPort > 0)
	return cfg
}

func TestNewServer(t *testing.T) {
	require := require.New(t)
	cfg := testConfig(t)
	dbPath, err := testutil.PathOfTempFile("hub-db")
	require.NoError(err)
	defer testutil.CleanupPath(dbPath)
	cfg.DB.DbPath = dbPath

	svr, err := NewServer(cfg)
	require.NoError(err)
	require.NotNil(svr)
	ctx := context.Background()
	require.NoError(svr.Start(ctx))
	require.Equal(request.ChainID(1), svr.Hub().OwnChainID())
	require.Equal(cfg.OwnerAddress(), svr.Hub().Owner())
	require.False(svr.Hub().SettlementMode())
	require.NoError(svr.Stop(ctx))
}

func TestNewServerInvalidOwner(t *testing.T) {
	require := require.New(t)
	cfg := config.Default
	cfg.Owner = "routehub"
	_, err := NewServer(cfg)
	require.ErrorContains(err, "invalid owner address")
}

func TestNewInMemTestServer(t *testing.T) {
	require := require.New(t)
	svr, err := NewInMemTestServer(testConfig(t))
	require.NoError(err)
	require.NotNil(svr)
	require.NotNil(svr.Environment())
	ctx := context.Background()
	require.NoError(svr.Start(ctx))
	require.NoError(svr.Stop(ctx))
}

func TestStartServer(t *testing.T) {
	require := require.New(t)
	cfg := testConfig(t)
	cfg.System.HeartbeatInterval = 50 * time.Millisecond
	cfg.System.HTTPAdminPort = testutil.RandomPort()
	require.True(cfg.System.HTTPAdminPort > 0)
	probePort := testutil.RandomPort()
	require.True(probePort > 0)

	svr, err := NewInMemTestServer(cfg)
	require.NoError(err)
	probeSvr := probe.New(probePort)
	require.NoError(probeSvr.Start(context.Background()))
	defer func() {
		require.NoError(probeSvr.Stop(context.Background()))
	}()

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		StartServer(ctx, svr, probeSvr, cfg)
		close(stopped)
	}()

	readiness := fmt.Sprintf("http://localhost:%d/readiness", probePort)
	require.NoError(testutil.WaitUntil(100*time.Millisecond, 5*time.Second, func() (bool, error) {
		resp, err := http.Get(readiness)
		if err != nil {
			return false, nil
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK, nil
	}))

	pprofIndex := fmt.Sprintf("http://localhost:%d/debug/pprof/", cfg.System.HTTPAdminPort)
	require.NoError(testutil.WaitUntil(100*time.Millisecond, 5*time.Second, func() (bool, error) {
		resp, err := http.Get(pprofIndex)
		if err != nil {
			return false, nil
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK, nil
	}))

	cancel()
	<-stopped
	resp, err := http.Get(readiness)
	require.NoError(err)
	defer resp.Body.Close()
	require.Equal(http.StatusServiceUnavailable, resp.StatusCode)
}
