// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package httputil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	require := require.New(t)
	svr := NewServer("127.0.0.1:15014", nil, ReadHeaderTimeout(2*time.Second))
	require.Equal("127.0.0.1:15014", svr.Addr)
	require.Equal(2*time.Second, svr.ReadHeaderTimeout)
	require.Equal(DefaultServerConfig.ReadTimeout, svr.ReadTimeout)
	require.Equal(DefaultServerConfig.WriteTimeout, svr.WriteTimeout)
	require.Equal(DefaultServerConfig.IdleTimeout, svr.IdleTimeout)
}

func TestLimitListener(t *testing.T) {
	require := require.New(t)
	ln, err := LimitListener("127.0.0.1:0")
	require.NoError(err)
	require.NoError(ln.Close())

	_, err = LimitListener("no-port")
	require.Error(err)
}
