// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package probe

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routehubproject/routehub-core/testutil"
)

type testCase struct {
	endpoint string
	code     int
}

func TestBasicProbe(t *testing.T) {
	port := testutil.RandomPort()
	require.True(t, port > 0)
	base := fmt.Sprintf("http://localhost:%d", port)
	testFunc := func(ts []testCase) {
		for _, tt := range ts {
			resp, err := http.Get(base + tt.endpoint)
			require.NoError(t, err)
			assert.Equal(t, tt.code, resp.StatusCode)
			require.NoError(t, resp.Body.Close())
		}
	}

	s := New(port)
	ctx := context.Background()
	require.NoError(t, s.Start(ctx))
	require.NoError(t, testutil.WaitUntil(100*time.Millisecond, 2*time.Second, func() (bool, error) {
		resp, err := http.Get(base + "/liveness")
		if err != nil {
			return false, nil
		}
		return true, resp.Body.Close()
	}))

	notReady := []testCase{
		{endpoint: "/liveness", code: http.StatusOK},
		{endpoint: "/readiness", code: http.StatusServiceUnavailable},
		{endpoint: "/health", code: http.StatusServiceUnavailable},
		{endpoint: "/metrics", code: http.StatusOK},
	}
	ready := []testCase{
		{endpoint: "/liveness", code: http.StatusOK},
		{endpoint: "/readiness", code: http.StatusOK},
		{endpoint: "/health", code: http.StatusOK},
		{endpoint: "/metrics", code: http.StatusOK},
	}
	testFunc(notReady)
	s.Ready()
	testFunc(ready)
	s.NotReady()
	testFunc(notReady)

	require.NoError(t, s.Stop(ctx))
	_, err := http.Get(base + "/liveness")
	require.Error(t, err)
}
