// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package routine_test

import (
	"context"
	"testing"
	"time"

	"github.com/facebookgo/clock"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/routehubproject/routehub-core/pkg/routine"
)

func TestRecurringTask(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	var fired atomic.Int32
	ck := clock.NewMock()
	task := routine.NewRecurringTask(func() { fired.Inc() }, time.Second, routine.WithClock(ck))

	require.NoError(task.Start(ctx))
	// nothing fires before the first interval elapses
	ck.Add(990 * time.Millisecond)
	require.Zero(fired.Load())

	ck.Add(6 * time.Second)
	require.NoError(task.Stop(ctx))
	require.True(fired.Load() >= 5)
}

func TestRecurringTaskLifecycle(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	task := routine.NewRecurringTask(func() {}, time.Second)
	require.Error(task.Stop(ctx))

	require.NoError(task.Start(ctx))
	require.Error(task.Start(ctx))
	require.NoError(task.Stop(ctx))
	require.Error(task.Stop(ctx))
}
