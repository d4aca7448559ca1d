// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package api

import (
	"context"
	"sync"
)

type (
	streamContextKey struct{}

	// streamContext tracks the subscriptions opened on one streaming connection
	// so they can be dropped when the connection goes away
	streamContext struct {
		mu  sync.Mutex
		ids map[string]struct{}
	}
)

func (sc *streamContext) addSubscription(id string) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.ids[id] = struct{}{}
}

func (sc *streamContext) dropSubscription(id string) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	delete(sc.ids, id)
}

func (sc *streamContext) subscriptionIDs() []string {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	ids := make([]string, 0, len(sc.ids))
	for id := range sc.ids {
		ids = append(ids, id)
	}
	return ids
}

// withStreamContext attaches a fresh streamContext to the context
func withStreamContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, streamContextKey{}, &streamContext{
		ids: make(map[string]struct{}),
	})
}

// streamFromContext reports whether the request arrived on a streaming connection
func streamFromContext(ctx context.Context) (*streamContext, bool) {
	sc, ok := ctx.Value(streamContextKey{}).(*streamContext)
	return sc, ok
}
