// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package hub

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/routehubproject/routehub-core/pkg/log"
)

type callCtxKey struct{}

// CallCtx carries the caller identity and the native value attached to a hub call.
type CallCtx struct {
	// Caller is the account the operation executes on behalf of
	Caller common.Address
	// Value is the native currency attached to the call, nil means zero
	Value *big.Int
}

// AttachedValue returns the attached native value, never nil
func (c CallCtx) AttachedValue() *big.Int {
	if c.Value == nil {
		return big.NewInt(0)
	}
	return c.Value
}

// WithCallCtx adds CallCtx into context.
func WithCallCtx(ctx context.Context, c CallCtx) context.Context {
	return context.WithValue(ctx, callCtxKey{}, c)
}

// GetCallCtx gets CallCtx
func GetCallCtx(ctx context.Context) (CallCtx, bool) {
	c, ok := ctx.Value(callCtxKey{}).(CallCtx)
	return c, ok
}

// MustGetCallCtx must get CallCtx. If context doesn't exist, this function panics.
func MustGetCallCtx(ctx context.Context) CallCtx {
	c, ok := ctx.Value(callCtxKey{}).(CallCtx)
	if !ok {
		log.S().Panic("Miss call context")
	}
	return c
}
