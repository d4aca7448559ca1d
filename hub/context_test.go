// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package hub

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestCallCtx(t *testing.T) {
	require := require.New(t)

	caller := common.HexToAddress("0x3f9c20bcec9e520d75c9156c9033ab16797114af")
	ctx := WithCallCtx(context.Background(), CallCtx{
		Caller: caller,
		Value:  big.NewInt(42),
	})

	call, ok := GetCallCtx(ctx)
	require.True(ok)
	require.Equal(caller, call.Caller)
	require.Equal(big.NewInt(42), call.AttachedValue())

	_, ok = GetCallCtx(context.Background())
	require.False(ok)

	require.Equal(call, MustGetCallCtx(ctx))
	require.Panics(func() {
		MustGetCallCtx(context.Background())
	})
}

func TestAttachedValue(t *testing.T) {
	require := require.New(t)

	var call CallCtx
	require.NotNil(call.AttachedValue())
	require.Equal(int64(0), call.AttachedValue().Int64())

	v := big.NewInt(7)
	call.Value = v
	require.Same(v, call.AttachedValue())
}
