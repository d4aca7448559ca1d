// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package db

import (
	"context"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routehubproject/routehub-core/testutil"
)

func TestBoltDBPersistence(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	path, err := testutil.PathOfTempFile("test-persistence.bolt")
	require.NoError(err)
	defer testutil.CleanupPath(path)
	cfg := DefaultConfig
	cfg.DbPath = path

	kv := NewBoltDB(cfg)
	require.NoError(kv.Start(ctx))
	require.NoError(kv.Put("chains", []byte("0x9"), []byte("era")))
	require.NoError(kv.Stop(ctx))

	// the record survives a restart
	kv = NewBoltDB(cfg)
	require.NoError(kv.Start(ctx))
	defer func() {
		require.NoError(kv.Stop(ctx))
	}()
	v, err := kv.Get("chains", []byte("0x9"))
	require.NoError(err)
	require.Equal([]byte("era"), v)
}

func BenchmarkBoltDBGet(b *testing.B) {
	for _, size := range []int{100, 10000, 1000000} {
		b.Run(strconv.Itoa(size), func(b *testing.B) {
			path, err := testutil.PathOfTempFile("boltdb")
			require.NoError(b, err)
			defer testutil.CleanupPath(path)
			cfg := DefaultConfig
			cfg.DbPath = path
			kv := NewBoltDB(cfg)
			require.NoError(b, kv.Start(context.Background()))
			defer kv.Stop(context.Background())

			v := make([]byte, size)
			_, err = rand.New(rand.NewSource(42)).Read(v)
			require.NoError(b, err)
			require.NoError(b, kv.Put("ns", []byte("key"), v))

			b.ResetTimer()
			for n := 0; n < b.N; n++ {
				if _, err := kv.Get("ns", []byte("key")); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
