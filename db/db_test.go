// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package db

import (
	"bytes"
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routehubproject/routehub-core/db/batch"
	"github.com/routehubproject/routehub-core/testutil"
)

var (
	bucket1 = "test_ns1"
	bucket2 = "test_ns2"
	testK1  = [3][]byte{[]byte("key_1"), []byte("key_2"), []byte("key_3")}
	testV1  = [3][]byte{[]byte("value_1"), []byte("value_2"), []byte("value_3")}
	testK2  = [3][]byte{[]byte("key_4"), []byte("key_5"), []byte("key_6")}
	testV2  = [3][]byte{[]byte("value_4"), []byte("value_5"), []byte("value_6")}
)

func TestKVStorePutGet(t *testing.T) {
	testKVStorePutGet := func(kvStore KVStore, t *testing.T) {
		assert := assert.New(t)
		ctx := context.Background()

		assert.Nil(kvStore.Start(ctx))
		defer func() {
			err := kvStore.Stop(ctx)
			assert.Nil(err)
		}()

		assert.Nil(kvStore.Put(bucket1, []byte("key"), []byte("value")))
		value, err := kvStore.Get(bucket1, []byte("key"))
		assert.Nil(err)
		assert.Equal([]byte("value"), value)

		// a different namespace
		value, err = kvStore.Get("test_ns_1", []byte("key"))
		assert.Equal(ErrBucketNotExist, errors.Cause(err))
		assert.Nil(value)

		// a key that was never written
		value, err = kvStore.Get(bucket1, testK1[0])
		assert.Equal(ErrNotExist, errors.Cause(err))
		assert.Nil(value)

		// delete is a no-op on a missing key
		assert.Nil(kvStore.Delete(bucket1, testK1[0]))
		assert.Nil(kvStore.Delete(bucket1, []byte("key")))
		value, err = kvStore.Get(bucket1, []byte("key"))
		assert.Equal(ErrNotExist, errors.Cause(err))
		assert.Nil(value)
	}

	t.Run("In-memory KV store", func(t *testing.T) {
		testKVStorePutGet(NewMemKVStore(), t)
	})

	path := "test-kv-store.bolt"
	t.Run("Bolt DB", func(t *testing.T) {
		testPath, err := testutil.PathOfTempFile(path)
		require.NoError(t, err)
		defer testutil.CleanupPath(testPath)
		cfg := DefaultConfig
		cfg.DbPath = testPath
		testKVStorePutGet(NewBoltDB(cfg), t)
	})
}

func TestBoltDBNotStarted(t *testing.T) {
	require := require.New(t)
	testPath, err := testutil.PathOfTempFile("test-not-started.bolt")
	require.NoError(err)
	defer testutil.CleanupPath(testPath)
	cfg := DefaultConfig
	cfg.DbPath = testPath
	kv := NewBoltDB(cfg)

	err = kv.Put(bucket1, testK1[0], testV1[0])
	require.Equal(ErrDBNotStarted, errors.Cause(err))
	_, err = kv.Get(bucket1, testK1[0])
	require.Equal(ErrDBNotStarted, errors.Cause(err))
	err = kv.WriteBatch(batch.NewBatch())
	require.Equal(ErrDBNotStarted, errors.Cause(err))
}

func TestBatchCommit(t *testing.T) {
	testBatchCommit := func(kvStore KVStore, t *testing.T) {
		require := require.New(t)
		ctx := context.Background()

		require.NoError(kvStore.Start(ctx))
		defer func() {
			require.NoError(kvStore.Stop(ctx))
		}()

		b := batch.NewBatch()
		b.Put(bucket1, testK1[0], testV1[0], "failed to put k1")
		b.Put(bucket1, testK1[1], testV1[1], "failed to put k2")
		b.Put(bucket2, testK2[0], testV2[0], "failed to put k4")
		require.NoError(kvStore.WriteBatch(b))
		// the batch is cleared after a successful commit
		require.Zero(b.Size())

		value, err := kvStore.Get(bucket1, testK1[0])
		require.NoError(err)
		require.Equal(testV1[0], value)
		value, err = kvStore.Get(bucket2, testK2[0])
		require.NoError(err)
		require.Equal(testV2[0], value)

		// delete that is batched with a put lands in the same commit
		b.Put(bucket1, testK1[2], testV1[2], "failed to put k3")
		b.Delete(bucket1, testK1[0], "failed to delete k1")
		require.NoError(kvStore.WriteBatch(b))

		value, err = kvStore.Get(bucket1, testK1[2])
		require.NoError(err)
		require.Equal(testV1[2], value)
		_, err = kvStore.Get(bucket1, testK1[0])
		require.Equal(ErrNotExist, errors.Cause(err))
	}

	t.Run("In-memory KV store", func(t *testing.T) {
		testBatchCommit(NewMemKVStore(), t)
	})

	t.Run("Bolt DB", func(t *testing.T) {
		testPath, err := testutil.PathOfTempFile("test-batch-commit.bolt")
		require.NoError(t, err)
		defer testutil.CleanupPath(testPath)
		cfg := DefaultConfig
		cfg.DbPath = testPath
		testBatchCommit(NewBoltDB(cfg), t)
	})
}

func TestBoltDBRollback(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	testPath, err := testutil.PathOfTempFile("test-rollback.bolt")
	require.NoError(err)
	defer testutil.CleanupPath(testPath)
	cfg := DefaultConfig
	cfg.DbPath = testPath
	kv := NewBoltDB(cfg)
	require.NoError(kv.Start(ctx))
	defer func() {
		require.NoError(kv.Stop(ctx))
	}()

	require.NoError(kv.Put(bucket1, testK1[0], testV1[0]))

	bdb, ok := kv.(*boltDB)
	require.True(ok)
	keys := [][]byte{testK1[0], testK1[1]}
	values := [][]byte{testV1[1], testV1[2]}
	require.Error(bdb.batchPutForceFail(bucket1, keys, values))

	// the failed transaction leaves the old value intact
	value, err := kv.Get(bucket1, testK1[0])
	require.NoError(err)
	require.Equal(testV1[0], value)
	_, err = kv.Get(bucket1, testK1[1])
	require.Equal(ErrNotExist, errors.Cause(err))
}

func TestFilter(t *testing.T) {
	testFilter := func(kvStore KVStore, t *testing.T) {
		require := require.New(t)
		ctx := context.Background()

		require.NoError(kvStore.Start(ctx))
		defer func() {
			require.NoError(kvStore.Stop(ctx))
		}()

		for i := range testK1 {
			require.NoError(kvStore.Put(bucket1, testK1[i], testV1[i]))
		}
		for i := range testK2 {
			require.NoError(kvStore.Put(bucket1, testK2[i], testV2[i]))
		}

		// all keys
		fk, fv, err := kvStore.Filter(bucket1, func(k, v []byte) bool { return true }, nil, nil)
		require.NoError(err)
		require.Equal(6, len(fk))
		require.Equal(6, len(fv))

		// by value prefix
		fk, fv, err = kvStore.Filter(bucket1, func(k, v []byte) bool {
			return bytes.HasPrefix(v, []byte("value_4"))
		}, nil, nil)
		require.NoError(err)
		require.Equal(1, len(fk))
		require.Equal(testK2[0], fk[0])
		require.Equal(testV2[0], fv[0])

		// with key range [key_2, key_5]
		fk, _, err = kvStore.Filter(bucket1, func(k, v []byte) bool { return true }, testK1[1], testK2[1])
		require.NoError(err)
		require.Equal(4, len(fk))

		// missing namespace
		_, _, err = kvStore.Filter(bucket2, func(k, v []byte) bool { return true }, nil, nil)
		require.Equal(ErrBucketNotExist, errors.Cause(err))
	}

	t.Run("In-memory KV store", func(t *testing.T) {
		testFilter(NewMemKVStore(), t)
	})

	t.Run("Bolt DB", func(t *testing.T) {
		testPath, err := testutil.PathOfTempFile("test-filter.bolt")
		require.NoError(t, err)
		defer testutil.CleanupPath(testPath)
		cfg := DefaultConfig
		cfg.DbPath = testPath
		testFilter(NewBoltDB(cfg), t)
	})
}
