// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package batch

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var (
	_chainNS   = "chains"
	_tokenNS   = "tokens"
	_chainKeys = [][]byte{[]byte("0x9"), []byte("0xa"), []byte("0xb")}
	_chainVals = [][]byte{[]byte("era"), []byte("hyper"), []byte("gateway")}
)

func TestBatchQueue(t *testing.T) {
	require := require.New(t)

	b := NewBatch()
	b.Put(_chainNS, _chainKeys[0], _chainVals[0], "failed to put chain")
	b.Put(_tokenNS, _chainKeys[1], _chainVals[1], "failed to put token")
	b.Delete(_chainNS, _chainKeys[2], "failed to delete chain")
	require.Equal(3, b.Size())

	w, err := b.Entry(2)
	require.NoError(err)
	require.Equal(_chainNS, w.Namespace())
	require.Equal(_chainKeys[2], w.Key())
	require.Empty(w.Value())
	require.Equal(Delete, w.WriteType())
	require.Equal("failed to delete chain", w.ErrorMessage())

	_, err = b.Entry(3)
	require.Equal(ErrOutOfBound, errors.Cause(err))

	full := b.SerializeQueue(nil)
	noTokens := b.SerializeQueue(func(wi *WriteInfo) bool { return wi.Namespace() == _tokenNS })
	require.Less(len(noTokens), len(full))

	trimmed := b.ExcludeEntries(_chainNS, Delete)
	require.Equal(2, trimmed.Size())
	trimmed = b.ExcludeEntries("", Put)
	require.Equal(1, trimmed.Size())
	require.Equal(3, b.Size())

	b.Clear()
	require.Equal(0, b.Size())
}

func TestCachedBatchGet(t *testing.T) {
	require := require.New(t)

	cb := NewCachedBatch()
	cb.Put(_chainNS, _chainKeys[0], _chainVals[0], "")
	v, err := cb.Get(_chainNS, _chainKeys[0])
	require.NoError(err)
	require.Equal(_chainVals[0], v)

	// same key in another namespace stays unknown
	_, err = cb.Get(_tokenNS, _chainKeys[0])
	require.Equal(ErrNotExist, err)

	cb.Delete(_chainNS, _chainKeys[0], "")
	_, err = cb.Get(_chainNS, _chainKeys[0])
	require.Equal(ErrAlreadyDeleted, errors.Cause(err))

	// the write queue keeps both operations in call order
	require.Equal(2, cb.Size())
	w, err := cb.Entry(0)
	require.NoError(err)
	require.Equal(Put, w.WriteType())
	w, err = cb.Entry(1)
	require.NoError(err)
	require.Equal(Delete, w.WriteType())
}

func TestSnapshotRevert(t *testing.T) {
	require := require.New(t)

	cb := NewCachedBatch()
	cb.Put(_chainNS, _chainKeys[0], _chainVals[0], "")
	require.Equal(0, cb.Snapshot())

	cb.Put(_chainNS, _chainKeys[1], _chainVals[1], "")
	cb.Delete(_chainNS, _chainKeys[0], "")
	require.Equal(1, cb.Snapshot())
	require.Equal(3, cb.Size())

	cb.Put(_chainNS, _chainKeys[2], _chainVals[2], "")

	require.Error(cb.Revert(2))
	require.Error(cb.Revert(-1))

	// at snapshot 1 the first chain is deleted and the third is unknown
	require.NoError(cb.Revert(1))
	require.Equal(3, cb.Size())
	_, err := cb.Get(_chainNS, _chainKeys[0])
	require.Equal(ErrAlreadyDeleted, err)
	v, err := cb.Get(_chainNS, _chainKeys[1])
	require.NoError(err)
	require.Equal(_chainVals[1], v)
	_, err = cb.Get(_chainNS, _chainKeys[2])
	require.Equal(ErrNotExist, err)

	// at snapshot 0 only the first chain exists
	require.NoError(cb.Revert(0))
	require.Equal(1, cb.Size())
	v, err = cb.Get(_chainNS, _chainKeys[0])
	require.NoError(err)
	require.Equal(_chainVals[0], v)
	_, err = cb.Get(_chainNS, _chainKeys[1])
	require.Equal(ErrNotExist, err)
}

func TestResetSnapshots(t *testing.T) {
	require := require.New(t)

	cb := NewCachedBatch()
	cb.Put(_chainNS, _chainKeys[0], _chainVals[0], "")
	require.Equal(0, cb.Snapshot())
	cb.Put(_chainNS, _chainKeys[1], _chainVals[1], "")
	require.Equal(1, cb.Snapshot())
	cb.Delete(_chainNS, _chainKeys[0], "")

	cb.ResetSnapshots()

	// levels are squashed, old snapshots are gone
	require.Error(cb.Revert(0))
	_, err := cb.Get(_chainNS, _chainKeys[0])
	require.Equal(ErrAlreadyDeleted, err)
	v, err := cb.Get(_chainNS, _chainKeys[1])
	require.NoError(err)
	require.Equal(_chainVals[1], v)
	require.Equal(3, cb.Size())

	// numbering restarts after a reset
	require.Equal(0, cb.Snapshot())
}

func BenchmarkSerializeQueue(b *testing.B) {
	cb := NewCachedBatch()
	v := bytes.Repeat([]byte{0xe7}, 256)
	for i := 0; i < 4096; i++ {
		cb.Put(_chainNS, strconv.AppendUint(nil, uint64(i), 16), v, "")
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if len(cb.SerializeQueue(nil)) == 0 {
			b.Fatal("empty queue")
		}
	}
}
