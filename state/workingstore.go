// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package state

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/routehubproject/routehub-core/db"
	"github.com/routehubproject/routehub-core/db/batch"
)

var (
	_workingStoreMtc = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "routehub_working_store",
			Help: "RouteHub working store",
		},
		[]string{"type"},
	)
)

func init() {
	prometheus.MustRegister(_workingStoreMtc)
}

// WorkingStore buffers the state writes of a single hub operation and commits
// them to the underlying store in one batch. An operation that fails simply
// drops its working store, so no partial write is ever observable.
type WorkingStore struct {
	flusher db.KVStoreFlusher
}

// NewWorkingStore creates a working store on top of the given KVStore
func NewWorkingStore(kv db.KVStore, opts ...db.KVStoreFlusherOption) (*WorkingStore, error) {
	flusher, err := db.NewKVStoreFlusher(kv, batch.NewCachedBatch(), opts...)
	if err != nil {
		return nil, err
	}
	return &WorkingStore{flusher: flusher}, nil
}

// State reads the state record at (ns, key) into s
func (ws *WorkingStore) State(ns string, key []byte, s interface{}) error {
	_workingStoreMtc.WithLabelValues("get").Inc()
	value, err := ws.flusher.KVStoreWithBuffer().Get(ns, key)
	if err != nil {
		if errors.Cause(err) == db.ErrNotExist || errors.Cause(err) == db.ErrBucketNotExist {
			return errors.Wrapf(ErrStateNotExist, "failed to get state of ns = %s and key = %x", ns, key)
		}
		return err
	}
	return Deserialize(s, value)
}

// PutState writes the state record s at (ns, key)
func (ws *WorkingStore) PutState(ns string, key []byte, s interface{}) error {
	_workingStoreMtc.WithLabelValues("put").Inc()
	value, err := Serialize(s)
	if err != nil {
		return errors.Wrapf(err, "failed to put state of ns = %s and key = %x", ns, key)
	}
	ws.flusher.KVStoreWithBuffer().MustPut(ns, key, value)
	return nil
}

// DelState deletes the state record at (ns, key)
func (ws *WorkingStore) DelState(ns string, key []byte) error {
	_workingStoreMtc.WithLabelValues("delete").Inc()
	ws.flusher.KVStoreWithBuffer().MustDelete(ns, key)
	return nil
}

// Exist returns whether a state record exists at (ns, key)
func (ws *WorkingStore) Exist(ns string, key []byte) (bool, error) {
	_, err := ws.flusher.KVStoreWithBuffer().Get(ns, key)
	switch errors.Cause(err) {
	case nil:
		return true, nil
	case db.ErrNotExist, db.ErrBucketNotExist:
		return false, nil
	default:
		return false, err
	}
}

// Snapshot takes a snapshot of the buffered writes
func (ws *WorkingStore) Snapshot() int {
	return ws.flusher.KVStoreWithBuffer().Snapshot()
}

// RevertSnapshot reverts the buffer to the given snapshot
func (ws *WorkingStore) RevertSnapshot(snapshot int) error {
	return ws.flusher.KVStoreWithBuffer().RevertSnapshot(snapshot)
}

// ResetSnapshots clears all snapshots
func (ws *WorkingStore) ResetSnapshots() {
	ws.flusher.KVStoreWithBuffer().ResetSnapshots()
}

// Digest returns the hash of the buffered write queue
func (ws *WorkingStore) Digest() common.Hash {
	return crypto.Keccak256Hash(ws.flusher.SerializeQueue())
}

// Size returns the number of buffered writes
func (ws *WorkingStore) Size() int {
	return ws.flusher.KVStoreWithBuffer().Size()
}

// Commit persists the buffered writes in one transaction
func (ws *WorkingStore) Commit() error {
	_workingStoreMtc.WithLabelValues("commit").Inc()
	return ws.flusher.Flush()
}
