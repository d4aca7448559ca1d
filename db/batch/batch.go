// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Package batch provides the write buffer that stages Put/Delete operations before
// they are committed to an underlying KVStore in one transaction.
package batch

import (
	"sync"

	"github.com/pkg/errors"
)

var (
	// ErrAlreadyDeleted indicates the key has been deleted
	ErrAlreadyDeleted = errors.New("already deleted from DB")
	// ErrAlreadyExist indicates certain item already exists in Blockchain database
	ErrAlreadyExist = errors.New("already exist in DB")
	// ErrNotExist indicates certain item does not exist in Blockchain database
	ErrNotExist = errors.New("not exist in DB")
	// ErrOutOfBound indicates an out of bound error
	ErrOutOfBound = errors.New("out of bound")
	// ErrUnexpectedType indicates an invalid casting
	ErrUnexpectedType = errors.New("unexpected type")
)

type (
	// KVStoreBatch defines a batch buffer interface that stages Put/Delete entries in sequential order
	// To use it, first start a new batch
	// b := NewBatch()
	// and keep batching Put/Delete operations into it
	// b.Put(bucket, k, v, "error message")
	// b.Delete(bucket, k, "error message")
	// once it's done, call KVStore interface's WriteBatch() to persist to underlying DB
	// KVStore.WriteBatch(b)
	// if the commit succeeds, the batch is cleared
	// otherwise the batch is kept intact (so the batch user can figure out what went wrong and attempt re-commit later)
	KVStoreBatch interface {
		// Lock locks the batch
		Lock()
		// Unlock unlocks the batch
		Unlock()
		// ClearAndUnlock clears the batch buffer and unlocks the batch
		ClearAndUnlock()
		// Put insert or update a record identified by (namespace, key)
		Put(string, []byte, []byte, string)
		// Delete deletes a record by (namespace, key)
		Delete(string, []byte, string)
		// Size returns the size of batch
		Size() int
		// Entry returns the entry at the index
		Entry(int) (*WriteInfo, error)
		// SerializeQueue serialize the writes in queue
		SerializeQueue(WriteInfoFilter) []byte
		// ExcludeEntries returns a new batch which excludes the entries filtered by the given namespace and write type
		ExcludeEntries(string, WriteType) KVStoreBatch
		// Clear clears entries staged in batch
		Clear()
	}

	// CachedBatch derives from KVStoreBatch interface
	// A local cache is added to provide fast retrieval of pending Put/Delete operations
	CachedBatch interface {
		KVStoreBatch
		// Get gets a record by (namespace, key)
		Get(string, []byte) ([]byte, error)
		// Snapshot takes a snapshot of current cached batch
		Snapshot() int
		// Revert sets the cached batch to the state at the given snapshot
		Revert(int) error
		// ResetSnapshots() clears all snapshots
		ResetSnapshots()
	}

	// baseKVStoreBatch is the base implementation of KVStoreBatch
	baseKVStoreBatch struct {
		mutex      sync.RWMutex
		writeQueue []*WriteInfo
	}

	// cachedBatch implements the CachedBatch interface
	cachedBatch struct {
		lock         sync.RWMutex
		kvStoreBatch *baseKVStoreBatch
		tip          int            // latest snapshot + 1
		batchShots   []int          // write queue length at the moment of snapshot
		caches       []KVStoreCache // snapshot stack of caches
	}
)

// NewBatch returns a batch
func NewBatch() KVStoreBatch {
	return newBaseKVStoreBatch()
}

func newBaseKVStoreBatch() *baseKVStoreBatch {
	return &baseKVStoreBatch{}
}

// Lock locks the batch
func (b *baseKVStoreBatch) Lock() {
	b.mutex.Lock()
}

// Unlock unlocks the batch
func (b *baseKVStoreBatch) Unlock() {
	b.mutex.Unlock()
}

// ClearAndUnlock clears the write queue and unlocks the batch
func (b *baseKVStoreBatch) ClearAndUnlock() {
	defer b.mutex.Unlock()
	b.writeQueue = nil
}

// Put inserts or updates a record identified by (namespace, key)
func (b *baseKVStoreBatch) Put(namespace string, key, value []byte, errorMessage string) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.batch(Put, namespace, key, value, errorMessage)
}

// Delete deletes a record by (namespace, key)
func (b *baseKVStoreBatch) Delete(namespace string, key []byte, errorMessage string) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.batch(Delete, namespace, key, nil, errorMessage)
}

// Size returns the size of the batch
func (b *baseKVStoreBatch) Size() int {
	return len(b.writeQueue)
}

// Entry returns the entry at the index
func (b *baseKVStoreBatch) Entry(index int) (*WriteInfo, error) {
	if index < 0 || index >= len(b.writeQueue) {
		return nil, errors.Wrap(ErrOutOfBound, "index out of range")
	}
	return b.writeQueue[index], nil
}

// SerializeQueue serializes the writes in queue, in write order
func (b *baseKVStoreBatch) SerializeQueue(filter WriteInfoFilter) []byte {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	// 1. This could be improved by being processed in parallel
	// 2. Digest could be replaced by merkle root if we need proof of items in the batch
	bytes := make([]byte, 0)
	for _, wi := range b.writeQueue {
		if filter != nil && filter(wi) {
			continue
		}
		bytes = append(bytes, wi.Serialize()...)
	}
	return bytes
}

// ExcludeEntries returns a new batch which excludes the entries in the given
// namespace with the given write type. An empty namespace matches all namespaces
func (b *baseKVStoreBatch) ExcludeEntries(namespace string, op WriteType) KVStoreBatch {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	c := newBaseKVStoreBatch()
	for _, wi := range b.writeQueue {
		if (namespace == "" || wi.namespace == namespace) && wi.writeType == op {
			continue
		}
		c.writeQueue = append(c.writeQueue, wi)
	}
	return c
}

// Clear clears the write queue
func (b *baseKVStoreBatch) Clear() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.writeQueue = nil
}

// batch appends a write to the queue, the caller holds the lock
func (b *baseKVStoreBatch) batch(op WriteType, namespace string, key, value []byte, errorMessage string) {
	b.writeQueue = append(
		b.writeQueue,
		&WriteInfo{
			writeType:    op,
			namespace:    namespace,
			key:          key,
			value:        value,
			errorMessage: errorMessage,
		})
}

// truncate resets the write queue to the given length, the caller holds the lock
func (b *baseKVStoreBatch) truncate(size int) {
	b.writeQueue = b.writeQueue[:size]
}

// NewCachedBatch returns a new cached batch buffer
func NewCachedBatch() CachedBatch {
	cb := &cachedBatch{
		kvStoreBatch: newBaseKVStoreBatch(),
	}
	cb.clear()
	return cb
}

// Lock locks the batch
func (cb *cachedBatch) Lock() {
	cb.lock.Lock()
}

// Unlock unlocks the batch
func (cb *cachedBatch) Unlock() {
	cb.lock.Unlock()
}

// ClearAndUnlock clears the write queue and unlocks the batch
func (cb *cachedBatch) ClearAndUnlock() {
	defer cb.lock.Unlock()
	cb.clear()
}

// Put inserts or updates a record identified by (namespace, key)
func (cb *cachedBatch) Put(namespace string, key, value []byte, errorMessage string) {
	cb.lock.Lock()
	defer cb.lock.Unlock()
	cb.currentCache().Write(&kvCacheKey{namespace, string(key)}, value)
	cb.kvStoreBatch.batch(Put, namespace, key, value, errorMessage)
}

// Delete deletes a record by (namespace, key)
func (cb *cachedBatch) Delete(namespace string, key []byte, errorMessage string) {
	cb.lock.Lock()
	defer cb.lock.Unlock()
	cb.currentCache().Evict(&kvCacheKey{namespace, string(key)})
	cb.kvStoreBatch.batch(Delete, namespace, key, nil, errorMessage)
}

// Get retrieves a record, checking the cache levels from the newest to the oldest
func (cb *cachedBatch) Get(namespace string, key []byte) ([]byte, error) {
	cb.lock.RLock()
	defer cb.lock.RUnlock()
	cacheKey := kvCacheKey{namespace, string(key)}
	var v []byte
	err := ErrNotExist
	for i := len(cb.caches) - 1; i >= 0; i-- {
		if v, err = cb.caches[i].Read(&cacheKey); errors.Cause(err) != ErrNotExist {
			break
		}
	}
	return v, err
}

// Size returns the size of the batch. A batch being iterated is protected by
// the external Lock/Unlock bracket, so the accessors below take no lock
func (cb *cachedBatch) Size() int {
	return cb.kvStoreBatch.Size()
}

// Entry returns the entry at the index
func (cb *cachedBatch) Entry(i int) (*WriteInfo, error) {
	return cb.kvStoreBatch.Entry(i)
}

// SerializeQueue serializes the writes in queue, in write order
func (cb *cachedBatch) SerializeQueue(filter WriteInfoFilter) []byte {
	return cb.kvStoreBatch.SerializeQueue(filter)
}

// ExcludeEntries returns a new batch which excludes the entries filtered by the given namespace and write type
func (cb *cachedBatch) ExcludeEntries(namespace string, op WriteType) KVStoreBatch {
	return cb.kvStoreBatch.ExcludeEntries(namespace, op)
}

// Clear clears the write queue, the caches and the snapshots
func (cb *cachedBatch) Clear() {
	cb.lock.Lock()
	defer cb.lock.Unlock()
	cb.clear()
}

// Snapshot takes a snapshot of the current batch. The snapshot number starts
// from 0 and increases by 1 for every new snapshot
func (cb *cachedBatch) Snapshot() int {
	cb.lock.Lock()
	defer cb.lock.Unlock()
	defer func() { cb.tip++ }()
	cb.batchShots = append(cb.batchShots, cb.kvStoreBatch.Size())
	cb.caches = append(cb.caches, NewKVCache())
	return cb.tip
}

// Revert sets the batch to the state at the moment the given snapshot was taken.
// Snapshots up to (and including) the given one remain valid
func (cb *cachedBatch) Revert(snapshot int) error {
	cb.lock.Lock()
	defer cb.lock.Unlock()
	if snapshot < 0 || snapshot >= cb.tip {
		return errors.Wrapf(ErrOutOfBound, "invalid snapshot number = %d", snapshot)
	}
	cb.tip = snapshot + 1
	cb.batchShots = cb.batchShots[:cb.tip]
	cb.kvStoreBatch.truncate(cb.batchShots[snapshot])
	cb.caches = cb.caches[:cb.tip]
	cb.caches = append(cb.caches, NewKVCache())
	return nil
}

// ResetSnapshots squashes all cache levels into one and drops all snapshots
func (cb *cachedBatch) ResetSnapshots() {
	cb.lock.Lock()
	defer cb.lock.Unlock()
	cb.tip = 0
	cb.batchShots = nil
	if len(cb.caches) > 1 {
		squashed := NewKVCache()
		if err := squashed.Append(cb.caches...); err != nil {
			// caches are all kvCache instances created by this batch
			panic(err)
		}
		cb.caches = []KVStoreCache{squashed}
	}
}

func (cb *cachedBatch) clear() {
	cb.kvStoreBatch.Clear()
	cb.tip = 0
	cb.batchShots = make([]int, 0)
	cb.caches = []KVStoreCache{NewKVCache()}
}

func (cb *cachedBatch) currentCache() KVStoreCache {
	return cb.caches[len(cb.caches)-1]
}
