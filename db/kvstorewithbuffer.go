// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package db

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/routehubproject/routehub-core/db/batch"
)

type (
	withBuffer interface {
		Snapshot() int
		RevertSnapshot(int) error
		ResetSnapshots()
		SerializeQueue(batch.WriteInfoFilter) []byte
		MustPut(string, []byte, []byte)
		MustDelete(string, []byte)
		Size() int
	}

	// KVStoreWithBuffer defines a KVStore with a buffer, which enables snapshot, revert,
	// and transaction with multiple writes
	KVStoreWithBuffer interface {
		KVStore
		withBuffer
	}

	// KVStoreFlusher is a wrapper of KVStoreWithBuffer, which has flush api
	KVStoreFlusher interface {
		SerializeQueue() []byte
		Flush() error
		KVStoreWithBuffer() KVStoreWithBuffer
		BaseKVStore() KVStore
	}

	flusher struct {
		kvb             *kvStoreWithBuffer
		serializeFilter batch.WriteInfoFilter
	}

	kvStoreWithBuffer struct {
		store  KVStore
		buffer batch.CachedBatch
	}

	// KVStoreFlusherOption sets option for KVStoreFlusher
	KVStoreFlusherOption func(*flusher) error
)

// SerializeFilterOption sets the filter for serialize write queue
func SerializeFilterOption(filter batch.WriteInfoFilter) KVStoreFlusherOption {
	return func(f *flusher) error {
		if filter == nil {
			return errors.New("filter cannot be nil")
		}
		f.serializeFilter = filter

		return nil
	}
}

// NewKVStoreFlusher returns kv store flusher
func NewKVStoreFlusher(store KVStore, buffer batch.CachedBatch, opts ...KVStoreFlusherOption) (KVStoreFlusher, error) {
	if store == nil {
		return nil, errors.New("store cannot be nil")
	}
	if buffer == nil {
		return nil, errors.New("buffer cannot be nil")
	}
	f := &flusher{
		kvb: &kvStoreWithBuffer{
			store:  store,
			buffer: buffer,
		},
	}
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, errors.Wrap(err, "failed to apply option")
		}
	}

	return f, nil
}

// Flush commits the buffered writes to the base store in one transaction. The
// buffer is cleared on success and kept intact on failure
func (f *flusher) Flush() error {
	return f.kvb.store.WriteBatch(f.kvb.buffer)
}

// SerializeQueue serializes the buffered writes
func (f *flusher) SerializeQueue() []byte {
	return f.kvb.buffer.SerializeQueue(f.serializeFilter)
}

// KVStoreWithBuffer returns the buffered KVStore
func (f *flusher) KVStoreWithBuffer() KVStoreWithBuffer {
	return f.kvb
}

// BaseKVStore returns the base KVStore
func (f *flusher) BaseKVStore() KVStore {
	return f.kvb.store
}

func (kvb *kvStoreWithBuffer) Start(ctx context.Context) error {
	return kvb.store.Start(ctx)
}

func (kvb *kvStoreWithBuffer) Stop(ctx context.Context) error {
	return kvb.store.Stop(ctx)
}

func (kvb *kvStoreWithBuffer) Snapshot() int {
	return kvb.buffer.Snapshot()
}

func (kvb *kvStoreWithBuffer) RevertSnapshot(sid int) error {
	return kvb.buffer.Revert(sid)
}

func (kvb *kvStoreWithBuffer) ResetSnapshots() {
	kvb.buffer.ResetSnapshots()
}

func (kvb *kvStoreWithBuffer) SerializeQueue(filter batch.WriteInfoFilter) []byte {
	return kvb.buffer.SerializeQueue(filter)
}

func (kvb *kvStoreWithBuffer) Size() int {
	return kvb.buffer.Size()
}

func (kvb *kvStoreWithBuffer) Get(ns string, key []byte) ([]byte, error) {
	value, err := kvb.buffer.Get(ns, key)
	if errors.Cause(err) == batch.ErrNotExist {
		value, err = kvb.store.Get(ns, key)
	}
	if errors.Cause(err) == batch.ErrAlreadyDeleted {
		err = errors.Wrapf(ErrNotExist, "failed to get key %x in %s, deleted in buffer level", key, ns)
	}
	return value, err
}

func (kvb *kvStoreWithBuffer) Put(ns string, key, value []byte) error {
	kvb.buffer.Put(ns, key, value, fmt.Sprintf("failed to put %x in %s", key, ns))
	return nil
}

func (kvb *kvStoreWithBuffer) MustPut(ns string, key, value []byte) {
	kvb.buffer.Put(ns, key, value, fmt.Sprintf("failed to put %x in %s", key, ns))
}

func (kvb *kvStoreWithBuffer) Delete(ns string, key []byte) error {
	kvb.buffer.Delete(ns, key, fmt.Sprintf("failed to delete %x in %s", key, ns))
	return nil
}

func (kvb *kvStoreWithBuffer) MustDelete(ns string, key []byte) {
	kvb.buffer.Delete(ns, key, fmt.Sprintf("failed to delete %x in %s", key, ns))
}

func (kvb *kvStoreWithBuffer) WriteBatch(b batch.KVStoreBatch) error {
	b.Lock()
	defer b.ClearAndUnlock()
	writes := make([]*batch.WriteInfo, b.Size())
	for i := 0; i < b.Size(); i++ {
		write, err := b.Entry(i)
		if err != nil {
			return err
		}
		if write.WriteType() != batch.Put && write.WriteType() != batch.Delete {
			return errors.Errorf("invalid write type %d", write.WriteType())
		}
		writes[i] = write
	}
	for _, write := range writes {
		switch write.WriteType() {
		case batch.Put:
			kvb.buffer.Put(write.Namespace(), write.Key(), write.Value(), write.ErrorMessage())
		case batch.Delete:
			kvb.buffer.Delete(write.Namespace(), write.Key(), write.ErrorMessage())
		}
	}

	return nil
}

// Filter returns the filtered pairs with the buffered writes overlaid on top of
// the base store results
func (kvb *kvStoreWithBuffer) Filter(ns string, cond Condition, minKey, maxKey []byte) ([][]byte, [][]byte, error) {
	fk, fv, err := kvb.store.Filter(ns, cond, minKey, maxKey)
	if err != nil {
		if errors.Cause(err) != ErrBucketNotExist {
			return nil, nil, err
		}
		fk, fv = nil, nil
	}
	kvb.buffer.Lock()
	defer kvb.buffer.Unlock()
	checkMin := len(minKey) > 0
	checkMax := len(maxKey) > 0
	for i := 0; i < kvb.buffer.Size(); i++ {
		entry, e := kvb.buffer.Entry(i)
		if e != nil {
			return nil, nil, e
		}
		if entry.Namespace() != ns {
			continue
		}
		k, v := entry.Key(), entry.Value()
		if checkMin && bytes.Compare(k, minKey) < 0 {
			continue
		}
		if checkMax && bytes.Compare(k, maxKey) > 0 {
			continue
		}
		switch entry.WriteType() {
		case batch.Put:
			if !cond(k, v) {
				continue
			}
			updated := false
			for j := range fk {
				if bytes.Equal(fk[j], k) {
					fv[j] = v
					updated = true
					break
				}
			}
			if !updated {
				fk = append(fk, k)
				fv = append(fv, v)
			}
		case batch.Delete:
			for j := range fk {
				if bytes.Equal(fk[j], k) {
					fk = append(fk[:j], fk[j+1:]...)
					fv = append(fv[:j], fv[j+1:]...)
					break
				}
			}
		}
	}
	if len(fk) == 0 && err != nil {
		return nil, nil, err
	}

	return fk, fv, nil
}
