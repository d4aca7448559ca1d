// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package db

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/routehubproject/routehub-core/db/batch"
	"github.com/routehubproject/routehub-core/pkg/lifecycle"
)

var (
	// ErrBucketNotExist indicates certain bucket does not exist in db
	ErrBucketNotExist = errors.New("bucket not exist in DB")
	// ErrNotExist indicates certain item does not exist in db
	ErrNotExist = errors.New("not exist in DB")
	// ErrIO indicates the generic error of DB I/O operation
	ErrIO = errors.New("DB I/O operation error")
	// ErrDBNotStarted indicates the db has not started
	ErrDBNotStarted = errors.New("db has not started")
)

type (
	// Condition is the condition applied to a <k, v> pair during a Filter scan
	Condition func(k, v []byte) bool

	// KVStore is the interface of KV store.
	KVStore interface {
		lifecycle.StartStopper

		// Put insert or update a record identified by (namespace, key)
		Put(string, []byte, []byte) error
		// Get gets a record by (namespace, key)
		Get(string, []byte) ([]byte, error)
		// Delete deletes a record by (namespace, key)
		Delete(string, []byte) error
		// WriteBatch commits a batch atomically
		WriteBatch(batch.KVStoreBatch) error
		// Filter returns the pairs in a namespace that meet the condition, within the key range [minKey, maxKey]
		Filter(string, Condition, []byte, []byte) ([][]byte, [][]byte, error)
	}
)

const _keyDelimiter = "."

// memKVStore is the in-memory implementation of KVStore for testing purpose
type memKVStore struct {
	data   *sync.Map
	bucket *sync.Map
}

// NewMemKVStore instantiates an in-memory KV store
func NewMemKVStore() KVStore {
	return &memKVStore{
		bucket: &sync.Map{},
		data:   &sync.Map{},
	}
}

func (m *memKVStore) Start(_ context.Context) error { return nil }

func (m *memKVStore) Stop(_ context.Context) error { return nil }

// Put inserts a <key, value> record
func (m *memKVStore) Put(namespace string, key, value []byte) error {
	_, _ = m.bucket.LoadOrStore(namespace, struct{}{})
	m.data.Store(namespace+_keyDelimiter+string(key), value)
	return nil
}

// Get retrieves a record
func (m *memKVStore) Get(namespace string, key []byte) ([]byte, error) {
	if _, ok := m.bucket.Load(namespace); !ok {
		return nil, errors.Wrapf(ErrBucketNotExist, "namespace = %s doesn't exist", namespace)
	}
	value, _ := m.data.Load(namespace + _keyDelimiter + string(key))
	if value != nil {
		return value.([]byte), nil
	}
	return nil, errors.Wrapf(ErrNotExist, "key = %x doesn't exist", key)
}

// Delete deletes a record
func (m *memKVStore) Delete(namespace string, key []byte) error {
	m.data.Delete(namespace + _keyDelimiter + string(key))
	return nil
}

// WriteBatch commits a batch
func (m *memKVStore) WriteBatch(b batch.KVStoreBatch) (e error) {
	succeed := false
	b.Lock()
	defer func() {
		if succeed {
			// clear the batch if commit succeeds
			b.ClearAndUnlock()
		} else {
			b.Unlock()
		}
	}()
	for i := 0; i < b.Size(); i++ {
		write, err := b.Entry(i)
		if err != nil {
			return err
		}
		switch write.WriteType() {
		case batch.Put:
			if err := m.Put(write.Namespace(), write.Key(), write.Value()); err != nil {
				e = err
			}
		case batch.Delete:
			if err := m.Delete(write.Namespace(), write.Key()); err != nil {
				e = err
			}
		}
		if e != nil {
			break
		}
	}
	if e == nil {
		succeed = true
	}

	return e
}

// Filter returns the pairs in a namespace that meet the condition, in ascending key order
func (m *memKVStore) Filter(namespace string, c Condition, minKey, maxKey []byte) ([][]byte, [][]byte, error) {
	if _, ok := m.bucket.Load(namespace); !ok {
		return nil, nil, errors.Wrapf(ErrBucketNotExist, "namespace = %s doesn't exist", namespace)
	}
	var fk, fv [][]byte
	prefix := namespace + _keyDelimiter
	m.data.Range(func(key, value interface{}) bool {
		k, ok := key.(string)
		if !ok || !strings.HasPrefix(k, prefix) {
			return true
		}
		raw := []byte(k[len(prefix):])
		if len(minKey) > 0 && bytes.Compare(raw, minKey) < 0 {
			return true
		}
		if len(maxKey) > 0 && bytes.Compare(raw, maxKey) > 0 {
			return true
		}
		v := value.([]byte)
		if c(raw, v) {
			fk = append(fk, raw)
			fv = append(fv, v)
		}
		return true
	})
	// sync.Map ranges in no particular order
	sort.Sort(&kvPairs{keys: fk, values: fv})
	return fk, fv, nil
}

type kvPairs struct {
	keys   [][]byte
	values [][]byte
}

func (p *kvPairs) Len() int           { return len(p.keys) }
func (p *kvPairs) Less(i, j int) bool { return bytes.Compare(p.keys[i], p.keys[j]) < 0 }
func (p *kvPairs) Swap(i, j int) {
	p.keys[i], p.keys[j] = p.keys[j], p.keys[i]
	p.values[i], p.values[j] = p.values[j], p.values[i]
}
