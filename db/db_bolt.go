// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package db

import (
	"bytes"
	"context"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"

	"github.com/routehubproject/routehub-core/db/batch"
	"github.com/routehubproject/routehub-core/pkg/lifecycle"
)

const _fileMode = 0600

// boltDB is KVStore implementation based on boltDB
type boltDB struct {
	lifecycle.Readiness
	db     *bolt.DB
	path   string
	config Config
}

// NewBoltDB instantiates an BoltDB with implements KVStore
func NewBoltDB(cfg Config) KVStore {
	return &boltDB{
		db:     nil,
		path:   cfg.DbPath,
		config: cfg,
	}
}

// Start opens the BoltDB (creates new file if not existing yet)
func (b *boltDB) Start(_ context.Context) error {
	db, err := bolt.Open(b.path, _fileMode, nil)
	if err != nil {
		return errors.Wrap(ErrIO, err.Error())
	}
	b.db = db
	return b.TurnOn()
}

// Stop closes the BoltDB
func (b *boltDB) Stop(_ context.Context) error {
	if err := b.TurnOff(); err != nil {
		return err
	}
	if err := b.db.Close(); err != nil {
		return errors.Wrap(ErrIO, err.Error())
	}
	return nil
}

// Put inserts a <key, value> record
func (b *boltDB) Put(namespace string, key, value []byte) (err error) {
	if !b.IsReady() {
		return ErrDBNotStarted
	}

	for c := uint8(0); c < b.config.NumRetries; c++ {
		if err = b.db.Update(func(tx *bolt.Tx) error {
			bucket, err := tx.CreateBucketIfNotExists([]byte(namespace))
			if err != nil {
				return err
			}
			return bucket.Put(key, value)
		}); err == nil {
			break
		}
	}

	if err != nil {
		err = errors.Wrap(ErrIO, err.Error())
	}
	return err
}

// Get retrieves a record
func (b *boltDB) Get(namespace string, key []byte) ([]byte, error) {
	if !b.IsReady() {
		return nil, ErrDBNotStarted
	}

	var value []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(namespace))
		if bucket == nil {
			return errors.Wrapf(ErrBucketNotExist, "bucket = %x doesn't exist", []byte(namespace))
		}
		v := bucket.Get(key)
		if v == nil {
			return errors.Wrapf(ErrNotExist, "key = %x doesn't exist", key)
		}
		value = make([]byte, len(v))
		copy(value, v)
		return nil
	})
	if err == nil {
		return value, nil
	}
	if errors.Cause(err) == ErrBucketNotExist || errors.Cause(err) == ErrNotExist {
		return nil, err
	}
	return nil, errors.Wrap(ErrIO, err.Error())
}

// Delete deletes a record, if the key does not exist it is a no-op
func (b *boltDB) Delete(namespace string, key []byte) (err error) {
	if !b.IsReady() {
		return ErrDBNotStarted
	}

	numRetries := b.config.NumRetries
	for c := uint8(0); c < numRetries; c++ {
		if err = b.db.Update(func(tx *bolt.Tx) error {
			bucket := tx.Bucket([]byte(namespace))
			if bucket == nil {
				return nil
			}
			return bucket.Delete(key)
		}); err == nil {
			break
		}
	}

	if err != nil {
		err = errors.Wrap(ErrIO, err.Error())
	}
	return err
}

// WriteBatch commits a batch to the underlying boltDB in one transaction
func (b *boltDB) WriteBatch(kvsb batch.KVStoreBatch) (err error) {
	if !b.IsReady() {
		return ErrDBNotStarted
	}

	succeed := true
	kvsb.Lock()
	defer func() {
		if succeed {
			// clear the batch if commit succeeds
			kvsb.ClearAndUnlock()
		} else {
			kvsb.Unlock()
		}
	}()

	for c := uint8(0); c < b.config.NumRetries; c++ {
		if err = b.db.Update(func(tx *bolt.Tx) error {
			for i := 0; i < kvsb.Size(); i++ {
				write, e := kvsb.Entry(i)
				if e != nil {
					return e
				}
				switch write.WriteType() {
				case batch.Put:
					bucket, e := tx.CreateBucketIfNotExists([]byte(write.Namespace()))
					if e != nil {
						return errors.Wrap(e, write.ErrorMessage())
					}
					if e := bucket.Put(write.Key(), write.Value()); e != nil {
						return errors.Wrap(e, write.ErrorMessage())
					}
				case batch.Delete:
					bucket := tx.Bucket([]byte(write.Namespace()))
					if bucket == nil {
						continue
					}
					if e := bucket.Delete(write.Key()); e != nil {
						return errors.Wrap(e, write.ErrorMessage())
					}
				}
			}
			return nil
		}); err == nil {
			break
		}
	}

	if err != nil {
		succeed = false
		err = errors.Wrap(ErrIO, err.Error())
	}
	return err
}

// Filter returns the pairs in a namespace that meet the condition, within the key range [minKey, maxKey]
func (b *boltDB) Filter(namespace string, cond Condition, minKey, maxKey []byte) ([][]byte, [][]byte, error) {
	if !b.IsReady() {
		return nil, nil, ErrDBNotStarted
	}

	var fk, fv [][]byte
	if err := b.db.View(func(tx *bolt.Tx) error {
		buck := tx.Bucket([]byte(namespace))
		if buck == nil {
			return errors.Wrapf(ErrBucketNotExist, "bucket = %x doesn't exist", []byte(namespace))
		}
		c := buck.Cursor()
		k, v := c.First()
		if len(minKey) > 0 {
			k, v = c.Seek(minKey)
		}
		if k == nil {
			return nil
		}
		checkMax := len(maxKey) > 0
		for ; k != nil; k, v = c.Next() {
			if checkMax && bytes.Compare(k, maxKey) == 1 {
				return nil
			}
			if cond(k, v) {
				key := make([]byte, len(k))
				copy(key, k)
				value := make([]byte, len(v))
				copy(value, v)
				fk = append(fk, key)
				fv = append(fv, value)
			}
		}
		return nil
	}); err != nil {
		return nil, nil, err
	}
	return fk, fv, nil
}

//======================================
// private functions
//======================================

// intentionally fail to test that the db can successfully rollback
func (b *boltDB) batchPutForceFail(namespace string, key [][]byte, value [][]byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(namespace))
		if err != nil {
			return err
		}
		if len(key) != len(value) {
			return errors.Wrap(ErrIO, "batch put <k, v> size not match")
		}
		for i := 0; i < len(key); i++ {
			if err := bucket.Put(key[i], value[i]); err != nil {
				return err
			}
		}
		// intentionally fail to test that the tx can successfully rollback
		return errors.Errorf("force fail to test tx rollback")
	})
}
