// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package batch

type (
	// KVStoreCache buffers the pending writes of a batch for fast lookup
	KVStoreCache interface {
		// Read returns the pending value of a key
		Read(*kvCacheKey) ([]byte, error)
		// Write stages a value for a key
		Write(*kvCacheKey, []byte)
		// Evict stages a delete for a key
		Evict(*kvCacheKey)
		// Clear drops all entries
		Clear()
		// Append merges the given caches into this one
		Append(...KVStoreCache) error
	}

	// kvCacheKey identifies an entry by namespace and key
	kvCacheKey struct {
		ns  string
		key string
	}

	cacheEntry struct {
		value   []byte
		deleted bool
	}

	// kvCache keeps entries in a single flat map, a deleted entry is a tombstone
	kvCache struct {
		entries map[kvCacheKey]*cacheEntry
	}
)

// NewKVCache returns an empty write cache
func NewKVCache() KVStoreCache {
	return &kvCache{entries: make(map[kvCacheKey]*cacheEntry)}
}

// Read returns the pending value of the key, ErrAlreadyDeleted when a delete is
// staged for it and ErrNotExist when the cache holds nothing for it
func (c *kvCache) Read(k *kvCacheKey) ([]byte, error) {
	e, ok := c.entries[*k]
	switch {
	case !ok:
		return nil, ErrNotExist
	case e.deleted:
		return nil, ErrAlreadyDeleted
	default:
		return e.value, nil
	}
}

// Write stages a value for the key
func (c *kvCache) Write(k *kvCacheKey, v []byte) {
	c.entries[*k] = &cacheEntry{value: v}
}

// Evict stages a delete for the key
func (c *kvCache) Evict(k *kvCacheKey) {
	c.entries[*k] = &cacheEntry{deleted: true}
}

// Clear drops all entries
func (c *kvCache) Clear() {
	c.entries = make(map[kvCacheKey]*cacheEntry)
}

// Append merges the given caches into this one, entries of a later cache
// overwrite those of an earlier one
func (c *kvCache) Append(caches ...KVStoreCache) error {
	for _, one := range caches {
		kc, ok := one.(*kvCache)
		if !ok {
			return ErrUnexpectedType
		}
		for k, e := range kc.entries {
			c.entries[k] = e
		}
	}
	return nil
}
