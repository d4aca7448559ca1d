// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package hub

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/routehubproject/routehub-core/pkg/util/byteutil"
	"github.com/routehubproject/routehub-core/request"
)

const (
	// RegistryNamespace is the store namespace of chain, authority, token,
	// counterpart and settlement-whitelist records
	RegistryNamespace = "Registry"
	// AccessNamespace is the store namespace of the admin role and the pause flag
	AccessNamespace = "Access"
)

var (
	_adminKey  = []byte("admin")
	_pausedKey = []byte("paused")

	_chainPrefix       = []byte("chain.")
	_authorityPrefix   = []byte("authority.")
	_tokenPrefix       = []byte("token.")
	_counterpartPrefix = []byte("counterpart.")
	_settlementPrefix  = []byte("settlement.")
)

type (
	// ChainRecord is the registry entry of a chain. Authority and BaseToken are
	// immutable after creation, SettlementLayer is flipped only by migration;
	// zero SettlementLayer means the chain still settles on this hub's domain
	ChainRecord struct {
		Authority       common.Address
		BaseToken       common.Address
		SettlementLayer request.ChainID
	}

	// AdminRole is the two-step global admin role
	AdminRole struct {
		Current common.Address
		Pending common.Address
	}

	// CounterpartRecord is the address of this hub's counterpart deployment on
	// another chain
	CounterpartRecord struct {
		Address common.Address
	}
)

// Serialize serializes the record into bytes
func (r *ChainRecord) Serialize() ([]byte, error) {
	return rlp.EncodeToBytes(r)
}

// Deserialize deserializes bytes into the record
func (r *ChainRecord) Deserialize(data []byte) error {
	return rlp.DecodeBytes(data, r)
}

// Resident reports whether the chain still settles on this hub's domain
func (r *ChainRecord) Resident() bool {
	return r.SettlementLayer == 0
}

// Serialize serializes the role into bytes
func (a *AdminRole) Serialize() ([]byte, error) {
	return rlp.EncodeToBytes(a)
}

// Deserialize deserializes bytes into the role
func (a *AdminRole) Deserialize(data []byte) error {
	return rlp.DecodeBytes(data, a)
}

// Serialize serializes the record into bytes
func (c *CounterpartRecord) Serialize() ([]byte, error) {
	return rlp.EncodeToBytes(c)
}

// Deserialize deserializes bytes into the record
func (c *CounterpartRecord) Deserialize(data []byte) error {
	return rlp.DecodeBytes(data, c)
}

// chain ids are keyed big-endian so a prefix scan walks them in order
func chainKey(id request.ChainID) []byte {
	return append(_chainPrefix, byteutil.Uint64ToBytesBigEndian(uint64(id))...)
}

func authorityKey(addr common.Address) []byte {
	return append(_authorityPrefix, addr.Bytes()...)
}

func tokenKey(addr common.Address) []byte {
	return append(_tokenPrefix, addr.Bytes()...)
}

func counterpartKey(id request.ChainID) []byte {
	return append(_counterpartPrefix, byteutil.Uint64ToBytesBigEndian(uint64(id))...)
}

func settlementKey(id request.ChainID) []byte {
	return append(_settlementPrefix, byteutil.Uint64ToBytesBigEndian(uint64(id))...)
}
