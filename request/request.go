// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Package request defines the cross-domain request shapes routed by the hub
// and the protocol constants governing them.
package request

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
)

// ChainID identifies an execution domain. Valid ids are non-zero and fit in 48 bits
type ChainID uint64

// MaxChainID is the upper bound of a valid chain id
const MaxChainID = ChainID(1<<48 - 1)

// Valid reports whether the id is non-zero and within the 48-bit bound
func (id ChainID) Valid() bool {
	return id != 0 && id <= MaxChainID
}

type (
	// Direct is the direct deposit-and-forward request: the caller supplies the
	// full L2 payload and the hub performs custody and forwarding
	Direct struct {
		ChainID              ChainID
		MintValue            *big.Int
		L2Contract           common.Address
		L2Value              *big.Int
		L2Calldata           []byte
		L2GasLimit           uint64
		L2GasPerPubdataLimit uint64
		FactoryDeps          [][]byte
		RefundRecipient      common.Address
	}

	// TwoBridges is the two-bridge deposit-and-forward request: a second bridge
	// contract prepares the L2 payload while the hub performs custody and forwarding
	TwoBridges struct {
		ChainID              ChainID
		MintValue            *big.Int
		L2Value              *big.Int
		L2GasLimit           uint64
		L2GasPerPubdataLimit uint64
		RefundRecipient      common.Address
		SecondBridgeAddress  common.Address
		SecondBridgeValue    *big.Int
		SecondBridgeCalldata []byte
	}

	// BridgeOutput is what a second bridge's deposit hook returns: the L2 payload
	// it prepared, plus the magic sentinel proving it implements the protocol
	BridgeOutput struct {
		Magic       common.Hash
		L2Contract  common.Address
		L2Calldata  []byte
		FactoryDeps [][]byte
		TxDataHash  common.Hash
	}

	// L2Transaction is the assembled cross-domain transaction handed to an
	// execution domain. Sender is the logical sender the domain will observe,
	// which for a two-bridge request is the second bridge, not the original caller
	L2Transaction struct {
		ChainID              ChainID
		Sender               common.Address
		Contract             common.Address
		MintValue            *big.Int
		L2Value              *big.Int
		L2Calldata           []byte
		L2GasLimit           uint64
		L2GasPerPubdataLimit uint64
		FactoryDeps          [][]byte
		RefundRecipient      common.Address
	}
)

// Hash returns the canonical hash identifying the cross-domain transaction
func (tx *L2Transaction) Hash() (common.Hash, error) {
	data, err := rlp.EncodeToBytes(tx)
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash(data), nil
}
