// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package request

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	// NativeTokenAddress is the sentinel base-token address denoting the native currency
	NativeTokenAddress = common.HexToAddress("0x0000000000000000000000000000000000000001")

	// MinSecondBridgeAddress is the reserved low-address threshold. A second
	// bridge must live strictly above it so requests cannot be routed into precompiles
	MinSecondBridgeAddress = common.HexToAddress("0x000000000000000000000000000000000000FFFF")

	// TwoBridgesMagic is the sentinel a second bridge's deposit hook must echo
	// to prove it implements the two-bridge protocol. The value is derived from
	// the protocol tag so no deployed code can collide with it by accident
	TwoBridgesMagic = computeMagic("TWO_BRIDGES_MAGIC_VALUE")

	// AliasOffset shifts a contract caller's address into the derived address
	// that cross-domain transactions originate from
	AliasOffset = common.HexToAddress("0x1111000000000000000000000000000000001111")
)

func computeMagic(tag string) common.Hash {
	v := new(big.Int).SetBytes(crypto.Keccak256([]byte(tag)))
	v.Sub(v, big.NewInt(1))
	return common.BigToHash(v)
}

// ApplyAlias returns the cross-domain alias of the given address
func ApplyAlias(addr common.Address) common.Address {
	sum := new(big.Int).Add(new(big.Int).SetBytes(addr.Bytes()), new(big.Int).SetBytes(AliasOffset.Bytes()))
	return common.BigToAddress(sum)
}
