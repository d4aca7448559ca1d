// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package hub

import "github.com/pkg/errors"

var (
	// ErrInvalidChainID indicates the chain id is zero or exceeds the 48-bit bound
	ErrInvalidChainID = errors.New("invalid chain id")
	// ErrZeroAddress indicates a required address argument is zero
	ErrZeroAddress = errors.New("zero address")
	// ErrReservedAddress indicates the address falls in the reserved low range
	ErrReservedAddress = errors.New("address is in the reserved range")
	// ErrAlreadyRegistered indicates the entry is already in the registry
	ErrAlreadyRegistered = errors.New("already registered")
	// ErrNotRegistered indicates the entry is not in the registry
	ErrNotRegistered = errors.New("not registered")
	// ErrChainExists indicates a record for the chain id already exists
	ErrChainExists = errors.New("chain already exists")
	// ErrUnknownAuthority indicates the authority is not in the authority registry
	ErrUnknownAuthority = errors.New("authority not registered")
	// ErrUnknownToken indicates the base token is not in the token registry
	ErrUnknownToken = errors.New("base token not registered")
	// ErrUnregisteredChain indicates no record exists for the chain id
	ErrUnregisteredChain = errors.New("chain not registered")
	// ErrUnauthorized indicates the caller lacks the required role
	ErrUnauthorized = errors.New("caller is not authorized")
	// ErrNotChainAdmin indicates the caller is not the chain's admin
	ErrNotChainAdmin = errors.New("caller is not the chain admin")
	// ErrValueMismatch indicates the attached value does not match the accounting formula
	ErrValueMismatch = errors.New("attached value mismatch")
	// ErrProtocolMismatch indicates a callee's response failed the magic sentinel check
	ErrProtocolMismatch = errors.New("second bridge protocol mismatch")
	// ErrRoutingNotConfigured indicates a required collaborator is unset
	ErrRoutingNotConfigured = errors.New("routing collaborator not configured")
	// ErrAlreadyMigrated indicates the chain's settlement layer has already moved
	ErrAlreadyMigrated = errors.New("chain already migrated")
	// ErrNotWhitelisted indicates the target settlement chain is not whitelisted
	ErrNotWhitelisted = errors.New("settlement layer not whitelisted")
	// ErrPaused indicates the circuit breaker is engaged
	ErrPaused = errors.New("hub is paused")
	// ErrReentrantCall indicates nested entry into a guarded operation
	ErrReentrantCall = errors.New("reentrant call")
	// ErrSettlementMode indicates the operation is unavailable in settlement-layer mode
	ErrSettlementMode = errors.New("hub is in settlement-layer mode")
	// ErrNotSettlementMode indicates the operation requires settlement-layer mode
	ErrNotSettlementMode = errors.New("hub is not in settlement-layer mode")
)
