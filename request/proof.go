// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package request

import "github.com/ethereum/go-ethereum/common"

type (
	// Message is a message sent out of an execution domain whose inclusion in a
	// sealed batch can be proven
	Message struct {
		TxNumberInBatch uint16
		Sender          common.Address
		Data            []byte
	}

	// Log is an event log emitted on an execution domain whose inclusion in a
	// sealed batch can be proven
	Log struct {
		ShardID         uint8
		IsService       bool
		TxNumberInBatch uint16
		Sender          common.Address
		Key             common.Hash
		Value           common.Hash
	}
)

// TxStatus is the terminal status of a forwarded transaction
type TxStatus uint8

const (
	// TxFailure marks a forwarded transaction that executed and failed
	TxFailure TxStatus = iota
	// TxSuccess marks a forwarded transaction that executed successfully
	TxSuccess
)
