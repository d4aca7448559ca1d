// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package simulation

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/routehubproject/routehub-core/hub"
	"github.com/routehubproject/routehub-core/request"
)

var (
	_ hub.SecondBridge = (*Bridge)(nil)
	_ hub.SecondBridge = (*RejectingBridge)(nil)
)

// Bridge simulates a protocol-conforming second bridge: its deposit hook echoes
// the magic sentinel and targets a fixed L2 counterpart, and confirmations are
// recorded against the deposit's data hash
type Bridge struct {
	addr          common.Address
	l2Counterpart common.Address
	mu            sync.Mutex
	confirmed     map[common.Hash]common.Hash
}

// NewBridge creates a bridge whose deposits target the L2 counterpart
func NewBridge(addr, l2Counterpart common.Address) *Bridge {
	return &Bridge{
		addr:          addr,
		l2Counterpart: l2Counterpart,
		confirmed:     make(map[common.Hash]common.Hash),
	}
}

// Address returns the bridge's account
func (b *Bridge) Address() common.Address { return b.addr }

// Deposit prepares the L2 payload for a two-bridge request
func (b *Bridge) Deposit(_ context.Context, _ request.ChainID, caller common.Address, _ *big.Int, calldata []byte, _ *big.Int) (*request.BridgeOutput, error) {
	return &request.BridgeOutput{
		Magic:      request.TwoBridgesMagic,
		L2Contract: b.l2Counterpart,
		L2Calldata: calldata,
		TxDataHash: txDataHash(caller, calldata),
	}, nil
}

// ConfirmTransaction records the canonical hash of the bridge's forwarded transaction
func (b *Bridge) ConfirmTransaction(_ context.Context, _ request.ChainID, dataHash, txHash common.Hash) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if prev, ok := b.confirmed[dataHash]; ok && prev != txHash {
		return errors.Errorf("deposit %s already confirmed under %s", dataHash, prev)
	}
	b.confirmed[dataHash] = txHash
	return nil
}

// Confirmed returns the confirmed transaction hash of the deposit, if any
func (b *Bridge) Confirmed(dataHash common.Hash) (common.Hash, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	txHash, ok := b.confirmed[dataHash]
	return txHash, ok
}

// TxDataHash returns the data hash the bridge assigns to a deposit
func (b *Bridge) TxDataHash(caller common.Address, calldata []byte) common.Hash {
	return txDataHash(caller, calldata)
}

func txDataHash(caller common.Address, calldata []byte) common.Hash {
	data := make([]byte, 0, common.AddressLength+len(calldata))
	data = append(data, caller.Bytes()...)
	data = append(data, calldata...)
	return crypto.Keccak256Hash(data)
}

// RejectingBridge simulates a bridge that does not implement the two-bridge
// protocol: its deposit hook returns a zero magic
type RejectingBridge struct {
	addr common.Address
}

// NewRejectingBridge creates a non-conforming bridge
func NewRejectingBridge(addr common.Address) *RejectingBridge {
	return &RejectingBridge{addr: addr}
}

// Deposit returns a payload without the magic sentinel
func (b *RejectingBridge) Deposit(_ context.Context, _ request.ChainID, caller common.Address, _ *big.Int, calldata []byte, _ *big.Int) (*request.BridgeOutput, error) {
	return &request.BridgeOutput{
		L2Contract: b.addr,
		L2Calldata: calldata,
		TxDataHash: txDataHash(caller, calldata),
	}, nil
}

// ConfirmTransaction never runs, the hub rejects the deposit before confirmation
func (b *RejectingBridge) ConfirmTransaction(_ context.Context, _ request.ChainID, _, _ common.Hash) error {
	return errors.New("unreachable")
}
