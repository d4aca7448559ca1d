// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package hub

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/routehubproject/routehub-core/request"
)

// The mailbox surface resolves the chain's execution domain and delegates the
// call verbatim. These forwards stay available while the hub is paused.

// ProveMessageInclusion checks that a message emitted on the chain is included
// in the given batch
func (h *Hub) ProveMessageInclusion(chainID request.ChainID, batchNumber, index uint64, msg request.Message, proof []common.Hash) (bool, error) {
	dom, err := h.domain(chainID)
	if err != nil {
		return false, err
	}
	return dom.ProveMessageInclusion(batchNumber, index, msg, proof)
}

// ProveLogInclusion checks that a system log emitted on the chain is included
// in the given batch
func (h *Hub) ProveLogInclusion(chainID request.ChainID, batchNumber, index uint64, l request.Log, proof []common.Hash) (bool, error) {
	dom, err := h.domain(chainID)
	if err != nil {
		return false, err
	}
	return dom.ProveLogInclusion(batchNumber, index, l, proof)
}

// ProveTransactionStatus checks the settlement status of a forwarded
// transaction on the chain
func (h *Hub) ProveTransactionStatus(
	chainID request.ChainID,
	txHash common.Hash,
	batchNumber, index uint64,
	txNumberInBatch uint16,
	proof []common.Hash,
	status request.TxStatus,
) (bool, error) {
	dom, err := h.domain(chainID)
	if err != nil {
		return false, err
	}
	return dom.ProveTransactionStatus(txHash, batchNumber, index, txNumberInBatch, proof, status)
}

// EstimateBaseCost asks the chain's execution domain for the base cost of a
// request with the given gas parameters
func (h *Hub) EstimateBaseCost(chainID request.ChainID, gasPrice *big.Int, l2GasLimit, l2GasPerPubdataLimit uint64) (*big.Int, error) {
	dom, err := h.domain(chainID)
	if err != nil {
		return nil, err
	}
	return dom.EstimateBaseCost(gasPrice, l2GasLimit, l2GasPerPubdataLimit)
}

func (h *Hub) domain(chainID request.ChainID) (ExecutionDomain, error) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	ws, err := h.workingStore()
	if err != nil {
		return nil, err
	}
	return h.resolveDomain(ws, chainID)
}
