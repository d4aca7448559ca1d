// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package hub

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/routehubproject/routehub-core/request"
)

type (
	// Authority is the capability set of a chain's state-transition manager. It
	// owns the chain's lifecycle and resolves the chain's execution-domain address
	Authority interface {
		// CreateChain delegates construction of a new chain to the authority
		CreateChain(ctx context.Context, chainID request.ChainID, baseToken, custodian, admin common.Address, initData []byte) error
		// ExecutionDomain resolves the chain's execution-domain address
		ExecutionDomain(chainID request.ChainID) (common.Address, error)
	}

	// ExecutionDomain is the capability set of a chain's execution contract, the
	// target of forwarded cross-domain transactions and proof queries
	ExecutionDomain interface {
		// RequestTransaction forwards the assembled transaction and returns its canonical hash
		RequestTransaction(ctx context.Context, tx *request.L2Transaction) (common.Hash, error)
		// ProveMessageInclusion verifies a message was included in a sealed batch
		ProveMessageInclusion(batchNumber, index uint64, msg request.Message, proof []common.Hash) (bool, error)
		// ProveLogInclusion verifies a log was included in a sealed batch
		ProveLogInclusion(batchNumber, index uint64, l request.Log, proof []common.Hash) (bool, error)
		// ProveTransactionStatus verifies the terminal status of a forwarded transaction
		ProveTransactionStatus(txHash common.Hash, batchNumber, index uint64, txNumberInBatch uint16, proof []common.Hash, status request.TxStatus) (bool, error)
		// EstimateBaseCost computes the base cost of a forwarded transaction
		EstimateBaseCost(gasPrice *big.Int, l2GasLimit, l2GasPerPubdataLimit uint64) (*big.Int, error)
		// Admin returns the domain's admin account
		Admin() (common.Address, error)
		// ExportMigration snapshots the domain's state for settlement-layer migration
		ExportMigration(ctx context.Context, chainID request.ChainID) ([]byte, error)
	}

	// SecondBridge is the capability set of an auxiliary bridge participating in
	// a two-bridge deposit
	SecondBridge interface {
		// Deposit runs the bridge's deposit hook and returns the L2 payload it prepared
		Deposit(ctx context.Context, chainID request.ChainID, caller common.Address, l2Value *big.Int, calldata []byte, value *big.Int) (*request.BridgeOutput, error)
		// ConfirmTransaction hands the bridge the canonical hash of its forwarded transaction
		ConfirmTransaction(ctx context.Context, chainID request.ChainID, txDataHash, txHash common.Hash) error
	}

	// BaseTokenCustodian takes custody of deposited base-token value. The value
	// argument is the native currency forwarded along the call
	BaseTokenCustodian interface {
		// Address is the custodian's account, handed to authorities and approvals
		Address() common.Address
		// DepositBaseToken takes custody of amount of the chain's base token from depositor
		DepositBaseToken(ctx context.Context, chainID request.ChainID, depositor, baseToken common.Address, amount, value *big.Int) error
	}

	// ERC20 is the minimal token capability used by migration custody
	ERC20 interface {
		TransferFrom(ctx context.Context, from, to common.Address, amount *big.Int) error
		Approve(ctx context.Context, spender common.Address, amount *big.Int) error
	}

	// Directory resolves addresses to collaborator capabilities. Implementations
	// are supplied by the surrounding system, the hub never constructs collaborators
	Directory interface {
		// Authority resolves an authority address to its capability
		Authority(addr common.Address) (Authority, error)
		// ExecutionDomain resolves an execution-domain address to its capability
		ExecutionDomain(addr common.Address) (ExecutionDomain, error)
		// SecondBridge resolves a second-bridge address to its capability
		SecondBridge(addr common.Address) (SecondBridge, error)
		// ERC20 resolves a token address to its capability
		ERC20(addr common.Address) (ERC20, error)
		// IsContract reports whether the address hosts code rather than an externally-owned account
		IsContract(addr common.Address) bool
	}
)
