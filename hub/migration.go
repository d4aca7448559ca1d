// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package hub

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/routehubproject/routehub-core/pkg/log"
	"github.com/routehubproject/routehub-core/request"
	"github.com/routehubproject/routehub-core/state"
)

// calldata of the request forwarded to the counterpart hub:
// finalizeMigration(uint256 chainId, address admin, bytes diamondCut, bytes mintData)
var (
	_finalizeMigrationSelector = crypto.Keccak256([]byte("finalizeMigration(uint256,address,bytes,bytes)"))[:4]
	_uint256Type, _            = abi.NewType("uint256", "", nil)
	_addressType, _            = abi.NewType("address", "", nil)
	_bytesType, _              = abi.NewType("bytes", "", nil)
	_finalizeMigrationArgs     = abi.Arguments{
		{Type: _uint256Type},
		{Type: _addressType},
		{Type: _bytesType},
		{Type: _bytesType},
	}
)

// StartMigration hands a resident chain over to the whitelisted settlement
// layer named by req.ChainID. The caller must be the admin of the migrating
// chain's execution domain. Custody of mintValue follows the direct-request
// accounting of the migrating chain's base token, the chain record flips to
// the target layer, and a direct request carrying the finalize-migration call
// is forwarded to the counterpart hub on the target chain. The migration
// payload exported by the execution domain is returned to the caller.
func (h *Hub) StartMigration(
	ctx context.Context,
	req *request.Direct,
	migratingChainID request.ChainID,
	newAdmin common.Address,
	cutData []byte,
) (mintData []byte, err error) {
	defer func() { h.count("startMigration", err) }()
	if err = h.acquireGuard(); err != nil {
		return nil, err
	}
	defer h.releaseGuard()
	h.mutex.Lock()
	defer h.mutex.Unlock()
	call := MustGetCallCtx(ctx)
	ws, err := h.workingStore()
	if err != nil {
		return nil, err
	}
	if err = h.checkNotPaused(ws); err != nil {
		return nil, err
	}
	if h.SettlementMode() {
		return nil, errors.Wrap(ErrSettlementMode, "migration can only start from the routing layer")
	}
	rec, err := h.chainRecord(ws, migratingChainID)
	if err != nil {
		return nil, err
	}
	dom, err := h.resolveDomain(ws, migratingChainID)
	if err != nil {
		return nil, err
	}
	admin, err := dom.Admin()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read the execution domain's admin")
	}
	if call.Caller != admin {
		return nil, errors.Wrapf(ErrNotChainAdmin, "caller = %s, admin = %s", call.Caller, admin)
	}
	target := req.ChainID
	whitelisted, err := h.isSettlementLayer(ws, target)
	if err != nil {
		return nil, err
	}
	if !whitelisted {
		return nil, errors.Wrapf(ErrNotWhitelisted, "chain id = %d", target)
	}
	if !rec.Resident() {
		return nil, errors.Wrapf(ErrAlreadyMigrated, "chain %d settles on chain %d", migratingChainID, rec.SettlementLayer)
	}
	if newAdmin == (common.Address{}) {
		return nil, errors.Wrap(ErrZeroAddress, "new chain admin")
	}
	if h.custodian == nil {
		return nil, errors.Wrap(ErrRoutingNotConfigured, "base token custodian is unset")
	}
	counterpart, err := h.counterpartRecord(ws, target)
	if err != nil {
		return nil, err
	}
	// custody per the direct-request accounting of the migrating chain's base
	// token; for an ERC-20 the hub pulls the funds from the caller and
	// pre-approves the custodian before the custody call
	attached := call.AttachedValue()
	mintValue := bigOrZero(req.MintValue)
	depositor, custodyValue := call.Caller, big.NewInt(0)
	if rec.BaseToken == request.NativeTokenAddress {
		if attached.Cmp(mintValue) != 0 {
			return nil, errors.Wrapf(ErrValueMismatch, "attached = %v, mintValue = %v", attached, mintValue)
		}
		custodyValue = mintValue
	} else {
		if attached.Sign() != 0 {
			return nil, errors.Wrapf(ErrValueMismatch, "attached = %v with ERC-20 base token", attached)
		}
		token, err := h.directory.ERC20(rec.BaseToken)
		if err != nil {
			return nil, err
		}
		if err = token.TransferFrom(ctx, call.Caller, h.addr, mintValue); err != nil {
			return nil, errors.Wrap(err, "failed to pull the base token from the caller")
		}
		if err = token.Approve(ctx, h.custodian.Address(), mintValue); err != nil {
			return nil, errors.Wrap(err, "failed to pre-approve the custodian")
		}
		depositor = h.addr
	}
	if err = h.custodian.DepositBaseToken(ctx, target, depositor, rec.BaseToken, mintValue, custodyValue); err != nil {
		return nil, errors.Wrap(err, "failed to take base token into custody")
	}
	rec.SettlementLayer = target
	if err = ws.PutState(RegistryNamespace, chainKey(migratingChainID), rec); err != nil {
		return nil, err
	}
	if mintData, err = dom.ExportMigration(ctx, migratingChainID); err != nil {
		return nil, errors.Wrap(err, "failed to export the migration payload")
	}
	calldata, err := finalizeMigrationCalldata(migratingChainID, newAdmin, cutData, mintData)
	if err != nil {
		return nil, err
	}
	txHash, err := h.forward(ctx, ws, &request.L2Transaction{
		ChainID:              target,
		Sender:               call.Caller,
		Contract:             counterpart.Address,
		MintValue:            mintValue,
		L2Value:              bigOrZero(req.L2Value),
		L2Calldata:           calldata,
		L2GasLimit:           req.L2GasLimit,
		L2GasPerPubdataLimit: req.L2GasPerPubdataLimit,
		FactoryDeps:          req.FactoryDeps,
		RefundRecipient:      h.refundRecipient(req.RefundRecipient, call.Caller),
	})
	if err != nil {
		return nil, err
	}
	if err = ws.Commit(); err != nil {
		return nil, err
	}
	log.L().Info("Started a chain migration.",
		zap.Uint64("chainID", uint64(migratingChainID)),
		zap.Uint64("settlementLayer", uint64(target)),
		zap.String("txHash", txHash.Hex()))
	h.emit(EventMigrationStarted, migratingChainID, call.Caller, txHash)
	return mintData, nil
}

// ForwardTransaction relays a pre-built request to the execution domain of the
// given chain. Only available while the hub operates as a settlement layer;
// the caller is trusted to have arranged funding already, so no custody runs.
func (h *Hub) ForwardTransaction(ctx context.Context, chainID request.ChainID, tx *request.L2Transaction) (txHash common.Hash, err error) {
	defer func() { h.count("forwardTransaction", err) }()
	if !h.SettlementMode() {
		return common.Hash{}, errors.Wrap(ErrNotSettlementMode, "hub is not operating as a settlement layer")
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	ws, err := h.workingStore()
	if err != nil {
		return common.Hash{}, err
	}
	dom, err := h.resolveDomain(ws, chainID)
	if err != nil {
		return common.Hash{}, err
	}
	if txHash, err = dom.RequestTransaction(ctx, tx); err != nil {
		return common.Hash{}, errors.Wrap(err, "failed to forward the transaction")
	}
	log.L().Debug("Relayed a transaction on the settlement layer.",
		zap.Uint64("chainID", uint64(chainID)),
		zap.String("txHash", txHash.Hex()))
	return txHash, nil
}

// RegisterSettlementLayer records whether the chain accepts settling other
// chains. Only the chain's own authority may declare this.
func (h *Hub) RegisterSettlementLayer(ctx context.Context, chainID request.ChainID, whitelisted bool) (err error) {
	defer func() { h.count("registerSettlementLayer", err) }()
	call := MustGetCallCtx(ctx)
	h.mutex.Lock()
	defer h.mutex.Unlock()
	ws, err := h.workingStore()
	if err != nil {
		return err
	}
	rec, err := h.chainRecord(ws, chainID)
	if err != nil {
		return err
	}
	if call.Caller != rec.Authority {
		return errors.Wrapf(ErrUnauthorized, "caller = %s is not the authority of chain %d", call.Caller, chainID)
	}
	if err = ws.PutState(RegistryNamespace, settlementKey(chainID), whitelisted); err != nil {
		return err
	}
	if err = ws.Commit(); err != nil {
		return err
	}
	log.L().Info("Updated the settlement whitelist.",
		zap.Uint64("chainID", uint64(chainID)),
		zap.Bool("whitelisted", whitelisted))
	h.emit(EventSettlementLayerRegistered, chainID, call.Caller, common.Hash{})
	return nil
}

// RegisterCounterpart records the address of this hub's own deployment on
// another chain. Owner-only.
func (h *Hub) RegisterCounterpart(ctx context.Context, chainID request.ChainID, counterpart common.Address) (err error) {
	defer func() { h.count("registerCounterpart", err) }()
	call := MustGetCallCtx(ctx)
	if err = h.checkOwner(call.Caller); err != nil {
		return err
	}
	if !chainID.Valid() {
		return errors.Wrapf(ErrInvalidChainID, "chain id = %d", chainID)
	}
	if counterpart == (common.Address{}) {
		return errors.Wrap(ErrZeroAddress, "counterpart hub")
	}
	h.mutex.Lock()
	defer h.mutex.Unlock()
	ws, err := h.workingStore()
	if err != nil {
		return err
	}
	if err = ws.PutState(RegistryNamespace, counterpartKey(chainID), &CounterpartRecord{Address: counterpart}); err != nil {
		return err
	}
	if err = ws.Commit(); err != nil {
		return err
	}
	h.emit(EventCounterpartRegistered, chainID, counterpart, common.Hash{})
	return nil
}

func (h *Hub) isSettlementLayer(ws *state.WorkingStore, id request.ChainID) (bool, error) {
	var whitelisted bool
	if err := ws.State(RegistryNamespace, settlementKey(id), &whitelisted); err != nil {
		if errors.Cause(err) == state.ErrStateNotExist {
			return false, nil
		}
		return false, err
	}
	return whitelisted, nil
}

func (h *Hub) counterpartRecord(ws *state.WorkingStore, id request.ChainID) (*CounterpartRecord, error) {
	var rec CounterpartRecord
	if err := ws.State(RegistryNamespace, counterpartKey(id), &rec); err != nil {
		if errors.Cause(err) == state.ErrStateNotExist {
			return nil, errors.Wrapf(ErrRoutingNotConfigured, "no counterpart hub on chain %d", id)
		}
		return nil, err
	}
	return &rec, nil
}

func finalizeMigrationCalldata(chainID request.ChainID, admin common.Address, cutData, mintData []byte) ([]byte, error) {
	enc, err := _finalizeMigrationArgs.Pack(new(big.Int).SetUint64(uint64(chainID)), admin, cutData, mintData)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode the finalize-migration call")
	}
	return append(append(make([]byte, 0, len(_finalizeMigrationSelector)+len(enc)), _finalizeMigrationSelector...), enc...), nil
}
