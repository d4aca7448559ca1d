// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package hub

import (
	"bytes"
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/routehubproject/routehub-core/pkg/log"
	"github.com/routehubproject/routehub-core/request"
	"github.com/routehubproject/routehub-core/state"
)

func bigOrZero(v *big.Int) *big.Int {
	if v == nil {
		return big.NewInt(0)
	}
	return v
}

// RequestDirect moves mintValue of the chain's base token into custody and
// forwards the caller-supplied payload to the chain's execution domain,
// returning the canonical transaction hash. Custody, forwarding and every
// check happen in one all-or-nothing unit
func (h *Hub) RequestDirect(ctx context.Context, req *request.Direct) (txHash common.Hash, err error) {
	defer func() { h.count("requestDirect", err) }()
	if err = h.acquireGuard(); err != nil {
		return common.Hash{}, err
	}
	defer h.releaseGuard()
	h.mutex.Lock()
	defer h.mutex.Unlock()
	call := MustGetCallCtx(ctx)
	ws, err := h.workingStore()
	if err != nil {
		return common.Hash{}, err
	}
	if err = h.checkNotPaused(ws); err != nil {
		return common.Hash{}, err
	}
	rec, err := h.chainRecord(ws, req.ChainID)
	if err != nil {
		return common.Hash{}, err
	}
	if h.custodian == nil {
		return common.Hash{}, errors.Wrap(ErrRoutingNotConfigured, "base token custodian is unset")
	}
	// native base token: the attached value must cover mintValue exactly;
	// ERC-20 base token: custody runs on allowance, so no value may be attached
	attached := call.AttachedValue()
	mintValue := bigOrZero(req.MintValue)
	if rec.BaseToken == request.NativeTokenAddress {
		if attached.Cmp(mintValue) != 0 {
			return common.Hash{}, errors.Wrapf(ErrValueMismatch, "attached = %v, mintValue = %v", attached, mintValue)
		}
	} else if attached.Sign() != 0 {
		return common.Hash{}, errors.Wrapf(ErrValueMismatch, "attached = %v with ERC-20 base token", attached)
	}
	if err = h.custodian.DepositBaseToken(ctx, req.ChainID, call.Caller, rec.BaseToken, mintValue, attached); err != nil {
		return common.Hash{}, errors.Wrap(err, "failed to take base token into custody")
	}
	tx := &request.L2Transaction{
		ChainID:              req.ChainID,
		Sender:               call.Caller,
		Contract:             req.L2Contract,
		MintValue:            mintValue,
		L2Value:              req.L2Value,
		L2Calldata:           req.L2Calldata,
		L2GasLimit:           req.L2GasLimit,
		L2GasPerPubdataLimit: req.L2GasPerPubdataLimit,
		FactoryDeps:          req.FactoryDeps,
		RefundRecipient:      h.refundRecipient(req.RefundRecipient, call.Caller),
	}
	txHash, err = h.forward(ctx, ws, tx)
	if err != nil {
		return common.Hash{}, err
	}
	h.emit(EventDepositForwarded, req.ChainID, call.Caller, txHash)
	return txHash, nil
}

// RequestTwoBridges runs the two-bridge deposit protocol: the hub takes base
// token custody, the second bridge's deposit hook prepares the L2 payload, the
// hub forwards it with the second bridge as the logical sender, and the bridge
// is called back with the canonical hash. The hook must echo the magic
// sentinel, and custody, hook, forward and confirmation all happen in order in
// one all-or-nothing unit
func (h *Hub) RequestTwoBridges(ctx context.Context, req *request.TwoBridges) (txHash common.Hash, err error) {
	defer func() { h.count("requestTwoBridges", err) }()
	if err = h.acquireGuard(); err != nil {
		return common.Hash{}, err
	}
	defer h.releaseGuard()
	h.mutex.Lock()
	defer h.mutex.Unlock()
	call := MustGetCallCtx(ctx)
	ws, err := h.workingStore()
	if err != nil {
		return common.Hash{}, err
	}
	if err = h.checkNotPaused(ws); err != nil {
		return common.Hash{}, err
	}
	rec, err := h.chainRecord(ws, req.ChainID)
	if err != nil {
		return common.Hash{}, err
	}
	if h.custodian == nil {
		return common.Hash{}, errors.Wrap(ErrRoutingNotConfigured, "base token custodian is unset")
	}
	// the reserved low range hosts precompiles, a second bridge cannot live there
	if bytes.Compare(req.SecondBridgeAddress.Bytes(), request.MinSecondBridgeAddress.Bytes()) <= 0 {
		return common.Hash{}, errors.Wrapf(ErrReservedAddress, "second bridge = %s", req.SecondBridgeAddress)
	}
	// native base token: the attached value covers mintValue plus the second
	// bridge's share, custody takes mintValue worth; ERC-20 base token: the
	// attached value is the second bridge's share only
	attached := call.AttachedValue()
	mintValue := bigOrZero(req.MintValue)
	bridgeValue := bigOrZero(req.SecondBridgeValue)
	custodyValue := big.NewInt(0)
	if rec.BaseToken == request.NativeTokenAddress {
		expected := new(big.Int).Add(mintValue, bridgeValue)
		if attached.Cmp(expected) != 0 {
			return common.Hash{}, errors.Wrapf(ErrValueMismatch, "attached = %v, expected = %v", attached, expected)
		}
		custodyValue = mintValue
	} else if attached.Cmp(bridgeValue) != 0 {
		return common.Hash{}, errors.Wrapf(ErrValueMismatch, "attached = %v, secondBridgeValue = %v", attached, bridgeValue)
	}
	if err = h.custodian.DepositBaseToken(ctx, req.ChainID, call.Caller, rec.BaseToken, mintValue, custodyValue); err != nil {
		return common.Hash{}, errors.Wrap(err, "failed to take base token into custody")
	}
	bridge, err := h.directory.SecondBridge(req.SecondBridgeAddress)
	if err != nil {
		return common.Hash{}, err
	}
	out, err := bridge.Deposit(ctx, req.ChainID, call.Caller, req.L2Value, req.SecondBridgeCalldata, bridgeValue)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "second bridge deposit hook failed")
	}
	if out.Magic != request.TwoBridgesMagic {
		return common.Hash{}, errors.Wrapf(ErrProtocolMismatch, "second bridge = %s", req.SecondBridgeAddress)
	}
	tx := &request.L2Transaction{
		ChainID:              req.ChainID,
		Sender:               req.SecondBridgeAddress,
		Contract:             out.L2Contract,
		MintValue:            mintValue,
		L2Value:              req.L2Value,
		L2Calldata:           out.L2Calldata,
		L2GasLimit:           req.L2GasLimit,
		L2GasPerPubdataLimit: req.L2GasPerPubdataLimit,
		FactoryDeps:          out.FactoryDeps,
		RefundRecipient:      h.refundRecipient(req.RefundRecipient, call.Caller),
	}
	txHash, err = h.forward(ctx, ws, tx)
	if err != nil {
		return common.Hash{}, err
	}
	if err = bridge.ConfirmTransaction(ctx, req.ChainID, out.TxDataHash, txHash); err != nil {
		return common.Hash{}, errors.Wrap(err, "second bridge confirmation failed")
	}
	h.emit(EventDepositForwarded, req.ChainID, req.SecondBridgeAddress, txHash)
	return txHash, nil
}

// forward hands the assembled transaction to the chain's execution domain
func (h *Hub) forward(ctx context.Context, ws *state.WorkingStore, tx *request.L2Transaction) (common.Hash, error) {
	dom, err := h.resolveDomain(ws, tx.ChainID)
	if err != nil {
		return common.Hash{}, err
	}
	txHash, err := dom.RequestTransaction(ctx, tx)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "failed to forward the transaction")
	}
	log.L().Debug("Forwarded a cross-domain transaction.",
		zap.Uint64("chainID", uint64(tx.ChainID)),
		zap.String("sender", tx.Sender.String()),
		zap.String("txHash", txHash.String()))
	return txHash, nil
}
