// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package hub

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/routehubproject/routehub-core/pkg/log"
	"github.com/routehubproject/routehub-core/request"
)

// RegisterAuthority allows addr to be used as a chain authority. Owner only
func (h *Hub) RegisterAuthority(ctx context.Context, addr common.Address) (err error) {
	defer func() { h.count("registerAuthority", err) }()
	call := MustGetCallCtx(ctx)
	if err = h.checkOwner(call.Caller); err != nil {
		return err
	}
	h.mutex.Lock()
	defer h.mutex.Unlock()
	ws, err := h.workingStore()
	if err != nil {
		return err
	}
	exist, err := ws.Exist(RegistryNamespace, authorityKey(addr))
	if err != nil {
		return err
	}
	if exist {
		return errors.Wrapf(ErrAlreadyRegistered, "authority = %s", addr)
	}
	if err = ws.PutState(RegistryNamespace, authorityKey(addr), true); err != nil {
		return err
	}
	if err = ws.Commit(); err != nil {
		return err
	}
	h.emit(EventAuthorityRegistered, 0, addr, common.Hash{})
	return nil
}

// DeregisterAuthority removes addr from the authority registry. Owner only;
// chains already registered with addr stay valid
func (h *Hub) DeregisterAuthority(ctx context.Context, addr common.Address) (err error) {
	defer func() { h.count("deregisterAuthority", err) }()
	call := MustGetCallCtx(ctx)
	if err = h.checkOwner(call.Caller); err != nil {
		return err
	}
	h.mutex.Lock()
	defer h.mutex.Unlock()
	ws, err := h.workingStore()
	if err != nil {
		return err
	}
	exist, err := ws.Exist(RegistryNamespace, authorityKey(addr))
	if err != nil {
		return err
	}
	if !exist {
		return errors.Wrapf(ErrNotRegistered, "authority = %s", addr)
	}
	if err = ws.DelState(RegistryNamespace, authorityKey(addr)); err != nil {
		return err
	}
	if err = ws.Commit(); err != nil {
		return err
	}
	h.emit(EventAuthorityDeregistered, 0, addr, common.Hash{})
	return nil
}

// RegisterToken allows addr to be used as a chain's base token. Owner only, no
// deregistration
func (h *Hub) RegisterToken(ctx context.Context, addr common.Address) (err error) {
	defer func() { h.count("registerToken", err) }()
	call := MustGetCallCtx(ctx)
	if err = h.checkOwner(call.Caller); err != nil {
		return err
	}
	h.mutex.Lock()
	defer h.mutex.Unlock()
	ws, err := h.workingStore()
	if err != nil {
		return err
	}
	exist, err := ws.Exist(RegistryNamespace, tokenKey(addr))
	if err != nil {
		return err
	}
	if exist {
		return errors.Wrapf(ErrAlreadyRegistered, "token = %s", addr)
	}
	if err = ws.PutState(RegistryNamespace, tokenKey(addr), true); err != nil {
		return err
	}
	if err = ws.Commit(); err != nil {
		return err
	}
	h.emit(EventTokenRegistered, 0, addr, common.Hash{})
	return nil
}

// CreateChain registers a new chain and delegates its construction to the
// authority. The record is committed only after the delegated construction
// succeeds, so a failed construction leaves no observable record
func (h *Hub) CreateChain(
	ctx context.Context,
	chainID request.ChainID,
	authority common.Address,
	baseToken common.Address,
	admin common.Address,
	initData []byte,
) (id request.ChainID, err error) {
	defer func() { h.count("createChain", err) }()
	call := MustGetCallCtx(ctx)
	h.mutex.Lock()
	defer h.mutex.Unlock()
	ws, err := h.workingStore()
	if err != nil {
		return 0, err
	}
	if err = h.checkOwnerOrAdmin(ws, call.Caller); err != nil {
		return 0, err
	}
	if err = h.checkNotPaused(ws); err != nil {
		return 0, err
	}
	if !chainID.Valid() {
		return 0, errors.Wrapf(ErrInvalidChainID, "chain id = %d", chainID)
	}
	if admin == (common.Address{}) {
		return 0, errors.Wrap(ErrZeroAddress, "chain admin")
	}
	if h.custodian == nil {
		return 0, errors.Wrap(ErrRoutingNotConfigured, "base token custodian is unset")
	}
	exist, err := ws.Exist(RegistryNamespace, authorityKey(authority))
	if err != nil {
		return 0, err
	}
	if !exist {
		return 0, errors.Wrapf(ErrUnknownAuthority, "authority = %s", authority)
	}
	exist, err = ws.Exist(RegistryNamespace, tokenKey(baseToken))
	if err != nil {
		return 0, err
	}
	if !exist {
		return 0, errors.Wrapf(ErrUnknownToken, "token = %s", baseToken)
	}
	exist, err = ws.Exist(RegistryNamespace, chainKey(chainID))
	if err != nil {
		return 0, err
	}
	if exist {
		return 0, errors.Wrapf(ErrChainExists, "chain id = %d", chainID)
	}
	rec := &ChainRecord{
		Authority: authority,
		BaseToken: baseToken,
	}
	if err = ws.PutState(RegistryNamespace, chainKey(chainID), rec); err != nil {
		return 0, err
	}
	auth, err := h.directory.Authority(authority)
	if err != nil {
		return 0, err
	}
	// the delegated construction runs before the record is committed
	if err = auth.CreateChain(ctx, chainID, baseToken, h.custodian.Address(), admin, initData); err != nil {
		return 0, errors.Wrap(err, "failed to construct the chain")
	}
	if err = ws.Commit(); err != nil {
		return 0, err
	}
	log.L().Info("Created a new chain.",
		zap.Uint64("chainID", uint64(chainID)),
		zap.String("authority", authority.String()),
		zap.String("baseToken", baseToken.String()))
	h.emit(EventNewChain, chainID, authority, common.Hash{})
	return chainID, nil
}

// ExecutionDomain resolves the chain's execution-domain address through its
// authority
func (h *Hub) ExecutionDomain(chainID request.ChainID) (common.Address, error) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	ws, err := h.workingStore()
	if err != nil {
		return common.Address{}, err
	}
	rec, err := h.chainRecord(ws, chainID)
	if err != nil {
		return common.Address{}, err
	}
	auth, err := h.directory.Authority(rec.Authority)
	if err != nil {
		return common.Address{}, err
	}
	return auth.ExecutionDomain(chainID)
}

// Chain returns the chain's registry record
func (h *Hub) Chain(chainID request.ChainID) (*ChainRecord, error) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	ws, err := h.workingStore()
	if err != nil {
		return nil, err
	}
	return h.chainRecord(ws, chainID)
}

// BaseToken returns the chain's base token
func (h *Hub) BaseToken(chainID request.ChainID) (common.Address, error) {
	rec, err := h.Chain(chainID)
	if err != nil {
		return common.Address{}, err
	}
	return rec.BaseToken, nil
}

// SettlementLayer returns the chain's current settlement layer, zero when the
// chain still settles on this hub's domain
func (h *Hub) SettlementLayer(chainID request.ChainID) (request.ChainID, error) {
	rec, err := h.Chain(chainID)
	if err != nil {
		return 0, err
	}
	return rec.SettlementLayer, nil
}
