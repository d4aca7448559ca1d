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
)

// SetPendingAdmin starts the two-step handoff of the global admin role. The
// owner or the current admin may name a new pending admin; naming the zero
// address cancels an unfinished handoff.
func (h *Hub) SetPendingAdmin(ctx context.Context, pending common.Address) (err error) {
	defer func() { h.count("setPendingAdmin", err) }()
	call := MustGetCallCtx(ctx)
	h.mutex.Lock()
	defer h.mutex.Unlock()
	ws, err := h.workingStore()
	if err != nil {
		return err
	}
	if err = h.checkOwnerOrAdmin(ws, call.Caller); err != nil {
		return err
	}
	role, err := h.adminRole(ws)
	if err != nil {
		return err
	}
	role.Pending = pending
	if err = ws.PutState(AccessNamespace, _adminKey, role); err != nil {
		return err
	}
	if err = ws.Commit(); err != nil {
		return err
	}
	h.emit(EventNewPendingAdmin, 0, pending, common.Hash{})
	return nil
}

// AcceptAdmin completes the handoff. Only the exact pending admin recorded by
// the most recent SetPendingAdmin may call it.
func (h *Hub) AcceptAdmin(ctx context.Context) (err error) {
	defer func() { h.count("acceptAdmin", err) }()
	call := MustGetCallCtx(ctx)
	h.mutex.Lock()
	defer h.mutex.Unlock()
	ws, err := h.workingStore()
	if err != nil {
		return err
	}
	role, err := h.adminRole(ws)
	if err != nil {
		return err
	}
	if role.Pending == (common.Address{}) || call.Caller != role.Pending {
		return errors.Wrapf(ErrUnauthorized, "caller = %s is not the pending admin", call.Caller)
	}
	role.Current, role.Pending = role.Pending, common.Address{}
	if err = ws.PutState(AccessNamespace, _adminKey, role); err != nil {
		return err
	}
	if err = ws.Commit(); err != nil {
		return err
	}
	log.L().Info("Admin role handed over.", zap.String("admin", role.Current.Hex()))
	h.emit(EventNewAdmin, 0, role.Current, common.Hash{})
	return nil
}

// Pause engages the circuit breaker. Owner-only; fails when already engaged.
func (h *Hub) Pause(ctx context.Context) (err error) {
	defer func() { h.count("pause", err) }()
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
	paused, err := h.isPaused(ws)
	if err != nil {
		return err
	}
	if paused {
		return errors.Wrap(ErrAlreadyRegistered, "hub is already paused")
	}
	if err = ws.PutState(AccessNamespace, _pausedKey, true); err != nil {
		return err
	}
	if err = ws.Commit(); err != nil {
		return err
	}
	log.L().Warn("Paused the hub.", zap.String("caller", call.Caller.Hex()))
	h.emit(EventPaused, 0, call.Caller, common.Hash{})
	return nil
}

// Unpause releases the circuit breaker. Owner-only; fails when not engaged.
func (h *Hub) Unpause(ctx context.Context) (err error) {
	defer func() { h.count("unpause", err) }()
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
	paused, err := h.isPaused(ws)
	if err != nil {
		return err
	}
	if !paused {
		return errors.Wrap(ErrNotRegistered, "hub is not paused")
	}
	if err = ws.PutState(AccessNamespace, _pausedKey, false); err != nil {
		return err
	}
	if err = ws.Commit(); err != nil {
		return err
	}
	log.L().Info("Unpaused the hub.", zap.String("caller", call.Caller.Hex()))
	h.emit(EventUnpaused, 0, call.Caller, common.Hash{})
	return nil
}

// Admin returns the current global admin, zero while the role is vacant
func (h *Hub) Admin() (common.Address, error) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	ws, err := h.workingStore()
	if err != nil {
		return common.Address{}, err
	}
	role, err := h.adminRole(ws)
	if err != nil {
		return common.Address{}, err
	}
	return role.Current, nil
}

// PendingAdmin returns the pending admin of an unfinished handoff
func (h *Hub) PendingAdmin() (common.Address, error) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	ws, err := h.workingStore()
	if err != nil {
		return common.Address{}, err
	}
	role, err := h.adminRole(ws)
	if err != nil {
		return common.Address{}, err
	}
	return role.Pending, nil
}

// Paused reports whether the circuit breaker is engaged
func (h *Hub) Paused() (bool, error) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	ws, err := h.workingStore()
	if err != nil {
		return false, err
	}
	return h.isPaused(ws)
}
