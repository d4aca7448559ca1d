// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Package hub implements the cross-chain routing and registry service: the
// chain registry, the two deposit-and-forward protocols, settlement-layer
// migration, proof forwarding and access control. Every mutating operation
// runs against a fresh working store committed only on success, so a failed
// operation leaves no observable state behind.
package hub

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/facebookgo/clock"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"

	"github.com/routehubproject/routehub-core/db"
	"github.com/routehubproject/routehub-core/pkg/lifecycle"
	"github.com/routehubproject/routehub-core/request"
	"github.com/routehubproject/routehub-core/state"
)

var _hubMtc = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "routehub_hub_operations",
		Help: "RouteHub hub operations",
	},
	[]string{"type", "status"},
)

func init() {
	prometheus.MustRegister(_hubMtc)
}

type (
	// Config is the hub operating config
	Config struct {
		// OwnChainID is the chain the hub itself operates on
		OwnChainID uint64 `yaml:"ownChainID"`
		// L1ChainID is the base settlement domain; the hub runs in
		// settlement-layer mode when the two differ
		L1ChainID       uint64 `yaml:"l1ChainID"`
		EventBufferSize uint64 `yaml:"eventBufferSize"`
	}

	// Option sets an optional hub attribute
	Option func(*Hub)

	// Hub is the cross-chain routing and registry service
	Hub struct {
		lifecycle.Readiness
		cfg       Config
		owner     common.Address
		addr      common.Address
		kv        db.KVStore
		directory Directory
		custodian BaseTokenCustodian
		pubsub    PubSubManager
		clk       clock.Clock
		// mutex serializes store mutations against reads
		mutex sync.RWMutex
		// busy guards value-moving operations against nested entry
		busy atomic.Bool
	}
)

// DefaultConfig is the default hub config
var DefaultConfig = Config{
	OwnChainID:      1,
	L1ChainID:       1,
	EventBufferSize: 200,
}

// WithCustodian supplies the base-token custodian collaborator
func WithCustodian(c BaseTokenCustodian) Option {
	return func(h *Hub) {
		h.custodian = c
	}
}

// WithAddress sets the hub's own custody account
func WithAddress(addr common.Address) Option {
	return func(h *Hub) {
		h.addr = addr
	}
}

// WithClock sets the clock used to timestamp events
func WithClock(c clock.Clock) Option {
	return func(h *Hub) {
		h.clk = c
	}
}

// New creates a hub owned by owner, persisting to kv and resolving
// collaborators through directory
func New(cfg Config, owner common.Address, kv db.KVStore, directory Directory, opts ...Option) *Hub {
	h := &Hub{
		cfg:       cfg,
		owner:     owner,
		kv:        kv,
		directory: directory,
		pubsub:    NewPubSub(cfg.EventBufferSize),
		clk:       clock.New(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Start turns on the hub service
func (h *Hub) Start(_ context.Context) error {
	return h.TurnOn()
}

// Stop turns off the hub service and its event feed
func (h *Hub) Stop(_ context.Context) error {
	if err := h.TurnOff(); err != nil {
		return err
	}
	h.pubsub.Stop()
	return nil
}

// Owner returns the hub owner
func (h *Hub) Owner() common.Address {
	return h.owner
}

// Address returns the hub's own custody account
func (h *Hub) Address() common.Address {
	return h.addr
}

// OwnChainID returns the chain the hub operates on
func (h *Hub) OwnChainID() request.ChainID {
	return request.ChainID(h.cfg.OwnChainID)
}

// SettlementMode reports whether the hub operates on a settlement layer other
// than the base domain
func (h *Hub) SettlementMode() bool {
	return h.cfg.OwnChainID != h.cfg.L1ChainID
}

// AddEventListener subscribes to hub events
func (h *Hub) AddEventListener(s EventSubscriber) error {
	return h.pubsub.AddEventListener(s)
}

// RemoveEventListener unsubscribes from hub events
func (h *Hub) RemoveEventListener(s EventSubscriber) error {
	return h.pubsub.RemoveEventListener(s)
}

// acquireGuard takes the non-reentrant lock of value-moving operations
func (h *Hub) acquireGuard() error {
	if !h.busy.CompareAndSwap(false, true) {
		return ErrReentrantCall
	}
	return nil
}

func (h *Hub) releaseGuard() {
	h.busy.Store(false)
}

func (h *Hub) workingStore() (*state.WorkingStore, error) {
	return state.NewWorkingStore(h.kv)
}

func (h *Hub) chainRecord(ws *state.WorkingStore, id request.ChainID) (*ChainRecord, error) {
	var rec ChainRecord
	if err := ws.State(RegistryNamespace, chainKey(id), &rec); err != nil {
		if errors.Cause(err) == state.ErrStateNotExist {
			return nil, errors.Wrapf(ErrUnregisteredChain, "chain id = %d", id)
		}
		return nil, err
	}
	return &rec, nil
}

func (h *Hub) adminRole(ws *state.WorkingStore) (*AdminRole, error) {
	var role AdminRole
	if err := ws.State(AccessNamespace, _adminKey, &role); err != nil {
		if errors.Cause(err) == state.ErrStateNotExist {
			return &AdminRole{}, nil
		}
		return nil, err
	}
	return &role, nil
}

func (h *Hub) isPaused(ws *state.WorkingStore) (bool, error) {
	var paused bool
	if err := ws.State(AccessNamespace, _pausedKey, &paused); err != nil {
		if errors.Cause(err) == state.ErrStateNotExist {
			return false, nil
		}
		return false, err
	}
	return paused, nil
}

func (h *Hub) checkNotPaused(ws *state.WorkingStore) error {
	paused, err := h.isPaused(ws)
	if err != nil {
		return err
	}
	if paused {
		return ErrPaused
	}
	return nil
}

func (h *Hub) checkOwner(caller common.Address) error {
	if caller != h.owner {
		return errors.Wrapf(ErrUnauthorized, "caller = %s is not the owner", caller)
	}
	return nil
}

func (h *Hub) checkOwnerOrAdmin(ws *state.WorkingStore, caller common.Address) error {
	if caller == h.owner {
		return nil
	}
	role, err := h.adminRole(ws)
	if err != nil {
		return err
	}
	if caller == role.Current && caller != (common.Address{}) {
		return nil
	}
	return errors.Wrapf(ErrUnauthorized, "caller = %s is neither the owner nor the admin", caller)
}

// resolveDomain resolves the chain's execution-domain capability through the
// chain's authority
func (h *Hub) resolveDomain(ws *state.WorkingStore, id request.ChainID) (ExecutionDomain, error) {
	rec, err := h.chainRecord(ws, id)
	if err != nil {
		return nil, err
	}
	auth, err := h.directory.Authority(rec.Authority)
	if err != nil {
		return nil, err
	}
	domAddr, err := auth.ExecutionDomain(id)
	if err != nil {
		return nil, err
	}
	return h.directory.ExecutionDomain(domAddr)
}

// refundRecipient normalizes the refund recipient: zero defaults to the
// caller, and a contract recipient is shifted to its cross-domain alias so
// refunds cannot strand at an address nobody can drive on the target domain
func (h *Hub) refundRecipient(refund, caller common.Address) common.Address {
	if refund == (common.Address{}) {
		if h.directory.IsContract(caller) {
			return request.ApplyAlias(caller)
		}
		return caller
	}
	if h.directory.IsContract(refund) {
		return request.ApplyAlias(refund)
	}
	return refund
}

func (h *Hub) emit(kind EventKind, id request.ChainID, addr common.Address, hash common.Hash) {
	h.pubsub.SendEventToSubscribers(&Event{
		Kind:      kind,
		ChainID:   id,
		Address:   addr,
		Hash:      hash,
		Timestamp: h.clk.Now(),
	})
}

func (h *Hub) count(op string, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	_hubMtc.WithLabelValues(op, status).Inc()
}
