// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package hub

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/routehubproject/routehub-core/pkg/log"
	"github.com/routehubproject/routehub-core/request"
)

// EventKind names a hub state change
type EventKind string

const (
	// EventAuthorityRegistered is emitted when an authority joins the registry
	EventAuthorityRegistered EventKind = "AuthorityRegistered"
	// EventAuthorityDeregistered is emitted when an authority leaves the registry
	EventAuthorityDeregistered EventKind = "AuthorityDeregistered"
	// EventTokenRegistered is emitted when a base token joins the registry
	EventTokenRegistered EventKind = "TokenRegistered"
	// EventNewChain is emitted when a chain record is created
	EventNewChain EventKind = "NewChain"
	// EventDepositForwarded is emitted when a deposit request is forwarded
	EventDepositForwarded EventKind = "DepositForwarded"
	// EventMigrationStarted is emitted when a settlement-layer migration starts
	EventMigrationStarted EventKind = "MigrationStarted"
	// EventSettlementLayerRegistered is emitted when a chain toggles its whitelist entry
	EventSettlementLayerRegistered EventKind = "SettlementLayerRegistered"
	// EventCounterpartRegistered is emitted when a counterpart deployment is recorded
	EventCounterpartRegistered EventKind = "CounterpartRegistered"
	// EventNewPendingAdmin is emitted when a pending admin is proposed
	EventNewPendingAdmin EventKind = "NewPendingAdmin"
	// EventNewAdmin is emitted when the pending admin accepts the role
	EventNewAdmin EventKind = "NewAdmin"
	// EventPaused is emitted when the circuit breaker engages
	EventPaused EventKind = "Paused"
	// EventUnpaused is emitted when the circuit breaker disengages
	EventUnpaused EventKind = "Unpaused"
)

// Event is a typed notification of a hub state change
type Event struct {
	Kind      EventKind       `json:"kind"`
	ChainID   request.ChainID `json:"chainID,omitempty"`
	Address   common.Address  `json:"address,omitempty"`
	Hash      common.Hash     `json:"hash,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// EventSubscriber handles events pushed by the hub
type EventSubscriber interface {
	ReceiveEvent(*Event) error
}

// PubSubManager is an interface which handles multi-thread publisher and subscribers
type PubSubManager interface {
	AddEventListener(EventSubscriber) error
	RemoveEventListener(EventSubscriber) error
	SendEventToSubscribers(*Event)
	Stop()
}

// pubSubElem includes Subscriber, buffered channel for storing the pending events and cancel channel to end the handler thread
type pubSubElem struct {
	listener           EventSubscriber
	pendingEventBuffer chan *Event
	cancel             chan interface{}
}

// pubSub defines array of event listeners to handle multi-thread publish/subscribe
type pubSub struct {
	eventListeners         []*pubSubElem
	pendingEventBufferSize uint64
}

// NewPubSub creates new pubSub struct with buffersize for pending event buffer channel
func NewPubSub(bufferSize uint64) PubSubManager {
	return &pubSub{
		eventListeners:         make([]*pubSubElem, 0),
		pendingEventBufferSize: bufferSize,
	}
}

// AddEventListener creates new pubSubElem subscriber and append it to eventListeners
func (ps *pubSub) AddEventListener(s EventSubscriber) error {
	pendingEventsChan := make(chan *Event, ps.pendingEventBufferSize)
	cancelChan := make(chan interface{})
	// create subscriber handler thread to handle pending events
	go ps.handler(cancelChan, pendingEventsChan, s)

	pubSubElem := &pubSubElem{
		listener:           s,
		pendingEventBuffer: pendingEventsChan,
		cancel:             cancelChan,
	}
	ps.eventListeners = append(ps.eventListeners, pubSubElem)

	return nil
}

// RemoveEventListener looks up eventListeners and if exists, close the cancel channel and pop out the element
func (ps *pubSub) RemoveEventListener(s EventSubscriber) error {
	for i, elem := range ps.eventListeners {
		if elem.listener == s {
			close(elem.cancel)
			ps.eventListeners = append(ps.eventListeners[:i], ps.eventListeners[i+1:]...)
			log.L().Info("Successfully unsubscribe hub event.")
			return nil
		}
	}
	return errors.New("cannot find subscription")
}

// SendEventToSubscribers sends the event to every subscriber by using buffer channel
func (ps *pubSub) SendEventToSubscribers(ev *Event) {
	for _, elem := range ps.eventListeners {
		elem.pendingEventBuffer <- ev
	}
}

// Stop closes all subscriber handler threads
func (ps *pubSub) Stop() {
	for _, elem := range ps.eventListeners {
		close(elem.cancel)
	}
	ps.eventListeners = nil
}

func (ps *pubSub) handler(cancelChan <-chan interface{}, pendingEvents <-chan *Event, s EventSubscriber) {
	for {
		select {
		case <-cancelChan:
			return
		case ev := <-pendingEvents:
			if err := s.ReceiveEvent(ev); err != nil {
				log.L().Error("Failed to handle hub event.", zap.Error(err))
			}
		}
	}
}
