// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package api

import (
	"encoding/binary"
	"math/rand"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/routehubproject/routehub-core/hub"
	"github.com/routehubproject/routehub-core/pkg/log"
)

var (
	errorCapacityReached = errors.New("capacity has been reached")
)

type (
	// Responder responds to a new hub event
	Responder interface {
		Respond(string, *hub.Event) error
		Exit()
	}

	// Listener pushes hub events to all responders
	Listener interface {
		Start() error
		Stop() error
		ReceiveEvent(*hub.Event) error
		AddResponder(Responder) (string, error)
		RemoveResponder(string) (bool, error)
	}

	// hubListener implements the Listener interface
	hubListener struct {
		limit      int
		mu         sync.Mutex
		seed       uint64
		nextID     uint64
		responders map[string]Responder
	}
)

// NewHubListener returns a new hub event listener
func NewHubListener(limit int) Listener {
	return &hubListener{
		limit:      limit,
		seed:       rand.Uint64(),
		responders: make(map[string]Responder),
	}
}

// Start starts the listener
func (hl *hubListener) Start() error {
	return nil
}

// Stop stops the listener and notifies all responders to exit
func (hl *hubListener) Stop() error {
	hl.mu.Lock()
	defer hl.mu.Unlock()
	for _, r := range hl.responders {
		r.Exit()
	}
	hl.responders = make(map[string]Responder)
	return nil
}

// ReceiveEvent passes the event to every responder, dropping responders that fail
func (hl *hubListener) ReceiveEvent(ev *hub.Event) error {
	hl.mu.Lock()
	defer hl.mu.Unlock()
	for id, r := range hl.responders {
		if err := r.Respond(id, ev); err != nil {
			log.Logger("api").Debug("Responder failed to process the event.", zap.Error(err))
			r.Exit()
			delete(hl.responders, id)
		}
	}
	return nil
}

// AddResponder adds a new responder and returns its subscription id
func (hl *hubListener) AddResponder(r Responder) (string, error) {
	hl.mu.Lock()
	defer hl.mu.Unlock()
	if len(hl.responders) >= hl.limit {
		return "", errorCapacityReached
	}
	id := hl.newID()
	hl.responders[id] = r
	return id, nil
}

// newID derives an opaque subscription id, a sequential id would let one
// client guess and drop another client's subscription
func (hl *hubListener) newID() string {
	hl.nextID++
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], hl.seed)
	binary.LittleEndian.PutUint64(buf[8:], hl.nextID)
	return "0x" + strconv.FormatUint(xxhash.Sum64(buf[:]), 16)
}

// RemoveResponder removes the responder of the subscription id
func (hl *hubListener) RemoveResponder(id string) (bool, error) {
	hl.mu.Lock()
	defer hl.mu.Unlock()
	r, ok := hl.responders[id]
	if !ok {
		return false, nil
	}
	r.Exit()
	delete(hl.responders, id)
	return true, nil
}

// eventResponder pushes hub events to a web3 subscriber
type eventResponder struct {
	writer Web3ResponseWriter
}

func newEventResponder(writer Web3ResponseWriter) Responder {
	return &eventResponder{writer: writer}
}

func (r *eventResponder) Respond(id string, ev *hub.Event) error {
	_, err := r.writer.Write(&streamResponse{id: id, result: ev})
	return err
}

// Exit is a no-op, the connection owns the writer's lifetime
func (r *eventResponder) Exit() {}
