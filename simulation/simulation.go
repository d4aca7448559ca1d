// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Package simulation provides in-process collaborators backing a hub without
// deployed settlement contracts. A simulated directory resolves fixed addresses
// to simulated authorities, execution domains, custodians, bridges and tokens,
// which is enough to run the full request flow locally and in end-to-end tests.
package simulation

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/routehubproject/routehub-core/hub"
)

// ErrNotDeployed is returned when no collaborator lives at the address
var ErrNotDeployed = errors.New("no collaborator at address")

var _ hub.Directory = (*Directory)(nil)

// Directory implements hub.Directory over registries of simulated collaborators
type Directory struct {
	mu          sync.RWMutex
	authorities map[common.Address]hub.Authority
	domains     map[common.Address]hub.ExecutionDomain
	bridges     map[common.Address]hub.SecondBridge
	tokens      map[common.Address]hub.ERC20
}

// NewDirectory creates an empty directory
func NewDirectory() *Directory {
	return &Directory{
		authorities: make(map[common.Address]hub.Authority),
		domains:     make(map[common.Address]hub.ExecutionDomain),
		bridges:     make(map[common.Address]hub.SecondBridge),
		tokens:      make(map[common.Address]hub.ERC20),
	}
}

// AddAuthority deploys an authority at the address
func (d *Directory) AddAuthority(addr common.Address, a hub.Authority) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.authorities[addr] = a
}

// AddExecutionDomain deploys an execution domain at the address
func (d *Directory) AddExecutionDomain(addr common.Address, dom hub.ExecutionDomain) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.domains[addr] = dom
}

// AddSecondBridge deploys a second bridge at the address
func (d *Directory) AddSecondBridge(addr common.Address, b hub.SecondBridge) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.bridges[addr] = b
}

// AddERC20 deploys a token at the address
func (d *Directory) AddERC20(addr common.Address, t hub.ERC20) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tokens[addr] = t
}

// Authority resolves an authority address
func (d *Directory) Authority(addr common.Address) (hub.Authority, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	a, ok := d.authorities[addr]
	if !ok {
		return nil, errors.Wrapf(ErrNotDeployed, "authority = %s", addr)
	}
	return a, nil
}

// ExecutionDomain resolves an execution-domain address
func (d *Directory) ExecutionDomain(addr common.Address) (hub.ExecutionDomain, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	dom, ok := d.domains[addr]
	if !ok {
		return nil, errors.Wrapf(ErrNotDeployed, "execution domain = %s", addr)
	}
	return dom, nil
}

// SecondBridge resolves a second-bridge address
func (d *Directory) SecondBridge(addr common.Address) (hub.SecondBridge, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	b, ok := d.bridges[addr]
	if !ok {
		return nil, errors.Wrapf(ErrNotDeployed, "second bridge = %s", addr)
	}
	return b, nil
}

// ERC20 resolves a token address
func (d *Directory) ERC20(addr common.Address) (hub.ERC20, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	t, ok := d.tokens[addr]
	if !ok {
		return nil, errors.Wrapf(ErrNotDeployed, "token = %s", addr)
	}
	return t, nil
}

// IsContract reports whether any collaborator is deployed at the address
func (d *Directory) IsContract(addr common.Address) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if _, ok := d.authorities[addr]; ok {
		return true
	}
	if _, ok := d.domains[addr]; ok {
		return true
	}
	if _, ok := d.bridges[addr]; ok {
		return true
	}
	_, ok := d.tokens[addr]
	return ok
}
