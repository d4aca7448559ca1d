// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package simulation

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/routehubproject/routehub-core/hub"
	"github.com/routehubproject/routehub-core/pkg/log"
	"github.com/routehubproject/routehub-core/request"
)

var (
	_ hub.BaseTokenCustodian = (*Custodian)(nil)
	_ hub.ERC20              = (*Token)(nil)
)

// Custodian simulates the base-token custodian: an escrow book per chain and
// token. Native deposits must carry matching value, ERC-20 deposits pull from
// the depositor through the directory's token
type Custodian struct {
	addr      common.Address
	directory *Directory
	mu        sync.Mutex
	escrow    map[request.ChainID]map[common.Address]*big.Int
}

// NewCustodian creates a custodian pulling ERC-20 funds through the directory
func NewCustodian(addr common.Address, directory *Directory) *Custodian {
	return &Custodian{
		addr:      addr,
		directory: directory,
		escrow:    make(map[request.ChainID]map[common.Address]*big.Int),
	}
}

// Address returns the custodian's account
func (c *Custodian) Address() common.Address { return c.addr }

// DepositBaseToken takes amount of the chain's base token into escrow
func (c *Custodian) DepositBaseToken(ctx context.Context, chainID request.ChainID, depositor, baseToken common.Address, amount, value *big.Int) error {
	if amount == nil {
		amount = big.NewInt(0)
	}
	if value == nil {
		value = big.NewInt(0)
	}
	if baseToken == request.NativeTokenAddress {
		if value.Cmp(amount) != 0 {
			return errors.Errorf("native deposit carries %v, want %v", value, amount)
		}
	} else {
		if value.Sign() != 0 {
			return errors.Errorf("ERC-20 deposit carries stray value %v", value)
		}
		token, err := c.directory.ERC20(baseToken)
		if err != nil {
			return err
		}
		if err := token.TransferFrom(ctx, depositor, c.addr, amount); err != nil {
			return errors.Wrap(err, "failed to pull the base token")
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	book, ok := c.escrow[chainID]
	if !ok {
		book = make(map[common.Address]*big.Int)
		c.escrow[chainID] = book
	}
	held, ok := book[baseToken]
	if !ok {
		held = big.NewInt(0)
		book[baseToken] = held
	}
	held.Add(held, amount)
	log.Logger("simulation").Debug("Escrowed a base-token deposit.",
		zap.Uint64("chainID", uint64(chainID)),
		zap.String("depositor", depositor.Hex()),
		zap.String("amount", amount.String()))
	return nil
}

// Escrow returns the amount held for the chain in the given token
func (c *Custodian) Escrow(chainID request.ChainID, baseToken common.Address) *big.Int {
	c.mu.Lock()
	defer c.mu.Unlock()
	book, ok := c.escrow[chainID]
	if !ok {
		return big.NewInt(0)
	}
	held, ok := book[baseToken]
	if !ok {
		return big.NewInt(0)
	}
	return new(big.Int).Set(held)
}

// Token simulates an ERC-20 with a balance book. Allowance enforcement needs a
// caller identity the capability interface does not carry, so only balances are
// enforced and approvals are recorded for inspection
type Token struct {
	addr      common.Address
	mu        sync.Mutex
	balances  map[common.Address]*big.Int
	approvals map[common.Address]*big.Int
}

// NewToken creates a token with an empty balance book
func NewToken(addr common.Address) *Token {
	return &Token{
		addr:      addr,
		balances:  make(map[common.Address]*big.Int),
		approvals: make(map[common.Address]*big.Int),
	}
}

// Address returns the token's account
func (t *Token) Address() common.Address { return t.addr }

// Mint credits the account, for seeding test and development balances
func (t *Token) Mint(account common.Address, amount *big.Int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	balance, ok := t.balances[account]
	if !ok {
		balance = big.NewInt(0)
		t.balances[account] = balance
	}
	balance.Add(balance, amount)
}

// BalanceOf returns the account's balance
func (t *Token) BalanceOf(account common.Address) *big.Int {
	t.mu.Lock()
	defer t.mu.Unlock()
	balance, ok := t.balances[account]
	if !ok {
		return big.NewInt(0)
	}
	return new(big.Int).Set(balance)
}

// TransferFrom moves amount from one account to another
func (t *Token) TransferFrom(_ context.Context, from, to common.Address, amount *big.Int) error {
	if amount == nil {
		amount = big.NewInt(0)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	balance, ok := t.balances[from]
	if !ok || balance.Cmp(amount) < 0 {
		return errors.Errorf("insufficient balance of %s", from)
	}
	balance.Sub(balance, amount)
	credit, ok := t.balances[to]
	if !ok {
		credit = big.NewInt(0)
		t.balances[to] = credit
	}
	credit.Add(credit, amount)
	return nil
}

// Approve records the spender's approval
func (t *Token) Approve(_ context.Context, spender common.Address, amount *big.Int) error {
	if amount == nil {
		amount = big.NewInt(0)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.approvals[spender] = new(big.Int).Set(amount)
	return nil
}

// Approval returns the recorded approval for the spender
func (t *Token) Approval(spender common.Address) *big.Int {
	t.mu.Lock()
	defer t.mu.Unlock()
	approved, ok := t.approvals[spender]
	if !ok {
		return big.NewInt(0)
	}
	return new(big.Int).Set(approved)
}
