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
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/routehubproject/routehub-core/hub"
	"github.com/routehubproject/routehub-core/pkg/log"
	"github.com/routehubproject/routehub-core/request"
)

var (
	_ hub.Authority       = (*Authority)(nil)
	_ hub.ExecutionDomain = (*Domain)(nil)
)

// Authority simulates a chain's state-transition manager. CreateChain deploys a
// simulated execution domain into the directory at a CREATE-derived address
type Authority struct {
	addr      common.Address
	directory *Directory
	mu        sync.Mutex
	domains   map[request.ChainID]common.Address
}

// NewAuthority creates an authority that deploys domains into the directory
func NewAuthority(addr common.Address, directory *Directory) *Authority {
	return &Authority{
		addr:      addr,
		directory: directory,
		domains:   make(map[request.ChainID]common.Address),
	}
}

// Address returns the authority's account
func (a *Authority) Address() common.Address { return a.addr }

// CreateChain deploys an execution domain for the chain
func (a *Authority) CreateChain(_ context.Context, chainID request.ChainID, baseToken, custodian, admin common.Address, initData []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.domains[chainID]; ok {
		return errors.Errorf("chain %d already created", chainID)
	}
	domAddr := crypto.CreateAddress(a.addr, uint64(chainID))
	dom := &Domain{
		addr:      domAddr,
		chainID:   chainID,
		admin:     admin,
		baseToken: baseToken,
		custodian: custodian,
		genesis:   initData,
		statuses:  make(map[common.Hash]request.TxStatus),
		messages:  make(map[common.Hash]struct{}),
		logs:      make(map[common.Hash]struct{}),
	}
	a.domains[chainID] = domAddr
	a.directory.AddExecutionDomain(domAddr, dom)
	log.Logger("simulation").Info("Deployed a simulated execution domain.",
		zap.Uint64("chainID", uint64(chainID)),
		zap.String("domain", domAddr.Hex()))
	return nil
}

// ExecutionDomain resolves the chain's execution-domain address
func (a *Authority) ExecutionDomain(chainID request.ChainID) (common.Address, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	addr, ok := a.domains[chainID]
	if !ok {
		return common.Address{}, errors.Errorf("chain %d has no execution domain", chainID)
	}
	return addr, nil
}

// gas pricing constants of the simulated domain, mirroring a rollup mailbox
const _l1GasPerPubdataByte = 17

var _fairL2GasPrice = big.NewInt(500000000)

// Domain simulates a chain's execution contract. Forwarded transactions are
// recorded and marked successful; inclusion proofs verify against recorded
// leaves, batch coordinates and merkle paths are not checked
type Domain struct {
	addr      common.Address
	chainID   request.ChainID
	admin     common.Address
	baseToken common.Address
	custodian common.Address
	genesis   []byte

	mu        sync.Mutex
	batch     uint64
	forwarded []*request.L2Transaction
	statuses  map[common.Hash]request.TxStatus
	messages  map[common.Hash]struct{}
	logs      map[common.Hash]struct{}
}

// Address returns the domain's account
func (d *Domain) Address() common.Address { return d.addr }

// RequestTransaction records the forwarded transaction and returns its canonical hash
func (d *Domain) RequestTransaction(_ context.Context, tx *request.L2Transaction) (common.Hash, error) {
	txHash, err := tx.Hash()
	if err != nil {
		return common.Hash{}, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.forwarded = append(d.forwarded, tx)
	d.statuses[txHash] = request.TxSuccess
	return txHash, nil
}

// Forwarded returns the transactions forwarded to the domain so far
func (d *Domain) Forwarded() []*request.L2Transaction {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]*request.L2Transaction, len(d.forwarded))
	copy(out, d.forwarded)
	return out
}

// SealBatch closes the current batch and returns its number
func (d *Domain) SealBatch() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.batch++
	return d.batch
}

// RecordMessage marks the message as included in a sealed batch
func (d *Domain) RecordMessage(msg request.Message) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.messages[messageLeaf(msg)] = struct{}{}
}

// RecordLog marks the log as included in a sealed batch
func (d *Domain) RecordLog(l request.Log) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.logs[logLeaf(l)] = struct{}{}
}

// ProveMessageInclusion reports whether the message was recorded on the domain
func (d *Domain) ProveMessageInclusion(_, _ uint64, msg request.Message, _ []common.Hash) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.messages[messageLeaf(msg)]
	return ok, nil
}

// ProveLogInclusion reports whether the log was recorded on the domain
func (d *Domain) ProveLogInclusion(_, _ uint64, l request.Log, _ []common.Hash) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.logs[logLeaf(l)]
	return ok, nil
}

// ProveTransactionStatus reports whether the transaction was forwarded and
// terminated with the claimed status
func (d *Domain) ProveTransactionStatus(txHash common.Hash, _, _ uint64, _ uint16, _ []common.Hash, status request.TxStatus) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	recorded, ok := d.statuses[txHash]
	return ok && recorded == status, nil
}

// EstimateBaseCost derives the L2 gas price from the L1 gas price and the
// pubdata budget, then charges it for the full gas limit
func (d *Domain) EstimateBaseCost(gasPrice *big.Int, l2GasLimit, l2GasPerPubdataLimit uint64) (*big.Int, error) {
	if gasPrice == nil || gasPrice.Sign() <= 0 {
		return nil, errors.New("gas price must be positive")
	}
	if l2GasPerPubdataLimit == 0 {
		return nil, errors.New("pubdata limit must be positive")
	}
	pubdataPrice := new(big.Int).Mul(gasPrice, big.NewInt(_l1GasPerPubdataByte))
	perPubdata := new(big.Int).SetUint64(l2GasPerPubdataLimit)
	minL2GasPrice := new(big.Int).Div(new(big.Int).Sub(new(big.Int).Add(pubdataPrice, perPubdata), big.NewInt(1)), perPubdata)
	l2GasPrice := _fairL2GasPrice
	if minL2GasPrice.Cmp(l2GasPrice) > 0 {
		l2GasPrice = minL2GasPrice
	}
	return new(big.Int).Mul(l2GasPrice, new(big.Int).SetUint64(l2GasLimit)), nil
}

// Admin returns the domain's admin account
func (d *Domain) Admin() (common.Address, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.admin, nil
}

// SetAdmin hands the domain to a new admin
func (d *Domain) SetAdmin(admin common.Address) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.admin = admin
}

type migrationPayload struct {
	ChainID     uint64
	Admin       common.Address
	BaseToken   common.Address
	BatchNumber uint64
}

// ExportMigration snapshots the domain's commitments for a settlement-layer migration
func (d *Domain) ExportMigration(_ context.Context, chainID request.ChainID) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if chainID != d.chainID {
		return nil, errors.Errorf("domain serves chain %d, not chain %d", d.chainID, chainID)
	}
	return rlp.EncodeToBytes(&migrationPayload{
		ChainID:     uint64(d.chainID),
		Admin:       d.admin,
		BaseToken:   d.baseToken,
		BatchNumber: d.batch,
	})
}

func messageLeaf(msg request.Message) common.Hash {
	data := make([]byte, 0, 2+common.AddressLength+len(msg.Data))
	data = append(data, byte(msg.TxNumberInBatch>>8), byte(msg.TxNumberInBatch))
	data = append(data, msg.Sender.Bytes()...)
	data = append(data, msg.Data...)
	return crypto.Keccak256Hash(data)
}

func logLeaf(l request.Log) common.Hash {
	data := make([]byte, 0, 4+common.AddressLength+2*common.HashLength)
	data = append(data, l.ShardID)
	if l.IsService {
		data = append(data, 1)
	} else {
		data = append(data, 0)
	}
	data = append(data, byte(l.TxNumberInBatch>>8), byte(l.TxNumberInBatch))
	data = append(data, l.Sender.Bytes()...)
	data = append(data, l.Key.Bytes()...)
	data = append(data, l.Value.Bytes()...)
	return crypto.Keccak256Hash(data)
}
