// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package hub_test

import (
	"context"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/facebookgo/clock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/routehubproject/routehub-core/db"
	"github.com/routehubproject/routehub-core/hub"
	"github.com/routehubproject/routehub-core/request"
	"github.com/routehubproject/routehub-core/test/mock/mock_hub"
	"github.com/routehubproject/routehub-core/testutil"
)

var (
	_owner      = common.HexToAddress("0x28dbbc2a4a3a20eb95e300934bb561b4023a8909")
	_chainAdmin = common.HexToAddress("0x3a42aee0e1d6a811016c1782bff11b6dd9994cbf")
	_authority  = common.HexToAddress("0x62cef88729b97bca761f06bff7e65dd47285a04f")
	_erc20      = common.HexToAddress("0x9b1d87f0e0f9e39b380e0afab1fe0c8998c4c02b")
	_domAddr    = common.HexToAddress("0x7c13856f179fb80e2aab2e9a5aeda4dcbb59c27e")
	_bridgeAddr = common.HexToAddress("0x47e8e97bbc87bd925e813c9e8b80b604cdcf1e9e")
	_hubAddr    = common.HexToAddress("0x5127ff08ff9cb0f9a06fdedbbca791b580cda4e6")
	_custodyAcc = common.HexToAddress("0x8361ddf478f087a4e1e712629dbf92207b12d6f2")
	_depositor  = common.HexToAddress("0xd07d0b3c8c2f5e679eb2996f6cc39d8e53d1a373")
)

type testHub struct {
	ctrl      *gomock.Controller
	hub       *hub.Hub
	kv        db.KVStore
	directory *mock_hub.MockDirectory
	custodian *mock_hub.MockBaseTokenCustodian
	authority *mock_hub.MockAuthority
	domain    *mock_hub.MockExecutionDomain
	clk       *clock.Mock
}

func newTestHub(t *testing.T, cfg hub.Config) *testHub {
	ctrl := gomock.NewController(t)
	th := &testHub{
		ctrl:      ctrl,
		kv:        db.NewMemKVStore(),
		directory: mock_hub.NewMockDirectory(ctrl),
		custodian: mock_hub.NewMockBaseTokenCustodian(ctrl),
		authority: mock_hub.NewMockAuthority(ctrl),
		domain:    mock_hub.NewMockExecutionDomain(ctrl),
		clk:       clock.NewMock(),
	}
	th.hub = hub.New(cfg, _owner, th.kv, th.directory,
		hub.WithCustodian(th.custodian),
		hub.WithAddress(_hubAddr),
		hub.WithClock(th.clk),
	)
	require.NoError(t, th.hub.Start(context.Background()))
	t.Cleanup(func() {
		require.NoError(t, th.hub.Stop(context.Background()))
	})
	return th
}

// routing lets the registry resolve chains through the mock authority and
// execution domain without pinning call counts
func (th *testHub) routing() {
	th.directory.EXPECT().Authority(_authority).Return(th.authority, nil).AnyTimes()
	th.directory.EXPECT().ExecutionDomain(_domAddr).Return(th.domain, nil).AnyTimes()
	th.authority.EXPECT().ExecutionDomain(gomock.Any()).Return(_domAddr, nil).AnyTimes()
}

// createChain registers the authority and base token, then creates the chain
func (th *testHub) createChain(t *testing.T, id request.ChainID, baseToken common.Address) {
	ctx := asCaller(_owner, 0)
	require.NoError(t, th.hub.RegisterAuthority(ctx, _authority))
	require.NoError(t, th.hub.RegisterToken(ctx, baseToken))
	th.custodian.EXPECT().Address().Return(_custodyAcc)
	th.authority.EXPECT().CreateChain(gomock.Any(), id, baseToken, _custodyAcc, _chainAdmin, gomock.Any()).Return(nil)
	created, err := th.hub.CreateChain(ctx, id, _authority, baseToken, _chainAdmin, nil)
	require.NoError(t, err)
	require.Equal(t, id, created)
}

func asCaller(caller common.Address, value int64) context.Context {
	return hub.WithCallCtx(context.Background(), hub.CallCtx{Caller: caller, Value: big.NewInt(value)})
}

func TestHubStartStop(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	h := hub.New(hub.DefaultConfig, _owner, db.NewMemKVStore(), mock_hub.NewMockDirectory(ctrl))
	require.False(h.IsReady())
	require.NoError(h.Start(context.Background()))
	require.True(h.IsReady())
	require.Equal(_owner, h.Owner())
	require.Equal(request.ChainID(1), h.OwnChainID())
	require.False(h.SettlementMode())
	require.NoError(h.Stop(context.Background()))
	require.False(h.IsReady())
}

func TestHubScenario(t *testing.T) {
	require := require.New(t)
	th := newTestHub(t, hub.DefaultConfig)
	th.routing()
	ctx := asCaller(_owner, 0)

	require.NoError(th.hub.RegisterAuthority(ctx, _authority))
	require.NoError(th.hub.RegisterToken(ctx, request.NativeTokenAddress))

	th.custodian.EXPECT().Address().Return(_custodyAcc)
	th.authority.EXPECT().CreateChain(gomock.Any(), request.ChainID(7), request.NativeTokenAddress, _custodyAcc, _chainAdmin, []byte("genesis")).Return(nil)
	id, err := th.hub.CreateChain(ctx, 7, _authority, request.NativeTokenAddress, _chainAdmin, []byte("genesis"))
	require.NoError(err)
	require.Equal(request.ChainID(7), id)

	rec, err := th.hub.Chain(7)
	require.NoError(err)
	require.Equal(_authority, rec.Authority)
	require.Equal(request.NativeTokenAddress, rec.BaseToken)
	require.True(rec.Resident())

	th.directory.EXPECT().IsContract(_depositor).Return(false)
	th.custodian.EXPECT().DepositBaseToken(gomock.Any(), request.ChainID(7), _depositor, request.NativeTokenAddress, big.NewInt(100), big.NewInt(100)).Return(nil)
	th.domain.EXPECT().RequestTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx *request.L2Transaction) (common.Hash, error) {
			require.Equal(_depositor, tx.Sender)
			require.Equal(_depositor, tx.RefundRecipient)
			return tx.Hash()
		})
	txHash, err := th.hub.RequestDirect(asCaller(_depositor, 100), &request.Direct{
		ChainID:    7,
		MintValue:  big.NewInt(100),
		L2Contract: _erc20,
		L2Value:    big.NewInt(40),
		L2GasLimit: 300000,
	})
	require.NoError(err)
	require.NotEqual(common.Hash{}, txHash)
}

func TestHubReentrancyGuard(t *testing.T) {
	require := require.New(t)
	th := newTestHub(t, hub.DefaultConfig)
	th.routing()
	th.createChain(t, 3, request.NativeTokenAddress)

	req := &request.Direct{ChainID: 3, MintValue: big.NewInt(10)}
	th.directory.EXPECT().IsContract(_depositor).Return(false)
	// a custody callback reentering the hub must be rejected while the outer
	// deposit is in flight
	th.custodian.EXPECT().DepositBaseToken(gomock.Any(), request.ChainID(3), _depositor, request.NativeTokenAddress, big.NewInt(10), big.NewInt(10)).DoAndReturn(
		func(context.Context, request.ChainID, common.Address, common.Address, *big.Int, *big.Int) error {
			_, err := th.hub.RequestDirect(asCaller(_depositor, 10), req)
			require.Equal(hub.ErrReentrantCall, errors.Cause(err))
			return nil
		})
	th.domain.EXPECT().RequestTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx *request.L2Transaction) (common.Hash, error) {
			return tx.Hash()
		})
	_, err := th.hub.RequestDirect(asCaller(_depositor, 10), req)
	require.NoError(err)
}

type eventSink struct {
	mu     sync.Mutex
	events []*hub.Event
}

func (s *eventSink) ReceiveEvent(e *hub.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *eventSink) snapshot() []*hub.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*hub.Event(nil), s.events...)
}

func TestHubEvents(t *testing.T) {
	require := require.New(t)
	th := newTestHub(t, hub.DefaultConfig)
	th.clk.Add(15 * time.Minute)

	sink := &eventSink{}
	require.NoError(th.hub.AddEventListener(sink))
	ctx := asCaller(_owner, 0)
	require.NoError(th.hub.RegisterAuthority(ctx, _authority))
	require.NoError(th.hub.RegisterToken(ctx, _erc20))

	require.NoError(testutil.WaitUntil(10*time.Millisecond, 2*time.Second, func() (bool, error) {
		return len(sink.snapshot()) == 2, nil
	}))
	events := sink.snapshot()
	require.Equal(hub.EventAuthorityRegistered, events[0].Kind)
	require.Equal(_authority, events[0].Address)
	require.True(events[0].Timestamp.Equal(th.clk.Now()))
	require.Equal(hub.EventTokenRegistered, events[1].Kind)
	require.Equal(_erc20, events[1].Address)

	require.NoError(th.hub.RemoveEventListener(sink))
	require.NoError(th.hub.RegisterAuthority(ctx, _bridgeAddr))
	require.Len(sink.snapshot(), 2)
}
