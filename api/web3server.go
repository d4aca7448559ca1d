// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package api

import (
	"context"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/routehubproject/routehub-core/hub"
	"github.com/routehubproject/routehub-core/pkg/log"
	"github.com/routehubproject/routehub-core/pkg/version"
	"github.com/routehubproject/routehub-core/request"
)

const _defaultBatchRequestLimit = 100

type (
	// HubService is the hub surface served over JSON-RPC. *hub.Hub satisfies it
	HubService interface {
		OwnChainID() request.ChainID
		SettlementMode() bool
		Owner() common.Address
		RegisterAuthority(context.Context, common.Address) error
		DeregisterAuthority(context.Context, common.Address) error
		RegisterToken(context.Context, common.Address) error
		CreateChain(context.Context, request.ChainID, common.Address, common.Address, common.Address, []byte) (request.ChainID, error)
		RequestDirect(context.Context, *request.Direct) (common.Hash, error)
		RequestTwoBridges(context.Context, *request.TwoBridges) (common.Hash, error)
		StartMigration(context.Context, *request.Direct, request.ChainID, common.Address, []byte) ([]byte, error)
		ForwardTransaction(context.Context, request.ChainID, *request.L2Transaction) (common.Hash, error)
		RegisterSettlementLayer(context.Context, request.ChainID, bool) error
		RegisterCounterpart(context.Context, request.ChainID, common.Address) error
		SetPendingAdmin(context.Context, common.Address) error
		AcceptAdmin(context.Context) error
		Pause(context.Context) error
		Unpause(context.Context) error
		ExecutionDomain(request.ChainID) (common.Address, error)
		Chain(request.ChainID) (*hub.ChainRecord, error)
		BaseToken(request.ChainID) (common.Address, error)
		SettlementLayer(request.ChainID) (request.ChainID, error)
		Admin() (common.Address, error)
		PendingAdmin() (common.Address, error)
		Paused() (bool, error)
		ProveMessageInclusion(request.ChainID, uint64, uint64, request.Message, []common.Hash) (bool, error)
		ProveLogInclusion(request.ChainID, uint64, uint64, request.Log, []common.Hash) (bool, error)
		ProveTransactionStatus(request.ChainID, common.Hash, uint64, uint64, uint16, []common.Hash, request.TxStatus) (bool, error)
		EstimateBaseCost(request.ChainID, *big.Int, uint64, uint64) (*big.Int, error)
		AddEventListener(hub.EventSubscriber) error
		RemoveEventListener(hub.EventSubscriber) error
	}

	// Web3Handler handles web3 requests
	Web3Handler interface {
		HandlePOSTReq(context.Context, io.Reader, Web3ResponseWriter) error
	}

	web3Handler struct {
		svc               HubService
		listener          Listener
		batchRequestLimit int
	}
)

var (
	errUnkownType     = errors.New("wrong type of params")
	errInvalidFormat  = errors.New("invalid format of request")
	errMethodNotFound = errors.New("method not found")

	_web3ServerMtc = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "routehub_web3_api_metrics",
			Help: "web3 api metrics.",
		},
		[]string{"method"},
	)
)

func init() {
	prometheus.MustRegister(_web3ServerMtc)
}

// NewWeb3Handler creates a handler to process web3 requests
func NewWeb3Handler(svc HubService, listener Listener, batchRequestLimit int) Web3Handler {
	if batchRequestLimit <= 0 {
		batchRequestLimit = _defaultBatchRequestLimit
	}
	return &web3Handler{
		svc:               svc,
		listener:          listener,
		batchRequestLimit: batchRequestLimit,
	}
}

// HandlePOSTReq handles a web3 request, a single one or a batch
func (svr *web3Handler) HandlePOSTReq(ctx context.Context, reader io.Reader, writer Web3ResponseWriter) error {
	web3Reqs, err := parseWeb3Reqs(reader)
	if err != nil {
		err := errors.Wrap(err, "failed to parse web3 requests.")
		_, err = writer.Write(&web3Response{err: err})
		return err
	}
	if !web3Reqs.IsArray() {
		return svr.handleWeb3Req(ctx, &web3Reqs, writer)
	}
	web3ReqArr := web3Reqs.Array()
	if len(web3ReqArr) > svr.batchRequestLimit {
		err := errors.Errorf("batch size %d exceeds the limit %d", len(web3ReqArr), svr.batchRequestLimit)
		_, err = writer.Write(&web3Response{err: err})
		return err
	}
	batchWriter := NewBatchWriter(writer)
	for i := range web3ReqArr {
		if err := svr.handleWeb3Req(ctx, &web3ReqArr[i], batchWriter); err != nil {
			return err
		}
	}
	return batchWriter.Flush()
}

func (svr *web3Handler) handleWeb3Req(ctx context.Context, web3Req *gjson.Result, writer Web3ResponseWriter) error {
	var (
		res    interface{}
		err    error
		method = web3Req.Get("method").String()
	)
	_web3ServerMtc.WithLabelValues(method).Inc()
	log.Logger("api").Debug("handleWeb3Req", zap.String("method", method))
	switch method {
	case "hub_clientVersion":
		res = version.PackageVersion + "/" + version.GoVersion
	case "hub_chainId":
		res = uint64ToHex(uint64(svr.svc.OwnChainID()))
	case "hub_settlementMode":
		res = svr.svc.SettlementMode()
	case "hub_owner":
		res = svr.svc.Owner()
	case "hub_registerAuthority":
		res, err = svr.registerAuthority(ctx, web3Req)
	case "hub_deregisterAuthority":
		res, err = svr.deregisterAuthority(ctx, web3Req)
	case "hub_registerToken":
		res, err = svr.registerToken(ctx, web3Req)
	case "hub_createChain":
		res, err = svr.createChain(ctx, web3Req)
	case "hub_requestDirect":
		res, err = svr.requestDirect(ctx, web3Req)
	case "hub_requestTwoBridges":
		res, err = svr.requestTwoBridges(ctx, web3Req)
	case "hub_startMigration":
		res, err = svr.startMigration(ctx, web3Req)
	case "hub_forwardTransaction":
		res, err = svr.forwardTransaction(ctx, web3Req)
	case "hub_registerSettlementLayer":
		res, err = svr.registerSettlementLayer(ctx, web3Req)
	case "hub_registerCounterpart":
		res, err = svr.registerCounterpart(ctx, web3Req)
	case "hub_setPendingAdmin":
		res, err = svr.setPendingAdmin(ctx, web3Req)
	case "hub_acceptAdmin":
		res, err = svr.acceptAdmin(ctx, web3Req)
	case "hub_pause":
		res, err = svr.pause(ctx, web3Req)
	case "hub_unpause":
		res, err = svr.unpause(ctx, web3Req)
	case "hub_executionDomain":
		res, err = svr.executionDomain(web3Req)
	case "hub_chain":
		res, err = svr.chain(web3Req)
	case "hub_baseToken":
		res, err = svr.baseToken(web3Req)
	case "hub_settlementLayer":
		res, err = svr.settlementLayer(web3Req)
	case "hub_admin":
		res, err = svr.admin()
	case "hub_pendingAdmin":
		res, err = svr.pendingAdmin()
	case "hub_paused":
		res, err = svr.paused()
	case "hub_proveMessageInclusion":
		res, err = svr.proveMessageInclusion(web3Req)
	case "hub_proveLogInclusion":
		res, err = svr.proveLogInclusion(web3Req)
	case "hub_proveTransactionStatus":
		res, err = svr.proveTransactionStatus(web3Req)
	case "hub_estimateBaseCost":
		res, err = svr.estimateBaseCost(web3Req)
	case "hub_subscribe":
		sc, ok := streamFromContext(ctx)
		if !ok {
			res, err = nil, errors.Wrap(errInvalidFormat, "subscription is only supported on websocket")
			break
		}
		res, err = svr.subscribe(sc, web3Req, writer)
	case "hub_unsubscribe":
		res, err = svr.unsubscribe(ctx, web3Req)
	default:
		res, err = nil, errors.Wrapf(errMethodNotFound, "method = %s", method)
	}
	if err != nil {
		log.Logger("api").Debug("web3server", zap.String("method", method), zap.Error(err))
	}
	_, writeErr := writer.Write(&web3Response{
		id:     int(web3Req.Get("id").Int()),
		result: res,
		err:    err,
	})
	return writeErr
}

func parseWeb3Reqs(reader io.Reader) (gjson.Result, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return gjson.Result{}, err
	}
	if !gjson.Valid(string(data)) {
		return gjson.Result{}, errors.New("request json format is not valid")
	}
	ret := gjson.Parse(string(data))
	// a request without id or method cannot be answered
	for _, req := range ret.Array() {
		id := req.Get("id")
		method := req.Get("method")
		if !id.Exists() || !method.Exists() {
			return gjson.Result{}, errors.New("request field is incomplete")
		}
	}
	return ret, nil
}

func (svr *web3Handler) registerAuthority(ctx context.Context, in *gjson.Result) (interface{}, error) {
	obj := in.Get("params.0")
	if !obj.Exists() {
		return nil, errInvalidFormat
	}
	callCtx, err := callContext(ctx, &obj)
	if err != nil {
		return nil, err
	}
	addr, err := parseAddress(obj.Get("authority"))
	if err != nil {
		return nil, err
	}
	if err := svr.svc.RegisterAuthority(callCtx, addr); err != nil {
		return nil, err
	}
	return true, nil
}

func (svr *web3Handler) deregisterAuthority(ctx context.Context, in *gjson.Result) (interface{}, error) {
	obj := in.Get("params.0")
	if !obj.Exists() {
		return nil, errInvalidFormat
	}
	callCtx, err := callContext(ctx, &obj)
	if err != nil {
		return nil, err
	}
	addr, err := parseAddress(obj.Get("authority"))
	if err != nil {
		return nil, err
	}
	if err := svr.svc.DeregisterAuthority(callCtx, addr); err != nil {
		return nil, err
	}
	return true, nil
}

func (svr *web3Handler) registerToken(ctx context.Context, in *gjson.Result) (interface{}, error) {
	obj := in.Get("params.0")
	if !obj.Exists() {
		return nil, errInvalidFormat
	}
	callCtx, err := callContext(ctx, &obj)
	if err != nil {
		return nil, err
	}
	addr, err := parseAddress(obj.Get("token"))
	if err != nil {
		return nil, err
	}
	if err := svr.svc.RegisterToken(callCtx, addr); err != nil {
		return nil, err
	}
	return true, nil
}

func (svr *web3Handler) createChain(ctx context.Context, in *gjson.Result) (interface{}, error) {
	obj := in.Get("params.0")
	if !obj.Exists() {
		return nil, errInvalidFormat
	}
	callCtx, err := callContext(ctx, &obj)
	if err != nil {
		return nil, err
	}
	chainID, err := parseChainID(obj.Get("chainId"))
	if err != nil {
		return nil, err
	}
	authority, err := parseAddress(obj.Get("authority"))
	if err != nil {
		return nil, err
	}
	baseToken, err := parseAddress(obj.Get("baseToken"))
	if err != nil {
		return nil, err
	}
	admin, err := parseAddress(obj.Get("admin"))
	if err != nil {
		return nil, err
	}
	initData, err := parseBytes(obj.Get("initData"))
	if err != nil {
		return nil, err
	}
	id, err := svr.svc.CreateChain(callCtx, chainID, authority, baseToken, admin, initData)
	if err != nil {
		return nil, err
	}
	return uint64ToHex(uint64(id)), nil
}

func (svr *web3Handler) requestDirect(ctx context.Context, in *gjson.Result) (interface{}, error) {
	obj := in.Get("params.0")
	if !obj.Exists() {
		return nil, errInvalidFormat
	}
	callCtx, err := callContext(ctx, &obj)
	if err != nil {
		return nil, err
	}
	req, err := parseDirect(&obj)
	if err != nil {
		return nil, err
	}
	txHash, err := svr.svc.RequestDirect(callCtx, req)
	if err != nil {
		return nil, err
	}
	return txHash, nil
}

func (svr *web3Handler) requestTwoBridges(ctx context.Context, in *gjson.Result) (interface{}, error) {
	obj := in.Get("params.0")
	if !obj.Exists() {
		return nil, errInvalidFormat
	}
	callCtx, err := callContext(ctx, &obj)
	if err != nil {
		return nil, err
	}
	chainID, err := parseChainID(obj.Get("chainId"))
	if err != nil {
		return nil, err
	}
	mintValue, err := parseBig(obj.Get("mintValue"))
	if err != nil {
		return nil, err
	}
	l2Value, err := parseBig(obj.Get("l2Value"))
	if err != nil {
		return nil, err
	}
	refund, err := parseOptionalAddress(obj.Get("refundRecipient"))
	if err != nil {
		return nil, err
	}
	bridgeAddr, err := parseAddress(obj.Get("secondBridgeAddress"))
	if err != nil {
		return nil, err
	}
	bridgeValue, err := parseBig(obj.Get("secondBridgeValue"))
	if err != nil {
		return nil, err
	}
	bridgeCalldata, err := parseBytes(obj.Get("secondBridgeCalldata"))
	if err != nil {
		return nil, err
	}
	txHash, err := svr.svc.RequestTwoBridges(callCtx, &request.TwoBridges{
		ChainID:              chainID,
		MintValue:            mintValue,
		L2Value:              l2Value,
		L2GasLimit:           obj.Get("l2GasLimit").Uint(),
		L2GasPerPubdataLimit: obj.Get("l2GasPerPubdataLimit").Uint(),
		RefundRecipient:      refund,
		SecondBridgeAddress:  bridgeAddr,
		SecondBridgeValue:    bridgeValue,
		SecondBridgeCalldata: bridgeCalldata,
	})
	if err != nil {
		return nil, err
	}
	return txHash, nil
}

func (svr *web3Handler) startMigration(ctx context.Context, in *gjson.Result) (interface{}, error) {
	obj := in.Get("params.0")
	if !obj.Exists() {
		return nil, errInvalidFormat
	}
	callCtx, err := callContext(ctx, &obj)
	if err != nil {
		return nil, err
	}
	migrating, err := parseChainID(obj.Get("migratingChainId"))
	if err != nil {
		return nil, err
	}
	newAdmin, err := parseAddress(obj.Get("newAdmin"))
	if err != nil {
		return nil, err
	}
	cutData, err := parseBytes(obj.Get("cutData"))
	if err != nil {
		return nil, err
	}
	req, err := parseDirect(&obj)
	if err != nil {
		return nil, err
	}
	mintData, err := svr.svc.StartMigration(callCtx, req, migrating, newAdmin, cutData)
	if err != nil {
		return nil, err
	}
	return bytesToHex(mintData), nil
}

func (svr *web3Handler) forwardTransaction(ctx context.Context, in *gjson.Result) (interface{}, error) {
	chainID, err := parseChainID(in.Get("params.0"))
	if err != nil {
		return nil, err
	}
	obj := in.Get("params.1")
	if !obj.Exists() {
		return nil, errInvalidFormat
	}
	tx, err := parseL2Transaction(&obj)
	if err != nil {
		return nil, err
	}
	txHash, err := svr.svc.ForwardTransaction(ctx, chainID, tx)
	if err != nil {
		return nil, err
	}
	return txHash, nil
}

func (svr *web3Handler) registerSettlementLayer(ctx context.Context, in *gjson.Result) (interface{}, error) {
	obj := in.Get("params.0")
	if !obj.Exists() {
		return nil, errInvalidFormat
	}
	callCtx, err := callContext(ctx, &obj)
	if err != nil {
		return nil, err
	}
	chainID, err := parseChainID(obj.Get("chainId"))
	if err != nil {
		return nil, err
	}
	whitelisted := obj.Get("whitelisted")
	if !whitelisted.Exists() {
		return nil, errors.Wrap(errInvalidFormat, "missing whitelisted field")
	}
	if err := svr.svc.RegisterSettlementLayer(callCtx, chainID, whitelisted.Bool()); err != nil {
		return nil, err
	}
	return true, nil
}

func (svr *web3Handler) registerCounterpart(ctx context.Context, in *gjson.Result) (interface{}, error) {
	obj := in.Get("params.0")
	if !obj.Exists() {
		return nil, errInvalidFormat
	}
	callCtx, err := callContext(ctx, &obj)
	if err != nil {
		return nil, err
	}
	chainID, err := parseChainID(obj.Get("chainId"))
	if err != nil {
		return nil, err
	}
	counterpart, err := parseAddress(obj.Get("counterpart"))
	if err != nil {
		return nil, err
	}
	if err := svr.svc.RegisterCounterpart(callCtx, chainID, counterpart); err != nil {
		return nil, err
	}
	return true, nil
}

func (svr *web3Handler) setPendingAdmin(ctx context.Context, in *gjson.Result) (interface{}, error) {
	obj := in.Get("params.0")
	if !obj.Exists() {
		return nil, errInvalidFormat
	}
	callCtx, err := callContext(ctx, &obj)
	if err != nil {
		return nil, err
	}
	pending, err := parseOptionalAddress(obj.Get("pendingAdmin"))
	if err != nil {
		return nil, err
	}
	if err := svr.svc.SetPendingAdmin(callCtx, pending); err != nil {
		return nil, err
	}
	return true, nil
}

func (svr *web3Handler) acceptAdmin(ctx context.Context, in *gjson.Result) (interface{}, error) {
	obj := in.Get("params.0")
	if !obj.Exists() {
		return nil, errInvalidFormat
	}
	callCtx, err := callContext(ctx, &obj)
	if err != nil {
		return nil, err
	}
	if err := svr.svc.AcceptAdmin(callCtx); err != nil {
		return nil, err
	}
	return true, nil
}

func (svr *web3Handler) pause(ctx context.Context, in *gjson.Result) (interface{}, error) {
	obj := in.Get("params.0")
	if !obj.Exists() {
		return nil, errInvalidFormat
	}
	callCtx, err := callContext(ctx, &obj)
	if err != nil {
		return nil, err
	}
	if err := svr.svc.Pause(callCtx); err != nil {
		return nil, err
	}
	return true, nil
}

func (svr *web3Handler) unpause(ctx context.Context, in *gjson.Result) (interface{}, error) {
	obj := in.Get("params.0")
	if !obj.Exists() {
		return nil, errInvalidFormat
	}
	callCtx, err := callContext(ctx, &obj)
	if err != nil {
		return nil, err
	}
	if err := svr.svc.Unpause(callCtx); err != nil {
		return nil, err
	}
	return true, nil
}

func (svr *web3Handler) executionDomain(in *gjson.Result) (interface{}, error) {
	chainID, err := parseChainID(in.Get("params.0"))
	if err != nil {
		return nil, err
	}
	addr, err := svr.svc.ExecutionDomain(chainID)
	if err != nil {
		return nil, err
	}
	return addr, nil
}

func (svr *web3Handler) chain(in *gjson.Result) (interface{}, error) {
	chainID, err := parseChainID(in.Get("params.0"))
	if err != nil {
		return nil, err
	}
	rec, err := svr.svc.Chain(chainID)
	if err != nil {
		return nil, err
	}
	return &chainObject{rec}, nil
}

func (svr *web3Handler) baseToken(in *gjson.Result) (interface{}, error) {
	chainID, err := parseChainID(in.Get("params.0"))
	if err != nil {
		return nil, err
	}
	addr, err := svr.svc.BaseToken(chainID)
	if err != nil {
		return nil, err
	}
	return addr, nil
}

func (svr *web3Handler) settlementLayer(in *gjson.Result) (interface{}, error) {
	chainID, err := parseChainID(in.Get("params.0"))
	if err != nil {
		return nil, err
	}
	layer, err := svr.svc.SettlementLayer(chainID)
	if err != nil {
		return nil, err
	}
	return uint64ToHex(uint64(layer)), nil
}

func (svr *web3Handler) admin() (interface{}, error) {
	addr, err := svr.svc.Admin()
	if err != nil {
		return nil, err
	}
	return addr, nil
}

func (svr *web3Handler) pendingAdmin() (interface{}, error) {
	addr, err := svr.svc.PendingAdmin()
	if err != nil {
		return nil, err
	}
	return addr, nil
}

func (svr *web3Handler) paused() (interface{}, error) {
	paused, err := svr.svc.Paused()
	if err != nil {
		return nil, err
	}
	return paused, nil
}

func (svr *web3Handler) proveMessageInclusion(in *gjson.Result) (interface{}, error) {
	chainID, err := parseChainID(in.Get("params.0"))
	if err != nil {
		return nil, err
	}
	obj := in.Get("params.3")
	if !obj.Exists() {
		return nil, errInvalidFormat
	}
	sender, err := parseAddress(obj.Get("sender"))
	if err != nil {
		return nil, err
	}
	data, err := parseBytes(obj.Get("data"))
	if err != nil {
		return nil, err
	}
	proof, err := parseHashes(in.Get("params.4"))
	if err != nil {
		return nil, err
	}
	return svr.svc.ProveMessageInclusion(
		chainID,
		in.Get("params.1").Uint(),
		in.Get("params.2").Uint(),
		request.Message{
			TxNumberInBatch: uint16(obj.Get("txNumberInBatch").Uint()),
			Sender:          sender,
			Data:            data,
		},
		proof,
	)
}

func (svr *web3Handler) proveLogInclusion(in *gjson.Result) (interface{}, error) {
	chainID, err := parseChainID(in.Get("params.0"))
	if err != nil {
		return nil, err
	}
	obj := in.Get("params.3")
	if !obj.Exists() {
		return nil, errInvalidFormat
	}
	sender, err := parseAddress(obj.Get("sender"))
	if err != nil {
		return nil, err
	}
	key, err := parseHash(obj.Get("key"))
	if err != nil {
		return nil, err
	}
	value, err := parseHash(obj.Get("value"))
	if err != nil {
		return nil, err
	}
	proof, err := parseHashes(in.Get("params.4"))
	if err != nil {
		return nil, err
	}
	return svr.svc.ProveLogInclusion(
		chainID,
		in.Get("params.1").Uint(),
		in.Get("params.2").Uint(),
		request.Log{
			ShardID:         uint8(obj.Get("shardId").Uint()),
			IsService:       obj.Get("isService").Bool(),
			TxNumberInBatch: uint16(obj.Get("txNumberInBatch").Uint()),
			Sender:          sender,
			Key:             key,
			Value:           value,
		},
		proof,
	)
}

func (svr *web3Handler) proveTransactionStatus(in *gjson.Result) (interface{}, error) {
	chainID, err := parseChainID(in.Get("params.0"))
	if err != nil {
		return nil, err
	}
	txHash, err := parseHash(in.Get("params.1"))
	if err != nil {
		return nil, err
	}
	proof, err := parseHashes(in.Get("params.5"))
	if err != nil {
		return nil, err
	}
	return svr.svc.ProveTransactionStatus(
		chainID,
		txHash,
		in.Get("params.2").Uint(),
		in.Get("params.3").Uint(),
		uint16(in.Get("params.4").Uint()),
		proof,
		request.TxStatus(in.Get("params.6").Uint()),
	)
}

func (svr *web3Handler) estimateBaseCost(in *gjson.Result) (interface{}, error) {
	chainID, err := parseChainID(in.Get("params.0"))
	if err != nil {
		return nil, err
	}
	gasPrice, err := parseBig(in.Get("params.1"))
	if err != nil {
		return nil, err
	}
	cost, err := svr.svc.EstimateBaseCost(chainID, gasPrice, in.Get("params.2").Uint(), in.Get("params.3").Uint())
	if err != nil {
		return nil, err
	}
	return bigToHex(cost), nil
}

func (svr *web3Handler) subscribe(sc *streamContext, in *gjson.Result, writer Web3ResponseWriter) (interface{}, error) {
	subscription := in.Get("params.0")
	if !subscription.Exists() {
		return nil, errInvalidFormat
	}
	if subscription.String() != "events" {
		return nil, errors.Wrapf(errInvalidFormat, "subscription type %s is not supported", subscription.String())
	}
	id, err := svr.listener.AddResponder(newEventResponder(writer))
	if err != nil {
		return nil, err
	}
	sc.addSubscription(id)
	return id, nil
}

func (svr *web3Handler) unsubscribe(ctx context.Context, in *gjson.Result) (interface{}, error) {
	id := in.Get("params.0")
	if !id.Exists() {
		return nil, errInvalidFormat
	}
	if sc, ok := streamFromContext(ctx); ok {
		sc.dropSubscription(id.String())
	}
	return svr.listener.RemoveResponder(id.String())
}
