// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package routehub

import (
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/routehubproject/routehub-core/pkg/log"
)

var _heartbeatMtc = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "routehub_heartbeat_status",
		Help: "Node heartbeat status.",
	},
	[]string{"status_type", "source"},
)

func init() {
	prometheus.MustRegister(_heartbeatMtc)
}

// HeartbeatHandler is the handler to periodically log the system key metrics
type HeartbeatHandler struct {
	s *Server
}

// NewHeartbeatHandler instantiates a HeartbeatHandler instance
func NewHeartbeatHandler(s *Server) *HeartbeatHandler {
	return &HeartbeatHandler{s: s}
}

// Log executes the logging logic
func (h *HeartbeatHandler) Log() {
	paused, err := h.s.hub.Paused()
	if err != nil {
		log.L().Error("Failed to read the pause flag.", zap.Error(err))
		return
	}
	numGoroutines := runtime.NumGoroutine()
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	log.L().Info("Node status.",
		zap.Int("numGoroutines", numGoroutines),
		zap.Uint64("heapAllocBytes", mem.HeapAlloc),
		zap.Bool("paused", paused),
		zap.Bool("settlementMode", h.s.hub.SettlementMode()))

	_heartbeatMtc.WithLabelValues("numGoroutines", "node").Set(float64(numGoroutines))
	_heartbeatMtc.WithLabelValues("heapAllocBytes", "node").Set(float64(mem.HeapAlloc))
	pausedStatus := 0.0
	if paused {
		pausedStatus = 1.0
	}
	_heartbeatMtc.WithLabelValues("paused", "node").Set(pausedStatus)
}
