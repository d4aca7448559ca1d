// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package api

// Config is the api service config
type Config struct {
	HTTPPort      int `yaml:"httpPort"`
	WebSocketPort int `yaml:"webSocketPort"`
	// BatchRequestLimit is the maximum number of requests in a batch.
	BatchRequestLimit int `yaml:"batchRequestLimit"`
	// WebsocketRateLimit is the maximum number of messages per second per client.
	WebsocketRateLimit int `yaml:"websocketRateLimit"`
	// ListenerLimit is the maximum number of event listeners.
	ListenerLimit int `yaml:"listenerLimit"`
}

// DefaultConfig is the default config
var DefaultConfig = Config{
	HTTPPort:           15014,
	WebSocketPort:      16014,
	BatchRequestLimit:  _defaultBatchRequestLimit,
	WebsocketRateLimit: 5,
	ListenerLimit:      5000,
}
