// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package config

import (
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	uconfig "go.uber.org/config"
	"go.uber.org/zap"

	"github.com/routehubproject/routehub-core/api"
	"github.com/routehubproject/routehub-core/db"
	"github.com/routehubproject/routehub-core/hub"
	"github.com/routehubproject/routehub-core/pkg/log"
	"github.com/routehubproject/routehub-core/request"
)

// IMPORTANT: to define a config, add a field or a new config type to the existing config types. In addition, provide
// the default value in Default var.

var (
	// Default is the default config
	Default = Config{
		Owner: "",
		Hub:   hub.DefaultConfig,
		API:   api.DefaultConfig,
		System: System{
			Active:            true,
			HeartbeatInterval: 10 * time.Second,
			HTTPStatsPort:     8080,
			HTTPAdminPort:     9009,
		},
		DB: db.Config{
			DbPath:     "/var/data/hub.db",
			NumRetries: 3,
		},
		SubLogs: make(map[string]log.GlobalConfig),
	}

	// ErrInvalidCfg indicates the invalid config value
	ErrInvalidCfg = errors.New("invalid config value")

	// Validates is the collection config validation functions
	Validates = []Validate{
		ValidateOwner,
		ValidateHub,
		ValidateAPI,
	}
)

type (
	// System is the system config
	System struct {
		// Active is the status of the node. True means active and false means stand-by
		Active            bool          `yaml:"active"`
		HeartbeatInterval time.Duration `yaml:"heartbeatInterval"`
		// HTTPAdminPort is the port number to access the admin endpoints. It is 0 by default, meaning the admin
		// endpoints have been disabled
		HTTPAdminPort int `yaml:"httpAdminPort"`
		HTTPStatsPort int `yaml:"httpStatsPort"`
	}

	// Config is the root config struct, each package's config should be put as its sub struct
	Config struct {
		// Owner is the hex address holding the owner role of the hub
		Owner   string                      `yaml:"owner"`
		Hub     hub.Config                  `yaml:"hub"`
		API     api.Config                  `yaml:"api"`
		System  System                      `yaml:"system"`
		DB      db.Config                   `yaml:"db"`
		Log     log.GlobalConfig            `yaml:"log"`
		SubLogs map[string]log.GlobalConfig `yaml:"subLogs"`
	}

	// Validate is the interface of validating the config
	Validate func(Config) error
)

// New creates a config instance. It first loads the default configs. If the config path is not empty, it will read from
// the file and override the default configs. By default, it will apply all validation functions. To bypass validation,
// use DoNotValidate instead.
func New(configPaths []string, validates ...Validate) (Config, error) {
	opts := make([]uconfig.YAMLOption, 0)
	opts = append(opts, uconfig.Static(Default))
	opts = append(opts, uconfig.Expand(os.LookupEnv))
	for _, path := range configPaths {
		if path != "" {
			opts = append(opts, uconfig.File(path))
		}
	}
	yaml, err := uconfig.NewYAML(opts...)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to init config")
	}

	var cfg Config
	if err := yaml.Get(uconfig.Root).Populate(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to unmarshal YAML config to struct")
	}

	// By default, the config needs to pass all the validation
	if len(validates) == 0 {
		validates = Validates
	}
	for _, validate := range validates {
		if err := validate(cfg); err != nil {
			return Config{}, errors.Wrap(err, "failed to validate config")
		}
	}
	return cfg, nil
}

// OwnerAddress returns the configured owner address
func (cfg Config) OwnerAddress() common.Address {
	if !common.IsHexAddress(cfg.Owner) {
		log.L().Panic(
			"Error when parsing owner address",
			zap.String("owner", cfg.Owner),
		)
	}
	return common.HexToAddress(cfg.Owner)
}

// ValidateOwner validates the owner address
func ValidateOwner(cfg Config) error {
	if cfg.Owner == "" {
		return errors.Wrap(ErrInvalidCfg, "owner address is empty")
	}
	if !common.IsHexAddress(cfg.Owner) {
		return errors.Wrapf(ErrInvalidCfg, "owner address %s is not a hex address", cfg.Owner)
	}
	return nil
}

// ValidateHub validates the hub configs
func ValidateHub(cfg Config) error {
	if !request.ChainID(cfg.Hub.OwnChainID).Valid() {
		return errors.Wrapf(ErrInvalidCfg, "own chain id %d is out of range", cfg.Hub.OwnChainID)
	}
	if !request.ChainID(cfg.Hub.L1ChainID).Valid() {
		return errors.Wrapf(ErrInvalidCfg, "L1 chain id %d is out of range", cfg.Hub.L1ChainID)
	}
	if cfg.Hub.EventBufferSize == 0 {
		return errors.Wrap(ErrInvalidCfg, "event buffer size should be greater than 0")
	}
	return nil
}

// ValidateAPI validates the api configs
func ValidateAPI(cfg Config) error {
	if cfg.API.HTTPPort < 0 || cfg.API.HTTPPort > 65535 {
		return errors.Wrapf(ErrInvalidCfg, "http port %d is invalid", cfg.API.HTTPPort)
	}
	if cfg.API.WebSocketPort < 0 || cfg.API.WebSocketPort > 65535 {
		return errors.Wrapf(ErrInvalidCfg, "websocket port %d is invalid", cfg.API.WebSocketPort)
	}
	if cfg.API.BatchRequestLimit < 0 {
		return errors.Wrap(ErrInvalidCfg, "batch request limit should not be less than 0")
	}
	if cfg.API.ListenerLimit <= 0 {
		return errors.Wrap(ErrInvalidCfg, "listener limit should be greater than 0")
	}
	return nil
}

// DoNotValidate validates the given config
func DoNotValidate(cfg Config) error { return nil }
