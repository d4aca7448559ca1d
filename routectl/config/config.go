// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Package config manages routectl's persistent client settings.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// _configDir is resolved once at startup, ROUTECTL_HOME overrides the default
var _configDir = func() string {
	if dir := os.Getenv("ROUTECTL_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".routectl"
	}
	return filepath.Join(home, ".config", "routectl")
}()

const (
	_configFileName = "config.yaml"
	// DefaultEndpoint is the hub endpoint used until one is configured
	DefaultEndpoint = "http://localhost:15014"
)

// Config is the persistent client configuration
type Config struct {
	// Endpoint is the hub's JSON-RPC address
	Endpoint string `yaml:"endpoint"`
	// Account is the address mutating calls are sent from
	Account string `yaml:"account"`
}

// ConfigPath returns the path of the config file
func ConfigPath() string {
	return filepath.Join(_configDir, _configFileName)
}

// ReadConfig loads the config file, falling back to defaults when it does not exist
func ReadConfig() (Config, error) {
	cfg := Config{Endpoint: DefaultEndpoint}
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(err, "failed to read the config file")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "failed to parse the config file")
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	return cfg, nil
}

// WriteConfig persists the config, creating the config dir on first use
func WriteConfig(cfg Config) error {
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal the config")
	}
	if err := os.MkdirAll(_configDir, 0700); err != nil {
		return errors.Wrap(err, "failed to create the config directory")
	}
	if err := os.WriteFile(ConfigPath(), data, 0600); err != nil {
		return errors.Wrap(err, "failed to write the config file")
	}
	return nil
}

// NewConfigCmd represents the config command
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Get and set routectl settings",
	}
	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())
	return cmd
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get (endpoint|account|all)",
		Short: "Show a routectl setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := ReadConfig()
			if err != nil {
				return err
			}
			switch args[0] {
			case "endpoint":
				cmd.Println(cfg.Endpoint)
			case "account":
				cmd.Println(cfg.Account)
			case "all":
				cmd.Println("endpoint:", cfg.Endpoint)
				cmd.Println("account:", cfg.Account)
			default:
				return errors.Errorf("unknown setting %s", args[0])
			}
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set (endpoint|account) VALUE",
		Short: "Change a routectl setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := ReadConfig()
			if err != nil {
				return err
			}
			switch args[0] {
			case "endpoint":
				cfg.Endpoint = args[1]
			case "account":
				cfg.Account = args[1]
			default:
				return errors.Errorf("unknown setting %s", args[0])
			}
			if err := WriteConfig(cfg); err != nil {
				return err
			}
			cmd.Printf("%s is set to %s\n", args[0], args[1])
			return nil
		},
	}
}
