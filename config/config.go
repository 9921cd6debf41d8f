// Copyright (c) 2019 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package config

import (
	"os"

	"github.com/pkg/errors"
	uconfig "go.uber.org/config"

	"github.com/iotexproject/iotex-checkpoint/blockchain/checkpoint"
	"github.com/iotexproject/iotex-checkpoint/db"
	"github.com/iotexproject/iotex-checkpoint/pkg/log"
)

// IMPORTANT: to define a config, add a field or a new config type to the existing config types. In addition, provide
// the default value in Default var.

var (
	// Default is the default config
	Default = Config{
		Network: "mainnet",
		Checkpoint: Checkpoint{
			SyncSpan: checkpoint.DefaultSyncSpan,
		},
		DB:      db.DefaultConfig,
		SubLogs: make(map[string]log.GlobalConfig),
		System: System{
			HTTPStatsPort: 8080,
		},
	}

	// ErrInvalidCfg indicates the invalid config value
	ErrInvalidCfg = errors.New("invalid config value")

	// Validates is the collection config validation functions
	Validates = []Validate{
		ValidateNetwork,
		ValidateCheckpoint,
		ValidateDB,
	}
)

type (
	// Checkpoint is the config struct for the checkpoint guard
	Checkpoint struct {
		// SyncSpan is how far the sync checkpoint trails the best tip
		SyncSpan uint64 `yaml:"syncSpan"`
		// RegistryFile holds the checkpoints of a custom network
		RegistryFile string `yaml:"registryFile"`
	}

	// System is the system config
	System struct {
		// HTTPStatsPort is the port number of the probe and metrics server, 0 disables it
		HTTPStatsPort int `yaml:"httpStatsPort"`
	}

	// Config is the root config struct, each package's config should be put as its sub struct
	Config struct {
		// Network is one of mainnet, testnet or custom
		Network    string                      `yaml:"network"`
		Checkpoint Checkpoint                  `yaml:"checkpoint"`
		DB         db.Config                   `yaml:"db"`
		System     System                      `yaml:"system"`
		Log        log.GlobalConfig            `yaml:"log"`
		SubLogs    map[string]log.GlobalConfig `yaml:"subLogs"`
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

// ActiveNetwork returns the network the node checks blocks against
func (cfg Config) ActiveNetwork() (checkpoint.Network, error) {
	n, err := checkpoint.ParseNetwork(cfg.Network)
	if err != nil {
		return 0, errors.Wrap(ErrInvalidCfg, err.Error())
	}
	return n, nil
}

// Registry returns the checkpoint registry of the active network
func (cfg Config) Registry() (*checkpoint.Registry, error) {
	n, err := cfg.ActiveNetwork()
	if err != nil {
		return nil, err
	}
	return checkpoint.RegistryFor(n, cfg.Checkpoint.RegistryFile)
}

// Guard builds the checkpoint guard of the active network
func (cfg Config) Guard() (*checkpoint.Guard, error) {
	reg, err := cfg.Registry()
	if err != nil {
		return nil, err
	}
	return checkpoint.NewGuard(reg, checkpoint.WithSyncSpan(cfg.Checkpoint.SyncSpan))
}

// ValidateNetwork validates the network name and the registry file it needs
func ValidateNetwork(cfg Config) error {
	n, err := cfg.ActiveNetwork()
	if err != nil {
		return err
	}
	if n == checkpoint.Custom && cfg.Checkpoint.RegistryFile == "" {
		return errors.Wrap(ErrInvalidCfg, "custom network requires checkpoint.registryFile")
	}
	return nil
}

// ValidateCheckpoint validates the checkpoint configs
func ValidateCheckpoint(cfg Config) error {
	if cfg.Checkpoint.SyncSpan == 0 {
		return errors.Wrap(ErrInvalidCfg, "sync span should be greater than 0")
	}
	return nil
}

// ValidateDB validates the db configs
func ValidateDB(cfg Config) error {
	if cfg.DB.DbPath == "" {
		return errors.Wrap(ErrInvalidCfg, "db path is empty")
	}
	switch cfg.DB.DBType {
	case db.DBBolt, db.DBPebble, "":
		return nil
	default:
		return errors.Wrapf(ErrInvalidCfg, "unsupported db type %s", cfg.DB.DBType)
	}
}

// DoNotValidate validates the given config
func DoNotValidate(cfg Config) error { return nil }
