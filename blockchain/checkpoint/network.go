// Copyright (c) 2025 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package checkpoint

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Networks
const (
	Mainnet Network = iota
	Testnet
	// Custom reads its checkpoints from a registry file
	Custom
)

// Network selects which registry is active
type Network int

// ErrUnknownNetwork indicates a network name that cannot be parsed
var ErrUnknownNetwork = errors.New("unknown network")

var (
	_mainnetRegistry = sync.OnceValues(func() (*Registry, error) {
		entries, err := parseRaw(_mainnetCheckpoints)
		if err != nil {
			return nil, err
		}
		return NewRegistry(entries)
	})
	_testnetRegistry = sync.OnceValues(func() (*Registry, error) {
		return NewRegistry(nil)
	})
)

// ParseNetwork parses a network name
func ParseNetwork(s string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mainnet":
		return Mainnet, nil
	case "testnet":
		return Testnet, nil
	case "custom":
		return Custom, nil
	default:
		return 0, errors.Wrapf(ErrUnknownNetwork, "%q", s)
	}
}

func (n Network) String() string {
	switch n {
	case Mainnet:
		return "mainnet"
	case Testnet:
		return "testnet"
	case Custom:
		return "custom"
	default:
		return "unknown"
	}
}

// RegistryFor returns the registry of network n. registryFile is only read for Custom.
func RegistryFor(n Network, registryFile string) (*Registry, error) {
	switch n {
	case Mainnet:
		return _mainnetRegistry()
	case Testnet:
		return _testnetRegistry()
	case Custom:
		if registryFile == "" {
			return nil, errors.New("custom network requires a registry file")
		}
		return LoadRegistryFile(registryFile)
	default:
		return nil, errors.Wrapf(ErrUnknownNetwork, "%d", n)
	}
}
