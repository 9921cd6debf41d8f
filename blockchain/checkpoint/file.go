// Copyright (c) 2025 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package checkpoint

import (
	"encoding/hex"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type (
	registryFile struct {
		Checkpoints []registryFileEntry `yaml:"checkpoints"`
	}

	registryFileEntry struct {
		Height uint64 `yaml:"height"`
		Hash   string `yaml:"hash"`
	}
)

// LoadRegistryFile reads a registry from a YAML file of the form
//
//	checkpoints:
//	  - height: 0
//	    hash: 0x0000ebc8...
func LoadRegistryFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read registry file %s", path)
	}
	return ParseRegistry(data)
}

// ParseRegistry parses the YAML registry format
func ParseRegistry(data []byte) (*Registry, error) {
	var f registryFile
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal registry")
	}
	raw := make([]rawCheckpoint, 0, len(f.Checkpoints))
	for _, e := range f.Checkpoints {
		raw = append(raw, rawCheckpoint{height: e.Height, hash: e.Hash})
	}
	entries, err := parseRaw(raw)
	if err != nil {
		return nil, err
	}
	return NewRegistry(entries)
}

// MarshalYAML encodes the registry in the format ParseRegistry reads
func (r *Registry) MarshalYAML() (interface{}, error) {
	f := registryFile{Checkpoints: make([]registryFileEntry, 0, len(r.entries))}
	for _, e := range r.entries {
		f.Checkpoints = append(f.Checkpoints, registryFileEntry{
			Height: e.Height,
			Hash:   "0x" + hex.EncodeToString(e.Hash[:]),
		})
	}
	return f, nil
}

// WriteRegistryFile writes the registry to path
func WriteRegistryFile(path string, r *Registry) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return errors.Wrap(err, "failed to marshal registry")
	}
	return os.WriteFile(path, data, 0644)
}
