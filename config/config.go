// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package config loads the engine's runtime configuration the way the
// teacher's root config.go loads shard.yaml: layered defaults, then an
// optional YAML file, then CLI flags via github.com/jessevdk/go-flags.
package config

import (
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"gitlab.com/jaxnet/xchainproof/corelog"
	"gitlab.com/jaxnet/xchainproof/crosschain"
)

const defaultConfigFilename = "xcproof.yaml"

// Config is the crosschain engine's runtime configuration.
type Config struct {
	// DataDir names a directory for the notarisation store's badger
	// database. The xcproof CLI does not read it; it takes the badger
	// directory from its --store-dir flag.
	DataDir string `yaml:"data_dir" long:"data-dir" description:"directory holding the notarisation store"`
	// Symbol is this node's own assetchain symbol, used by ProveLocal
	// and NextBacknotarisation.
	Symbol string `yaml:"symbol" long:"symbol" description:"this chain's own assetchain symbol"`
	// ScanLimitBlocks overrides SCAN_LIMIT_BLOCKS (spec.md §6): the
	// bound on every notarisation scan. Zero means use the engine
	// default.
	ScanLimitBlocks int32 `yaml:"scan_limit_blocks" long:"scan-limit-blocks" description:"override for SCAN_LIMIT_BLOCKS"`

	Log corelog.Config `yaml:"log"`
}

// Default returns the configuration's zero-value-safe defaults.
func Default() Config {
	return Config{
		DataDir:         "data",
		ScanLimitBlocks: crosschain.DefaultScanLimitBlocks,
		Log:             corelog.Config{}.Default(),
	}
}

// Load layers a YAML file at path (if it exists) over the defaults, then
// parses CLI args over the result. A missing file is not an error, whether
// path is explicit or empty (the default filename); any other read error
// is.
func Load(path string, args []string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = defaultConfigFilename
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrap(err, "parsing config file")
		}
	} else if !os.IsNotExist(err) {
		return Config{}, errors.Wrap(err, "reading config file")
	}

	parser := flags.NewParser(&cfg, flags.IgnoreUnknown)
	if _, err := parser.ParseArgs(args); err != nil {
		return Config{}, errors.Wrap(err, "parsing command-line flags")
	}

	return cfg, nil
}
