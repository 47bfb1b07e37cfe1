// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"os"

	"github.com/pelletier/go-toml"

	"github.com/absmach/ate"
	"github.com/absmach/ate/pkg/errors"
)

const (
	defPAAddress  string = "localhost:7101"
	defEnableMTLS bool   = false
)

type remotes struct {
	PAAddress  string `toml:"pa_address"`
	EnableMTLS bool   `toml:"enable_mtls"`
}

type credentials struct {
	PEMRootCerts  string   `toml:"pem_root_certs"`
	PEMPrivateKey string   `toml:"pem_private_key"`
	PEMCertChain  string   `toml:"pem_cert_chain"`
	SKUTokens     []string `toml:"sku_tokens"`
}

type config struct {
	Remotes     remotes     `toml:"remotes"`
	Credentials credentials `toml:"credentials"`
	RawOutput   bool        `toml:"raw_output"`
}

// Readable by all user groups but writeable by the user only.
const filePermission = 0o644

var (
	errReadFail       = errors.New("failed to read config file")
	errWritingConfig  = errors.New("error in writing the updated config to file")
	defaultConfigPath = "./config.toml"
)

func read(file string) (config, error) {
	c := config{}
	data, err := os.Open(file)
	if err != nil {
		return c, errors.Wrap(errReadFail, err)
	}
	defer data.Close()

	buf, err := io.ReadAll(data)
	if err != nil {
		return c, errors.Wrap(errReadFail, err)
	}

	if err := toml.Unmarshal(buf, &c); err != nil {
		return config{}, err
	}

	return c, nil
}

// ParseConfig - parses the config file. PEM fields name files on disk;
// their contents are loaded into the returned options.
func ParseConfig(opts ate.Options) (ate.Options, error) {
	if ConfigPath == "" {
		ConfigPath = defaultConfigPath
	}

	_, err := os.Stat(ConfigPath)
	switch {
	// If the file does not exist, create it with default values.
	case os.IsNotExist(err):
		defaultConfig := config{
			Remotes: remotes{
				PAAddress:  defPAAddress,
				EnableMTLS: defEnableMTLS,
			},
		}
		buf, err := toml.Marshal(defaultConfig)
		if err != nil {
			return opts, err
		}
		if err = os.WriteFile(ConfigPath, buf, filePermission); err != nil {
			return opts, errors.Wrap(errWritingConfig, err)
		}
	case err != nil:
		return opts, err
	}

	config, err := read(ConfigPath)
	if err != nil {
		return opts, err
	}

	if opts.PAAddress == "" && config.Remotes.PAAddress != "" {
		opts.PAAddress = config.Remotes.PAAddress
	}
	opts.EnableMTLS = config.Remotes.EnableMTLS || opts.EnableMTLS

	if opts.PEMRootCerts == "" && config.Credentials.PEMRootCerts != "" {
		pem, err := os.ReadFile(config.Credentials.PEMRootCerts)
		if err != nil {
			return opts, errors.Wrap(errReadFail, err)
		}
		opts.PEMRootCerts = string(pem)
	}

	if opts.PEMPrivateKey == "" && config.Credentials.PEMPrivateKey != "" {
		pem, err := os.ReadFile(config.Credentials.PEMPrivateKey)
		if err != nil {
			return opts, errors.Wrap(errReadFail, err)
		}
		opts.PEMPrivateKey = string(pem)
	}

	if opts.PEMCertChain == "" && config.Credentials.PEMCertChain != "" {
		pem, err := os.ReadFile(config.Credentials.PEMCertChain)
		if err != nil {
			return opts, errors.Wrap(errReadFail, err)
		}
		opts.PEMCertChain = string(pem)
	}

	if len(opts.SKUTokens) == 0 {
		opts.SKUTokens = config.Credentials.SKUTokens
	}

	RawOutput = config.RawOutput || RawOutput

	return opts, nil
}
