// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package ate

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Options describes how to reach the Provisioning Appliance. PEM fields
// hold certificate material verbatim, not file paths.
type Options struct {
	PAAddress     string   `yaml:"pa_address"`
	EnableMTLS    bool     `yaml:"enable_mtls"`
	PEMRootCerts  string   `yaml:"pem_root_certs"`
	PEMPrivateKey string   `yaml:"pem_private_key"`
	PEMCertChain  string   `yaml:"pem_cert_chain"`
	SKUTokens     []string `yaml:"sku_tokens"`
}

// LoadOptions reads client options from a YAML file.
func LoadOptions(filename string) (Options, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Options{}, err
	}
	defer file.Close()

	var opts Options
	if err := yaml.NewDecoder(file).Decode(&opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}
