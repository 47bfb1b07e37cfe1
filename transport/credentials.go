// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package transport builds the channel and per-call credentials used to
// reach the Provisioning Appliance.
package transport

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/absmach/ate/pkg/errors"
)

// Metadata key carrying SKU authentication tokens on every call.
const tokenKey = "x-ate-auth-token"

var (
	ErrNoRootCerts   = errors.New("missing PEM root certificates")
	ErrBadRootCerts  = errors.New("failed to parse PEM root certificates")
	ErrBadClientPair = errors.New("failed to load PEM client certificate and key")
)

// Options configures the appliance channel. PEM fields hold certificate
// material verbatim, not file paths.
type Options struct {
	EnableMTLS    bool
	PEMRootCerts  string
	PEMPrivateKey string
	PEMCertChain  string
	SKUTokens     []string
}

// SKUTokenCredentials attaches the configured SKU tokens to every call.
// It implements credentials.PerRPCCredentials.
type SKUTokenCredentials struct {
	tokens []string
}

var _ credentials.PerRPCCredentials = (*SKUTokenCredentials)(nil)

func NewSKUTokenCredentials(tokens []string) *SKUTokenCredentials {
	return &SKUTokenCredentials{tokens: tokens}
}

// GetRequestMetadata emits the SKU tokens under a single metadata key,
// comma-joined per HTTP/2 header folding rules.
func (c *SKUTokenCredentials) GetRequestMetadata(_ context.Context, _ ...string) (map[string]string, error) {
	if len(c.tokens) == 0 {
		return map[string]string{}, nil
	}
	return map[string]string{tokenKey: strings.Join(c.tokens, ",")}, nil
}

// RequireTransportSecurity reports that SKU tokens must only travel over
// an encrypted channel.
func (c *SKUTokenCredentials) RequireTransportSecurity() bool {
	return true
}

// DialOptions assembles the gRPC dial options for the appliance channel:
// plaintext by default, mTLS composed with per-call SKU token credentials
// when opts.EnableMTLS is set.
func DialOptions(opts Options) ([]grpc.DialOption, error) {
	if !opts.EnableMTLS {
		return []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, nil
	}

	creds, err := buildTLSCredentials(opts)
	if err != nil {
		return nil, err
	}

	return []grpc.DialOption{
		grpc.WithTransportCredentials(creds),
		grpc.WithPerRPCCredentials(NewSKUTokenCredentials(opts.SKUTokens)),
	}, nil
}

func buildTLSCredentials(opts Options) (credentials.TransportCredentials, error) {
	if opts.PEMRootCerts == "" {
		return nil, ErrNoRootCerts
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM([]byte(opts.PEMRootCerts)) {
		return nil, ErrBadRootCerts
	}

	cert, err := tls.X509KeyPair([]byte(opts.PEMCertChain), []byte(opts.PEMPrivateKey))
	if err != nil {
		return nil, errors.Wrap(ErrBadClientPair, err)
	}

	return credentials.NewTLS(&tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      pool,
	}), nil
}
