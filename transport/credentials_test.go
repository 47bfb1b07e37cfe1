// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package transport_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/absmach/ate/pkg/errors"
	"github.com/absmach/ate/transport"
)

func TestSKUTokenMetadata(t *testing.T) {
	testCases := []struct {
		desc   string
		tokens []string
		meta   map[string]string
	}{
		{
			desc:   "single token",
			tokens: []string{"token-a"},
			meta:   map[string]string{"x-ate-auth-token": "token-a"},
		},
		{
			desc:   "multiple tokens folded into one header",
			tokens: []string{"token-a", "token-b"},
			meta:   map[string]string{"x-ate-auth-token": "token-a,token-b"},
		},
		{
			desc:   "no tokens",
			tokens: nil,
			meta:   map[string]string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			creds := transport.NewSKUTokenCredentials(tc.tokens)
			meta, err := creds.GetRequestMetadata(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.meta, meta)
			assert.True(t, creds.RequireTransportSecurity())
		})
	}
}

func TestDialOptionsPlaintext(t *testing.T) {
	opts, err := transport.DialOptions(transport.Options{})
	require.NoError(t, err)
	assert.Len(t, opts, 1)
}

func TestDialOptionsMTLSValidation(t *testing.T) {
	testCases := []struct {
		desc string
		opts transport.Options
		err  error
	}{
		{
			desc: "missing root certs",
			opts: transport.Options{EnableMTLS: true},
			err:  transport.ErrNoRootCerts,
		},
		{
			desc: "garbage root certs",
			opts: transport.Options{EnableMTLS: true, PEMRootCerts: "not-pem"},
			err:  transport.ErrBadRootCerts,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := transport.DialOptions(tc.opts)
			require.Error(t, err)
			assert.True(t, errors.Contains(err, tc.err), "expected error %v, got %v", tc.err, err)
		})
	}
}
