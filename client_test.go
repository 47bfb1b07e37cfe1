// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package ate_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/absmach/ate"
	"github.com/absmach/ate/mocks"
	"github.com/absmach/ate/pa"
)

const testSku = "abc123"

func newClient(t *testing.T) (*ate.Client, *mocks.ProvisioningApplianceServiceClient) {
	stub := mocks.NewProvisioningApplianceServiceClient(t)
	logger := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
	return ate.New(stub, logger), stub
}

func TestIssueKeyAndCert(t *testing.T) {
	response := &pa.CreateKeyAndCertResponse{
		Keys: []*pa.EndorsedKey{
			{Cert: &pa.Certificate{Blob: []byte("fake-cert-blob")}},
		},
	}

	testCases := []struct {
		desc   string
		sku    string
		serial []byte
		res    *pa.CreateKeyAndCertResponse
		err    error
	}{
		{
			desc:   "empty serial is forwarded, response returned untouched",
			sku:    testSku,
			serial: []byte{},
			res:    response,
		},
		{
			desc:   "serial bytes forwarded verbatim",
			sku:    testSku,
			serial: []byte{0xde, 0xad, 0xbe, 0xef},
			res:    response,
		},
		{
			desc:   "remote failure surfaces status verbatim",
			sku:    testSku,
			serial: []byte{},
			err:    status.Error(codes.Unavailable, "appliance offline"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			client, stub := newClient(t)

			// The expectation pins the exact request the stub must
			// receive: same sku string, same serial bytes.
			expected := &pa.CreateKeyAndCertRequest{Sku: tc.sku, SerialNumber: tc.serial}
			stub.On("CreateKeyAndCert", mock.Anything, expected).Return(tc.res, tc.err).Once()

			res, err := client.IssueKeyAndCert(context.Background(), tc.sku, tc.serial)
			if tc.err != nil {
				require.Error(t, err)
				assert.Equal(t, status.Code(tc.err), status.Code(err))
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.res, res)
			assert.Equal(t, []byte("fake-cert-blob"), res.GetKeys()[0].GetCert().GetBlob())
		})
	}
}

func TestEndorseCerts(t *testing.T) {
	response := &pa.EndorseCertsResponse{
		Certs: []*pa.Certificate{{Blob: []byte("fake-cert-blob")}},
	}

	testCases := []struct {
		desc string
		res  *pa.EndorseCertsResponse
		err  error
	}{
		{
			desc: "request forwarded, response returned untouched",
			res:  response,
		},
		{
			desc: "remote failure surfaces status verbatim",
			err:  status.Error(codes.InvalidArgument, "unknown sku"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			client, stub := newClient(t)

			req := &pa.EndorseCertsRequest{Sku: testSku}
			stub.On("EndorseCerts", mock.Anything, req).Return(tc.res, tc.err).Once()

			res, err := client.EndorseCerts(context.Background(), req)
			if tc.err != nil {
				require.Error(t, err)
				assert.Equal(t, status.Code(tc.err), status.Code(err))
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.res, res)
			assert.Equal(t, []byte("fake-cert-blob"), res.GetCerts()[0].GetBlob())
		})
	}
}

func TestDeriveSymmetricKeys(t *testing.T) {
	response := &pa.DeriveSymmetricKeysResponse{
		Keys: [][]byte{[]byte("fake-key-blob")},
	}

	testCases := []struct {
		desc string
		res  *pa.DeriveSymmetricKeysResponse
		err  error
	}{
		{
			desc: "request forwarded, response returned untouched",
			res:  response,
		},
		{
			desc: "remote failure surfaces status verbatim",
			err:  status.Error(codes.Internal, "HSM failure"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			client, stub := newClient(t)

			req := &pa.DeriveSymmetricKeysRequest{Sku: testSku}
			stub.On("DeriveSymmetricKeys", mock.Anything, req).Return(tc.res, tc.err).Once()

			res, err := client.DeriveSymmetricKeys(context.Background(), req)
			if tc.err != nil {
				require.Error(t, err)
				assert.Equal(t, status.Code(tc.err), status.Code(err))
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.res, res)
			assert.Equal(t, []byte("fake-key-blob"), res.GetKeys()[0])
		})
	}
}

func TestRegisterDevice(t *testing.T) {
	client, stub := newClient(t)

	req := &pa.RegistrationRequest{
		Record: &pa.DeviceRecord{Sku: testSku, DeviceId: []byte{0x01}},
	}
	stub.On("RegisterDevice", mock.Anything, req).Return(&pa.RegistrationResponse{}, nil).Once()

	_, err := client.RegisterDevice(context.Background(), req)
	require.NoError(t, err)
}

func TestSessionTokenAttachedAfterInit(t *testing.T) {
	client, stub := newClient(t)

	stub.On("InitSession", mock.Anything, &pa.InitSessionRequest{Sku: testSku, SkuAuth: "sku-auth"}).
		Return(&pa.InitSessionResponse{SkuSessionToken: "session-token"}, nil).Once()

	withToken := mock.MatchedBy(func(ctx context.Context) bool {
		md, ok := metadata.FromOutgoingContext(ctx)
		return ok && len(md.Get("authorization")) == 1 && md.Get("authorization")[0] == "session-token"
	})
	stub.On("CreateKeyAndCert", withToken, mock.Anything).
		Return(&pa.CreateKeyAndCertResponse{}, nil).Once()
	stub.On("CloseSession", withToken, &pa.CloseSessionRequest{}).
		Return(&pa.CloseSessionResponse{}, nil).Once()

	require.NoError(t, client.InitSession(context.Background(), testSku, "sku-auth"))

	_, err := client.IssueKeyAndCert(context.Background(), testSku, nil)
	require.NoError(t, err)

	require.NoError(t, client.CloseSession(context.Background()))
}

func TestInitSessionFailureKeepsNoToken(t *testing.T) {
	client, stub := newClient(t)

	stub.On("InitSession", mock.Anything, mock.Anything).
		Return(nil, status.Error(codes.Unauthenticated, "bad sku auth")).Once()

	err := client.InitSession(context.Background(), testSku, "wrong")
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	// Later calls must not carry an authorization token.
	withoutToken := mock.MatchedBy(func(ctx context.Context) bool {
		md, ok := metadata.FromOutgoingContext(ctx)
		return !ok || len(md.Get("authorization")) == 0
	})
	stub.On("CreateKeyAndCert", withoutToken, mock.Anything).
		Return(&pa.CreateKeyAndCertResponse{}, nil).Once()

	_, err = client.IssueKeyAndCert(context.Background(), testSku, nil)
	require.NoError(t, err)
}
