// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli_test

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/absmach/ate"
	"github.com/absmach/ate/cli"
	"github.com/absmach/ate/mocks"
	"github.com/absmach/ate/pa"
)

const (
	keycertCmd = "keycert"
	deriveCmd  = "derive"
	initCmd    = "init"
	extraArg   = "extra-arg"
)

func newTestClient(t *testing.T) (*ate.Client, *mocks.ProvisioningApplianceServiceClient) {
	stub := mocks.NewProvisioningApplianceServiceClient(t)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return ate.New(stub, logger), stub
}

func TestKeycertCmd(t *testing.T) {
	client, stub := newTestClient(t)
	cli.SetClient(client)
	rootCmd := cli.NewProvisionCmd()

	remoteErr := status.Error(codes.InvalidArgument, "unknown sku")

	cases := []struct {
		desc          string
		args          []string
		stubErr       error
		errLogMessage string
		logType       outputLog
	}{
		{
			desc:    "issue key and cert successfully",
			args:    []string{"sival-a1", "serial-001"},
			logType: entityLog,
		},
		{
			desc:    "issue key and cert with invalid args",
			args:    []string{"sival-a1", "serial-001", extraArg},
			logType: usageLog,
		},
		{
			desc:          "issue key and cert failed",
			args:          []string{"sival-a1", "serial-001"},
			stubErr:       remoteErr,
			errLogMessage: fmt.Sprintf("\nerror: %s\n\n", remoteErr),
			logType:       errLog,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			var res *pa.CreateKeyAndCertResponse
			if tc.stubErr == nil {
				res = &pa.CreateKeyAndCertResponse{
					Keys: []*pa.EndorsedKey{
						{WrappedKey: []byte("wrapped"), Cert: &pa.Certificate{Blob: []byte("cert")}},
					},
				}
			}
			stubCall := stub.On("CreateKeyAndCert", mock.Anything, mock.Anything).Return(res, tc.stubErr)
			out := executeCommand(t, rootCmd, append([]string{keycertCmd}, tc.args...)...)
			switch tc.logType {
			case entityLog:
				assert.Contains(t, out, "keys")
			case usageLog:
				assert.Contains(t, out, "usage:")
			case errLog:
				assert.Equal(t, tc.errLogMessage, out)
			}
			stubCall.Unset()
		})
	}
}

func TestDeriveCmd(t *testing.T) {
	client, stub := newTestClient(t)
	cli.SetClient(client)
	rootCmd := cli.NewProvisionCmd()

	cases := []struct {
		desc    string
		args    []string
		logType outputLog
	}{
		{
			desc:    "derive keys successfully",
			args:    []string{"sival-a1", "seed-low-sec", "16", "device-001"},
			logType: entityLog,
		},
		{
			desc:    "derive keys with bad size",
			args:    []string{"sival-a1", "seed-low-sec", "many", "device-001"},
			logType: errLog,
		},
		{
			desc:    "derive keys with invalid args",
			args:    []string{"sival-a1", "seed-low-sec"},
			logType: usageLog,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			res := &pa.DeriveSymmetricKeysResponse{Keys: [][]byte{{0xca, 0xfe}}}
			stubCall := stub.On("DeriveSymmetricKeys", mock.Anything, mock.Anything).Return(res, nil)
			out := executeCommand(t, rootCmd, append([]string{deriveCmd}, tc.args...)...)
			switch tc.logType {
			case entityLog:
				assert.Contains(t, out, "cafe")
			case usageLog:
				assert.Contains(t, out, "usage:")
			case errLog:
				assert.Contains(t, out, "error:")
			}
			stubCall.Unset()
		})
	}
}

func TestSessionInitCmd(t *testing.T) {
	client, stub := newTestClient(t)
	cli.SetClient(client)
	rootCmd := cli.NewSessionCmd()

	cases := []struct {
		desc    string
		args    []string
		stubErr error
		logType outputLog
	}{
		{
			desc:    "init session successfully",
			args:    []string{"sival-a1", "sku-auth-pw"},
			logType: entityLog,
		},
		{
			desc:    "init session failed",
			args:    []string{"sival-a1", "bad-auth"},
			stubErr: status.Error(codes.PermissionDenied, "bad sku auth"),
			logType: errLog,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			var res *pa.InitSessionResponse
			if tc.stubErr == nil {
				res = &pa.InitSessionResponse{SkuSessionToken: "session-token"}
			}
			stubCall := stub.On("InitSession", mock.Anything, mock.Anything).Return(res, tc.stubErr)
			out := executeCommand(t, rootCmd, append([]string{initCmd}, tc.args...)...)
			switch tc.logType {
			case entityLog:
				assert.Contains(t, out, "session-token")
			case errLog:
				assert.True(t, strings.Contains(out, "error:"), "expected error output, got %q", out)
			}
			stubCall.Unset()
		})
	}
}
