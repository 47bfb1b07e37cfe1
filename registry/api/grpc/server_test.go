// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package grpc_test

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/absmach/ate/pkg/errors"
	"github.com/absmach/ate/rb"
	grpcapi "github.com/absmach/ate/registry/api/grpc"
	"github.com/absmach/ate/registry"
	"github.com/absmach/ate/registry/mocks"
)

var deviceID = []byte{0x64, 0x0b, 0xab, 0x12}

func TestRegisterDevice(t *testing.T) {
	record := &rb.DeviceRegistrationRecord{
		Sku:      "sival-a1",
		DeviceId: deviceID,
		Data:     []byte("device-data"),
	}

	testCases := []struct {
		desc       string
		svcErr     error
		respStatus rb.DeviceRegistrationStatus
		code       codes.Code
	}{
		{
			desc:       "register device successfully",
			respStatus: rb.DeviceRegistrationStatus_DEVICE_REGISTRATION_STATUS_SUCCESS,
			code:       codes.OK,
		},
		{
			desc:       "malformed record",
			svcErr:     errors.Wrap(registry.ErrMalformedEntity, errors.New("missing sku")),
			respStatus: rb.DeviceRegistrationStatus_DEVICE_REGISTRATION_STATUS_BAD_REQUEST,
			code:       codes.InvalidArgument,
		},
		{
			desc:       "conflicting record",
			svcErr:     errors.Wrap(registry.ErrCreateEntity, registry.ErrConflict),
			respStatus: rb.DeviceRegistrationStatus_DEVICE_REGISTRATION_STATUS_CONFLICT,
			code:       codes.AlreadyExists,
		},
		{
			desc:       "storage failure",
			svcErr:     errors.Wrap(registry.ErrCreateEntity, errors.New("db down")),
			respStatus: rb.DeviceRegistrationStatus_DEVICE_REGISTRATION_STATUS_BAD_REQUEST,
			code:       codes.Internal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			svc := new(mocks.Service)
			server := grpcapi.NewServer(svc)

			svcCall := svc.On("RegisterDevice", mock.Anything, mock.Anything).
				Return(registry.Device{}, tc.svcErr)

			res, err := server.RegisterDevice(context.Background(), &rb.DeviceRegistrationRequest{Record: record})
			require.NotNil(t, res)
			assert.Equal(t, deviceID, res.GetDeviceId())
			assert.Equal(t, tc.respStatus, res.GetStatus())
			assert.Equal(t, tc.code, status.Code(err))

			svcCall.Unset()
		})
	}
}

func TestGetDevice(t *testing.T) {
	stored := registry.Device{
		ID:       "c1a1daea-ce24-4847-b892-1780bf25b10c",
		Sku:      "sival-a1",
		DeviceID: hex.EncodeToString(deviceID),
		Data:     []byte("device-data"),
	}

	testCases := []struct {
		desc   string
		device registry.Device
		svcErr error
		code   codes.Code
	}{
		{
			desc:   "get device successfully",
			device: stored,
			code:   codes.OK,
		},
		{
			desc:   "device not found",
			svcErr: errors.Wrap(registry.ErrViewEntity, registry.ErrNotFound),
			code:   codes.NotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			svc := new(mocks.Service)
			server := grpcapi.NewServer(svc)

			svcCall := svc.On("ViewDevice", mock.Anything, hex.EncodeToString(deviceID)).
				Return(tc.device, tc.svcErr)

			res, err := server.GetDevice(context.Background(), &rb.DeviceIdRequest{DeviceId: deviceID})
			assert.Equal(t, tc.code, status.Code(err))
			if tc.svcErr == nil {
				require.NoError(t, err)
				assert.Equal(t, stored.Sku, res.GetSku())
				assert.Equal(t, deviceID, res.GetDeviceId())
				assert.Equal(t, stored.Data, res.GetData())
			}

			svcCall.Unset()
		})
	}
}
