// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package registry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/absmach/ate/internal/uuid"
	"github.com/absmach/ate/pkg/errors"
	"github.com/absmach/ate/registry"
	"github.com/absmach/ate/registry/mocks"
)

const (
	testSku      = "sival-a1"
	testDeviceID = "64:0b:ab:12:01"
)

func TestRegisterDevice(t *testing.T) {
	testCases := []struct {
		desc    string
		device  registry.Device
		repoErr error
		err     error
	}{
		{
			desc: "register device successfully",
			device: registry.Device{
				Sku:      testSku,
				DeviceID: testDeviceID,
				Data:     []byte("device-data"),
			},
		},
		{
			desc: "missing sku",
			device: registry.Device{
				DeviceID: testDeviceID,
				Data:     []byte("device-data"),
			},
			err: registry.ErrMalformedEntity,
		},
		{
			desc: "missing device id",
			device: registry.Device{
				Sku:  testSku,
				Data: []byte("device-data"),
			},
			err: registry.ErrMalformedEntity,
		},
		{
			desc: "missing data",
			device: registry.Device{
				Sku:      testSku,
				DeviceID: testDeviceID,
			},
			err: registry.ErrMalformedEntity,
		},
		{
			desc: "repository failure",
			device: registry.Device{
				Sku:      testSku,
				DeviceID: testDeviceID,
				Data:     []byte("device-data"),
			},
			repoErr: errors.New("repo error"),
			err:     registry.ErrCreateEntity,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			repo := new(mocks.Repository)
			svc := registry.NewService(repo, uuid.New())

			repoCall := repo.On("CreateDevice", mock.Anything, mock.Anything).Return(tc.repoErr)

			device, err := svc.RegisterDevice(context.Background(), tc.device)
			if tc.err != nil {
				require.True(t, errors.Contains(err, tc.err), "expected error %v, got %v", tc.err, err)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, device.ID)
				assert.False(t, device.CreatedAt.IsZero())
				assert.Equal(t, tc.device.Sku, device.Sku)
				assert.Equal(t, tc.device.DeviceID, device.DeviceID)
				assert.Equal(t, tc.device.Data, device.Data)
			}

			repoCall.Unset()
		})
	}
}

func TestViewDevice(t *testing.T) {
	stored := registry.Device{
		ID:       "c1a1daea-ce24-4847-b892-1780bf25b10c",
		Sku:      testSku,
		DeviceID: testDeviceID,
		Data:     []byte("device-data"),
	}

	testCases := []struct {
		desc    string
		device  registry.Device
		repoErr error
		err     error
	}{
		{
			desc:   "view device successfully",
			device: stored,
		},
		{
			desc:    "device not found",
			repoErr: registry.ErrNotFound,
			err:     registry.ErrViewEntity,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			repo := new(mocks.Repository)
			svc := registry.NewService(repo, uuid.New())

			repoCall := repo.On("RetrieveDevice", mock.Anything, testDeviceID).Return(tc.device, tc.repoErr)

			device, err := svc.ViewDevice(context.Background(), testDeviceID)
			if tc.err != nil {
				require.True(t, errors.Contains(err, tc.err), "expected error %v, got %v", tc.err, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.device, device)
			}

			repoCall.Unset()
		})
	}
}
