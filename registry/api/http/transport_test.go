// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package http_test

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/absmach/ate/pkg/errors"
	"github.com/absmach/ate/registry"
	httpapi "github.com/absmach/ate/registry/api/http"
	"github.com/absmach/ate/registry/mocks"
)

func newServer(svc registry.Service) *httptest.Server {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return httptest.NewServer(httpapi.MakeHandler(chi.NewMux(), svc, logger, "test-instance"))
}

func TestViewDeviceEndpoint(t *testing.T) {
	device := registry.Device{
		ID:        "c1a1daea-ce24-4847-b892-1780bf25b10c",
		Sku:       "sival-a1",
		DeviceID:  "640bab12",
		Data:      []byte("device-data"),
		CreatedAt: time.Now().UTC(),
	}

	testCases := []struct {
		desc     string
		deviceID string
		svcErr   error
		status   int
	}{
		{
			desc:     "view device successfully",
			deviceID: device.DeviceID,
			status:   http.StatusOK,
		},
		{
			desc:     "view missing device",
			deviceID: "ffffffff",
			svcErr:   errors.Wrap(registry.ErrViewEntity, registry.ErrNotFound),
			status:   http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			svc := new(mocks.Service)
			ts := newServer(svc)
			defer ts.Close()

			svcCall := svc.On("ViewDevice", mock.Anything, tc.deviceID).Return(device, tc.svcErr)

			res, err := http.Get(fmt.Sprintf("%s/devices/%s", ts.URL, tc.deviceID))
			require.NoError(t, err)
			defer res.Body.Close()

			assert.Equal(t, tc.status, res.StatusCode)
			if tc.svcErr == nil {
				var body map[string]any
				require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
				assert.Equal(t, device.Sku, body["sku"])
				assert.Equal(t, device.DeviceID, body["device_id"])
			}

			svcCall.Unset()
		})
	}
}

func TestHealthEndpoint(t *testing.T) {
	ts := newServer(new(mocks.Service))
	defer ts.Close()

	res, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, "pass", body["status"])
	assert.Equal(t, "test-instance", body["instance_id"])
}
