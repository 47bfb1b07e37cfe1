// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"

	"github.com/go-kit/kit/endpoint"

	"github.com/absmach/ate/registry"
)

func viewDeviceEndpoint(svc registry.Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (response any, err error) {
		req := request.(viewDeviceReq)
		if err := req.validate(); err != nil {
			return viewDeviceRes{}, err
		}

		device, err := svc.ViewDevice(ctx, req.deviceID)
		if err != nil {
			return viewDeviceRes{}, err
		}

		return viewDeviceRes{
			ID:        device.ID,
			Sku:       device.Sku,
			DeviceID:  device.DeviceID,
			Data:      device.Data,
			CreatedAt: device.CreatedAt,
		}, nil
	}
}
