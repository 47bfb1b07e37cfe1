// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/absmach/ate/registry"
)

var _ registry.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger *slog.Logger
	svc    registry.Service
}

// LoggingMiddleware adds logging facilities to the core service.
func LoggingMiddleware(svc registry.Service, logger *slog.Logger) registry.Service {
	return &loggingMiddleware{logger, svc}
}

func (lm *loggingMiddleware) RegisterDevice(ctx context.Context, device registry.Device) (d registry.Device, err error) {
	defer func(begin time.Time) {
		message := fmt.Sprintf("Method register_device for device %s took %s to complete", device.DeviceID, time.Since(begin))
		if err != nil {
			lm.logger.Warn(fmt.Sprintf("%s with error: %s.", message, err))
			return
		}
		lm.logger.Info(message)
	}(time.Now())
	return lm.svc.RegisterDevice(ctx, device)
}

func (lm *loggingMiddleware) ViewDevice(ctx context.Context, deviceID string) (d registry.Device, err error) {
	defer func(begin time.Time) {
		message := fmt.Sprintf("Method view_device for device %s took %s to complete", deviceID, time.Since(begin))
		if err != nil {
			lm.logger.Warn(fmt.Sprintf("%s with error: %s.", message, err))
			return
		}
		lm.logger.Info(message)
	}(time.Now())
	return lm.svc.ViewDevice(ctx, deviceID)
}
