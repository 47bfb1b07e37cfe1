// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"time"

	"github.com/go-kit/kit/metrics"

	"github.com/absmach/ate/registry"
)

var _ registry.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	svc     registry.Service
}

// MetricsMiddleware instruments core service by tracking request count and latency.
func MetricsMiddleware(svc registry.Service, counter metrics.Counter, latency metrics.Histogram) registry.Service {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		svc:     svc,
	}
}

func (mm *metricsMiddleware) RegisterDevice(ctx context.Context, device registry.Device) (registry.Device, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "register_device").Add(1)
		mm.latency.With("method", "register_device").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return mm.svc.RegisterDevice(ctx, device)
}

func (mm *metricsMiddleware) ViewDevice(ctx context.Context, deviceID string) (registry.Device, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "view_device").Add(1)
		mm.latency.With("method", "view_device").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return mm.svc.ViewDevice(ctx, deviceID)
}
