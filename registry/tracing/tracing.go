// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package tracing

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/absmach/ate/registry"
)

var _ registry.Service = (*tracingMiddleware)(nil)

type tracingMiddleware struct {
	tracer trace.Tracer
	svc    registry.Service
}

// New returns a new registry service with tracing capabilities.
func New(svc registry.Service, tracer trace.Tracer) registry.Service {
	return &tracingMiddleware{tracer, svc}
}

func (tm *tracingMiddleware) RegisterDevice(ctx context.Context, device registry.Device) (registry.Device, error) {
	ctx, span := tm.tracer.Start(ctx, "register_device")
	defer span.End()
	return tm.svc.RegisterDevice(ctx, device)
}

func (tm *tracingMiddleware) ViewDevice(ctx context.Context, deviceID string) (registry.Device, error) {
	ctx, span := tm.tracer.Start(ctx, "view_device")
	defer span.End()
	return tm.svc.ViewDevice(ctx, deviceID)
}
