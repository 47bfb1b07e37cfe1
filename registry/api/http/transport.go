// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package http exposes the registry buffer read API together with the
// health and metrics endpoints.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/absmach/ate/internal/api"
	"github.com/absmach/ate/registry"
)

// MakeHandler returns a HTTP handler for API endpoints.
func MakeHandler(r *chi.Mux, svc registry.Service, logger *slog.Logger, instanceID string) http.Handler {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(api.LoggingErrorEncoder(logger, api.EncodeError)),
	}

	r.Route("/devices", func(r chi.Router) {
		r.Get("/{deviceID}", kithttp.NewServer(
			viewDeviceEndpoint(svc),
			decodeViewDevice,
			api.EncodeResponse,
			opts...,
		).ServeHTTP)
	})

	r.Get("/health", api.Health("registry", instanceID))
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func decodeViewDevice(_ context.Context, r *http.Request) (interface{}, error) {
	req := viewDeviceReq{
		deviceID: chi.URLParam(r, "deviceID"),
	}
	return req, nil
}
