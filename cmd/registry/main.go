// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	jaegerClient "github.com/absmach/ate/internal/jaeger"
	pgClient "github.com/absmach/ate/internal/postgres"
	"github.com/absmach/ate/internal/prometheus"
	"github.com/absmach/ate/internal/server"
	grpcserver "github.com/absmach/ate/internal/server/grpc"
	httpserver "github.com/absmach/ate/internal/server/http"
	"github.com/absmach/ate/internal/uuid"
	"github.com/absmach/ate/rb"
	"github.com/absmach/ate/registry"
	"github.com/absmach/ate/registry/api"
	registrygrpc "github.com/absmach/ate/registry/api/grpc"
	httpapi "github.com/absmach/ate/registry/api/http"
	rpostgres "github.com/absmach/ate/registry/postgres"
	"github.com/absmach/ate/registry/tracing"
)

const (
	svcName        = "registry"
	envPrefix      = "ATE_REGISTRY_DB_"
	envPrefixHTTP  = "ATE_REGISTRY_HTTP_"
	envPrefixGRPC  = "ATE_REGISTRY_GRPC_"
	defDB          = "registry"
	defSvcHTTPPort = "9110"
	defSvcGRPCPort = "7110"
)

type config struct {
	LogLevel   string  `env:"ATE_REGISTRY_LOG_LEVEL"    envDefault:"info"`
	JaegerURL  url.URL `env:"ATE_JAEGER_URL"            envDefault:"http://jaeger:4318"`
	InstanceID string  `env:"ATE_REGISTRY_INSTANCE_ID"  envDefault:""`
	TraceRatio float64 `env:"ATE_JAEGER_TRACE_RATIO"    envDefault:"1.0"`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load %s configuration : %s", svcName, err)
	}

	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err.Error())
	}

	if cfg.InstanceID == "" {
		cfg.InstanceID, err = uuid.New().ID()
		if err != nil {
			log.Fatal(fmt.Sprintf("failed to generate instance ID: %s", err))
		}
	}

	dbConfig := pgClient.Config{Name: defDB}
	if err := env.ParseWithOptions(&dbConfig, env.Options{Prefix: envPrefix}); err != nil {
		logger.Error(err.Error())
	}
	db, err := pgClient.Setup(dbConfig, *rpostgres.Migration())
	if err != nil {
		log.Fatal(fmt.Sprintf("Failed to connect to %s database: %s", svcName, err))
	}
	defer db.Close()

	tp, err := jaegerClient.NewProvider(ctx, svcName, cfg.JaegerURL, cfg.InstanceID, cfg.TraceRatio)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to init Jaeger: %s", err))
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("Error shutting down tracer provider: %v", err))
		}
	}()
	tracer := tp.Tracer(svcName)

	httpServerConfig := server.Config{Port: defSvcHTTPPort}
	if err := env.ParseWithOptions(&httpServerConfig, env.Options{Prefix: envPrefixHTTP}); err != nil {
		logger.Error(fmt.Sprintf("failed to load %s HTTP server configuration : %s", svcName, err))
	}

	svc := newService(db, tracer, logger)

	grpcServerConfig := server.Config{Port: defSvcGRPCPort}
	if err := env.ParseWithOptions(&grpcServerConfig, env.Options{Prefix: envPrefixGRPC}); err != nil {
		log.Printf("failed to load %s gRPC server configuration : %s", svcName, err.Error())
		return
	}

	registerRegistryBufferServiceServer := func(srv *grpc.Server) {
		reflection.Register(srv)
		rb.RegisterRegistryBufferServiceServer(srv, registrygrpc.NewServer(svc))
	}
	gs := grpcserver.NewServer(ctx, cancel, svcName, grpcServerConfig, registerRegistryBufferServiceServer, logger)

	hs := httpserver.NewServer(ctx, cancel, svcName, httpServerConfig, httpapi.MakeHandler(chi.NewMux(), svc, logger, cfg.InstanceID), logger)

	g.Go(func() error {
		return hs.Start()
	})

	g.Go(func() error {
		return gs.Start()
	})

	g.Go(func() error {
		return server.StopSignalHandler(ctx, cancel, logger, svcName, hs, gs)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("%s service terminated: %s", svcName, err))
	}
}

func newService(db *sqlx.DB, tracer trace.Tracer, logger *slog.Logger) registry.Service {
	repo := rpostgres.NewRepository(db)
	svc := registry.NewService(repo, uuid.New())
	svc = api.LoggingMiddleware(svc, logger)
	counter, latency := prometheus.MakeMetrics(svcName, "api")
	svc = api.MetricsMiddleware(svc, counter, latency)
	svc = tracing.New(svc, tracer)

	return svc
}

func initLogger(levelText string) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelText)); err != nil {
		return &slog.Logger{}, fmt.Errorf(`{"level":"error","message":"%s: %s","ts":"%s"}`, err, levelText, time.RFC3339Nano)
	}

	logHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(logHandler), nil
}
