// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package server provides the lifecycle primitives shared by the gRPC and
// HTTP servers.
package server

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const StopWaitTime = 5 * time.Second

type Server interface {
	// Start starts the server and blocks until the server stops or fails.
	Start() error

	// Stop performs a graceful shutdown.
	Stop() error
}

// Config holds the common server settings loaded from the environment.
type Config struct {
	Host         string `env:"HOST"           envDefault:"localhost"`
	Port         string `env:"PORT"           envDefault:""`
	CertFile     string `env:"SERVER_CERT"    envDefault:""`
	KeyFile      string `env:"SERVER_KEY"     envDefault:""`
	ServerCAFile string `env:"SERVER_CA_CERTS" envDefault:""`
	ClientCAFile string `env:"CLIENT_CA_CERTS" envDefault:""`
}

type BaseServer struct {
	Ctx     context.Context
	Cancel  context.CancelFunc
	Name    string
	Address string
	Config  Config
	Logger  *slog.Logger
}

func NewBaseServer(ctx context.Context, cancel context.CancelFunc, name string, config Config, logger *slog.Logger) BaseServer {
	return BaseServer{
		Ctx:     ctx,
		Cancel:  cancel,
		Name:    name,
		Address: fmt.Sprintf("%s:%s", config.Host, config.Port),
		Config:  config,
		Logger:  logger,
	}
}

// StopSignalHandler stops all servers on SIGINT or SIGTERM.
func StopSignalHandler(ctx context.Context, cancel context.CancelFunc, logger *slog.Logger, svcName string, servers ...Server) error {
	c := make(chan os.Signal, 2)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-c:
		defer cancel()
		for _, server := range servers {
			if err := server.Stop(); err != nil {
				logger.Error(fmt.Sprintf("%s service error during shutdown: %v", svcName, err))
			}
		}
		logger.Info(fmt.Sprintf("%s service shutdown by signal: %s", svcName, sig))
		return nil
	case <-ctx.Done():
		return nil
	}
}

// LoadX509KeyPair loads a certificate and key pair from the given files.
func LoadX509KeyPair(certFile, keyFile string) (tls.Certificate, error) {
	cert, err := os.ReadFile(certFile)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("failed to read cert file %s: %w", certFile, err)
	}
	key, err := os.ReadFile(keyFile)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("failed to read key file %s: %w", keyFile, err)
	}

	return tls.X509KeyPair(cert, key)
}

// LoadRootCACerts loads a CA cert pool from the given file. An empty file
// name yields a nil pool, which disables the corresponding verification.
func LoadRootCACerts(caFile string) (*x509.CertPool, error) {
	if caFile == "" {
		return nil, nil
	}

	pem, err := os.ReadFile(caFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read ca file %s: %w", caFile, err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("failed to append ca certs from %s", caFile)
	}

	return pool, nil
}
