// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package ate exposes the provisioning client used by automated test
// equipment (ATE) on the manufacturing line. The client is a thin facade
// over the remote Provisioning Appliance gRPC service: it shapes typed
// requests, performs a single blocking call per operation and hands the
// remote status back to the caller untouched. It holds no cryptographic
// material and performs no cryptography of its own.
package ate

import (
	"context"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/absmach/ate/pa"
	"github.com/absmach/ate/transport"
)

// Client drives the Provisioning Appliance on behalf of the test program.
//
// A Client exclusively owns its stub for its whole lifetime. It is not
// safe for concurrent use; callers running provisioning flows from
// multiple goroutines must serialize access externally.
//
// Every operation is a single attempt: there are no retries, no client
// side deadlines beyond the passed context, and no interpretation of
// remote failures. On failure the returned response is nil and the error
// carries the gRPC status verbatim; callers branch on status.Code(err).
type Client struct {
	stub   pa.ProvisioningApplianceServiceClient
	conn   *grpc.ClientConn
	logger *slog.Logger

	skuSessionToken string
}

// New wraps an existing Provisioning Appliance stub. The Client takes
// ownership of the stub; it must not be shared with other consumers.
func New(stub pa.ProvisioningApplianceServiceClient, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{stub: stub, logger: logger}
}

// Connect dials the Provisioning Appliance endpoint described by opts and
// returns a Client owning the underlying connection. The connection uses
// mTLS composed with per-call SKU token credentials when opts.EnableMTLS
// is set, and remains plaintext otherwise.
func Connect(opts Options, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("connecting to provisioning appliance",
		slog.String("target", opts.PAAddress), slog.Bool("mtls", opts.EnableMTLS))

	dialOpts, err := transport.DialOptions(transport.Options{
		EnableMTLS:    opts.EnableMTLS,
		PEMRootCerts:  opts.PEMRootCerts,
		PEMPrivateKey: opts.PEMPrivateKey,
		PEMCertChain:  opts.PEMCertChain,
		SKUTokens:     opts.SKUTokens,
	})
	if err != nil {
		return nil, err
	}

	conn, err := grpc.NewClient(opts.PAAddress, dialOpts...)
	if err != nil {
		return nil, err
	}

	c := New(pa.NewProvisioningApplianceServiceClient(conn), logger)
	c.conn = conn
	return c, nil
}

// Close releases the underlying connection, if the Client owns one.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// InitSession opens a SKU session on the appliance. The returned session
// token is retained and attached to subsequent provisioning calls.
func (c *Client) InitSession(ctx context.Context, sku, skuAuth string) error {
	c.logger.Info("initializing SKU session", slog.String("sku", sku))

	res, err := c.stub.InitSession(ctx, &pa.InitSessionRequest{Sku: sku, SkuAuth: skuAuth})
	if err != nil {
		return err
	}
	c.skuSessionToken = res.GetSkuSessionToken()
	return nil
}

// ResumeSession attaches a previously issued SKU session token, as
// returned by InitSession, to subsequent provisioning calls.
func (c *Client) ResumeSession(token string) {
	c.skuSessionToken = token
}

// SessionToken returns the active SKU session token, or an empty string
// when no session is open.
func (c *Client) SessionToken() string {
	return c.skuSessionToken
}

// CloseSession closes the current SKU session and drops the session token.
func (c *Client) CloseSession(ctx context.Context) error {
	c.logger.Info("closing SKU session")

	if _, err := c.stub.CloseSession(c.withSession(ctx), &pa.CloseSessionRequest{}); err != nil {
		return err
	}
	c.skuSessionToken = ""
	return nil
}

// IssueKeyAndCert requests a device key pair and the matching certificate
// for the given SKU. The device serial is forwarded exactly as supplied;
// an empty serial is a valid, if degenerate, input and is not rejected
// locally. All input validation is deferred to the appliance.
func (c *Client) IssueKeyAndCert(ctx context.Context, sku string, deviceSerial []byte) (*pa.CreateKeyAndCertResponse, error) {
	c.logger.Info("issuing key and certificate", slog.String("sku", sku))

	req := &pa.CreateKeyAndCertRequest{
		Sku:          sku,
		SerialNumber: deviceSerial,
	}
	return c.stub.CreateKeyAndCert(c.withSession(ctx), req)
}

// EndorseCerts forwards the caller-populated endorsement request. The
// client neither constructs nor validates the signing material.
func (c *Client) EndorseCerts(ctx context.Context, req *pa.EndorseCertsRequest) (*pa.EndorseCertsResponse, error) {
	c.logger.Info("endorsing certificates", slog.String("sku", req.GetSku()))

	return c.stub.EndorseCerts(c.withSession(ctx), req)
}

// DeriveSymmetricKeys forwards the caller-populated derivation request.
func (c *Client) DeriveSymmetricKeys(ctx context.Context, req *pa.DeriveSymmetricKeysRequest) (*pa.DeriveSymmetricKeysResponse, error) {
	c.logger.Info("deriving symmetric keys", slog.String("sku", req.GetSku()))

	return c.stub.DeriveSymmetricKeys(c.withSession(ctx), req)
}

// RegisterDevice forwards a provisioned device record to the appliance
// for registration with the registry buffer.
func (c *Client) RegisterDevice(ctx context.Context, req *pa.RegistrationRequest) (*pa.RegistrationResponse, error) {
	c.logger.Info("registering device", slog.String("sku", req.GetRecord().GetSku()))

	return c.stub.RegisterDevice(c.withSession(ctx), req)
}

func (c *Client) withSession(ctx context.Context) context.Context {
	if c.skuSessionToken == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, "authorization", c.skuSessionToken)
}
