// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package pa

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ProvisioningApplianceService_InitSession_FullMethodName         = "/pa.ProvisioningApplianceService/InitSession"
	ProvisioningApplianceService_CloseSession_FullMethodName        = "/pa.ProvisioningApplianceService/CloseSession"
	ProvisioningApplianceService_CreateKeyAndCert_FullMethodName    = "/pa.ProvisioningApplianceService/CreateKeyAndCert"
	ProvisioningApplianceService_EndorseCerts_FullMethodName        = "/pa.ProvisioningApplianceService/EndorseCerts"
	ProvisioningApplianceService_DeriveSymmetricKeys_FullMethodName = "/pa.ProvisioningApplianceService/DeriveSymmetricKeys"
	ProvisioningApplianceService_RegisterDevice_FullMethodName      = "/pa.ProvisioningApplianceService/RegisterDevice"
)

// ProvisioningApplianceServiceClient is the client API for the
// ProvisioningApplianceService service.
type ProvisioningApplianceServiceClient interface {
	InitSession(ctx context.Context, in *InitSessionRequest, opts ...grpc.CallOption) (*InitSessionResponse, error)
	CloseSession(ctx context.Context, in *CloseSessionRequest, opts ...grpc.CallOption) (*CloseSessionResponse, error)
	CreateKeyAndCert(ctx context.Context, in *CreateKeyAndCertRequest, opts ...grpc.CallOption) (*CreateKeyAndCertResponse, error)
	EndorseCerts(ctx context.Context, in *EndorseCertsRequest, opts ...grpc.CallOption) (*EndorseCertsResponse, error)
	DeriveSymmetricKeys(ctx context.Context, in *DeriveSymmetricKeysRequest, opts ...grpc.CallOption) (*DeriveSymmetricKeysResponse, error)
	RegisterDevice(ctx context.Context, in *RegistrationRequest, opts ...grpc.CallOption) (*RegistrationResponse, error)
}

type provisioningApplianceServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProvisioningApplianceServiceClient(cc grpc.ClientConnInterface) ProvisioningApplianceServiceClient {
	return &provisioningApplianceServiceClient{cc}
}

func (c *provisioningApplianceServiceClient) InitSession(ctx context.Context, in *InitSessionRequest, opts ...grpc.CallOption) (*InitSessionResponse, error) {
	out := new(InitSessionResponse)
	if err := c.cc.Invoke(ctx, ProvisioningApplianceService_InitSession_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *provisioningApplianceServiceClient) CloseSession(ctx context.Context, in *CloseSessionRequest, opts ...grpc.CallOption) (*CloseSessionResponse, error) {
	out := new(CloseSessionResponse)
	if err := c.cc.Invoke(ctx, ProvisioningApplianceService_CloseSession_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *provisioningApplianceServiceClient) CreateKeyAndCert(ctx context.Context, in *CreateKeyAndCertRequest, opts ...grpc.CallOption) (*CreateKeyAndCertResponse, error) {
	out := new(CreateKeyAndCertResponse)
	if err := c.cc.Invoke(ctx, ProvisioningApplianceService_CreateKeyAndCert_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *provisioningApplianceServiceClient) EndorseCerts(ctx context.Context, in *EndorseCertsRequest, opts ...grpc.CallOption) (*EndorseCertsResponse, error) {
	out := new(EndorseCertsResponse)
	if err := c.cc.Invoke(ctx, ProvisioningApplianceService_EndorseCerts_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *provisioningApplianceServiceClient) DeriveSymmetricKeys(ctx context.Context, in *DeriveSymmetricKeysRequest, opts ...grpc.CallOption) (*DeriveSymmetricKeysResponse, error) {
	out := new(DeriveSymmetricKeysResponse)
	if err := c.cc.Invoke(ctx, ProvisioningApplianceService_DeriveSymmetricKeys_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *provisioningApplianceServiceClient) RegisterDevice(ctx context.Context, in *RegistrationRequest, opts ...grpc.CallOption) (*RegistrationResponse, error) {
	out := new(RegistrationResponse)
	if err := c.cc.Invoke(ctx, ProvisioningApplianceService_RegisterDevice_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ProvisioningApplianceServiceServer is the server API for the
// ProvisioningApplianceService service.
type ProvisioningApplianceServiceServer interface {
	InitSession(context.Context, *InitSessionRequest) (*InitSessionResponse, error)
	CloseSession(context.Context, *CloseSessionRequest) (*CloseSessionResponse, error)
	CreateKeyAndCert(context.Context, *CreateKeyAndCertRequest) (*CreateKeyAndCertResponse, error)
	EndorseCerts(context.Context, *EndorseCertsRequest) (*EndorseCertsResponse, error)
	DeriveSymmetricKeys(context.Context, *DeriveSymmetricKeysRequest) (*DeriveSymmetricKeysResponse, error)
	RegisterDevice(context.Context, *RegistrationRequest) (*RegistrationResponse, error)
}

// UnimplementedProvisioningApplianceServiceServer can be embedded to have
// forward compatible implementations.
type UnimplementedProvisioningApplianceServiceServer struct{}

func (UnimplementedProvisioningApplianceServiceServer) InitSession(context.Context, *InitSessionRequest) (*InitSessionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method InitSession not implemented")
}

func (UnimplementedProvisioningApplianceServiceServer) CloseSession(context.Context, *CloseSessionRequest) (*CloseSessionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CloseSession not implemented")
}

func (UnimplementedProvisioningApplianceServiceServer) CreateKeyAndCert(context.Context, *CreateKeyAndCertRequest) (*CreateKeyAndCertResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateKeyAndCert not implemented")
}

func (UnimplementedProvisioningApplianceServiceServer) EndorseCerts(context.Context, *EndorseCertsRequest) (*EndorseCertsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EndorseCerts not implemented")
}

func (UnimplementedProvisioningApplianceServiceServer) DeriveSymmetricKeys(context.Context, *DeriveSymmetricKeysRequest) (*DeriveSymmetricKeysResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeriveSymmetricKeys not implemented")
}

func (UnimplementedProvisioningApplianceServiceServer) RegisterDevice(context.Context, *RegistrationRequest) (*RegistrationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterDevice not implemented")
}

func RegisterProvisioningApplianceServiceServer(s grpc.ServiceRegistrar, srv ProvisioningApplianceServiceServer) {
	s.RegisterService(&ProvisioningApplianceService_ServiceDesc, srv)
}

func _ProvisioningApplianceService_InitSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InitSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProvisioningApplianceServiceServer).InitSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProvisioningApplianceService_InitSession_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProvisioningApplianceServiceServer).InitSession(ctx, req.(*InitSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProvisioningApplianceService_CloseSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CloseSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProvisioningApplianceServiceServer).CloseSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProvisioningApplianceService_CloseSession_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProvisioningApplianceServiceServer).CloseSession(ctx, req.(*CloseSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProvisioningApplianceService_CreateKeyAndCert_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateKeyAndCertRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProvisioningApplianceServiceServer).CreateKeyAndCert(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProvisioningApplianceService_CreateKeyAndCert_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProvisioningApplianceServiceServer).CreateKeyAndCert(ctx, req.(*CreateKeyAndCertRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProvisioningApplianceService_EndorseCerts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EndorseCertsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProvisioningApplianceServiceServer).EndorseCerts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProvisioningApplianceService_EndorseCerts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProvisioningApplianceServiceServer).EndorseCerts(ctx, req.(*EndorseCertsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProvisioningApplianceService_DeriveSymmetricKeys_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeriveSymmetricKeysRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProvisioningApplianceServiceServer).DeriveSymmetricKeys(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProvisioningApplianceService_DeriveSymmetricKeys_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProvisioningApplianceServiceServer).DeriveSymmetricKeys(ctx, req.(*DeriveSymmetricKeysRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProvisioningApplianceService_RegisterDevice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegistrationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProvisioningApplianceServiceServer).RegisterDevice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProvisioningApplianceService_RegisterDevice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProvisioningApplianceServiceServer).RegisterDevice(ctx, req.(*RegistrationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ProvisioningApplianceService_ServiceDesc is the grpc.ServiceDesc for the
// ProvisioningApplianceService service.
var ProvisioningApplianceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "pa.ProvisioningApplianceService",
	HandlerType: (*ProvisioningApplianceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "InitSession",
			Handler:    _ProvisioningApplianceService_InitSession_Handler,
		},
		{
			MethodName: "CloseSession",
			Handler:    _ProvisioningApplianceService_CloseSession_Handler,
		},
		{
			MethodName: "CreateKeyAndCert",
			Handler:    _ProvisioningApplianceService_CreateKeyAndCert_Handler,
		},
		{
			MethodName: "EndorseCerts",
			Handler:    _ProvisioningApplianceService_EndorseCerts_Handler,
		},
		{
			MethodName: "DeriveSymmetricKeys",
			Handler:    _ProvisioningApplianceService_DeriveSymmetricKeys_Handler,
		},
		{
			MethodName: "RegisterDevice",
			Handler:    _ProvisioningApplianceService_RegisterDevice_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pa/pa.proto",
}
