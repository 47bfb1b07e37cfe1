// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package rb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	RegistryBufferService_RegisterDevice_FullMethodName = "/rb.RegistryBufferService/RegisterDevice"
	RegistryBufferService_GetDevice_FullMethodName      = "/rb.RegistryBufferService/GetDevice"
)

// RegistryBufferServiceClient is the client API for the
// RegistryBufferService service.
type RegistryBufferServiceClient interface {
	RegisterDevice(ctx context.Context, in *DeviceRegistrationRequest, opts ...grpc.CallOption) (*DeviceRegistrationResponse, error)
	GetDevice(ctx context.Context, in *DeviceIdRequest, opts ...grpc.CallOption) (*DeviceRegistrationRecord, error)
}

type registryBufferServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRegistryBufferServiceClient(cc grpc.ClientConnInterface) RegistryBufferServiceClient {
	return &registryBufferServiceClient{cc}
}

func (c *registryBufferServiceClient) RegisterDevice(ctx context.Context, in *DeviceRegistrationRequest, opts ...grpc.CallOption) (*DeviceRegistrationResponse, error) {
	out := new(DeviceRegistrationResponse)
	if err := c.cc.Invoke(ctx, RegistryBufferService_RegisterDevice_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *registryBufferServiceClient) GetDevice(ctx context.Context, in *DeviceIdRequest, opts ...grpc.CallOption) (*DeviceRegistrationRecord, error) {
	out := new(DeviceRegistrationRecord)
	if err := c.cc.Invoke(ctx, RegistryBufferService_GetDevice_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// RegistryBufferServiceServer is the server API for the
// RegistryBufferService service.
type RegistryBufferServiceServer interface {
	RegisterDevice(context.Context, *DeviceRegistrationRequest) (*DeviceRegistrationResponse, error)
	GetDevice(context.Context, *DeviceIdRequest) (*DeviceRegistrationRecord, error)
}

// UnimplementedRegistryBufferServiceServer can be embedded to have
// forward compatible implementations.
type UnimplementedRegistryBufferServiceServer struct{}

func (UnimplementedRegistryBufferServiceServer) RegisterDevice(context.Context, *DeviceRegistrationRequest) (*DeviceRegistrationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterDevice not implemented")
}

func (UnimplementedRegistryBufferServiceServer) GetDevice(context.Context, *DeviceIdRequest) (*DeviceRegistrationRecord, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDevice not implemented")
}

func RegisterRegistryBufferServiceServer(s grpc.ServiceRegistrar, srv RegistryBufferServiceServer) {
	s.RegisterService(&RegistryBufferService_ServiceDesc, srv)
}

func _RegistryBufferService_RegisterDevice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeviceRegistrationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RegistryBufferServiceServer).RegisterDevice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RegistryBufferService_RegisterDevice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RegistryBufferServiceServer).RegisterDevice(ctx, req.(*DeviceRegistrationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RegistryBufferService_GetDevice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeviceIdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RegistryBufferServiceServer).GetDevice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RegistryBufferService_GetDevice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RegistryBufferServiceServer).GetDevice(ctx, req.(*DeviceIdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RegistryBufferService_ServiceDesc is the grpc.ServiceDesc for the
// RegistryBufferService service.
var RegistryBufferService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "rb.RegistryBufferService",
	HandlerType: (*RegistryBufferServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RegisterDevice",
			Handler:    _RegistryBufferService_RegisterDevice_Handler,
		},
		{
			MethodName: "GetDevice",
			Handler:    _RegistryBufferService_GetDevice_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rb/rb.proto",
}
