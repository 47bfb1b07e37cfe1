// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package rb holds the Go bindings for the RegistryBufferService API.
// The message definitions are kept in lockstep with rb.proto.
package rb

import (
	"github.com/golang/protobuf/proto"
)

type DeviceRegistrationStatus int32

const (
	DeviceRegistrationStatus_DEVICE_REGISTRATION_STATUS_UNSPECIFIED DeviceRegistrationStatus = 0
	DeviceRegistrationStatus_DEVICE_REGISTRATION_STATUS_SUCCESS     DeviceRegistrationStatus = 1
	DeviceRegistrationStatus_DEVICE_REGISTRATION_STATUS_BAD_REQUEST DeviceRegistrationStatus = 2
	DeviceRegistrationStatus_DEVICE_REGISTRATION_STATUS_CONFLICT    DeviceRegistrationStatus = 3
)

var DeviceRegistrationStatus_name = map[int32]string{
	0: "DEVICE_REGISTRATION_STATUS_UNSPECIFIED",
	1: "DEVICE_REGISTRATION_STATUS_SUCCESS",
	2: "DEVICE_REGISTRATION_STATUS_BAD_REQUEST",
	3: "DEVICE_REGISTRATION_STATUS_CONFLICT",
}

func (x DeviceRegistrationStatus) String() string {
	if s, ok := DeviceRegistrationStatus_name[int32(x)]; ok {
		return s
	}
	return "DEVICE_REGISTRATION_STATUS_UNSPECIFIED"
}

type DeviceRegistrationRecord struct {
	Sku      string `protobuf:"bytes,1,opt,name=sku,proto3" json:"sku,omitempty"`
	DeviceId []byte `protobuf:"bytes,2,opt,name=device_id,json=deviceId,proto3" json:"device_id,omitempty"`
	Data     []byte `protobuf:"bytes,3,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *DeviceRegistrationRecord) Reset()         { *m = DeviceRegistrationRecord{} }
func (m *DeviceRegistrationRecord) String() string { return proto.CompactTextString(m) }
func (*DeviceRegistrationRecord) ProtoMessage()    {}

func (m *DeviceRegistrationRecord) GetSku() string {
	if m != nil {
		return m.Sku
	}
	return ""
}

func (m *DeviceRegistrationRecord) GetDeviceId() []byte {
	if m != nil {
		return m.DeviceId
	}
	return nil
}

func (m *DeviceRegistrationRecord) GetData() []byte {
	if m != nil {
		return m.Data
	}
	return nil
}

type DeviceRegistrationRequest struct {
	Record *DeviceRegistrationRecord `protobuf:"bytes,1,opt,name=record,proto3" json:"record,omitempty"`
}

func (m *DeviceRegistrationRequest) Reset()         { *m = DeviceRegistrationRequest{} }
func (m *DeviceRegistrationRequest) String() string { return proto.CompactTextString(m) }
func (*DeviceRegistrationRequest) ProtoMessage()    {}

func (m *DeviceRegistrationRequest) GetRecord() *DeviceRegistrationRecord {
	if m != nil {
		return m.Record
	}
	return nil
}

type DeviceRegistrationResponse struct {
	DeviceId []byte                   `protobuf:"bytes,1,opt,name=device_id,json=deviceId,proto3" json:"device_id,omitempty"`
	Status   DeviceRegistrationStatus `protobuf:"varint,2,opt,name=status,proto3,enum=rb.DeviceRegistrationStatus" json:"status,omitempty"`
}

func (m *DeviceRegistrationResponse) Reset()         { *m = DeviceRegistrationResponse{} }
func (m *DeviceRegistrationResponse) String() string { return proto.CompactTextString(m) }
func (*DeviceRegistrationResponse) ProtoMessage()    {}

func (m *DeviceRegistrationResponse) GetDeviceId() []byte {
	if m != nil {
		return m.DeviceId
	}
	return nil
}

func (m *DeviceRegistrationResponse) GetStatus() DeviceRegistrationStatus {
	if m != nil {
		return m.Status
	}
	return DeviceRegistrationStatus_DEVICE_REGISTRATION_STATUS_UNSPECIFIED
}

type DeviceIdRequest struct {
	DeviceId []byte `protobuf:"bytes,1,opt,name=device_id,json=deviceId,proto3" json:"device_id,omitempty"`
}

func (m *DeviceIdRequest) Reset()         { *m = DeviceIdRequest{} }
func (m *DeviceIdRequest) String() string { return proto.CompactTextString(m) }
func (*DeviceIdRequest) ProtoMessage()    {}

func (m *DeviceIdRequest) GetDeviceId() []byte {
	if m != nil {
		return m.DeviceId
	}
	return nil
}
