// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package pa holds the Go bindings for the ProvisioningApplianceService
// API. The message definitions are kept in lockstep with pa.proto.
package pa

import (
	"github.com/golang/protobuf/proto"
)

type InitSessionRequest struct {
	Sku     string `protobuf:"bytes,1,opt,name=sku,proto3" json:"sku,omitempty"`
	SkuAuth string `protobuf:"bytes,2,opt,name=sku_auth,json=skuAuth,proto3" json:"sku_auth,omitempty"`
}

func (m *InitSessionRequest) Reset()         { *m = InitSessionRequest{} }
func (m *InitSessionRequest) String() string { return proto.CompactTextString(m) }
func (*InitSessionRequest) ProtoMessage()    {}

func (m *InitSessionRequest) GetSku() string {
	if m != nil {
		return m.Sku
	}
	return ""
}

func (m *InitSessionRequest) GetSkuAuth() string {
	if m != nil {
		return m.SkuAuth
	}
	return ""
}

type InitSessionResponse struct {
	SkuSessionToken string `protobuf:"bytes,1,opt,name=sku_session_token,json=skuSessionToken,proto3" json:"sku_session_token,omitempty"`
}

func (m *InitSessionResponse) Reset()         { *m = InitSessionResponse{} }
func (m *InitSessionResponse) String() string { return proto.CompactTextString(m) }
func (*InitSessionResponse) ProtoMessage()    {}

func (m *InitSessionResponse) GetSkuSessionToken() string {
	if m != nil {
		return m.SkuSessionToken
	}
	return ""
}

type CloseSessionRequest struct{}

func (m *CloseSessionRequest) Reset()         { *m = CloseSessionRequest{} }
func (m *CloseSessionRequest) String() string { return proto.CompactTextString(m) }
func (*CloseSessionRequest) ProtoMessage()    {}

type CloseSessionResponse struct{}

func (m *CloseSessionResponse) Reset()         { *m = CloseSessionResponse{} }
func (m *CloseSessionResponse) String() string { return proto.CompactTextString(m) }
func (*CloseSessionResponse) ProtoMessage()    {}

type Certificate struct {
	Blob []byte `protobuf:"bytes,1,opt,name=blob,proto3" json:"blob,omitempty"`
}

func (m *Certificate) Reset()         { *m = Certificate{} }
func (m *Certificate) String() string { return proto.CompactTextString(m) }
func (*Certificate) ProtoMessage()    {}

func (m *Certificate) GetBlob() []byte {
	if m != nil {
		return m.Blob
	}
	return nil
}

type EndorsedKey struct {
	WrappedKey []byte       `protobuf:"bytes,1,opt,name=wrapped_key,json=wrappedKey,proto3" json:"wrapped_key,omitempty"`
	Cert       *Certificate `protobuf:"bytes,2,opt,name=cert,proto3" json:"cert,omitempty"`
}

func (m *EndorsedKey) Reset()         { *m = EndorsedKey{} }
func (m *EndorsedKey) String() string { return proto.CompactTextString(m) }
func (*EndorsedKey) ProtoMessage()    {}

func (m *EndorsedKey) GetWrappedKey() []byte {
	if m != nil {
		return m.WrappedKey
	}
	return nil
}

func (m *EndorsedKey) GetCert() *Certificate {
	if m != nil {
		return m.Cert
	}
	return nil
}

type CreateKeyAndCertRequest struct {
	Sku          string `protobuf:"bytes,1,opt,name=sku,proto3" json:"sku,omitempty"`
	SerialNumber []byte `protobuf:"bytes,2,opt,name=serial_number,json=serialNumber,proto3" json:"serial_number,omitempty"`
}

func (m *CreateKeyAndCertRequest) Reset()         { *m = CreateKeyAndCertRequest{} }
func (m *CreateKeyAndCertRequest) String() string { return proto.CompactTextString(m) }
func (*CreateKeyAndCertRequest) ProtoMessage()    {}

func (m *CreateKeyAndCertRequest) GetSku() string {
	if m != nil {
		return m.Sku
	}
	return ""
}

func (m *CreateKeyAndCertRequest) GetSerialNumber() []byte {
	if m != nil {
		return m.SerialNumber
	}
	return nil
}

type CreateKeyAndCertResponse struct {
	Keys []*EndorsedKey `protobuf:"bytes,1,rep,name=keys,proto3" json:"keys,omitempty"`
}

func (m *CreateKeyAndCertResponse) Reset()         { *m = CreateKeyAndCertResponse{} }
func (m *CreateKeyAndCertResponse) String() string { return proto.CompactTextString(m) }
func (*CreateKeyAndCertResponse) ProtoMessage()    {}

func (m *CreateKeyAndCertResponse) GetKeys() []*EndorsedKey {
	if m != nil {
		return m.Keys
	}
	return nil
}

type EndorseCertBundle struct {
	Tbs      []byte `protobuf:"bytes,1,opt,name=tbs,proto3" json:"tbs,omitempty"`
	KeyLabel string `protobuf:"bytes,2,opt,name=key_label,json=keyLabel,proto3" json:"key_label,omitempty"`
}

func (m *EndorseCertBundle) Reset()         { *m = EndorseCertBundle{} }
func (m *EndorseCertBundle) String() string { return proto.CompactTextString(m) }
func (*EndorseCertBundle) ProtoMessage()    {}

func (m *EndorseCertBundle) GetTbs() []byte {
	if m != nil {
		return m.Tbs
	}
	return nil
}

func (m *EndorseCertBundle) GetKeyLabel() string {
	if m != nil {
		return m.KeyLabel
	}
	return ""
}

type EndorseCertsRequest struct {
	Sku     string               `protobuf:"bytes,1,opt,name=sku,proto3" json:"sku,omitempty"`
	Bundles []*EndorseCertBundle `protobuf:"bytes,2,rep,name=bundles,proto3" json:"bundles,omitempty"`
}

func (m *EndorseCertsRequest) Reset()         { *m = EndorseCertsRequest{} }
func (m *EndorseCertsRequest) String() string { return proto.CompactTextString(m) }
func (*EndorseCertsRequest) ProtoMessage()    {}

func (m *EndorseCertsRequest) GetSku() string {
	if m != nil {
		return m.Sku
	}
	return ""
}

func (m *EndorseCertsRequest) GetBundles() []*EndorseCertBundle {
	if m != nil {
		return m.Bundles
	}
	return nil
}

type EndorseCertsResponse struct {
	Certs []*Certificate `protobuf:"bytes,1,rep,name=certs,proto3" json:"certs,omitempty"`
}

func (m *EndorseCertsResponse) Reset()         { *m = EndorseCertsResponse{} }
func (m *EndorseCertsResponse) String() string { return proto.CompactTextString(m) }
func (*EndorseCertsResponse) ProtoMessage()    {}

func (m *EndorseCertsResponse) GetCerts() []*Certificate {
	if m != nil {
		return m.Certs
	}
	return nil
}

type SymmetricKeygenParams struct {
	SeedLabel   string `protobuf:"bytes,1,opt,name=seed_label,json=seedLabel,proto3" json:"seed_label,omitempty"`
	SizeBytes   uint32 `protobuf:"varint,2,opt,name=size_bytes,json=sizeBytes,proto3" json:"size_bytes,omitempty"`
	Diversifier []byte `protobuf:"bytes,3,opt,name=diversifier,proto3" json:"diversifier,omitempty"`
}

func (m *SymmetricKeygenParams) Reset()         { *m = SymmetricKeygenParams{} }
func (m *SymmetricKeygenParams) String() string { return proto.CompactTextString(m) }
func (*SymmetricKeygenParams) ProtoMessage()    {}

func (m *SymmetricKeygenParams) GetSeedLabel() string {
	if m != nil {
		return m.SeedLabel
	}
	return ""
}

func (m *SymmetricKeygenParams) GetSizeBytes() uint32 {
	if m != nil {
		return m.SizeBytes
	}
	return 0
}

func (m *SymmetricKeygenParams) GetDiversifier() []byte {
	if m != nil {
		return m.Diversifier
	}
	return nil
}

type DeriveSymmetricKeysRequest struct {
	Sku    string                   `protobuf:"bytes,1,opt,name=sku,proto3" json:"sku,omitempty"`
	Params []*SymmetricKeygenParams `protobuf:"bytes,2,rep,name=params,proto3" json:"params,omitempty"`
}

func (m *DeriveSymmetricKeysRequest) Reset()         { *m = DeriveSymmetricKeysRequest{} }
func (m *DeriveSymmetricKeysRequest) String() string { return proto.CompactTextString(m) }
func (*DeriveSymmetricKeysRequest) ProtoMessage()    {}

func (m *DeriveSymmetricKeysRequest) GetSku() string {
	if m != nil {
		return m.Sku
	}
	return ""
}

func (m *DeriveSymmetricKeysRequest) GetParams() []*SymmetricKeygenParams {
	if m != nil {
		return m.Params
	}
	return nil
}

type DeriveSymmetricKeysResponse struct {
	Keys [][]byte `protobuf:"bytes,1,rep,name=keys,proto3" json:"keys,omitempty"`
}

func (m *DeriveSymmetricKeysResponse) Reset()         { *m = DeriveSymmetricKeysResponse{} }
func (m *DeriveSymmetricKeysResponse) String() string { return proto.CompactTextString(m) }
func (*DeriveSymmetricKeysResponse) ProtoMessage()    {}

func (m *DeriveSymmetricKeysResponse) GetKeys() [][]byte {
	if m != nil {
		return m.Keys
	}
	return nil
}

type DeviceRecord struct {
	Sku      string `protobuf:"bytes,1,opt,name=sku,proto3" json:"sku,omitempty"`
	DeviceId []byte `protobuf:"bytes,2,opt,name=device_id,json=deviceId,proto3" json:"device_id,omitempty"`
	Data     []byte `protobuf:"bytes,3,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *DeviceRecord) Reset()         { *m = DeviceRecord{} }
func (m *DeviceRecord) String() string { return proto.CompactTextString(m) }
func (*DeviceRecord) ProtoMessage()    {}

func (m *DeviceRecord) GetSku() string {
	if m != nil {
		return m.Sku
	}
	return ""
}

func (m *DeviceRecord) GetDeviceId() []byte {
	if m != nil {
		return m.DeviceId
	}
	return nil
}

func (m *DeviceRecord) GetData() []byte {
	if m != nil {
		return m.Data
	}
	return nil
}

type RegistrationRequest struct {
	Record *DeviceRecord `protobuf:"bytes,1,opt,name=record,proto3" json:"record,omitempty"`
}

func (m *RegistrationRequest) Reset()         { *m = RegistrationRequest{} }
func (m *RegistrationRequest) String() string { return proto.CompactTextString(m) }
func (*RegistrationRequest) ProtoMessage()    {}

func (m *RegistrationRequest) GetRecord() *DeviceRecord {
	if m != nil {
		return m.Record
	}
	return nil
}

type RegistrationResponse struct{}

func (m *RegistrationResponse) Reset()         { *m = RegistrationResponse{} }
func (m *RegistrationResponse) String() string { return proto.CompactTextString(m) }
func (*RegistrationResponse) ProtoMessage()    {}
