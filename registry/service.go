// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"context"
	"time"

	"github.com/absmach/ate/internal/uuid"
	"github.com/absmach/ate/pkg/errors"
)

var (
	errMissingSku      = errors.New("missing sku")
	errMissingDeviceID = errors.New("missing device id")
	errMissingData     = errors.New("missing device data")
)

type service struct {
	repo Repository
	idp  uuid.IDProvider
}

var _ Service = (*service)(nil)

func NewService(repo Repository, idp uuid.IDProvider) Service {
	return &service{
		repo: repo,
		idp:  idp,
	}
}

func (s *service) RegisterDevice(ctx context.Context, device Device) (Device, error) {
	if err := validate(device); err != nil {
		return Device{}, errors.Wrap(ErrMalformedEntity, err)
	}

	id, err := s.idp.ID()
	if err != nil {
		return Device{}, errors.Wrap(ErrCreateEntity, err)
	}
	device.ID = id
	device.CreatedAt = time.Now().UTC()

	if err := s.repo.CreateDevice(ctx, device); err != nil {
		return Device{}, errors.Wrap(ErrCreateEntity, err)
	}
	return device, nil
}

func (s *service) ViewDevice(ctx context.Context, deviceID string) (Device, error) {
	device, err := s.repo.RetrieveDevice(ctx, deviceID)
	if err != nil {
		return Device{}, errors.Wrap(ErrViewEntity, err)
	}
	return device, nil
}

func validate(device Device) error {
	switch {
	case device.Sku == "":
		return errMissingSku
	case device.DeviceID == "":
		return errMissingDeviceID
	case len(device.Data) == 0:
		return errMissingData
	}
	return nil
}
