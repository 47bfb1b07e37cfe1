// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"github.com/absmach/ate/internal/api"
	"github.com/absmach/ate/pkg/errors"
)

var errMissingDeviceID = errors.New("missing device id")

type viewDeviceReq struct {
	deviceID string
}

func (req viewDeviceReq) validate() error {
	if req.deviceID == "" {
		return errors.Wrap(api.ErrInvalidRequest, errMissingDeviceID)
	}
	return nil
}
