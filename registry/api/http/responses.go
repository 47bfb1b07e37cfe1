// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"
	"time"

	"github.com/absmach/ate/internal/api"
)

var _ api.Response = (*viewDeviceRes)(nil)

type viewDeviceRes struct {
	ID        string    `json:"id"`
	Sku       string    `json:"sku"`
	DeviceID  string    `json:"device_id"`
	Data      []byte    `json:"data"`
	CreatedAt time.Time `json:"created_at"`
}

func (res viewDeviceRes) Code() int {
	return http.StatusOK
}

func (res viewDeviceRes) Headers() map[string]string {
	return map[string]string{}
}

func (res viewDeviceRes) Empty() bool {
	return false
}
