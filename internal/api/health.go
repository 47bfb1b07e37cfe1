// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"encoding/json"
	"net/http"

	"github.com/absmach/ate/version"
)

type healthInfo struct {
	Status      string `json:"status"`
	Description string `json:"description"`
	Version     string `json:"version"`
	InstanceID  string `json:"instance_id"`
	BuildTime   string `json:"build_time"`
}

// Health returns a handler reporting service health and the build stamp.
func Health(service, instanceID string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		res := healthInfo{
			Status:      "pass",
			Description: service + " service",
			Version:     version.BuildRevision,
			InstanceID:  instanceID,
			BuildTime:   version.BuildTimestamp,
		}

		w.Header().Set("Content-Type", ContentType)
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(res); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
		}
	}
}
