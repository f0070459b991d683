// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

package sdk

import (
	"encoding/json"
	"net/http"

	"github.com/oneclickio/oneclick/pkg/errors"
)

// HealthInfo contains the health check response.
type HealthInfo struct {
	// Status contains service status.
	Status string `json:"status"`

	// Version contains current service version.
	Version string `json:"version"`

	// Commit represents the git hash commit.
	Commit string `json:"commit"`

	// Description contains service description.
	Description string `json:"description"`

	// BuildTime contains service build time.
	BuildTime string `json:"build_time"`

	// InstanceID contains the ID of the service instance.
	InstanceID string `json:"instance_id"`
}

func (sdk ocSDK) Health() (HealthInfo, errors.SDKError) {
	url := sdk.devicesURL + "/" + healthEndpoint

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, "", nil, nil, http.StatusOK)
	if sdkerr != nil {
		return HealthInfo{}, sdkerr
	}

	var h HealthInfo
	if err := json.Unmarshal(body, &h); err != nil {
		return HealthInfo{}, errors.NewSDKError(err)
	}

	return h, nil
}
