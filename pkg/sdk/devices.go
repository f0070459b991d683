// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

package sdk

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/oneclickio/oneclick/pkg/errors"
)

// Device represents a single-function connected device.
type Device struct {
	ID            string            `json:"id,omitempty"`
	Type          string            `json:"type,omitempty"`
	ClaimCode     string            `json:"claim_code,omitempty"`
	ClaimState    string            `json:"claim_state,omitempty"`
	Enabled       bool              `json:"enabled,omitempty"`
	Owner         string            `json:"owner,omitempty"`
	RemainingLife float64           `json:"remaining_life,omitempty"`
	Tags          map[string]string `json:"tags,omitempty"`
	Methods       []DeviceMethod    `json:"methods,omitempty"`
	CreatedAt     time.Time         `json:"created_at,omitempty"`
	UpdatedAt     time.Time         `json:"updated_at,omitempty"`
}

// DeviceMethod describes an invokable device action.
type DeviceMethod struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// DeviceMethodInvocation is a request to execute a device method.
type DeviceMethodInvocation struct {
	MethodName string          `json:"method_name"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

// DeviceMethodResponse carries the device reply to a method invocation.
type DeviceMethodResponse struct {
	Payload json.RawMessage `json:"payload,omitempty"`
}

// DeviceEvent is a single record from the device event log.
type DeviceEvent struct {
	ID         string          `json:"id"`
	DeviceID   string          `json:"device_id"`
	Type       string          `json:"type"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// DevicesPage contains a page of devices.
type DevicesPage struct {
	Total   uint64   `json:"total"`
	Offset  uint64   `json:"offset"`
	Limit   uint64   `json:"limit"`
	Devices []Device `json:"devices"`
}

// EventsPage contains a page of device events.
type EventsPage struct {
	Total  uint64        `json:"total"`
	Offset uint64        `json:"offset"`
	Limit  uint64        `json:"limit"`
	Events []DeviceEvent `json:"events"`
}

func (sdk ocSDK) CreateDevice(device Device, token string) (Device, errors.SDKError) {
	data, err := json.Marshal(device)
	if err != nil {
		return Device{}, errors.NewSDKError(err)
	}

	url := sdk.devicesURL + "/" + devicesEndpoint

	_, body, sdkerr := sdk.processRequest(http.MethodPost, url, token, data, nil, http.StatusCreated)
	if sdkerr != nil {
		return Device{}, sdkerr
	}

	device = Device{}
	if err := json.Unmarshal(body, &device); err != nil {
		return Device{}, errors.NewSDKError(err)
	}

	return device, nil
}

func (sdk ocSDK) ClaimDevicesByClaimCode(claimCode, token string) ([]Device, errors.SDKError) {
	url := sdk.devicesURL + "/" + claimsEndpoint + "/" + claimCode

	_, body, sdkerr := sdk.processRequest(http.MethodPut, url, token, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return nil, sdkerr
	}

	var res struct {
		Devices []Device `json:"devices"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, errors.NewSDKError(err)
	}

	return res.Devices, nil
}

func (sdk ocSDK) DescribeDevice(id, token string) (Device, errors.SDKError) {
	url := sdk.devicesURL + "/" + devicesEndpoint + "/" + id

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, token, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return Device{}, sdkerr
	}

	var device Device
	if err := json.Unmarshal(body, &device); err != nil {
		return Device{}, errors.NewSDKError(err)
	}

	return device, nil
}

func (sdk ocSDK) FinalizeDeviceClaim(id string, tags map[string]string, token string) (Device, errors.SDKError) {
	var data []byte
	if len(tags) > 0 {
		var err error
		data, err = json.Marshal(map[string]map[string]string{"tags": tags})
		if err != nil {
			return Device{}, errors.NewSDKError(err)
		}
	}

	url := sdk.devicesURL + "/" + devicesEndpoint + "/" + id + "/finalize-claim"

	_, body, sdkerr := sdk.processRequest(http.MethodPut, url, token, data, nil, http.StatusOK)
	if sdkerr != nil {
		return Device{}, sdkerr
	}

	var device Device
	if err := json.Unmarshal(body, &device); err != nil {
		return Device{}, errors.NewSDKError(err)
	}

	return device, nil
}

func (sdk ocSDK) GetDeviceMethods(id, token string) ([]DeviceMethod, errors.SDKError) {
	url := sdk.devicesURL + "/" + devicesEndpoint + "/" + id + "/methods"

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, token, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return nil, sdkerr
	}

	var res struct {
		Methods []DeviceMethod `json:"methods"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, errors.NewSDKError(err)
	}

	return res.Methods, nil
}

func (sdk ocSDK) InitiateDeviceClaim(id, token string) (Device, errors.SDKError) {
	url := sdk.devicesURL + "/" + devicesEndpoint + "/" + id + "/initiate-claim"

	_, body, sdkerr := sdk.processRequest(http.MethodPut, url, token, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return Device{}, sdkerr
	}

	var device Device
	if err := json.Unmarshal(body, &device); err != nil {
		return Device{}, errors.NewSDKError(err)
	}

	return device, nil
}

func (sdk ocSDK) InvokeDeviceMethod(id string, inv DeviceMethodInvocation, token string) (DeviceMethodResponse, errors.SDKError) {
	data, err := json.Marshal(inv)
	if err != nil {
		return DeviceMethodResponse{}, errors.NewSDKError(err)
	}

	url := sdk.devicesURL + "/" + devicesEndpoint + "/" + id + "/methods"

	_, body, sdkerr := sdk.processRequest(http.MethodPost, url, token, data, nil, http.StatusOK)
	if sdkerr != nil {
		return DeviceMethodResponse{}, sdkerr
	}

	var res DeviceMethodResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return DeviceMethodResponse{}, errors.NewSDKError(err)
	}

	return res, nil
}

func (sdk ocSDK) ListDeviceEvents(id string, pm PageMetadata, token string) (EventsPage, errors.SDKError) {
	url, err := sdk.withQueryParams(sdk.devicesURL, devicesEndpoint+"/"+id+"/events", pm)
	if err != nil {
		return EventsPage{}, errors.NewSDKError(err)
	}

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, token, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return EventsPage{}, sdkerr
	}

	var page EventsPage
	if err := json.Unmarshal(body, &page); err != nil {
		return EventsPage{}, errors.NewSDKError(err)
	}

	return page, nil
}

func (sdk ocSDK) ListDevices(pm PageMetadata, token string) (DevicesPage, errors.SDKError) {
	url, err := sdk.withQueryParams(sdk.devicesURL, devicesEndpoint, pm)
	if err != nil {
		return DevicesPage{}, errors.NewSDKError(err)
	}

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, token, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return DevicesPage{}, sdkerr
	}

	var page DevicesPage
	if err := json.Unmarshal(body, &page); err != nil {
		return DevicesPage{}, errors.NewSDKError(err)
	}

	return page, nil
}

func (sdk ocSDK) TagResource(id string, tags map[string]string, token string) (Device, errors.SDKError) {
	data, err := json.Marshal(map[string]map[string]string{"tags": tags})
	if err != nil {
		return Device{}, errors.NewSDKError(err)
	}

	url := sdk.devicesURL + "/" + devicesEndpoint + "/" + id + "/tags"

	_, body, sdkerr := sdk.processRequest(http.MethodPut, url, token, data, nil, http.StatusOK)
	if sdkerr != nil {
		return Device{}, sdkerr
	}

	var device Device
	if err := json.Unmarshal(body, &device); err != nil {
		return Device{}, errors.NewSDKError(err)
	}

	return device, nil
}

func (sdk ocSDK) UnclaimDevice(id, token string) errors.SDKError {
	url := sdk.devicesURL + "/" + devicesEndpoint + "/" + id + "/unclaim"

	_, _, sdkerr := sdk.processRequest(http.MethodPut, url, token, nil, nil, http.StatusNoContent)

	return sdkerr
}

func (sdk ocSDK) UntagResource(id string, keys []string, token string) (Device, errors.SDKError) {
	url := sdk.devicesURL + "/" + devicesEndpoint + "/" + id + "/tags?keys=" + strings.Join(keys, ",")

	_, body, sdkerr := sdk.processRequest(http.MethodDelete, url, token, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return Device{}, sdkerr
	}

	var device Device
	if err := json.Unmarshal(body, &device); err != nil {
		return Device{}, errors.NewSDKError(err)
	}

	return device, nil
}

func (sdk ocSDK) UpdateDeviceState(id string, enabled bool, token string) (Device, errors.SDKError) {
	data, err := json.Marshal(map[string]bool{"enabled": enabled})
	if err != nil {
		return Device{}, errors.NewSDKError(err)
	}

	url := sdk.devicesURL + "/" + devicesEndpoint + "/" + id + "/state"

	_, body, sdkerr := sdk.processRequest(http.MethodPut, url, token, data, nil, http.StatusOK)
	if sdkerr != nil {
		return Device{}, sdkerr
	}

	var device Device
	if err := json.Unmarshal(body, &device); err != nil {
		return Device{}, errors.NewSDKError(err)
	}

	return device, nil
}
