// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

// Package sdk provides a Go client for the OneClick devices service API.
package sdk

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/oneclickio/oneclick/pkg/errors"
	"moul.io/http2curl"
)

const (
	// CTJSON represents JSON content type.
	CTJSON ContentType = "application/json"

	BearerPrefix = "Bearer "

	devicesEndpoint = "devices"
	claimsEndpoint  = "claims"
	healthEndpoint  = "health"
)

// ContentType represents all possible content types.
type ContentType string

var _ SDK = (*ocSDK)(nil)

var (
	// ErrFailedClaim indicates that the device claim operation failed.
	ErrFailedClaim = errors.New("failed to claim device")

	// ErrFailedFetch indicates that fetching of entity data failed.
	ErrFailedFetch = errors.New("failed to fetch entity")

	// ErrFailedUpdate indicates that entity update failed.
	ErrFailedUpdate = errors.New("failed to update entity")

	// ErrFailedInvoke indicates that device method invocation failed.
	ErrFailedInvoke = errors.New("failed to invoke device method")
)

// PageMetadata contains page-related metadata used as query parameters
// for list operations.
type PageMetadata struct {
	Total     uint64 `json:"total"`
	Offset    uint64 `json:"offset"`
	Limit     uint64 `json:"limit"`
	Type      string `json:"type,omitempty"`
	State     string `json:"state,omitempty"`
	Enabled   *bool  `json:"enabled,omitempty"`
	From      int64  `json:"from,omitempty"`
	To        int64  `json:"to,omitempty"`
	Direction string `json:"dir,omitempty"`
}

// SDK contains the OneClick devices service API.
type SDK interface {
	// CreateDevice registers a new unclaimed device.
	//
	// example:
	//  device := sdk.Device{
	//    Type:      "button",
	//    ClaimCode: "ABC123XYZ789",
	//  }
	//  device, _ := sdk.CreateDevice(device, "token")
	//  fmt.Println(device)
	CreateDevice(device Device, token string) (Device, errors.SDKError)

	// ClaimDevicesByClaimCode claims one or more devices using a claim code.
	//
	// example:
	//  devices, _ := sdk.ClaimDevicesByClaimCode("ABC123XYZ789", "token")
	//  fmt.Println(devices)
	ClaimDevicesByClaimCode(claimCode, token string) ([]Device, errors.SDKError)

	// DescribeDevice returns device details for the given device ID.
	//
	// example:
	//  device, _ := sdk.DescribeDevice("deviceID", "token")
	//  fmt.Println(device)
	DescribeDevice(id, token string) (Device, errors.SDKError)

	// FinalizeDeviceClaim finalizes a previously initiated device claim.
	//
	// example:
	//  device, _ := sdk.FinalizeDeviceClaim("deviceID", map[string]string{"room": "kitchen"}, "token")
	//  fmt.Println(device)
	FinalizeDeviceClaim(id string, tags map[string]string, token string) (Device, errors.SDKError)

	// GetDeviceMethods lists the methods available for the given device.
	//
	// example:
	//  methods, _ := sdk.GetDeviceMethods("deviceID", "token")
	//  fmt.Println(methods)
	GetDeviceMethods(id, token string) ([]DeviceMethod, errors.SDKError)

	// InitiateDeviceClaim starts the claim process for a device.
	//
	// example:
	//  device, _ := sdk.InitiateDeviceClaim("deviceID", "token")
	//  fmt.Println(device)
	InitiateDeviceClaim(id, token string) (Device, errors.SDKError)

	// InvokeDeviceMethod invokes a method on the given device.
	//
	// example:
	//  inv := sdk.DeviceMethodInvocation{MethodName: "blink"}
	//  res, _ := sdk.InvokeDeviceMethod("deviceID", inv, "token")
	//  fmt.Println(res)
	InvokeDeviceMethod(id string, inv DeviceMethodInvocation, token string) (DeviceMethodResponse, errors.SDKError)

	// ListDeviceEvents lists events recorded for the device within the
	// given page window.
	//
	// example:
	//	pm := sdk.PageMetadata{
	//		Offset: 0,
	//		Limit:  10,
	//	}
	//	events, _ := sdk.ListDeviceEvents("deviceID", pm, "token")
	//	fmt.Println(events)
	ListDeviceEvents(id string, pm PageMetadata, token string) (EventsPage, errors.SDKError)

	// ListDevices lists devices matching the page filters.
	//
	// example:
	//	pm := sdk.PageMetadata{
	//		Offset: 0,
	//		Limit:  10,
	//		Type:   "button",
	//	}
	//	devices, _ := sdk.ListDevices(pm, "token")
	//	fmt.Println(devices)
	ListDevices(pm PageMetadata, token string) (DevicesPage, errors.SDKError)

	// TagResource adds or overwrites tags on a device.
	//
	// example:
	//  device, _ := sdk.TagResource("deviceID", map[string]string{"room": "kitchen"}, "token")
	//  fmt.Println(device)
	TagResource(id string, tags map[string]string, token string) (Device, errors.SDKError)

	// UnclaimDevice releases a claimed device.
	//
	// example:
	//  err := sdk.UnclaimDevice("deviceID", "token")
	//  fmt.Println(err)
	UnclaimDevice(id, token string) errors.SDKError

	// UntagResource removes the given tag keys from a device.
	//
	// example:
	//  device, _ := sdk.UntagResource("deviceID", []string{"room"}, "token")
	//  fmt.Println(device)
	UntagResource(id string, keys []string, token string) (Device, errors.SDKError)

	// UpdateDeviceState enables or disables a device.
	//
	// example:
	//  device, _ := sdk.UpdateDeviceState("deviceID", true, "token")
	//  fmt.Println(device)
	UpdateDeviceState(id string, enabled bool, token string) (Device, errors.SDKError)

	// Health returns service health check.
	//
	// example:
	//  health, _ := sdk.Health()
	//  fmt.Println(health)
	Health() (HealthInfo, errors.SDKError)
}

type ocSDK struct {
	devicesURL string
	HostURL    string

	msgContentType ContentType
	client         *http.Client
	curlFlag       bool
}

// Config contains sdk configuration parameters.
type Config struct {
	DevicesURL string
	HostURL    string

	MsgContentType  ContentType
	TLSVerification bool
	CurlFlag        bool
}

// NewSDK returns new OneClick SDK instance.
func NewSDK(conf Config) SDK {
	return &ocSDK{
		devicesURL: conf.DevicesURL,
		HostURL:    conf.HostURL,

		msgContentType: conf.MsgContentType,
		client: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: !conf.TLSVerification,
				},
			},
		},
		curlFlag: conf.CurlFlag,
	}
}

// processRequest creates and sends a new HTTP request, and checks for
// errors in the HTTP response.
func (sdk ocSDK) processRequest(method, reqUrl, token string, data []byte, headers map[string]string, expectedRespCodes ...int) (http.Header, []byte, errors.SDKError) {
	req, err := http.NewRequest(method, reqUrl, bytes.NewReader(data))
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}

	// Sets a default value for the Content-Type.
	// Overridden if Content-Type is passed in the headers arguments.
	req.Header.Add("Content-Type", string(CTJSON))

	for key, value := range headers {
		req.Header.Add(key, value)
	}

	if token != "" {
		if !strings.HasPrefix(token, BearerPrefix) {
			token = BearerPrefix + token
		}
		req.Header.Set("Authorization", token)
	}

	if sdk.curlFlag {
		curlCommand, err := http2curl.GetCurlCommand(req)
		if err != nil {
			return nil, nil, errors.NewSDKError(err)
		}
		log.Println(curlCommand.String())
	}

	resp, err := sdk.client.Do(req)
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}
	defer resp.Body.Close()

	sdkerr := errors.CheckError(resp, expectedRespCodes...)
	if sdkerr != nil {
		return make(http.Header), []byte{}, sdkerr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}

	return resp.Header, body, nil
}

func (sdk ocSDK) withQueryParams(baseURL, endpoint string, pm PageMetadata) (string, error) {
	q, err := pm.query()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s?%s", baseURL, endpoint, q), nil
}

func (pm PageMetadata) query() (string, error) {
	q := url.Values{}
	if pm.Offset != 0 {
		q.Add("offset", strconv.FormatUint(pm.Offset, 10))
	}
	if pm.Limit != 0 {
		q.Add("limit", strconv.FormatUint(pm.Limit, 10))
	}
	if pm.Type != "" {
		q.Add("type", pm.Type)
	}
	if pm.State != "" {
		q.Add("state", pm.State)
	}
	if pm.Enabled != nil {
		q.Add("enabled", strconv.FormatBool(*pm.Enabled))
	}
	if pm.From != 0 {
		q.Add("from", strconv.FormatInt(pm.From, 10))
	}
	if pm.To != 0 {
		q.Add("to", strconv.FormatInt(pm.To, 10))
	}
	if pm.Direction != "" {
		q.Add("dir", pm.Direction)
	}

	return q.Encode(), nil
}
