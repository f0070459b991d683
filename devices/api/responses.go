// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"encoding/json"
	"net/http"

	"github.com/oneclickio/oneclick"
	"github.com/oneclickio/oneclick/devices"
)

var (
	_ oneclick.Response = (*deviceRes)(nil)
	_ oneclick.Response = (*devicesPageRes)(nil)
	_ oneclick.Response = (*claimedDevicesRes)(nil)
	_ oneclick.Response = (*unclaimRes)(nil)
	_ oneclick.Response = (*methodsRes)(nil)
	_ oneclick.Response = (*invokeMethodRes)(nil)
	_ oneclick.Response = (*eventsPageRes)(nil)
)

type deviceRes struct {
	devices.Device
	created bool
}

func (res deviceRes) Code() int {
	if res.created {
		return http.StatusCreated
	}

	return http.StatusOK
}

func (res deviceRes) Headers() map[string]string {
	if res.created {
		return map[string]string{
			"Location": "/devices/" + res.ID,
		}
	}

	return map[string]string{}
}

func (res deviceRes) Empty() bool {
	return false
}

type devicesPageRes struct {
	devices.DevicesPage
}

func (res devicesPageRes) Code() int {
	return http.StatusOK
}

func (res devicesPageRes) Headers() map[string]string {
	return map[string]string{}
}

func (res devicesPageRes) Empty() bool {
	return false
}

type claimedDevicesRes struct {
	Devices []devices.Device `json:"devices"`
}

func (res claimedDevicesRes) Code() int {
	return http.StatusOK
}

func (res claimedDevicesRes) Headers() map[string]string {
	return map[string]string{}
}

func (res claimedDevicesRes) Empty() bool {
	return false
}

type unclaimRes struct{}

func (res unclaimRes) Code() int {
	return http.StatusNoContent
}

func (res unclaimRes) Headers() map[string]string {
	return map[string]string{}
}

func (res unclaimRes) Empty() bool {
	return true
}

type methodsRes struct {
	Methods []devices.Method `json:"methods"`
}

func (res methodsRes) Code() int {
	return http.StatusOK
}

func (res methodsRes) Headers() map[string]string {
	return map[string]string{}
}

func (res methodsRes) Empty() bool {
	return false
}

type invokeMethodRes struct {
	Payload json.RawMessage `json:"payload,omitempty"`
}

func (res invokeMethodRes) Code() int {
	return http.StatusOK
}

func (res invokeMethodRes) Headers() map[string]string {
	return map[string]string{}
}

func (res invokeMethodRes) Empty() bool {
	return false
}

type eventsPageRes struct {
	devices.EventsPage
}

func (res eventsPageRes) Code() int {
	return http.StatusOK
}

func (res eventsPageRes) Headers() map[string]string {
	return map[string]string{}
}

func (res eventsPageRes) Empty() bool {
	return false
}
