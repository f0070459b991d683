// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

package events

import (
	"encoding/json"
	"time"

	"github.com/oneclickio/oneclick/devices"
	"github.com/oneclickio/oneclick/pkg/events"
)

const (
	devicePrefix = "device."

	deviceAdd           = devicePrefix + "add"
	deviceView          = devicePrefix + "view"
	deviceList          = devicePrefix + "list"
	deviceInitiateClaim = devicePrefix + "initiate_claim"
	deviceFinalizeClaim = devicePrefix + "finalize_claim"
	deviceClaimByCode   = devicePrefix + "claim_by_code"
	deviceUnclaim       = devicePrefix + "unclaim"
	deviceInvokeMethod  = devicePrefix + "invoke_method"
	deviceUpdateState   = devicePrefix + "update_state"
	deviceTag           = devicePrefix + "tag"
	deviceUntag         = devicePrefix + "untag"
)

var (
	_ events.Event = (*deviceEvent)(nil)
	_ events.Event = (*claimByCodeEvent)(nil)
	_ events.Event = (*invokeMethodEvent)(nil)
	_ events.Event = (*listEvent)(nil)
)

type deviceEvent struct {
	operation string
	device    devices.Device
}

func (de deviceEvent) Encode() (map[string]interface{}, error) {
	val := map[string]interface{}{
		"operation":   de.operation,
		"id":          de.device.ID,
		"type":        de.device.Type,
		"claim_state": de.device.ClaimState.String(),
		"enabled":     de.device.Enabled,
	}
	if de.device.Owner != "" {
		val["owner"] = de.device.Owner
	}
	if len(de.device.Tags) > 0 {
		tags, err := json.Marshal(de.device.Tags)
		if err != nil {
			return map[string]interface{}{}, err
		}
		val["tags"] = string(tags)
	}
	if !de.device.UpdatedAt.IsZero() {
		val["updated_at"] = de.device.UpdatedAt.Format(time.RFC3339)
	}

	return val, nil
}

type claimByCodeEvent struct {
	code  string
	ids   []string
	owner string
}

func (ce claimByCodeEvent) Encode() (map[string]interface{}, error) {
	return map[string]interface{}{
		"operation":  deviceClaimByCode,
		"claim_code": ce.code,
		"ids":        ce.ids,
		"owner":      ce.owner,
	}, nil
}

type invokeMethodEvent struct {
	deviceID   string
	methodName string
}

func (ie invokeMethodEvent) Encode() (map[string]interface{}, error) {
	return map[string]interface{}{
		"operation":   deviceInvokeMethod,
		"id":          ie.deviceID,
		"method_name": ie.methodName,
	}, nil
}

type listEvent struct {
	operation string
	total     uint64
	offset    uint64
	limit     uint64
}

func (le listEvent) Encode() (map[string]interface{}, error) {
	return map[string]interface{}{
		"operation": le.operation,
		"total":     le.total,
		"offset":    le.offset,
		"limit":     le.limit,
	}, nil
}
