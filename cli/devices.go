// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"strconv"
	"strings"

	ocsdk "github.com/oneclickio/oneclick/pkg/sdk"
	"github.com/spf13/cobra"
)

var cmdDevices = []cobra.Command{
	{
		Use:   "create <JSON_device> [user_auth_token]",
		Short: "Create device",
		Long:  "Registers a new unclaimed device",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 1 || len(args) > 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			token, err := authToken(args, 1)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			var device ocsdk.Device
			if err := json.Unmarshal([]byte(args[0]), &device); err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			device, sdkerr := sdk.CreateDevice(device, token)
			if sdkerr != nil {
				logErrorCmd(*cmd, sdkerr)
				return
			}

			logCreatedCmd(*cmd, device.ID)
		},
	},
	{
		Use:   "get [all | <device_id>] [user_auth_token]",
		Short: "Get devices",
		Long:  "Get all devices or a single device by ID",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 1 || len(args) > 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			token, err := authToken(args, 1)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			if args[0] == "all" {
				pm := ocsdk.PageMetadata{
					Offset: Offset,
					Limit:  Limit,
					Type:   Type,
					State:  State,
				}
				page, err := sdk.ListDevices(pm, token)
				if err != nil {
					logErrorCmd(*cmd, err)
					return
				}
				logJSONCmd(*cmd, page)
				return
			}

			device, sdkerr := sdk.DescribeDevice(args[0], token)
			if sdkerr != nil {
				logErrorCmd(*cmd, sdkerr)
				return
			}

			logJSONCmd(*cmd, device)
		},
	},
	{
		Use:   "claim <claim_code> [user_auth_token]",
		Short: "Claim devices",
		Long:  "Claims all devices registered with the given claim code",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 1 || len(args) > 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			token, err := authToken(args, 1)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			claimed, sdkerr := sdk.ClaimDevicesByClaimCode(args[0], token)
			if sdkerr != nil {
				logErrorCmd(*cmd, sdkerr)
				return
			}

			logJSONCmd(*cmd, claimed)
		},
	},
	{
		Use:   "initiate-claim <device_id> [user_auth_token]",
		Short: "Initiate claim",
		Long:  "Starts the claim process for a device",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 1 || len(args) > 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			token, err := authToken(args, 1)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			device, sdkerr := sdk.InitiateDeviceClaim(args[0], token)
			if sdkerr != nil {
				logErrorCmd(*cmd, sdkerr)
				return
			}

			logJSONCmd(*cmd, device)
		},
	},
	{
		Use:   "finalize-claim <device_id> <JSON_tags> [user_auth_token]",
		Short: "Finalize claim",
		Long:  "Completes a previously initiated device claim, optionally applying tags",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 2 || len(args) > 3 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			token, err := authToken(args, 2)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			var tags map[string]string
			if err := json.Unmarshal([]byte(args[1]), &tags); err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			device, sdkerr := sdk.FinalizeDeviceClaim(args[0], tags, token)
			if sdkerr != nil {
				logErrorCmd(*cmd, sdkerr)
				return
			}

			logJSONCmd(*cmd, device)
		},
	},
	{
		Use:   "unclaim <device_id> [user_auth_token]",
		Short: "Unclaim device",
		Long:  "Releases a claimed device",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 1 || len(args) > 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			token, err := authToken(args, 1)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			if err := sdk.UnclaimDevice(args[0], token); err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logOKCmd(*cmd)
		},
	},
	{
		Use:   "methods <device_id> [user_auth_token]",
		Short: "Get device methods",
		Long:  "Lists the methods the device exposes",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 1 || len(args) > 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			token, err := authToken(args, 1)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			methods, sdkerr := sdk.GetDeviceMethods(args[0], token)
			if sdkerr != nil {
				logErrorCmd(*cmd, sdkerr)
				return
			}

			logJSONCmd(*cmd, methods)
		},
	},
	{
		Use:   "invoke <device_id> <JSON_invocation> [user_auth_token]",
		Short: "Invoke device method",
		Long:  "Invokes a method on the device and prints the device reply",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 2 || len(args) > 3 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			token, err := authToken(args, 2)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			var inv ocsdk.DeviceMethodInvocation
			if err := json.Unmarshal([]byte(args[1]), &inv); err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			res, sdkerr := sdk.InvokeDeviceMethod(args[0], inv, token)
			if sdkerr != nil {
				logErrorCmd(*cmd, sdkerr)
				return
			}

			logJSONCmd(*cmd, res)
		},
	},
	{
		Use:   "events <device_id> [user_auth_token]",
		Short: "List device events",
		Long:  "Lists events recorded for the device",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 1 || len(args) > 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			token, err := authToken(args, 1)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			pm := ocsdk.PageMetadata{
				Offset: Offset,
				Limit:  Limit,
			}
			page, sdkerr := sdk.ListDeviceEvents(args[0], pm, token)
			if sdkerr != nil {
				logErrorCmd(*cmd, sdkerr)
				return
			}

			logJSONCmd(*cmd, page)
		},
	},
	{
		Use:   "state <device_id> <enabled> [user_auth_token]",
		Short: "Update device state",
		Long:  "Enables or disables a claimed device",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 2 || len(args) > 3 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			token, err := authToken(args, 2)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			enabled, err := strconv.ParseBool(args[1])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			device, sdkerr := sdk.UpdateDeviceState(args[0], enabled, token)
			if sdkerr != nil {
				logErrorCmd(*cmd, sdkerr)
				return
			}

			logJSONCmd(*cmd, device)
		},
	},
	{
		Use:   "tag <device_id> <JSON_tags> [user_auth_token]",
		Short: "Tag device",
		Long:  "Adds or overwrites device tags",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 2 || len(args) > 3 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			token, err := authToken(args, 2)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			var tags map[string]string
			if err := json.Unmarshal([]byte(args[1]), &tags); err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			device, sdkerr := sdk.TagResource(args[0], tags, token)
			if sdkerr != nil {
				logErrorCmd(*cmd, sdkerr)
				return
			}

			logJSONCmd(*cmd, device)
		},
	},
	{
		Use:   "untag <device_id> <tag_keys> [user_auth_token]",
		Short: "Untag device",
		Long:  "Removes comma-separated tag keys from the device",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 2 || len(args) > 3 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			token, err := authToken(args, 2)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			device, sdkerr := sdk.UntagResource(args[0], strings.Split(args[1], ","), token)
			if sdkerr != nil {
				logErrorCmd(*cmd, sdkerr)
				return
			}

			logJSONCmd(*cmd, device)
		},
	},
}

// NewDevicesCmd returns devices command.
func NewDevicesCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "devices [create | get | claim | initiate-claim | finalize-claim | unclaim | methods | invoke | events | state | tag | untag]",
		Short: "Devices management",
		Long:  "Devices management: create, claim, control and inspect devices",
	}

	for i := range cmdDevices {
		cmd.AddCommand(&cmdDevices[i])
	}

	return &cmd
}
