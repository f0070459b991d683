// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

// Package main contains cli main function to run the devices service CLI.
package main

import (
	"log"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/oneclickio/oneclick/cli"
	sdk "github.com/oneclickio/oneclick/pkg/sdk"
	"github.com/spf13/cobra"
)

const defURL = "http://localhost:9030"

func main() {
	sdkConf := sdk.Config{
		DevicesURL:      defURL,
		HostURL:         defURL,
		MsgContentType:  sdk.CTJSON,
		TLSVerification: false,
	}

	rootCmd := &cobra.Command{
		Use: "oneclick-cli",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			s := sdk.NewSDK(sdkConf)
			cli.SetSDK(s)
		},
	}

	cc.Init(&cc.Config{
		RootCmd:       rootCmd,
		Headings:      cc.HiCyan + cc.Bold + cc.Underline,
		Commands:      cc.HiYellow + cc.Bold,
		Example:       cc.Italic,
		ExecName:      cc.Bold,
		Flags:         cc.Bold,
		FlagsDataType: cc.Italic + cc.HiBlue,
	})

	devicesCmd := cli.NewDevicesCmd()
	docsCmd := cli.NewDocsCmd()
	healthCmd := cli.NewHealthCmd()

	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(healthCmd)

	rootCmd.PersistentFlags().StringVarP(&sdkConf.DevicesURL, "devices-url", "d", sdkConf.DevicesURL, "Devices service URL")
	rootCmd.PersistentFlags().BoolVarP(&sdkConf.CurlFlag, "curl", "c", false, "Convert HTTP request to cURL command")
	rootCmd.PersistentFlags().Uint64VarP(&cli.Limit, "limit", "l", 10, "Limit query parameter")
	rootCmd.PersistentFlags().Uint64VarP(&cli.Offset, "offset", "o", 0, "Offset query parameter")
	rootCmd.PersistentFlags().StringVarP(&cli.Type, "type", "t", "", "Device type query parameter")
	rootCmd.PersistentFlags().StringVarP(&cli.State, "state", "s", "", "Claim state query parameter")
	rootCmd.PersistentFlags().BoolVarP(&cli.RawOutput, "raw", "r", false, "Enables raw output mode for easier parsing of output")

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("failed to execute command: %s", err)
	}
}
