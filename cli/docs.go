// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/oneclickio/oneclick/sidebar"
	"github.com/spf13/cobra"
)

var cmdDocs = []cobra.Command{
	{
		Use:   "index <package_dir> <package_name>",
		Short: "Build docs index",
		Long:  "Builds the documentation sidebar index for a Go package",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			idx, err := sidebar.Build(args[0], args[1])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, idx)
		},
	},
	{
		Use:   "search <package_dir> <package_name> <query>",
		Short: "Search docs index",
		Long:  "Searches the documentation sidebar index of a Go package",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 3 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			idx, err := sidebar.Build(args[0], args[1])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			matches := idx.Search(args[2])
			out := make([]map[string]string, 0, len(matches))
			for _, m := range matches {
				out = append(out, map[string]string{
					"kind":    string(m.Kind),
					"name":    m.Item.Name,
					"summary": m.Item.Summary,
				})
			}

			logJSONCmd(*cmd, out)
		},
	},
}

// NewDocsCmd returns docs command.
func NewDocsCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "docs [index | search]",
		Short: "Documentation index",
		Long:  "Documentation sidebar index: build and search package doc indexes",
	}

	for i := range cmdDocs {
		cmd.AddCommand(&cmdDocs[i])
	}

	return &cmd
}
