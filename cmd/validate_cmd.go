// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tracedump/tracedump/cmd/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the export configuration file without touching the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := cmd.Flags().GetString("configfile")
		if err != nil {
			return err
		}
		if _, err := config.ParseExportConfig(file); err != nil {
			return err
		}
		fmt.Printf("%s: configuration valid\n", file) //nolint:forbidigo
		return nil
	},
}
