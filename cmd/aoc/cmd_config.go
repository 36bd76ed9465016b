package main

import (
	"github.com/spf13/cobra"
)

// printConfig writes cfg after file and flag overrides have been applied.
func printConfig(cmd *cobra.Command, _ []string) error {
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)

	return err
}
