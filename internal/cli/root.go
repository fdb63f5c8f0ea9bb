// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the pwned-check command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pwned-check/models"
)

var rootCmd = &cobra.Command{
	Use:   "pwned-check [COMMAND] [OPTIONS]",
	Short: "Check credentials against the Pwned Passwords breach corpus",
	Long: "Check passwords and password digests against the Pwned Passwords " +
		"(haveibeenpwned.com) breach corpus using k-anonymity range queries. " +
		"Only the first five characters of the credential digest ever leave the machine.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print more information on the processing")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON configuration file")
}

// SetBuildInfo stores linker-injected build metadata for the version command.
func SetBuildInfo(info models.AppBuildInfo) {
	buildInfo = info
}

// Execute runs the root command. The returned error is the command's, so the
// caller can translate it into an exit code.
func Execute() error {
	return rootCmd.Execute()
}
