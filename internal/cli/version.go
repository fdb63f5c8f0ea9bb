package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Build version: %s\n", buildInfo.BuildVersion())
		fmt.Printf("Build date: %s\n", buildInfo.BuildDate())
		fmt.Printf("Build commit: %s\n", buildInfo.BuildCommit())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
