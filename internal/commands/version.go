package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the claude-token-refresh version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("claude-token-refresh version 0.1.0")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
