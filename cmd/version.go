package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCommand バージョンコマンド
func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s (revision %s)\n", Version, Revision)
		},
	}
}
