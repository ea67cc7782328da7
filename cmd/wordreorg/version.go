package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of wordreorg",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wordreorg %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
