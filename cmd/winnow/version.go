package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/winnow"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of winnow",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("winnow version %s\n", strings.TrimSpace(winnow.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
