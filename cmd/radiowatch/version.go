package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillsenselab/radiowatch/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "radiowatch %s\n", version.GetFullVersion())
	},
}
