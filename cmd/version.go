package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soocke/landmark-editor/assets"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=...".
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and embedded schemes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "landmark-editor %s\n", Version)
		fmt.Fprintf(cmd.OutOrStdout(), "schemes: %v\n", assets.SchemeNames())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
