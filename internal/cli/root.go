package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "newslens",
	Short: "Session-authenticated web front end for the news analysis API",
	Long: `Newslens serves the login, register and analyzer pages, keeps browser
sessions in memory or Redis, and proxies analysis and history requests to
the upstream news API on behalf of the signed-in user.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("newslens version {{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
