package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/newslens/app/web"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the route table",
	Args:  cobra.NoArgs,
	RunE:  runRoutes,
}

func init() {
	rootCmd.AddCommand(routesCmd)
}

func runRoutes(cmd *cobra.Command, _ []string) error {
	// Routes don't depend on the session backend, so skip connecting to one.
	cfg := web.DefaultConfig()
	app, err := web.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to build app: %w", err)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tPATTERN")
	for _, r := range app.Routes() {
		fmt.Fprintf(tw, "%s\t%s\n", r.Method, r.Pattern)
	}
	return tw.Flush()
}
