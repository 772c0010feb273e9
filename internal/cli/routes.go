package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/usestring/wpjson-seven/internal/mcp/tools"
)

func routesCommand(a *app) *cobra.Command {
	var (
		method    string
		namespace string
	)

	cmd := &cobra.Command{
		Use:   "routes [file|url]",
		Short: "List the routes of a discovery document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if method != "" {
				m, err := parseMethod(method)
				if err != nil {
					return err
				}
				method = m
			}

			doc, err := a.load(cmd, args)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "METHODS\tROUTE\tENTITY")
			for _, r := range tools.ListRoutes(doc, namespace, method) {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", strings.Join(r.Methods, ","), r.Route, r.Entity)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", "", "only list routes declaring this method")
	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", `only list routes in this namespace, e.g. "wc/v3"`)
	return cmd
}
