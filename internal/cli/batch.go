package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/usestring/wpjson-seven/internal/batch"
	"github.com/usestring/wpjson-seven/internal/output"
)

func batchCommand(a *app) *cobra.Command {
	var (
		outputDir string
		method    string
		routes    []string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "batch [file|url]",
		Short: "Convert many routes, one schema file per entity",
		Long: `batch converts every route that declares the method (or only the routes
given with --route) and writes <entity>.schema.json files to the output
directory. Routes whose entity name was already produced by an earlier route,
and routes without arguments for the method, are skipped and listed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMethod(method)
			if err != nil {
				return err
			}
			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}

			doc, err := a.load(cmd, args)
			if err != nil {
				return err
			}

			report, runErr := batch.Run(cmd.Context(), a.converter(), doc, batch.Options{
				Dir:     outputDir,
				Method:  m,
				Routes:  routes,
				Workers: a.cfg.BatchWorkers,
				Format:  f,
			})
			if report != nil {
				out := cmd.OutOrStdout()
				for _, w := range report.Written {
					fmt.Fprintf(out, "wrote   %s  %s\n", w.Path, w.Route)
				}
				for _, s := range report.Skipped {
					fmt.Fprintf(out, "skipped %s  %s\n", s.Route, s.Reason)
				}
			}
			return runErr
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "directory to write schema files to")
	cmd.Flags().StringVarP(&method, "method", "m", "POST", "request method")
	cmd.Flags().StringArrayVar(&routes, "route", nil, "route to convert (repeatable; default: every route declaring the method)")
	cmd.Flags().StringVar(&format, "format", string(output.FormatJSON), "output format: json or yaml")
	if err := cmd.MarkFlagRequired("output"); err != nil {
		panic(err)
	}
	return cmd
}
