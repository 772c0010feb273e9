// Package cli implements the wpjson-seven command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/usestring/wpjson-seven/internal/config"
	"github.com/usestring/wpjson-seven/internal/logging"
	"github.com/usestring/wpjson-seven/internal/output"
	"github.com/usestring/wpjson-seven/internal/source"
	"github.com/usestring/wpjson-seven/pkg/client"
	"github.com/usestring/wpjson-seven/pkg/converter"
	"github.com/usestring/wpjson-seven/pkg/draft7"
	"github.com/usestring/wpjson-seven/pkg/wpschema"
)

var methods = []string{"GET", "POST", "PUT", "PATCH", "DELETE"}

// app carries the state shared by all commands of one invocation.
type app struct {
	cfg     *config.Config
	version string

	insecure   bool
	logLevel   string
	logCleanup func() error
}

// Command builds the root command. cfg supplies defaults that flags may
// override.
func Command(version string, cfg *config.Config) *cobra.Command {
	a := &app{cfg: cfg, version: version}

	var (
		route      string
		method     string
		outputDir  string
		entityName string
		format     string
		jq         string
	)

	cmd := &cobra.Command{
		SilenceUsage:  true, // Don't print usage on Run error.
		SilenceErrors: true, // Don't print errors; main does it.
		Use:           "wpjson-seven [file|url]",
		Short:         "Convert WordPress REST route arguments to JSON Schema draft-07",
		Long: `wpjson-seven reads a WordPress REST discovery document (the /wp-json/ index)
from a site URL or a local file and converts the arguments one route accepts
for one method into a JSON Schema draft-07 document.

Without a source argument the site named by WP_SCHEMA_SITE (environment or
.env file) is used.`,
		Example: `  wpjson-seven https://shop.example.com -r /wc/v3/products
  wpjson-seven wp-json.json -r "/wc/v3/products/(?P<id>[\d]+)" -m PUT -o schemas
  wpjson-seven -r /wp/v2/posts --jq '.properties | keys'`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setupLogging(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.closeLogging()
		},
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

			schema, err := a.converter().Generate(doc, route, m, entityName)
			if err != nil {
				return err
			}

			return writeSchema(cmd.OutOrStdout(), schema, outputDir, jq, f)
		},
	}

	cmd.Flags().StringVarP(&route, "route", "r", "", `route to convert, e.g. "/wc/v3/products"`)
	cmd.Flags().StringVarP(&method, "method", "m", "POST", "request method: "+strings.Join(methods, ", "))
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "write <entity>.schema.json to this directory instead of stdout")
	cmd.Flags().StringVarP(&entityName, "name", "e", "", "entity name used for $id (default: derived from the route)")
	cmd.Flags().StringVar(&format, "format", string(output.FormatJSON), "output format: json or yaml")
	cmd.Flags().StringVar(&jq, "jq", "", "jq expression applied to the generated schema")
	if err := cmd.MarkFlagRequired("route"); err != nil {
		panic(err) // Only fails if the flag does not exist, which is a programmer error.
	}
	// jq results are not schemas, so they are never written as schema files.
	cmd.MarkFlagsMutuallyExclusive("jq", "output")

	cmd.PersistentFlags().BoolVar(&a.insecure, "insecure", false, "skip TLS certificate verification (overrides WP_SCHEMA_INSECURE)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides LOG_LEVEL)")

	cmd.AddCommand(
		routesCommand(a),
		batchCommand(a),
		validateCommand(a),
		serveCommand(a),
	)

	return cmd
}

func (a *app) setupLogging(cmd *cobra.Command) error {
	logCfg := logging.Config{
		Level:      a.cfg.LogLevel,
		Format:     "text",
		FilePath:   a.cfg.LogFile,
		MaxSizeMB:  a.cfg.LogMaxSizeMB,
		MaxBackups: a.cfg.LogMaxBackups,
		MaxAgeDays: a.cfg.LogMaxAgeDays,
		Compress:   a.cfg.LogCompress,
		Output:     cmd.ErrOrStderr(),
	}
	if a.logLevel != "" {
		logCfg.Level = a.logLevel
	}

	cleanup, err := logging.Setup(logCfg)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	a.logCleanup = cleanup
	return nil
}

func (a *app) closeLogging() error {
	if a.logCleanup == nil {
		return nil
	}
	err := a.logCleanup()
	a.logCleanup = nil
	return err
}

// client builds the discovery client. The --insecure flag wins over
// WP_SCHEMA_INSECURE when given.
func (a *app) client(cmd *cobra.Command) *client.Client {
	insecure := a.cfg.Insecure()
	if f := cmd.Flags().Lookup("insecure"); f != nil && f.Changed {
		insecure = a.insecure
	}
	return client.New(
		client.WithTimeout(a.cfg.HTTPClientTimeout),
		client.WithInsecureTLS(insecure),
		client.WithUserAgent(a.cfg.UserAgent),
	)
}

func (a *app) loader(cmd *cobra.Command) *source.Loader {
	return source.NewLoader(a.client(cmd))
}

// load reads the document named by the optional positional argument.
func (a *app) load(cmd *cobra.Command, args []string) (*wpschema.Document, error) {
	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	resource, err := source.Pick(arg, a.cfg.SchemaSite)
	if err != nil {
		return nil, err
	}
	return a.loader(cmd).Load(cmd.Context(), resource)
}

func (a *app) converter() *converter.Converter {
	return converter.New(
		converter.WithMaxDepth(a.cfg.MaxDepth),
		converter.WithCollisionHandler(func(name string) {
			slog.Warn("definition name collision, keeping the first definition",
				slog.String("definition", name),
			)
		}),
	)
}

func parseMethod(method string) (string, error) {
	m := strings.ToUpper(strings.TrimSpace(method))
	for _, allowed := range methods {
		if m == allowed {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid method %q: must be one of %s", method, strings.Join(methods, ", "))
}

// writeSchema prints schema (or the jq results over it) to w, or writes it
// into dir. jq and dir are exclusive.
func writeSchema(w io.Writer, schema *draft7.Schema, dir, jq string, format output.Format) error {
	if jq != "" {
		values, err := output.Filter(schema, jq)
		if err != nil {
			return err
		}
		for _, v := range values {
			data, err := output.Marshal(v, format)
			if err != nil {
				return err
			}
			if _, err := w.Write(data); err != nil {
				return err
			}
		}
		return nil
	}

	if dir != "" {
		entity := strings.TrimSuffix(schema.ID, ".schema.json")
		path, err := output.WriteFile(dir, entity, schema, format)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, path)
		return err
	}

	data, err := output.Marshal(schema, format)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ErrorMessage renders err for the terminal, with a hint for the errors a
// user is most likely to hit.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, converter.ErrNoRouteArgs):
		return err.Error() + " (check the route's methods with the routes command)"
	case errors.Is(err, client.ErrNoData):
		return err.Error() + " (is the site's REST API enabled?)"
	case errors.Is(err, client.ErrNotJSON):
		return err.Error() + " (the URL should point at the site's /wp-json/ root)"
	default:
		return err.Error()
	}
}
