package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/usestring/wpjson-seven/internal/validate"
)

// ErrInvalidPayload is returned by the validate command when the payload
// does not match the schema.
var ErrInvalidPayload = errors.New("payload does not match the schema")

func validateCommand(a *app) *cobra.Command {
	var (
		route  string
		method string
		data   string
	)

	cmd := &cobra.Command{
		Use:   "validate [file|url]",
		Short: "Validate a JSON request body against a route's schema",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMethod(method)
			if err != nil {
				return err
			}

			payload, err := readPayload(cmd.InOrStdin(), data)
			if err != nil {
				return err
			}

			doc, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			schema, err := a.converter().Generate(doc, route, m, "")
			if err != nil {
				return err
			}

			v, err := validate.New(schema)
			if err != nil {
				return err
			}

			result := v.Validate(payload)
			out := cmd.OutOrStdout()
			if result.Valid {
				fmt.Fprintln(out, "valid")
				return nil
			}
			for _, msg := range result.Errors {
				fmt.Fprintln(out, msg)
			}
			return ErrInvalidPayload
		},
	}

	cmd.Flags().StringVarP(&route, "route", "r", "", "route whose request body is validated")
	cmd.Flags().StringVarP(&method, "method", "m", "POST", "request method")
	cmd.Flags().StringVarP(&data, "data", "d", "", `JSON payload file, or "-" for stdin`)
	for _, name := range []string{"route", "data"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
	return cmd
}

func readPayload(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading payload from stdin: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading payload: %w", err)
	}
	return b, nil
}
