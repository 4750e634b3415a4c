package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/state"
	"github.com/vango-dev/markup/pkg/tag"
)

func renderCmd(e *env) *cobra.Command {
	var (
		format string
		input  string
		check  bool
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a document as HTML",
		Long: `Render a document or an exported tag state as HTML.

The file is read from stdin when omitted or "-". Its format is taken from
--format, then the file extension, then markup.json.

Examples:
  markup render page.yaml
  markup render --format json < page.json
  markup render --input tag state.json
  markup render --check page.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, f, err := e.readInput(cmd.InOrStdin(), args, format)
			if err != nil {
				return err
			}

			var t tag.Tag
			switch input {
			case "document":
				t, err = state.DecodeDocument(data, f, e.tags)
			case "tag":
				t, err = state.DecodeTag(bytes.NewReader(data), f, e.tags)
			default:
				return errors.Newf(errors.CategoryUsage, "unknown input kind %q", input).
					WithSuggestion("Use --input document or --input tag")
			}
			if err != nil {
				return err
			}

			out := t.Render()
			if check {
				if err := checkMarkup(out); err != nil {
					return err
				}
				e.logger.Debug("markup verified", "bytes", len(out))
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Input format (json or yaml)")
	cmd.Flags().StringVar(&input, "input", "document", "Input kind (document or tag)")
	cmd.Flags().BoolVar(&check, "check", false, "Verify that start and end tags of the output balance")

	return cmd
}
