package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/pkg/state"
)

func exportCmd(e *env) *cobra.Command {
	var (
		format string
		to     string
	)

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export a document as tag state",
		Long: `Build a document and print the exported state of its root tag.

The state holds the tag name, its attributes and the rendered content. It
can be rendered again with 'markup render --input tag'. The root of the
document must be a tag, not a fragment.

Examples:
  markup export page.yaml
  markup export page.yaml --to json > state.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, f, err := e.readInput(cmd.InOrStdin(), args, format)
			if err != nil {
				return err
			}
			t, err := state.DecodeDocument(data, f, e.tags)
			if err != nil {
				return err
			}

			out := f
			if to != "" {
				if out, err = state.ParseFormat(to); err != nil {
					return err
				}
			}
			return state.EncodeTag(cmd.OutOrStdout(), out, t)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Input format (json or yaml)")
	cmd.Flags().StringVar(&to, "to", "", "Output format (default: input format)")

	return cmd
}
