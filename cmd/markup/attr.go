package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/pkg/state"
)

func attrCmd(e *env) *cobra.Command {
	var export string

	cmd := &cobra.Command{
		Use:   "attr <name> [values...]",
		Short: "Render a single attribute",
		Long: `Render a single attribute through the configured constructors.

Without values the attribute is boolean.

Examples:
  markup attr class "a b" b c      # class="a b c"
  markup attr rel NoOpener          # rel="noopener"
  markup attr disabled              # disabled
  markup attr class a b --export json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]any, len(args)-1)
			for i, v := range args[1:] {
				values[i] = v
			}

			a, err := e.attrs.Create(args[0], values...)
			if err != nil {
				return err
			}

			if export != "" {
				f, err := state.ParseFormat(export)
				if err != nil {
					return err
				}
				return state.Encode(cmd.OutOrStdout(), f, a.Export())
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), a.Render())
			return err
		},
	}

	cmd.Flags().StringVar(&export, "export", "", "Print the attribute state in this format instead")

	return cmd
}
