package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/hamza/htmlbuilder/format"
	"github.com/hamza/htmlbuilder/html/parser"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var params []string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render an HTML template with {{name}} placeholders filled in",
		Long: `Render an HTML template file to stdout.

Placeholders of the form {{name}} in text content and attribute values are
replaced using --param name=value pairs. Unknown placeholders are left
unchanged.

Use -w to overwrite the file in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			source, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			substitutions := make(map[string]string, len(params))
			for _, param := range params {
				name, value, ok := strings.Cut(param, "=")
				if !ok {
					return fmt.Errorf("invalid --param %q: expected name=value", param)
				}
				substitutions[name] = value
			}

			nodes, err := parser.Parse(string(source))
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			for _, node := range nodes {
				node.ApplyParamsRecursive(substitutions)
			}

			if overwrite {
				var sb strings.Builder
				if err := format.NewHTMLEncoder(&sb).Encode(nodes); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
				return os.WriteFile(filename, []byte(sb.String()), 0644)
			}

			if err := format.NewHTMLEncoder(os.Stdout).Encode(nodes); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "template parameter as name=value (repeatable)")
	cmd.Flags().BoolVarP(&overwrite, "write", "w", false, "overwrite the file in place")

	return cmd
}
