package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/XimeraProject/math-convert/format"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var from string
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse [expression]",
		Short: "Parse an expression and dump its tree",
		Long: `Parse an expression and dump its tree.

The expression is taken from the argument, or from stdin when absent.
Output is the JSON interchange form by default; use --format sexpr for a
readable s-expression.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			input, err := readInput(args)
			if err != nil {
				return err
			}

			p, err := newParser(from, cfg.parserOptions())
			if err != nil {
				return err
			}

			tree, err := p.Convert(input)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			switch outputFormat {
			case "json":
				enc := format.NewJSONEncoder(os.Stdout)
				if err := enc.Encode(tree); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
				fmt.Println()
			case "sexpr":
				fmt.Println(tree.String())
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "text", "input notation (text, latex)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, sexpr)")

	return cmd
}

func readInput(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
