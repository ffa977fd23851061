package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	var from string
	var to string
	var unicode bool
	var matrixEnv string

	cmd := &cobra.Command{
		Use:   "convert [expression]",
		Short: "Convert an expression between notations",
		Long: `Parse an expression in one notation and print it in another.

The expression is taken from the argument, or from stdin when absent.
Converting a notation to itself canonicalizes spacing and parentheses.`,
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

			out, err := render(tree, to, unicode, matrixEnv)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "text", "input notation (text, latex)")
	cmd.Flags().StringVar(&to, "to", "latex", "output notation (text, latex)")
	cmd.Flags().BoolVar(&unicode, "unicode", false, "use Unicode symbols in text output")
	cmd.Flags().StringVar(&matrixEnv, "matrix-env", "pmatrix", "LaTeX matrix environment (matrix, pmatrix, bmatrix)")

	return cmd
}
