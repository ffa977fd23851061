package main

import (
	"fmt"
	"io"
	"os"

	"github.com/XimeraProject/math-convert/ast"
	"github.com/XimeraProject/math-convert/format"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var to string
	var unicode bool
	var matrixEnv string

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a JSON tree as text or LaTeX",
		Long: `Render a tree in the JSON interchange form as text or LaTeX.

The tree is read from the file argument, or from stdin when absent.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open tree: %w", err)
				}
				defer f.Close()
				r = f
			}

			tree, err := format.NewJSONDecoder(r).Decode()
			if err != nil {
				return fmt.Errorf("decode tree: %w", err)
			}

			out, err := render(tree, to, unicode, matrixEnv)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "text", "output notation (text, latex)")
	cmd.Flags().BoolVar(&unicode, "unicode", false, "use Unicode symbols in text output")
	cmd.Flags().StringVar(&matrixEnv, "matrix-env", "pmatrix", "LaTeX matrix environment (matrix, pmatrix, bmatrix)")

	return cmd
}

func render(tree *ast.Node, to string, unicode bool, matrixEnv string) (string, error) {
	var printer format.Printer
	switch to {
	case "text":
		printer = format.NewTextPrinter(format.WithUnicodeSymbols(unicode))
	case "latex":
		printer = format.NewLaTeXPrinter(format.WithMatrixEnvironment(matrixEnv))
	default:
		return "", fmt.Errorf("unknown notation: %s (expected text or latex)", to)
	}
	out, err := printer.Convert(tree)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return out, nil
}
