package main

import (
	"github.com/XimeraProject/math-convert/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			server := lsp.NewServer(version, cfg.parserOptions()...)
			return server.RunStdio()
		},
	}
}
