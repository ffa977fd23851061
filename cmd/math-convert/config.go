package main

import (
	"fmt"
	"os"

	"github.com/XimeraProject/math-convert/parser"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "math-convert.yaml"

// config mirrors the parser options in YAML form. Absent fields keep the
// parser defaults.
type config struct {
	AppliedFunctions  []string `yaml:"appliedFunctions"`
	BareFunctions     []string `yaml:"bareFunctions"`
	SimplifiedApply   *bool    `yaml:"simplifiedApply"`
	SplitSymbols      *bool    `yaml:"splitSymbols"`
	UnsplitExceptions []string `yaml:"unsplitExceptions"`
	AllowedCommands   []string `yaml:"allowedCommands"`
	MaxDepth          int      `yaml:"maxDepth"`
}

// loadConfig reads the file named by --config, or math-convert.yaml in the
// working directory when present. No file at all is fine.
func loadConfig(cmd *cobra.Command) (*config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return &config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *config) parserOptions() []parser.Option {
	var opts []parser.Option
	if c.AppliedFunctions != nil {
		opts = append(opts, parser.WithAppliedFunctions(c.AppliedFunctions...))
	}
	if c.BareFunctions != nil {
		opts = append(opts, parser.WithBareFunctions(c.BareFunctions...))
	}
	if c.SimplifiedApply != nil {
		opts = append(opts, parser.WithSimplifiedApply(*c.SimplifiedApply))
	}
	if c.SplitSymbols != nil {
		opts = append(opts, parser.WithSymbolSplitting(*c.SplitSymbols))
	}
	if c.UnsplitExceptions != nil {
		opts = append(opts, parser.WithUnsplitExceptions(c.UnsplitExceptions...))
	}
	if c.AllowedCommands != nil {
		opts = append(opts, parser.WithAllowedCommands(c.AllowedCommands...))
	}
	if c.MaxDepth > 0 {
		opts = append(opts, parser.WithMaxDepth(c.MaxDepth))
	}
	return opts
}

// newParser builds a parser for the named notation, "text" or "latex".
func newParser(notation string, opts []parser.Option) (*parser.Parser, error) {
	switch notation {
	case "text":
		return parser.NewTextParser(opts...), nil
	case "latex":
		return parser.NewLaTeXParser(opts...), nil
	}
	return nil, fmt.Errorf("unknown notation: %s (expected text or latex)", notation)
}
