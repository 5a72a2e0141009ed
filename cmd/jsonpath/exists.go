package main

import (
	"github.com/spf13/cobra"
)

var existsCmd = &cobra.Command{
	Use:   "exists <path-expression>",
	Short: "Print whether the path expression selects any item",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		p, err := parsePath(args[0])
		if err != nil {
			return err
		}

		doc, err := readDocument()
		if err != nil {
			return err
		}

		opt, err := buildOptions()
		if err != nil {
			return err
		}

		res, err := p.Exists(buildContext(), doc, opt...)
		return printResult(res, err)
	},
}
