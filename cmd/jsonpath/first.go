package main

import (
	"github.com/spf13/cobra"
)

var firstCmd = &cobra.Command{
	Use:   "first <path-expression>",
	Short: "Print the first JSON item the path expression selects",
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

		res, err := p.First(buildContext(), doc, opt...)
		return printResult(res, err)
	},
}
