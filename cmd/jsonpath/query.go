package main

import (
	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query <path-expression>",
	Short: "Print every JSON item the path expression selects",
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

		res, err := p.Query(buildContext(), doc, opt...)
		return printResult(res, err)
	},
}
