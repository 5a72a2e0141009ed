package main

import (
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match <predicate-expression>",
	Short: "Print the result of a predicate check expression",
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

		res, err := p.Match(buildContext(), doc, opt...)
		return printResult(res, err)
	},
}
