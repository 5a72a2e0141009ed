// Package main provides the jsonpath CLI, a command-line front end for
// running SQL/JSON path expressions against a JSON document.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Global flags shared across the query, exists, match, and first
// subcommands.
var (
	varsJSON string
	silent   bool
	useTZ    bool
	localTZ  bool
	indent   bool
	file     string
)

var rootCmd = &cobra.Command{
	Use:   "jsonpath <path-expression>",
	Short: "Evaluate SQL/JSON path expressions against JSON documents",
	Long: `jsonpath evaluates a SQL/JSON path expression against a JSON document
read from a file or standard input, and prints the result.

Examples:
  echo '{"a":1}' | jsonpath query '$.a'
  jsonpath exists --file doc.json '$.a ? (@ > 0)'
  jsonpath first --vars '{"x":2}' '$.a ? (@ == $x)' < doc.json`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&varsJSON, "vars", "", "JSON object of named variables for $var references")
	rootCmd.PersistentFlags().BoolVar(&silent, "silent", false, "suppress errors, matching the @? and @@ Postgres operators")
	rootCmd.PersistentFlags().BoolVar(&useTZ, "tz", false, "allow comparisons that require timezone-aware conversions")
	rootCmd.PersistentFlags().BoolVar(&localTZ, "local-tz", false, "evaluate CURRENT_* items against the local time zone instead of UTC")
	rootCmd.PersistentFlags().BoolVar(&indent, "indent", false, "pretty-print the JSON result")
	rootCmd.PersistentFlags().StringVar(&file, "file", "", "path to a JSON document (defaults to stdin)")

	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(existsCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(firstCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "jsonpath:", err)
		os.Exit(1)
	}
}
