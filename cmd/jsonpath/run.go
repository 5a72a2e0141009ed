package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pathlang/sqljsonpath/path"
	"github.com/pathlang/sqljsonpath/path/exec"
	"github.com/pathlang/sqljsonpath/path/types"
)

// readDocument loads the JSON document to query, from --file if set,
// otherwise from standard input.
func readDocument() (any, error) {
	var src io.Reader = os.Stdin
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", file, err)
		}
		defer f.Close()
		src = f
	}

	var value any
	if err := json.NewDecoder(src).Decode(&value); err != nil {
		return nil, fmt.Errorf("parsing JSON document: %w", err)
	}
	return value, nil
}

// buildContext applies --local-tz to ctx, so CURRENT_* items and comparisons
// that require a time zone use the local zone instead of UTC.
func buildContext() context.Context {
	ctx := context.Background()
	if localTZ {
		//nolint:gosmopolitan // Explicitly requested by the --local-tz flag.
		ctx = types.ContextWithTZ(ctx, time.Local)
	}
	return ctx
}

// buildOptions assembles the exec.Option values implied by the global flags.
func buildOptions() ([]exec.Option, error) {
	var opt []exec.Option
	if silent {
		opt = append(opt, exec.WithSilent())
	}
	if useTZ {
		opt = append(opt, exec.WithTZ())
	}
	if varsJSON != "" {
		var vars exec.Vars
		if err := json.Unmarshal([]byte(varsJSON), &vars); err != nil {
			return nil, fmt.Errorf("parsing --vars: %w", err)
		}
		opt = append(opt, exec.WithVars(vars))
	}
	return opt, nil
}

// parsePath parses a path expression, reporting unusable expressions before
// the document is even read.
func parsePath(expr string) (*path.Path, error) {
	p, err := path.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("parsing path expression: %w", err)
	}
	return p, nil
}

// printResult marshals res to stdout as JSON, honoring --indent. An error
// that wraps exec.NULL prints the JSON literal null rather than failing.
func printResult(res any, err error) error {
	if err != nil {
		if errors.Is(err, exec.NULL) {
			fmt.Println("null")
			return nil
		}
		return err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	fmt.Print(buf.String())
	return nil
}
