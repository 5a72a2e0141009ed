// Package parser parses SQL/JSON paths.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/pathlang/sqljsonpath/path/ast"
)

//go:generate goyacc -v "" -o grammar.go -p path grammar.y

// ErrParse errors are returned by the parser.
var ErrParse = errors.New("parser")

//nolint:gochecknoglobals
var log = logr.Discard()

// SetLogger installs l to receive diagnostic output from Parse. Without it,
// the parser logs nothing.
func SetLogger(l logr.Logger) { log = l }

// Parse parses path.
func Parse(path string) (*ast.AST, error) {
	log.V(1).Info("parsing path", "path", path)

	lexer := newLexer(path)
	_ = pathParse(lexer)

	if len(lexer.errors) > 0 {
		err := fmt.Errorf(
			"%w: %v", ErrParse, strings.Join(lexer.errors, "\n"),
		)
		log.V(1).Error(err, "parse failed", "path", path)
		return nil, err
	}

	return lexer.result, nil
}
