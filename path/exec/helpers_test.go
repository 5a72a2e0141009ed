package exec

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/pathlang/sqljsonpath/path/ast"
	"github.com/pathlang/sqljsonpath/path/parser"
)

// newTestExecutor builds an Executor directly from its fields, bypassing the
// option pattern, so tests can exercise verbose and useTZ combinations that
// WithSilent and WithTZ don't expose on their own.
func newTestExecutor(path *ast.AST, vars Vars, verbose, useTZ bool) *Executor {
	e := newExec(path)
	e.vars = vars
	e.verbose = verbose
	e.useTZ = useTZ
	return e
}

// execTestCase is a shared table-driven case shape for tests that parse a
// path, run Query against json, and compare the resulting items.
type execTestCase struct {
	test string
	path string
	json any
	vars Vars
	exp  []any
	err  string
	rand bool // results can come back in any order
}

func (tc execTestCase) run(t *testing.T) {
	t.Helper()
	a := assert.New(t)
	r := require.New(t)

	path, err := parser.Parse(tc.path)
	r.NoError(err)

	var opt []Option
	if tc.vars != nil {
		opt = append(opt, WithVars(tc.vars))
	}

	res, err := Query(context.Background(), path, tc.json, opt...)
	if tc.err != "" {
		r.EqualError(err, tc.err)
		r.ErrorIs(err, ErrExecution)
		return
	}
	r.NoError(err)
	if tc.rand {
		a.ElementsMatch(tc.exp, res)
	} else {
		a.Equal(tc.exp, res)
	}
}
