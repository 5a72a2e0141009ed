// Package exec provides the routines for SQL/JSON path execution.
package exec

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/pathlang/sqljsonpath/path/ast"
)

// Things to improve or document as different:
//   - .datetime(template)
//   - Some time_tz comparisons still not quite right
//   - Allow single-digit tz offsets, e.g., `+1` instead of `+01`
//   - Allow space between seconds and offset
//   - Years > 9999
//   - .keyvalue() offsets for arrays?
//   - Go regexp package varies from Postgres regex
//   - Implement interfaces to be compatible with the SQL-standard
//     json_exists(), json_query(), and json_value() functions added in Postgres 17.

// Vars represents JSON path variables and their values, as passed to
// [WithVars].
type Vars map[string]any

var (
	// ErrExecution errors denote runtime execution errors.
	ErrExecution = errors.New("exec")

	// ErrVerbose errors are execution errors that can be suppressed by
	// [WithSilent].
	ErrVerbose = fmt.Errorf("%w", ErrExecution)

	// NULL is returned by [Exists] and [Match] when the result of a query is
	// unknown, matching the behavior of the PostgreSQL @? and @@ operators.
	NULL = errors.New("NULL")

	// ErrInvalid errors denote invalid or unexpected execution. Generally
	// internal-only.
	ErrInvalid = errors.New("exec invalid")
)

// resultStatus represents the result of jsonpath expression evaluation.
type resultStatus uint8

const (
	statusOK resultStatus = iota
	statusNotFound
	statusFailed
)

func (s resultStatus) failed() bool {
	return s == statusFailed
}

// valueList is a list of JSON values with a shortcut for the single-value
// case.
type valueList struct {
	list []any
}

func newList() *valueList {
	return &valueList{list: make([]any, 0, 1)}
}

func (vl *valueList) isEmpty() bool {
	return len(vl.list) == 0
}

func (vl *valueList) append(val any) {
	vl.list = append(vl.list, val)
}

// Executor represents the context for jsonpath execution.
type Executor struct {
	vars                  Vars         // variables to substitute into jsonpath
	root                  any          // for $ evaluation
	current               any          // for @ evaluation
	baseObject            kvBaseObject // "base object" for .keyvalue() evaluation
	lastGeneratedObjectID int          // "id" counter for .keyvalue() evaluation
	innermostArraySize    int          // for LAST array index evaluation
	path                  *ast.AST

	// with "true" structural errors such as absence of required json item or
	// unexpected json item type are ignored
	ignoreStructuralErrors bool

	// with "false" all suppressible errors are suppressed
	verbose bool
	useTZ   bool

	log logr.Logger
}

// Option specifies an execution option.
type Option func(*Executor)

// WithVars specifies variables to use during execution.
func WithVars(vars Vars) Option { return func(e *Executor) { e.vars = vars } }

// WithTZ allows casting between TZ and non-TZ time and timestamp types.
func WithTZ() Option { return func(e *Executor) { e.useTZ = true } }

// WithSilent suppresses the following errors: missing object field or array
// element, unexpected JSON item type, datetime and numeric errors. This
// behavior emulates the behavior of the PostgreSQL @? and @@ operators, and
// might be helpful when searching JSON document collections of varying
// structure.
func WithSilent() Option { return func(e *Executor) { e.verbose = false } }

// WithLogger sets a logr.Logger to receive diagnostic output during
// execution. Without it, the executor logs nothing.
func WithLogger(log logr.Logger) Option { return func(e *Executor) { e.log = log } }

func newExec(path *ast.AST, opt ...Option) *Executor {
	e := &Executor{
		path:                   path,
		innermostArraySize:     -1,
		ignoreStructuralErrors: path.IsLax(),
		lastGeneratedObjectID:  1, // Reserved for IDs from vars
		verbose:                true,
		log:                    logr.Discard(),
	}

	for _, o := range opt {
		o(e)
	}
	return e
}

// Query returns all JSON items returned by the JSON path for the specified
// JSON value. For SQL-standard JSON path expressions it returns the JSON
// values selected from target. For predicate check expressions it returns the
// result of the predicate check: true, false, or null (false + NULL). The
// optional [WithVars] and [WithSilent] Options act the same as for [Exists].
func Query(ctx context.Context, path *ast.AST, value any, opt ...Option) ([]any, error) {
	exec := newExec(path, opt...)
	vals, err := exec.execute(ctx, value)
	if err != nil {
		return nil, err
	}
	return vals.list, nil
}

// First returns the first JSON item returned by the JSON path for the
// specified JSON value, or nil if there are no results. The parameters are
// the same as for [Query].
func First(ctx context.Context, path *ast.AST, value any, opt ...Option) (any, error) {
	exec := newExec(path, opt...)
	vals, err := exec.execute(ctx, value)
	if err != nil {
		return nil, err
	}
	if vals.isEmpty() {
		//nolint:nilnil // nil is a valid return value, standing in for JSON null.
		return nil, nil
	}
	return vals.list[0], nil
}

// Exists checks whether the JSON path returns any item for the specified JSON
// value. (This is useful only with SQL-standard JSON path expressions, not
// predicate check expressions, since those always return a value.) If the
// [WithVars] Option is specified its fields provide named values to be
// substituted into the jsonpath expression. If the [WithSilent] Option is
// specified, the function suppresses some errors. If the [WithTZ] Option is
// specified, it allows comparisons of date/time values that require
// timezone-aware conversions.
func Exists(ctx context.Context, path *ast.AST, value any, opt ...Option) (bool, error) {
	exec := newExec(path, opt...)
	res, err := exec.exists(ctx, value)
	if err != nil {
		return false, err
	}
	if res.failed() {
		return false, NULL
	}
	return res == statusOK, nil
}

// Match returns the result of a JSON path predicate check for the specified
// JSON value. (This is useful only with predicate check expressions, not
// SQL-standard JSON path expressions, since it will either fail or return
// NULL if the path result is not a single boolean value.) The optional
// [WithVars] and [WithSilent] Options act the same as for [Exists].
func Match(ctx context.Context, path *ast.AST, value any, opt ...Option) (bool, error) {
	exec := newExec(path, opt...)
	vals, err := exec.execute(ctx, value)
	if err != nil {
		return false, err
	}

	if len(vals.list) == 1 {
		switch val := vals.list[0].(type) {
		case nil:
			return false, NULL
		case bool:
			return val, nil
		}
	}

	if exec.verbose {
		return false, fmt.Errorf(
			"%w: single boolean result is expected",
			ErrVerbose,
		)
	}

	return false, NULL
}

func (exec *Executor) strictAbsenceOfErrors() bool { return exec.path.IsStrict() }
func (exec *Executor) autoUnwrap() bool            { return exec.path.IsLax() }
func (exec *Executor) autoWrap() bool              { return exec.path.IsLax() }

func (exec *Executor) execute(ctx context.Context, value any) (*valueList, error) {
	exec.log.V(1).Info("executing jsonpath", "lax", exec.path.IsLax())
	exec.root = value
	exec.current = value
	vals := newList()
	_, err := exec.query(ctx, vals, exec.path.Root(), value)
	if err != nil {
		exec.log.V(1).Error(err, "jsonpath execution failed")
	}
	return vals, err
}

// exists returns statusOK if the path passed to newExec returns at least one
// item for json. This provides the equivalent of the Postgres @? operator
// when exec.verbose is false.
func (exec *Executor) exists(ctx context.Context, json any) (resultStatus, error) {
	exec.root = json
	exec.current = json
	return exec.query(ctx, nil, exec.path.Root(), json)
}

// returnVerboseError returns statusFailed, along with err if exec.verbose is
// true. Otherwise it returns statusFailed and a nil error, silently
// suppressing err.
func (exec *Executor) returnVerboseError(err error) (resultStatus, error) {
	if exec.verbose {
		return statusFailed, err
	}
	exec.log.V(1).Info("suppressed verbose error", "error", err)
	return statusFailed, nil
}

// returnError returns statusFailed along with err, unless err wraps
// [ErrVerbose] and exec.verbose is false, in which case it suppresses err.
func (exec *Executor) returnError(err error) (resultStatus, error) {
	if exec.verbose || !errors.Is(err, ErrVerbose) {
		return statusFailed, err
	}
	return statusFailed, nil
}
