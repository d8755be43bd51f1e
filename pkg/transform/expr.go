package transform

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env is the environment a field expression runs against.
type Env map[string]any

// ExprTransformer rewrites fields by evaluating an expr-lang expression.
// The expression sees the raw field content as `value` and must evaluate
// to a string:
//
//	upper(value)
//	value == "" ? "n/a" : value
type ExprTransformer struct {
	prog *vm.Program
}

// NewExpr compiles a field expression.
func NewExpr(src string) (*ExprTransformer, error) {
	prog, err := expr.Compile(src, expr.Env(Env{}))
	if err != nil {
		return nil, fmt.Errorf("cannot compile expression: %w", err)
	}
	return &ExprTransformer{prog: prog}, nil
}

// Transform implements delim.Transformer.
func (t *ExprTransformer) Transform(field string) (string, error) {
	out, err := expr.Run(t.prog, Env{"value": field})
	if err != nil {
		return "", err
	}
	s, ok := out.(string)
	if !ok {
		return "", fmt.Errorf("expression result is %T, want string", out)
	}
	return s, nil
}
