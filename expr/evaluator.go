package expr

import (
	"fmt"
	"math"
	"time"

	"github.com/tabulab/formula/coerce"
	"github.com/tabulab/formula/functions"
	"github.com/tabulab/formula/logger"
	"github.com/tabulab/formula/types"
)

// EvalContext is what an AST is evaluated against: the current row,
// the column metadata used to resolve references, and optionally the
// full row set. AllRows being nil is a valid, documented state: the
// aggregation builtins then degrade to the current row alone.
type EvalContext struct {
	Row     types.Row
	Columns []types.Column
	AllRows []types.Row
}

// Evaluator walks ASTs. It carries the only configuration evaluation
// has: an injectable clock for TODAY/NOW and an explicit debug
// diagnostics channel. There is no other state, so one Evaluator may
// serve concurrent evaluations.
type Evaluator struct {
	clock func() time.Time
	debug bool
	log   logger.Logger
}

// NewEvaluator creates an evaluator. clock may be nil for the wall
// clock; log may be nil to discard diagnostics.
func NewEvaluator(clock func() time.Time, debug bool, log logger.Logger) *Evaluator {
	if clock == nil {
		clock = time.Now
	}
	if log == nil {
		log = logger.NewDiscard()
	}
	return &Evaluator{clock: clock, debug: debug, log: log}
}

// Evaluate produces the scalar value of node against ctx: a float64,
// a string, or nil. Failures (unresolved columns, bad arities, bad
// dates) come back as errors; the public API downgrades them to null.
func (ev *Evaluator) Evaluate(node Node, ctx *EvalContext) (types.Value, error) {
	switch n := node.(type) {
	case *NumberLiteral:
		return n.Value, nil

	case *StringLiteral:
		return n.Value, nil

	case *ColumnRef:
		return ev.evaluateColumnRef(n, ctx)

	case *BinaryOp:
		return ev.evaluateBinaryOp(n, ctx)

	case *UnaryOp:
		return ev.evaluateUnaryOp(n, ctx)

	case *Conditional:
		return ev.evaluateConditional(n, ctx)

	case *FunctionCall:
		return ev.evaluateFunctionCall(n, ctx)
	}

	return nil, fmt.Errorf("unknown node type %T", node)
}

func (ev *Evaluator) evaluateColumnRef(n *ColumnRef, ctx *EvalContext) (types.Value, error) {
	column, ok := types.ResolveColumn(ctx.Columns, n.Name)
	if !ok {
		return nil, fmt.Errorf("unknown column: %s", n.Name)
	}
	// An absent cell is a null value, not a failure; only the column
	// name itself has to resolve.
	return coerce.Normalize(ctx.Row[column.ID]), nil
}

func (ev *Evaluator) evaluateBinaryOp(n *BinaryOp, ctx *EvalContext) (types.Value, error) {
	left, err := ev.Evaluate(n.Left, ctx)
	if err != nil {
		return nil, err
	}
	right, err := ev.Evaluate(n.Right, ctx)
	if err != nil {
		return nil, err
	}

	switch n.Operator {
	case "&":
		// Concatenation; null renders as the empty string.
		return coerce.ToText(left) + coerce.ToText(right), nil

	case "=":
		return boolValue(looseEqual(left, right)), nil
	case "<>":
		return boolValue(!looseEqual(left, right)), nil

	case "<":
		return boolValue(coerce.ToNumber(left) < coerce.ToNumber(right)), nil
	case ">":
		return boolValue(coerce.ToNumber(left) > coerce.ToNumber(right)), nil
	case "<=":
		return boolValue(coerce.ToNumber(left) <= coerce.ToNumber(right)), nil
	case ">=":
		return boolValue(coerce.ToNumber(left) >= coerce.ToNumber(right)), nil

	case "+":
		return coerce.ToNumber(left) + coerce.ToNumber(right), nil
	case "-":
		return coerce.ToNumber(left) - coerce.ToNumber(right), nil
	case "*":
		return coerce.ToNumber(left) * coerce.ToNumber(right), nil
	case "/":
		return coerce.ToNumber(left) / coerce.ToNumber(right), nil
	case "%":
		return math.Mod(coerce.ToNumber(left), coerce.ToNumber(right)), nil
	case "^":
		return math.Pow(coerce.ToNumber(left), coerce.ToNumber(right)), nil
	}

	return nil, fmt.Errorf("unknown operator: %s", n.Operator)
}

func (ev *Evaluator) evaluateUnaryOp(n *UnaryOp, ctx *EvalContext) (types.Value, error) {
	operand, err := ev.Evaluate(n.Operand, ctx)
	if err != nil {
		return nil, err
	}
	switch n.Operator {
	case "-":
		return -coerce.ToNumber(operand), nil
	case "NOT":
		return boolValue(!coerce.ToBool(operand)), nil
	}
	return nil, fmt.Errorf("unknown unary operator: %s", n.Operator)
}

// evaluateConditional is non-strict: exactly one branch runs, so an
// aggregate call sitting in the untaken branch costs nothing.
func (ev *Evaluator) evaluateConditional(n *Conditional, ctx *EvalContext) (types.Value, error) {
	condition, err := ev.Evaluate(n.Condition, ctx)
	if err != nil {
		return nil, err
	}
	if coerce.ToBool(condition) {
		return ev.Evaluate(n.WhenTrue, ctx)
	}
	return ev.Evaluate(n.WhenFalse, ctx)
}

func (ev *Evaluator) evaluateFunctionCall(n *FunctionCall, ctx *EvalContext) (types.Value, error) {
	fn, ok := functions.Lookup(n.Name)
	if !ok {
		return nil, fmt.Errorf("unknown function: %s", n.Name)
	}

	if agg, isAggregate := fn.(functions.AggregateFunction); isAggregate {
		return ev.evaluateAggregate(n, agg, ctx)
	}

	args := make([]interface{}, len(n.Args))
	for i, arg := range n.Args {
		value, err := ev.Evaluate(arg, ctx)
		if err != nil {
			return nil, err
		}
		args[i] = value
	}

	if err := fn.Validate(args); err != nil {
		return nil, err
	}

	result, err := fn.Execute(ev.functionContext(ctx), args)
	if err != nil {
		if ev.debug {
			ev.log.Debug("formula: function %s failed: %v", n.Name, err)
		}
		return nil, err
	}
	return result, nil
}

// evaluateAggregate re-evaluates the single argument expression once
// per row of the table, with that row substituted into a derived
// context, and hands the collected values to the aggregate. The
// per-row re-evaluation is the contract, not an implementation
// detail: the argument may reference any columns of each row, and
// nested aggregates still see the full row set. With no row set the
// aggregate degrades to the current row alone.
func (ev *Evaluator) evaluateAggregate(n *FunctionCall, agg functions.AggregateFunction, ctx *EvalContext) (types.Value, error) {
	if err := agg.Validate(make([]interface{}, len(n.Args))); err != nil {
		return nil, err
	}

	rows := ctx.AllRows
	if rows == nil {
		rows = []types.Row{ctx.Row}
	}

	values := make([]interface{}, 0, len(rows))
	for _, row := range rows {
		derived := &EvalContext{Row: row, Columns: ctx.Columns, AllRows: ctx.AllRows}
		value, err := ev.Evaluate(n.Args[0], derived)
		if err != nil {
			if ev.debug {
				ev.log.Debug("formula: aggregate %s argument failed: %v", n.Name, err)
			}
			return nil, err
		}
		values = append(values, value)
	}
	return agg.Aggregate(values)
}

func (ev *Evaluator) functionContext(ctx *EvalContext) *functions.FunctionContext {
	return &functions.FunctionContext{
		Row:     ctx.Row,
		Columns: ctx.Columns,
		AllRows: ctx.AllRows,
		Now:     ev.clock,
	}
}

// looseEqual is the "=" / "<>" rule: numeric equality when either
// side is a number, exact case-sensitive text match otherwise.
func looseEqual(left, right interface{}) bool {
	_, leftNum := left.(float64)
	_, rightNum := right.(float64)
	if leftNum || rightNum {
		return coerce.ToNumber(left) == coerce.ToNumber(right)
	}
	return coerce.ToText(left) == coerce.ToText(right)
}

// boolValue folds a comparison result into the value domain: 1 or 0,
// never a native boolean.
func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
