package expr

import (
	"fmt"

	"github.com/tabulab/formula/types"
)

// ValidateColumns walks the tree purely structurally and checks that
// every column reference resolves against the supplied metadata, with
// the same resolution rule evaluation uses. Nothing is executed, so
// authoring surfaces can flag an unknown column before any row data
// exists. Function arity and semantics are deliberately not checked
// here; they surface at parse time (IF) or evaluation time.
func ValidateColumns(node Node, columns []types.Column) error {
	switch n := node.(type) {
	case *NumberLiteral, *StringLiteral:
		return nil

	case *ColumnRef:
		if _, ok := types.ResolveColumn(columns, n.Name); !ok {
			return fmt.Errorf("unknown column: %s", n.Name)
		}
		return nil

	case *BinaryOp:
		if err := ValidateColumns(n.Left, columns); err != nil {
			return err
		}
		return ValidateColumns(n.Right, columns)

	case *UnaryOp:
		return ValidateColumns(n.Operand, columns)

	case *FunctionCall:
		for _, arg := range n.Args {
			if err := ValidateColumns(arg, columns); err != nil {
				return err
			}
		}
		return nil

	case *Conditional:
		if err := ValidateColumns(n.Condition, columns); err != nil {
			return err
		}
		if err := ValidateColumns(n.WhenTrue, columns); err != nil {
			return err
		}
		return ValidateColumns(n.WhenFalse, columns)
	}

	return fmt.Errorf("unknown node type %T", node)
}
