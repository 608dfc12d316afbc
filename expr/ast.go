package expr

import (
	"fmt"
	"strconv"
	"strings"
)

// Node is the closed tagged union of formula AST shapes. Evaluation
// and validation switch exhaustively over the concrete types; nothing
// outside this package can add a shape. A tree is immutable once
// parsed and exclusively owned by its root.
type Node interface {
	fmt.Stringer
	node()
}

// NumberLiteral is a numeric constant. Boolean literals arrive here
// too, folded to 1/0 by the tokenizer.
type NumberLiteral struct {
	Value float64
}

// StringLiteral is a quoted text constant.
type StringLiteral struct {
	Value string
}

// ColumnRef names a column. Resolution against column metadata
// happens at evaluation time, never at parse time, so an AST holds no
// live reference to any column or row.
type ColumnRef struct {
	Name string
}

// BinaryOp applies an infix operator to two operands.
type BinaryOp struct {
	Operator string
	Left     Node
	Right    Node
}

// UnaryOp applies "-" or "NOT" to one operand.
type UnaryOp struct {
	Operator string
	Operand  Node
}

// FunctionCall dispatches a registered function over its arguments.
// AND/OR chains written infix land here with the left parse tree
// folded in as Args[0].
type FunctionCall struct {
	Name string
	Args []Node
}

// Conditional is the dedicated IF shape: always exactly three parts,
// enforced by the parser.
type Conditional struct {
	Condition Node
	WhenTrue  Node
	WhenFalse Node
}

func (*NumberLiteral) node() {}
func (*StringLiteral) node() {}
func (*ColumnRef) node()     {}
func (*BinaryOp) node()      {}
func (*UnaryOp) node()       {}
func (*FunctionCall) node()  {}
func (*Conditional) node()   {}

func (n *NumberLiteral) String() string {
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

func (n *StringLiteral) String() string {
	return strconv.Quote(n.Value)
}

func (n *ColumnRef) String() string {
	return "[" + n.Name + "]"
}

func (n *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left, n.Operator, n.Right)
}

func (n *UnaryOp) String() string {
	if n.Operator == "NOT" {
		return fmt.Sprintf("NOT(%s)", n.Operand)
	}
	return fmt.Sprintf("%s%s", n.Operator, n.Operand)
}

func (n *FunctionCall) String() string {
	args := make([]string, len(n.Args))
	for i, arg := range n.Args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", n.Name, strings.Join(args, ", "))
}

func (n *Conditional) String() string {
	return fmt.Sprintf("IF(%s, %s, %s)", n.Condition, n.WhenTrue, n.WhenFalse)
}

// CollectColumns returns every column name referenced anywhere in the
// tree, in first-appearance order without duplicates. Callers use it
// to build dependency graphs between computed columns.
func CollectColumns(node Node) []string {
	var names []string
	seen := make(map[string]struct{})
	var walk func(Node)
	walk = func(n Node) {
		switch v := n.(type) {
		case *ColumnRef:
			if _, dup := seen[v.Name]; !dup {
				seen[v.Name] = struct{}{}
				names = append(names, v.Name)
			}
		case *BinaryOp:
			walk(v.Left)
			walk(v.Right)
		case *UnaryOp:
			walk(v.Operand)
		case *FunctionCall:
			for _, arg := range v.Args {
				walk(arg)
			}
		case *Conditional:
			walk(v.Condition)
			walk(v.WhenTrue)
			walk(v.WhenFalse)
		}
	}
	walk(node)
	return names
}
