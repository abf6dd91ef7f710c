package ast

// ExprKind tags the payload carried by an Expression node.
type ExprKind int

const (
	ExprStringLiteral ExprKind = iota
	ExprIntegerLiteral
	ExprSingleLiteral
	ExprDoubleLiteral
	ExprVariable
	ExprFunctionCall
	ExprBinary
)

// BinOp is a binary operator (spec §3): additive, multiplicative, and
// comparison.
type BinOp int

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
)

// String renders the operator as BASIC source text.
func (op BinOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpEq:
		return "="
	case OpNe:
		return "<>"
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	default:
		return "?"
	}
}

// Expression is a node in the recursive expression tree. Exactly the
// field(s) matching Kind are populated.
type Expression struct {
	Kind   ExprKind
	Pos    Pos
	Str    string  // ExprStringLiteral
	Int    int32   // ExprIntegerLiteral
	Single float32 // ExprSingleLiteral
	Double float64 // ExprDoubleLiteral
	Name   Name    // ExprVariable, ExprFunctionCall (callee name)
	Args   []*Expression
	Op     BinOp
	Left   *Expression
	Right  *Expression
}

// StringLiteral builds a string literal expression.
func StringLiteral(pos Pos, s string) *Expression {
	return &Expression{Kind: ExprStringLiteral, Pos: pos, Str: s}
}

// IntegerLiteral builds a signed 32-bit integer literal expression.
func IntegerLiteral(pos Pos, v int32) *Expression {
	return &Expression{Kind: ExprIntegerLiteral, Pos: pos, Int: v}
}

// SingleLiteral builds a single-precision literal expression.
func SingleLiteral(pos Pos, v float32) *Expression {
	return &Expression{Kind: ExprSingleLiteral, Pos: pos, Single: v}
}

// DoubleLiteral builds a double-precision literal expression.
func DoubleLiteral(pos Pos, v float64) *Expression {
	return &Expression{Kind: ExprDoubleLiteral, Pos: pos, Double: v}
}

// Variable builds a variable reference expression.
func Variable(pos Pos, name Name) *Expression {
	return &Expression{Kind: ExprVariable, Pos: pos, Name: name}
}

// Call builds a function-call expression.
func Call(pos Pos, name Name, args []*Expression) *Expression {
	return &Expression{Kind: ExprFunctionCall, Pos: pos, Name: name, Args: args}
}

// Binary builds a binary operator expression.
func Binary(pos Pos, op BinOp, left, right *Expression) *Expression {
	return &Expression{Kind: ExprBinary, Pos: pos, Op: op, Left: left, Right: right}
}
