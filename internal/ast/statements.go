package ast

// StmtKind tags the payload carried by a Statement node.
type StmtKind int

const (
	StmtAssignment StmtKind = iota
	StmtSubCall
	StmtForLoop
	StmtIfBlock
)

// CondBlock pairs a condition with the block it guards, used by
// IfBlock for the primary IF and each ELSEIF.
type CondBlock struct {
	Cond *Expression
	Body []*Statement
}

// ForLoop is a FOR ... NEXT statement (spec §3, §4.4).
type ForLoop struct {
	Counter     Name
	Lower       *Expression
	Upper       *Expression
	Step        *Expression // nil means the default step of +1
	Body        []*Statement
	NextCounter *Name // nil if NEXT was bare
}

// IfBlock is an IF/ELSEIF/ELSE/END IF statement.
type IfBlock struct {
	If      CondBlock
	ElseIfs []CondBlock
	Else    []*Statement // nil if no ELSE clause
}

// Assignment stores the evaluated, coerced RHS under Target.
type Assignment struct {
	Target Name
	Value  *Expression
}

// SubCall invokes a built-in or user-defined procedure by name; it
// never produces a value.
type SubCall struct {
	Name string
	Args []*Expression
}

// Statement is a node in the statement tree. Exactly the field
// matching Kind is populated.
type Statement struct {
	Kind       StmtKind
	Pos        Pos
	Assignment *Assignment
	SubCall    *SubCall
	ForLoop    *ForLoop
	IfBlock    *IfBlock
}
