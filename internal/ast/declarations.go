package ast

import "github.com/cwbudde/go-basic/internal/token"

// ItemKind tags the payload carried by a TopLevelItem node.
type ItemKind int

const (
	ItemStatement ItemKind = iota
	ItemFunctionDeclaration
	ItemFunctionImplementation
	ItemDefType
)

// FunctionDeclaration is a forward `DECLARE FUNCTION` with no body.
type FunctionDeclaration struct {
	Name   Name
	Params []Name
}

// FunctionImplementation is a `FUNCTION ... END FUNCTION` with a body.
type FunctionImplementation struct {
	Name   Name
	Params []Name
	Body   []*Statement
}

// DefType is a `DEFINT`/`DEFSNG`/`DEFDBL`/`DEFLNG`/`DEFSTR` directive,
// mapping an inclusive letter range to a default qualifier.
type DefType struct {
	From, To  byte // uppercase letters, From <= To
	Qualifier token.Qualifier
}

// TopLevelItem is one entry in a Program: a statement, a function
// declaration or implementation, or a DEFtype directive.
type TopLevelItem struct {
	Kind      ItemKind
	Pos       Pos
	Statement *Statement
	FuncDecl  *FunctionDeclaration
	FuncImpl  *FunctionImplementation
	DefType   *DefType
}
