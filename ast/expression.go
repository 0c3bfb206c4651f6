package ast

// Expr is the tagged union of expressions. Every expression carries the
// type denoter resolved by the front end's semantic analysis.
type Expr interface {
	Node
	exprNode()
	ResolvedType() TypeDenoter
}

// BinaryOp enumerates binary operators.
type BinaryOp uint8

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpAnd
	OpOr
	OpXor
	OpShl
	OpShr
	OpLogicAnd
	OpLogicOr
	OpEqual
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
)

// String returns the GLSL spelling of the operator.
func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpAnd:
		return "&"
	case OpOr:
		return "|"
	case OpXor:
		return "^"
	case OpShl:
		return "<<"
	case OpShr:
		return ">>"
	case OpLogicAnd:
		return "&&"
	case OpLogicOr:
		return "||"
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	case OpLess:
		return "<"
	case OpLessEqual:
		return "<="
	case OpGreater:
		return ">"
	case OpGreaterEqual:
		return ">="
	default:
		return "?"
	}
}

// IsBitwise reports whether the operator is a bitwise or shift operator.
func (op BinaryOp) IsBitwise() bool {
	switch op {
	case OpAnd, OpOr, OpXor, OpShl, OpShr:
		return true
	default:
		return false
	}
}

// UnaryOp enumerates prefix and postfix unary operators.
type UnaryOp uint8

const (
	OpNegate UnaryOp = iota
	OpPlus
	OpNot
	OpBitNot
	OpInc
	OpDec
)

// String returns the GLSL spelling of the operator.
func (op UnaryOp) String() string {
	switch op {
	case OpNegate:
		return "-"
	case OpPlus:
		return "+"
	case OpNot:
		return "!"
	case OpBitNot:
		return "~"
	case OpInc:
		return "++"
	case OpDec:
		return "--"
	default:
		return "?"
	}
}

// AssignOp enumerates assignment operators on variable accesses.
type AssignOp uint8

const (
	AssignSet AssignOp = iota
	AssignAdd
	AssignSub
	AssignMul
	AssignDiv
	AssignMod
	AssignAnd
	AssignOr
	AssignXor
	AssignShl
	AssignShr
)

// String returns the GLSL spelling of the operator.
func (op AssignOp) String() string {
	switch op {
	case AssignSet:
		return "="
	case AssignAdd:
		return "+="
	case AssignSub:
		return "-="
	case AssignMul:
		return "*="
	case AssignDiv:
		return "/="
	case AssignMod:
		return "%="
	case AssignAnd:
		return "&="
	case AssignOr:
		return "|="
	case AssignXor:
		return "^="
	case AssignShl:
		return "<<="
	case AssignShr:
		return ">>="
	default:
		return "?"
	}
}

// LiteralExpr is a literal token, kept in its source spelling.
type LiteralExpr struct {
	Pos   Pos
	Type  TypeDenoter
	Value string
}

// VarAccessExpr reads or assigns a variable through an identifier chain.
// Assign is nil for plain reads.
type VarAccessExpr struct {
	Pos      Pos
	Type     TypeDenoter
	Ident    *VarIdent
	AssignOp AssignOp
	Assign   Expr
}

// BinaryExpr applies a binary operator.
type BinaryExpr struct {
	Pos  Pos
	Type TypeDenoter
	Lhs  Expr
	Op   BinaryOp
	Rhs  Expr
}

// UnaryExpr applies a prefix operator.
type UnaryExpr struct {
	Pos  Pos
	Type TypeDenoter
	Op   UnaryOp
	Expr Expr
}

// PostUnaryExpr applies a postfix operator (x++, x--).
type PostUnaryExpr struct {
	Pos  Pos
	Type TypeDenoter
	Expr Expr
	Op   UnaryOp
}

// TernaryExpr is the conditional operator.
type TernaryExpr struct {
	Pos  Pos
	Type TypeDenoter
	Cond Expr
	Then Expr
	Else Expr
}

// ListExpr is a comma-separated expression list.
type ListExpr struct {
	Pos   Pos
	Type  TypeDenoter
	Exprs []Expr
}

// BracketExpr is a parenthesized sub-expression.
type BracketExpr struct {
	Pos  Pos
	Type TypeDenoter
	Expr Expr
}

// CastExpr converts a value to another type; GLSL spells it as a
// constructor call.
type CastExpr struct {
	Pos  Pos
	Type TypeDenoter
	To   TypeDenoter
	Expr Expr
}

// ArrayAccessExpr indexes an arbitrary expression, one bracket per index.
type ArrayAccessExpr struct {
	Pos     Pos
	Type    TypeDenoter
	Expr    Expr
	Indices []Expr
}

// SuffixExpr accesses members of a non-identifier expression, e.g. a
// swizzle on a literal.
type SuffixExpr struct {
	Pos   Pos
	Type  TypeDenoter
	Expr  Expr
	Ident *VarIdent
}

// InitializerExpr is a braced initializer list.
type InitializerExpr struct {
	Pos   Pos
	Type  TypeDenoter
	Exprs []Expr
}

// CallExpr calls a function or an intrinsic. Intrinsic calls carry the
// intrinsic tag assigned by the front end; plain calls reference their
// declaration so renamed functions emit their current identifier.
type CallExpr struct {
	Pos       Pos
	Type      TypeDenoter
	Ident     *VarIdent
	Intrinsic Intrinsic
	Args      []Expr

	// FuncDeclRef references the called function for non-intrinsic calls.
	FuncDeclRef *FunctionDecl
}

// IsIntrinsic reports whether the call targets an intrinsic.
func (e *CallExpr) IsIntrinsic() bool {
	return e.Intrinsic != IntrinsicUndefined
}

func (*LiteralExpr) exprNode()     {}
func (*VarAccessExpr) exprNode()   {}
func (*BinaryExpr) exprNode()      {}
func (*UnaryExpr) exprNode()       {}
func (*PostUnaryExpr) exprNode()   {}
func (*TernaryExpr) exprNode()     {}
func (*ListExpr) exprNode()        {}
func (*BracketExpr) exprNode()     {}
func (*CastExpr) exprNode()        {}
func (*ArrayAccessExpr) exprNode() {}
func (*SuffixExpr) exprNode()      {}
func (*InitializerExpr) exprNode() {}
func (*CallExpr) exprNode()        {}

func (e *LiteralExpr) Position() Pos     { return e.Pos }
func (e *VarAccessExpr) Position() Pos   { return e.Pos }
func (e *BinaryExpr) Position() Pos      { return e.Pos }
func (e *UnaryExpr) Position() Pos       { return e.Pos }
func (e *PostUnaryExpr) Position() Pos   { return e.Pos }
func (e *TernaryExpr) Position() Pos     { return e.Pos }
func (e *ListExpr) Position() Pos        { return e.Pos }
func (e *BracketExpr) Position() Pos     { return e.Pos }
func (e *CastExpr) Position() Pos        { return e.Pos }
func (e *ArrayAccessExpr) Position() Pos { return e.Pos }
func (e *SuffixExpr) Position() Pos      { return e.Pos }
func (e *InitializerExpr) Position() Pos { return e.Pos }
func (e *CallExpr) Position() Pos        { return e.Pos }

func (e *LiteralExpr) ResolvedType() TypeDenoter     { return e.Type }
func (e *VarAccessExpr) ResolvedType() TypeDenoter   { return e.Type }
func (e *BinaryExpr) ResolvedType() TypeDenoter      { return e.Type }
func (e *UnaryExpr) ResolvedType() TypeDenoter       { return e.Type }
func (e *PostUnaryExpr) ResolvedType() TypeDenoter   { return e.Type }
func (e *TernaryExpr) ResolvedType() TypeDenoter     { return e.Type }
func (e *ListExpr) ResolvedType() TypeDenoter        { return e.Type }
func (e *BracketExpr) ResolvedType() TypeDenoter     { return e.Type }
func (e *CastExpr) ResolvedType() TypeDenoter        { return e.Type }
func (e *ArrayAccessExpr) ResolvedType() TypeDenoter { return e.Type }
func (e *SuffixExpr) ResolvedType() TypeDenoter      { return e.Type }
func (e *InitializerExpr) ResolvedType() TypeDenoter { return e.Type }
func (e *CallExpr) ResolvedType() TypeDenoter        { return e.Type }
