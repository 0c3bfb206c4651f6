package ast

// Stmt is the tagged union of statements.
type Stmt interface {
	Node
	stmtNode()
}

// CodeBlock is a braced sequence of statements.
type CodeBlock struct {
	Pos   Pos
	Stmts []Stmt
}

// CodeBlockStmt wraps a code block used in statement position.
type CodeBlockStmt struct {
	Pos   Pos
	Block *CodeBlock
}

// NullStmt is a lone semicolon.
type NullStmt struct {
	Pos Pos
}

// ExprStmt evaluates an expression for its side effects.
type ExprStmt struct {
	Pos  Pos
	Expr Expr
}

// ReturnStmt returns from the enclosing function, optionally with a value.
// The control-path analyzer sets FlagEndOfFunction on returns in tail
// position of the function body.
type ReturnStmt struct {
	Pos   Pos
	Flags Flags
	Expr  Expr
}

// IfStmt is a conditional. Else is nil, another *IfStmt (else-if chain),
// or any other statement for a plain else branch.
type IfStmt struct {
	Pos  Pos
	Cond Expr
	Body Stmt
	Else Stmt
}

// ForStmt is a for loop. Init is a full statement (declaration or
// expression statement); Cond and Iter may be nil.
type ForStmt struct {
	Pos  Pos
	Init Stmt
	Cond Expr
	Iter Expr
	Body Stmt
}

// WhileStmt is a while loop.
type WhileStmt struct {
	Pos  Pos
	Cond Expr
	Body Stmt
}

// DoWhileStmt is a do-while loop.
type DoWhileStmt struct {
	Pos  Pos
	Body Stmt
	Cond Expr
}

// SwitchStmt is a switch over an integral selector.
type SwitchStmt struct {
	Pos      Pos
	Selector Expr
	Cases    []*SwitchCase
}

// SwitchCase is one case group. An empty Exprs list is the default case.
type SwitchCase struct {
	Pos   Pos
	Exprs []Expr
	Stmts []Stmt
}

// IsDefault reports whether the case is the default case.
func (c *SwitchCase) IsDefault() bool {
	return len(c.Exprs) == 0
}

// CtrlTransfer enumerates control-transfer statements.
type CtrlTransfer uint8

const (
	// TransferBreak exits the innermost loop or switch.
	TransferBreak CtrlTransfer = iota

	// TransferContinue skips to the next loop iteration.
	TransferContinue

	// TransferDiscard abandons the fragment invocation.
	TransferDiscard
)

// String returns the GLSL spelling of the transfer keyword.
func (t CtrlTransfer) String() string {
	switch t {
	case TransferBreak:
		return "break"
	case TransferContinue:
		return "continue"
	case TransferDiscard:
		return "discard"
	default:
		return "unknown"
	}
}

// CtrlTransferStmt is break, continue, or discard.
type CtrlTransferStmt struct {
	Pos      Pos
	Transfer CtrlTransfer
}

func (*CodeBlockStmt) stmtNode()    {}
func (*NullStmt) stmtNode()         {}
func (*ExprStmt) stmtNode()         {}
func (*ReturnStmt) stmtNode()       {}
func (*IfStmt) stmtNode()           {}
func (*ForStmt) stmtNode()          {}
func (*WhileStmt) stmtNode()        {}
func (*DoWhileStmt) stmtNode()      {}
func (*SwitchStmt) stmtNode()       {}
func (*CtrlTransferStmt) stmtNode() {}
func (*VarDeclStmt) stmtNode()      {}
func (*StructDecl) stmtNode()       {}
func (*AliasDecl) stmtNode()        {}

func (b *CodeBlock) Position() Pos        { return b.Pos }
func (s *CodeBlockStmt) Position() Pos    { return s.Pos }
func (s *NullStmt) Position() Pos         { return s.Pos }
func (s *ExprStmt) Position() Pos         { return s.Pos }
func (s *ReturnStmt) Position() Pos       { return s.Pos }
func (s *IfStmt) Position() Pos           { return s.Pos }
func (s *ForStmt) Position() Pos          { return s.Pos }
func (s *WhileStmt) Position() Pos        { return s.Pos }
func (s *DoWhileStmt) Position() Pos      { return s.Pos }
func (s *SwitchStmt) Position() Pos       { return s.Pos }
func (c *SwitchCase) Position() Pos       { return c.Pos }
func (s *CtrlTransferStmt) Position() Pos { return s.Pos }
