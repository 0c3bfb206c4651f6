package ast

// Visit invokes the visitor with each immediate syntactic child of the
// node. Semantic edges — symbol back-references, declaration refs, the
// entry-point I/O buckets — are not children; passes that need them follow
// the references explicitly. Nil children are skipped.
func Visit(n Node, visitor func(Node)) {
	visit := func(c Node) {
		if c != nil {
			visitor(c)
		}
	}
	visitExpr := func(e Expr) {
		if e != nil {
			visitor(e)
		}
	}
	visitStmt := func(s Stmt) {
		if s != nil {
			visitor(s)
		}
	}

	switch n := n.(type) {
	case *Program:
		for _, d := range n.Decls {
			visit(d)
		}
	case *FunctionDecl:
		for _, a := range n.Attribs {
			visit(a)
		}
		for _, p := range n.Params {
			visit(p)
		}
		if n.Body != nil {
			visitor(n.Body)
		}
	case *StructDecl:
		for _, s := range n.NestedStructs {
			visit(s)
		}
		for _, m := range n.Members {
			visit(m)
		}
	case *BufferDecl:
		for _, m := range n.Members {
			visit(m)
		}
	case *TextureDecl:
	case *AliasDecl:
	case *VarDeclStmt:
		for _, v := range n.Vars {
			visit(v)
		}
	case *VarDecl:
		for _, d := range n.ArrayDims {
			visitExpr(d)
		}
		visitExpr(n.Init)
	case *Attribute:
		for _, a := range n.Args {
			visitExpr(a)
		}
	case *CodeBlock:
		for _, s := range n.Stmts {
			visitStmt(s)
		}
	case *CodeBlockStmt:
		if n.Block != nil {
			visitor(n.Block)
		}
	case *NullStmt:
	case *ExprStmt:
		visitExpr(n.Expr)
	case *ReturnStmt:
		visitExpr(n.Expr)
	case *IfStmt:
		visitExpr(n.Cond)
		visitStmt(n.Body)
		visitStmt(n.Else)
	case *ForStmt:
		visitStmt(n.Init)
		visitExpr(n.Cond)
		visitExpr(n.Iter)
		visitStmt(n.Body)
	case *WhileStmt:
		visitExpr(n.Cond)
		visitStmt(n.Body)
	case *DoWhileStmt:
		visitStmt(n.Body)
		visitExpr(n.Cond)
	case *SwitchStmt:
		visitExpr(n.Selector)
		for _, c := range n.Cases {
			visit(c)
		}
	case *SwitchCase:
		for _, e := range n.Exprs {
			visitExpr(e)
		}
		for _, s := range n.Stmts {
			visitStmt(s)
		}
	case *CtrlTransferStmt:
	case *LiteralExpr:
	case *VarAccessExpr:
		if n.Ident != nil {
			visitor(n.Ident)
		}
		visitExpr(n.Assign)
	case *VarIdent:
		for _, i := range n.ArrayIndices {
			visitExpr(i)
		}
		if n.Next != nil {
			visitor(n.Next)
		}
	case *BinaryExpr:
		visitExpr(n.Lhs)
		visitExpr(n.Rhs)
	case *UnaryExpr:
		visitExpr(n.Expr)
	case *PostUnaryExpr:
		visitExpr(n.Expr)
	case *TernaryExpr:
		visitExpr(n.Cond)
		visitExpr(n.Then)
		visitExpr(n.Else)
	case *ListExpr:
		for _, e := range n.Exprs {
			visitExpr(e)
		}
	case *BracketExpr:
		visitExpr(n.Expr)
	case *CastExpr:
		visitExpr(n.Expr)
	case *ArrayAccessExpr:
		visitExpr(n.Expr)
		for _, i := range n.Indices {
			visitExpr(i)
		}
	case *SuffixExpr:
		visitExpr(n.Expr)
		if n.Ident != nil {
			visitor(n.Ident)
		}
	case *InitializerExpr:
		for _, e := range n.Exprs {
			visitExpr(e)
		}
	case *CallExpr:
		if n.Ident != nil {
			visitor(n.Ident)
		}
		for _, a := range n.Args {
			visitExpr(a)
		}
	}
}

// Walk visits the node and all its syntactic descendants in pre-order.
func Walk(n Node, visitor func(Node)) {
	if n == nil {
		return
	}
	visitor(n)
	Visit(n, func(c Node) {
		Walk(c, visitor)
	})
}
