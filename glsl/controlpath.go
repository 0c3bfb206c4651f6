// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import "github.com/gogpu/xsc/ast"

// analyzeControlPaths annotates each function body with return coverage:
// FlagNonReturnControlPath on non-void functions whose body can fall off
// the end, and FlagEndOfFunction on returns in tail position. The
// analysis only sets flags; the emitter decides whether a missing return
// is an error (reachable function) or a warning (unreachable).
func analyzeControlPaths(p *ast.Program) {
	for _, d := range p.Decls {
		fn, ok := d.(*ast.FunctionDecl)
		if !ok || fn.Body == nil {
			continue
		}
		markEndOfFunction(fn.Body)
		if fn.ReturnType != nil && !fn.ReturnType.IsVoid() && !blockReturns(fn.Body) {
			fn.Flags.Set(ast.FlagNonReturnControlPath)
		}
	}
}

// markEndOfFunction flags the return statement that closes the body,
// descending through trailing blocks.
func markEndOfFunction(block *ast.CodeBlock) {
	if len(block.Stmts) == 0 {
		return
	}
	switch last := block.Stmts[len(block.Stmts)-1].(type) {
	case *ast.ReturnStmt:
		last.Flags.Set(ast.FlagEndOfFunction)
	case *ast.CodeBlockStmt:
		markEndOfFunction(last.Block)
	}
}

// blockReturns reports whether every control path through the block
// reaches a return. A statement that returns on all paths terminates the
// block, so anything after it is unreachable and the block returns.
func blockReturns(block *ast.CodeBlock) bool {
	for _, s := range block.Stmts {
		if stmtReturns(s) {
			return true
		}
	}
	return false
}

// stmtReturns reports whether the statement returns on all paths. Loops
// are treated conservatively as non-returning because the condition may
// never hold.
func stmtReturns(s ast.Stmt) bool {
	switch st := s.(type) {
	case *ast.ReturnStmt:
		return true
	case *ast.CodeBlockStmt:
		return blockReturns(st.Block)
	case *ast.IfStmt:
		return st.Else != nil && stmtReturns(st.Body) && stmtReturns(st.Else)
	case *ast.SwitchStmt:
		return switchReturns(st)
	default:
		return false
	}
}

// switchReturns reports whether the switch returns on all paths: a
// default case must exist and every case must return before breaking or
// falling through.
func switchReturns(sw *ast.SwitchStmt) bool {
	hasDefault := false
	for _, c := range sw.Cases {
		if c.IsDefault() {
			hasDefault = true
		}
		if !caseReturns(c) {
			return false
		}
	}
	return hasDefault
}

// caseReturns reports whether the case body returns before a break or a
// fall-through into the next case.
func caseReturns(c *ast.SwitchCase) bool {
	for _, s := range c.Stmts {
		if stmtReturns(s) {
			return true
		}
		if t, ok := s.(*ast.CtrlTransferStmt); ok && t.Transfer == ast.TransferBreak {
			return false
		}
	}
	return false
}
