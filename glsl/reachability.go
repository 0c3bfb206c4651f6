// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import "github.com/gogpu/xsc/ast"

// markReachable flags every declaration the entry point transitively
// references; the emitter skips global declarations without the flag.
// The flag test doubles as the visited set, so cycles between mutually
// recursive functions terminate.
func markReachable(entry *ast.FunctionDecl) {
	markDecl(entry)
}

// markDecl sets FlagReachable on a declaration and follows its outgoing
// references. Nodes without flag storage are ignored.
func markDecl(n ast.Node) {
	flags := ast.FlagsOf(n)
	if flags == nil || flags.Has(ast.FlagReachable) {
		return
	}
	flags.Set(ast.FlagReachable)

	switch d := n.(type) {
	case *ast.FunctionDecl:
		markType(d.ReturnType)
		for _, p := range d.Params {
			markType(p.Type)
			walkRefs(p)
		}
		markBucket(d.InputSemantics)
		markBucket(d.OutputSemantics)
		if d.Body != nil {
			walkRefs(d.Body)
		}
	case *ast.StructDecl:
		for _, nested := range d.NestedStructs {
			markDecl(nested)
		}
		if d.BaseStructRef != nil {
			markDecl(d.BaseStructRef)
		}
		for _, m := range d.Members {
			markType(m.Type)
			walkRefs(m)
		}
	case *ast.BufferDecl:
		for _, m := range d.Members {
			markType(m.Type)
			walkRefs(m)
		}
	case *ast.AliasDecl:
		markType(d.Type)
	case *ast.VarDeclStmt:
		markType(d.Type)
		walkRefs(d)
	}
}

// markBucket marks the entry-point I/O variables the converter collected.
func markBucket(io ast.SemanticIO) {
	for _, v := range io.VarDeclRefs {
		markVar(v)
	}
	for _, v := range io.VarDeclRefsSV {
		markVar(v)
	}
}

// markVar marks a single variable and the declarations it hangs off:
// the owning statement and, for cbuffer members, the owning buffer.
func markVar(v *ast.VarDecl) {
	if v.Flags.Has(ast.FlagReachable) {
		return
	}
	v.Flags.Set(ast.FlagReachable)
	if v.DeclStmtRef != nil {
		markDecl(v.DeclStmtRef)
	}
	if v.BufferDeclRef != nil {
		markDecl(v.BufferDeclRef)
	}
}

// markSymbol follows an identifier's symbol back-reference.
func markSymbol(sym ast.Symbol) {
	if v, ok := sym.(*ast.VarDecl); ok {
		markVar(v)
		return
	}
	markDecl(sym)
}

// walkRefs scans a subtree for references out of it: identifier symbols,
// resolved callees, cast targets, and the types of local declarations.
func walkRefs(n ast.Node) {
	ast.Walk(n, func(c ast.Node) {
		switch x := c.(type) {
		case *ast.VarIdent:
			if x.Symbol != nil {
				markSymbol(x.Symbol)
			}
		case *ast.CallExpr:
			if x.FuncDeclRef != nil {
				markDecl(x.FuncDeclRef)
			}
		case *ast.CastExpr:
			markType(x.To)
		case *ast.VarDeclStmt:
			markType(x.Type)
		case *ast.StructDecl:
			markDecl(x)
		}
	})
}

// markType follows a type denoter to the declarations it names.
func markType(t ast.TypeDenoter) {
	switch dt := t.(type) {
	case *ast.StructType:
		if dt.Ref != nil {
			markDecl(dt.Ref)
		}
	case *ast.TextureObjectType:
		if dt.Ref != nil {
			markDecl(dt.Ref)
		}
	case *ast.AliasType:
		if dt.Ref != nil {
			markDecl(dt.Ref)
		}
	case *ast.ArrayType:
		markType(dt.Base)
		for _, dim := range dt.Dims {
			walkRefs(dim)
		}
	}
}
