// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"strconv"

	"github.com/gogpu/xsc/ast"
)

// emitBlock writes the statements of a code block at the current level.
func (g *generator) emitBlock(block *ast.CodeBlock) {
	for _, s := range block.Stmts {
		g.emitStmt(s)
	}
}

// emitStmt writes a single statement.
func (g *generator) emitStmt(s ast.Stmt) {
	g.lineMark(s.Position())

	switch st := s.(type) {
	case *ast.CodeBlockStmt:
		g.w.beginScope()
		g.emitBlock(st.Block)
		g.w.endScope()
	case *ast.NullStmt:
		g.w.writeLine(";")
	case *ast.ExprStmt:
		g.w.beginLine()
		g.w.write(g.expr(st.Expr))
		g.w.write(";")
		g.w.endLine()
	case *ast.ReturnStmt:
		g.emitReturnStmt(st)
	case *ast.IfStmt:
		g.emitIfStmt(st)
	case *ast.ForStmt:
		g.emitForStmt(st)
	case *ast.WhileStmt:
		g.w.writeLine("while (" + g.expr(st.Cond) + ")")
		g.emitEmbeddedStmt(st.Body)
	case *ast.DoWhileStmt:
		g.w.writeLine("do")
		g.emitEmbeddedStmt(st.Body)
		g.w.writeLine("while (" + g.expr(st.Cond) + ");")
	case *ast.SwitchStmt:
		g.emitSwitchStmt(st)
	case *ast.CtrlTransferStmt:
		g.w.writeLine(st.Transfer.String() + ";")
	case *ast.VarDeclStmt:
		g.emitVarDeclStmt(st)
	case *ast.StructDecl:
		g.emitStructDecl(st)
	case *ast.AliasDecl:
	default:
		g.rep.Errorf(s.Position(), "unsupported statement")
	}
}

// emitReturnStmt writes a return, expanding it into output assignments
// inside the entry point.
func (g *generator) emitReturnStmt(ret *ast.ReturnStmt) {
	if g.inEntryPoint {
		g.emitEntryReturn(ret, g.entry)
		return
	}
	if ret.Expr == nil {
		g.w.writeLine("return;")
		return
	}
	g.w.beginLine()
	g.w.write("return " + g.expr(ret.Expr) + ";")
	g.w.endLine()
}

// emitIfStmt writes an if with optional else and else-if chaining.
func (g *generator) emitIfStmt(st *ast.IfStmt) {
	g.w.writeLine("if (" + g.expr(st.Cond) + ")")
	g.emitEmbeddedStmt(st.Body)
	g.emitElse(st.Else)
}

// emitElse writes an else branch; a nested if continues on the same line.
func (g *generator) emitElse(s ast.Stmt) {
	if s == nil {
		return
	}
	if chained, ok := s.(*ast.IfStmt); ok {
		g.w.writeLine("else if (" + g.expr(chained.Cond) + ")")
		g.emitEmbeddedStmt(chained.Body)
		g.emitElse(chained.Else)
		return
	}
	g.w.writeLine("else")
	g.emitEmbeddedStmt(s)
}

// emitEmbeddedStmt writes the body of a control-flow statement: blocks
// open a scope, single statements are indented without braces. Returns
// inside the entry point expand to several lines, so they get braces to
// keep the body a single construct.
func (g *generator) emitEmbeddedStmt(s ast.Stmt) {
	if s == nil {
		g.w.writeLine(";")
		return
	}
	if block, ok := s.(*ast.CodeBlockStmt); ok {
		g.w.beginScope()
		g.emitBlock(block.Block)
		g.w.endScope()
		return
	}
	if _, ok := s.(*ast.ReturnStmt); ok && g.inEntryPoint {
		g.w.beginScope()
		g.emitStmt(s)
		g.w.endScope()
		return
	}
	g.w.level++
	g.emitStmt(s)
	g.w.level--
}

// emitForStmt writes a for loop, splicing the init statement into the
// header line.
func (g *generator) emitForStmt(st *ast.ForStmt) {
	g.w.beginLine()
	g.w.write("for (")
	if st.Init != nil {
		g.w.pushOptions(writeOptions{indent: false, newline: false})
		g.emitStmt(st.Init)
		g.w.popOptions()
	} else {
		g.w.write(";")
	}
	if st.Cond != nil {
		g.w.write(" " + g.expr(st.Cond))
	}
	g.w.write(";")
	if st.Iter != nil {
		g.w.write(" " + g.expr(st.Iter))
	}
	g.w.write(")")
	g.w.endLine()
	g.emitEmbeddedStmt(st.Body)
}

// emitSwitchStmt writes a switch statement. Case labels sit one level in,
// their statements one deeper.
func (g *generator) emitSwitchStmt(st *ast.SwitchStmt) {
	g.w.writeLine("switch (" + g.expr(st.Selector) + ")")
	g.w.beginScope()
	for _, c := range st.Cases {
		if c.IsDefault() {
			g.w.writeLine("default:")
		}
		for _, e := range c.Exprs {
			g.w.writeLine("case " + g.expr(e) + ":")
		}
		g.w.level++
		for _, s := range c.Stmts {
			g.emitStmt(s)
		}
		g.w.level--
	}
	g.w.endScope()
}

// emitVarDeclStmt writes a variable declaration statement as its own line.
func (g *generator) emitVarDeclStmt(d *ast.VarDeclStmt) {
	if !g.varDeclStmtWillEmit(d) {
		return
	}
	g.w.beginLine()
	g.emitVarDeclStmtInline(d)
	g.w.endLine()
}

// varDeclStmtWillEmit reports whether any declarator survives filtering;
// fully filtered statements must not leave a stray semicolon.
func (g *generator) varDeclStmtWillEmit(d *ast.VarDeclStmt) bool {
	for _, v := range d.Vars {
		if g.varWillEmit(v) {
			return true
		}
	}
	return false
}

// varWillEmit applies the per-declarator filters: suppressed variables
// never print, and interface blocks drop system-value members because
// built-ins carry those.
func (g *generator) varWillEmit(v *ast.VarDecl) bool {
	if v.Flags.Has(ast.FlagDisableCodeGen) {
		return false
	}
	if g.inBlock && v.Semantic.IsSystemValue() {
		return false
	}
	return true
}

// emitVarDeclStmtInline writes a variable declaration without line
// framing so callers can splice it into layout prefixes or loop headers.
func (g *generator) emitVarDeclStmtInline(d *ast.VarDeclStmt) {
	if d.Flags.Has(ast.FlagShaderInput) {
		g.w.write("in ")
	} else if d.Flags.Has(ast.FlagShaderOutput) {
		g.w.write("out ")
	}
	for _, s := range d.Storages {
		if kw, ok := storageKeyword(s); ok {
			g.w.write(kw + " ")
		}
	}
	if d.IsConst {
		g.w.write("const ")
	}
	g.w.write(g.typeKeyword(d.Type, d.Pos))

	wrote := 0
	for _, v := range d.Vars {
		if !g.varWillEmit(v) {
			continue
		}
		if wrote > 0 {
			g.w.write(",")
		}
		g.w.write(" " + v.Ident)
		g.emitArrayDims(typeArrayDims(d.Type))
		g.emitArrayDims(v.ArrayDims)
		if v.Init != nil {
			g.w.write(" = " + g.expr(v.Init))
		}
		wrote++
	}
	g.w.write(";")
}

// emitArrayDims writes one bracketed extent per dimension.
func (g *generator) emitArrayDims(dims []ast.Expr) {
	for _, dim := range dims {
		g.w.write("[" + g.expr(dim) + "]")
	}
}

// emitStructDecl writes a structure, hoisting nested structures out
// child-to-parent first. Structures at the stage boundary print as
// interface blocks instead.
func (g *generator) emitStructDecl(s *ast.StructDecl) {
	for _, nested := range s.NestedStructs {
		if g.structWillEmit(nested) {
			g.emitStructDecl(nested)
			g.w.blank()
		}
	}

	input := s.Flags.Has(ast.FlagShaderInput)
	output := s.Flags.Has(ast.FlagShaderOutput)
	if input || output {
		g.emitInterfaceBlock(s, input)
		return
	}

	g.w.writeLine("struct " + s.Ident)
	g.w.beginScope()
	g.emitStructMembers(s)
	g.w.endScopeWith(";")
}

// emitInterfaceBlock writes a stage-boundary structure as an in/out block
// carrying the converter-assigned instance name.
func (g *generator) emitInterfaceBlock(s *ast.StructDecl, input bool) {
	qualifier := "out "
	if input {
		qualifier = "in "
	}
	g.w.writeLine(qualifier + s.Ident)
	g.w.beginScope()
	g.inBlock = true
	g.emitStructMembers(s)
	g.inBlock = false
	if s.AliasName != "" {
		g.w.endScopeWith(" " + s.AliasName + ";")
	} else {
		g.w.endScopeWith(";")
	}
}

// emitStructMembers writes the member declarations, including inherited
// ones from the base structure first.
func (g *generator) emitStructMembers(s *ast.StructDecl) {
	if s.BaseStructRef != nil {
		g.emitStructMembers(s.BaseStructRef)
	}
	for _, m := range s.Members {
		g.emitVarDeclStmt(m)
	}
}

// emitBufferDecl writes a cbuffer as a std140 uniform block, with an
// explicit binding when a register names one for this target.
func (g *generator) emitBufferDecl(b *ast.BufferDecl) {
	layout := "layout(std140"
	if slot, ok := g.registerSlot(b.Registers, ast.RegisterB, b.Pos); ok && g.bindingsAvailable() {
		layout += ", binding = " + strconv.Itoa(slot)
	}
	layout += ") uniform " + b.Ident

	g.w.writeLine(layout)
	g.w.beginScope()
	for _, m := range b.Members {
		g.emitVarDeclStmt(m)
	}
	g.w.endScopeWith(";")
}

// emitTextureDecl writes a texture as a combined sampler uniform and
// records it for the caller's statistics.
func (g *generator) emitTextureDecl(t *ast.TextureDecl) {
	binding := -1
	g.w.beginLine()
	if slot, ok := g.registerSlot(t.Registers, ast.RegisterT, t.Pos); ok && g.bindingsAvailable() {
		g.w.write("layout(binding = " + strconv.Itoa(slot) + ") ")
		binding = slot
	}
	g.w.write("uniform " + samplerKeyword(t.Texture) + " " + t.Ident + ";")
	g.w.endLine()

	if g.stats != nil {
		g.stats.Textures = append(g.stats.Textures, TextureRecord{Ident: t.Ident, Binding: binding})
	}
}

// bindingsAvailable reports whether explicit binding qualifiers can be
// written: native from 4.20, via extension below that.
func (g *generator) bindingsAvailable() bool {
	return g.version.AtLeast(Version420) || g.opts.AllowExtensions
}

// registerSlot resolves the register for the current target and validates
// its bank prefix.
func (g *generator) registerSlot(regs []ast.Register, expected ast.RegisterType, pos ast.Pos) (int, bool) {
	reg := ast.FindRegister(regs, g.target)
	if reg == nil {
		return 0, false
	}
	if reg.Type() != expected {
		g.rep.Errorf(pos, "invalid register prefix '%s' (expected '%s')", reg.Prefix(), expected)
		return 0, false
	}
	return reg.Slot, true
}
