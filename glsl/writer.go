// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"io"
	"strconv"
	"time"

	"github.com/gogpu/xsc/ast"
	"github.com/gogpu/xsc/report"
)

// writeOptions frames the lines written while it is on top of the stack.
// The emitter pushes {false, false} to splice a statement into the
// current line, e.g. the init statement of a for-loop header.
type writeOptions struct {
	indent  bool
	newline bool
}

// codeWriter turns emission calls into indented lines of text. Sink
// errors stick: after the first failure the remaining output is dropped
// and the error surfaces once at the end of generation.
type codeWriter struct {
	sink    io.Writer
	err     error
	indent  string
	level   int
	options []writeOptions
}

func newCodeWriter(sink io.Writer, indent string) *codeWriter {
	return &codeWriter{
		sink:    sink,
		indent:  indent,
		options: []writeOptions{{indent: true, newline: true}},
	}
}

func (w *codeWriter) current() writeOptions {
	return w.options[len(w.options)-1]
}

func (w *codeWriter) pushOptions(o writeOptions) {
	w.options = append(w.options, o)
}

func (w *codeWriter) popOptions() {
	if len(w.options) > 1 {
		w.options = w.options[:len(w.options)-1]
	}
}

// write sends raw text to the sink without any framing.
func (w *codeWriter) write(s string) {
	if w.err != nil || s == "" {
		return
	}
	_, w.err = io.WriteString(w.sink, s)
}

// beginLine writes the indentation for the current level when the active
// options call for it.
func (w *codeWriter) beginLine() {
	if !w.current().indent {
		return
	}
	for i := 0; i < w.level; i++ {
		w.write(w.indent)
	}
}

// endLine terminates the current line when the active options call for it.
func (w *codeWriter) endLine() {
	if w.current().newline {
		w.write("\n")
	}
}

// writeLine emits a whole framed line.
func (w *codeWriter) writeLine(s string) {
	w.beginLine()
	w.write(s)
	w.endLine()
}

// blank emits an empty separator line.
func (w *codeWriter) blank() {
	if w.current().newline {
		w.write("\n")
	}
}

// directive emits a preprocessor line at column zero regardless of the
// indentation level.
func (w *codeWriter) directive(s string) {
	w.write(s)
	w.write("\n")
}

// beginScope opens a brace block on its own line and indents.
func (w *codeWriter) beginScope() {
	w.writeLine("{")
	w.level++
}

// endScope closes the innermost brace block.
func (w *codeWriter) endScope() {
	w.endScopeWith("")
}

// endScopeWith closes the innermost brace block with a suffix on the same
// line, e.g. ";" for struct declarations or " name;" for interface blocks.
func (w *codeWriter) endScopeWith(suffix string) {
	if w.level > 0 {
		w.level--
	}
	w.writeLine("}" + suffix)
}

// generator is the emission pass. It walks the converted AST and writes
// GLSL text; it never mutates the tree.
type generator struct {
	w       *codeWriter
	p       *ast.Program
	entry   *ast.FunctionDecl
	target  ast.ShaderTarget
	version Version
	opts    *Options
	exts    []string
	stats   *Statistics
	rep     *report.Reporter

	// inEntryPoint expands returns into output assignments.
	inEntryPoint bool

	// inBlock filters system-value members out of interface blocks.
	inBlock bool

	// wroteSection separates top-level sections with one blank line.
	wroteSection bool
}

func newGenerator(p *ast.Program, entry *ast.FunctionDecl, target ast.ShaderTarget, v Version, opts *Options, exts []string, stats *Statistics, rep *report.Reporter) *generator {
	return &generator{
		p:       p,
		entry:   entry,
		target:  target,
		version: v,
		opts:    opts,
		exts:    exts,
		stats:   stats,
		rep:     rep,
	}
}

// writeErr returns the sink error that stopped output, if any.
func (g *generator) writeErr() error {
	if g.w == nil {
		return nil
	}
	return g.w.err
}

// sectionBreak separates the upcoming section from whatever was written
// before it.
func (g *generator) sectionBreak() {
	if g.wroteSection {
		g.w.blank()
	}
	g.wroteSection = true
}

// lineMark emits a #line directive for the node when the option is on.
func (g *generator) lineMark(pos ast.Pos) {
	if !g.opts.LineMarks || !pos.IsValid() {
		return
	}
	g.w.directive("#line " + strconv.Itoa(pos.Row))
}

// emitProgram writes the complete translation unit to the sink.
func (g *generator) emitProgram(sink io.Writer) {
	g.w = newCodeWriter(sink, g.opts.Indent)

	g.emitHeader()
	g.emitVersion()
	g.emitExtensions()
	g.emitFragCoord()
	g.emitEntryAttribs()
	g.emitIntrinsicHelpers()
	g.emitEntryInOut()
	g.emitGlobalDecls()
}

// emitHeader writes the leading comment block when enabled. It carries a
// timestamp, so deterministic output needs it off.
func (g *generator) emitHeader() {
	if !g.opts.Header {
		return
	}
	g.w.writeLine("// GLSL " + g.target.String() + " shader \"" + g.entry.Ident + "\"")
	g.w.writeLine("// generated by xsc")
	g.w.writeLine("// " + time.Now().Format(time.ANSIC))
	g.wroteSection = true
}

func (g *generator) emitVersion() {
	g.sectionBreak()
	g.w.directive("#version " + g.version.String())
}

func (g *generator) emitExtensions() {
	if len(g.exts) == 0 {
		return
	}
	g.sectionBreak()
	for _, name := range g.exts {
		g.w.directive("#extension " + name + " : enable")
	}
}

// emitFragCoord pins the fragment coordinate origin to the upper left so
// the HLSL screen-space convention survives. Shader-model-3 sources also
// pin pixel centers to integer coordinates.
func (g *generator) emitFragCoord() {
	if g.target != ast.TargetFragmentShader {
		return
	}
	g.sectionBreak()
	qualifiers := "origin_upper_left"
	if g.p.SM3ScreenSpace {
		qualifiers += ", pixel_center_integer"
	}
	g.w.writeLine("layout(" + qualifiers + ") in vec4 gl_FragCoord;")
}

// emitEntryAttribs turns the entry-point attributes into layout
// declarations.
func (g *generator) emitEntryAttribs() {
	if a := ast.FindAttribute(g.entry.Attribs, ast.AttrNumThreads); a != nil {
		if len(a.Args) != 3 {
			g.rep.Errorf(a.Pos, "numthreads expects 3 arguments, got %d", len(a.Args))
		} else {
			g.sectionBreak()
			g.w.writeLine("layout(local_size_x = " + g.expr(a.Args[0]) +
				", local_size_y = " + g.expr(a.Args[1]) +
				", local_size_z = " + g.expr(a.Args[2]) + ") in;")
		}
	}
	if a := ast.FindAttribute(g.entry.Attribs, ast.AttrEarlyDepthStencil); a != nil {
		if g.target == ast.TargetFragmentShader {
			g.sectionBreak()
			g.w.writeLine("layout(early_fragment_tests) in;")
		} else {
			g.rep.Warnf(a.Pos, "earlydepthstencil ignored outside the fragment stage")
		}
	}
}

// emitIntrinsicHelpers writes helper definitions for intrinsics GLSL
// lacks. Only clip needs one today.
func (g *generator) emitIntrinsicHelpers() {
	if !g.p.UsesIntrinsic(ast.IntrinsicClip) {
		return
	}
	g.sectionBreak()
	for _, helper := range clipHelpers {
		g.w.writeLine(helper)
	}
}

// emitEntryInOut writes the global in/out declarations the converter
// lifted out of the entry-point interface: inputs first, then outputs.
// Fragment outputs carry explicit locations so render targets line up
// with the HLSL SV_Target indices.
func (g *generator) emitEntryInOut() {
	inputs := g.entry.InputSemantics.VarDeclRefs
	if len(inputs) > 0 {
		g.sectionBreak()
		for _, v := range inputs {
			g.emitEntryGlobal(v, "")
		}
	}

	outputs := g.entry.OutputSemantics.VarDeclRefs
	if len(outputs) > 0 {
		g.sectionBreak()
		for _, v := range outputs {
			prefix := ""
			if g.target == ast.TargetFragmentShader {
				prefix = "layout(location = " + strconv.Itoa(v.Semantic.Index) + ") "
			}
			g.emitEntryGlobal(v, prefix)
		}
	}
}

// emitEntryGlobal writes one lifted in/out global declaration.
func (g *generator) emitEntryGlobal(v *ast.VarDecl, prefix string) {
	if v.DeclStmtRef == nil {
		g.rep.Errorf(v.Pos, "entry-point variable %q has no declaration", v.Ident)
		return
	}
	g.lineMark(v.Pos)
	g.w.beginLine()
	g.w.write(prefix)
	g.emitVarDeclStmtInline(v.DeclStmtRef)
	g.w.endLine()
}

// emitGlobalDecls writes the reachable global declarations in source
// order, one blank line between neighbors. Unreachable functions with
// non-returning paths only warn; reachable ones error at their emitter.
func (g *generator) emitGlobalDecls() {
	for _, d := range g.p.Decls {
		flags := ast.FlagsOf(d)
		if flags == nil {
			continue
		}
		if !flags.Has(ast.FlagReachable) {
			if fn, ok := d.(*ast.FunctionDecl); ok && fn.Flags.Has(ast.FlagNonReturnControlPath) {
				g.rep.Warnf(fn.Pos, "not all control paths in unreachable function %q return a value", fn.Ident)
			}
			continue
		}
		if flags.Has(ast.FlagDisableCodeGen) || !g.declWillEmit(d) {
			continue
		}
		g.sectionBreak()
		g.lineMark(d.Position())
		g.emitDecl(d)
	}
}

// declWillEmit reports whether a declaration produces any output, so that
// suppressed declarations do not leave stray blank lines behind.
func (g *generator) declWillEmit(d ast.Decl) bool {
	switch decl := d.(type) {
	case *ast.FunctionDecl:
		return !decl.Flags.Has(ast.FlagEntryPoint) || decl.Body != nil
	case *ast.StructDecl:
		return g.structWillEmit(decl)
	case *ast.AliasDecl:
		// GLSL has no typedef; uses resolve through the aliased type.
		return false
	case *ast.VarDeclStmt:
		for _, v := range decl.Vars {
			if !v.Flags.Has(ast.FlagDisableCodeGen) {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// structWillEmit reports whether the structure still has anything to
// print once interface-block filtering removes system-value members.
func (g *generator) structWillEmit(s *ast.StructDecl) bool {
	if len(s.NestedStructs) > 0 {
		return true
	}
	if !s.Flags.Has(ast.FlagShaderInput) && !s.Flags.Has(ast.FlagShaderOutput) {
		return true
	}
	for _, m := range s.Members {
		for _, v := range m.Vars {
			if !v.Semantic.IsSystemValue() && !v.Flags.Has(ast.FlagDisableCodeGen) {
				return true
			}
		}
	}
	return false
}

// emitDecl dispatches a global declaration.
func (g *generator) emitDecl(d ast.Decl) {
	switch decl := d.(type) {
	case *ast.FunctionDecl:
		g.emitFunctionDecl(decl)
	case *ast.StructDecl:
		g.emitStructDecl(decl)
	case *ast.BufferDecl:
		g.emitBufferDecl(decl)
	case *ast.TextureDecl:
		g.emitTextureDecl(decl)
	case *ast.VarDeclStmt:
		g.emitVarDeclStmt(decl)
	case *ast.AliasDecl:
	default:
		g.rep.Errorf(d.Position(), "unsupported global declaration")
	}
}

// emitFunctionDecl writes a function definition, a forward declaration,
// or the entry point.
func (g *generator) emitFunctionDecl(fn *ast.FunctionDecl) {
	if fn.Flags.Has(ast.FlagNonReturnControlPath) {
		g.rep.Errorf(fn.Pos, "not all control paths in function %q return a value", fn.Ident)
	}
	if fn.Flags.Has(ast.FlagEntryPoint) {
		g.emitEntryPoint(fn)
		return
	}

	g.w.beginLine()
	g.w.write(g.typeKeyword(fn.ReturnType, fn.Pos))
	g.w.write(" " + fn.Ident + "(")
	for i, p := range fn.Params {
		if i > 0 {
			g.w.write(", ")
		}
		g.emitParam(p)
	}
	g.w.write(")")
	if fn.Body == nil {
		g.w.write(";")
		g.w.endLine()
		return
	}
	g.w.endLine()
	g.w.beginScope()
	g.emitBlock(fn.Body)
	g.w.endScope()
}

// emitParam writes one function parameter.
func (g *generator) emitParam(p *ast.VarDeclStmt) {
	if p.IsConst {
		g.w.write("const ")
	}
	if p.IsOutput {
		g.w.write("out ")
	}
	g.w.write(g.typeKeyword(p.Type, p.Pos))
	for _, v := range p.Vars {
		g.w.write(" " + v.Ident)
		g.emitArrayDims(typeArrayDims(p.Type))
		g.emitArrayDims(v.ArrayDims)
	}
}

// emitEntryPoint writes void main() around the converted entry body.
func (g *generator) emitEntryPoint(fn *ast.FunctionDecl) {
	g.w.writeLine("void main()")
	g.w.beginScope()
	g.inEntryPoint = true

	g.emitEntryLocals(fn)
	if fn.Body != nil {
		g.emitBlock(fn.Body)
		if !endsInReturn(fn.Body) {
			g.emitEntryOutParams(fn)
		}
	}

	g.inEntryPoint = false
	g.w.endScope()
}

// emitEntryLocals declares the locals standing in for the entry point's
// former parameters: system-value inputs are initialized from their
// built-in variables, system-value out-parameters start undefined and
// are copied out at each exit.
func (g *generator) emitEntryLocals(fn *ast.FunctionDecl) {
	for _, v := range fn.InputSemantics.VarDeclRefsSV {
		builtin, ok := builtinFromSemantic(v.Semantic, g.target, true, g.version)
		if !ok {
			g.rep.Errorf(v.Pos, "semantic %q has no GLSL built-in for %s input", v.Semantic.String(), g.target)
			continue
		}
		ty := g.varType(v)
		init := builtin
		if baseTypeOf(ty).Base() == ast.DataTypeUInt && signedBuiltin(builtin) {
			init = "uint(" + builtin + ")"
		}
		g.w.writeLine(g.typeKeyword(ty, v.Pos) + " " + v.Ident + " = " + init + ";")
	}
	for _, v := range fn.OutputSemantics.VarDeclRefsSV {
		if v.Flags.Has(ast.FlagReturnOutput) {
			continue
		}
		g.w.writeLine(g.typeKeyword(g.varType(v), v.Pos) + " " + v.Ident + ";")
	}
}

// emitEntryOutParams copies system-value out-parameters into their
// built-ins; it runs before every entry-point exit.
func (g *generator) emitEntryOutParams(fn *ast.FunctionDecl) {
	for _, v := range fn.OutputSemantics.VarDeclRefsSV {
		if v.Flags.Has(ast.FlagReturnOutput) {
			continue
		}
		builtin, ok := builtinFromSemantic(v.Semantic, g.target, false, g.version)
		if !ok {
			g.rep.Errorf(v.Pos, "semantic %q has no GLSL built-in for %s output", v.Semantic.String(), g.target)
			continue
		}
		g.w.writeLine(builtin + " = " + v.Ident + ";")
	}
}

// emitEntryReturn expands a return inside the entry point: out-parameter
// copies, then the assignments carrying the return value into built-ins
// and lifted out globals, then a bare return unless the statement closes
// the function anyway.
func (g *generator) emitEntryReturn(ret *ast.ReturnStmt, fn *ast.FunctionDecl) {
	g.emitEntryOutParams(fn)

	if ret.Expr != nil {
		outputs := returnOutputs(fn)
		value := ""
		if len(outputs) > 0 {
			value = g.returnValueName(ret, outputs)
		}
		for _, v := range outputs {
			target := v.Ident
			if v.MemberRef != nil {
				g.w.writeLine(target + " = " + value + "." + v.MemberRef.Ident + ";")
			} else {
				g.w.writeLine(target + " = " + value + ";")
			}
		}
	}

	if !ret.Flags.Has(ast.FlagEndOfFunction) {
		g.w.writeLine("return;")
	}
}

// returnOutputs collects the outputs synthesized from the entry point's
// original return value, built-in-mapped and lifted alike.
func returnOutputs(fn *ast.FunctionDecl) []*ast.VarDecl {
	var outs []*ast.VarDecl
	for _, v := range fn.OutputSemantics.VarDeclRefsSV {
		if v.Flags.Has(ast.FlagReturnOutput) {
			outs = append(outs, v)
		}
	}
	for _, v := range fn.OutputSemantics.VarDeclRefs {
		if v.Flags.Has(ast.FlagReturnOutput) {
			outs = append(outs, v)
		}
	}
	return outs
}

// returnValueName renders the returned expression, evaluating it into a
// mangled temporary first when several member assignments would otherwise
// re-evaluate it.
func (g *generator) returnValueName(ret *ast.ReturnStmt, outputs []*ast.VarDecl) string {
	value := g.expr(ret.Expr)
	multi := len(outputs) > 1 || outputs[0].MemberRef != nil
	if !multi || simpleExpr(ret.Expr) {
		return value
	}
	tmp := g.opts.Prefix + "output"
	g.w.writeLine(g.typeKeyword(ret.Expr.ResolvedType(), ret.Pos) + " " + tmp + " = " + value + ";")
	return tmp
}

// simpleExpr reports whether re-reading the expression is free of side
// effects and re-evaluation cost.
func simpleExpr(e ast.Expr) bool {
	switch x := e.(type) {
	case *ast.LiteralExpr:
		return true
	case *ast.VarAccessExpr:
		return x.Assign == nil
	case *ast.BracketExpr:
		return simpleExpr(x.Expr)
	default:
		return false
	}
}

// signedBuiltin reports whether the built-in variable is declared int in
// GLSL while HLSL allows a uint binding, forcing a cast.
func signedBuiltin(name string) bool {
	return name == "gl_VertexID" || name == "gl_InstanceID"
}

// endsInReturn reports whether the block's last statement is a return,
// descending through trailing blocks.
func endsInReturn(block *ast.CodeBlock) bool {
	if len(block.Stmts) == 0 {
		return false
	}
	switch last := block.Stmts[len(block.Stmts)-1].(type) {
	case *ast.ReturnStmt:
		return true
	case *ast.CodeBlockStmt:
		return endsInReturn(last.Block)
	default:
		return false
	}
}

// varType returns the declared type behind an entry-point variable.
func (g *generator) varType(v *ast.VarDecl) ast.TypeDenoter {
	if v.DeclStmtRef == nil {
		return nil
	}
	return v.DeclStmtRef.Type
}
