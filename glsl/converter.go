// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"github.com/gogpu/xsc/ast"
	"github.com/gogpu/xsc/report"
)

// ==================== Conversion pass ====================

// convertProgram rewrites analyzed HLSL constructs into their GLSL forms:
// reserved identifiers are renamed, intrinsics without a direct GLSL
// equivalent are normalized, and the entry-point interface is lifted into
// shader in/out globals. The converter is the only pass that mutates the
// tree; the flag makes re-running the pipeline on an already-converted
// program a no-op.
func convertProgram(p *ast.Program, entry *ast.FunctionDecl, target ast.ShaderTarget, version Version, opts *Options, rep *report.Reporter) {
	if p.Flags.Has(ast.FlagConverted) {
		return
	}
	p.Flags.Set(ast.FlagConverted)

	renameReservedIdents(p, opts.Prefix)
	normalizeIntrinsics(p)
	convertEntryPoint(entry, target, version, rep)
}

// renameReservedIdents prefixes every declaration whose identifier
// collides with a GLSL keyword or the reserved gl_ namespace. Accesses
// resolve through the declaration symbol, so renaming the declaration
// renames every use.
func renameReservedIdents(p *ast.Program, prefix string) {
	ast.Walk(p, func(n ast.Node) {
		switch n := n.(type) {
		case *ast.FunctionDecl:
			if isReservedWord(n.Ident) {
				n.Ident = prefix + n.Ident
			}
		case *ast.StructDecl:
			if isReservedWord(n.Ident) {
				n.Ident = prefix + n.Ident
			}
		case *ast.BufferDecl:
			if isReservedWord(n.Ident) {
				n.Ident = prefix + n.Ident
			}
		case *ast.TextureDecl:
			if isReservedWord(n.Ident) {
				n.Ident = prefix + n.Ident
			}
		case *ast.AliasDecl:
			if isReservedWord(n.Ident) {
				n.Ident = prefix + n.Ident
			}
		case *ast.VarDecl:
			if isReservedWord(n.Ident) {
				n.Ident = prefix + n.Ident
			}
		}
	})
}

// normalizeIntrinsics rewrites intrinsic calls that have no one-to-one
// GLSL spelling and rebuilds the program's intrinsic usage set from the
// tree, so emission decisions see the calls as they will be emitted.
// saturate(x) becomes clamp(x, 0.0, 1.0).
func normalizeIntrinsics(p *ast.Program) {
	p.UsedIntrinsics = nil
	ast.Walk(p, func(n ast.Node) {
		call, ok := n.(*ast.CallExpr)
		if !ok || !call.IsIntrinsic() {
			return
		}
		if call.Intrinsic == ast.IntrinsicSaturate && len(call.Args) == 1 {
			call.Intrinsic = ast.IntrinsicClamp
			call.Args = append(call.Args, floatLiteral(call.Pos, "0.0"), floatLiteral(call.Pos, "1.0"))
		}
		p.MarkIntrinsic(call.Intrinsic)
	})
}

func floatLiteral(pos ast.Pos, value string) *ast.LiteralExpr {
	return &ast.LiteralExpr{
		Pos:   pos,
		Type:  &ast.BaseType{DataType: ast.DataTypeFloat},
		Value: value,
	}
}

// ==================== Entry-point interface ====================

// entryRewrites records which parameter links must be dropped from
// identifier chains once the parameters they name are gone.
type entryRewrites struct {
	// flatten holds parameters whose accesses lose their leading link
	// entirely; the members stand on their own as globals or locals.
	flatten map[*ast.VarDecl]bool

	// blocks holds parameters backed by an input interface block; only
	// accesses to builtin-mapped members lose the leading link, the rest
	// keep the block instance name.
	blocks map[*ast.VarDecl]bool
}

// convertEntryPoint lifts the entry point's parameters and return value
// into the semantic I/O buckets and strips the signature down to the
// void main() the emitter prints. Parameters and returns sorted into the
// user buckets become in/out globals; system values map to GLSL
// built-ins through locals or direct assignments.
func convertEntryPoint(fn *ast.FunctionDecl, target ast.ShaderTarget, version Version, rep *report.Reporter) {
	rw := &entryRewrites{
		flatten: make(map[*ast.VarDecl]bool),
		blocks:  make(map[*ast.VarDecl]bool),
	}

	for _, stmt := range fn.Params {
		for _, v := range stmt.Vars {
			v.DeclStmtRef = stmt
			if sd := structRefOf(stmt.Type); sd != nil {
				convertStructParam(fn, stmt, v, sd, target, version, rw, rep)
				continue
			}
			convertValueParam(fn, stmt, v, rep)
		}
	}

	convertReturnValue(fn, target, version, rep)
	rewriteEntryAccesses(fn, rw, rep)

	fn.Params = nil
	fn.ReturnType = &ast.VoidType{}
	fn.Flags.Set(ast.FlagEntryPoint)
}

// convertValueParam lifts a non-structure entry parameter: system values
// become builtin-backed locals or exit copies, user semantics become
// in/out globals keeping the parameter's name.
func convertValueParam(fn *ast.FunctionDecl, stmt *ast.VarDeclStmt, v *ast.VarDecl, rep *report.Reporter) {
	if !v.Semantic.IsValid() {
		rep.Errorf(v.Pos, "entry-point parameter '%s' has no semantic", v.Ident)
		return
	}
	switch {
	case stmt.IsOutput && v.Semantic.IsSystemValue():
		fn.OutputSemantics.VarDeclRefsSV = append(fn.OutputSemantics.VarDeclRefsSV, v)
	case stmt.IsOutput:
		stmt.Flags.Set(ast.FlagShaderOutput)
		fn.OutputSemantics.VarDeclRefs = append(fn.OutputSemantics.VarDeclRefs, v)
	case v.Semantic.IsSystemValue():
		fn.InputSemantics.VarDeclRefsSV = append(fn.InputSemantics.VarDeclRefsSV, v)
	default:
		stmt.Flags.Set(ast.FlagShaderInput)
		fn.InputSemantics.VarDeclRefs = append(fn.InputSemantics.VarDeclRefs, v)
	}
}

// convertStructParam lifts a structure-typed entry parameter. Fragment
// inputs keep the structure as an input interface block, so varyings
// arrive under the names the vertex stage wrote. Everything else
// flattens member-wise into loose globals and locals, and the structure
// declaration itself disappears from the output.
func convertStructParam(fn *ast.FunctionDecl, stmt *ast.VarDeclStmt, v *ast.VarDecl, sd *ast.StructDecl, target ast.ShaderTarget, version Version, rw *entryRewrites, rep *report.Reporter) {
	if !stmt.IsOutput && target == ast.TargetFragmentShader {
		sd.Flags.Set(ast.FlagShaderInput)
		sd.AliasName = v.Ident
		rw.blocks[v] = true
		for _, ms := range sd.Members {
			for _, mv := range ms.Vars {
				mv.DeclStmtRef = ms
				if !mv.Semantic.IsSystemValue() {
					continue
				}
				builtin, ok := builtinFromSemantic(mv.Semantic, target, true, version)
				if !ok {
					rep.Errorf(mv.Pos, "semantic %q has no GLSL built-in for %s input", mv.Semantic.String(), target)
					continue
				}
				mv.Ident = builtin
			}
		}
		return
	}

	sd.Flags.Set(ast.FlagDisableCodeGen)
	rw.flatten[v] = true
	for _, ms := range sd.Members {
		for _, mv := range ms.Vars {
			mv.DeclStmtRef = ms
			switch {
			case stmt.IsOutput && mv.Semantic.IsSystemValue():
				fn.OutputSemantics.VarDeclRefsSV = append(fn.OutputSemantics.VarDeclRefsSV, mv)
			case stmt.IsOutput:
				ms.Flags.Set(ast.FlagShaderOutput)
				fn.OutputSemantics.VarDeclRefs = append(fn.OutputSemantics.VarDeclRefs, mv)
			case mv.Semantic.IsSystemValue():
				fn.InputSemantics.VarDeclRefsSV = append(fn.InputSemantics.VarDeclRefsSV, mv)
			default:
				ms.Flags.Set(ast.FlagShaderInput)
				fn.InputSemantics.VarDeclRefs = append(fn.InputSemantics.VarDeclRefs, mv)
			}
		}
	}
}

// convertReturnValue synthesizes the output variables standing in for the
// entry point's return value. Structure returns produce one output per
// member; the member reference lets the emitter assign each one from the
// returned value at every return site.
func convertReturnValue(fn *ast.FunctionDecl, target ast.ShaderTarget, version Version, rep *report.Reporter) {
	ret := fn.ReturnType
	if ret == nil || ret.IsVoid() {
		return
	}
	if sd := structRefOf(ret); sd != nil {
		for _, ms := range sd.Members {
			for _, mv := range ms.Vars {
				mv.DeclStmtRef = ms
				if !mv.Semantic.IsValid() {
					rep.Errorf(mv.Pos, "returned member '%s' has no semantic", mv.Ident)
					continue
				}
				addReturnOutput(fn, mv.Semantic, ms.Type, mv, target, version)
			}
		}
		return
	}
	if !fn.Semantic.IsValid() {
		rep.Errorf(fn.Pos, "entry point '%s' returns a value without a semantic", fn.Ident)
		return
	}
	addReturnOutput(fn, fn.Semantic, ret, nil, target, version)
}

// addReturnOutput appends one synthesized return output. System values
// with a builtin form assign the builtin directly; everything else
// becomes an out global named after the semantic, so stages link up by
// semantic spelling.
func addReturnOutput(fn *ast.FunctionDecl, sem ast.Semantic, t ast.TypeDenoter, member *ast.VarDecl, target ast.ShaderTarget, version Version) {
	if sem.IsSystemValue() {
		if builtin, ok := builtinFromSemantic(sem, target, false, version); ok {
			fn.OutputSemantics.VarDeclRefsSV = append(fn.OutputSemantics.VarDeclRefsSV, &ast.VarDecl{
				Pos:       fn.Pos,
				Flags:     ast.FlagReturnOutput,
				Ident:     builtin,
				Semantic:  sem,
				MemberRef: member,
			})
			return
		}
	}
	out := &ast.VarDecl{
		Pos:       fn.Pos,
		Flags:     ast.FlagReturnOutput,
		Ident:     "out_" + sem.String(),
		Semantic:  sem,
		MemberRef: member,
	}
	out.DeclStmtRef = &ast.VarDeclStmt{
		Pos:   fn.Pos,
		Flags: ast.FlagShaderOutput,
		Type:  t,
		Vars:  []*ast.VarDecl{out},
	}
	fn.OutputSemantics.VarDeclRefs = append(fn.OutputSemantics.VarDeclRefs, out)
}

// rewriteEntryAccesses drops the leading link of accesses that went
// through a lifted structure parameter.
func rewriteEntryAccesses(fn *ast.FunctionDecl, rw *entryRewrites, rep *report.Reporter) {
	if fn.Body == nil || (len(rw.flatten) == 0 && len(rw.blocks) == 0) {
		return
	}
	ast.Walk(fn.Body, func(n ast.Node) {
		x, ok := n.(*ast.VarAccessExpr)
		if !ok || x.Ident == nil {
			return
		}
		head, ok := x.Ident.Symbol.(*ast.VarDecl)
		if !ok {
			return
		}
		switch {
		case rw.flatten[head]:
			if x.Ident.Next == nil {
				rep.Errorf(x.Pos, "cannot access flattened entry-point parameter '%s' as a whole", head.Ident)
				return
			}
			x.Ident = x.Ident.Next
		case rw.blocks[head]:
			next := x.Ident.Next
			if next == nil {
				rep.Errorf(x.Pos, "cannot access entry-point input block '%s' as a whole", head.Ident)
				return
			}
			if mv, ok := next.Symbol.(*ast.VarDecl); ok && mv.Semantic.IsSystemValue() {
				x.Ident = next
			}
		}
	})
}

// structRefOf resolves a type denoter to its structure declaration, or
// nil when the type is not a structure.
func structRefOf(t ast.TypeDenoter) *ast.StructDecl {
	if t == nil {
		return nil
	}
	if st, ok := t.GetAliased().(*ast.StructType); ok {
		return st.Ref
	}
	return nil
}
