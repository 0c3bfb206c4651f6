package main

import (
	"github.com/pkg/errors"

	"github.com/gogpu/xsc/ast"
)

// buildDemo returns the named built-in sample program and its natural
// shader stage. The programs are hand-built in the analyzed form the
// HLSL front end would produce, with symbols and declaration
// back-references already resolved and source rows matching the HLSL
// listings in the builder comments.
func buildDemo(name string) (*ast.Program, ast.ShaderTarget, error) {
	switch name {
	case "passthrough":
		return demoPassthrough(), ast.TargetVertexShader, nil
	case "clip":
		return demoClip(), ast.TargetFragmentShader, nil
	case "compute":
		return demoCompute(), ast.TargetComputeShader, nil
	default:
		return nil, ast.TargetUndefined, errors.Errorf("unknown demo %q (want passthrough, clip, or compute)", name)
	}
}

func scalar(dt ast.DataType) *ast.BaseType {
	return &ast.BaseType{DataType: dt}
}

func intLit(value string) *ast.LiteralExpr {
	return &ast.LiteralExpr{Type: scalar(ast.DataTypeInt), Value: value}
}

func declare(t ast.TypeDenoter, ident string) (*ast.VarDeclStmt, *ast.VarDecl) {
	v := &ast.VarDecl{Ident: ident}
	stmt := &ast.VarDeclStmt{Type: t, Vars: []*ast.VarDecl{v}}
	v.DeclStmtRef = stmt
	return stmt, v
}

func param(t ast.TypeDenoter, ident, semantic string) *ast.VarDeclStmt {
	stmt, v := declare(t, ident)
	v.Semantic = ast.ParseSemantic(semantic)
	return stmt
}

func access(v *ast.VarDecl, t ast.TypeDenoter) *ast.VarAccessExpr {
	return &ast.VarAccessExpr{Type: t, Ident: &ast.VarIdent{Ident: v.Ident, Symbol: v}}
}

// swizzle reads one component of a declared vector variable.
func swizzle(v *ast.VarDecl, comp string, t ast.TypeDenoter) *ast.VarAccessExpr {
	return &ast.VarAccessExpr{
		Type:  t,
		Ident: &ast.VarIdent{Ident: v.Ident, Symbol: v, Next: &ast.VarIdent{Ident: comp}},
	}
}

func program(entry *ast.FunctionDecl, globals ...ast.Decl) *ast.Program {
	return &ast.Program{
		Decls:         append(globals, entry),
		EntryPointRef: entry,
	}
}

// demoPassthrough is the analyzed form of
//
//	float4 main(float4 position : POSITION) : SV_Position
//	{
//	    return position;
//	}
func demoPassthrough() *ast.Program {
	pos := param(scalar(ast.DataTypeFloat4), "position", "POSITION")
	fn := &ast.FunctionDecl{
		Pos:        ast.Pos{Row: 1, Col: 1},
		ReturnType: scalar(ast.DataTypeFloat4),
		Ident:      "main",
		Semantic:   ast.ParseSemantic("SV_Position"),
		Params:     []*ast.VarDeclStmt{pos},
		Body: &ast.CodeBlock{Stmts: []ast.Stmt{
			&ast.ReturnStmt{
				Pos:  ast.Pos{Row: 3, Col: 5},
				Expr: access(pos.Vars[0], scalar(ast.DataTypeFloat4)),
			},
		}},
	}
	return program(fn)
}

// demoClip is the analyzed form of
//
//	Texture2D albedo : register(t0);
//	SamplerState smp;
//
//	float4 main(float2 uv : TEXCOORD, float4 tint : COLOR) : SV_Target
//	{
//	    float4 base = albedo.Sample(smp, uv);
//	    clip(base.a - 0.5);
//	    return base * tint;
//	}
func demoClip() *ast.Program {
	t0, _ := ast.ParseRegister("t0")
	albedo := &ast.TextureDecl{
		Pos:       ast.Pos{Row: 1, Col: 1},
		Texture:   ast.Texture2D,
		Ident:     "albedo",
		Registers: []ast.Register{t0},
	}

	smpStmt, smp := declare(&ast.AliasType{Ident: "SamplerState"}, "smp")
	smpStmt.Pos = ast.Pos{Row: 2, Col: 1}
	smp.Flags.Set(ast.FlagDisableCodeGen)

	uvStmt := param(scalar(ast.DataTypeFloat2), "uv", "TEXCOORD")
	tintStmt := param(scalar(ast.DataTypeFloat4), "tint", "COLOR")
	uv, tint := uvStmt.Vars[0], tintStmt.Vars[0]

	baseStmt, base := declare(scalar(ast.DataTypeFloat4), "base")
	baseStmt.Pos = ast.Pos{Row: 6, Col: 5}
	base.Init = &ast.CallExpr{
		Type: scalar(ast.DataTypeFloat4),
		Ident: &ast.VarIdent{
			Ident:  "albedo",
			Symbol: albedo,
			Next:   &ast.VarIdent{Ident: "Sample"},
		},
		Intrinsic: ast.IntrinsicSample,
		Args: []ast.Expr{
			access(smp, &ast.AliasType{Ident: "SamplerState"}),
			access(uv, scalar(ast.DataTypeFloat2)),
		},
	}

	clip := &ast.CallExpr{
		Type:      &ast.VoidType{},
		Ident:     &ast.VarIdent{Ident: "clip"},
		Intrinsic: ast.IntrinsicClip,
		Args: []ast.Expr{&ast.BinaryExpr{
			Type: scalar(ast.DataTypeFloat),
			Lhs:  swizzle(base, "a", scalar(ast.DataTypeFloat)),
			Op:   ast.OpSub,
			Rhs:  &ast.LiteralExpr{Type: scalar(ast.DataTypeFloat), Value: "0.5"},
		}},
	}

	result := &ast.BinaryExpr{
		Type: scalar(ast.DataTypeFloat4),
		Lhs:  access(base, scalar(ast.DataTypeFloat4)),
		Op:   ast.OpMul,
		Rhs:  access(tint, scalar(ast.DataTypeFloat4)),
	}

	fn := &ast.FunctionDecl{
		Pos:        ast.Pos{Row: 4, Col: 1},
		ReturnType: scalar(ast.DataTypeFloat4),
		Ident:      "main",
		Semantic:   ast.ParseSemantic("SV_Target"),
		Params:     []*ast.VarDeclStmt{uvStmt, tintStmt},
		Body: &ast.CodeBlock{Stmts: []ast.Stmt{
			baseStmt,
			&ast.ExprStmt{Pos: ast.Pos{Row: 7, Col: 5}, Expr: clip},
			&ast.ReturnStmt{Pos: ast.Pos{Row: 8, Col: 5}, Expr: result},
		}},
	}
	return program(fn, albedo, smpStmt)
}

// demoCompute is the analyzed form of
//
//	groupshared uint counter;
//
//	[numthreads(64, 1, 1)]
//	void main(uint3 id : SV_DispatchThreadID)
//	{
//	    uint previous;
//	    InterlockedAdd(counter, id.x, previous);
//	}
func demoCompute() *ast.Program {
	counterStmt, counter := declare(scalar(ast.DataTypeUInt), "counter")
	counterStmt.Pos = ast.Pos{Row: 1, Col: 1}
	counterStmt.Storages = []ast.StorageClass{ast.StorageGroupShared}

	idStmt := param(scalar(ast.DataTypeUInt3), "id", "SV_DispatchThreadID")
	id := idStmt.Vars[0]

	prevStmt, prev := declare(scalar(ast.DataTypeUInt), "previous")
	prevStmt.Pos = ast.Pos{Row: 6, Col: 5}

	add := &ast.CallExpr{
		Type:      &ast.VoidType{},
		Ident:     &ast.VarIdent{Ident: "InterlockedAdd"},
		Intrinsic: ast.IntrinsicInterlockedAdd,
		Args: []ast.Expr{
			access(counter, scalar(ast.DataTypeUInt)),
			swizzle(id, "x", scalar(ast.DataTypeUInt)),
			access(prev, scalar(ast.DataTypeUInt)),
		},
	}

	fn := &ast.FunctionDecl{
		Pos:        ast.Pos{Row: 4, Col: 1},
		ReturnType: &ast.VoidType{},
		Ident:      "main",
		Params:     []*ast.VarDeclStmt{idStmt},
		Attribs: []*ast.Attribute{{
			Pos:  ast.Pos{Row: 3, Col: 1},
			Kind: ast.AttrNumThreads,
			Args: []ast.Expr{intLit("64"), intLit("1"), intLit("1")},
		}},
		Body: &ast.CodeBlock{Stmts: []ast.Stmt{
			prevStmt,
			&ast.ExprStmt{Pos: ast.Pos{Row: 7, Col: 5}, Expr: add},
		}},
	}
	return program(fn, counterStmt)
}
