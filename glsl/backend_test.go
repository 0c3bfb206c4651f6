// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"strings"
	"testing"

	"github.com/gogpu/xsc/ast"
	"github.com/gogpu/xsc/report"
)

// =============================================================================
// Helpers for GLSL tests
// =============================================================================

// generateSource runs the full pipeline and fails the test on any
// generation error.
func generateSource(t *testing.T, p *ast.Program, target ast.ShaderTarget, v Version) string {
	t.Helper()
	var sb strings.Builder
	err := Generate(ShaderInput{Program: p, Target: target}, ShaderOutput{Sink: &sb, Version: v}, nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return sb.String()
}

// generateCollect runs the pipeline with a diagnostic collector attached
// and returns the output, the collected reports, and the final error.
func generateCollect(p *ast.Program, target ast.ShaderTarget, v Version, opts *Options) (string, *report.Collector, error) {
	var sb strings.Builder
	log := &report.Collector{}
	err := Generate(ShaderInput{Program: p, Target: target}, ShaderOutput{Sink: &sb, Version: v, Options: opts}, log)
	return sb.String(), log, err
}

func mustContain(t *testing.T, source, expected string) {
	t.Helper()
	if !strings.Contains(source, expected) {
		t.Errorf("Expected output to contain %q.\nOutput:\n%s", expected, source)
	}
}

func mustNotContain(t *testing.T, source, forbidden string) {
	t.Helper()
	if strings.Contains(source, forbidden) {
		t.Errorf("Expected output not to contain %q.\nOutput:\n%s", forbidden, source)
	}
}

// =============================================================================
// AST builders shared by the GLSL tests
// =============================================================================

func typ(dt ast.DataType) *ast.BaseType {
	return &ast.BaseType{DataType: dt}
}

func floatLit(value string) *ast.LiteralExpr {
	return &ast.LiteralExpr{Type: typ(ast.DataTypeFloat), Value: value}
}

func intLit(value string) *ast.LiteralExpr {
	return &ast.LiteralExpr{Type: typ(ast.DataTypeInt), Value: value}
}

// declare builds a single-variable declaration statement with the
// back-reference the emitter resolves types through.
func declare(t ast.TypeDenoter, ident string) (*ast.VarDeclStmt, *ast.VarDecl) {
	v := &ast.VarDecl{Ident: ident}
	stmt := &ast.VarDeclStmt{Type: t, Vars: []*ast.VarDecl{v}}
	v.DeclStmtRef = stmt
	return stmt, v
}

// param builds one entry-point parameter carrying a semantic.
func param(t ast.TypeDenoter, ident, semantic string) *ast.VarDeclStmt {
	stmt, v := declare(t, ident)
	v.Semantic = ast.ParseSemantic(semantic)
	return stmt
}

// outParam builds an out-qualified entry-point parameter.
func outParam(t ast.TypeDenoter, ident, semantic string) *ast.VarDeclStmt {
	stmt := param(t, ident, semantic)
	stmt.IsOutput = true
	return stmt
}

// access reads a declared variable through its symbol.
func access(v *ast.VarDecl, t ast.TypeDenoter) *ast.VarAccessExpr {
	return &ast.VarAccessExpr{Type: t, Ident: &ast.VarIdent{Ident: v.Ident, Symbol: v}}
}

func body(stmts ...ast.Stmt) *ast.CodeBlock {
	return &ast.CodeBlock{Stmts: stmts}
}

func retStmt(e ast.Expr) *ast.ReturnStmt {
	return &ast.ReturnStmt{Expr: e}
}

// entryFn assembles an entry-point function declaration named main.
func entryFn(ret ast.TypeDenoter, semantic string, params []*ast.VarDeclStmt, b *ast.CodeBlock) *ast.FunctionDecl {
	return &ast.FunctionDecl{
		ReturnType: ret,
		Ident:      "main",
		Semantic:   ast.ParseSemantic(semantic),
		Params:     params,
		Body:       b,
	}
}

// testProgram lists the globals in source order with the entry point last.
func testProgram(entry *ast.FunctionDecl, globals ...ast.Decl) *ast.Program {
	return &ast.Program{
		Decls:         append(globals, entry),
		EntryPointRef: entry,
	}
}

// vertexPassthrough builds the analyzed form of
//
//	float4 main(float4 p : POSITION) : SV_Position { return p; }
func vertexPassthrough() *ast.Program {
	p := param(typ(ast.DataTypeFloat4), "p", "POSITION")
	fn := entryFn(typ(ast.DataTypeFloat4), "SV_Position", []*ast.VarDeclStmt{p},
		body(retStmt(access(p.Vars[0], typ(ast.DataTypeFloat4)))))
	return testProgram(fn)
}

// fragmentClip builds the analyzed form of
//
//	float4 main(float4 c : COLOR) : SV_Target { clip(c.a - 0.5); return c; }
func fragmentClip() *ast.Program {
	p := param(typ(ast.DataTypeFloat4), "c", "COLOR")
	c := p.Vars[0]
	alpha := &ast.VarAccessExpr{
		Type:  typ(ast.DataTypeFloat),
		Ident: &ast.VarIdent{Ident: "c", Symbol: c, Next: &ast.VarIdent{Ident: "a"}},
	}
	clip := &ast.CallExpr{
		Type:      &ast.VoidType{},
		Ident:     &ast.VarIdent{Ident: "clip"},
		Intrinsic: ast.IntrinsicClip,
		Args: []ast.Expr{&ast.BinaryExpr{
			Type: typ(ast.DataTypeFloat),
			Lhs:  alpha,
			Op:   ast.OpSub,
			Rhs:  floatLit("0.5"),
		}},
	}
	fn := entryFn(typ(ast.DataTypeFloat4), "SV_Target", []*ast.VarDeclStmt{p},
		body(&ast.ExprStmt{Expr: clip}, retStmt(access(c, typ(ast.DataTypeFloat4)))))
	return testProgram(fn)
}

// uniformBlock builds cbuffer ident : register(reg) { float4x4 member; }.
func uniformBlock(ident, member, reg string) (*ast.BufferDecl, *ast.VarDecl) {
	r, _ := ast.ParseRegister(reg)
	ms, mv := declare(typ(ast.DataTypeFloat4x4), member)
	b := &ast.BufferDecl{Ident: ident, Registers: []ast.Register{r}, Members: []*ast.VarDeclStmt{ms}}
	mv.BufferDeclRef = b
	return b, mv
}

// =============================================================================
// Version Tests
// =============================================================================

func TestVersion_String(t *testing.T) {
	tests := []struct {
		version Version
		want    string
	}{
		{Version110, "110"},
		{Version130, "130"},
		{Version330, "330"},
		{Version420, "420"},
		{Version450, "450"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.version.String(); got != tt.want {
				t.Errorf("Version.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVersion_AtLeast(t *testing.T) {
	tests := []struct {
		v    Version
		min  Version
		want bool
	}{
		{Version330, Version130, true},
		{Version330, Version330, true},
		{Version330, Version400, false},
		{Version110, Version120, false},
		{Version450, Version110, true},
	}

	for _, tt := range tests {
		if got := tt.v.AtLeast(tt.min); got != tt.want {
			t.Errorf("Version(%d).AtLeast(%d) = %v, want %v", tt.v, tt.min, got, tt.want)
		}
	}
}

func TestGenerate_RejectsInvalidVersion(t *testing.T) {
	for _, v := range []Version{0, 160, 300, 460} {
		var sb strings.Builder
		err := Generate(
			ShaderInput{Program: vertexPassthrough(), Target: ast.TargetVertexShader},
			ShaderOutput{Sink: &sb, Version: v}, nil)
		if err == nil {
			t.Fatalf("Generate() with version %d succeeded, want error", v)
		}
		if !strings.Contains(err.Error(), "invalid GLSL version") {
			t.Errorf("Generate() error = %q, want invalid version message", err)
		}
	}
}

// =============================================================================
// Options Tests
// =============================================================================

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.Indent != "    " {
		t.Errorf("DefaultOptions().Indent = %q, want four spaces", opts.Indent)
	}
	if opts.Prefix != "xsc_" {
		t.Errorf("DefaultOptions().Prefix = %q, want %q", opts.Prefix, "xsc_")
	}
	if !opts.AllowExtensions {
		t.Error("DefaultOptions().AllowExtensions = false, want true")
	}
	if opts.LineMarks {
		t.Error("DefaultOptions().LineMarks = true, want false")
	}
	if opts.Header {
		t.Error("DefaultOptions().Header = true, want false")
	}
}

// =============================================================================
// Input Validation Tests
// =============================================================================

func TestGenerate_InputErrors(t *testing.T) {
	var sb strings.Builder
	valid := vertexPassthrough()

	tests := []struct {
		name string
		in   ShaderInput
		out  ShaderOutput
		want string
	}{
		{
			name: "nil program",
			in:   ShaderInput{Target: ast.TargetVertexShader},
			out:  ShaderOutput{Sink: &sb, Version: Version330},
			want: "input program is missing",
		},
		{
			name: "nil sink",
			in:   ShaderInput{Program: valid, Target: ast.TargetVertexShader},
			out:  ShaderOutput{Version: Version330},
			want: "output sink is missing",
		},
		{
			name: "undefined target",
			in:   ShaderInput{Program: valid},
			out:  ShaderOutput{Sink: &sb, Version: Version330},
			want: "shader target is undefined",
		},
		{
			name: "no entry point reference",
			in:   ShaderInput{Program: &ast.Program{}, Target: ast.TargetVertexShader},
			out:  ShaderOutput{Sink: &sb, Version: Version330},
			want: "program has no entry point reference",
		},
		{
			name: "named entry point not found",
			in:   ShaderInput{Program: vertexPassthrough(), Target: ast.TargetVertexShader, EntryPoint: "ps_main"},
			out:  ShaderOutput{Sink: &sb, Version: Version330},
			want: `entry point "ps_main" not found`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Generate(tt.in, tt.out, nil)
			if err == nil {
				t.Fatal("Generate() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Generate() error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestGenerate_EntryPointByName(t *testing.T) {
	p := param(typ(ast.DataTypeFloat4), "p", "POSITION")
	vs := &ast.FunctionDecl{
		ReturnType: typ(ast.DataTypeFloat4),
		Ident:      "vs_main",
		Semantic:   ast.ParseSemantic("SV_Position"),
		Params:     []*ast.VarDeclStmt{p},
		Body:       body(retStmt(access(p.Vars[0], typ(ast.DataTypeFloat4)))),
	}
	c := param(typ(ast.DataTypeFloat4), "c", "COLOR")
	ps := &ast.FunctionDecl{
		ReturnType: typ(ast.DataTypeFloat4),
		Ident:      "ps_main",
		Semantic:   ast.ParseSemantic("SV_Target"),
		Params:     []*ast.VarDeclStmt{c},
		Body:       body(retStmt(access(c.Vars[0], typ(ast.DataTypeFloat4)))),
	}
	prog := &ast.Program{Decls: []ast.Decl{vs, ps}, EntryPointRef: ps}

	var sb strings.Builder
	err := Generate(
		ShaderInput{Program: prog, Target: ast.TargetVertexShader, EntryPoint: "vs_main"},
		ShaderOutput{Sink: &sb, Version: Version330}, nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	source := sb.String()
	mustContain(t, source, "gl_Position = p;")
	mustNotContain(t, source, "ps_main")
	if prog.EntryPointRef != vs {
		t.Error("Generate() did not retarget EntryPointRef to the named entry point")
	}
}

// =============================================================================
// Vertex Passthrough Tests
// =============================================================================

func TestGenerate_VertexPassthrough(t *testing.T) {
	source := generateSource(t, vertexPassthrough(), ast.TargetVertexShader, Version330)

	want := "#version 330\n" +
		"\n" +
		"in vec4 p;\n" +
		"\n" +
		"void main()\n" +
		"{\n" +
		"    gl_Position = p;\n" +
		"}\n"
	if source != want {
		t.Errorf("Generate() output mismatch.\ngot:\n%s\nwant:\n%s", source, want)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	prog := vertexPassthrough()

	var first, second strings.Builder
	in := ShaderInput{Program: prog, Target: ast.TargetVertexShader}
	if err := Generate(in, ShaderOutput{Sink: &first, Version: Version330}, nil); err != nil {
		t.Fatalf("first Generate() error = %v", err)
	}
	if err := Generate(in, ShaderOutput{Sink: &second, Version: Version330}, nil); err != nil {
		t.Fatalf("second Generate() error = %v", err)
	}
	if first.String() != second.String() {
		t.Errorf("repeated generation differs.\nfirst:\n%s\nsecond:\n%s", first.String(), second.String())
	}
}

// =============================================================================
// Fragment Stage Tests
// =============================================================================

func TestGenerate_FragmentClip(t *testing.T) {
	source := generateSource(t, fragmentClip(), ast.TargetFragmentShader, Version330)

	mustContain(t, source, "layout(origin_upper_left) in vec4 gl_FragCoord;")
	mustContain(t, source, "void clip(float x) { if (x < 0.0) discard; }")
	mustContain(t, source, "void clip(vec4 x) { if (any(lessThan(x, vec4(0.0)))) discard; }")
	mustContain(t, source, "in vec4 c;")
	mustContain(t, source, "layout(location = 0) out vec4 out_SV_Target;")
	mustContain(t, source, "    clip(c.a - 0.5);")
	mustContain(t, source, "    out_SV_Target = c;")
}

func TestGenerate_FragCoordPixelCenter(t *testing.T) {
	prog := fragmentClip()
	prog.SM3ScreenSpace = true
	source := generateSource(t, prog, ast.TargetFragmentShader, Version330)
	mustContain(t, source, "layout(origin_upper_left, pixel_center_integer) in vec4 gl_FragCoord;")
}

func TestGenerate_FragmentTargetIndex(t *testing.T) {
	p := param(typ(ast.DataTypeFloat4), "c", "COLOR")
	fn := entryFn(typ(ast.DataTypeFloat4), "SV_Target2", []*ast.VarDeclStmt{p},
		body(retStmt(access(p.Vars[0], typ(ast.DataTypeFloat4)))))
	source := generateSource(t, testProgram(fn), ast.TargetFragmentShader, Version330)

	mustContain(t, source, "layout(location = 2) out vec4 out_SV_Target2;")
	mustContain(t, source, "out_SV_Target2 = c;")
}

func TestGenerate_EarlyDepthStencil(t *testing.T) {
	p := param(typ(ast.DataTypeFloat4), "c", "COLOR")
	fn := entryFn(typ(ast.DataTypeFloat4), "SV_Target", []*ast.VarDeclStmt{p},
		body(retStmt(access(p.Vars[0], typ(ast.DataTypeFloat4)))))
	fn.Attribs = []*ast.Attribute{{Kind: ast.AttrEarlyDepthStencil}}

	source, log, err := generateCollect(testProgram(fn), ast.TargetFragmentShader, Version420, nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	mustContain(t, source, "layout(early_fragment_tests) in;")
	if log.NumWarnings() != 0 {
		t.Errorf("fragment earlydepthstencil warned: %v", log.Reports)
	}
}

func TestGenerate_EarlyDepthStencilOutsideFragment(t *testing.T) {
	prog := vertexPassthrough()
	prog.EntryPointRef.Attribs = []*ast.Attribute{{Kind: ast.AttrEarlyDepthStencil}}

	source, log, err := generateCollect(prog, ast.TargetVertexShader, Version330, nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	mustNotContain(t, source, "early_fragment_tests")
	if log.NumWarnings() != 1 {
		t.Fatalf("NumWarnings() = %d, want 1", log.NumWarnings())
	}
	if !strings.Contains(log.Reports[0].Message, "earlydepthstencil ignored") {
		t.Errorf("warning = %q, want earlydepthstencil notice", log.Reports[0].Message)
	}
}

// =============================================================================
// Compute Stage Tests
// =============================================================================

func TestGenerate_ComputeNumThreads(t *testing.T) {
	fn := entryFn(&ast.VoidType{}, "", nil, body())
	fn.Attribs = []*ast.Attribute{{
		Kind: ast.AttrNumThreads,
		Args: []ast.Expr{intLit("8"), intLit("8"), intLit("1")},
	}}
	source := generateSource(t, testProgram(fn), ast.TargetComputeShader, Version430)

	mustContain(t, source, "layout(local_size_x = 8, local_size_y = 8, local_size_z = 1) in;")
	mustContain(t, source, "void main()\n{\n}\n")
}

func TestGenerate_NumThreadsArity(t *testing.T) {
	fn := entryFn(&ast.VoidType{}, "", nil, body())
	fn.Attribs = []*ast.Attribute{{
		Kind: ast.AttrNumThreads,
		Args: []ast.Expr{intLit("8"), intLit("8")},
	}}

	source, log, err := generateCollect(testProgram(fn), ast.TargetComputeShader, Version430, nil)
	if err == nil {
		t.Fatal("Generate() succeeded, want error")
	}
	mustNotContain(t, source, "local_size_x")
	if log.NumErrors() != 1 {
		t.Fatalf("NumErrors() = %d, want 1", log.NumErrors())
	}
	if !strings.Contains(log.Reports[0].Message, "numthreads expects 3 arguments, got 2") {
		t.Errorf("error = %q, want numthreads arity message", log.Reports[0].Message)
	}
}

func TestGenerate_ComputeBuiltinInput(t *testing.T) {
	id := param(typ(ast.DataTypeUInt3), "id", "SV_DispatchThreadID")
	fn := entryFn(&ast.VoidType{}, "", []*ast.VarDeclStmt{id}, body())
	fn.Attribs = []*ast.Attribute{{
		Kind: ast.AttrNumThreads,
		Args: []ast.Expr{intLit("64"), intLit("1"), intLit("1")},
	}}
	source := generateSource(t, testProgram(fn), ast.TargetComputeShader, Version430)

	mustContain(t, source, "    uvec3 id = gl_GlobalInvocationID;")
}

func TestGenerate_VertexIDCast(t *testing.T) {
	vid := param(typ(ast.DataTypeUInt), "vid", "SV_VertexID")
	fn := entryFn(typ(ast.DataTypeFloat4), "SV_Position", []*ast.VarDeclStmt{vid},
		body(retStmt(&ast.CastExpr{
			Type: typ(ast.DataTypeFloat4),
			To:   typ(ast.DataTypeFloat4),
			Expr: access(vid.Vars[0], typ(ast.DataTypeUInt)),
		})))
	source := generateSource(t, testProgram(fn), ast.TargetVertexShader, Version330)

	mustContain(t, source, "    uint vid = uint(gl_VertexID);")
	mustContain(t, source, "    gl_Position = vec4(vid);")
}

// =============================================================================
// Intrinsic Lowering Tests
// =============================================================================

func TestGenerate_MulOperandParens(t *testing.T) {
	buf, wvp := uniformBlock("Globals", "wvp", "b0")
	pp := param(typ(ast.DataTypeFloat4), "p", "POSITION")
	vp := param(typ(ast.DataTypeFloat4), "v", "NORMAL")
	sum := &ast.BinaryExpr{
		Type: typ(ast.DataTypeFloat4),
		Lhs:  access(pp.Vars[0], typ(ast.DataTypeFloat4)),
		Op:   ast.OpAdd,
		Rhs:  access(vp.Vars[0], typ(ast.DataTypeFloat4)),
	}
	mul := &ast.CallExpr{
		Type:      typ(ast.DataTypeFloat4),
		Ident:     &ast.VarIdent{Ident: "mul"},
		Intrinsic: ast.IntrinsicMul,
		Args:      []ast.Expr{access(wvp, typ(ast.DataTypeFloat4x4)), sum},
	}
	fn := entryFn(typ(ast.DataTypeFloat4), "SV_Position", []*ast.VarDeclStmt{pp, vp},
		body(retStmt(mul)))
	source := generateSource(t, testProgram(fn, buf), ast.TargetVertexShader, Version330)

	mustContain(t, source, "in vec4 p;\nin vec4 v;")
	mustContain(t, source, "    gl_Position = (wvp * (p + v));")
	mustContain(t, source, "#extension GL_ARB_shading_language_420pack : enable")
}

func TestGenerate_SaturateBecomesClamp(t *testing.T) {
	p := param(typ(ast.DataTypeFloat4), "c", "COLOR")
	sat := &ast.CallExpr{
		Type:      typ(ast.DataTypeFloat4),
		Ident:     &ast.VarIdent{Ident: "saturate"},
		Intrinsic: ast.IntrinsicSaturate,
		Args:      []ast.Expr{access(p.Vars[0], typ(ast.DataTypeFloat4))},
	}
	fn := entryFn(typ(ast.DataTypeFloat4), "SV_Target", []*ast.VarDeclStmt{p},
		body(retStmt(sat)))
	source := generateSource(t, testProgram(fn), ast.TargetFragmentShader, Version330)

	mustContain(t, source, "    out_SV_Target = clamp(c, 0.0, 1.0);")
	mustNotContain(t, source, "saturate")
}

// =============================================================================
// Literal Swizzle Tests
// =============================================================================

func TestGenerate_LiteralSwizzles(t *testing.T) {
	local, lv := declare(typ(ast.DataTypeFloat3), "t")
	lv.Init = &ast.SuffixExpr{
		Type: typ(ast.DataTypeFloat3),
		Expr: floatLit("1.0"),
		Ident: &ast.VarIdent{Ident: "xx",
			Next: &ast.VarIdent{Ident: "y",
				Next: &ast.VarIdent{Ident: "xxx"}}},
	}
	quad := &ast.SuffixExpr{
		Type:  typ(ast.DataTypeFloat4),
		Expr:  floatLit("1.0"),
		Ident: &ast.VarIdent{Ident: "xxxx"},
	}
	fn := entryFn(typ(ast.DataTypeFloat4), "SV_Position", nil,
		body(local, retStmt(quad)))
	source := generateSource(t, testProgram(fn), ast.TargetVertexShader, Version330)

	mustContain(t, source, "    vec3 t = vec3(vec2(1.0).y);")
	mustContain(t, source, "    gl_Position = vec4(1.0);")
}

// =============================================================================
// Uniform Block Tests
// =============================================================================

func TestGenerate_UniformBlockBinding(t *testing.T) {
	buf, wvp := uniformBlock("Globals", "wvp", "b2")
	p := param(typ(ast.DataTypeFloat4), "p", "POSITION")
	mul := &ast.CallExpr{
		Type:      typ(ast.DataTypeFloat4),
		Ident:     &ast.VarIdent{Ident: "mul"},
		Intrinsic: ast.IntrinsicMul,
		Args: []ast.Expr{
			access(wvp, typ(ast.DataTypeFloat4x4)),
			access(p.Vars[0], typ(ast.DataTypeFloat4)),
		},
	}
	fn := entryFn(typ(ast.DataTypeFloat4), "SV_Position", []*ast.VarDeclStmt{p},
		body(retStmt(mul)))
	source := generateSource(t, testProgram(fn, buf), ast.TargetVertexShader, Version420)

	mustContain(t, source, "layout(std140, binding = 2) uniform Globals\n{\n    mat4 wvp;\n};")
	mustContain(t, source, "    gl_Position = (wvp * p);")
	mustNotContain(t, source, "#extension")
}

func TestGenerate_UniformBlockWithoutRegister(t *testing.T) {
	ms, mv := declare(typ(ast.DataTypeFloat4x4), "wvp")
	buf := &ast.BufferDecl{Ident: "Globals", Members: []*ast.VarDeclStmt{ms}}
	mv.BufferDeclRef = buf

	p := param(typ(ast.DataTypeFloat4), "p", "POSITION")
	mul := &ast.CallExpr{
		Type:      typ(ast.DataTypeFloat4),
		Ident:     &ast.VarIdent{Ident: "mul"},
		Intrinsic: ast.IntrinsicMul,
		Args: []ast.Expr{
			access(mv, typ(ast.DataTypeFloat4x4)),
			access(p.Vars[0], typ(ast.DataTypeFloat4)),
		},
	}
	fn := entryFn(typ(ast.DataTypeFloat4), "SV_Position", []*ast.VarDeclStmt{p},
		body(retStmt(mul)))
	source := generateSource(t, testProgram(fn, buf), ast.TargetVertexShader, Version330)

	mustContain(t, source, "layout(std140) uniform Globals")
	mustNotContain(t, source, "binding =")
}

func TestGenerate_UnreferencedBufferSkipped(t *testing.T) {
	buf, _ := uniformBlock("Globals", "wvp", "b0")
	prog := vertexPassthrough()
	prog.Decls = append([]ast.Decl{buf}, prog.Decls...)

	source := generateSource(t, prog, ast.TargetVertexShader, Version330)
	mustNotContain(t, source, "Globals")
}

// =============================================================================
// Boundary Behavior Tests
// =============================================================================

func TestGenerate_EmptyEntryBody(t *testing.T) {
	fn := entryFn(&ast.VoidType{}, "", nil, body())
	source := generateSource(t, testProgram(fn), ast.TargetVertexShader, Version330)

	want := "#version 330\n\nvoid main()\n{\n}\n"
	if source != want {
		t.Errorf("Generate() output mismatch.\ngot:\n%s\nwant:\n%s", source, want)
	}
}

func TestGenerate_SuppressedGlobalEmitsNothing(t *testing.T) {
	gstmt, gv := declare(typ(ast.DataTypeFloat), "hidden")
	gstmt.Storages = []ast.StorageClass{ast.StorageStatic}
	gv.Flags.Set(ast.FlagDisableCodeGen)

	p := param(typ(ast.DataTypeFloat4), "p", "POSITION")
	assign := &ast.VarAccessExpr{
		Type:   typ(ast.DataTypeFloat),
		Ident:  &ast.VarIdent{Ident: "hidden", Symbol: gv},
		Assign: floatLit("1.0"),
	}
	fn := entryFn(typ(ast.DataTypeFloat4), "SV_Position", []*ast.VarDeclStmt{p},
		body(&ast.ExprStmt{Expr: assign}, retStmt(access(p.Vars[0], typ(ast.DataTypeFloat4)))))
	source := generateSource(t, testProgram(fn, gstmt), ast.TargetVertexShader, Version330)

	want := "#version 330\n" +
		"\n" +
		"in vec4 p;\n" +
		"\n" +
		"void main()\n" +
		"{\n" +
		"    hidden = 1.0;\n" +
		"    gl_Position = p;\n" +
		"}\n"
	if source != want {
		t.Errorf("suppressed global left output behind.\ngot:\n%s\nwant:\n%s", source, want)
	}
}

func TestGenerate_DoubleDemotion(t *testing.T) {
	tests := []struct {
		version Version
		want    string
	}{
		{Version330, "    float d = 1.0;"},
		{Version410, "    double d = 1.0;"},
	}

	for _, tt := range tests {
		t.Run(tt.version.String(), func(t *testing.T) {
			local, lv := declare(typ(ast.DataTypeDouble), "d")
			lv.Init = floatLit("1.0")
			fn := entryFn(&ast.VoidType{}, "", nil, body(local))
			source := generateSource(t, testProgram(fn), ast.TargetVertexShader, tt.version)
			mustContain(t, source, tt.want)
		})
	}
}

// nonReturningHelper builds float pick(float x) { if (x > 0.0) return x; },
// which misses a return on the false path.
func nonReturningHelper() *ast.FunctionDecl {
	x := param(typ(ast.DataTypeFloat), "x", "")
	cond := &ast.BinaryExpr{
		Type: typ(ast.DataTypeBool),
		Lhs:  access(x.Vars[0], typ(ast.DataTypeFloat)),
		Op:   ast.OpGreater,
		Rhs:  floatLit("0.0"),
	}
	return &ast.FunctionDecl{
		ReturnType: typ(ast.DataTypeFloat),
		Ident:      "pick",
		Params:     []*ast.VarDeclStmt{x},
		Body: body(&ast.IfStmt{
			Cond: cond,
			Body: &ast.CodeBlockStmt{Block: body(retStmt(access(x.Vars[0], typ(ast.DataTypeFloat))))},
		}),
	}
}

func TestGenerate_UnreachableNonReturnWarns(t *testing.T) {
	helper := nonReturningHelper()
	fn := entryFn(&ast.VoidType{}, "", nil, body())
	prog := testProgram(fn, helper)

	source, log, err := generateCollect(prog, ast.TargetVertexShader, Version330, nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	mustNotContain(t, source, "float pick(")
	if log.NumWarnings() != 1 {
		t.Fatalf("NumWarnings() = %d, want 1", log.NumWarnings())
	}
	want := `not all control paths in unreachable function "pick" return a value`
	if !strings.Contains(log.Reports[0].Message, want) {
		t.Errorf("warning = %q, want %q", log.Reports[0].Message, want)
	}
}

func TestGenerate_ReachableNonReturnErrors(t *testing.T) {
	helper := nonReturningHelper()
	call := &ast.CallExpr{
		Type:        typ(ast.DataTypeFloat),
		Ident:       &ast.VarIdent{Ident: "pick"},
		FuncDeclRef: helper,
		Args:        []ast.Expr{floatLit("1.0")},
	}
	fn := entryFn(&ast.VoidType{}, "", nil, body(&ast.ExprStmt{Expr: call}))
	prog := testProgram(fn, helper)

	source, log, err := generateCollect(prog, ast.TargetVertexShader, Version330, nil)
	if err == nil {
		t.Fatal("Generate() succeeded, want error")
	}
	if !strings.Contains(err.Error(), "1 error(s)") {
		t.Errorf("Generate() error = %q, want error count", err)
	}
	mustContain(t, source, "float pick(float x)")
	mustContain(t, source, "    pick(1.0);")
	if log.NumErrors() != 1 {
		t.Fatalf("NumErrors() = %d, want 1", log.NumErrors())
	}
	want := `not all control paths in function "pick" return a value`
	if !strings.Contains(log.Reports[0].Message, want) {
		t.Errorf("error = %q, want %q", log.Reports[0].Message, want)
	}
}

// =============================================================================
// Formatting Option Tests
// =============================================================================

func TestGenerate_LineMarks(t *testing.T) {
	prog := vertexPassthrough()
	ret := prog.EntryPointRef.Body.Stmts[0].(*ast.ReturnStmt)
	ret.Pos = ast.Pos{Row: 7, Col: 5}

	opts := DefaultOptions()
	opts.LineMarks = true
	source, _, err := generateCollect(prog, ast.TargetVertexShader, Version330, opts)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	mustContain(t, source, "#line 7\n")
}

func TestGenerate_Header(t *testing.T) {
	opts := DefaultOptions()
	opts.Header = true
	source, _, err := generateCollect(vertexPassthrough(), ast.TargetVertexShader, Version330, opts)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	mustContain(t, source, `// GLSL vertex shader "main"`)
	mustContain(t, source, "// generated by xsc")
}

func TestGenerate_CustomIndent(t *testing.T) {
	opts := DefaultOptions()
	opts.Indent = "\t"
	source, _, err := generateCollect(vertexPassthrough(), ast.TargetVertexShader, Version330, opts)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	mustContain(t, source, "\tgl_Position = p;")
}

// =============================================================================
// Reserved Identifier Tests
// =============================================================================

func TestGenerate_RenamesReservedIdents(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		want   string
	}{
		{"default prefix", "", "xsc_texture"},
		{"custom prefix", "m_", "m_texture"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := param(typ(ast.DataTypeFloat4), "texture", "POSITION")
			fn := entryFn(typ(ast.DataTypeFloat4), "SV_Position", []*ast.VarDeclStmt{p},
				body(retStmt(access(p.Vars[0], typ(ast.DataTypeFloat4)))))

			var opts *Options
			if tt.prefix != "" {
				opts = DefaultOptions()
				opts.Prefix = tt.prefix
			}
			source, _, err := generateCollect(testProgram(fn), ast.TargetVertexShader, Version330, opts)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			mustContain(t, source, "in vec4 "+tt.want+";")
			mustContain(t, source, "gl_Position = "+tt.want+";")
		})
	}
}

// =============================================================================
// Keyword Tests
// =============================================================================

func TestIsReservedWord(t *testing.T) {
	reserved := []string{
		"main", "texture", "in", "out", "uniform", "layout",
		"void", "float", "int", "uint", "bool", "double",
		"vec2", "vec3", "vec4", "mat4", "mat3x4", "dmat2",
		"sampler2D", "samplerCube", "image2D",
		"if", "else", "for", "while", "return", "discard",
		"gl_Position", "gl_FragCoord", "gl_Whatever",
		"clamp", "mix", "atomicAdd",
	}
	for _, word := range reserved {
		if !isReservedWord(word) {
			t.Errorf("isReservedWord(%q) = false, want true", word)
		}
	}

	free := []string{"wvp", "color0", "myMain", "Texture", "gI_fake", ""}
	for _, word := range free {
		if isReservedWord(word) {
			t.Errorf("isReservedWord(%q) = true, want false", word)
		}
	}
}

func TestDataTypeKeyword(t *testing.T) {
	tests := []struct {
		dt      ast.DataType
		version Version
		want    string
	}{
		{ast.DataTypeBool, Version330, "bool"},
		{ast.DataTypeInt, Version330, "int"},
		{ast.DataTypeUInt, Version330, "uint"},
		{ast.DataTypeHalf, Version330, "float"},
		{ast.DataTypeFloat, Version330, "float"},
		{ast.DataTypeFloat2, Version330, "vec2"},
		{ast.DataTypeHalf3, Version330, "vec3"},
		{ast.DataTypeInt4, Version330, "ivec4"},
		{ast.DataTypeUInt2, Version330, "uvec2"},
		{ast.DataTypeBool3, Version330, "bvec3"},
		{ast.DataTypeFloat4x4, Version330, "mat4"},
		{ast.DataTypeFloat2x3, Version330, "mat2x3"},
		{ast.DataTypeFloat3x3, Version330, "mat3"},
		{ast.DataTypeDouble, Version330, "float"},
		{ast.DataTypeDouble, Version400, "double"},
		{ast.DataTypeDouble3, Version330, "vec3"},
		{ast.DataTypeDouble3, Version450, "dvec3"},
		{ast.DataTypeDouble4x4, Version330, "mat4"},
		{ast.DataTypeDouble4x4, Version440, "dmat4"},
	}

	for _, tt := range tests {
		t.Run(tt.want+"_"+tt.version.String(), func(t *testing.T) {
			if got := dataTypeKeyword(tt.dt, tt.version); got != tt.want {
				t.Errorf("dataTypeKeyword(%v, %v) = %q, want %q", tt.dt, tt.version, got, tt.want)
			}
		})
	}
}

func TestSamplerKeyword(t *testing.T) {
	tests := []struct {
		kind ast.TextureKind
		want string
	}{
		{ast.Texture1D, "sampler1D"},
		{ast.Texture2D, "sampler2D"},
		{ast.Texture2DArray, "sampler2DArray"},
		{ast.Texture3D, "sampler3D"},
		{ast.TextureCube, "samplerCube"},
		{ast.Texture2DMS, "sampler2DMS"},
	}

	for _, tt := range tests {
		if got := samplerKeyword(tt.kind); got != tt.want {
			t.Errorf("samplerKeyword(%v) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestBuiltinFromSemantic(t *testing.T) {
	tests := []struct {
		name     string
		semantic string
		target   ast.ShaderTarget
		input    bool
		version  Version
		want     string
		ok       bool
	}{
		{"vertex position out", "SV_Position", ast.TargetVertexShader, false, Version330, "gl_Position", true},
		{"fragment position in", "SV_Position", ast.TargetFragmentShader, true, Version330, "gl_FragCoord", true},
		{"fragment position out", "SV_Position", ast.TargetFragmentShader, false, Version330, "", false},
		{"fragment depth out", "SV_Depth", ast.TargetFragmentShader, false, Version330, "gl_FragDepth", true},
		{"target at 110", "SV_Target", ast.TargetFragmentShader, false, Version110, "gl_FragColor", true},
		{"target1 at 110", "SV_Target1", ast.TargetFragmentShader, false, Version110, "gl_FragData[1]", true},
		{"target at 330", "SV_Target", ast.TargetFragmentShader, false, Version330, "", false},
		{"vertex id", "SV_VertexID", ast.TargetVertexShader, true, Version330, "gl_VertexID", true},
		{"instance id", "SV_InstanceID", ast.TargetVertexShader, true, Version330, "gl_InstanceID", true},
		{"front facing", "SV_IsFrontFace", ast.TargetFragmentShader, true, Version330, "gl_FrontFacing", true},
		{"dispatch thread id", "SV_DispatchThreadID", ast.TargetComputeShader, true, Version430, "gl_GlobalInvocationID", true},
		{"group id", "SV_GroupID", ast.TargetComputeShader, true, Version430, "gl_WorkGroupID", true},
		{"group index", "SV_GroupIndex", ast.TargetComputeShader, true, Version430, "gl_LocalInvocationIndex", true},
		{"clip distance", "SV_ClipDistance2", ast.TargetVertexShader, false, Version330, "gl_ClipDistance[2]", true},
		{"cull distance below 450", "SV_CullDistance", ast.TargetVertexShader, false, Version330, "", false},
		{"cull distance at 450", "SV_CullDistance", ast.TargetVertexShader, false, Version450, "gl_CullDistance[0]", true},
		{"user semantic", "TEXCOORD", ast.TargetVertexShader, true, Version330, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := builtinFromSemantic(ast.ParseSemantic(tt.semantic), tt.target, tt.input, tt.version)
			if got != tt.want || ok != tt.ok {
				t.Errorf("builtinFromSemantic(%q) = %q, %v, want %q, %v", tt.semantic, got, ok, tt.want, tt.ok)
			}
		})
	}
}
