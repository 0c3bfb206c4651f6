// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"sort"

	"github.com/gogpu/xsc/ast"
	"github.com/gogpu/xsc/report"
)

// extensionNeed ties a construct to the GLSL version that provides it
// natively and the extension that backfills older targets.
type extensionNeed struct {
	pos  ast.Pos
	what string
	min  Version
	name string
}

// collectExtensions scans the reachable program for constructs the target
// version lacks and returns the extension names to enable, sorted
// lexicographically. With extensions disallowed, each shortfall is
// reported as an error instead and generation continues without it.
func collectExtensions(p *ast.Program, entry *ast.FunctionDecl, target ast.ShaderTarget, v Version, opts *Options, rep *report.Reporter) []string {
	var needs []extensionNeed
	add := func(pos ast.Pos, what string, min Version, name string) {
		needs = append(needs, extensionNeed{pos: pos, what: what, min: min, name: name})
	}

	if target == ast.TargetComputeShader {
		add(entry.Pos, "compute shaders", Version430, "GL_ARB_compute_shader")
	}
	if target == ast.TargetFragmentShader {
		add(entry.Pos, "fragment coordinate conventions", Version150, "GL_ARB_fragment_coord_conventions")
		if ast.FindAttribute(entry.Attribs, ast.AttrEarlyDepthStencil) != nil {
			add(entry.Pos, "early fragment tests", Version420, "GL_ARB_shader_image_load_store")
		}
		// Below 1.30 outputs go to gl_FragColor, which needs no layout.
		if len(entry.OutputSemantics.VarDeclRefs) > 0 && v.AtLeast(Version130) {
			add(entry.Pos, "explicit output locations", Version330, "GL_ARB_explicit_attrib_location")
		}
	}
	for in := range p.UsedIntrinsics {
		if in.IsInterlocked() {
			add(entry.Pos, "atomic operations", Version430, "GL_ARB_shader_storage_buffer_object")
			break
		}
	}

	for _, d := range p.Decls {
		flags := ast.FlagsOf(d)
		if flags == nil || !flags.Has(ast.FlagReachable) {
			continue
		}
		switch decl := d.(type) {
		case *ast.BufferDecl:
			add(decl.Pos, "uniform buffers", Version140, "GL_ARB_uniform_buffer_object")
			if ast.FindRegister(decl.Registers, target) != nil {
				add(decl.Pos, "explicit bindings", Version420, "GL_ARB_shading_language_420pack")
			}
		case *ast.TextureDecl:
			if decl.Texture.IsMultisampled() {
				add(decl.Pos, "multisample textures", Version150, "GL_ARB_texture_multisample")
			}
			if ast.FindRegister(decl.Registers, target) != nil {
				add(decl.Pos, "explicit bindings", Version420, "GL_ARB_shading_language_420pack")
			}
		case *ast.FunctionDecl:
			if pos, ok := firstIntegerOp(decl); ok {
				add(pos, "integer and bitwise operations", Version130, "GL_EXT_gpu_shader4")
			}
		}
	}

	enabled := make(map[string]struct{})
	for _, n := range needs {
		if v.AtLeast(n.min) {
			continue
		}
		if !opts.AllowExtensions {
			rep.Errorf(n.pos, "%s require GLSL %s or extension %s", n.what, n.min, n.name)
			continue
		}
		enabled[n.name] = struct{}{}
	}

	names := make([]string, 0, len(enabled))
	for name := range enabled {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// firstIntegerOp finds a bitwise operation or unsigned declaration inside
// the function, both of which predate GLSL 1.30 only via extension.
func firstIntegerOp(fn *ast.FunctionDecl) (ast.Pos, bool) {
	if fn.Body == nil {
		return ast.Pos{}, false
	}
	var pos ast.Pos
	found := false
	ast.Walk(fn.Body, func(n ast.Node) {
		if found {
			return
		}
		switch x := n.(type) {
		case *ast.BinaryExpr:
			if x.Op.IsBitwise() {
				pos, found = x.Pos, true
			}
		case *ast.UnaryExpr:
			if x.Op == ast.OpBitNot {
				pos, found = x.Pos, true
			}
		case *ast.VarAccessExpr:
			if x.Assign != nil && assignIsBitwise(x.AssignOp) {
				pos, found = x.Pos, true
			}
		case *ast.VarDeclStmt:
			if baseTypeOf(x.Type).Base() == ast.DataTypeUInt {
				pos, found = x.Pos, true
			}
		}
	})
	return pos, found
}

// assignIsBitwise reports whether the compound assignment is a bitwise or
// shift form.
func assignIsBitwise(op ast.AssignOp) bool {
	switch op {
	case ast.AssignAnd, ast.AssignOr, ast.AssignXor, ast.AssignShl, ast.AssignShr:
		return true
	default:
		return false
	}
}
