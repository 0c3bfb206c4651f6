// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gogpu/xsc/ast"
	"github.com/gogpu/xsc/report"
)

// Version identifies a desktop GLSL language version.
type Version int

// Supported GLSL output versions.
const (
	Version110 Version = 110 // OpenGL 2.0
	Version120 Version = 120 // OpenGL 2.1
	Version130 Version = 130 // OpenGL 3.0
	Version140 Version = 140 // OpenGL 3.1
	Version150 Version = 150 // OpenGL 3.2
	Version330 Version = 330 // OpenGL 3.3
	Version400 Version = 400 // OpenGL 4.0
	Version410 Version = 410 // OpenGL 4.1
	Version420 Version = 420 // OpenGL 4.2
	Version430 Version = 430 // OpenGL 4.3
	Version440 Version = 440 // OpenGL 4.4
	Version450 Version = 450 // OpenGL 4.5
)

// String returns the version directive value, e.g. "330".
func (v Version) String() string {
	return strconv.Itoa(int(v))
}

// AtLeast reports whether v is at least the given version.
func (v Version) AtLeast(min Version) bool {
	return v >= min
}

// valid reports whether v is a supported output version.
func (v Version) valid() bool {
	switch v {
	case Version110, Version120, Version130, Version140, Version150,
		Version330, Version400, Version410, Version420, Version430,
		Version440, Version450:
		return true
	default:
		return false
	}
}

// Options configures GLSL code generation.
type Options struct {
	// Indent is the string written per indentation level.
	Indent string

	// Prefix mangles the identifiers the generator synthesizes so they
	// cannot collide with user declarations.
	Prefix string

	// LineMarks emits #line directives referencing the HLSL source rows.
	LineMarks bool

	// AllowExtensions permits #extension directives when the target
	// version lacks a required feature. When false such features are
	// reported as errors and generation continues without them.
	AllowExtensions bool

	// Header prepends a comment block naming the target stage, the entry
	// point, and the generation time. Off by default so repeated runs
	// stay byte-identical.
	Header bool
}

// DefaultOptions returns the options used when ShaderOutput.Options is nil.
func DefaultOptions() *Options {
	return &Options{
		Indent:          "    ",
		Prefix:          "xsc_",
		AllowExtensions: true,
	}
}

// ShaderInput carries the analyzed program and the stage to generate.
type ShaderInput struct {
	// Program is the semantically-analyzed shader. The generator rewrites
	// its entry-point interface in place; the rewrite runs once, so a
	// second Generate call must name the same entry point.
	Program *ast.Program

	// Target selects the shader stage to generate.
	Target ast.ShaderTarget

	// EntryPoint names the entry-point function. Empty selects the
	// program's EntryPointRef.
	EntryPoint string
}

// ShaderOutput carries the destination and the output dialect.
type ShaderOutput struct {
	// Sink receives the generated GLSL source.
	Sink io.Writer

	// Version is the GLSL version to emit.
	Version Version

	// Options tunes formatting and name mangling. Nil selects
	// DefaultOptions.
	Options *Options

	// Stats, when non-nil, is filled with binding reflection gathered
	// while emitting.
	Stats *Statistics
}

// Statistics reflects the bindings the generator emitted.
type Statistics struct {
	// Textures records every texture uniform written.
	Textures []TextureRecord
}

// TextureRecord describes one emitted texture uniform. Binding is the
// register slot, or -1 when the declaration carried no register.
type TextureRecord struct {
	Ident   string
	Binding int
}

// Generate writes the program as GLSL for the requested stage and version.
//
// The pipeline validates the input, analyzes control paths, converts the
// entry point to the GLSL execution model, marks reachable declarations,
// resolves extension requirements, and emits text. Recoverable problems
// are submitted to log and generation continues with degraded output; a
// nil log discards them. A non-nil error means the output is unusable.
func Generate(in ShaderInput, out ShaderOutput, log report.Log) error {
	if in.Program == nil {
		return report.Errorf(ast.Pos{}, "input program is missing")
	}
	if out.Sink == nil {
		return report.Errorf(ast.Pos{}, "output sink is missing")
	}
	if in.Target == ast.TargetUndefined {
		return report.Errorf(ast.Pos{}, "shader target is undefined")
	}
	if !out.Version.valid() {
		return report.Errorf(ast.Pos{}, "invalid GLSL version '%d'", int(out.Version))
	}
	if errs := ast.Validate(in.Program); len(errs) > 0 {
		return report.Errorf(errs[0].Pos, "invalid program: %s", errs[0].Message)
	}

	entry, err := findEntryPoint(in.Program, in.EntryPoint)
	if err != nil {
		return err
	}
	in.Program.EntryPointRef = entry

	opts := out.Options
	if opts == nil {
		opts = DefaultOptions()
	}

	rep := report.NewReporter(log)

	analyzeControlPaths(in.Program)
	convertProgram(in.Program, entry, in.Target, out.Version, opts, rep)
	markReachable(entry)
	exts := collectExtensions(in.Program, entry, in.Target, out.Version, opts, rep)

	g := newGenerator(in.Program, entry, in.Target, out.Version, opts, exts, out.Stats, rep)
	g.emitProgram(out.Sink)
	if err := g.writeErr(); err != nil {
		return err
	}
	if n := rep.NumErrors(); n > 0 {
		return fmt.Errorf("GLSL generation produced %d error(s)", n)
	}
	return nil
}

// findEntryPoint resolves the entry-point function, preferring the named
// one over the program's EntryPointRef.
func findEntryPoint(p *ast.Program, name string) (*ast.FunctionDecl, error) {
	if name == "" {
		if p.EntryPointRef == nil {
			return nil, report.Errorf(ast.Pos{}, "entry point is missing")
		}
		return p.EntryPointRef, nil
	}
	for _, d := range p.Decls {
		fn, ok := d.(*ast.FunctionDecl)
		if !ok || fn.Ident != name {
			continue
		}
		if fn.Body == nil {
			continue
		}
		return fn, nil
	}
	return nil, report.Errorf(ast.Pos{}, "entry point \"%s\" not found", name)
}
