// Package xsc generates OpenGL Shading Language source from
// semantically-analyzed HLSL shaders.
//
// The input is an ast.Program as produced by an HLSL front end: types
// resolved, identifier chains linked to their declarations, intrinsics
// tagged on call nodes. The glsl backend converts the entry point to the
// GLSL execution model and emits text for one shader stage and version:
//
//	source, err := xsc.TranslateString(program, ast.TargetVertexShader, glsl.Version330)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Diagnostics stream to a report.Log while generation continues, so one
// pass over a broken shader surfaces every problem. For control over
// formatting, name mangling, and binding reflection, call Translate with
// explicit glsl.ShaderInput and glsl.ShaderOutput values:
//
//	err := xsc.Translate(
//	    glsl.ShaderInput{Program: program, Target: ast.TargetFragmentShader},
//	    glsl.ShaderOutput{Sink: &buf, Version: glsl.Version420, Stats: &stats},
//	    &report.Collector{},
//	)
package xsc

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/gogpu/xsc/ast"
	"github.com/gogpu/xsc/glsl"
	"github.com/gogpu/xsc/report"
)

// Translate generates GLSL for one shader stage. It is a thin boundary
// around glsl.Generate that contextualizes failures with the requested
// target. Recoverable problems go to log; a non-nil error means the
// written output must not be used.
func Translate(in glsl.ShaderInput, out glsl.ShaderOutput, log report.Log) error {
	if err := glsl.Generate(in, out, log); err != nil {
		return errors.Wrapf(err, "translating %s shader", in.Target)
	}
	return nil
}

// TranslateString generates GLSL with default options and returns the
// source text. On failure the returned error leads with the first
// collected diagnostic, which names the offending construct.
func TranslateString(p *ast.Program, target ast.ShaderTarget, version glsl.Version) (string, error) {
	var sb strings.Builder
	log := &report.Collector{}
	in := glsl.ShaderInput{Program: p, Target: target}
	out := glsl.ShaderOutput{Sink: &sb, Version: version}
	if err := Translate(in, out, log); err != nil {
		for _, r := range log.Reports {
			if r.Severity == report.SeverityError {
				return "", errors.Wrap(err, r.Message)
			}
		}
		return "", err
	}
	return sb.String(), nil
}
