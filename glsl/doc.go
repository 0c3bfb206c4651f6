// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package glsl generates desktop GLSL source from a semantically-analyzed
// HLSL program.
//
// The generator runs a fixed pipeline over the input AST:
//
//  1. control-path analysis marks return coverage per function
//  2. the converter rewrites the entry-point interface to the GLSL
//     execution model (in/out globals, built-in variables, void main)
//  3. reachability marks the declarations the entry point pulls in
//  4. extension resolution decides the #extension directives the target
//     version needs
//  5. the emitter prints the program
//
// Only the converter mutates the AST, and it runs at most once per
// program; the emitter is read-only, so generating the same program for
// several GLSL versions reuses one converted AST.
//
// # Basic Usage
//
//	var buf bytes.Buffer
//	err := glsl.Generate(
//	    glsl.ShaderInput{Program: prog, Target: ast.TargetVertexShader},
//	    glsl.ShaderOutput{Sink: &buf, Version: glsl.Version330},
//	    log,
//	)
//
// # Error Handling
//
// Malformed constructs inside an otherwise sound program are reported to
// the caller's log and generation continues, so one pass surfaces every
// problem. Generate returns an error only when the output is unusable:
// the input or sink is missing, the target or version is undefined, the
// sink failed, or recoverable errors were recorded.
//
// # Reserved Words
//
// Identifiers that collide with GLSL keywords or built-ins are renamed
// with the configured prefix before emission; references follow the
// declaration automatically.
package glsl
