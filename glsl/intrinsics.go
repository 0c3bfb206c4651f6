// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import "github.com/gogpu/xsc/ast"

// intrinsicKeywords maps HLSL intrinsics to GLSL functions that share
// their call shape, so the emitter only has to swap the callee name.
// Intrinsics absent here need bespoke emission: mul and rcp become
// operator forms, saturate is rewritten by the converter, clip calls a
// generated helper, the Interlocked family maps through atomicKeywords,
// and Sample/SampleLevel fold the texture object into the argument list.
var intrinsicKeywords = map[ast.Intrinsic]string{
	ast.IntrinsicAbs:         "abs",
	ast.IntrinsicACos:        "acos",
	ast.IntrinsicAll:         "all",
	ast.IntrinsicAny:         "any",
	ast.IntrinsicASin:        "asin",
	ast.IntrinsicATan:        "atan",
	ast.IntrinsicATan2:       "atan",
	ast.IntrinsicCeil:        "ceil",
	ast.IntrinsicClamp:       "clamp",
	ast.IntrinsicClip:        "clip",
	ast.IntrinsicCos:         "cos",
	ast.IntrinsicCosH:        "cosh",
	ast.IntrinsicCross:       "cross",
	ast.IntrinsicDDX:         "dFdx",
	ast.IntrinsicDDY:         "dFdy",
	ast.IntrinsicDegrees:     "degrees",
	ast.IntrinsicDeterminant: "determinant",
	ast.IntrinsicDistance:    "distance",
	ast.IntrinsicDot:         "dot",
	ast.IntrinsicExp:         "exp",
	ast.IntrinsicExp2:        "exp2",
	ast.IntrinsicFloor:       "floor",
	ast.IntrinsicFMod:        "mod",
	ast.IntrinsicFrac:        "fract",

	ast.IntrinsicGroupMemoryBarrierWithGroupSync: "barrier",

	ast.IntrinsicLength:     "length",
	ast.IntrinsicLerp:       "mix",
	ast.IntrinsicLog:        "log",
	ast.IntrinsicLog2:       "log2",
	ast.IntrinsicMax:        "max",
	ast.IntrinsicMin:        "min",
	ast.IntrinsicNormalize:  "normalize",
	ast.IntrinsicPow:        "pow",
	ast.IntrinsicRadians:    "radians",
	ast.IntrinsicReflect:    "reflect",
	ast.IntrinsicRefract:    "refract",
	ast.IntrinsicRound:      "round",
	ast.IntrinsicRSqrt:      "inversesqrt",
	ast.IntrinsicSign:       "sign",
	ast.IntrinsicSin:        "sin",
	ast.IntrinsicSinH:       "sinh",
	ast.IntrinsicSmoothStep: "smoothstep",
	ast.IntrinsicSqrt:       "sqrt",
	ast.IntrinsicStep:       "step",
	ast.IntrinsicTan:        "tan",
	ast.IntrinsicTanH:       "tanh",
	ast.IntrinsicTranspose:  "transpose",
}

// atomicKeywords maps the Interlocked family to GLSL atomic functions.
var atomicKeywords = map[ast.Intrinsic]string{
	ast.IntrinsicInterlockedAdd:      "atomicAdd",
	ast.IntrinsicInterlockedAnd:      "atomicAnd",
	ast.IntrinsicInterlockedExchange: "atomicExchange",
	ast.IntrinsicInterlockedMax:      "atomicMax",
	ast.IntrinsicInterlockedMin:      "atomicMin",
	ast.IntrinsicInterlockedOr:       "atomicOr",
	ast.IntrinsicInterlockedXor:      "atomicXor",
}

// clipHelpers are the clip() overloads written into the preamble when the
// program references the HLSL clip intrinsic. GLSL has no equivalent; the
// scalar form tests the sign directly and the vector forms discard when
// any lane is negative.
var clipHelpers = [4]string{
	"void clip(float x) { if (x < 0.0) discard; }",
	"void clip(vec2 x) { if (any(lessThan(x, vec2(0.0)))) discard; }",
	"void clip(vec3 x) { if (any(lessThan(x, vec3(0.0)))) discard; }",
	"void clip(vec4 x) { if (any(lessThan(x, vec4(0.0)))) discard; }",
}
