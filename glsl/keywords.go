// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"strconv"
	"strings"

	"github.com/gogpu/xsc/ast"
)

// glslReservedWords holds the identifiers generated GLSL must not declare:
// keywords, future reserved words, and built-in function names. Built-in
// variables are covered by the gl_ prefix rule instead of the map.
// Based on the GLSL 4.50 specification.
var glslReservedWords = map[string]struct{}{
	// Qualifiers
	"attribute": {}, "const": {}, "uniform": {}, "varying": {},
	"buffer": {}, "shared": {}, "coherent": {}, "volatile": {},
	"restrict": {}, "readonly": {}, "writeonly": {}, "layout": {},
	"centroid": {}, "flat": {}, "smooth": {}, "noperspective": {},
	"patch": {}, "sample": {}, "invariant": {}, "precise": {},
	"subroutine": {}, "in": {}, "out": {}, "inout": {},

	// Control flow
	"break": {}, "continue": {}, "do": {}, "for": {}, "while": {},
	"switch": {}, "case": {}, "default": {}, "if": {}, "else": {},
	"return": {}, "discard": {},

	// Basic, vector, and matrix types
	"void": {}, "bool": {}, "int": {}, "uint": {}, "float": {}, "double": {},
	"true": {}, "false": {}, "struct": {},
	"vec2": {}, "vec3": {}, "vec4": {},
	"ivec2": {}, "ivec3": {}, "ivec4": {},
	"uvec2": {}, "uvec3": {}, "uvec4": {},
	"bvec2": {}, "bvec3": {}, "bvec4": {},
	"dvec2": {}, "dvec3": {}, "dvec4": {},
	"mat2": {}, "mat3": {}, "mat4": {},
	"mat2x2": {}, "mat2x3": {}, "mat2x4": {},
	"mat3x2": {}, "mat3x3": {}, "mat3x4": {},
	"mat4x2": {}, "mat4x3": {}, "mat4x4": {},
	"dmat2": {}, "dmat3": {}, "dmat4": {},
	"dmat2x2": {}, "dmat2x3": {}, "dmat2x4": {},
	"dmat3x2": {}, "dmat3x3": {}, "dmat3x4": {},
	"dmat4x2": {}, "dmat4x3": {}, "dmat4x4": {},
	"atomic_uint": {},

	// Precision qualifiers
	"lowp": {}, "mediump": {}, "highp": {}, "precision": {},

	// Sampler types
	"sampler1D": {}, "sampler2D": {}, "sampler3D": {}, "samplerCube": {},
	"sampler1DShadow": {}, "sampler2DShadow": {}, "samplerCubeShadow": {},
	"sampler1DArray": {}, "sampler2DArray": {},
	"sampler1DArrayShadow": {}, "sampler2DArrayShadow": {},
	"samplerCubeArray": {}, "samplerCubeArrayShadow": {},
	"samplerBuffer": {}, "sampler2DMS": {}, "sampler2DMSArray": {},
	"sampler2DRect": {}, "sampler2DRectShadow": {}, "sampler3DRect": {},
	"isampler1D": {}, "isampler2D": {}, "isampler3D": {}, "isamplerCube": {},
	"isampler1DArray": {}, "isampler2DArray": {}, "isamplerCubeArray": {},
	"isamplerBuffer": {}, "isampler2DMS": {}, "isampler2DMSArray": {},
	"usampler1D": {}, "usampler2D": {}, "usampler3D": {}, "usamplerCube": {},
	"usampler1DArray": {}, "usampler2DArray": {}, "usamplerCubeArray": {},
	"usamplerBuffer": {}, "usampler2DMS": {}, "usampler2DMSArray": {},

	// Image types
	"image1D": {}, "image2D": {}, "image3D": {}, "imageCube": {},
	"image1DArray": {}, "image2DArray": {}, "imageCubeArray": {},
	"imageBuffer": {}, "image2DMS": {}, "image2DMSArray": {},
	"iimage1D": {}, "iimage2D": {}, "iimage3D": {}, "iimageCube": {},
	"iimage1DArray": {}, "iimage2DArray": {}, "iimageCubeArray": {},
	"iimageBuffer": {}, "iimage2DMS": {}, "iimage2DMSArray": {},
	"uimage1D": {}, "uimage2D": {}, "uimage3D": {}, "uimageCube": {},
	"uimage1DArray": {}, "uimage2DArray": {}, "uimageCubeArray": {},
	"uimageBuffer": {}, "uimage2DMS": {}, "uimage2DMSArray": {},

	// Reserved for future use
	"common": {}, "partition": {}, "active": {}, "asm": {}, "class": {},
	"union": {}, "enum": {}, "typedef": {}, "template": {}, "this": {},
	"resource": {}, "goto": {}, "inline": {}, "noinline": {}, "public": {},
	"static": {}, "extern": {}, "external": {}, "interface": {},
	"long": {}, "short": {}, "half": {}, "fixed": {}, "unsigned": {},
	"superp": {}, "input": {}, "output": {}, "filter": {}, "sizeof": {},
	"cast": {}, "namespace": {}, "using": {},
	"hvec2": {}, "hvec3": {}, "hvec4": {},
	"fvec2": {}, "fvec3": {}, "fvec4": {},

	// Built-in functions
	"main":    {},
	"radians": {}, "degrees": {}, "sin": {}, "cos": {}, "tan": {},
	"asin": {}, "acos": {}, "atan": {}, "sinh": {}, "cosh": {}, "tanh": {},
	"asinh": {}, "acosh": {}, "atanh": {},
	"pow": {}, "exp": {}, "log": {}, "exp2": {}, "log2": {},
	"sqrt": {}, "inversesqrt": {},
	"abs": {}, "sign": {}, "floor": {}, "trunc": {}, "round": {},
	"roundEven": {}, "ceil": {}, "fract": {}, "mod": {}, "modf": {},
	"min": {}, "max": {}, "clamp": {}, "mix": {}, "step": {},
	"smoothstep": {}, "isnan": {}, "isinf": {},
	"floatBitsToInt": {}, "floatBitsToUint": {},
	"intBitsToFloat": {}, "uintBitsToFloat": {},
	"fma": {}, "frexp": {}, "ldexp": {},
	"packUnorm2x16": {}, "packSnorm2x16": {}, "packUnorm4x8": {}, "packSnorm4x8": {},
	"unpackUnorm2x16": {}, "unpackSnorm2x16": {}, "unpackUnorm4x8": {}, "unpackSnorm4x8": {},
	"packHalf2x16": {}, "unpackHalf2x16": {},
	"length": {}, "distance": {}, "dot": {}, "cross": {},
	"normalize": {}, "faceforward": {}, "reflect": {}, "refract": {},
	"matrixCompMult": {}, "outerProduct": {}, "transpose": {},
	"determinant": {}, "inverse": {},
	"lessThan": {}, "lessThanEqual": {}, "greaterThan": {},
	"greaterThanEqual": {}, "equal": {}, "notEqual": {},
	"any": {}, "all": {}, "not": {},
	"bitfieldExtract": {}, "bitfieldInsert": {}, "bitfieldReverse": {},
	"bitCount": {}, "findLSB": {}, "findMSB": {},
	"texture": {}, "textureProj": {}, "textureLod": {}, "textureOffset": {},
	"textureSize": {}, "texelFetch": {}, "texelFetchOffset": {},
	"textureGrad": {}, "textureGather": {},
	"dFdx": {}, "dFdy": {}, "fwidth": {},
	"barrier": {}, "memoryBarrier": {}, "memoryBarrierBuffer": {},
	"memoryBarrierShared": {}, "memoryBarrierImage": {},
	"groupMemoryBarrier": {},
	"imageLoad": {}, "imageStore": {}, "imageSize": {},
	"atomicAdd": {}, "atomicMin": {}, "atomicMax": {}, "atomicAnd": {},
	"atomicOr": {}, "atomicXor": {}, "atomicExchange": {}, "atomicCompSwap": {},
	"noise1": {}, "noise2": {}, "noise3": {}, "noise4": {},
	"EmitVertex": {}, "EndPrimitive": {},
}

// isReservedWord reports whether declaring ident in GLSL would collide
// with a keyword or built-in. Every gl_ prefix is reserved outright.
func isReservedWord(ident string) bool {
	if strings.HasPrefix(ident, "gl_") {
		return true
	}
	_, ok := glslReservedWords[ident]
	return ok
}

// dataTypeKeywords maps HLSL base types to their GLSL spellings. Half
// types share the float spellings; desktop GLSL has no half precision.
// Matrices keep the HLSL rows-by-columns order.
var dataTypeKeywords = map[ast.DataType]string{
	ast.DataTypeBool:   "bool",
	ast.DataTypeInt:    "int",
	ast.DataTypeUInt:   "uint",
	ast.DataTypeHalf:   "float",
	ast.DataTypeFloat:  "float",
	ast.DataTypeDouble: "double",

	ast.DataTypeBool2:   "bvec2",
	ast.DataTypeBool3:   "bvec3",
	ast.DataTypeBool4:   "bvec4",
	ast.DataTypeInt2:    "ivec2",
	ast.DataTypeInt3:    "ivec3",
	ast.DataTypeInt4:    "ivec4",
	ast.DataTypeUInt2:   "uvec2",
	ast.DataTypeUInt3:   "uvec3",
	ast.DataTypeUInt4:   "uvec4",
	ast.DataTypeHalf2:   "vec2",
	ast.DataTypeHalf3:   "vec3",
	ast.DataTypeHalf4:   "vec4",
	ast.DataTypeFloat2:  "vec2",
	ast.DataTypeFloat3:  "vec3",
	ast.DataTypeFloat4:  "vec4",
	ast.DataTypeDouble2: "dvec2",
	ast.DataTypeDouble3: "dvec3",
	ast.DataTypeDouble4: "dvec4",

	ast.DataTypeFloat2x2:  "mat2",
	ast.DataTypeFloat2x3:  "mat2x3",
	ast.DataTypeFloat2x4:  "mat2x4",
	ast.DataTypeFloat3x2:  "mat3x2",
	ast.DataTypeFloat3x3:  "mat3",
	ast.DataTypeFloat3x4:  "mat3x4",
	ast.DataTypeFloat4x2:  "mat4x2",
	ast.DataTypeFloat4x3:  "mat4x3",
	ast.DataTypeFloat4x4:  "mat4",
	ast.DataTypeDouble2x2: "dmat2",
	ast.DataTypeDouble2x3: "dmat2x3",
	ast.DataTypeDouble2x4: "dmat2x4",
	ast.DataTypeDouble3x2: "dmat3x2",
	ast.DataTypeDouble3x3: "dmat3",
	ast.DataTypeDouble3x4: "dmat3x4",
	ast.DataTypeDouble4x2: "dmat4x2",
	ast.DataTypeDouble4x3: "dmat4x3",
	ast.DataTypeDouble4x4: "dmat4",
}

// doubleDemotions maps double-precision types to the single-precision
// fallbacks emitted before GLSL 4.00 introduced fp64.
var doubleDemotions = map[ast.DataType]ast.DataType{
	ast.DataTypeDouble:    ast.DataTypeFloat,
	ast.DataTypeDouble2:   ast.DataTypeFloat2,
	ast.DataTypeDouble3:   ast.DataTypeFloat3,
	ast.DataTypeDouble4:   ast.DataTypeFloat4,
	ast.DataTypeDouble2x2: ast.DataTypeFloat2x2,
	ast.DataTypeDouble2x3: ast.DataTypeFloat2x3,
	ast.DataTypeDouble2x4: ast.DataTypeFloat2x4,
	ast.DataTypeDouble3x2: ast.DataTypeFloat3x2,
	ast.DataTypeDouble3x3: ast.DataTypeFloat3x3,
	ast.DataTypeDouble3x4: ast.DataTypeFloat3x4,
	ast.DataTypeDouble4x2: ast.DataTypeFloat4x2,
	ast.DataTypeDouble4x3: ast.DataTypeFloat4x3,
	ast.DataTypeDouble4x4: ast.DataTypeFloat4x4,
}

// dataTypeKeyword returns the GLSL spelling of a base type for the target
// version.
func dataTypeKeyword(t ast.DataType, v Version) string {
	if !v.AtLeast(Version400) {
		if demoted, ok := doubleDemotions[t]; ok {
			t = demoted
		}
	}
	if kw, ok := dataTypeKeywords[t]; ok {
		return kw
	}
	return "float"
}

// samplerKeywords maps HLSL texture kinds to GLSL sampler types.
var samplerKeywords = map[ast.TextureKind]string{
	ast.Texture1D:        "sampler1D",
	ast.Texture1DArray:   "sampler1DArray",
	ast.Texture2D:        "sampler2D",
	ast.Texture2DArray:   "sampler2DArray",
	ast.Texture3D:        "sampler3D",
	ast.TextureCube:      "samplerCube",
	ast.TextureCubeArray: "samplerCubeArray",
	ast.Texture2DMS:      "sampler2DMS",
	ast.Texture2DMSArray: "sampler2DMSArray",
}

// samplerKeyword returns the GLSL sampler type for a texture kind.
func samplerKeyword(k ast.TextureKind) string {
	if kw, ok := samplerKeywords[k]; ok {
		return kw
	}
	return "sampler2D"
}

// storageKeyword maps an HLSL storage class to its GLSL qualifier. The
// bool is false for classes GLSL expresses implicitly; those are dropped
// from the output.
func storageKeyword(s ast.StorageClass) (string, bool) {
	switch s {
	case ast.StorageGroupShared:
		return "shared", true
	case ast.StorageUniform:
		return "uniform", true
	case ast.StoragePrecise:
		return "precise", true
	default:
		return "", false
	}
}

// builtinFromSemantic maps a system-value semantic to its GLSL built-in
// variable for the given stage and direction. The second result is false
// when no built-in exists there; such variables go through the ordinary
// in/out path instead.
func builtinFromSemantic(sem ast.Semantic, target ast.ShaderTarget, input bool, v Version) (string, bool) {
	switch sem.Value {
	case ast.SVPosition:
		if input && target == ast.TargetFragmentShader {
			return "gl_FragCoord", true
		}
		if !input && target != ast.TargetFragmentShader {
			return "gl_Position", true
		}
	case ast.SVDepth:
		if !input && target == ast.TargetFragmentShader {
			return "gl_FragDepth", true
		}
	case ast.SVTarget:
		// GLSL 1.30 deprecated gl_FragColor; later versions declare an
		// explicit out variable instead.
		if !input && target == ast.TargetFragmentShader && !v.AtLeast(Version130) {
			if sem.Index > 0 {
				return "gl_FragData[" + strconv.Itoa(sem.Index) + "]", true
			}
			return "gl_FragColor", true
		}
	case ast.SVVertexID:
		if input && target == ast.TargetVertexShader {
			return "gl_VertexID", true
		}
	case ast.SVInstanceID:
		if input && target == ast.TargetVertexShader {
			return "gl_InstanceID", true
		}
	case ast.SVIsFrontFace:
		if input && target == ast.TargetFragmentShader {
			return "gl_FrontFacing", true
		}
	case ast.SVSampleIndex:
		if input && target == ast.TargetFragmentShader {
			return "gl_SampleID", true
		}
	case ast.SVPrimitiveID:
		if input && target == ast.TargetFragmentShader {
			return "gl_PrimitiveID", true
		}
	case ast.SVDispatchThreadID:
		if input && target == ast.TargetComputeShader {
			return "gl_GlobalInvocationID", true
		}
	case ast.SVGroupID:
		if input && target == ast.TargetComputeShader {
			return "gl_WorkGroupID", true
		}
	case ast.SVGroupThreadID:
		if input && target == ast.TargetComputeShader {
			return "gl_LocalInvocationID", true
		}
	case ast.SVGroupIndex:
		if input && target == ast.TargetComputeShader {
			return "gl_LocalInvocationIndex", true
		}
	case ast.SVClipDistance:
		return "gl_ClipDistance[" + strconv.Itoa(sem.Index) + "]", true
	case ast.SVCullDistance:
		if v.AtLeast(Version450) {
			return "gl_CullDistance[" + strconv.Itoa(sem.Index) + "]", true
		}
	case ast.SVUndefined:
	}
	return "", false
}
