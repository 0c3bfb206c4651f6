package ast

// Intrinsic enumerates the HLSL intrinsic functions the front end tags on
// call expressions. IntrinsicUndefined marks ordinary function calls.
type Intrinsic uint8

const (
	IntrinsicUndefined Intrinsic = iota

	IntrinsicAbs
	IntrinsicACos
	IntrinsicAll
	IntrinsicAny
	IntrinsicASin
	IntrinsicATan
	IntrinsicATan2
	IntrinsicCeil
	IntrinsicClamp
	IntrinsicClip
	IntrinsicCos
	IntrinsicCosH
	IntrinsicCross
	IntrinsicDDX
	IntrinsicDDY
	IntrinsicDegrees
	IntrinsicDeterminant
	IntrinsicDistance
	IntrinsicDot
	IntrinsicExp
	IntrinsicExp2
	IntrinsicFloor
	IntrinsicFMod
	IntrinsicFrac
	IntrinsicGroupMemoryBarrierWithGroupSync
	IntrinsicInterlockedAdd
	IntrinsicInterlockedAnd
	IntrinsicInterlockedExchange
	IntrinsicInterlockedMax
	IntrinsicInterlockedMin
	IntrinsicInterlockedOr
	IntrinsicInterlockedXor
	IntrinsicLength
	IntrinsicLerp
	IntrinsicLog
	IntrinsicLog2
	IntrinsicMax
	IntrinsicMin
	IntrinsicMul
	IntrinsicNormalize
	IntrinsicPow
	IntrinsicRadians
	IntrinsicRcp
	IntrinsicReflect
	IntrinsicRefract
	IntrinsicRound
	IntrinsicRSqrt
	IntrinsicSampleLevel
	IntrinsicSample
	IntrinsicSaturate
	IntrinsicSign
	IntrinsicSin
	IntrinsicSinH
	IntrinsicSmoothStep
	IntrinsicSqrt
	IntrinsicStep
	IntrinsicTan
	IntrinsicTanH
	IntrinsicTranspose
)

// IsInterlocked reports whether the intrinsic is one of the Interlocked
// atomic family.
func (i Intrinsic) IsInterlocked() bool {
	return i >= IntrinsicInterlockedAdd && i <= IntrinsicInterlockedXor
}
