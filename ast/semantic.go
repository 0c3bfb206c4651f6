package ast

import (
	"strconv"
	"strings"
)

// SystemValue enumerates the HLSL SV_* system-value semantics.
type SystemValue uint8

const (
	SVUndefined SystemValue = iota
	SVClipDistance
	SVCullDistance
	SVDepth
	SVDispatchThreadID
	SVGroupID
	SVGroupIndex
	SVGroupThreadID
	SVInstanceID
	SVIsFrontFace
	SVPosition
	SVPrimitiveID
	SVSampleIndex
	SVTarget
	SVVertexID
)

// systemValues maps the upper-cased semantic name to its system value.
var systemValues = map[string]SystemValue{
	"SV_CLIPDISTANCE":     SVClipDistance,
	"SV_CULLDISTANCE":     SVCullDistance,
	"SV_DEPTH":            SVDepth,
	"SV_DISPATCHTHREADID": SVDispatchThreadID,
	"SV_GROUPID":          SVGroupID,
	"SV_GROUPINDEX":       SVGroupIndex,
	"SV_GROUPTHREADID":    SVGroupThreadID,
	"SV_INSTANCEID":       SVInstanceID,
	"SV_ISFRONTFACE":      SVIsFrontFace,
	"SV_POSITION":         SVPosition,
	"SV_PRIMITIVEID":      SVPrimitiveID,
	"SV_SAMPLEINDEX":      SVSampleIndex,
	"SV_TARGET":           SVTarget,
	"SV_VERTEXID":         SVVertexID,
}

// Semantic is an HLSL semantic annotation on a parameter, return value, or
// structure member. Name keeps the source spelling without the trailing
// index; semantics are case-insensitive in HLSL.
type Semantic struct {
	Name  string
	Value SystemValue
	Index int
}

// ParseSemantic splits a semantic spelling such as "TEXCOORD3" or
// "SV_Target1" into its name, optional system value, and index.
func ParseSemantic(s string) Semantic {
	name := s
	index := 0
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	if i < len(s) && i > 0 {
		name = s[:i]
		for _, c := range s[i:] {
			index = index*10 + int(c-'0')
		}
	}
	return Semantic{
		Name:  name,
		Value: systemValues[strings.ToUpper(name)],
		Index: index,
	}
}

// IsValid reports whether a semantic is present at all.
func (s Semantic) IsValid() bool {
	return s.Name != ""
}

// IsSystemValue reports whether the semantic is an SV_* system value.
func (s Semantic) IsSystemValue() bool {
	return s.Value != SVUndefined
}

// String returns the semantic spelling including a non-zero index.
func (s Semantic) String() string {
	if s.Index > 0 {
		return s.Name + strconv.Itoa(s.Index)
	}
	return s.Name
}
