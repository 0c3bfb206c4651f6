package ast

// ShaderTarget identifies the shader stage being generated.
type ShaderTarget uint8

const (
	TargetUndefined ShaderTarget = iota
	TargetVertexShader
	TargetFragmentShader
	TargetGeometryShader
	TargetTessControlShader
	TargetTessEvaluationShader
	TargetComputeShader
)

// String returns the human-readable stage name.
func (t ShaderTarget) String() string {
	switch t {
	case TargetVertexShader:
		return "vertex"
	case TargetFragmentShader:
		return "fragment"
	case TargetGeometryShader:
		return "geometry"
	case TargetTessControlShader:
		return "tessellation control"
	case TargetTessEvaluationShader:
		return "tessellation evaluation"
	case TargetComputeShader:
		return "compute"
	default:
		return "undefined"
	}
}
