package ast

// TypeDenoter is the tagged union of resolved types.
type TypeDenoter interface {
	typeDenoter()

	// IsScalar reports whether the type is a scalar base type.
	IsScalar() bool

	// IsBase reports whether the type is a scalar, vector, or matrix.
	IsBase() bool

	// IsStruct reports whether the type is a structure.
	IsStruct() bool

	// IsVoid reports whether the type is void.
	IsVoid() bool

	// IsAlias reports whether the type is a type alias.
	IsAlias() bool

	// GetAliased resolves through alias chains to the underlying type.
	GetAliased() TypeDenoter
}

// VoidType is the void return type.
type VoidType struct{}

// BaseType is a scalar, vector, or matrix type.
type BaseType struct {
	DataType DataType
}

// ArrayType is an array of a base type with one expression per dimension.
type ArrayType struct {
	Base TypeDenoter
	Dims []Expr
}

// StructType references a structure declaration.
type StructType struct {
	Ident string
	Ref   *StructDecl
}

// TextureObjectType references a texture declaration.
type TextureObjectType struct {
	Kind TextureKind
	Ref  *TextureDecl
}

// AliasType references a type alias declaration.
type AliasType struct {
	Ident string
	Ref   *AliasDecl
}

func (*VoidType) typeDenoter()          {}
func (*BaseType) typeDenoter()          {}
func (*ArrayType) typeDenoter()         {}
func (*StructType) typeDenoter()        {}
func (*TextureObjectType) typeDenoter() {}
func (*AliasType) typeDenoter()         {}

func (*VoidType) IsScalar() bool          { return false }
func (t *BaseType) IsScalar() bool        { return t.DataType.IsScalar() }
func (*ArrayType) IsScalar() bool         { return false }
func (*StructType) IsScalar() bool        { return false }
func (*TextureObjectType) IsScalar() bool { return false }
func (*AliasType) IsScalar() bool         { return false }

func (*VoidType) IsBase() bool          { return false }
func (*BaseType) IsBase() bool          { return true }
func (*ArrayType) IsBase() bool         { return false }
func (*StructType) IsBase() bool        { return false }
func (*TextureObjectType) IsBase() bool { return false }
func (*AliasType) IsBase() bool         { return false }

func (*VoidType) IsStruct() bool          { return false }
func (*BaseType) IsStruct() bool          { return false }
func (*ArrayType) IsStruct() bool         { return false }
func (*StructType) IsStruct() bool        { return true }
func (*TextureObjectType) IsStruct() bool { return false }
func (*AliasType) IsStruct() bool         { return false }

func (*VoidType) IsVoid() bool          { return true }
func (*BaseType) IsVoid() bool          { return false }
func (*ArrayType) IsVoid() bool         { return false }
func (*StructType) IsVoid() bool        { return false }
func (*TextureObjectType) IsVoid() bool { return false }
func (*AliasType) IsVoid() bool         { return false }

func (*VoidType) IsAlias() bool          { return false }
func (*BaseType) IsAlias() bool          { return false }
func (*ArrayType) IsAlias() bool         { return false }
func (*StructType) IsAlias() bool        { return false }
func (*TextureObjectType) IsAlias() bool { return false }
func (*AliasType) IsAlias() bool         { return true }

func (t *VoidType) GetAliased() TypeDenoter          { return t }
func (t *BaseType) GetAliased() TypeDenoter          { return t }
func (t *ArrayType) GetAliased() TypeDenoter         { return t }
func (t *StructType) GetAliased() TypeDenoter        { return t }
func (t *TextureObjectType) GetAliased() TypeDenoter { return t }

// GetAliased resolves through the alias chain. A dangling alias resolves
// to itself so callers always receive a non-nil denoter.
func (t *AliasType) GetAliased() TypeDenoter {
	if t.Ref == nil || t.Ref.Type == nil {
		return t
	}
	return t.Ref.Type.GetAliased()
}

// DataType enumerates the HLSL base types: scalars, vectors, and matrices.
type DataType uint8

const (
	DataTypeUndefined DataType = iota

	// Scalars
	DataTypeBool
	DataTypeInt
	DataTypeUInt
	DataTypeHalf
	DataTypeFloat
	DataTypeDouble

	// Vectors
	DataTypeBool2
	DataTypeBool3
	DataTypeBool4
	DataTypeInt2
	DataTypeInt3
	DataTypeInt4
	DataTypeUInt2
	DataTypeUInt3
	DataTypeUInt4
	DataTypeHalf2
	DataTypeHalf3
	DataTypeHalf4
	DataTypeFloat2
	DataTypeFloat3
	DataTypeFloat4
	DataTypeDouble2
	DataTypeDouble3
	DataTypeDouble4

	// Matrices (rows x columns, HLSL order)
	DataTypeFloat2x2
	DataTypeFloat2x3
	DataTypeFloat2x4
	DataTypeFloat3x2
	DataTypeFloat3x3
	DataTypeFloat3x4
	DataTypeFloat4x2
	DataTypeFloat4x3
	DataTypeFloat4x4
	DataTypeDouble2x2
	DataTypeDouble2x3
	DataTypeDouble2x4
	DataTypeDouble3x2
	DataTypeDouble3x3
	DataTypeDouble3x4
	DataTypeDouble4x2
	DataTypeDouble4x3
	DataTypeDouble4x4
)

// IsScalar reports whether the data type is a scalar.
func (t DataType) IsScalar() bool {
	return t >= DataTypeBool && t <= DataTypeDouble
}

// IsVector reports whether the data type is a vector.
func (t DataType) IsVector() bool {
	return t >= DataTypeBool2 && t <= DataTypeDouble4
}

// IsMatrix reports whether the data type is a matrix.
func (t DataType) IsMatrix() bool {
	return t >= DataTypeFloat2x2 && t <= DataTypeDouble4x4
}

// IsIntegral reports whether the base scalar is int or uint.
func (t DataType) IsIntegral() bool {
	switch t.Base() {
	case DataTypeInt, DataTypeUInt:
		return true
	default:
		return false
	}
}

// IsDouble reports whether the base scalar is double.
func (t DataType) IsDouble() bool {
	return t.Base() == DataTypeDouble
}

// Base returns the underlying scalar type.
func (t DataType) Base() DataType {
	switch {
	case t.IsScalar():
		return t
	case t.IsVector():
		switch {
		case t <= DataTypeBool4:
			return DataTypeBool
		case t <= DataTypeInt4:
			return DataTypeInt
		case t <= DataTypeUInt4:
			return DataTypeUInt
		case t <= DataTypeHalf4:
			return DataTypeHalf
		case t <= DataTypeFloat4:
			return DataTypeFloat
		default:
			return DataTypeDouble
		}
	case t.IsMatrix():
		if t <= DataTypeFloat4x4 {
			return DataTypeFloat
		}
		return DataTypeDouble
	default:
		return DataTypeUndefined
	}
}

// VectorSize returns the component count of a vector type, 1 for scalars,
// and 0 for everything else.
func (t DataType) VectorSize() int {
	switch {
	case t.IsScalar():
		return 1
	case t.IsVector():
		return int((t-DataTypeBool2)%3) + 2
	default:
		return 0
	}
}

// MatrixDims returns the (rows, columns) of a matrix type, or (0, 0).
func (t DataType) MatrixDims() (rows, cols int) {
	if !t.IsMatrix() {
		return 0, 0
	}
	n := int(t - DataTypeFloat2x2)
	if t >= DataTypeDouble2x2 {
		n = int(t - DataTypeDouble2x2)
	}
	return n/3 + 2, n%3 + 2
}

// VectorDataType builds a vector type from a scalar base and a size.
// Size 1 returns the scalar itself.
func VectorDataType(base DataType, size int) DataType {
	if !base.IsScalar() || size < 1 || size > 4 {
		return DataTypeUndefined
	}
	if size == 1 {
		return base
	}
	var first DataType
	switch base {
	case DataTypeBool:
		first = DataTypeBool2
	case DataTypeInt:
		first = DataTypeInt2
	case DataTypeUInt:
		first = DataTypeUInt2
	case DataTypeHalf:
		first = DataTypeHalf2
	case DataTypeFloat:
		first = DataTypeFloat2
	case DataTypeDouble:
		first = DataTypeDouble2
	}
	return first + DataType(size-2)
}

// MatrixDataType builds a matrix type from a scalar base and dimensions.
// Only float and double matrices exist.
func MatrixDataType(base DataType, rows, cols int) DataType {
	if rows < 2 || rows > 4 || cols < 2 || cols > 4 {
		return DataTypeUndefined
	}
	n := DataType((rows-2)*3 + (cols - 2))
	switch base {
	case DataTypeFloat:
		return DataTypeFloat2x2 + n
	case DataTypeDouble:
		return DataTypeDouble2x2 + n
	default:
		return DataTypeUndefined
	}
}

// swizzleComponent maps a swizzle character to its component index, or -1.
func swizzleComponent(c byte) int {
	switch c {
	case 'x', 'r', 's':
		return 0
	case 'y', 'g', 't':
		return 1
	case 'z', 'b', 'p':
		return 2
	case 'w', 'a', 'q':
		return 3
	default:
		return -1
	}
}

// IsSwizzle reports whether ident is a vector swizzle pattern of one to
// four component characters.
func IsSwizzle(ident string) bool {
	if len(ident) == 0 || len(ident) > 4 {
		return false
	}
	for i := 0; i < len(ident); i++ {
		if swizzleComponent(ident[i]) < 0 {
			return false
		}
	}
	return true
}

// SubscriptDataType resolves the type of a swizzle applied to a scalar or
// vector. Scalars expose a single component, so only repeats of the first
// component are valid on them.
func SubscriptDataType(t DataType, swizzle string) (DataType, bool) {
	if !IsSwizzle(swizzle) {
		return DataTypeUndefined, false
	}
	size := t.VectorSize()
	if size == 0 {
		return DataTypeUndefined, false
	}
	for i := 0; i < len(swizzle); i++ {
		if swizzleComponent(swizzle[i]) >= size {
			return DataTypeUndefined, false
		}
	}
	return VectorDataType(t.Base(), len(swizzle)), true
}

// TextureKind enumerates HLSL texture object types.
type TextureKind uint8

const (
	Texture1D TextureKind = iota
	Texture1DArray
	Texture2D
	Texture2DArray
	Texture3D
	TextureCube
	TextureCubeArray
	Texture2DMS
	Texture2DMSArray
)

// String returns the HLSL spelling of the texture kind.
func (k TextureKind) String() string {
	switch k {
	case Texture1D:
		return "Texture1D"
	case Texture1DArray:
		return "Texture1DArray"
	case Texture2D:
		return "Texture2D"
	case Texture2DArray:
		return "Texture2DArray"
	case Texture3D:
		return "Texture3D"
	case TextureCube:
		return "TextureCube"
	case TextureCubeArray:
		return "TextureCubeArray"
	case Texture2DMS:
		return "Texture2DMS"
	case Texture2DMSArray:
		return "Texture2DMSArray"
	default:
		return "unknown"
	}
}

// IsMultisampled reports whether the kind is a multisample texture.
func (k TextureKind) IsMultisampled() bool {
	return k == Texture2DMS || k == Texture2DMSArray
}
