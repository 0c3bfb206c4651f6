package ast

import "strconv"

// Pos identifies a location in the original HLSL source.
// Row and Col are 1-based; the zero value means "no position".
type Pos struct {
	Row int
	Col int
}

// IsValid reports whether the position refers to a real source location.
func (p Pos) IsValid() bool {
	return p.Row > 0
}

// String returns the position as "row:col".
func (p Pos) String() string {
	if !p.IsValid() {
		return "?"
	}
	return strconv.Itoa(p.Row) + ":" + strconv.Itoa(p.Col)
}

// Node is implemented by every AST node.
type Node interface {
	Position() Pos
}

// Symbol is implemented by every declaration object an identifier can
// resolve to. Name returns the current identifier, which may differ from
// the source spelling after the converter has renamed the declaration.
type Symbol interface {
	Node
	Name() string
}

// Program is the root node of a semantically-analyzed shader.
type Program struct {
	// Decls holds the global declarations in source order.
	Decls []Decl

	// EntryPointRef references the entry-point function inside Decls.
	EntryPointRef *FunctionDecl

	// UsedIntrinsics collects the intrinsics referenced anywhere in the
	// program. The front end fills it during semantic analysis.
	UsedIntrinsics map[Intrinsic]struct{}

	// SM3ScreenSpace marks shader-model-3 screen-space semantics; the
	// fragment prologue then pins gl_FragCoord to integer pixel centers.
	SM3ScreenSpace bool

	// Flags carries program-wide pass annotations.
	Flags Flags
}

// Position returns the zero position; a program spans the whole source.
func (p *Program) Position() Pos { return Pos{} }

// UsesIntrinsic reports whether the program references the intrinsic.
func (p *Program) UsesIntrinsic(in Intrinsic) bool {
	_, ok := p.UsedIntrinsics[in]
	return ok
}

// MarkIntrinsic records a referenced intrinsic.
func (p *Program) MarkIntrinsic(in Intrinsic) {
	if p.UsedIntrinsics == nil {
		p.UsedIntrinsics = make(map[Intrinsic]struct{})
	}
	p.UsedIntrinsics[in] = struct{}{}
}

// Decl is the tagged union of global declarations.
type Decl interface {
	Node
	declNode()
}

// FunctionDecl declares a function, or forward-declares one when Body is nil.
type FunctionDecl struct {
	Pos        Pos
	Flags      Flags
	ReturnType TypeDenoter
	Ident      string
	Semantic   Semantic
	Params     []*VarDeclStmt
	Attribs    []*Attribute
	Body       *CodeBlock

	// InputSemantics and OutputSemantics are the entry-point I/O buckets,
	// filled by the converter: user-defined semantics become in/out
	// globals, system values map to GLSL built-ins.
	InputSemantics  SemanticIO
	OutputSemantics SemanticIO
}

// SemanticIO partitions entry-point I/O variables by semantic kind.
type SemanticIO struct {
	// VarDeclRefs holds variables with user-defined semantics.
	VarDeclRefs []*VarDecl

	// VarDeclRefsSV holds variables whose system-value semantics map to
	// GLSL built-ins for the current target.
	VarDeclRefsSV []*VarDecl
}

// StructDecl declares a structure.
type StructDecl struct {
	Pos   Pos
	Flags Flags
	Ident string

	// AliasName is the interface-block instance name when the structure
	// is emitted as an in/out block.
	AliasName string

	// BaseStructRef references the inherited base structure, if any.
	BaseStructRef *StructDecl

	Members []*VarDeclStmt

	// NestedStructs holds structures declared inside this one; they must
	// be emitted before their parent, child to parent.
	NestedStructs []*StructDecl
}

// BufferDecl declares a constant buffer (HLSL cbuffer).
type BufferDecl struct {
	Pos       Pos
	Flags     Flags
	Ident     string
	Registers []Register
	Members   []*VarDeclStmt
}

// TextureDecl declares a texture object.
type TextureDecl struct {
	Pos       Pos
	Flags     Flags
	Texture   TextureKind
	Ident     string
	Registers []Register
}

// AliasDecl declares a type alias (HLSL typedef).
type AliasDecl struct {
	Pos   Pos
	Flags Flags
	Ident string
	Type  TypeDenoter
}

// VarDeclStmt declares one or more variables of a common type. It appears
// both as a global declaration and as a statement; function parameters are
// VarDeclStmts with a single variable.
type VarDeclStmt struct {
	Pos      Pos
	Flags    Flags
	Storages []StorageClass
	IsConst  bool

	// IsOutput marks an out/inout function parameter.
	IsOutput bool

	Type TypeDenoter
	Vars []*VarDecl
}

// VarDecl declares a single variable within a VarDeclStmt.
type VarDecl struct {
	Pos       Pos
	Flags     Flags
	Ident     string
	ArrayDims []Expr
	Semantic  Semantic
	Init      Expr

	// DeclStmtRef points back to the owning declaration statement.
	DeclStmtRef *VarDeclStmt

	// BufferDeclRef points back to the owning constant buffer, if the
	// variable is a cbuffer member.
	BufferDeclRef *BufferDecl

	// MemberRef references the structure member a converter-synthesized
	// entry-point output stands in for, so the emitter can assign the
	// matching member of a returned structure value.
	MemberRef *VarDecl
}

// StorageClass enumerates HLSL storage-class keywords.
type StorageClass uint8

const (
	// StorageStatic is the HLSL static storage class.
	StorageStatic StorageClass = iota

	// StorageGroupShared is compute workgroup storage.
	StorageGroupShared

	// StorageUniform marks uniform storage.
	StorageUniform

	// StorageVolatile marks volatile storage.
	StorageVolatile

	// StoragePrecise requests precise arithmetic.
	StoragePrecise
)

// String returns the HLSL spelling of the storage class.
func (s StorageClass) String() string {
	switch s {
	case StorageStatic:
		return "static"
	case StorageGroupShared:
		return "groupshared"
	case StorageUniform:
		return "uniform"
	case StorageVolatile:
		return "volatile"
	case StoragePrecise:
		return "precise"
	default:
		return "unknown"
	}
}

// AttributeKind enumerates entry-point attributes.
type AttributeKind uint8

const (
	// AttrNumThreads is [numthreads(x, y, z)] on compute entry points.
	AttrNumThreads AttributeKind = iota

	// AttrEarlyDepthStencil is [earlydepthstencil] on fragment entry points.
	AttrEarlyDepthStencil
)

// Attribute is an HLSL attribute attached to a function declaration.
type Attribute struct {
	Pos  Pos
	Kind AttributeKind
	Args []Expr
}

// FindAttribute returns the first attribute of the given kind, or nil.
func FindAttribute(attribs []*Attribute, kind AttributeKind) *Attribute {
	for _, a := range attribs {
		if a.Kind == kind {
			return a
		}
	}
	return nil
}

func (*FunctionDecl) declNode() {}
func (*StructDecl) declNode()   {}
func (*BufferDecl) declNode()   {}
func (*TextureDecl) declNode()  {}
func (*AliasDecl) declNode()    {}
func (*VarDeclStmt) declNode()  {}

func (d *FunctionDecl) Position() Pos { return d.Pos }
func (d *StructDecl) Position() Pos   { return d.Pos }
func (d *BufferDecl) Position() Pos   { return d.Pos }
func (d *TextureDecl) Position() Pos  { return d.Pos }
func (d *AliasDecl) Position() Pos    { return d.Pos }
func (d *VarDeclStmt) Position() Pos  { return d.Pos }
func (d *VarDecl) Position() Pos      { return d.Pos }
func (a *Attribute) Position() Pos    { return a.Pos }

// Name returns the function identifier.
func (d *FunctionDecl) Name() string { return d.Ident }

// Name returns the structure identifier.
func (d *StructDecl) Name() string { return d.Ident }

// Name returns the buffer identifier.
func (d *BufferDecl) Name() string { return d.Ident }

// Name returns the texture identifier.
func (d *TextureDecl) Name() string { return d.Ident }

// Name returns the alias identifier.
func (d *AliasDecl) Name() string { return d.Ident }

// Name returns the variable identifier.
func (d *VarDecl) Name() string { return d.Ident }
