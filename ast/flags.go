package ast

// Flags is a bitset of pass annotations on AST nodes. The passes write
// disjoint bits: the control-path analyzer writes the return-path flags,
// the converter writes the shader I/O and code-gen flags, the reachability
// analyzer writes FlagReachable.
type Flags uint16

const (
	// FlagReachable marks declarations transitively referenced from the
	// entry point.
	FlagReachable Flags = 1 << iota

	// FlagNestedStruct marks structures declared inside another structure.
	FlagNestedStruct

	// FlagShaderInput marks declarations lifted to shader inputs.
	FlagShaderInput

	// FlagShaderOutput marks declarations lifted to shader outputs.
	FlagShaderOutput

	// FlagEntryPoint marks the rewritten entry-point function.
	FlagEntryPoint

	// FlagNonReturnControlPath marks non-void functions with a control
	// path that misses a return statement.
	FlagNonReturnControlPath

	// FlagEndOfFunction marks return statements in tail position of the
	// function body; the emitter drops the redundant "return;" there.
	FlagEndOfFunction

	// FlagDisableCodeGen suppresses emission of the declaration.
	FlagDisableCodeGen

	// FlagReturnOutput marks converter-synthesized output variables that
	// stand in for the entry point's return value.
	FlagReturnOutput

	// FlagConverted marks an already-converted program so re-running the
	// passes is a no-op.
	FlagConverted
)

// Has reports whether all given bits are set.
func (f Flags) Has(bits Flags) bool {
	return f&bits == bits
}

// Set sets the given bits.
func (f *Flags) Set(bits Flags) {
	*f |= bits
}

// Clear clears the given bits.
func (f *Flags) Clear(bits Flags) {
	*f &^= bits
}

// FlagsOf returns a pointer to the node's flag set, or nil for node kinds
// that carry no flags.
func FlagsOf(n Node) *Flags {
	switch n := n.(type) {
	case *FunctionDecl:
		return &n.Flags
	case *StructDecl:
		return &n.Flags
	case *BufferDecl:
		return &n.Flags
	case *TextureDecl:
		return &n.Flags
	case *AliasDecl:
		return &n.Flags
	case *VarDeclStmt:
		return &n.Flags
	case *VarDecl:
		return &n.Flags
	case *ReturnStmt:
		return &n.Flags
	case *Program:
		return &n.Flags
	default:
		return nil
	}
}
