package ast

// VarIdent is one link of an identifier chain such as "a.b[i].c". Each
// link carries its own array indices; Next points to the member access
// that follows, if any.
type VarIdent struct {
	Pos          Pos
	Ident        string
	ArrayIndices []Expr
	Next         *VarIdent

	// Symbol back-references the declaration this link resolves to. The
	// emitter always goes through the symbol so renamed declarations emit
	// their current identifier.
	Symbol Symbol
}

// Position returns the source position of the chain link.
func (v *VarIdent) Position() Pos { return v.Pos }

// Last returns the final link of the chain.
func (v *VarIdent) Last() *VarIdent {
	for v.Next != nil {
		v = v.Next
	}
	return v
}

// FinalIdent returns the identifier to emit for this link: the referenced
// declaration's current name when a symbol is attached, otherwise the
// spelling recorded in the chain.
func (v *VarIdent) FinalIdent() string {
	if v.Symbol != nil {
		return v.Symbol.Name()
	}
	return v.Ident
}
