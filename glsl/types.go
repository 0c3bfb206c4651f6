// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import "github.com/gogpu/xsc/ast"

// typeKeyword returns the GLSL spelling for a type denoter. Array types
// yield their element spelling; the declaration emitters append the
// bracketed dimensions after the identifier.
func (g *generator) typeKeyword(t ast.TypeDenoter, pos ast.Pos) string {
	switch dt := t.(type) {
	case *ast.VoidType:
		return "void"
	case *ast.BaseType:
		return dataTypeKeyword(dt.DataType, g.version)
	case *ast.StructType:
		if dt.Ref != nil {
			return dt.Ref.Ident
		}
		return dt.Ident
	case *ast.TextureObjectType:
		return samplerKeyword(dt.Kind)
	case *ast.AliasType:
		if dt.Ref != nil {
			return g.typeKeyword(dt.Ref.Type, pos)
		}
		return dt.Ident
	case *ast.ArrayType:
		return g.typeKeyword(dt.Base, pos)
	case nil:
		g.rep.Errorf(pos, "missing type denoter")
		return "void"
	default:
		g.rep.Errorf(pos, "unsupported type denoter")
		return "void"
	}
}

// typeArrayDims returns the dimensions when the denoter is an array type,
// looking through aliases.
func typeArrayDims(t ast.TypeDenoter) []ast.Expr {
	if t == nil {
		return nil
	}
	if at, ok := t.GetAliased().(*ast.ArrayType); ok {
		return at.Dims
	}
	return nil
}

// baseTypeOf resolves a type denoter to its base data type, looking
// through aliases. Non-base types yield DataTypeUndefined.
func baseTypeOf(t ast.TypeDenoter) ast.DataType {
	if t == nil {
		return ast.DataTypeUndefined
	}
	if bt, ok := t.GetAliased().(*ast.BaseType); ok {
		return bt.DataType
	}
	return ast.DataTypeUndefined
}

// indexedDataType peels one subscript off a base type: matrices yield
// their row vector, vectors their scalar.
func indexedDataType(t ast.DataType) ast.DataType {
	switch {
	case t.IsMatrix():
		_, cols := t.MatrixDims()
		return ast.VectorDataType(t.Base(), cols)
	case t.IsVector():
		return t.Base()
	default:
		return ast.DataTypeUndefined
	}
}

// varDataType resolves the base data type of a variable access after n
// subscripts, or DataTypeUndefined when the result is not scalar, vector,
// or matrix. Dimensions attached to the declarator and to the declared
// type both count as array subscripts.
func varDataType(v *ast.VarDecl, n int) ast.DataType {
	if v.DeclStmtRef == nil || v.DeclStmtRef.Type == nil {
		return ast.DataTypeUndefined
	}
	dims := len(v.ArrayDims)
	t := v.DeclStmtRef.Type.GetAliased()
	if arr, ok := t.(*ast.ArrayType); ok {
		dims += len(arr.Dims)
		t = arr.Base.GetAliased()
	}
	if n < dims {
		return ast.DataTypeUndefined
	}
	n -= dims

	dt := ast.DataTypeUndefined
	if bt, ok := t.(*ast.BaseType); ok {
		dt = bt.DataType
	}
	for ; n > 0 && dt != ast.DataTypeUndefined; n-- {
		dt = indexedDataType(dt)
	}
	return dt
}
