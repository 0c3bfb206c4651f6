// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"strings"

	"github.com/gogpu/xsc/ast"
)

// ==================== Expressions ====================

// expr renders an expression as GLSL text. Problems are reported through
// the reporter and a best-effort spelling is returned, so one bad
// expression never hides the rest of the output.
func (g *generator) expr(e ast.Expr) string {
	switch x := e.(type) {
	case *ast.LiteralExpr:
		return x.Value
	case *ast.VarAccessExpr:
		return g.varAccessExpr(x)
	case *ast.BinaryExpr:
		return g.expr(x.Lhs) + " " + x.Op.String() + " " + g.expr(x.Rhs)
	case *ast.UnaryExpr:
		return g.unaryExpr(x)
	case *ast.PostUnaryExpr:
		return g.expr(x.Expr) + x.Op.String()
	case *ast.TernaryExpr:
		return g.expr(x.Cond) + " ? " + g.expr(x.Then) + " : " + g.expr(x.Else)
	case *ast.ListExpr:
		return g.argList(x.Exprs)
	case *ast.BracketExpr:
		return "(" + g.expr(x.Expr) + ")"
	case *ast.CastExpr:
		return g.typeKeyword(x.To, x.Pos) + "(" + g.expr(x.Expr) + ")"
	case *ast.ArrayAccessExpr:
		s := g.expr(x.Expr)
		for _, idx := range x.Indices {
			s += "[" + g.expr(idx) + "]"
		}
		return s
	case *ast.SuffixExpr:
		return g.suffixChain(g.expr(x.Expr), baseTypeOf(x.Expr.ResolvedType()), x.Ident)
	case *ast.InitializerExpr:
		return "{ " + g.argList(x.Exprs) + " }"
	case *ast.CallExpr:
		return g.callExpr(x)
	case nil:
		return ""
	default:
		g.rep.Errorf(e.Position(), "cannot emit expression")
		return ""
	}
}

func (g *generator) varAccessExpr(x *ast.VarAccessExpr) string {
	s := g.identChain(x.Ident)
	if x.Assign != nil {
		s += " " + x.AssignOp.String() + " " + g.expr(x.Assign)
	}
	return s
}

func (g *generator) unaryExpr(x *ast.UnaryExpr) string {
	s := g.expr(x.Expr)
	// "- -x" must not fuse into a decrement token
	if _, nested := x.Expr.(*ast.UnaryExpr); nested {
		return x.Op.String() + "(" + s + ")"
	}
	return x.Op.String() + s
}

func (g *generator) argList(args []ast.Expr) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = g.expr(a)
	}
	return strings.Join(parts, ", ")
}

// ==================== Identifier chains ====================

// identChain renders an identifier chain. Links with a resolved symbol
// emit the declaration's current name, so converter renames propagate to
// every access without touching the chains themselves.
func (g *generator) identChain(id *ast.VarIdent) string {
	if id == nil {
		return ""
	}
	acc := id.FinalIdent()
	t := ast.DataTypeUndefined
	if v, ok := id.Symbol.(*ast.VarDecl); ok {
		t = varDataType(v, len(id.ArrayIndices))
	}
	for _, idx := range id.ArrayIndices {
		acc += "[" + g.expr(idx) + "]"
	}
	return g.suffixChain(acc, t, id.Next)
}

// suffixChain appends the remaining chain links to an already rendered
// prefix, tracking the value's data type along the way. Swizzles on
// scalars have no GLSL spelling: a width-one swizzle repeats the lone
// component and is dropped, and a wider one becomes a vector constructor
// around the prefix.
func (g *generator) suffixChain(acc string, t ast.DataType, n *ast.VarIdent) string {
	for ; n != nil; n = n.Next {
		peeled := false
		switch {
		case n.Symbol != nil:
			acc += "." + n.Symbol.Name()
			if v, ok := n.Symbol.(*ast.VarDecl); ok {
				t = varDataType(v, len(n.ArrayIndices))
			} else {
				t = ast.DataTypeUndefined
			}
			peeled = true
		case ast.IsSwizzle(n.Ident) && t.IsScalar():
			if w := len(n.Ident); w > 1 {
				t = ast.VectorDataType(t, w)
				acc = dataTypeKeyword(t, g.version) + "(" + acc + ")"
			}
		case ast.IsSwizzle(n.Ident) && t.IsVector():
			acc += "." + n.Ident
			sub, ok := ast.SubscriptDataType(t, n.Ident)
			if !ok {
				g.rep.Errorf(n.Pos, "invalid swizzle '%s'", n.Ident)
			}
			t = sub
		default:
			if !ast.IsSwizzle(n.Ident) {
				g.rep.Errorf(n.Pos, "unresolved member '%s'", n.Ident)
			}
			acc += "." + n.Ident
			t = ast.DataTypeUndefined
		}
		for _, idx := range n.ArrayIndices {
			acc += "[" + g.expr(idx) + "]"
			if !peeled {
				t = indexedDataType(t)
			}
		}
	}
	return acc
}

// ==================== Calls ====================

// callExpr renders a function or intrinsic call.
func (g *generator) callExpr(x *ast.CallExpr) string {
	if x.IsIntrinsic() {
		return g.intrinsicCall(x)
	}
	name := ""
	if x.FuncDeclRef != nil {
		name = x.FuncDeclRef.Ident
	} else if x.Ident != nil {
		name = g.identChain(x.Ident)
	}
	if name == "" {
		g.rep.Errorf(x.Pos, "call has no resolvable callee")
	}
	return name + "(" + g.argList(x.Args) + ")"
}

func (g *generator) intrinsicCall(x *ast.CallExpr) string {
	switch x.Intrinsic {
	case ast.IntrinsicMul:
		return g.mulCall(x)
	case ast.IntrinsicRcp:
		return g.rcpCall(x)
	case ast.IntrinsicSample, ast.IntrinsicSampleLevel:
		return g.sampleCall(x)
	}
	if kw, ok := atomicKeywords[x.Intrinsic]; ok {
		return g.atomicCall(x, kw)
	}
	kw, ok := intrinsicKeywords[x.Intrinsic]
	if !ok {
		name := intrinsicSpelling(x)
		g.rep.Errorf(x.Pos, "intrinsic '%s' cannot be mapped to GLSL", name)
		return name + "(" + g.argList(x.Args) + ")"
	}
	return kw + "(" + g.argList(x.Args) + ")"
}

// mulCall lowers mul(a, b) to the * operator, which spells the same
// linear-algebra product in GLSL for matrix and vector operands.
func (g *generator) mulCall(x *ast.CallExpr) string {
	if len(x.Args) != 2 {
		g.rep.Errorf(x.Pos, "mul expects 2 arguments, got %d", len(x.Args))
		return "mul(" + g.argList(x.Args) + ")"
	}
	return "(" + g.mulOperand(x.Args[0]) + " * " + g.mulOperand(x.Args[1]) + ")"
}

// mulOperand parenthesizes operands whose operators would otherwise
// compete with the inserted multiplication.
func (g *generator) mulOperand(e ast.Expr) string {
	s := g.expr(e)
	switch e.(type) {
	case *ast.BinaryExpr, *ast.UnaryExpr, *ast.PostUnaryExpr, *ast.TernaryExpr:
		return "(" + s + ")"
	}
	return s
}

// rcpCall lowers rcp(x) to a division. The numerator constructor keeps
// the operand's component type, so integer and double inputs divide in
// their own type rather than in float.
func (g *generator) rcpCall(x *ast.CallExpr) string {
	if len(x.Args) != 1 {
		g.rep.Errorf(x.Pos, "rcp expects 1 argument, got %d", len(x.Args))
		return "rcp(" + g.argList(x.Args) + ")"
	}
	arg := x.Args[0]
	t := baseTypeOf(arg.ResolvedType())
	if t == ast.DataTypeUndefined {
		g.rep.Errorf(x.Pos, "rcp requires a scalar, vector, or matrix argument")
		return "(1.0 / (" + g.expr(arg) + "))"
	}
	return "(" + dataTypeKeyword(t.Base(), g.version) + "(1) / (" + g.expr(arg) + "))"
}

// sampleCall lowers tex.Sample(sampler, coords, ...) to texture(...) and
// tex.SampleLevel(sampler, coords, lod) to textureLod(...). GLSL fuses
// texture and sampler into one opaque object, so the HLSL sampler
// argument disappears and the texture moves into the argument list.
func (g *generator) sampleCall(x *ast.CallExpr) string {
	kw := "texture"
	if x.Intrinsic == ast.IntrinsicSampleLevel {
		kw = "textureLod"
	}
	if x.Ident == nil || len(x.Args) < 2 {
		g.rep.Errorf(x.Pos, "texture sample call is malformed")
		return kw + "(" + g.argList(x.Args) + ")"
	}
	args := make([]string, 0, len(x.Args))
	args = append(args, x.Ident.FinalIdent())
	for _, a := range x.Args[1:] {
		args = append(args, g.expr(a))
	}
	return kw + "(" + strings.Join(args, ", ") + ")"
}

// atomicCall lowers InterlockedX(dest, value[, original]) to a GLSL
// atomic function. The three-argument form assigns the function result,
// the value before the operation, to the third argument.
func (g *generator) atomicCall(x *ast.CallExpr, kw string) string {
	switch len(x.Args) {
	case 2:
		return kw + "(" + g.expr(x.Args[0]) + ", " + g.expr(x.Args[1]) + ")"
	case 3:
		return g.expr(x.Args[2]) + " = " + kw + "(" + g.expr(x.Args[0]) + ", " + g.expr(x.Args[1]) + ")"
	default:
		g.rep.Errorf(x.Pos, "'%s' expects 2 or 3 arguments, got %d", intrinsicSpelling(x), len(x.Args))
		return kw + "(" + g.argList(x.Args) + ")"
	}
}

// intrinsicSpelling recovers the source spelling of an intrinsic call
// for diagnostics.
func intrinsicSpelling(x *ast.CallExpr) string {
	if x.Ident != nil {
		return x.Ident.Last().Ident
	}
	return "intrinsic"
}
