// Package ast defines the HLSL program model consumed by the backends.
//
// The AST is produced by a semantic-analysis front end: every expression
// carries a resolved type denoter and every identifier that references a
// declaration carries a symbol back-reference. The GLSL backend annotates
// the tree (flags), restructures it (entry-point rewriting, structure
// resolution), and finally walks it read-only to emit target code.
//
// # Structure
//
// A Program holds an ordered list of global declarations plus a reference
// to the entry-point function. Declarations, statements, expressions, and
// type denoters are modeled as tagged unions: a marker-method interface
// per category with one struct per variant, dispatched by type switch.
//
// # Ownership
//
// Nodes reference each other freely (symbol refs, struct refs, the entry
// point ref); the garbage collector owns the cycles. A Program is owned by
// exactly one generation request at a time.
package ast
