package ast

import "fmt"

// ValidationError describes one violation of the backend's input contract.
type ValidationError struct {
	Message string
	Pos     Pos
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("invalid program at %s: %s", e.Pos, e.Message)
	}
	return "invalid program: " + e.Message
}

// Validate checks the structural invariants the backend relies on: the
// entry point is present and part of the program, identifier chains are
// well formed, and every expression carries a resolved type denoter.
// It returns all violations found rather than stopping at the first.
func Validate(p *Program) []ValidationError {
	if p == nil {
		return []ValidationError{{Message: "program is nil"}}
	}

	var errs []ValidationError
	report := func(pos Pos, format string, args ...any) {
		errs = append(errs, ValidationError{
			Message: fmt.Sprintf(format, args...),
			Pos:     pos,
		})
	}

	if p.EntryPointRef == nil {
		report(Pos{}, "program has no entry point reference")
	} else {
		found := false
		for _, d := range p.Decls {
			if d == p.EntryPointRef {
				found = true
				break
			}
		}
		if !found {
			report(p.EntryPointRef.Pos, "entry point %q is not a global declaration", p.EntryPointRef.Ident)
		}
	}

	for _, d := range p.Decls {
		if d == nil {
			report(Pos{}, "program contains a nil declaration")
		}
	}

	Walk(p, func(n Node) {
		switch n := n.(type) {
		case *FunctionDecl:
			if n.ReturnType == nil {
				report(n.Pos, "function %q has no return type", n.Ident)
			}
			for _, param := range n.Params {
				if len(param.Vars) != 1 {
					report(param.Pos, "parameter of %q must declare exactly one variable", n.Ident)
				}
			}
		case *VarDeclStmt:
			if n.Type == nil {
				report(n.Pos, "variable declaration has no type")
			}
			if len(n.Vars) == 0 {
				report(n.Pos, "variable declaration declares no variables")
			}
		case *VarIdent:
			if n.Ident == "" && n.Symbol == nil {
				report(n.Pos, "identifier chain link has neither spelling nor symbol")
			}
		case Expr:
			if n.ResolvedType() == nil {
				report(n.Position(), "expression has no resolved type")
			}
		}
	})

	return errs
}
