package ast

import (
	"fmt"
	"strconv"
)

// RegisterType identifies the HLSL register bank a slot belongs to.
type RegisterType uint8

const (
	// RegisterUndefined is an unrecognized register prefix.
	RegisterUndefined RegisterType = iota

	// RegisterB is for constant buffers (cbuffer).
	RegisterB

	// RegisterT is for textures and shader resource views.
	RegisterT

	// RegisterS is for samplers.
	RegisterS

	// RegisterU is for unordered access views (UAV).
	RegisterU
)

// String returns the single-character register prefix.
func (t RegisterType) String() string {
	switch t {
	case RegisterB:
		return "b"
	case RegisterT:
		return "t"
	case RegisterS:
		return "s"
	case RegisterU:
		return "u"
	default:
		return "?"
	}
}

// Register is an HLSL register(...) binding hint: a slot in one of the
// b/t/s/u banks, optionally restricted to a single shader target.
type Register struct {
	// Name is the raw register spelling, e.g. "b2".
	Name string

	// Slot is the parsed register index.
	Slot int

	// Target restricts the register to one shader target;
	// TargetUndefined applies everywhere.
	Target ShaderTarget
}

// Type derives the register bank from the spelling's first character.
func (r Register) Type() RegisterType {
	if r.Name == "" {
		return RegisterUndefined
	}
	switch r.Name[0] {
	case 'b':
		return RegisterB
	case 't':
		return RegisterT
	case 's':
		return RegisterS
	case 'u':
		return RegisterU
	default:
		return RegisterUndefined
	}
}

// Prefix returns the register's textual prefix character.
func (r Register) Prefix() string {
	if r.Name == "" {
		return "?"
	}
	return r.Name[:1]
}

// String returns the register spelling.
func (r Register) String() string {
	return r.Name
}

// ParseRegister parses a register spelling such as "b2" or "t0". The
// prefix character is kept verbatim even when it names no known bank, so
// later validation can quote it.
func ParseRegister(s string) (Register, error) {
	if len(s) < 2 {
		return Register{}, fmt.Errorf("malformed register %q", s)
	}
	slot, err := strconv.Atoi(s[1:])
	if err != nil || slot < 0 {
		return Register{}, fmt.Errorf("malformed register slot in %q", s)
	}
	return Register{Name: s, Slot: slot}, nil
}

// FindRegister returns the first register that applies to the target:
// either unrestricted or restricted to exactly that target. It returns
// nil when the list holds no applicable register.
func FindRegister(regs []Register, target ShaderTarget) *Register {
	for i := range regs {
		if regs[i].Target == TargetUndefined || regs[i].Target == target {
			return &regs[i]
		}
	}
	return nil
}
