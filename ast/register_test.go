package ast

import "testing"

func TestParseRegister(t *testing.T) {
	tests := []struct {
		spelling string
		slot     int
	}{
		{"b0", 0},
		{"b2", 2},
		{"t10", 10},
		{"s1", 1},
		{"u3", 3},
	}
	for _, tt := range tests {
		t.Run(tt.spelling, func(t *testing.T) {
			r, err := ParseRegister(tt.spelling)
			if err != nil {
				t.Fatalf("ParseRegister(%q) error = %v", tt.spelling, err)
			}
			if r.Name != tt.spelling {
				t.Errorf("Name = %q, want %q", r.Name, tt.spelling)
			}
			if r.Slot != tt.slot {
				t.Errorf("Slot = %d, want %d", r.Slot, tt.slot)
			}
			if r.Target != TargetUndefined {
				t.Errorf("Target = %v, want TargetUndefined", r.Target)
			}
		})
	}
}

func TestParseRegister_Errors(t *testing.T) {
	tests := []struct {
		spelling string
		want     string
	}{
		{"", `malformed register ""`},
		{"b", `malformed register "b"`},
		{"bx", `malformed register slot in "bx"`},
		{"b1x", `malformed register slot in "b1x"`},
		{"b-1", `malformed register slot in "b-1"`},
	}
	for _, tt := range tests {
		t.Run(tt.spelling, func(t *testing.T) {
			_, err := ParseRegister(tt.spelling)
			if err == nil {
				t.Fatalf("ParseRegister(%q) succeeded, want error", tt.spelling)
			}
			if err.Error() != tt.want {
				t.Errorf("error = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestRegister_Type(t *testing.T) {
	tests := []struct {
		spelling string
		want     RegisterType
	}{
		{"b2", RegisterB},
		{"t0", RegisterT},
		{"s4", RegisterS},
		{"u1", RegisterU},
		{"q7", RegisterUndefined},
		{"", RegisterUndefined},
	}
	for _, tt := range tests {
		r := Register{Name: tt.spelling}
		if got := r.Type(); got != tt.want {
			t.Errorf("Register{%q}.Type() = %v, want %v", tt.spelling, got, tt.want)
		}
	}
}

func TestRegisterType_String(t *testing.T) {
	tests := []struct {
		rt   RegisterType
		want string
	}{
		{RegisterB, "b"},
		{RegisterT, "t"},
		{RegisterS, "s"},
		{RegisterU, "u"},
		{RegisterUndefined, "?"},
	}
	for _, tt := range tests {
		if got := tt.rt.String(); got != tt.want {
			t.Errorf("RegisterType(%d).String() = %q, want %q", tt.rt, got, tt.want)
		}
	}
}

func TestRegister_Prefix(t *testing.T) {
	if got := (Register{Name: "t7"}).Prefix(); got != "t" {
		t.Errorf("Prefix() = %q, want %q", got, "t")
	}
	if got := (Register{}).Prefix(); got != "?" {
		t.Errorf("Prefix() of empty register = %q, want %q", got, "?")
	}
}

func TestFindRegister(t *testing.T) {
	generic, _ := ParseRegister("b1")
	fragment := Register{Name: "b5", Slot: 5, Target: TargetFragmentShader}

	if FindRegister(nil, TargetVertexShader) != nil {
		t.Error("FindRegister(nil) should return nil")
	}

	regs := []Register{fragment, generic}
	if got := FindRegister(regs, TargetFragmentShader); got == nil || got.Slot != 5 {
		t.Errorf("fragment target picked %+v, want the fragment-specific slot 5", got)
	}
	if got := FindRegister(regs, TargetVertexShader); got == nil || got.Slot != 1 {
		t.Errorf("vertex target picked %+v, want the unrestricted slot 1", got)
	}

	only := []Register{fragment}
	if got := FindRegister(only, TargetVertexShader); got != nil {
		t.Errorf("vertex target picked %+v, want nil: register is fragment-only", got)
	}
}
