package export

import "testing"

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestBoolString(t *testing.T) {
	tests := []struct {
		name  string
		input *bool
		want  string
	}{
		{"true", boolPtr(true), "true"},
		{"false", boolPtr(false), "false"},
		{"absent", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BoolString(tt.input); got != tt.want {
				t.Errorf("BoolString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompanyName(t *testing.T) {
	tests := []struct {
		name  string
		input *string
		want  string
	}{
		{"absent", nil, ""},
		{"empty", strPtr(""), ""},
		{"whitespace_only", strPtr("   "), ""},
		{"plain", strPtr("Acme"), "ACME"},
		{"leading_at", strPtr("@Acme"), "ACME"},
		{"double_at_strips_one", strPtr("@@Acme"), "@ACME"},
		{"surrounding_whitespace", strPtr("  @GitHub  "), "GITHUB"},
		{"interior_at_kept", strPtr("Acme@Home"), "ACME@HOME"},
		{"already_uppercase", strPtr("ACME"), "ACME"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompanyName(tt.input); got != tt.want {
				t.Errorf("CompanyName(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCompanyName_Idempotent(t *testing.T) {
	inputs := []string{"Acme", "  spaced  ", "mixedCase Inc."}

	for _, in := range inputs {
		once := CompanyName(&in)
		twice := CompanyName(&once)
		if once != twice {
			t.Errorf("CompanyName not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestStringOr(t *testing.T) {
	if got := StringOr(nil); got != "" {
		t.Errorf("StringOr(nil) = %q, want empty", got)
	}
	if got := StringOr(strPtr("Tokyo")); got != "Tokyo" {
		t.Errorf("StringOr() = %q, want %q", got, "Tokyo")
	}
}
