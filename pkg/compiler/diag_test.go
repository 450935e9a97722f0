package compiler

import "testing"

func TestDiagKindString(t *testing.T) {
	tests := []struct {
		kind     DiagKind
		expected string
	}{
		{UnexpectedToken, "UnexpectedToken"},
		{UnsupportedConstruct, "UnsupportedConstruct"},
		{DiagKind(7), "DiagKind(7)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("DiagKind(%d).String() = %q, want %q", int(tt.kind), got, tt.expected)
		}
	}
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{
		Kind:     UnexpectedToken,
		Line:     3,
		Column:   14,
		Expected: ";",
		Found:    "}",
		Msg:      `expected ";", got "}"`,
	}

	expected := `line 3, col 14: expected ";", got "}"`
	if got := d.String(); got != expected {
		t.Errorf("Diagnostic.String() = %q, want %q", got, expected)
	}
}
