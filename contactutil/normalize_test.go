package contactutil

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "trim", in: "  John  ", want: "John"},
		{name: "collapse inner runs", in: "John   Ronald\tDoe", want: "John Ronald Doe"},
		{name: "already clean", in: "Jane", want: "Jane"},
		{name: "whitespace only", in: " \t ", want: ""},
		{name: "unicode preserved", in: "  Олена  ", want: "Олена"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeName(tt.in); got != tt.want {
				t.Fatalf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeDigits(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "dashes", in: "111-222-3333", want: "1112223333"},
		{name: "spaces and parens", in: " (111) 222 3333 ", want: "1112223333"},
		{name: "dots", in: "111.222.3333", want: "1112223333"},
		{name: "plus is preserved for validation to reject", in: "+1112223333", want: "+1112223333"},
		{name: "letters preserved", in: "111-CALL-NOW", want: "111CALLNOW"},
		{name: "empty after trim", in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDigits(tt.in); got != tt.want {
				t.Fatalf("NormalizeDigits(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
