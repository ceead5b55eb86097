package redaction

import "testing"

func TestRedactSecret(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "empty secret",
			input:  "",
			expect: "",
		},
		{
			name:   "non-empty secret",
			input:  "super-secret-token",
			expect: "[redacted]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RedactSecret(tt.input); got != tt.expect {
				t.Fatalf("RedactSecret(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestRedactToken(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "empty", input: "", expect: ""},
		{name: "bot prefix only", input: "Bot ", expect: ""},
		{name: "keeps id segment", input: "MTIzNDU2.abc.def", expect: "MTIzNDU2.[redacted]"},
		{name: "strips bot prefix", input: "Bot MTIzNDU2.abc.def", expect: "MTIzNDU2.[redacted]"},
		{name: "no dot", input: "opaque", expect: "[redacted]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RedactToken(tt.input); got != tt.expect {
				t.Fatalf("RedactToken(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}
