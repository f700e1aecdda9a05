package text

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"tabs become spaces", "a\tb", "a b"},
		{"non-breaking space", "a\u00A0b", "a b"},
		{"figure space", "a\u2007b", "a b"},
		{"narrow no-break space", "a\u202Fb", "a b"},
		{"collapse whitespace", "a   b \n c", "a b c"},
		{"hyphen break rejoined", "invest- ment", "investment"},
		{"lower upper transition", "NetAUM", "Net AUM"},
		{"letter digit transition", "Plan1", "Plan 1"},
		{"digit letter transition", "12crore", "12 crore"},
		{"trim", "  hello  ", "hello"},
		{"combined", "Monthly\tAverage-\n AUM:Rs12,345", "Monthly Average AUM:Rs 12,345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"Net AUM : Rs 12,345.67 crore",
		"invest- ment  in\tMultiCapStocks",
		"A sentence. Another one! A third?",
		"a b c d",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestFixGluedDomainTerms(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"openended", "open ended"},
		{"OpenEnded", "open ended"}, // case-insensitive
		{"An openended equityscheme", "An open ended equity scheme"},
		{"schemeinvesting in multicapstocks", "scheme investing in multicap stocks"},
		{"mutualfundinvestmentsaresubjecttomarketrisks", "Mutual Fund investments are subject to market risks"},
		{"READALLSCHEMERELATEDDOCUMENTSCAREFULLY", "read all scheme related documents carefully"},
		{"nothing to fix", "nothing to fix"},
	}

	for _, tt := range tests {
		got := FixGluedDomainTerms(tt.input)
		if got != tt.want {
			t.Errorf("FixGluedDomainTerms(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsNoise(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", false},
		{"plain body text", "The fund invests in equities", false},
		{"boilerplate exact", "Mutual Fund investments are subject to market risks", true},
		{"boilerplate glued", "mutualfundinvestmentsaresubjecttomarketrisks", true},
		{"boilerplate spaced and cased", "MUTUAL fund INVESTMENTS are subject to MARKET risks", true},
		{"second phrase", "read all scheme related documents carefully", true},
		{"second phrase embedded", "Please read all scheme related documents carefully before investing", true},
		{"page number only", "Page | 3", true},
		{"page number padded", "  page 12  ", true},
		{"page number anywhere", "continued on Page 4 of the report", true},
		{"page word without digits", "Page layout discussion", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNoise(tt.input); got != tt.want {
				t.Errorf("IsNoise(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
