package directory

import (
	"testing"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantOperator Operator
		wantOperand  string
	}{
		{
			name:         "Plain text is contains",
			input:        "john",
			wantOperator: OpContains,
			wantOperand:  "john",
		},
		{
			name:         "Leading equals is exact match",
			input:        "=John Smith",
			wantOperator: OpExactMatch,
			wantOperand:  "John Smith",
		},
		{
			name:         "Leading caret is starts with",
			input:        "^john",
			wantOperator: OpStartsWith,
			wantOperand:  "john",
		},
		{
			name:         "Leading at is email domain",
			input:        "@gmail.com",
			wantOperator: OpEmailDomain,
			wantOperand:  "gmail.com",
		},
		{
			name:         "Trailing dollar is ends with",
			input:        "smith$",
			wantOperator: OpEndsWith,
			wantOperand:  "smith",
		},
		{
			name:         "Prefix markers win over trailing dollar",
			input:        "=smith$",
			wantOperator: OpExactMatch,
			wantOperand:  "smith$",
		},
		{
			name:         "Empty input is neutral contains",
			input:        "",
			wantOperator: OpContains,
			wantOperand:  "",
		},
		{
			name:         "Whitespace only is neutral contains",
			input:        "   ",
			wantOperator: OpContains,
			wantOperand:  "",
		},
		{
			name:         "Surrounding whitespace is trimmed before detection",
			input:        "  ^acc  ",
			wantOperator: OpStartsWith,
			wantOperand:  "acc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseQuery(tt.input)
			if got.Operator != tt.wantOperator {
				t.Errorf("ParseQuery(%q).Operator = %v, want %v", tt.input, got.Operator, tt.wantOperator)
			}
			if got.Operand != tt.wantOperand {
				t.Errorf("ParseQuery(%q).Operand = %q, want %q", tt.input, got.Operand, tt.wantOperand)
			}
		})
	}
}

func TestParsedQueryMatchField(t *testing.T) {
	tests := []struct {
		name  string
		query ParsedQuery
		value string
		want  bool
	}{
		{"Contains is case-insensitive", ParsedQuery{OpContains, "SMITH"}, "John Smith", true},
		{"Contains misses absent text", ParsedQuery{OpContains, "lee"}, "John Smith", false},
		{"Exact match ignores case", ParsedQuery{OpExactMatch, "john smith"}, "John Smith", true},
		{"Exact match rejects partial", ParsedQuery{OpExactMatch, "john"}, "John Smith", false},
		{"Starts with matches prefix", ParsedQuery{OpStartsWith, "joh"}, "John Smith", true},
		{"Starts with rejects interior", ParsedQuery{OpStartsWith, "smith"}, "John Smith", false},
		{"Ends with matches suffix", ParsedQuery{OpEndsWith, "Smith"}, "john smith", true},
		{"Email domain never matches through fields", ParsedQuery{OpEmailDomain, "gmail.com"}, "gmail.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.MatchField(tt.value); got != tt.want {
				t.Errorf("MatchField(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestParsedQueryMatchEmailDomain(t *testing.T) {
	q := ParsedQuery{Operator: OpEmailDomain, Operand: "gmail.com"}

	if !q.MatchEmailDomain("john@gmail.com") {
		t.Error("expected john@gmail.com to match gmail.com")
	}
	if !q.MatchEmailDomain("JOHN@GMAIL.COM") {
		t.Error("expected domain comparison to be case-insensitive")
	}
	if q.MatchEmailDomain("jane@yahoo.com") {
		t.Error("expected jane@yahoo.com not to match gmail.com")
	}
	if q.MatchEmailDomain("no-email-here") {
		t.Error("expected value without @ not to match")
	}
	if q.MatchEmailDomain("") {
		t.Error("expected empty email not to match")
	}
}
