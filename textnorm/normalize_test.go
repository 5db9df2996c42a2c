package textnorm

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text unchanged",
			in:   "The total sales were 500.",
			want: "The total sales were 500.",
		},
		{
			name: "markdown headers stripped",
			in:   "## Analysis\nThe table shows growth.",
			want: "Analysis The table shows growth.",
		},
		{
			name: "bold markers unwrapped",
			in:   "The **highest** value is **42**.",
			want: "The highest value is 42.",
		},
		{
			name: "claim bodies extracted",
			in:   "Here are my claims. Claim 1: There are 5 rows. Claim 2 (count): The count is 5. Some trailing commentary.",
			want: "There are 5 rows. The count is 5.",
		},
		{
			name: "reasoning span removed",
			in:   "Reasoning: the table lists yearly totals. Sales rose in 2020.",
			want: "Sales rose in 2020.",
		},
		{
			name: "whitespace collapsed",
			in:   "Sales   rose\n\nin  2020.",
			want: "Sales rose in 2020.",
		},
		{
			name: "structured judge output",
			in:   "## Claims\nClaim 1 (superlative): 2020 had the highest sales. Claim 2: Revenue doubled.",
			want: "2020 had the highest sales. Revenue doubled.",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"## Header\n**bold** text with  spaces",
		"Claim 1: First fact. Claim 2: Second fact.",
		"Reasoning: because of the data. The answer is 7.",
		"An already clean sentence.",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
