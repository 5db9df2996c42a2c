package dataset

import (
	"encoding/json"
	"testing"
)

func TestStringListUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		want     []string
		wantJoin string
	}{
		{
			name:     "single string",
			in:       `"one sentence."`,
			want:     []string{"one sentence."},
			wantJoin: "one sentence.",
		},
		{
			name:     "list of strings",
			in:       `["first.", "second."]`,
			want:     []string{"first.", "second."},
			wantJoin: "first. second.",
		},
		{
			name:     "empty list",
			in:       `[]`,
			want:     nil,
			wantJoin: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringList
			if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("element %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
			if got.Join() != tt.wantJoin {
				t.Errorf("Join() = %q, want %q", got.Join(), tt.wantJoin)
			}
		})
	}
}

func TestGoldExampleKeys(t *testing.T) {
	raw := `{
		"csv_id": "2-12345-6.html.csv",
		"feta_id": 10432,
		"table_text": "Year|Sales\n2020|500",
		"question": "What were the sales?",
		"answer": "Sales were 500.",
		"sentences": ["Total sales were 500 in 2020."],
		"logical_labels": ["count", "aggregation"]
	}`

	var g GoldExample
	if err := json.Unmarshal([]byte(raw), &g); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if key, ok := g.Key("csv_id"); !ok || key != "2-12345-6.html.csv" {
		t.Errorf("Key(csv_id) = %q, %v", key, ok)
	}
	// Numeric keys are stringified for joining.
	if key, ok := g.Key("feta_id"); !ok || key != "10432" {
		t.Errorf("Key(feta_id) = %q, %v", key, ok)
	}
	if _, ok := g.Key("missing"); ok {
		t.Error("Key(missing) should not be found")
	}
	if g.TableText != "Year|Sales\n2020|500" {
		t.Errorf("TableText = %q", g.TableText)
	}
	if g.Sentences.First() != "Total sales were 500 in 2020." {
		t.Errorf("Sentences.First() = %q", g.Sentences.First())
	}
	if g.LogicalLabels.First() != "count" {
		t.Errorf("LogicalLabels.First() = %q", g.LogicalLabels.First())
	}
	if !g.HasLogicalLabels() {
		t.Error("HasLogicalLabels() = false")
	}
}
