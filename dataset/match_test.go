package dataset

import (
	"encoding/json"
	"testing"
)

func mustGold(t *testing.T, raw string) Gold {
	t.Helper()
	var gold Gold
	if err := json.Unmarshal([]byte(raw), &gold); err != nil {
		t.Fatalf("unmarshal gold: %v", err)
	}
	return gold
}

func TestBuildIndex(t *testing.T) {
	gold := mustGold(t, `{
		"0": {"csv_id": "t1", "table_text": "a"},
		"1": {"csv_id": "t2", "table_text": "b"},
		"2": {"table_text": "no key"},
		"3": {"csv_id": "t2", "table_text": "b-dup"}
	}`)

	index := BuildIndex(gold, "csv_id")
	if len(index) != 2 {
		t.Fatalf("index size = %d, want 2", len(index))
	}
	if index["t1"].TableText != "a" {
		t.Errorf("t1 table = %q", index["t1"].TableText)
	}
	// Duplicate keys resolve last-write-wins in gold index order.
	if index["t2"].TableText != "b-dup" {
		t.Errorf("t2 table = %q, want last-seen record", index["t2"].TableText)
	}
}

func TestBuildIndexNumericOrder(t *testing.T) {
	// Indices 9 and 10 share a key. Lexical order would visit "9" after
	// "10"; numeric order keeps the file's last record winning.
	gold := mustGold(t, `{
		"9":  {"csv_id": "t1", "table_text": "early"},
		"10": {"csv_id": "t1", "table_text": "late"}
	}`)

	index := BuildIndex(gold, "csv_id")
	if index["t1"].TableText != "late" {
		t.Errorf("t1 table = %q, want record at index 10", index["t1"].TableText)
	}
}

func TestJoin(t *testing.T) {
	gold := mustGold(t, `{
		"0": {"csv_id": "t1", "table_text": "Year|Sales\n2020|500", "sentences": ["Total sales were 500 in 2020."]}
	}`)
	index := BuildIndex(gold, "csv_id")

	preds := Predictions{
		"t1":      {"The total sales were 500."},
		"missing": {"X"},
	}

	pairs, notFound := Join(preds, index)
	if len(pairs) != 1 {
		t.Fatalf("matched = %d, want 1", len(pairs))
	}
	if notFound != 1 {
		t.Errorf("notFound = %d, want 1", notFound)
	}

	pair := pairs[0]
	if pair.Key != "t1" {
		t.Errorf("Key = %q", pair.Key)
	}
	if pair.Prediction != "The total sales were 500." {
		t.Errorf("Prediction = %q", pair.Prediction)
	}
	if pair.Reference != "Total sales were 500 in 2020." {
		t.Errorf("Reference = %q", pair.Reference)
	}
}

func TestJoinListPrediction(t *testing.T) {
	gold := mustGold(t, `{
		"0": {"csv_id": "t1", "table_text": "t", "sentences": ["s."]}
	}`)
	index := BuildIndex(gold, "csv_id")

	preds := Predictions{"t1": {"Claim one.", "Claim two."}}
	pairs, _ := Join(preds, index)
	if len(pairs) != 1 {
		t.Fatalf("matched = %d, want 1", len(pairs))
	}
	if pairs[0].Prediction != "Claim one. Claim two." {
		t.Errorf("Prediction = %q, want space-joined list", pairs[0].Prediction)
	}
}

func TestJoinNoMatches(t *testing.T) {
	gold := mustGold(t, `{"0": {"csv_id": "t1", "table_text": "t"}}`)
	index := BuildIndex(gold, "csv_id")

	pairs, notFound := Join(Predictions{"t2": {"X"}}, index)
	if len(pairs) != 0 {
		t.Errorf("matched = %d, want 0", len(pairs))
	}
	if notFound != 1 {
		t.Errorf("notFound = %d, want 1", notFound)
	}
}
