package nli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/blessedrishabh/tabeval/api"
)

// mockClassifier is a simple mock for unit tests
type mockClassifier struct {
	classification api.Classification
	err            error
	lastInput      string
}

func (m *mockClassifier) Classify(ctx context.Context, input string) (api.Classification, error) {
	m.lastInput = input
	if m.err != nil {
		return api.Classification{}, m.err
	}
	return m.classification, nil
}

func TestEntailment(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		label     string
		err       error
		wantScore float64
		wantErr   bool
	}{
		{
			name:      "entailment label scores 1",
			label:     "ENTAILMENT",
			wantScore: 1,
		},
		{
			name:      "label compared case-insensitively",
			label:     "entailment",
			wantScore: 1,
		},
		{
			name:      "neutral scores 0",
			label:     "NEUTRAL",
			wantScore: 0,
		},
		{
			name:      "contradiction scores 0",
			label:     "CONTRADICTION",
			wantScore: 0,
		},
		{
			name:    "classifier failure surfaces as error",
			err:     fmt.Errorf("connection refused"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clf := &mockClassifier{classification: api.Classification{Label: tt.label, Confidence: 0.9}, err: tt.err}
			scorer := Entailment(EntailmentOptions{Classifier: clf})
			result := scorer.Score(ctx, api.Pair{Table: "Year|Sales", Prediction: "Sales rose."})

			if tt.wantErr {
				if result.Error == nil {
					t.Fatal("expected error")
				}
				return
			}
			if result.Error != nil {
				t.Fatalf("error = %v", result.Error)
			}
			if result.Score != tt.wantScore {
				t.Errorf("score = %v, want %v", result.Score, tt.wantScore)
			}
		})
	}
}

func TestEntailmentInputFormat(t *testing.T) {
	ctx := context.Background()
	clf := &mockClassifier{classification: api.Classification{Label: "NEUTRAL"}}
	scorer := Entailment(EntailmentOptions{Classifier: clf})

	longTable := strings.Repeat("r", 2000)
	longPred := strings.Repeat("p", 900)
	scorer.Score(ctx, api.Pair{Table: longTable, Prediction: longPred})

	want := strings.Repeat("r", 1000) + " [SEP] " + strings.Repeat("p", 500)
	if clf.lastInput != want {
		t.Errorf("input length = %d, want bounded prefixes with separator", len(clf.lastInput))
	}
}

func TestEntailmentNoClassifier(t *testing.T) {
	scorer := Entailment(EntailmentOptions{})
	result := scorer.Score(context.Background(), api.Pair{Table: "t", Prediction: "p"})
	if result.Error == nil {
		t.Fatal("expected error when classifier is missing")
	}
	if result.Score != 0 {
		t.Errorf("score = %v, want 0", result.Score)
	}
}
