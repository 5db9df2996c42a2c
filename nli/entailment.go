// Package nli scores faithfulness via a natural-language-inference
// classifier: does the table serialization entail the generated statement?
package nli

import (
	"context"
	"fmt"
	"strings"

	"github.com/blessedrishabh/tabeval/api"
	"github.com/blessedrishabh/tabeval/internal/textutil"
)

const (
	// Classifier context windows are fixed, so inputs are truncated to
	// deterministic prefixes to keep scores reproducible.
	tableLimit      = 1000
	predictionLimit = 500

	separator      = " [SEP] "
	entailmentText = "entailment"
)

// EntailmentOptions configures the Entailment scorer
type EntailmentOptions struct {
	// Classifier performs the NLI call, typically roberta-large-mnli
	Classifier api.TextClassifier
}

// Entailment returns a scorer that submits "table [SEP] statement" to an
// NLI classifier and scores 1 iff the returned label is entailment. The
// statement is used un-normalized: the scaffolding carries context the
// classifier can use.
func Entailment(opts EntailmentOptions) api.Scorer {
	return &entailmentScorer{opts: opts}
}

type entailmentScorer struct {
	opts EntailmentOptions
}

func (s *entailmentScorer) Score(ctx context.Context, pair api.Pair) api.Score {
	result := api.Score{
		Name:     "nli_acc",
		Metadata: make(map[string]any),
	}

	if s.opts.Classifier == nil {
		result.Error = fmt.Errorf("text classifier is required")
		return result
	}

	input := textutil.Prefix(pair.Table, tableLimit) + separator +
		textutil.Prefix(pair.Prediction, predictionLimit)

	classification, err := s.opts.Classifier.Classify(ctx, input)
	if err != nil {
		result.Error = fmt.Errorf("%w: %v", api.ErrClassificationFailed, err)
		return result
	}

	if strings.EqualFold(classification.Label, entailmentText) {
		result.Score = 1
	}
	result.Metadata["label"] = classification.Label
	result.Metadata["confidence"] = classification.Confidence
	return result
}
