package run

import (
	"context"

	"go.uber.org/zap"

	"github.com/blessedrishabh/tabeval/api"
	"github.com/blessedrishabh/tabeval/dataset"
	"github.com/blessedrishabh/tabeval/heuristic"
)

// qaKeyField joins QA predictions to their gold examples.
const qaKeyField = "feta_id"

// QAOptions configures a FeTaQA lexical evaluation run
type QAOptions struct {
	Predictions dataset.Predictions
	Gold        dataset.Gold
	// Concurrency bounds the per-example fan-out, default 4
	Concurrency int
	Logger      *zap.Logger
}

// QA evaluates table-QA predictions against the gold answer with ROUGE-1/2/L
// and smoothed BLEU. Answers are short free text, so BLEU smoothing keeps
// zero 4-gram overlaps from flattening the metric, and predictions are
// scored as-is (QA outputs carry no claim scaffolding worth stripping).
func QA(ctx context.Context, opts QAOptions) (Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	index := dataset.BuildIndex(opts.Gold, qaKeyField)
	pairs, notFound := dataset.Join(opts.Predictions, index)

	scorers := []api.Scorer{
		heuristic.ROUGE(heuristic.ROUGEOptions{Variant: heuristic.ROUGE1}),
		heuristic.ROUGE(heuristic.ROUGEOptions{Variant: heuristic.ROUGE2}),
		heuristic.ROUGE(heuristic.ROUGEOptions{Variant: heuristic.ROUGEL}),
		heuristic.BLEU(heuristic.BLEUOptions{Smooth: true}),
	}

	logger.Info("qa evaluation",
		zap.Int("predictions", len(opts.Predictions)),
		zap.Int("matched", len(pairs)),
		zap.Int("not_found", notFound),
	)

	agg := NewAggregator("rouge_1", "rouge_2", "rouge_l", "bleu")
	agg.AddNotFound(notFound)

	if err := scorePairs(ctx, pairs, scorers, agg, opts.Concurrency, logger); err != nil {
		return Report{}, err
	}

	rep := agg.Finalize()
	rep.Title = "FeTaQA EVALUATION RESULTS"
	return rep, nil
}
