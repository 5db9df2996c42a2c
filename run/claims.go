package run

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/blessedrishabh/tabeval/api"
	"github.com/blessedrishabh/tabeval/dataset"
	"github.com/blessedrishabh/tabeval/heuristic"
	"github.com/blessedrishabh/tabeval/nli"
)

// claimsKeyField joins claim-generation predictions to their tables.
const claimsKeyField = "csv_id"

const defaultConcurrency = 4

// ClaimsOptions configures a LogicNLG / LoTNLG lexical evaluation run
type ClaimsOptions struct {
	Predictions dataset.Predictions
	Gold        dataset.Gold
	// Classifier enables the NLI faithfulness metric when set
	Classifier api.TextClassifier
	// Concurrency bounds the per-example fan-out, default 4
	Concurrency int
	Logger      *zap.Logger
}

// Claims evaluates claim-generation predictions: NLI entailment against the
// raw text, ROUGE-L and BLEU against the normalized text, and logical-type
// match when the gold set carries labels (LoTNLG). A scorer failure skips
// the whole example and never aborts the run.
func Claims(ctx context.Context, opts ClaimsOptions) (Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	index := dataset.BuildIndex(opts.Gold, claimsKeyField)
	pairs, notFound := dataset.Join(opts.Predictions, index)

	hasLabels := false
	for _, item := range opts.Gold {
		if item.HasLogicalLabels() {
			hasLabels = true
			break
		}
	}

	// Metric registration order is the report order: NLI-Acc, ROUGE-L,
	// BLEU, then Type EM when present.
	metrics := make([]string, 0, 4)
	scorers := make([]api.Scorer, 0, 4)
	if opts.Classifier != nil {
		metrics = append(metrics, "nli_acc")
		scorers = append(scorers, nli.Entailment(nli.EntailmentOptions{Classifier: opts.Classifier}))
	}
	metrics = append(metrics, "rouge_l", "bleu")
	scorers = append(scorers,
		heuristic.ROUGE(heuristic.ROUGEOptions{Variant: heuristic.ROUGEL, NormalizePrediction: true}),
		heuristic.BLEU(heuristic.BLEUOptions{NormalizePrediction: true}),
	)
	if hasLabels {
		metrics = append(metrics, "type_em")
		scorers = append(scorers, heuristic.LogicalType(heuristic.LogicalTypeOptions{}))
	}

	logger.Info("claims evaluation",
		zap.Int("predictions", len(opts.Predictions)),
		zap.Int("matched", len(pairs)),
		zap.Int("not_found", notFound),
		zap.Bool("logical_labels", hasLabels),
	)

	agg := NewAggregator(metrics...)
	agg.AddNotFound(notFound)

	if err := scorePairs(ctx, pairs, scorers, agg, opts.Concurrency, logger); err != nil {
		return Report{}, err
	}
	return agg.Finalize(), nil
}

// scorePairs fans scorers over pairs with bounded concurrency. The gold
// index and pairs are read-only here; the aggregator locks internally. An
// example counts toward total only when every scorer succeeded on it.
func scorePairs(ctx context.Context, pairs []api.Pair, scorers []api.Scorer, agg *Aggregator, concurrency int, logger *zap.Logger) error {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, pair := range pairs {
		pair := pair
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results := make([]api.Score, 0, len(scorers))
			for _, scorer := range scorers {
				score := scorer.Score(ctx, pair)
				if score.Error != nil {
					logger.Warn("scoring failed, example skipped",
						zap.String("key", pair.Key),
						zap.String("metric", score.Name),
						zap.Error(score.Error),
					)
					return nil
				}
				results = append(results, score)
			}
			for _, score := range results {
				agg.Add(score.Name, score.Score)
			}
			agg.AddExample()
			return nil
		})
	}
	return g.Wait()
}
