package run

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/blessedrishabh/tabeval/api"
	"github.com/blessedrishabh/tabeval/dataset"
	"github.com/blessedrishabh/tabeval/llmjudge"
)

const (
	// defaultPacing is the minimum spacing between judge calls, the
	// benchmark's rate-limit compliance budget.
	defaultPacing = 500 * time.Millisecond

	defaultCallTimeout = 60 * time.Second
)

// JudgeOptions configures a chain-of-thought judge run
type JudgeOptions struct {
	Predictions dataset.Predictions
	Gold        dataset.Gold
	Completer   api.ChatCompleter
	// Model selects the judge backend variant, default sonar
	Model string
	// Limiter paces calls across all lanes; default one call per 500ms
	Limiter *rate.Limiter
	// Lanes bounds concurrent outstanding calls, default 1
	Lanes int
	// CallTimeout bounds a single judge call; hitting it skips the example
	CallTimeout time.Duration
	// Title overrides the report banner heading
	Title  string
	Logger *zap.Logger
}

// judgeBanner carries the report heading and verdict counter labels of a
// judge variant.
type judgeBanner struct {
	title    string
	positive string
	negative string
}

// JudgeClaims runs the FAITHFUL / NOT FAITHFUL judge over claim-generation
// predictions joined on csv_id.
func JudgeClaims(ctx context.Context, opts JudgeOptions) (Report, error) {
	scorer := llmjudge.Faithfulness(opts.Completer, llmjudge.FaithfulnessOptions{Model: opts.Model})
	return judge(ctx, opts, claimsKeyField, scorer, judgeBanner{
		title:    "CoT EVALUATION RESULTS",
		positive: "Faithful",
		negative: "Not faithful",
	})
}

// JudgeQA runs the CORRECT / INCORRECT judge over table-QA predictions
// joined on feta_id.
func JudgeQA(ctx context.Context, opts JudgeOptions) (Report, error) {
	scorer := llmjudge.Correctness(opts.Completer, llmjudge.CorrectnessOptions{Model: opts.Model})
	return judge(ctx, opts, qaKeyField, scorer, judgeBanner{
		title:    "CoT EVALUATION RESULTS (FeTaQA)",
		positive: "Correct",
		negative: "Incorrect",
	})
}

func judge(ctx context.Context, opts JudgeOptions, keyField string, scorer api.Scorer, banner judgeBanner) (Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	limiter := opts.Limiter
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Every(defaultPacing), 1)
	}
	lanes := opts.Lanes
	if lanes <= 0 {
		lanes = 1
	}
	callTimeout := opts.CallTimeout
	if callTimeout <= 0 {
		callTimeout = defaultCallTimeout
	}

	index := dataset.BuildIndex(opts.Gold, keyField)
	pairs, notFound := dataset.Join(opts.Predictions, index)

	logger.Info("judge evaluation",
		zap.Int("predictions", len(opts.Predictions)),
		zap.Int("matched", len(pairs)),
		zap.Int("not_found", notFound),
		zap.Int("lanes", lanes),
	)

	agg := NewAggregator("cot_acc")
	agg.AddNotFound(notFound)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(lanes)

	for _, pair := range pairs {
		pair := pair
		g.Go(func() error {
			// The token bucket enforces minimum inter-request spacing even
			// with multiple lanes in flight.
			if err := limiter.Wait(ctx); err != nil {
				return err
			}

			callCtx, cancel := context.WithTimeout(ctx, callTimeout)
			score := scorer.Score(callCtx, pair)
			cancel()

			if score.Error != nil {
				logger.Warn("judge call failed, example skipped",
					zap.String("key", pair.Key),
					zap.Error(score.Error),
				)
				return nil
			}
			agg.Add(score.Name, score.Score)
			agg.AddVerdict(score.Score >= 1)
			agg.AddExample()
			logger.Debug("judged", zap.String("key", pair.Key), zap.Float64("score", score.Score))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	rep := agg.Finalize()
	rep.Title = banner.title
	if opts.Title != "" {
		rep.Title = opts.Title
	}
	rep.PositiveLabel = banner.positive
	rep.NegativeLabel = banner.negative
	return rep, nil
}
