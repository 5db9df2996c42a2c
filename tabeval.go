// Package tabeval evaluates machine-generated statements about tabular
// data against gold references: lexical overlap, NLI entailment, keyword
// logical-type matching and chain-of-thought LLM judging, aggregated into
// the LLM-T2T benchmark metrics.
package tabeval

import (
	"github.com/blessedrishabh/tabeval/api"
	"github.com/blessedrishabh/tabeval/heuristic"
	"github.com/blessedrishabh/tabeval/hfinference"
	"github.com/blessedrishabh/tabeval/llmjudge"
	"github.com/blessedrishabh/tabeval/nli"
	"github.com/blessedrishabh/tabeval/perplexity"
)

type Score = api.Score
type Pair = api.Pair
type Scorer = api.Scorer
type ChatCompleter = api.ChatCompleter
type ChatRequest = api.ChatRequest
type TextClassifier = api.TextClassifier
type Classification = api.Classification

var (
	ErrNoReference          = api.ErrNoReference
	ErrGenerationFailed     = api.ErrGenerationFailed
	ErrClassificationFailed = api.ErrClassificationFailed
)

// Judge wraps a chat-completion backend and exposes convenient constructors
// for the chain-of-thought judge scorers.
type Judge struct {
	cc api.ChatCompleter
}

// JudgeOptions configures Judge creation
type JudgeOptions struct {
	cc api.ChatCompleter
}

// WithChatCompleter sets the chat-completion backend for the judge
func WithChatCompleter(cc api.ChatCompleter) func(*JudgeOptions) {
	return func(opts *JudgeOptions) {
		opts.cc = cc
	}
}

// NewJudge creates a new Judge wrapper using functional options.
func NewJudge(opts ...func(*JudgeOptions)) *Judge {
	options := &JudgeOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return &Judge{cc: options.cc}
}

// NewPerplexityJudge creates a Judge backed by the Perplexity API.
// Example models: "sonar", "sonar-pro", "sonar-reasoning".
func NewPerplexityJudge(cfg perplexity.Config) *Judge {
	return NewJudge(WithChatCompleter(perplexity.NewClient(cfg)))
}

type FaithfulnessOptions = llmjudge.FaithfulnessOptions

// Faithfulness returns a scorer that judges whether a generated claim is
// faithful to its table.
func (j *Judge) Faithfulness(opts FaithfulnessOptions) api.Scorer {
	return llmjudge.Faithfulness(j.cc, opts)
}

type CorrectnessOptions = llmjudge.CorrectnessOptions

// Correctness returns a scorer that judges whether a predicted answer
// answers the question correctly.
func (j *Judge) Correctness(opts CorrectnessOptions) api.Scorer {
	return llmjudge.Correctness(j.cc, opts)
}

// NLI wraps a text classifier and exposes the entailment scorer.
type NLI struct {
	clf api.TextClassifier
}

// NLIOptions configures NLI creation
type NLIOptions struct {
	clf api.TextClassifier
}

// WithTextClassifier sets the classification backend for the NLI scorer
func WithTextClassifier(clf api.TextClassifier) func(*NLIOptions) {
	return func(opts *NLIOptions) {
		opts.clf = clf
	}
}

// NewNLI creates a new NLI wrapper using functional options.
func NewNLI(opts ...func(*NLIOptions)) *NLI {
	options := &NLIOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return &NLI{clf: options.clf}
}

// NewHuggingFaceNLI creates an NLI wrapper backed by a hosted inference
// model. Example model: "roberta-large-mnli".
func NewHuggingFaceNLI(cfg hfinference.Config) *NLI {
	return NewNLI(WithTextClassifier(hfinference.NewClient(cfg)))
}

// Entailment returns a scorer that checks the table entails the statement.
func (n *NLI) Entailment() api.Scorer {
	return nli.Entailment(nli.EntailmentOptions{Classifier: n.clf})
}

// Heuristic exposes convenient constructors for the model-free scorers.
type Heuristic struct{}

// NewHeuristic creates a new Heuristic.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

type BLEUOptions = heuristic.BLEUOptions

// BLEU returns a sentence-BLEU scorer.
func (h *Heuristic) BLEU(opts BLEUOptions) api.Scorer {
	return heuristic.BLEU(opts)
}

type ROUGEOptions = heuristic.ROUGEOptions

// ROUGE returns a ROUGE f-measure scorer.
func (h *Heuristic) ROUGE(opts ROUGEOptions) api.Scorer {
	return heuristic.ROUGE(opts)
}

type LogicalTypeOptions = heuristic.LogicalTypeOptions

// LogicalType returns the keyword logical-type scorer.
func (h *Heuristic) LogicalType(opts LogicalTypeOptions) api.Scorer {
	return heuristic.LogicalType(opts)
}
