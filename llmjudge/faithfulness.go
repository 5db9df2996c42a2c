// Package llmjudge contains the chain-of-thought judge scorers. Each
// formats a fixed prompt, calls a chat-completion backend at temperature 0
// and parses a terminal verdict token pair out of the response.
package llmjudge

import (
	"context"
	"fmt"
	"strings"

	"github.com/blessedrishabh/tabeval/api"
	"github.com/blessedrishabh/tabeval/internal/textutil"
)

const (
	// DefaultModel is the judge backend used when none is configured.
	DefaultModel = "sonar"

	defaultMaxTokens = 500

	tableLimit     = 1500
	statementLimit = 800
)

const faithfulnessPromptTemplate = `Given a table and a generated statement about the table, determine if the statement is factually correct and faithful to the table data.

Table:
%s

Generated Statement:
%s

Please reason step-by-step:
1. Extract the key facts mentioned in the statement
2. Locate the relevant data in the table
3. Verify each fact against the table data
4. Check for any numerical errors, logical inconsistencies, or false claims
5. Determine if the statement is completely faithful to the table

Answer with "FAITHFUL" or "NOT FAITHFUL" at the end.`

// FaithfulnessOptions configures the Faithfulness scorer
type FaithfulnessOptions struct {
	// Model selects the chat-completion backend variant
	Model string
	// MaxTokens bounds the judge's reasoning budget
	MaxTokens int
}

// Faithfulness returns a scorer that asks a chat-completion judge whether
// the generated statement is faithful to the table, reasoning step by step
// before a FAITHFUL / NOT FAITHFUL verdict.
func Faithfulness(cc api.ChatCompleter, opts FaithfulnessOptions) api.Scorer {
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = defaultMaxTokens
	}
	return &faithfulnessScorer{cc: cc, opts: opts}
}

type faithfulnessScorer struct {
	cc   api.ChatCompleter
	opts FaithfulnessOptions
}

func (s *faithfulnessScorer) Score(ctx context.Context, pair api.Pair) api.Score {
	result := api.Score{
		Name:     "cot_acc",
		Metadata: make(map[string]any),
	}

	if s.cc == nil {
		result.Error = fmt.Errorf("chat completer is required")
		return result
	}

	prompt := fmt.Sprintf(faithfulnessPromptTemplate,
		textutil.Prefix(pair.Table, tableLimit),
		textutil.Prefix(pair.Prediction, statementLimit),
	)

	answer, err := s.cc.Complete(ctx, api.ChatRequest{
		Model:       s.opts.Model,
		Prompt:      prompt,
		Temperature: 0,
		MaxTokens:   s.opts.MaxTokens,
	})
	if err != nil {
		result.Error = fmt.Errorf("%w: %v", api.ErrGenerationFailed, err)
		return result
	}

	result.Score = float64(faithfulVerdict(answer))
	result.Metadata["raw_response"] = answer
	return result
}

// faithfulVerdict is positive only when FAITHFUL appears without NOT
// FAITHFUL. The negative token contains the positive one, so the absence
// check doubles as the both-present guard; neither-present is negative.
func faithfulVerdict(answer string) int {
	if strings.Contains(answer, "FAITHFUL") && !strings.Contains(answer, "NOT FAITHFUL") {
		return 1
	}
	return 0
}
