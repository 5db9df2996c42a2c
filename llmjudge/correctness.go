package llmjudge

import (
	"context"
	"fmt"
	"strings"

	"github.com/blessedrishabh/tabeval/api"
	"github.com/blessedrishabh/tabeval/internal/textutil"
)

const answerLimit = 500

const correctnessPromptTemplate = `Given a table, a question about the table, a reference answer, and a predicted answer, determine if the predicted answer correctly answers the question based on the table.

Table:
%s

Question: %s

Reference Answer: %s

Predicted Answer: %s

Please reason step-by-step:
1. Identify what information the question asks for
2. Extract the relevant data from the table
3. Compare the predicted answer with the reference answer
4. Check if the predicted answer contains the correct information from the table
5. Determine if the prediction is correct (semantically equivalent, even if worded differently)

Answer with "CORRECT" or "INCORRECT" at the end.`

// CorrectnessOptions configures the Correctness scorer
type CorrectnessOptions struct {
	// Model selects the chat-completion backend variant
	Model string
	// MaxTokens bounds the judge's reasoning budget
	MaxTokens int
}

// Correctness returns a scorer that asks a chat-completion judge whether a
// predicted answer answers the question correctly given the table and the
// reference answer, ending in a CORRECT / INCORRECT verdict.
func Correctness(cc api.ChatCompleter, opts CorrectnessOptions) api.Scorer {
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = defaultMaxTokens
	}
	return &correctnessScorer{cc: cc, opts: opts}
}

type correctnessScorer struct {
	cc   api.ChatCompleter
	opts CorrectnessOptions
}

func (s *correctnessScorer) Score(ctx context.Context, pair api.Pair) api.Score {
	result := api.Score{
		Name:     "cot_acc",
		Metadata: make(map[string]any),
	}

	if s.cc == nil {
		result.Error = fmt.Errorf("chat completer is required")
		return result
	}

	prompt := fmt.Sprintf(correctnessPromptTemplate,
		textutil.Prefix(pair.Table, tableLimit),
		pair.Question,
		textutil.Prefix(pair.Reference, answerLimit),
		textutil.Prefix(pair.Prediction, answerLimit),
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

	result.Score = float64(correctVerdict(answer))
	result.Metadata["raw_response"] = answer
	return result
}

// correctVerdict mirrors faithfulVerdict for the CORRECT / INCORRECT pair.
// Here too the negative token contains the positive one as a substring, so
// any INCORRECT occurrence forces a negative verdict.
func correctVerdict(answer string) int {
	if strings.Contains(answer, "CORRECT") && !strings.Contains(answer, "INCORRECT") {
		return 1
	}
	return 0
}
