package api

import "context"

// Pair is a prediction joined to its gold record. Prediction holds the raw
// joined text; scorers that want the cleaned form normalize it themselves.
type Pair struct {
	// Key is the secondary key the pair was joined on (csv_id, feta_id, ...)
	Key string
	// Table is the serialized table text from the gold record
	Table string
	// Question is the question for QA-style datasets, empty otherwise
	Question string
	// Reference is the gold answer (QA) or first gold sentence (claims)
	Reference string
	// Prediction is the model output, list predictions joined with spaces
	Prediction string
	// GoldLabel is the canonical logical-operation label, empty when the
	// dataset carries none
	GoldLabel string
}

// Score represents the result of an evaluation
type Score struct {
	// Name identifies the scorer that produced this result
	Name string
	// Score is a value between 0 and 1, where 1 is the best possible score
	Score float64
	// Metadata contains additional information about the scoring process
	Metadata map[string]any
	// Error contains any error that occurred during scoring
	Error error
}

// Scorer evaluates one matched pair. A non-nil Score.Error means the pair
// is skipped for this scorer, never that the run aborts.
type Scorer interface {
	Score(ctx context.Context, pair Pair) Score
}

// ChatRequest is a single-turn chat-completion request.
type ChatRequest struct {
	Model       string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// ChatCompleter is an interface for chat-completion backends.
// This interface must be implemented by library consumers.
// A Perplexity implementation is provided in the perplexity subpackage.
type ChatCompleter interface {
	// Complete sends a single user-role prompt and returns the generated text
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

// Classification is the label a text classifier assigned to an input.
type Classification struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"score"`
}

// TextClassifier is an interface for text-classification backends.
// This interface must be implemented by library consumers.
// A HuggingFace inference implementation is provided in the hfinference
// subpackage.
type TextClassifier interface {
	// Classify returns the top label for the input
	Classify(ctx context.Context, input string) (Classification, error)
}
