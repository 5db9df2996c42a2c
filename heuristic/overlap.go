// Package heuristic contains the synchronous, model-free scorers: lexical
// overlap metrics and the keyword logical-type classifier.
package heuristic

import (
	"context"
	"math"
	"regexp"
	"strings"

	"github.com/blessedrishabh/tabeval/api"
	"github.com/blessedrishabh/tabeval/textnorm"
)

// BLEUOptions configures the BLEU scorer
type BLEUOptions struct {
	// Smooth applies add-epsilon smoothing to zero n-gram counts, used for
	// short QA answers where higher-order n-grams rarely overlap
	Smooth bool
	// NormalizePrediction cleans structured model output before scoring
	NormalizePrediction bool
}

// BLEU returns a scorer that computes sentence-level BLEU (uniform 4-gram
// weights with brevity penalty) between the prediction and the reference.
func BLEU(opts BLEUOptions) api.Scorer {
	return &bleuScorer{opts: opts}
}

type bleuScorer struct {
	opts BLEUOptions
}

func (s *bleuScorer) Score(ctx context.Context, pair api.Pair) api.Score {
	result := api.Score{
		Name:     "bleu",
		Metadata: make(map[string]any),
	}

	if pair.Reference == "" {
		result.Error = api.ErrNoReference
		return result
	}

	prediction := pair.Prediction
	if s.opts.NormalizePrediction {
		prediction = textnorm.Normalize(prediction)
	}

	candidate := strings.Fields(prediction)
	reference := strings.Fields(pair.Reference)
	result.Score = sentenceBLEU(reference, candidate, s.opts.Smooth)
	result.Metadata["candidate_tokens"] = len(candidate)
	result.Metadata["reference_tokens"] = len(reference)
	return result
}

// smoothingEpsilon replaces zero n-gram numerators under method-1 smoothing.
const smoothingEpsilon = 0.1

// sentenceBLEU computes BLEU with uniform weights over 1..4-grams and the
// standard brevity penalty. Without smoothing any zero-count n-gram order
// zeroes the whole score.
func sentenceBLEU(reference, candidate []string, smooth bool) float64 {
	if len(candidate) == 0 {
		return 0
	}

	logSum := 0.0
	for n := 1; n <= 4; n++ {
		matches, total := clippedNgramMatches(reference, candidate, n)
		numerator := float64(matches)
		if numerator == 0 {
			if !smooth {
				return 0
			}
			numerator = smoothingEpsilon
		}
		denominator := float64(total)
		if denominator == 0 {
			denominator = 1
		}
		logSum += 0.25 * math.Log(numerator/denominator)
	}

	bp := 1.0
	if len(candidate) < len(reference) {
		bp = math.Exp(1 - float64(len(reference))/float64(len(candidate)))
	}
	return bp * math.Exp(logSum)
}

// clippedNgramMatches counts candidate n-grams capped by their reference
// frequency, plus the total candidate n-gram count.
func clippedNgramMatches(reference, candidate []string, n int) (matches, total int) {
	refCounts := ngramCounts(reference, n)
	candCounts := ngramCounts(candidate, n)
	for gram, count := range candCounts {
		total += count
		if refCount := refCounts[gram]; refCount < count {
			matches += refCount
		} else {
			matches += count
		}
	}
	return matches, total
}

func ngramCounts(tokens []string, n int) map[string]int {
	counts := make(map[string]int)
	for i := 0; i+n <= len(tokens); i++ {
		counts[strings.Join(tokens[i:i+n], " ")]++
	}
	return counts
}

// ROUGEVariant selects which ROUGE metric a scorer computes.
type ROUGEVariant string

const (
	ROUGE1 ROUGEVariant = "rouge_1"
	ROUGE2 ROUGEVariant = "rouge_2"
	ROUGEL ROUGEVariant = "rouge_l"
)

// ROUGEOptions configures a ROUGE scorer
type ROUGEOptions struct {
	// Variant is the metric to compute, defaults to ROUGEL
	Variant ROUGEVariant
	// NormalizePrediction cleans structured model output before scoring
	NormalizePrediction bool
}

// ROUGE returns a scorer that computes a ROUGE f-measure (unigram, bigram
// or longest-common-subsequence) between the prediction and the reference.
func ROUGE(opts ROUGEOptions) api.Scorer {
	if opts.Variant == "" {
		opts.Variant = ROUGEL
	}
	return &rougeScorer{opts: opts}
}

type rougeScorer struct {
	opts ROUGEOptions
}

func (s *rougeScorer) Score(ctx context.Context, pair api.Pair) api.Score {
	result := api.Score{
		Name:     string(s.opts.Variant),
		Metadata: make(map[string]any),
	}

	if pair.Reference == "" {
		result.Error = api.ErrNoReference
		return result
	}

	prediction := pair.Prediction
	if s.opts.NormalizePrediction {
		prediction = textnorm.Normalize(prediction)
	}

	candidate := rougeTokens(prediction)
	reference := rougeTokens(pair.Reference)

	var overlap int
	switch s.opts.Variant {
	case ROUGE1:
		overlap = countOverlap(reference, candidate, 1)
	case ROUGE2:
		overlap = countOverlap(reference, candidate, 2)
		reference = bigrams(reference)
		candidate = bigrams(candidate)
	default:
		overlap = lcsLength(reference, candidate)
	}

	result.Score = fMeasure(overlap, len(reference), len(candidate))
	return result
}

var rougeTokenRe = regexp.MustCompile(`[a-z0-9]+`)

func rougeTokens(text string) []string {
	return rougeTokenRe.FindAllString(strings.ToLower(text), -1)
}

func bigrams(tokens []string) []string {
	if len(tokens) < 2 {
		return nil
	}
	out := make([]string, 0, len(tokens)-1)
	for i := 0; i+2 <= len(tokens); i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}

func countOverlap(reference, candidate []string, n int) int {
	matches, _ := clippedNgramMatches(reference, candidate, n)
	return matches
}

func lcsLength(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// fMeasure computes F1 from an overlap count. ROUGE-2 passes n-gram list
// lengths, ROUGE-1/L token list lengths.
func fMeasure(overlap, refLen, candLen int) float64 {
	if refLen == 0 || candLen == 0 || overlap == 0 {
		return 0
	}
	precision := float64(overlap) / float64(candLen)
	recall := float64(overlap) / float64(refLen)
	return 2 * precision * recall / (precision + recall)
}
