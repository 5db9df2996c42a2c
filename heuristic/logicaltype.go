package heuristic

import (
	"context"
	"regexp"
	"strings"

	"github.com/blessedrishabh/tabeval/api"
)

// logicalType is one category of the logical-operation taxonomy. Order of
// declaration is match priority: the first category with a trigger hit wins.
type logicalType struct {
	name     string
	triggers []string
}

var taxonomy = []logicalType{
	{"aggregation", []string{"total", "sum", "average", "mean", "aggregate"}},
	{"superlative", []string{"most", "highest", "lowest", "best", "worst", "maximum", "minimum", "largest", "smallest", "superlative"}},
	{"count", []string{"number of", "count", "how many", "there are", "count:"}},
	{"comparative", []string{"more than", "less than", "greater", "higher", "lower", "comparative:", "compared"}},
	{"ordinal", []string{"first", "second", "third", "last", "ordinal:"}},
	{"unique", []string{"different", "unique", "distinct", "unique:"}},
	{"negation", []string{"not", "no", "never", "did not", "negation:"}},
}

// surfaceLevel is the fallback category when no trigger matches.
const surfaceLevel = "surface-level"

// explicitLabelRe captures a parenthesized label immediately before a
// colon, e.g. "Claim 1 (count): ...". Structured generators annotate their
// claims this way and the annotation beats keyword inference.
var explicitLabelRe = regexp.MustCompile(`\(([^)]+)\):`)

// LogicalTypeOptions configures the LogicalType scorer
type LogicalTypeOptions struct{}

// LogicalType returns a scorer that categorizes the raw prediction into a
// logical-operation type and compares it to the gold label. The comparison
// is bidirectional case-insensitive containment, tolerating label
// granularity mismatches between datasets.
func LogicalType(opts LogicalTypeOptions) api.Scorer {
	return &logicalTypeScorer{opts: opts}
}

type logicalTypeScorer struct {
	opts LogicalTypeOptions
}

func (s *logicalTypeScorer) Score(ctx context.Context, pair api.Pair) api.Score {
	result := api.Score{
		Name:     "type_em",
		Metadata: make(map[string]any),
	}

	if pair.GoldLabel == "" {
		result.Error = api.ErrNoReference
		return result
	}

	predType := classify(pair.Prediction)
	goldType := strings.ToLower(pair.GoldLabel)

	if strings.Contains(goldType, predType) || strings.Contains(predType, goldType) {
		result.Score = 1
	}
	result.Metadata["predicted_type"] = predType
	result.Metadata["gold_label"] = goldType
	return result
}

// classify infers the logical-operation type of a statement. An explicit
// "(label):" annotation is used verbatim; otherwise the first taxonomy
// category with a trigger substring wins.
func classify(text string) string {
	if m := explicitLabelRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(strings.ToLower(m[1]))
	}

	lower := strings.ToLower(text)
	for _, lt := range taxonomy {
		for _, trigger := range lt.triggers {
			if strings.Contains(lower, trigger) {
				return lt.name
			}
		}
	}
	return surfaceLevel
}
