package dataset

import (
	"sort"
	"strconv"

	"github.com/blessedrishabh/tabeval/api"
)

// BuildIndex maps gold records by the configured secondary key field.
// Records lacking the field are excluded. Duplicate keys resolve
// last-write-wins in index order of the gold map keys.
func BuildIndex(gold Gold, keyField string) map[string]GoldExample {
	indices := make([]string, 0, len(gold))
	for idx := range gold {
		indices = append(indices, idx)
	}
	sort.Slice(indices, func(i, j int) bool { return indexLess(indices[i], indices[j]) })

	index := make(map[string]GoldExample, len(gold))
	for _, idx := range indices {
		item := gold[idx]
		key, ok := item.Key(keyField)
		if !ok {
			continue
		}
		index[key] = item
	}
	return index
}

// indexLess orders gold map indices numerically when both parse as
// integers, so "10" follows "9" the way the exports number records.
// Non-numeric indices fall back to lexical order.
func indexLess(a, b string) bool {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	if aerr == nil && berr == nil {
		return ai < bi
	}
	return a < b
}

// Join matches predictions to indexed gold records by secondary key.
// Predictions without a gold record are counted, not matched. Pairs come
// back in sorted key order so runs are reproducible.
func Join(preds Predictions, index map[string]GoldExample) ([]api.Pair, int) {
	keys := make([]string, 0, len(preds))
	for key := range preds {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]api.Pair, 0, len(preds))
	notFound := 0
	for _, key := range keys {
		gold, ok := index[key]
		if !ok {
			notFound++
			continue
		}
		pairs = append(pairs, api.Pair{
			Key:        key,
			Table:      gold.TableText,
			Question:   gold.Question,
			Reference:  referenceText(gold),
			Prediction: preds.Text(key),
			GoldLabel:  gold.LogicalLabels.First(),
		})
	}
	return pairs, notFound
}

// referenceText picks the gold answer for QA records and the first gold
// sentence for claim-generation records.
func referenceText(gold GoldExample) string {
	if gold.Answer != "" {
		return gold.Answer
	}
	return gold.Sentences.First()
}
