// Package run wires matcher, normalizer and scorers into the per-dataset
// evaluation pipelines and accumulates their scores into a summary report.
package run

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Aggregator accumulates per-example scores. It is the only mutable state
// shared between concurrent scorer invocations, so every method locks.
type Aggregator struct {
	mu       sync.Mutex
	order    []string
	sums     map[string]float64
	total    int
	notFound int
	verdicts bool
	positive int
}

// NewAggregator creates an aggregator with the given metrics pre-registered
// so they appear in the report (at 0) even when nothing was scored. The
// registration order is the report's display order.
func NewAggregator(metrics ...string) *Aggregator {
	sums := make(map[string]float64, len(metrics))
	for _, m := range metrics {
		sums[m] = 0
	}
	return &Aggregator{order: metrics, sums: sums}
}

// Add accumulates a value for a metric.
func (a *Aggregator) Add(metric string, value float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sums[metric] += value
}

// AddExample counts one fully scored example.
func (a *Aggregator) AddExample() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.total++
}

// AddNotFound counts predictions with no gold match.
func (a *Aggregator) AddNotFound(n int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.notFound += n
}

// AddVerdict counts a binary judge verdict toward the report's pass/fail
// counters.
func (a *Aggregator) AddVerdict(pass bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.verdicts = true
	if pass {
		a.positive++
	}
}

// Finalize turns the running sums into percentages. With zero scored
// examples every metric reports 0 instead of dividing by zero.
func (a *Aggregator) Finalize() Report {
	a.mu.Lock()
	defer a.mu.Unlock()

	metrics := make(map[string]float64, len(a.sums))
	for name, sum := range a.sums {
		if a.total == 0 {
			metrics[name] = 0
			continue
		}
		metrics[name] = sum / float64(a.total) * 100
	}
	rep := Report{
		Metrics:  metrics,
		Order:    append([]string(nil), a.order...),
		Total:    a.total,
		NotFound: a.notFound,
	}
	if a.verdicts {
		rep.Positive = a.positive
		rep.Negative = a.total - a.positive
	}
	return rep
}

// Report is the finalized summary of an evaluation run.
type Report struct {
	// Title is the banner heading, default EVALUATION RESULTS
	Title string
	// Metrics maps metric name to its percentage over scored examples
	Metrics map[string]float64
	// Order fixes the metric display order; empty means lexical
	Order []string
	// Total is the number of examples successfully scored
	Total int
	// NotFound is the number of predictions with no gold match
	NotFound int
	// PositiveLabel and NegativeLabel name the judge verdict counters.
	// The counters render only when the labels are set.
	PositiveLabel string
	NegativeLabel string
	Positive      int
	Negative      int
}

// String renders the summary banner.
func (r Report) String() string {
	var b strings.Builder
	line := strings.Repeat("=", 50)
	title := r.Title
	if title == "" {
		title = "EVALUATION RESULTS"
	}
	fmt.Fprintf(&b, "%s\n%s\n%s\n", line, title, line)
	fmt.Fprintf(&b, "Total evaluated: %d\n", r.Total)
	fmt.Fprintf(&b, "Not found: %d\n", r.NotFound)
	if r.PositiveLabel != "" {
		fmt.Fprintf(&b, "%s: %d\n", r.PositiveLabel, r.Positive)
		fmt.Fprintf(&b, "%s: %d\n", r.NegativeLabel, r.Negative)
	}
	b.WriteString("\n")
	for _, name := range r.metricNames() {
		fmt.Fprintf(&b, "%s: %.1f%%\n", metricLabel(name), r.Metrics[name])
	}
	b.WriteString(line)
	return b.String()
}

// metricNames returns metrics in display order.
func (r Report) metricNames() []string {
	if len(r.Order) > 0 {
		return r.Order
	}
	names := make([]string, 0, len(r.Metrics))
	for name := range r.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var metricLabels = map[string]string{
	"bleu":    "BLEU",
	"rouge_1": "ROUGE-1",
	"rouge_2": "ROUGE-2",
	"rouge_l": "ROUGE-L",
	"nli_acc": "NLI-Acc",
	"type_em": "Type EM",
	"cot_acc": "CoT-Acc",
}

func metricLabel(name string) string {
	if label, ok := metricLabels[name]; ok {
		return label
	}
	return name
}
