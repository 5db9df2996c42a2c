// Package dataset loads benchmark prediction and gold files and joins them
// on a configurable secondary key.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// StringList accepts either a JSON string or an array of strings. Several
// gold fields (sentences, logical_labels) and all prediction values come in
// both shapes depending on the dataset export.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = StringList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("value is neither string nor string list: %w", err)
	}
	*l = StringList(many)
	return nil
}

// First returns the canonical (first) element, or "" when empty.
func (l StringList) First() string {
	if len(l) == 0 {
		return ""
	}
	return l[0]
}

// Join returns the elements joined with single spaces.
func (l StringList) Join() string {
	return strings.Join(l, " ")
}

// GoldExample is one gold record. Typed fields cover everything the scorers
// read; scalar fields are additionally retained stringified so the join key
// stays configurable per dataset without the matcher knowing field names.
type GoldExample struct {
	TableText     string
	Question      string
	Answer        string
	Sentences     StringList
	LogicalLabels StringList

	keys map[string]string
}

type goldFields struct {
	TableText     string     `json:"table_text"`
	Question      string     `json:"question"`
	Answer        string     `json:"answer"`
	Sentences     StringList `json:"sentences"`
	LogicalLabels StringList `json:"logical_labels"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (g *GoldExample) UnmarshalJSON(data []byte) error {
	var fields goldFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	g.TableText = fields.TableText
	g.Question = fields.Question
	g.Answer = fields.Answer
	g.Sentences = fields.Sentences
	g.LogicalLabels = fields.LogicalLabels

	// Keep every scalar field as a string so numeric-looking keys (feta_id
	// is a number in some exports) compare equal across datasets.
	g.keys = make(map[string]string, len(raw))
	for name, value := range raw {
		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			g.keys[name] = s
			continue
		}
		var n float64
		if err := json.Unmarshal(value, &n); err == nil {
			g.keys[name] = strconv.FormatFloat(n, 'f', -1, 64)
		}
	}
	return nil
}

// Key returns the stringified value of a scalar field, for joining.
func (g GoldExample) Key(field string) (string, bool) {
	v, ok := g.keys[field]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// HasLogicalLabels reports whether the record carries logical-operation
// labels (LoTNLG exports do, LogicNLG exports do not).
func (g GoldExample) HasLogicalLabels() bool {
	return len(g.LogicalLabels) > 0
}

// Gold is the gold set keyed by its internal index.
type Gold map[string]GoldExample

// Predictions maps secondary keys to prediction text. List-valued
// predictions are joined with single spaces by Text.
type Predictions map[string]StringList

// Text returns the effective prediction string for a key.
func (p Predictions) Text(key string) string {
	return p[key].Join()
}

// LoadGold reads a gold JSON file.
func LoadGold(path string) (Gold, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read gold file: %w", err)
	}
	var gold Gold
	if err := json.Unmarshal(data, &gold); err != nil {
		return nil, fmt.Errorf("decode gold file %s: %w", path, err)
	}
	return gold, nil
}

// LoadPredictions reads a predictions JSON file.
func LoadPredictions(path string) (Predictions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read predictions file: %w", err)
	}
	var preds Predictions
	if err := json.Unmarshal(data, &preds); err != nil {
		return nil, fmt.Errorf("decode predictions file %s: %w", path, err)
	}
	return preds, nil
}
