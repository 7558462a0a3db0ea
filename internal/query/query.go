// Package query parses search query strings such as
//
//	type:expense status:all category:Travel,Meals merchant:"Blue Bottle" date>2024-01-01 coffee
//
// into a structured Query, renders them back to a canonical form and derives
// the numeric hash used to identify saved searches.
package query

import (
	"math"
	"sort"
	"strings"

	"github.com/zeebo/xxh3"
)

const (
	DefaultType   = "expense"
	DefaultStatus = "all"
)

// Operator is the comparison between a filter key and its values.
type Operator string

const (
	OpEqual        Operator = ":"
	OpNotEqual     Operator = "!="
	OpLess         Operator = "<"
	OpLessEqual    Operator = "<="
	OpGreater      Operator = ">"
	OpGreaterEqual Operator = ">="
)

// operators is ordered so two-character operators are tried first.
var operators = []Operator{OpNotEqual, OpLessEqual, OpGreaterEqual, OpEqual, OpLess, OpGreater}

// Filter is a key/operator/values triple such as category:Travel,Meals.
type Filter struct {
	Key      string
	Operator Operator
	Values   []string
}

// Query is a parsed search query.
type Query struct {
	Type      string
	Status    string
	Workspace string
	Filters   []Filter
	Text      []string
}

var filterKeys = map[string]string{
	"date":         "date",
	"amount":       "amount",
	"merchant":     "merchant",
	"category":     "category",
	"tag":          "tag",
	"currency":     "currency",
	"description":  "description",
	"from":         "from",
	"to":           "to",
	"in":           "in",
	"card":         "card",
	"taxrate":      "taxrate",
	"tax-rate":     "taxrate",
	"reportid":     "reportid",
	"expensetype":  "expensetype",
	"expense-type": "expensetype",
	"keyword":      "keyword",
}

// Parse never fails: unknown operators and malformed tokens become free text.
func Parse(input string) *Query {
	q := &Query{}
	for _, token := range tokenize(input) {
		if isQuotedPhrase(token) {
			q.Text = append(q.Text, unquote(token))
			continue
		}
		key, op, value, ok := splitToken(token)
		if !ok {
			q.Text = append(q.Text, token)
			continue
		}
		switch key {
		case "type":
			if op == OpEqual && value != "" {
				q.Type = strings.ToLower(unquote(value))
				continue
			}
		case "status":
			if op == OpEqual && value != "" {
				q.Status = strings.ToLower(unquote(value))
				continue
			}
		case "workspace", "policyid":
			if op == OpEqual && value != "" {
				q.Workspace = unquote(value)
				continue
			}
		default:
			if canonical, known := filterKeys[key]; known {
				values := splitValues(value)
				if len(values) > 0 {
					q.addFilter(Filter{Key: canonical, Operator: op, Values: values})
					continue
				}
			}
		}
		q.Text = append(q.Text, token)
	}
	return q
}

func (q *Query) addFilter(f Filter) {
	for i := range q.Filters {
		if q.Filters[i].Key == f.Key && q.Filters[i].Operator == f.Operator {
			q.Filters[i].Values = append(q.Filters[i].Values, f.Values...)
			return
		}
	}
	q.Filters = append(q.Filters, f)
}

// TypeOrDefault returns the query type, defaulting to expenses.
func (q *Query) TypeOrDefault() string {
	if q.Type == "" {
		return DefaultType
	}
	return q.Type
}

// StatusOrDefault returns the query status, defaulting to all.
func (q *Query) StatusOrDefault() string {
	if q.Status == "" {
		return DefaultStatus
	}
	return q.Status
}

// WithWorkspace returns a copy of the query scoped to workspaceID. An empty
// workspace leaves the query unchanged.
func (q *Query) WithWorkspace(workspaceID string) *Query {
	dup := q.Clone()
	if strings.TrimSpace(workspaceID) != "" {
		dup.Workspace = strings.TrimSpace(workspaceID)
	}
	return dup
}

// Unscoped returns a copy of the query without its workspace.
func (q *Query) Unscoped() *Query {
	dup := q.Clone()
	dup.Workspace = ""
	return dup
}

// Canonical renders the query in a normalised form: type and status first,
// then filters sorted by key and operator with sorted values, then the
// workspace and finally free text in input order.
func (q *Query) Canonical() string {
	parts := []string{
		"type:" + q.TypeOrDefault(),
		"status:" + q.StatusOrDefault(),
	}
	filters := make([]Filter, len(q.Filters))
	copy(filters, q.Filters)
	sort.SliceStable(filters, func(i, j int) bool {
		if filters[i].Key != filters[j].Key {
			return filters[i].Key < filters[j].Key
		}
		return filters[i].Operator < filters[j].Operator
	})
	for _, f := range filters {
		values := make([]string, 0, len(f.Values))
		for _, v := range f.Values {
			values = append(values, quoteIfNeeded(v))
		}
		sort.Strings(values)
		parts = append(parts, f.Key+string(f.Operator)+strings.Join(values, ","))
	}
	if q.Workspace != "" {
		parts = append(parts, "workspace:"+quoteIfNeeded(q.Workspace))
	}
	for _, text := range q.Text {
		parts = append(parts, quoteIfNeeded(text))
	}
	return strings.Join(parts, " ")
}

// Hash is the numeric identifier of the query: the xxh3 hash of the
// canonical form, masked to a non-negative int64.
func (q *Query) Hash() int64 {
	return HashString(q.Canonical())
}

// HashString hashes an already canonical query string.
func HashString(canonical string) int64 {
	return int64(xxh3.HashString(canonical) & math.MaxInt64)
}

// Clone returns a deep copy of the query.
func (q *Query) Clone() *Query {
	dup := &Query{
		Type:      q.Type,
		Status:    q.Status,
		Workspace: q.Workspace,
		Text:      append([]string(nil), q.Text...),
	}
	for _, f := range q.Filters {
		dup.Filters = append(dup.Filters, Filter{
			Key:      f.Key,
			Operator: f.Operator,
			Values:   append([]string(nil), f.Values...),
		})
	}
	return dup
}

func splitToken(token string) (string, Operator, string, bool) {
	best := -1
	var bestOp Operator
	for _, op := range operators {
		idx := strings.Index(token, string(op))
		if idx <= 0 {
			continue
		}
		if best == -1 || idx < best {
			best = idx
			bestOp = op
		}
	}
	if best == -1 {
		return "", "", "", false
	}
	key := strings.ToLower(token[:best])
	return key, bestOp, token[best+len(bestOp):], true
}

// splitValues splits a comma separated list, keeping quoted items whole.
func splitValues(value string) []string {
	var values []string
	var current strings.Builder
	inQuotes := false
	flush := func() {
		if v := strings.TrimSpace(current.String()); v != "" {
			values = append(values, v)
		}
		current.Reset()
	}
	for _, r := range value {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return values
}

func quoteIfNeeded(s string) string {
	if strings.ContainsAny(s, " \t,:") {
		return "\"" + s + "\""
	}
	return s
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

func isQuotedPhrase(token string) bool {
	return len(token) > 2 && token[0] == '"' && token[len(token)-1] == '"'
}

// tokenize splits on whitespace while keeping quoted phrases and
// key:"quoted value" pairs together.
func tokenize(input string) []string {
	var tokens []string
	var current strings.Builder
	inQuotes := false
	for _, r := range input {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			current.WriteRune(r)
		case (r == ' ' || r == '\t' || r == '\n') && !inQuotes:
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens
}
