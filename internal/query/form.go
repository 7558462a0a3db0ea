package query

import (
	"sort"
	"strings"
)

// FilterFormValues is the state of the advanced filter editor, keyed by form
// field name.
type FilterFormValues map[string]string

// Keys returns the populated field names in sorted order.
func (v FilterFormValues) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var listFields = map[string]string{
	"merchant":    "merchant",
	"category":    "category",
	"tag":         "tag",
	"currency":    "currency",
	"description": "description",
	"from":        "from",
	"to":          "to",
	"in":          "in",
	"card":        "cardID",
	"taxrate":     "taxRate",
	"reportid":    "reportID",
	"expensetype": "expenseType",
}

var rangeFields = map[string]map[Operator]string{
	"date": {
		OpEqual:        "dateOn",
		OpGreater:      "dateAfter",
		OpGreaterEqual: "dateAfter",
		OpLess:         "dateBefore",
		OpLessEqual:    "dateBefore",
	},
	"amount": {
		OpEqual:        "amountEqualTo",
		OpGreater:      "amountGreaterThan",
		OpGreaterEqual: "amountGreaterThan",
		OpLess:         "amountLessThan",
		OpLessEqual:    "amountLessThan",
	},
}

// FormValues pre-populates the advanced filter editor from the query.
// Negated filters have no form field and are dropped.
func (q *Query) FormValues() FilterFormValues {
	values := FilterFormValues{
		"type":   q.TypeOrDefault(),
		"status": q.StatusOrDefault(),
	}
	if q.Workspace != "" {
		values["policyID"] = q.Workspace
	}
	var keywords []string
	for _, f := range q.Filters {
		if ops, ok := rangeFields[f.Key]; ok {
			if field, ok := ops[f.Operator]; ok && len(f.Values) > 0 {
				values[field] = f.Values[len(f.Values)-1]
			}
			continue
		}
		if f.Operator != OpEqual {
			continue
		}
		if f.Key == "keyword" {
			keywords = append(keywords, f.Values...)
			continue
		}
		if field, ok := listFields[f.Key]; ok {
			vals := append([]string(nil), f.Values...)
			sort.Strings(vals)
			values[field] = strings.Join(vals, ",")
		}
	}
	keywords = append(keywords, q.Text...)
	if len(keywords) > 0 {
		values["keyword"] = strings.Join(keywords, " ")
	}
	return values
}

// WorkspaceID returns the workspace the query is scoped to, or "".
func (q *Query) WorkspaceID() string {
	return q.Workspace
}
