package dto

import (
	"fmt"
	"maps"
	"strings"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorLike      = "like"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

var comparisons = map[string]string{
	FilterOperatorEq:        "=",
	FilterOperatorLessEq:    "<=",
	FilterOperatorGreaterEq: ">=",
}

// Filter compares one column with a bound value. ArgName overrides the
// parameter name when a group uses the same column twice.
type Filter struct {
	Field    string
	Operator string
	Value    any
	ArgName  string
}

// GetWhereClause renders the condition with a named parameter. An unknown
// operator renders nothing.
func (f *Filter) GetWhereClause() (string, map[string]any) {
	name := f.ArgName
	if name == "" {
		name = f.Field
	}

	if f.Operator == FilterOperatorLike {
		return fmt.Sprintf("LOWER(%s) LIKE LOWER(:%s)", f.Field, name),
			map[string]any{name: fmt.Sprintf("%%%v%%", f.Value)}
	}

	symbol, ok := comparisons[f.Operator]
	if !ok {
		return "", map[string]any{}
	}

	return fmt.Sprintf("%s %s :%s", f.Field, symbol, name), map[string]any{name: f.Value}
}

// FilterGroup joins Filter and nested FilterGroup values with Operator.
type FilterGroup struct {
	Filters  []any
	Operator string
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	clauses := make([]string, 0, len(f.Filters))

	for _, item := range f.Filters {
		var (
			clause   string
			itemArgs map[string]any
		)

		switch v := item.(type) {
		case Filter:
			clause, itemArgs = v.GetWhereClause()
		case FilterGroup:
			clause, itemArgs = v.GetWhereClause()
		}

		if clause == "" {
			continue
		}

		clauses = append(clauses, clause)
		maps.Copy(args, itemArgs)
	}

	if len(clauses) == 0 {
		return "", args
	}

	return "(" + strings.Join(clauses, " "+f.Operator+" ") + ")", args
}
