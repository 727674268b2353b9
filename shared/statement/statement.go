// Package statement builds INSERT, UPDATE and DELETE statement text with
// positional bind parameters against an arbitrary table or view name.
package statement

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"link/shared/failure"
)

// Strings starting with this prefix are treated as timestamps and bound
// without the ::text annotation. Values outside the 2010s fall through to the
// text cast.
const dateLikePrefix = "201"

const textCast = "::text"

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type absent struct{}

// Absent marks an update candidate the caller does not want to change. It is
// distinct from nil, which sets the column to NULL.
var Absent any = absent{}

// Statement is statement text plus its positional arguments.
type Statement struct {
	Query string
	Args  []any
}

// Key is one column of a primary key predicate.
type Key struct {
	Column string
	Value  int64
}

// Optional maps a nil pointer to Absent and anything else to its value.
func Optional[T any](value *T) any {
	if value == nil {
		return Absent
	}

	return *value
}

// Nullable maps a nil pointer to NULL and anything else to its value.
func Nullable[T any](value *T) any {
	if value == nil {
		return nil
	}

	return *value
}

// IsAbsent reports whether value is the Absent sentinel.
func IsAbsent(value any) bool {
	_, ok := value.(absent)

	return ok
}

// Insert builds INSERT INTO table(cols) VALUES (placeholders) RETURNING pk.
func Insert(table, primaryColumn string, columns []string, values []any) (Statement, error) {
	if len(columns) != len(values) {
		return Statement{}, failure.InternalError(fmt.Errorf("insert into %s: %d columns for %d values", table, len(columns), len(values)))
	}

	if len(columns) == 0 {
		return Statement{}, failure.InternalError(fmt.Errorf("insert into %s: no columns", table))
	}

	if err := checkIdentifiers(append([]string{table, primaryColumn}, columns...)...); err != nil {
		return Statement{}, err
	}

	placeholders := make([]string, len(values))
	for i, value := range values {
		placeholders[i] = placeholder(i+1, value)
	}

	query := fmt.Sprintf("INSERT INTO %s(%s) VALUES (%s) RETURNING %s;",
		table, strings.Join(columns, ","), strings.Join(placeholders, ","), primaryColumn)

	return Statement{Query: query, Args: values}, nil
}

// InsertDefaults builds INSERT INTO table DEFAULT VALUES RETURNING pk for
// tables whose only column is the generated key.
func InsertDefaults(table, primaryColumn string) (Statement, error) {
	if err := checkIdentifiers(table, primaryColumn); err != nil {
		return Statement{}, err
	}

	return Statement{Query: fmt.Sprintf("INSERT INTO %s DEFAULT VALUES RETURNING %s;", table, primaryColumn)}, nil
}

// ValidIdentifier reports whether name can be spliced into statement text.
func ValidIdentifier(name string) bool {
	return identifierPattern.MatchString(name)
}

func placeholder(position int, value any) string {
	ph := "$" + strconv.Itoa(position)

	if str, ok := value.(string); ok && !strings.HasPrefix(str, dateLikePrefix) {
		return ph + textCast
	}

	return ph
}

// Prune drops every (name, value) pair whose value is Absent.
func Prune(names []string, values []any) ([]string, []any, error) {
	if len(names) != len(values) {
		return nil, nil, failure.InternalError(fmt.Errorf("%d update candidates for %d values", len(names), len(values)))
	}

	keptNames := make([]string, 0, len(names))
	keptValues := make([]any, 0, len(values))

	for i, value := range values {
		if IsAbsent(value) {
			continue
		}

		keptNames = append(keptNames, names[i])
		keptValues = append(keptValues, value)
	}

	return keptNames, keptValues, nil
}

// Update builds UPDATE table SET ... WHERE pk = id over the candidates that
// are not Absent. The id is embedded as a literal.
func Update(table, primaryColumn string, id int64, names []string, values []any) (Statement, error) {
	return UpdateComposite(table, []Key{{Column: primaryColumn, Value: id}}, names, values)
}

// UpdateComposite is Update for tables keyed by more than one column.
func UpdateComposite(table string, keys []Key, names []string, values []any) (Statement, error) {
	names, values, err := Prune(names, values)
	if err != nil {
		return Statement{}, err
	}

	if len(names) == 0 {
		return Statement{}, failure.NoValidParameters()
	}

	if err := checkIdentifiers(append([]string{table}, names...)...); err != nil {
		return Statement{}, err
	}

	predicate, err := literalPredicate(keys)
	if err != nil {
		return Statement{}, err
	}

	assignments := make([]string, len(names))
	for i, name := range names {
		assignments[i] = fmt.Sprintf("%s = $%d", name, i+1)
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s", table, strings.Join(assignments, ","), predicate)

	return Statement{Query: query, Args: values}, nil
}

// IncrementWithin adds amount to column on the row with the given key, only
// while the result stays at or below ceiling. Zero rows affected means the row
// is missing or the ceiling would be crossed.
func IncrementWithin(table, primaryColumn string, id int64, column, ceiling string, amount any) (Statement, error) {
	if err := checkIdentifiers(table, column, ceiling); err != nil {
		return Statement{}, err
	}

	predicate, err := literalPredicate([]Key{{Column: primaryColumn, Value: id}})
	if err != nil {
		return Statement{}, err
	}

	query := fmt.Sprintf("UPDATE %s SET %s = %s + $1 WHERE %s AND %s + $1 <= %s",
		table, column, column, predicate, column, ceiling)

	return Statement{Query: query, Args: []any{amount}}, nil
}

// Delete builds DELETE FROM table WHERE pk = $1.
func Delete(table, primaryColumn string, id int64) (Statement, error) {
	return DeleteComposite(table, []Key{{Column: primaryColumn, Value: id}})
}

// DeleteComposite binds every key column positionally.
func DeleteComposite(table string, keys []Key) (Statement, error) {
	if len(keys) == 0 {
		return Statement{}, failure.InternalError(fmt.Errorf("delete from %s: no key columns", table))
	}

	if err := checkIdentifiers(table); err != nil {
		return Statement{}, err
	}

	clauses := make([]string, len(keys))
	args := make([]any, len(keys))

	for i, key := range keys {
		if err := checkIdentifiers(key.Column); err != nil {
			return Statement{}, err
		}

		clauses[i] = fmt.Sprintf("%s = $%d", key.Column, i+1)
		args[i] = key.Value
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE %s", table, strings.Join(clauses, " AND "))

	return Statement{Query: query, Args: args}, nil
}

func literalPredicate(keys []Key) (string, error) {
	if len(keys) == 0 {
		return "", failure.InternalError(fmt.Errorf("update: no key columns"))
	}

	clauses := make([]string, len(keys))

	for i, key := range keys {
		if err := checkIdentifiers(key.Column); err != nil {
			return "", err
		}

		clauses[i] = fmt.Sprintf("%s = %d", key.Column, key.Value)
	}

	return strings.Join(clauses, " AND "), nil
}

func checkIdentifiers(identifiers ...string) error {
	for _, identifier := range identifiers {
		if !identifierPattern.MatchString(identifier) {
			return failure.InternalError(fmt.Errorf("invalid identifier %q", identifier))
		}
	}

	return nil
}
