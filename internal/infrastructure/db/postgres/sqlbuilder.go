package postgres

import (
	"fmt"
	"sort"
	"strings"

	"github.com/joblyhq/jobs-api/internal/core/domain"
)

// PartialUpdate builds a parameterized UPDATE for the supplied subset of
// columns:
//
//	UPDATE <table> SET c1 = $1, c2 = $2 WHERE <keyCol> = $3 RETURNING *
//
// Columns are emitted in sorted order and the argument slice matches the
// placeholders exactly, key value last. An empty fields map and any attempt
// to set the key column itself are rejected.
func PartialUpdate(table, keyCol string, keyVal any, fields domain.UpdateFields) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, domain.ErrNoUpdateFields
	}
	if _, ok := fields[keyCol]; ok {
		return "", nil, domain.ErrKeyFieldUpdate
	}

	cols := make([]string, 0, len(fields))
	for col := range fields {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	sets := make([]string, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, col := range cols {
		sets[i] = fmt.Sprintf("%s = $%d", col, i+1)
		args = append(args, fields[col])
	}
	args = append(args, keyVal)

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = $%d RETURNING *",
		table, strings.Join(sets, ", "), keyCol, len(args),
	)
	return query, args, nil
}

// WhereBuilder accumulates conjunctive predicates with positional
// placeholders. Each predicate's placeholder index is derived from the
// argument count at append time, so placeholders and arguments cannot
// drift apart.
type WhereBuilder struct {
	conds []string
	args  []any
}

// And appends a predicate. expr must contain a single %d verb marking the
// placeholder position, e.g. "num_employees >= $%d".
func (b *WhereBuilder) And(expr string, val any) {
	b.args = append(b.args, val)
	b.conds = append(b.conds, fmt.Sprintf(expr, len(b.args)))
}

// Clause renders the predicates as a WHERE clause with a leading space, or
// an empty string when no predicate was added.
func (b *WhereBuilder) Clause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// Args returns the accumulated argument list in placeholder order.
func (b *WhereBuilder) Args() []any {
	return b.args
}
