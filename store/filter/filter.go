//
// See the file COPYRIGHT for copyright information.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package filter builds filtered, sorted SELECT statements from optional
// request parameters. Column and table identifiers only ever come from the
// per-entity allow-lists in entities.go; every request value is bound as a
// query parameter.
package filter

import (
	"fmt"
	"strings"
)

const (
	Ascending  = "asc"
	Descending = "desc"
)

type Query struct {
	table   string
	columns []string
	conds   []string
	args    []any
	orderBy string
}

func newQuery(table string, columns ...string) *Query {
	return &Query{
		table:   table,
		columns: columns,
	}
}

// Equal adds an exact-match condition. Empty values are skipped, so optional
// request parameters can be passed through unchecked.
func (q *Query) Equal(column string, value string) {
	if value == "" {
		return
	}
	q.conds = append(q.conds, column+" = ?")
	q.args = append(q.args, value)
}

// EqualInt is Equal for numeric ids.
func (q *Query) EqualInt(column string, value *int32) {
	if value == nil {
		return
	}
	q.conds = append(q.conds, column+" = ?")
	q.args = append(q.args, *value)
}

// Min adds a lower-bound condition when value is set.
func (q *Query) Min(column string, value *float64) {
	if value == nil {
		return
	}
	q.conds = append(q.conds, column+" >= ?")
	q.args = append(q.args, *value)
}

// Max adds an upper-bound condition when value is set.
func (q *Query) Max(column string, value *float64) {
	if value == nil {
		return
	}
	q.conds = append(q.conds, column+" <= ?")
	q.args = append(q.args, *value)
}

// Search adds a case-insensitive substring match ORed across the given
// columns. The term is bound once per column.
func (q *Query) Search(term string, columns ...string) {
	if term == "" || len(columns) == 0 {
		return
	}
	var ors []string
	for _, col := range columns {
		ors = append(ors, "lower("+col+") like ?")
		q.args = append(q.args, "%"+strings.ToLower(term)+"%")
	}
	q.conds = append(q.conds, "("+strings.Join(ors, " or ")+")")
}

// Sort sets the order-by clause. The requested sort key is looked up in the
// allow-list; anything unknown (including attempted injection) falls back to
// the default column. Only "asc" and "desc" are accepted as directions.
func (q *Query) Sort(requested, direction string, allowed map[string]string, fallback string) {
	column, ok := allowed[requested]
	if !ok {
		column = fallback
	}
	dir := "asc"
	if strings.EqualFold(direction, Descending) {
		dir = "desc"
	}
	q.orderBy = column + " " + dir
}

// SQL renders the statement and its bind arguments.
func (q *Query) SQL() (string, []any) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "select %s\nfrom %s\n", strings.Join(q.columns, ", "), q.table)
	if len(q.conds) > 0 {
		sb.WriteString("where " + strings.Join(q.conds, "\n  and ") + "\n")
	}
	if q.orderBy != "" {
		sb.WriteString("order by " + q.orderBy + "\n")
	}
	return sb.String(), q.args
}
