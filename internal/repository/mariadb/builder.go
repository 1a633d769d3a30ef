package mariadb

import "strings"

// patchBuilder accumulates SET clauses for a sparse UPDATE. Only columns the
// caller explicitly adds end up in the statement, so unset patch fields are
// never touched.
type patchBuilder struct {
	assignments []string
	args        []any
}

func (b *patchBuilder) set(column string, value any) {
	b.assignments = append(b.assignments, column+" = ?")
	b.args = append(b.args, value)
}

func (b *patchBuilder) empty() bool { return len(b.assignments) == 0 }

func (b *patchBuilder) update(table string, id int64) (string, []any) {
	query := "UPDATE " + table + " SET " + strings.Join(b.assignments, ", ") + " WHERE id = ?"
	return query, append(b.args, id)
}
