package store

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"time"
)

// ErrNotFound is returned by FindOne when no row matches.
var ErrNotFound = errors.New("record not found")

// Row is a single persisted record keyed by column name.
type Row map[string]any

// Filter is an equality match on one column.
type Filter struct {
	Field string
	Value any
}

// Query describes a FindMany read. Filters are ANDed. A zero Limit means no limit.
type Query struct {
	Table      string
	Filters    []Filter
	OrderBy    string
	Descending bool
	Limit      int
}

// Where returns a copy of q with an extra equality filter.
func (q Query) Where(field string, value any) Query {
	filters := make([]Filter, 0, len(q.Filters)+1)
	filters = append(filters, q.Filters...)
	q.Filters = append(filters, Filter{Field: field, Value: value})
	return q
}

// Client is the record store the dashboard reads from and appends to.
type Client interface {
	FindOne(ctx context.Context, table, field string, value any) (Row, error)
	FindMany(ctx context.Context, q Query) ([]Row, error)
	Insert(ctx context.Context, table string, row Row) (Row, error)
}

// Check validates the table and every column the query touches against the schema.
func (q Query) Check(s Schema) error {
	if err := s.CheckColumn(q.Table, ""); err != nil {
		return err
	}
	for _, f := range q.Filters {
		if err := s.CheckColumn(q.Table, f.Field); err != nil {
			return err
		}
	}
	if q.OrderBy != "" {
		if err := s.CheckColumn(q.Table, q.OrderBy); err != nil {
			return err
		}
	}
	if q.Limit < 0 {
		return fmt.Errorf("negative limit %d", q.Limit)
	}
	return nil
}

// Schema lists the known columns per table. Adapters refuse anything else.
type Schema map[string][]string

// CheckColumn reports whether table exists and, when column is non-empty, has that column.
func (s Schema) CheckColumn(table, column string) error {
	cols, ok := s[table]
	if !ok {
		return fmt.Errorf("unknown table %q", table)
	}
	if column == "" {
		return nil
	}
	for _, c := range cols {
		if c == column {
			return nil
		}
	}
	return fmt.Errorf("unknown column %q in table %q", column, table)
}

// CheckRow validates every key of row against the table's columns.
func (s Schema) CheckRow(table string, row Row) error {
	if err := s.CheckColumn(table, ""); err != nil {
		return err
	}
	for k := range row {
		if err := s.CheckColumn(table, k); err != nil {
			return err
		}
	}
	return nil
}

// Stamp returns a copy of row with id and created_at filled in when the
// table has those columns and row leaves them unset.
func (s Schema) Stamp(table string, row Row, id string, now time.Time) Row {
	out := maps.Clone(row)
	if out == nil {
		out = Row{}
	}
	if _, ok := out["id"]; !ok && s.CheckColumn(table, "id") == nil {
		out["id"] = id
	}
	if _, ok := out["created_at"]; !ok && s.CheckColumn(table, "created_at") == nil {
		out["created_at"] = now
	}
	return out
}
