package memory

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"finance-dashboard-go/internal/store"
)

// Store keeps rows per table in insertion order. It is safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	schema store.Schema
	tables map[string][]store.Row
}

func New(schema store.Schema) *Store {
	return &Store{schema: schema, tables: make(map[string][]store.Row)}
}

func (s *Store) FindOne(ctx context.Context, table, field string, value any) (store.Row, error) {
	rows, err := s.FindMany(ctx, store.Query{Table: table, Filters: []store.Filter{{Field: field, Value: value}}, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, store.ErrNotFound
	}
	return rows[0], nil
}

func (s *Store) FindMany(ctx context.Context, q store.Query) ([]store.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := q.Check(s.schema); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []store.Row{}
	for _, r := range s.tables[q.Table] {
		if matches(r, q.Filters) {
			out = append(out, maps.Clone(r))
		}
	}
	if q.OrderBy != "" {
		sort.SliceStable(out, func(i, j int) bool {
			c := compare(out[i][q.OrderBy], out[j][q.OrderBy])
			if q.Descending {
				return c > 0
			}
			return c < 0
		})
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

// Insert stores a copy of row, assigning an id and created_at when absent.
func (s *Store) Insert(ctx context.Context, table string, row store.Row) (store.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.schema.CheckRow(table, row); err != nil {
		return nil, err
	}
	r := s.schema.Stamp(table, row, uuid.NewString(), time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[table] = append(s.tables[table], r)
	return maps.Clone(r), nil
}

// Len returns the number of rows in table.
func (s *Store) Len(table string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tables[table])
}

func matches(r store.Row, filters []store.Filter) bool {
	for _, f := range filters {
		if fmt.Sprint(r[f.Field]) != fmt.Sprint(f.Value) {
			return false
		}
	}
	return true
}

// compare orders nil last and falls back to string comparison for mixed types.
func compare(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	switch x := a.(type) {
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	case decimal.Decimal:
		if y, ok := b.(decimal.Decimal); ok {
			return x.Cmp(y)
		}
	case int:
		if y, ok := b.(int); ok {
			return cmpOrdered(x, y)
		}
	case int64:
		if y, ok := b.(int64); ok {
			return cmpOrdered(x, y)
		}
	case float64:
		if y, ok := b.(float64); ok {
			return cmpOrdered(x, y)
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func cmpOrdered[T int | int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
