// Package postgres implements store.Client on top of gorm and the postgres driver.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"finance-dashboard-go/internal/store"
)

type Store struct {
	db     *gorm.DB
	schema store.Schema
	log    logrus.FieldLogger
}

func New(db *gorm.DB, schema store.Schema, log logrus.FieldLogger) *Store {
	return &Store{db: db, schema: schema, log: log.WithField("component", "store.postgres")}
}

func (s *Store) FindOne(ctx context.Context, table, field string, value any) (store.Row, error) {
	if err := s.schema.CheckColumn(table, field); err != nil {
		return nil, err
	}
	row := map[string]any{}
	err := s.db.WithContext(ctx).
		Table(table).
		Where(clause.Eq{Column: clause.Column{Name: field}, Value: value}).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && len(row) == 0) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find %s by %s: %w", table, field, err)
	}
	return store.Row(row), nil
}

func (s *Store) FindMany(ctx context.Context, q store.Query) ([]store.Row, error) {
	if err := q.Check(s.schema); err != nil {
		return nil, err
	}
	tx := s.db.WithContext(ctx).Table(q.Table)
	for _, f := range q.Filters {
		tx = tx.Where(clause.Eq{Column: clause.Column{Name: f.Field}, Value: f.Value})
	}
	if q.OrderBy != "" {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: q.OrderBy}, Desc: q.Descending})
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var rows []map[string]any
	if err := tx.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", q.Table, err)
	}
	out := make([]store.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, store.Row(r))
	}
	s.log.WithFields(logrus.Fields{"table": q.Table, "rows": len(out)}).Debug("query")
	return out, nil
}

// Insert writes row with a client-generated id, so the returned row carries
// the primary key without a read back.
func (s *Store) Insert(ctx context.Context, table string, row store.Row) (store.Row, error) {
	if err := s.schema.CheckRow(table, row); err != nil {
		return nil, err
	}
	r := s.schema.Stamp(table, row, uuid.NewString(), time.Now())
	if err := s.db.WithContext(ctx).Table(table).Create(map[string]any(r)).Error; err != nil {
		return nil, fmt.Errorf("insert %s: %w", table, err)
	}
	return maps.Clone(r), nil
}
