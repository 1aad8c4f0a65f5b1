package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"finance-dashboard-go/internal/models"
	"finance-dashboard-go/internal/store"
)

type StoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *Store
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = New(models.Schema())
}

func (s *StoreTestSuite) TestInsertAssignsID() {
	row, err := s.store.Insert(s.ctx, models.TableUsers, store.Row{"matricula": "1"})
	s.Require().NoError(err)
	s.NotEmpty(row["id"])
	s.NotNil(row["created_at"])
	s.Equal(1, s.store.Len(models.TableUsers))
}

func (s *StoreTestSuite) TestInsertRejectsUnknownColumn() {
	_, err := s.store.Insert(s.ctx, models.TableUsers, store.Row{"password": "x"})
	s.Error(err)
	_, err = s.store.Insert(s.ctx, "accounts", store.Row{})
	s.Error(err)
}

func (s *StoreTestSuite) TestFindOne() {
	_, err := s.store.Insert(s.ctx, models.TableUsers, store.Row{"matricula": "42", "name": "Maria"})
	s.Require().NoError(err)

	row, err := s.store.FindOne(s.ctx, models.TableUsers, "matricula", "42")
	s.Require().NoError(err)
	s.Equal("Maria", row["name"])

	_, err = s.store.FindOne(s.ctx, models.TableUsers, "matricula", "nope")
	s.ErrorIs(err, store.ErrNotFound)
}

func (s *StoreTestSuite) TestFindManyOrderAndLimit() {
	base := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	for i, title := range []string{"b", "a", "c"} {
		_, err := s.store.Insert(s.ctx, models.TableReminders, store.Row{
			"user_id":  "u1",
			"title":    title,
			"status":   "pending",
			"due_date": base.AddDate(0, 0, []int{2, 1, 3}[i]),
		})
		s.Require().NoError(err)
	}
	_, err := s.store.Insert(s.ctx, models.TableReminders, store.Row{"user_id": "u2", "title": "other", "status": "pending"})
	s.Require().NoError(err)

	rows, err := s.store.FindMany(s.ctx, store.Query{Table: models.TableReminders, OrderBy: "due_date", Limit: 2}.
		Where("user_id", "u1").Where("status", "pending"))
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal("a", rows[0]["title"])
	s.Equal("b", rows[1]["title"])

	rows, err = s.store.FindMany(s.ctx, store.Query{Table: models.TableReminders, OrderBy: "due_date", Descending: true}.
		Where("user_id", "u1"))
	s.Require().NoError(err)
	s.Equal("c", rows[0]["title"])
}

func (s *StoreTestSuite) TestFindManyRejectsUnknownField() {
	_, err := s.store.FindMany(s.ctx, store.Query{Table: models.TableTransactions}.Where("1=1; --", 1))
	s.Error(err)
}

func (s *StoreTestSuite) TestReturnedRowsAreCopies() {
	_, err := s.store.Insert(s.ctx, models.TableUsers, store.Row{"matricula": "1", "name": "A"})
	s.Require().NoError(err)

	row, err := s.store.FindOne(s.ctx, models.TableUsers, "matricula", "1")
	s.Require().NoError(err)
	row["name"] = "changed"

	again, err := s.store.FindOne(s.ctx, models.TableUsers, "matricula", "1")
	s.Require().NoError(err)
	s.Equal("A", again["name"])
}

func (s *StoreTestSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err := s.store.FindMany(ctx, store.Query{Table: models.TableUsers})
	s.ErrorIs(err, context.Canceled)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	s := New(models.Schema())
	require.NoError(t, Seed(ctx, s, time.Now()))

	row, err := s.FindOne(ctx, models.TableUsers, "matricula", DemoMembership)
	require.NoError(t, err)
	user, err := models.UserFromRow(row)
	require.NoError(t, err)
	assert.True(t, user.ActivePlan)

	rows, err := s.FindMany(ctx, store.Query{Table: models.TableTransactions}.Where("user_id", user.ID))
	require.NoError(t, err)
	assert.Len(t, rows, len(demoTransactions))
	assert.Equal(t, 2, s.Len(models.TableCreditCards))
}
