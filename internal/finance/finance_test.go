package finance

import (
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-dashboard-go/internal/models"
)

func tx(amount string, typ models.TransactionType, category string) models.Transaction {
	return models.Transaction{
		Amount:      decimal.RequireFromString(amount),
		AmountValid: true,
		Type:        typ,
		Category:    category,
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSummarizeExample(t *testing.T) {
	s := Summarize([]models.Transaction{
		tx("100", models.Income, ""),
		tx("40", models.Expense, "Food"),
		tx("10", models.Expense, "Food"),
	})

	assert.True(t, dec("100").Equal(s.TotalIncome))
	assert.True(t, dec("50").Equal(s.TotalExpense))
	assert.True(t, dec("50").Equal(s.NetBalance))
	require.Equal(t, 1, s.ExpenseByCategory.Len())
	food, ok := s.ExpenseByCategory.Get("Food")
	require.True(t, ok)
	assert.True(t, dec("50").Equal(food))
	assert.Equal(t, 3, s.Count)
}

func TestSummarizeEmpty(t *testing.T) {
	for _, in := range [][]models.Transaction{nil, {}} {
		s := Summarize(in)
		assert.True(t, s.TotalIncome.IsZero())
		assert.True(t, s.TotalExpense.IsZero())
		assert.True(t, s.NetBalance.IsZero())
		assert.Equal(t, 0, s.ExpenseByCategory.Len())
		assert.Empty(t, s.ExpenseByCategory.Items())
	}
}

func TestSummarizeUnrecognizedType(t *testing.T) {
	s := Summarize([]models.Transaction{
		tx("100", models.Income, ""),
		tx("999", models.TransactionType("transfer"), "Bank"),
	})
	assert.True(t, dec("100").Equal(s.TotalIncome))
	assert.True(t, s.TotalExpense.IsZero())
	assert.Equal(t, 1, s.Unrecognized)
	assert.Equal(t, 0, s.ExpenseByCategory.Len())
}

func TestSummarizeInvalidAmountCountsAsZero(t *testing.T) {
	bad := models.Transaction{Type: models.Expense, Category: "Food", Amount: decimal.Zero}
	s := Summarize([]models.Transaction{bad, tx("5", models.Expense, "Food")})

	assert.Equal(t, 2, s.Count)
	assert.Equal(t, 1, s.InvalidAmounts)
	assert.True(t, dec("5").Equal(s.TotalExpense))
}

func TestSummarizeBlankCategoryIsOther(t *testing.T) {
	s := Summarize([]models.Transaction{
		tx("3", models.Expense, ""),
		tx("2", models.Expense, "Lazer"),
		tx("4", models.Expense, ""),
	})
	other, ok := s.ExpenseByCategory.Get(OtherCategory)
	require.True(t, ok)
	assert.True(t, dec("7").Equal(other))
	assert.Equal(t, []string{OtherCategory, "Lazer"}, categoryNames(s.ExpenseByCategory))
}

func TestSummarizeIsOrderIndependent(t *testing.T) {
	txs := []models.Transaction{
		tx("0.10", models.Income, ""),
		tx("0.20", models.Expense, "A"),
		tx("1234.56", models.Income, "Salário"),
		tx("0.30", models.Expense, "B"),
		tx("99.99", models.Expense, "A"),
		tx("7", models.TransactionType("x"), ""),
	}
	want := Summarize(txs)
	assert.True(t, want.TotalIncome.Sub(want.TotalExpense).Equal(want.NetBalance))

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := append([]models.Transaction(nil), txs...)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		got := Summarize(shuffled)

		assert.True(t, want.TotalIncome.Equal(got.TotalIncome))
		assert.True(t, want.TotalExpense.Equal(got.TotalExpense))
		assert.True(t, want.NetBalance.Equal(got.NetBalance))
		assert.ElementsMatch(t, categoryNames(want.ExpenseByCategory), categoryNames(got.ExpenseByCategory))
		for _, item := range want.ExpenseByCategory.Items() {
			v, ok := got.ExpenseByCategory.Get(item.Category)
			require.True(t, ok)
			assert.True(t, item.Amount.Equal(v))
		}
	}
}

func TestCategoryTotalsJSON(t *testing.T) {
	s := Summarize([]models.Transaction{tx("1.5", models.Expense, "Food")})
	b, err := json.Marshal(s.ExpenseByCategory)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"category":"Food","amount":"1.5"}]`, string(b))

	b, err = json.Marshal(Summarize(nil).ExpenseByCategory)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(b))
}

func TestFilter(t *testing.T) {
	txs := []models.Transaction{
		tx("1", models.Expense, "Food"),
		tx("2", models.Income, "Salary"),
		tx("3", models.Expense, "Transport"),
		tx("4", models.Income, "Food"),
	}

	assert.Len(t, Filter{}.Apply(txs), 4)
	assert.Len(t, Filter{Category: "Food"}.Apply(txs), 2)
	assert.Len(t, Filter{Type: models.Income}.Apply(txs), 2)

	got := Filter{Category: "Food", Type: models.Expense}.Apply(txs)
	require.Len(t, got, 1)
	assert.True(t, dec("1").Equal(got[0].Amount))

	assert.Empty(t, Filter{Category: "Nope"}.Apply(txs))
}

func TestCategories(t *testing.T) {
	txs := []models.Transaction{
		tx("1", models.Expense, "Food"),
		tx("1", models.Expense, ""),
		tx("1", models.Income, "Salary"),
		tx("1", models.Expense, "Food"),
	}
	assert.Equal(t, []string{"Food", "Salary"}, Categories(txs))
	assert.Equal(t, []string{}, Categories(nil))
}

func TestMostUsedCard(t *testing.T) {
	_, ok := MostUsedCard(nil)
	assert.False(t, ok)

	cards := []models.CreditCard{
		{ID: "a", Name: "Inter", Used: dec("120")},
		{ID: "b", Name: "Nubank", Used: dec("850")},
		{ID: "c", Name: "Itaú", Used: dec("850")},
	}
	card, ok := MostUsedCard(cards)
	require.True(t, ok)
	assert.Equal(t, "Nubank", card.Name)
}

func TestUtilization(t *testing.T) {
	u := Utilization(models.CreditCard{Name: "Nubank", Limit: dec("1000"), Used: dec("650"), DueDay: 18})
	assert.True(t, dec("65").Equal(u.Percentage))
	assert.True(t, u.Warning)
	assert.True(t, dec("350").Equal(u.Available))

	u = Utilization(models.CreditCard{Limit: decimal.Zero, Used: dec("10")})
	assert.True(t, u.Percentage.IsZero())
	assert.False(t, u.Warning)
	assert.True(t, u.Available.IsZero())
}

func TestMonthlySeries(t *testing.T) {
	now := time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC)
	at := func(y int, m time.Month) time.Time { return time.Date(y, m, 3, 10, 0, 0, 0, time.UTC) }

	txs := []models.Transaction{
		{Amount: dec("4300"), Type: models.Income, CreatedAt: at(2024, time.September)},
		{Amount: dec("1620"), Type: models.Expense, CreatedAt: at(2024, time.September)},
		{Amount: dec("2800"), Type: models.Expense, CreatedAt: at(2024, time.April)},
		{Amount: dec("1"), Type: models.Expense, CreatedAt: at(2024, time.March)},
		{Amount: dec("1"), Type: models.Expense},
	}
	series := MonthlySeries(txs, now, 6)
	require.Len(t, series, 6)
	assert.Equal(t, 2024, series[0].Year)
	assert.Equal(t, 4, series[0].Month)
	assert.True(t, dec("2800").Equal(series[0].Expense))
	assert.Equal(t, 9, series[5].Month)
	assert.True(t, dec("4300").Equal(series[5].Income))
	assert.True(t, dec("1620").Equal(series[5].Expense))

	assert.Empty(t, MonthlySeries(txs, now, 0))
}

func TestMonthlySeriesAcrossYear(t *testing.T) {
	now := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		{Amount: dec("10"), Type: models.Income, CreatedAt: time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC)},
	}
	series := MonthlySeries(txs, now, 2)
	assert.Equal(t, 12, series[0].Month)
	assert.True(t, dec("10").Equal(series[0].Income))
}

func categoryNames(c CategoryTotals) []string {
	names := []string{}
	for _, it := range c.Items() {
		names = append(names, it.Category)
	}
	return names
}
