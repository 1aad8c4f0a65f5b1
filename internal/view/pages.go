package view

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"finance-dashboard-go/internal/finance"
	"finance-dashboard-go/internal/models"
	"finance-dashboard-go/internal/nav"
	"finance-dashboard-go/internal/store"
)

// PageData is everything one Ready page renders. Slices a page does not
// load stay empty.
type PageData struct {
	User         models.User                 `json:"user"`
	Transactions []models.Transaction        `json:"transactions"`
	Cards        []models.CreditCard         `json:"cards"`
	Reminders    []models.Reminder           `json:"reminders"`
	Summary      finance.Summary             `json:"summary"`
	Categories   []string                    `json:"categories"`
	MostUsedCard *models.CreditCard          `json:"most_used_card,omitempty"`
	Utilization  []finance.CreditUtilization `json:"utilization"`
	Monthly      []finance.MonthTotals       `json:"monthly"`
	Pending      int                         `json:"pending_reminders"`
}

// Options tune the dependent reads and derived values.
type Options struct {
	ReminderLimit int // dashboard reminder list size
	ChartMonths   int
	Now           func() time.Time
}

func (o Options) withDefaults() Options {
	if o.ReminderLimit <= 0 {
		o.ReminderLimit = 5
	}
	if o.ChartMonths <= 0 {
		o.ChartMonths = 6
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Page is one dashboard screen: the section it renders and the reads it needs.
type Page struct {
	Section nav.Section
	load    func(ctx context.Context, c store.Client, userID string, o Options) (*PageData, error)
}

var (
	DashboardPage = Page{Section: nav.Dashboard, load: loadDashboard}

	TransactionsPage = Page{Section: nav.Transactions, load: func(ctx context.Context, c store.Client, userID string, _ Options) (*PageData, error) {
		txs, err := listTransactions(ctx, c, userID)
		if err != nil {
			return nil, err
		}
		return &PageData{Transactions: txs}, nil
	}}

	CardsPage = Page{Section: nav.Cards, load: func(ctx context.Context, c store.Client, userID string, _ Options) (*PageData, error) {
		cards, err := listCards(ctx, c, userID)
		if err != nil {
			return nil, err
		}
		return &PageData{Cards: cards}, nil
	}}

	RemindersPage = Page{Section: nav.Reminders, load: func(ctx context.Context, c store.Client, userID string, _ Options) (*PageData, error) {
		q := store.Query{Table: models.TableReminders, OrderBy: "due_date"}.Where("user_id", userID)
		rems, err := listReminders(ctx, c, q)
		if err != nil {
			return nil, err
		}
		return &PageData{Reminders: rems}, nil
	}}
)

// loadDashboard runs its three reads concurrently; the user id is already
// resolved so none of them depends on another.
func loadDashboard(ctx context.Context, c store.Client, userID string, o Options) (*PageData, error) {
	data := &PageData{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		data.Transactions, err = listTransactions(gctx, c, userID)
		return err
	})
	g.Go(func() (err error) {
		data.Cards, err = listCards(gctx, c, userID)
		return err
	})
	g.Go(func() error {
		q := store.Query{Table: models.TableReminders, OrderBy: "due_date"}.Where("user_id", userID)
		rems, err := listReminders(gctx, c, q)
		if err != nil {
			return err
		}
		data.Reminders = pendingReminders(rems, o.ReminderLimit)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

// pendingReminders keeps the first limit reminders whose decoded status is
// pending. Filtering happens after decoding so every stored spelling of
// pending is included.
func pendingReminders(rems []models.Reminder, limit int) []models.Reminder {
	out := make([]models.Reminder, 0, min(len(rems), limit))
	for _, r := range rems {
		if len(out) == limit {
			break
		}
		if r.Status == models.StatusPending {
			out = append(out, r)
		}
	}
	return out
}

func listTransactions(ctx context.Context, c store.Client, userID string) ([]models.Transaction, error) {
	rows, err := c.FindMany(ctx, store.Query{Table: models.TableTransactions, OrderBy: "created_at", Descending: true}.Where("user_id", userID))
	if err != nil {
		return nil, fetchErr("list transactions", err)
	}
	txs, err := models.TransactionsFromRows(rows)
	if err != nil {
		return nil, fetchErr("list transactions", err)
	}
	return txs, nil
}

func listCards(ctx context.Context, c store.Client, userID string) ([]models.CreditCard, error) {
	rows, err := c.FindMany(ctx, store.Query{Table: models.TableCreditCards, OrderBy: "created_at"}.Where("user_id", userID))
	if err != nil {
		return nil, fetchErr("list credit cards", err)
	}
	cards, err := models.CreditCardsFromRows(rows)
	if err != nil {
		return nil, fetchErr("list credit cards", err)
	}
	return cards, nil
}

func listReminders(ctx context.Context, c store.Client, q store.Query) ([]models.Reminder, error) {
	rows, err := c.FindMany(ctx, q)
	if err != nil {
		return nil, fetchErr("list reminders", err)
	}
	rems, err := models.RemindersFromRows(rows)
	if err != nil {
		return nil, fetchErr("list reminders", err)
	}
	return rems, nil
}

// derive fills the aggregates from the fetched rows.
func (d *PageData) derive(now time.Time, months int) {
	if d.Transactions == nil {
		d.Transactions = []models.Transaction{}
	}
	if d.Cards == nil {
		d.Cards = []models.CreditCard{}
	}
	if d.Reminders == nil {
		d.Reminders = []models.Reminder{}
	}
	d.Summary = finance.Summarize(d.Transactions)
	d.Categories = finance.Categories(d.Transactions)
	d.Monthly = finance.MonthlySeries(d.Transactions, now, months)

	d.Utilization = make([]finance.CreditUtilization, 0, len(d.Cards))
	for _, c := range d.Cards {
		d.Utilization = append(d.Utilization, finance.Utilization(c))
	}
	if card, ok := finance.MostUsedCard(d.Cards); ok {
		d.MostUsedCard = &card
	}

	d.Pending = 0
	for i := range d.Reminders {
		d.Reminders[i].Status = d.Reminders[i].EffectiveStatus(now)
		if d.Reminders[i].Status == models.StatusPending {
			d.Pending++
		}
	}
}
