// Package view sequences the fetch cycle behind each dashboard page and
// owns the page's transient state: filters, the add modal and its draft.
package view

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"finance-dashboard-go/internal/finance"
	"finance-dashboard-go/internal/models"
	"finance-dashboard-go/internal/store"
)

// Controller holds the state of one page view. It is safe for concurrent use.
//
// Every Load issues a new token and cancels the previous cycle. A cycle's
// result is applied only while its token is still the latest, so a slow
// response for an old membership identifier never overwrites a newer one.
type Controller struct {
	client store.Client
	page   Page
	opts   Options
	log    logrus.FieldLogger

	mu         sync.Mutex
	token      uint64
	cancel     context.CancelFunc
	membership string
	state      State
	filter     finance.Filter
	draft      Draft
	addOpen    bool
	actionErr  error
}

func NewController(client store.Client, page Page, log logrus.FieldLogger, opts Options) *Controller {
	return &Controller{
		client: client,
		page:   page,
		opts:   opts.withDefaults(),
		log:    log.WithFields(logrus.Fields{"component": "view", "page": page.Section.Key}),
		state:  Idle{},
	}
}

// Load runs one fetch cycle for membership and returns the controller's
// state once the cycle settles. A superseded cycle leaves the state alone.
func (c *Controller) Load(ctx context.Context, membership string) State {
	membership = strings.TrimSpace(membership)

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.token++
	token := c.token
	cycleCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	if membership != c.membership {
		c.filter = finance.Filter{}
		c.draft = Draft{}
		c.addOpen = false
		c.actionErr = nil
	}
	c.membership = membership
	c.state = Loading{Membership: membership}
	c.mu.Unlock()

	next := c.fetch(cycleCtx, membership)

	c.mu.Lock()
	defer c.mu.Unlock()
	cancel()
	if token != c.token {
		c.log.WithFields(logrus.Fields{"membership": membership, "token": token, "latest": c.token}).
			Debug("discarding stale fetch cycle")
		return c.state
	}
	c.cancel = nil
	c.state = next
	return next
}

// Reload re-runs the fetch cycle for the current membership identifier.
func (c *Controller) Reload(ctx context.Context) State {
	return c.Load(ctx, c.Membership())
}

func (c *Controller) fetch(ctx context.Context, membership string) State {
	user, err := c.lookupUser(ctx, membership)
	if errors.Is(err, ErrUserNotFound) {
		c.log.WithField("membership", membership).Info("unknown membership identifier")
		return NotFound{Membership: membership}
	}
	if err != nil {
		c.log.WithError(err).WithField("membership", membership).Warn("fetch cycle failed")
		return Failed{Membership: membership, Err: err}
	}

	data, err := c.page.load(ctx, c.client, user.ID, c.opts)
	if err != nil {
		c.log.WithError(err).WithField("membership", membership).Warn("fetch cycle failed")
		return Failed{Membership: membership, Err: err}
	}
	data.User = user
	data.derive(c.opts.Now(), c.opts.ChartMonths)
	return Ready{Data: data}
}

func (c *Controller) lookupUser(ctx context.Context, membership string) (models.User, error) {
	if membership == "" {
		return models.User{}, ErrUserNotFound
	}
	row, err := c.client.FindOne(ctx, models.TableUsers, "matricula", membership)
	if errors.Is(err, store.ErrNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fetchErr("lookup user", err)
	}
	user, err := models.UserFromRow(row)
	if err != nil {
		return models.User{}, fetchErr("lookup user", err)
	}
	return user, nil
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Membership() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.membership
}

func (c *Controller) Page() Page { return c.page }

// SetFilter changes the client-side filter; it never triggers a read.
func (c *Controller) SetFilter(f finance.Filter) {
	c.mu.Lock()
	c.filter = f
	c.mu.Unlock()
}

func (c *Controller) Filter() finance.Filter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// Visible returns a copy of the Ready transactions that pass the filter, or
// nil when the page is not Ready.
func (c *Controller) Visible() []models.Transaction {
	c.mu.Lock()
	defer c.mu.Unlock()
	ready, ok := c.state.(Ready)
	if !ok {
		return nil
	}
	return slices.Clone(c.filter.Apply(ready.Data.Transactions))
}

func (c *Controller) OpenAdd() {
	c.mu.Lock()
	c.addOpen = true
	c.mu.Unlock()
}

// CloseAdd closes the modal and discards the draft.
func (c *Controller) CloseAdd() {
	c.mu.Lock()
	c.addOpen = false
	c.draft = Draft{}
	c.actionErr = nil
	c.mu.Unlock()
}

func (c *Controller) AddOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.addOpen
}

// SetDraft replaces the draft wholesale.
func (c *Controller) SetDraft(d Draft) {
	c.mu.Lock()
	c.draft = d
	c.mu.Unlock()
}

func (c *Controller) Draft() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// ActionErr is the outcome of the last AddTransaction, nil after a success.
func (c *Controller) ActionErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.actionErr
}

func (c *Controller) setActionErr(err error) {
	c.mu.Lock()
	c.actionErr = err
	c.mu.Unlock()
}

// AddTransaction validates the draft and appends it. An invalid draft
// returns a *ValidationError without touching the store. After a
// successful write the draft is reset, the modal closed and the whole
// fetch cycle re-run so aggregates come from the store.
func (c *Controller) AddTransaction(ctx context.Context) (State, error) {
	c.mu.Lock()
	draft, membership := c.draft, c.membership
	var userID string
	if ready, ok := c.state.(Ready); ok {
		userID = ready.Data.User.ID
	}
	c.mu.Unlock()

	res := draft.Validate()
	if err := res.Err(); err != nil {
		c.setActionErr(err)
		return c.State(), err
	}

	if userID == "" {
		user, err := c.lookupUser(ctx, membership)
		if err != nil {
			c.setActionErr(err)
			return c.State(), err
		}
		userID = user.ID
	}

	if _, err := c.client.Insert(ctx, models.TableTransactions, res.Transaction.Row(userID, c.opts.Now())); err != nil {
		err = fetchErr("insert transaction", err)
		c.log.WithError(err).WithField("membership", membership).Warn("add transaction failed")
		c.setActionErr(err)
		return c.State(), err
	}
	c.log.WithFields(logrus.Fields{
		"membership": membership,
		"type":       res.Transaction.Type,
		"amount":     res.Transaction.Amount.String(),
	}).Info("transaction added")

	c.mu.Lock()
	c.draft = Draft{}
	c.addOpen = false
	c.actionErr = nil
	c.mu.Unlock()

	return c.Load(ctx, membership), nil
}
