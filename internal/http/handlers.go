package http

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/xeipuuv/gojsonschema"

	"finance-dashboard-go/internal/config"
	"finance-dashboard-go/internal/finance"
	"finance-dashboard-go/internal/models"
	"finance-dashboard-go/internal/store"
	"finance-dashboard-go/internal/view"
)

//go:embed schemas/transaction.schema.json
var transactionSchema []byte

type Server struct {
	cfg       *config.Config
	store     store.Client
	log       logrus.FieldLogger
	validator *gojsonschema.Schema
	now       func() time.Time
}

// NewServer wires the dashboard routes over client.
func NewServer(cfg *config.Config, client store.Client, log logrus.FieldLogger) *gin.Engine {
	return newServer(cfg, client, log, time.Now)
}

func newServer(cfg *config.Config, client store.Client, log logrus.FieldLogger, now func() time.Time) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors(cfg))
	r.Use(requestLogger(log))

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(transactionSchema))
	if err != nil {
		panic(err)
	}

	s := &Server{cfg: cfg, store: client, log: log, validator: schema, now: now}

	painel := r.Group("/painel/:matricula")
	painel.Use(requireMatricula())
	{
		painel.GET("", s.page(view.DashboardPage))
		painel.GET("/transacoes", s.listTransactions)
		painel.POST("/transacoes", s.addTransaction)
		painel.GET("/cartoes", s.page(view.CardsPage))
		painel.GET("/lembretes", s.page(view.RemindersPage))
	}

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	return r
}

func (s *Server) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), time.Duration(s.cfg.ReqTimeoutSec)*time.Second)
}

func (s *Server) controller(p view.Page) *view.Controller {
	return view.NewController(s.store, p, s.log, view.Options{
		ReminderLimit: s.cfg.ReminderLimit,
		Now:           s.now,
	})
}

func (s *Server) page(p view.Page) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := s.requestContext(c)
		defer cancel()

		ctrl := s.controller(p)
		st := ctrl.Load(ctx, c.GetString(matriculaKey))
		c.JSON(statusFor(st, http.StatusOK), present(c.Request.URL.Path, ctrl, st))
	}
}

func (s *Server) listTransactions(c *gin.Context) {
	filter, err := filterFromQuery(c)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_filter", "details": err.Error()})
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	ctrl := s.controller(view.TransactionsPage)
	st := ctrl.Load(ctx, c.GetString(matriculaKey))
	ctrl.SetFilter(filter)

	res := present(c.Request.URL.Path, ctrl, st)
	res.withListing(ctrl)
	c.JSON(statusFor(st, http.StatusOK), res)
}

// filterFromQuery reads ?category=&type=. "All" and "todos" mean no type filter.
func filterFromQuery(c *gin.Context) (finance.Filter, error) {
	f := finance.Filter{Category: strings.TrimSpace(c.Query("category"))}
	t := strings.TrimSpace(c.Query("type"))
	switch strings.ToLower(t) {
	case "", "all", "todos":
		return f, nil
	}
	typ, ok := models.ParseTransactionType(t)
	if !ok {
		return f, fmt.Errorf("unknown transaction type %q", t)
	}
	f.Type = typ
	return f, nil
}

type transactionBody struct {
	Amount      any    `json:"amount"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

func (b transactionBody) draft() view.Draft {
	d := view.Draft{}.WithType(b.Type).WithCategory(b.Category).WithDescription(b.Description)
	if b.Amount != nil {
		d = d.WithAmount(fmt.Sprint(b.Amount))
	}
	return d
}

func (s *Server) addTransaction(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(400, gin.H{"error": "failed to read body"})
		return
	}

	res, err := s.validator.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_json"})
		return
	}
	if !res.Valid() {
		d := []string{}
		for _, e := range res.Errors() {
			d = append(d, e.String())
		}
		c.JSON(422, gin.H{"error": "schema_invalid", "details": d})
		return
	}

	var body transactionBody
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		c.JSON(400, gin.H{"error": "invalid_json"})
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	ctrl := s.controller(view.TransactionsPage)
	membership := c.GetString(matriculaKey)
	if st := ctrl.Load(ctx, membership); st.Phase() != view.PhaseReady {
		c.JSON(statusFor(st, http.StatusCreated), present(c.Request.URL.Path, ctrl, st))
		return
	}
	ctrl.OpenAdd()
	ctrl.SetDraft(body.draft())

	st, err := ctrl.AddTransaction(ctx)
	var verr *view.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(422, gin.H{"error": "validation_failed", "problems": verr.Problems})
		return
	case errors.Is(err, view.ErrUserNotFound):
		c.JSON(404, present(c.Request.URL.Path, ctrl, view.NotFound{Membership: membership}))
		return
	case err != nil:
		c.JSON(502, gin.H{"error": err.Error()})
		return
	}

	out := present(c.Request.URL.Path, ctrl, st)
	out.withListing(ctrl)
	c.JSON(statusFor(st, http.StatusCreated), out)
}

// statusFor maps a settled controller state onto an HTTP status.
func statusFor(st view.State, ok int) int {
	switch st.(type) {
	case view.Ready:
		return ok
	case view.NotFound:
		return http.StatusNotFound
	case view.Failed:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
