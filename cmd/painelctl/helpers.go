package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"finance-dashboard-go/internal/config"
	"finance-dashboard-go/internal/database"
	"finance-dashboard-go/internal/logging"
	"finance-dashboard-go/internal/store"
	"finance-dashboard-go/internal/view"
)

// session is one command's view of the record store.
type session struct {
	cfg    *config.Config
	log    *logrus.Logger
	client store.Client
	close  func() error
}

func openSession(cmd *cobra.Command) (*session, error) {
	cfg := config.Load()
	if backend, _ := cmd.Flags().GetString("backend"); backend != "" {
		cfg.DataBackend = backend
	}
	log := logging.NewWithOutput(cmd.ErrOrStderr(), cfg.LogLevel, "text")
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, closeFn, err := database.Open(cmd.Context(), cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open record store: %w", err)
	}
	return &session{cfg: cfg, log: log, client: client, close: closeFn}, nil
}

func (s *session) controller(p view.Page) *view.Controller {
	return view.NewController(s.client, p, s.log, view.Options{ReminderLimit: s.cfg.ReminderLimit})
}

func (s *session) Close() {
	if err := s.close(); err != nil {
		s.log.WithError(err).Error("failed to close record store")
	}
}

// readyData turns a settled state into its data or a command error.
func readyData(st view.State) (*view.PageData, error) {
	switch st := st.(type) {
	case view.Ready:
		return st.Data, nil
	case view.NotFound:
		return nil, fmt.Errorf("no user with membership identifier %q", st.Membership)
	case view.Failed:
		return nil, st.Err
	}
	return nil, fmt.Errorf("unexpected page state %s", st.Phase())
}

func wantJSON(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
