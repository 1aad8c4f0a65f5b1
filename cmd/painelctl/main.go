package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "painelctl",
		Short: "Inspect and edit a member's finance dashboard from the terminal",
		Long: `painelctl runs the same page loaders as the dashboard server against the
configured record store. Connection settings come from the environment
(and .env), exactly as for the server.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("backend", "", "record store backend (postgres, memory); defaults to DATA_BACKEND")
	root.PersistentFlags().Bool("json", false, "print JSON instead of tables")

	root.AddCommand(summaryCmd())
	root.AddCommand(transactionsCmd())
	root.AddCommand(addCmd())
	root.AddCommand(navCmd())
	return root
}

func main() {
	_ = godotenv.Load(".env")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
