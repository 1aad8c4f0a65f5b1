package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"finance-dashboard-go/internal/finance"
	"finance-dashboard-go/internal/models"
	"finance-dashboard-go/internal/view"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions <matricula>",
		Aliases: []string{"tx"},
		Short:   "List a member's transactions, newest first",
		Args:    cobra.ExactArgs(1),
		RunE:    runTransactions,
	}
	cmd.Flags().String("category", "", "only show this category")
	cmd.Flags().String("type", "", "only show income or expense")
	return cmd
}

func filterFromFlags(cmd *cobra.Command) (finance.Filter, error) {
	category, _ := cmd.Flags().GetString("category")
	typ, _ := cmd.Flags().GetString("type")

	f := finance.Filter{Category: category}
	if typ == "" {
		return f, nil
	}
	t, ok := models.ParseTransactionType(typ)
	if !ok {
		return f, fmt.Errorf("unknown transaction type %q: use income or expense", typ)
	}
	f.Type = t
	return f, nil
}

func runTransactions(cmd *cobra.Command, args []string) error {
	filter, err := filterFromFlags(cmd)
	if err != nil {
		return err
	}

	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	ctrl := sess.controller(view.TransactionsPage)
	if _, err := readyData(ctrl.Load(cmd.Context(), args[0])); err != nil {
		return err
	}
	ctrl.SetFilter(filter)
	txs := ctrl.Visible()

	if wantJSON(cmd) {
		return printJSON(cmd.OutOrStdout(), txs)
	}
	return writeTransactions(cmd.OutOrStdout(), txs)
}

func writeTransactions(out io.Writer, txs []models.Transaction) error {
	if len(txs) == 0 {
		_, err := fmt.Fprintln(out, "No transactions.")
		return err
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTYPE\tCATEGORY\tAMOUNT\tDESCRIPTION")
	for _, t := range txs {
		date := "-"
		if !t.CreatedAt.IsZero() {
			date = t.CreatedAt.Format("2006-01-02")
		}
		amount := t.Amount.StringFixed(2)
		if !t.AmountValid {
			amount = "invalid"
		}
		category := t.Category
		if category == "" {
			category = finance.OtherCategory
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", date, t.Type, category, amount, t.Description)
	}
	return w.Flush()
}
