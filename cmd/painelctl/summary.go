package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"finance-dashboard-go/internal/view"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <matricula>",
		Short: "Show the dashboard totals for a member",
		Long: `Load the dashboard page for a member and print income, expenses and net
balance, expenses per category, card utilization and pending reminders.`,
		Args: cobra.ExactArgs(1),
		RunE: runSummary,
	}
}

func runSummary(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	data, err := readyData(sess.controller(view.DashboardPage).Load(cmd.Context(), args[0]))
	if err != nil {
		return err
	}
	if wantJSON(cmd) {
		return printJSON(cmd.OutOrStdout(), data)
	}
	return writeSummary(cmd.OutOrStdout(), data)
}

func writeSummary(out io.Writer, data *view.PageData) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	sum := data.Summary

	fmt.Fprintf(w, "%s (%s)\n\n", data.User.Name, data.User.Matricula)
	fmt.Fprintf(w, "Income\t%s\n", sum.TotalIncome.StringFixed(2))
	fmt.Fprintf(w, "Expense\t%s\n", sum.TotalExpense.StringFixed(2))
	fmt.Fprintf(w, "Net balance\t%s\n", sum.NetBalance.StringFixed(2))
	if sum.InvalidAmounts > 0 || sum.Unrecognized > 0 {
		fmt.Fprintf(w, "Skipped\t%d invalid amount(s), %d unknown type(s)\n", sum.InvalidAmounts, sum.Unrecognized)
	}

	if sum.ExpenseByCategory.Len() > 0 {
		fmt.Fprintln(w, "\nExpenses by category")
		for _, c := range sum.ExpenseByCategory.Items() {
			fmt.Fprintf(w, "  %s\t%s\n", c.Category, c.Amount.StringFixed(2))
		}
	}

	if len(data.Utilization) > 0 {
		fmt.Fprintln(w, "\nCards\tused\tlimit\t%")
		for _, u := range data.Utilization {
			flag := ""
			if u.Warning {
				flag = " !"
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s%s\n", u.CardName, u.Used.StringFixed(2), u.Limit.StringFixed(2), u.Percentage.StringFixed(2), flag)
		}
	}
	if data.MostUsedCard != nil {
		fmt.Fprintf(w, "Most used card\t%s\n", data.MostUsedCard.Name)
	}

	if len(data.Reminders) > 0 {
		fmt.Fprintln(w, "\nReminders\tdue\tamount")
		for _, r := range data.Reminders {
			amount := "-"
			if r.Amount != nil {
				amount = r.Amount.StringFixed(2)
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\n", r.Title, r.DueDate.Format("2006-01-02"), amount)
		}
	}
	return w.Flush()
}
