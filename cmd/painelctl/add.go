package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"finance-dashboard-go/internal/view"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <matricula>",
		Short: "Record a transaction for a member",
		Long: `Validate and record one transaction, then reload the member's
transactions page and print the new totals.

Amounts accept a comma or a dot as decimal separator. Types accept income
or expense (receita and gasto also work).`,
		Example: `  painelctl add 42 --amount 120,50 --type expense --category Lazer`,
		Args:    cobra.ExactArgs(1),
		RunE:    runAdd,
	}
	cmd.Flags().String("amount", "", "transaction amount")
	cmd.Flags().String("type", "", "income or expense")
	cmd.Flags().String("category", "", "category label")
	cmd.Flags().String("description", "", "free-text description")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func draftFromFlags(cmd *cobra.Command) view.Draft {
	amount, _ := cmd.Flags().GetString("amount")
	typ, _ := cmd.Flags().GetString("type")
	category, _ := cmd.Flags().GetString("category")
	description, _ := cmd.Flags().GetString("description")
	return view.Draft{}.
		WithAmount(amount).
		WithType(typ).
		WithCategory(category).
		WithDescription(description)
}

func runAdd(cmd *cobra.Command, args []string) error {
	draft := draftFromFlags(cmd)
	if err := draft.Validate().Err(); err != nil {
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
	ctrl.OpenAdd()
	ctrl.SetDraft(draft)

	st, err := ctrl.AddTransaction(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to add transaction: %w", err)
	}
	data, err := readyData(st)
	if err != nil {
		return err
	}

	if wantJSON(cmd) {
		return printJSON(cmd.OutOrStdout(), data.Summary)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Transaction recorded. %d transactions, net balance %s\n",
		data.Summary.Count, data.Summary.NetBalance.StringFixed(2))
	return err
}
