package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"finance-dashboard-go/internal/nav"
)

func navCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nav <path>",
		Short: "Show the sidebar for a dashboard path and which section is active",
		Args:  cobra.ExactArgs(1),
		RunE:  runNav,
	}
	cmd.Flags().Bool("collapsed", false, "render the collapsed sidebar (section keys only)")
	return cmd
}

func runNav(cmd *cobra.Command, args []string) error {
	path := args[0]
	membership, ok := nav.MembershipFromPath(path)
	if !ok {
		return fmt.Errorf("%q is not a dashboard path: expected %s/<matricula>[/section]", path, nav.Root)
	}

	var panel nav.Panel
	if collapsed, _ := cmd.Flags().GetBool("collapsed"); collapsed {
		panel.Collapse()
	}

	items := nav.Sidebar(path, membership, nil)
	if wantJSON(cmd) {
		return printJSON(cmd.OutOrStdout(), items)
	}
	return writeSidebar(cmd.OutOrStdout(), items, panel.Collapsed())
}

func writeSidebar(out io.Writer, items []nav.Item, collapsed bool) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, it := range items {
		marker := " "
		if it.Active {
			marker = "*"
		}
		if collapsed {
			fmt.Fprintf(w, "%s %s\n", marker, it.Key)
			continue
		}
		fmt.Fprintf(w, "%s %s\t%s\n", marker, it.Title, it.Path)
	}
	return w.Flush()
}
