package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"QuickTech-Backend/src/dashboard"
)

var (
	dashboardAPI   string
	dashboardToken string
	dashboardTab   string
	dashboardView  int64
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show submissions in the terminal",
	Long: `Fetch the submission list from a running API and print the admin dashboard.

Use --view <id> to mark an unread submission as viewed; the list is fetched again afterwards.`,
	RunE: runDashboard,
}

func init() {
	dashboardCmd.Flags().StringVar(&dashboardAPI, "api", "http://localhost:8888", "API base URL")
	dashboardCmd.Flags().StringVar(&dashboardToken, "token", "", "Bearer token when admin routes require auth")
	dashboardCmd.Flags().StringVar(&dashboardTab, "tab", string(dashboard.TabAll), "Tab: all, unread, contact, quote, auth")
	dashboardCmd.Flags().Int64Var(&dashboardView, "view", 0, "Mark this submission id as viewed")
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	tab, err := dashboard.ParseTab(dashboardTab)
	if err != nil {
		return err
	}

	d := dashboard.New(dashboard.NewClient(dashboardAPI, dashboardToken), zap.NewNop())
	ctx := cmd.Context()
	if err := d.Load(ctx); err != nil {
		return err
	}
	if dashboardView > 0 {
		if err := d.MarkViewed(ctx, dashboardView); err != nil {
			return err
		}
	}

	d.SetTab(tab)
	return renderDashboard(cmd.OutOrStdout(), d, tab)
}

func renderDashboard(w io.Writer, d *dashboard.Dashboard, tab dashboard.Tab) error {
	c := d.Counts()
	fmt.Fprintf(w, "Total %d | Unread %d | Contact %d | Quote %d | Auth %d\n", c.Total, c.Unread, c.Contact, c.Quote, c.Auth)
	fmt.Fprintf(w, "Tab: %s\n\n", tab)

	cards := d.Cards()
	if len(cards) == 0 {
		fmt.Fprintln(w, "No submissions.")
		return nil
	}

	for _, card := range cards {
		status := "unread"
		if card.Viewed {
			status = "viewed"
		}
		fmt.Fprintf(w, "#%d %s (%s, %s)\n", card.ID, card.Title, status, card.When)

		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, f := range card.Fields {
			fmt.Fprintf(tw, "  %s:\t%s\n", f.Label, strings.ReplaceAll(f.Value, "\n", " "))
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		var footer []string
		if card.Email != "" {
			footer = append(footer, "Email: "+card.Email)
		}
		if card.Phone != "" {
			footer = append(footer, "Phone: "+card.Phone)
		}
		if len(footer) > 0 {
			fmt.Fprintf(w, "  %s\n", strings.Join(footer, " · "))
		}
		if card.CanMarkViewed() {
			fmt.Fprintf(w, "  → mark as viewed: --view %d\n", card.ID)
		}
		fmt.Fprintln(w)
	}
	return nil
}
