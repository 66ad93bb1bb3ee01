// Package command provides CLI command definitions for bt-admin.
package command

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ntgen1/bt-admin/internal/cli/output"
)

// DashboardCommand returns the dashboard command.
func DashboardCommand() *cli.Command {
	return &cli.Command{
		Name:    "dashboard",
		Aliases: []string{"dash"},
		Usage:   "Show the summary dashboard",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "from",
				Usage: "Sales range start (YYYY-MM-DD, defaults to 30 days ago)",
			},
			&cli.StringFlag{
				Name:  "to",
				Usage: "Sales range end (YYYY-MM-DD, defaults to today)",
			},
		},
		Action: dashboardAction,
	}
}

func dashboardAction(c *cli.Context) error {
	env, err := GetEnv(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	from := c.String("from")
	to := c.String("to")
	if to == "" {
		to = time.Now().Format("2006-01-02")
	}
	if from == "" {
		from = time.Now().AddDate(0, 0, -30).Format("2006-01-02")
	}

	spin := output.NewSpinner(env.Err, "Loading dashboard")
	spin.Start()

	counts, err := env.API.DashboardCounts(ctx)
	if err != nil {
		spin.Stop()
		return err
	}
	sales, err := env.API.SalesPayment(ctx, from, to)
	if err != nil {
		spin.Stop()
		return err
	}
	pending, err := env.API.DashboardBuyerList(ctx)
	spin.Stop()
	if err != nil {
		return err
	}

	fmt.Fprintf(env.Out, "Buyers:  %d\n", counts.Buyers)
	fmt.Fprintf(env.Out, "Items:   %d\n", counts.Items)
	fmt.Fprintf(env.Out, "Records: %d\n", counts.Records)
	fmt.Fprintln(env.Out)
	fmt.Fprintf(env.Out, "Sales %s to %s\n", from, to)
	fmt.Fprintf(env.Out, "  Total sales:     %s\n", output.Money(sales.TotalSales))
	fmt.Fprintf(env.Out, "  Payment pending: %s\n", output.Money(sales.PaymentPending))

	if len(pending) > 0 {
		fmt.Fprintln(env.Out)
		fmt.Fprintln(env.Out, "Buyers with pending payments:")
		table := &output.Table{Headers: []string{"ID", "NAME", "PENDING"}}
		for _, b := range pending {
			table.AddRow(fmt.Sprintf("%d", b.ID), b.Name, output.Money(b.PendingAmount))
		}
		if err := table.Render(env.Out); err != nil {
			return err
		}
	}
	return nil
}
