// Package command provides CLI command definitions for bt-admin.
package command

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/ntgen1/bt-admin/internal/api"
)

// PaymentCommand returns the payment subcommand group.
func PaymentCommand() *cli.Command {
	return &cli.Command{
		Name:    "payment",
		Aliases: []string{"payments"},
		Usage:   "Apply payments and view receipt history",
		Subcommands: []*cli.Command{
			{
				Name:      "apply",
				Usage:     "Apply a payment amount to a record",
				ArgsUsage: "RECORD_ID AMOUNT",
				Action:    paymentApply,
			},
			{
				Name:   "history",
				Usage:  "List payment receipts",
				Action: paymentHistory,
			},
			{
				Name:  "pending",
				Usage: "List unpaid return records for a buyer",
				Flags: []cli.Flag{
					&cli.Int64Flag{
						Name:     "buyer-id",
						Aliases:  []string{"b"},
						Usage:    "Buyer to inspect",
						Required: true,
					},
				},
				Action: paymentPending,
			},
		},
	}
}

func paymentApply(c *cli.Context) error {
	id, err := idArg(c, "record")
	if err != nil {
		return err
	}
	amount := c.Args().Get(1)
	if amount == "" {
		return fmt.Errorf("amount required")
	}
	if _, err := strconv.ParseFloat(amount, 64); err != nil {
		return fmt.Errorf("invalid amount %q", amount)
	}

	env, err := GetEnv(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if err := env.API.UpdatePayment(ctx, id, amount); err != nil {
		return err
	}

	fmt.Fprintf(env.Out, "Payment of %s applied to record %d.\n", amount, id)
	return nil
}

func paymentHistory(c *cli.Context) error {
	env, err := GetEnv(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	receipts, err := env.API.ListReceipts(ctx)
	if err != nil {
		return err
	}
	return env.formatter(c).Format(env.Out, receipts)
}

// paymentPending mirrors the dashboard's "update payment" flow: it
// lists the unpaid return records a payment could be applied to.
func paymentPending(c *cli.Context) error {
	env, err := GetEnv(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	records, err := env.API.ListRecords(ctx, api.RecordFilter{
		BuyerID:         c.Int64("buyer-id"),
		InvStatus:       api.InvStatusUnpaid,
		TransactionType: api.TransactionReturn,
	})
	if err != nil {
		return err
	}
	return env.formatter(c).Format(env.Out, records)
}
