// Package command provides CLI command definitions for bt-admin.
package command

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ntgen1/bt-admin/internal/api"
)

// RecordCommand returns the record subcommand group.
func RecordCommand() *cli.Command {
	return &cli.Command{
		Name:    "record",
		Aliases: []string{"records"},
		Usage:   "Manage rental and return records",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List records",
				Flags: []cli.Flag{
					&cli.Int64Flag{
						Name:    "buyer-id",
						Aliases: []string{"b"},
						Usage:   "Filter by buyer",
					},
					&cli.StringFlag{
						Name:  "inv-status",
						Usage: "Filter by invoice status (paid, unpaid)",
					},
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Usage:   "Filter by transaction type (rent, return)",
					},
				},
				Action: recordList,
			},
			{
				Name:      "get",
				Usage:     "Get record details with line items",
				ArgsUsage: "RECORD_ID",
				Action:    recordGet,
			},
			{
				Name:   "create",
				Usage:  "Create a record",
				Flags:  recordFlags(),
				Action: recordCreate,
			},
			{
				Name:      "update",
				Usage:     "Update a record",
				ArgsUsage: "RECORD_ID",
				Flags:     recordFlags(),
				Action:    recordUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a record",
				ArgsUsage: "RECORD_ID",
				Flags:     []cli.Flag{forceFlag()},
				Action:    recordDelete,
			},
		},
	}
}

func recordFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:     "buyer-id",
			Aliases:  []string{"b"},
			Usage:    "Buyer the record belongs to",
			Required: true,
		},
		&cli.Int64Flag{
			Name:  "address-id",
			Usage: "Delivery address (one of the buyer's addresses)",
		},
		&cli.StringFlag{
			Name:    "type",
			Aliases: []string{"t"},
			Value:   api.TransactionRent,
			Usage:   "Transaction type (rent, return)",
		},
		&cli.StringSliceFlag{
			Name:     "line",
			Aliases:  []string{"l"},
			Usage:    "Line item as ITEM_ID:QTY:PRICE[:GST[:CESS]] (repeatable)",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "date",
			Usage: "Record date (YYYY-MM-DD, defaults to today)",
		},
		&cli.IntFlag{
			Name:  "days",
			Usage: "Rental duration in days",
		},
	}
}

func recordInputFromFlags(c *cli.Context) (api.RecordInput, error) {
	txType := c.String("type")
	if txType != api.TransactionRent && txType != api.TransactionReturn {
		return api.RecordInput{}, fmt.Errorf("invalid transaction type %q", txType)
	}

	var lines []api.LineItem
	for _, raw := range c.StringSlice("line") {
		li, err := parseLineItem(raw)
		if err != nil {
			return api.RecordInput{}, err
		}
		lines = append(lines, li)
	}

	date := c.String("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	in := api.RecordInput{
		Buyer:           c.Int64("buyer-id"),
		TransactionType: txType,
		LineItems:       lines,
		CreatedForDate:  date,
		Days:            c.Int("days"),
	}
	if addrID := c.Int64("address-id"); addrID > 0 {
		in.BuyerAddress = &addrID
	}
	return in, nil
}

// parseLineItem parses ITEM_ID:QTY:PRICE[:GST[:CESS]].
func parseLineItem(raw string) (api.LineItem, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 3 || len(parts) > 5 {
		return api.LineItem{}, fmt.Errorf("invalid line item %q, want ITEM_ID:QTY:PRICE[:GST[:CESS]]", raw)
	}

	itemID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return api.LineItem{}, fmt.Errorf("invalid item ID in %q", raw)
	}
	qty, err := strconv.Atoi(parts[1])
	if err != nil {
		return api.LineItem{}, fmt.Errorf("invalid quantity in %q", raw)
	}

	li := api.LineItem{Item: itemID, Quantity: qty, Price: parts[2]}
	if len(parts) > 3 {
		li.GST = parts[3]
	}
	if len(parts) > 4 {
		li.Cess = parts[4]
	}
	return li, nil
}

func recordList(c *cli.Context) error {
	env, err := GetEnv(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	records, err := env.API.ListRecords(ctx, api.RecordFilter{
		BuyerID:         c.Int64("buyer-id"),
		InvStatus:       c.String("inv-status"),
		TransactionType: c.String("type"),
	})
	if err != nil {
		return err
	}
	return env.formatter(c).Format(env.Out, records)
}

func recordGet(c *cli.Context) error {
	id, err := idArg(c, "record")
	if err != nil {
		return err
	}
	env, err := GetEnv(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	record, err := env.API.GetRecord(ctx, id)
	if err != nil {
		return err
	}

	formatter := env.formatter(c)
	if err := formatter.Format(env.Out, record); err != nil {
		return err
	}
	if len(record.LineItems) > 0 {
		fmt.Fprintln(env.Out)
		return formatter.Format(env.Out, record.LineItems)
	}
	return nil
}

func recordCreate(c *cli.Context) error {
	in, err := recordInputFromFlags(c)
	if err != nil {
		return err
	}
	env, err := GetEnv(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	record, err := env.API.CreateRecord(ctx, in)
	if err != nil {
		return err
	}

	fmt.Fprintf(env.Out, "Record %d created.\n", record.ID)
	return nil
}

func recordUpdate(c *cli.Context) error {
	id, err := idArg(c, "record")
	if err != nil {
		return err
	}
	in, err := recordInputFromFlags(c)
	if err != nil {
		return err
	}
	env, err := GetEnv(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if _, err := env.API.UpdateRecord(ctx, id, in); err != nil {
		return err
	}

	fmt.Fprintf(env.Out, "Record %d updated.\n", id)
	return nil
}

func recordDelete(c *cli.Context) error {
	id, err := idArg(c, "record")
	if err != nil {
		return err
	}
	if !confirm(c, fmt.Sprintf("Delete record %d?", id)) {
		fmt.Println("Cancelled.")
		return nil
	}

	env, err := GetEnv(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if err := env.API.DeleteRecord(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(env.Out, "Record %d deleted.\n", id)
	return nil
}
