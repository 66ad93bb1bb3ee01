// Package command provides CLI command definitions for bt-admin.
package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

// InventoryCommand returns the inventory subcommand group.
func InventoryCommand() *cli.Command {
	return &cli.Command{
		Name:    "inventory",
		Aliases: []string{"inv"},
		Usage:   "View and adjust stock",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List stock rows",
				Flags: []cli.Flag{
					&cli.Int64Flag{
						Name:    "buyer-id",
						Aliases: []string{"b"},
						Usage:   "Show stock held by one buyer (omit for own stock)",
					},
				},
				Action: inventoryList,
			},
			{
				Name:      "set",
				Usage:     "Overwrite the quantity of a stock row",
				ArgsUsage: "INVENTORY_ID QUANTITY",
				Action:    inventorySet,
			},
		},
	}
}

func inventoryList(c *cli.Context) error {
	env, err := GetEnv(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	rows, err := env.API.ListInventories(ctx, c.Int64("buyer-id"))
	if err != nil {
		return err
	}
	return env.formatter(c).Format(env.Out, rows)
}

func inventorySet(c *cli.Context) error {
	id, err := idArg(c, "inventory")
	if err != nil {
		return err
	}
	qtyArg := c.Args().Get(1)
	if qtyArg == "" {
		return fmt.Errorf("quantity required")
	}
	var qty int
	if _, err := fmt.Sscanf(qtyArg, "%d", &qty); err != nil || qty < 0 {
		return fmt.Errorf("invalid quantity %q", qtyArg)
	}

	env, err := GetEnv(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	inv, err := env.API.SetInventoryQuantity(ctx, id, qty)
	if err != nil {
		return err
	}

	fmt.Fprintf(env.Out, "Inventory %d set to %d.\n", inv.ID, inv.Quantity)
	return nil
}
