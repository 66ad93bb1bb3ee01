// Package command provides CLI command definitions for bt-admin.
package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ntgen1/bt-admin/internal/api"
)

// ItemCommand returns the item subcommand group.
func ItemCommand() *cli.Command {
	return &cli.Command{
		Name:    "item",
		Aliases: []string{"items"},
		Usage:   "Manage items",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List items",
				Action: itemList,
			},
			{
				Name:      "get",
				Usage:     "Get item details",
				ArgsUsage: "ITEM_ID",
				Action:    itemGet,
			},
			{
				Name:   "create",
				Usage:  "Create an item",
				Flags:  itemFlags(),
				Action: itemCreate,
			},
			{
				Name:      "update",
				Usage:     "Update an item",
				ArgsUsage: "ITEM_ID",
				Flags:     itemFlags(),
				Action:    itemUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete an item",
				ArgsUsage: "ITEM_ID",
				Flags:     []cli.Flag{forceFlag()},
				Action:    itemDelete,
			},
		},
	}
}

func itemFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "name", Usage: "Item name", Required: true},
		&cli.StringFlag{Name: "code", Usage: "Item code"},
	}
}

func itemList(c *cli.Context) error {
	env, err := GetEnv(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	items, err := env.API.ListItems(ctx)
	if err != nil {
		return err
	}
	return env.formatter(c).Format(env.Out, items)
}

func itemGet(c *cli.Context) error {
	id, err := idArg(c, "item")
	if err != nil {
		return err
	}
	env, err := GetEnv(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	item, err := env.API.GetItem(ctx, id)
	if err != nil {
		return err
	}
	return env.formatter(c).Format(env.Out, item)
}

func itemCreate(c *cli.Context) error {
	env, err := GetEnv(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	item, err := env.API.CreateItem(ctx, api.ItemInput{
		ItemName: c.String("name"),
		ItemCode: c.String("code"),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(env.Out, "Item %d created.\n", item.ID)
	return nil
}

func itemUpdate(c *cli.Context) error {
	id, err := idArg(c, "item")
	if err != nil {
		return err
	}
	env, err := GetEnv(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if _, err := env.API.UpdateItem(ctx, id, api.ItemInput{
		ItemName: c.String("name"),
		ItemCode: c.String("code"),
	}); err != nil {
		return err
	}

	fmt.Fprintf(env.Out, "Item %d updated.\n", id)
	return nil
}

func itemDelete(c *cli.Context) error {
	id, err := idArg(c, "item")
	if err != nil {
		return err
	}
	if !confirm(c, fmt.Sprintf("Delete item %d?", id)) {
		fmt.Println("Cancelled.")
		return nil
	}

	env, err := GetEnv(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if err := env.API.DeleteItem(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(env.Out, "Item %d deleted.\n", id)
	return nil
}
