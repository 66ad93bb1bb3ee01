// Package command provides CLI command definitions for bt-admin.
package command

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/ntgen1/bt-admin/internal/api"
)

// BuyerCommand returns the buyer subcommand group.
func BuyerCommand() *cli.Command {
	return &cli.Command{
		Name:    "buyer",
		Aliases: []string{"buyers"},
		Usage:   "Manage buyers",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List buyers",
				Action: buyerList,
			},
			{
				Name:      "get",
				Usage:     "Get buyer details",
				ArgsUsage: "BUYER_ID",
				Action:    buyerGet,
			},
			{
				Name:   "create",
				Usage:  "Create a buyer",
				Flags:  buyerFlags(),
				Action: buyerCreate,
			},
			{
				Name:      "update",
				Usage:     "Update a buyer",
				ArgsUsage: "BUYER_ID",
				Flags:     buyerFlags(),
				Action:    buyerUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a buyer",
				ArgsUsage: "BUYER_ID",
				Flags:     []cli.Flag{forceFlag()},
				Action:    buyerDelete,
			},
		},
	}
}

func buyerFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "name", Usage: "Buyer name", Required: true},
		&cli.StringFlag{Name: "email", Usage: "Contact email"},
		&cli.StringFlag{Name: "phone", Usage: "Phone number"},
		&cli.StringFlag{Name: "contact-name", Usage: "Contact person name"},
		&cli.StringFlag{Name: "contact-number", Usage: "Contact person number"},
	}
}

func buyerInputFromFlags(c *cli.Context) api.BuyerInput {
	return api.BuyerInput{
		Name:                c.String("name"),
		Email:               c.String("email"),
		PhoneNo:             c.String("phone"),
		ContactPersonName:   c.String("contact-name"),
		ContactPersonNumber: c.String("contact-number"),
	}
}

func buyerList(c *cli.Context) error {
	env, err := GetEnv(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	buyers, err := env.API.ListBuyers(ctx)
	if err != nil {
		return err
	}
	return env.formatter(c).Format(env.Out, buyers)
}

func buyerGet(c *cli.Context) error {
	id, err := idArg(c, "buyer")
	if err != nil {
		return err
	}
	env, err := GetEnv(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	buyer, err := env.API.GetBuyer(ctx, id)
	if err != nil {
		return err
	}
	return env.formatter(c).Format(env.Out, buyer)
}

func buyerCreate(c *cli.Context) error {
	env, err := GetEnv(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	buyer, err := env.API.CreateBuyer(ctx, buyerInputFromFlags(c))
	if err != nil {
		return err
	}

	fmt.Fprintf(env.Out, "Buyer %d created.\n", buyer.ID)
	return nil
}

func buyerUpdate(c *cli.Context) error {
	id, err := idArg(c, "buyer")
	if err != nil {
		return err
	}
	env, err := GetEnv(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if _, err := env.API.UpdateBuyer(ctx, id, buyerInputFromFlags(c)); err != nil {
		return err
	}

	fmt.Fprintf(env.Out, "Buyer %d updated.\n", id)
	return nil
}

func buyerDelete(c *cli.Context) error {
	id, err := idArg(c, "buyer")
	if err != nil {
		return err
	}
	if !confirm(c, fmt.Sprintf("Delete buyer %d?", id)) {
		fmt.Println("Cancelled.")
		return nil
	}

	env, err := GetEnv(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if err := env.API.DeleteBuyer(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(env.Out, "Buyer %d deleted.\n", id)
	return nil
}

// idArg parses the required numeric ID argument.
func idArg(c *cli.Context, resource string) (int64, error) {
	arg := c.Args().First()
	if arg == "" {
		return 0, fmt.Errorf("%s ID required", resource)
	}
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s ID %q", resource, arg)
	}
	return id, nil
}
