// Package command provides CLI command definitions for bt-admin.
package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ntgen1/bt-admin/internal/api"
)

// AddressCommand returns the address subcommand group.
func AddressCommand() *cli.Command {
	return &cli.Command{
		Name:    "address",
		Aliases: []string{"addresses"},
		Usage:   "Manage buyer addresses",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List addresses",
				Flags: []cli.Flag{
					&cli.Int64Flag{
						Name:    "buyer-id",
						Aliases: []string{"b"},
						Usage:   "Filter by buyer",
					},
				},
				Action: addressList,
			},
			{
				Name:   "create",
				Usage:  "Create an address for a buyer",
				Flags:  addressFlags(true),
				Action: addressCreate,
			},
			{
				Name:      "update",
				Usage:     "Update an address",
				ArgsUsage: "ADDRESS_ID",
				Flags:     addressFlags(false),
				Action:    addressUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete an address",
				ArgsUsage: "ADDRESS_ID",
				Flags:     []cli.Flag{forceFlag()},
				Action:    addressDelete,
			},
		},
	}
}

func addressFlags(withBuyer bool) []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "location-name", Usage: "Location name", Required: true},
		&cli.StringFlag{Name: "location-code", Usage: "Location code"},
		&cli.StringFlag{Name: "street", Usage: "Street address"},
		&cli.StringFlag{Name: "city", Usage: "City"},
		&cli.StringFlag{Name: "state", Usage: "State"},
		&cli.StringFlag{Name: "pincode", Usage: "PIN code"},
	}
	if withBuyer {
		flags = append(flags, &cli.Int64Flag{
			Name:     "buyer-id",
			Aliases:  []string{"b"},
			Usage:    "Owning buyer",
			Required: true,
		})
	}
	return flags
}

func addressInputFromFlags(c *cli.Context) api.AddressInput {
	return api.AddressInput{
		Buyer:        c.Int64("buyer-id"),
		LocationName: c.String("location-name"),
		LocationCode: c.String("location-code"),
		Address:      c.String("street"),
		City:         c.String("city"),
		State:        c.String("state"),
		Pincode:      c.String("pincode"),
	}
}

func addressList(c *cli.Context) error {
	env, err := GetEnv(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	addresses, err := env.API.ListAddresses(ctx, c.Int64("buyer-id"))
	if err != nil {
		return err
	}
	return env.formatter(c).Format(env.Out, addresses)
}

func addressCreate(c *cli.Context) error {
	env, err := GetEnv(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	addr, err := env.API.CreateAddress(ctx, addressInputFromFlags(c))
	if err != nil {
		return err
	}

	fmt.Fprintf(env.Out, "Address %d created.\n", addr.ID)
	return nil
}

func addressUpdate(c *cli.Context) error {
	id, err := idArg(c, "address")
	if err != nil {
		return err
	}
	env, err := GetEnv(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if _, err := env.API.UpdateAddress(ctx, id, addressInputFromFlags(c)); err != nil {
		return err
	}

	fmt.Fprintf(env.Out, "Address %d updated.\n", id)
	return nil
}

func addressDelete(c *cli.Context) error {
	id, err := idArg(c, "address")
	if err != nil {
		return err
	}
	if !confirm(c, fmt.Sprintf("Delete address %d?", id)) {
		fmt.Println("Cancelled.")
		return nil
	}

	env, err := GetEnv(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if err := env.API.DeleteAddress(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(env.Out, "Address %d deleted.\n", id)
	return nil
}
