package main

import (
	"github.com/spf13/cobra"
)

func adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Owner-only registry management",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "registry",
			Short: "Show the registry owner and fee destination",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				return run(func(e *env) error {
					reg, err := e.keeper.Registry()
					if err != nil {
						return err
					}
					return printJSON(reg)
				})
			},
		},
		&cobra.Command{
			Use:   "set-fee-dst [account]",
			Short: "Update the fee destination account",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return run(func(e *env) error {
					return e.keeper.SetFeeDst(args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "change-owner [account]",
			Short: "Hand registry ownership to another account",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return run(func(e *env) error {
					return e.keeper.ChangeOwner(args[0])
				})
			},
		},
	)
	return cmd
}
