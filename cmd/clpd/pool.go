package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [owner]",
		Short: "Initialize the pool registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(e *env) error {
				return e.keeper.InitRegistry(args[0])
			})
		},
	}
}

func createPoolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create-pool [token]",
		Short: "Register an empty pool for a reserve token",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(e *env) error {
				return e.keeper.CreatePool(args[0])
			})
		},
	}
}

func poolInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pool-info [token]",
		Short: "Show the reserves and share supply of a pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(e *env) error {
				info, err := e.keeper.PoolInfo(args[0])
				if err != nil {
					return err
				}
				if info == nil {
					return fmt.Errorf("no pool for token %s", args[0])
				}
				return printJSON(info)
			})
		},
	}
}

func listPoolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-pools",
		Short: "List all registered pools",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(func(e *env) error {
				tokens, err := e.keeper.ListPools()
				if err != nil {
					return err
				}
				return printJSON(tokens)
			})
		},
	}
}

func sharesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shares [token] [account]",
		Short: "Show an account's share balance in a pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(e *env) error {
				shares, err := e.keeper.SharesBalanceOf(args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Println(shares.String())
				return nil
			})
		},
	}
}

func printJSON(v any) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(bz))
	return nil
}
