package main

import (
	"github.com/spf13/cobra"
)

func addLiquidityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-liquidity [token] [max-tokens] [min-shares]",
		Short: "Deposit native and reserve tokens into a pool",
		Long: `Deposits the attached native amount (--deposit) together with reserve
tokens matched to the current pool ratio, at most max-tokens, and mints
at least min-shares participation shares to the caller.`,
		Args: cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			maxTokens, err := parsePositive(args[1])
			if err != nil {
				return err
			}
			minShares, err := parseAmount(args[2])
			if err != nil {
				return err
			}
			return run(func(e *env) error {
				return e.keeper.AddLiquidity(args[0], maxTokens, minShares)
			})
		},
	}
}

func withdrawLiquidityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw-liquidity [token] [shares] [min-near] [min-tokens]",
		Short: "Redeem pool shares for both reserves",
		Args:  cobra.ExactArgs(4),
		RunE: func(_ *cobra.Command, args []string) error {
			shares, err := parsePositive(args[1])
			if err != nil {
				return err
			}
			minNear, err := parsePositive(args[2])
			if err != nil {
				return err
			}
			minTokens, err := parsePositive(args[3])
			if err != nil {
				return err
			}
			return run(func(e *env) error {
				return e.keeper.WithdrawLiquidity(args[0], shares, minNear, minTokens)
			})
		},
	}
}
