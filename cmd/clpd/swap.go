package main

import (
	"fmt"
	"strings"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/nearswap/nearswap/x/clp/keeper"
)

func swapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap",
		Short: "Swap native and reserve tokens through the pools",
	}
	cmd.PersistentFlags().String(flagRecipient, "", "pay the output to this account instead of the caller")
	cmd.AddCommand(
		swapNearToTokenInCmd(),
		swapNearToTokenOutCmd(),
		swapTokenToNearInCmd(),
		swapTokenToNearOutCmd(),
		swapTokensInCmd(),
		swapTokensOutCmd(),
	)
	return cmd
}

func recipientOf(cmd *cobra.Command) string {
	recipient, _ := cmd.Flags().GetString(flagRecipient)
	return recipient
}

func printQuote(amount math.Int, err error) error {
	if err != nil {
		return err
	}
	fmt.Println(amount.String())
	return nil
}

func swapNearToTokenInCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "near-to-token-in [token] [min-tokens]",
		Short: "Swap the attached native deposit for reserve tokens",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			minTokens, err := parsePositive(args[1])
			if err != nil {
				return err
			}
			return run(func(e *env) error {
				var out math.Int
				var err error
				if r := recipientOf(cmd); r != "" {
					out, err = e.keeper.SwapNearToReserveExactInXfr(args[0], minTokens, r)
				} else {
					out, err = e.keeper.SwapNearToReserveExactIn(args[0], minTokens)
				}
				return printQuote(out, err)
			})
		},
	}
}

func swapNearToTokenOutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "near-to-token-out [token] [tokens-out]",
		Short: "Swap native for an exact reserve-token amount",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokensOut, err := parsePositive(args[1])
			if err != nil {
				return err
			}
			return run(func(e *env) error {
				var in math.Int
				var err error
				if r := recipientOf(cmd); r != "" {
					in, err = e.keeper.SwapNearToReserveExactOutXfr(args[0], tokensOut, r)
				} else {
					in, err = e.keeper.SwapNearToReserveExactOut(args[0], tokensOut)
				}
				return printQuote(in, err)
			})
		},
	}
}

func swapTokenToNearInCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token-to-near-in [token] [tokens-in] [min-near]",
		Short: "Swap reserve tokens for native",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokensIn, err := parsePositive(args[1])
			if err != nil {
				return err
			}
			minNear, err := parsePositive(args[2])
			if err != nil {
				return err
			}
			return run(func(e *env) error {
				var out math.Int
				var err error
				if r := recipientOf(cmd); r != "" {
					out, err = e.keeper.SwapReserveToNearExactInXfr(args[0], tokensIn, minNear, r)
				} else {
					out, err = e.keeper.SwapReserveToNearExactIn(args[0], tokensIn, minNear)
				}
				return printQuote(out, err)
			})
		},
	}
}

func swapTokenToNearOutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token-to-near-out [token] [near-out] [max-tokens]",
		Short: "Swap reserve tokens for an exact native amount",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			nearOut, err := parsePositive(args[1])
			if err != nil {
				return err
			}
			maxTokens, err := parsePositive(args[2])
			if err != nil {
				return err
			}
			return run(func(e *env) error {
				var in math.Int
				var err error
				if r := recipientOf(cmd); r != "" {
					in, err = e.keeper.SwapReserveToNearExactOutXfr(args[0], nearOut, maxTokens, r)
				} else {
					in, err = e.keeper.SwapReserveToNearExactOut(args[0], nearOut, maxTokens)
				}
				return printQuote(in, err)
			})
		},
	}
}

func swapTokensInCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens-in [token-from] [tokens-in] [token-to] [min-tokens-to]",
		Short: "Swap one reserve token for another",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokensIn, err := parsePositive(args[1])
			if err != nil {
				return err
			}
			minTo, err := parsePositive(args[3])
			if err != nil {
				return err
			}
			return run(func(e *env) error {
				var out math.Int
				var err error
				if r := recipientOf(cmd); r != "" {
					out, err = e.keeper.SwapTokensExactInXfr(args[0], tokensIn, args[2], minTo, r)
				} else {
					out, err = e.keeper.SwapTokensExactIn(args[0], tokensIn, args[2], minTo)
				}
				return printQuote(out, err)
			})
		},
	}
}

func swapTokensOutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens-out [token-from] [max-tokens-in] [token-to] [tokens-to]",
		Short: "Swap one reserve token for an exact amount of another",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			maxIn, err := parsePositive(args[1])
			if err != nil {
				return err
			}
			tokensTo, err := parsePositive(args[3])
			if err != nil {
				return err
			}
			return run(func(e *env) error {
				var in math.Int
				var err error
				if r := recipientOf(cmd); r != "" {
					in, err = e.keeper.SwapTokensExactOutXfr(args[0], maxIn, args[2], tokensTo, r)
				} else {
					in, err = e.keeper.SwapTokensExactOut(args[0], maxIn, args[2], tokensTo)
				}
				return printQuote(in, err)
			})
		},
	}
}

func priceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Quote swap prices without touching state",
	}
	cmd.AddCommand(
		priceView("near-to-token-in [token] [near-in]", "Tokens granted for a native input",
			func(k *keeper.Keeper, args []string, amount math.Int) (math.Int, error) {
				return k.PriceNearToTokenIn(args[0], amount)
			}),
		priceView("near-to-token-out [token] [tokens-out]", "Native required for an exact token output",
			func(k *keeper.Keeper, args []string, amount math.Int) (math.Int, error) {
				return k.PriceNearToTokenOut(args[0], amount)
			}),
		priceView("token-to-near-in [token] [tokens-in]", "Native granted for a token input",
			func(k *keeper.Keeper, args []string, amount math.Int) (math.Int, error) {
				return k.PriceTokenToNearIn(args[0], amount)
			}),
		priceView("token-to-near-out [token] [near-out]", "Tokens required for an exact native output",
			func(k *keeper.Keeper, args []string, amount math.Int) (math.Int, error) {
				return k.PriceTokenToNearOut(args[0], amount)
			}),
		priceView("token-to-token-in [token-from] [token-to] [tokens-in]", "Output of a two-hop token swap",
			func(k *keeper.Keeper, args []string, amount math.Int) (math.Int, error) {
				return k.PriceTokenToTokenIn(args[0], amount, args[1])
			}),
		priceView("token-to-token-out [token-from] [token-to] [tokens-to]", "Input of an exact two-hop token swap",
			func(k *keeper.Keeper, args []string, amount math.Int) (math.Int, error) {
				return k.PriceTokenToTokenOut(args[0], args[1], amount)
			}),
	)
	return cmd
}

func splitUse(use string) []string {
	return strings.Fields(use)
}

// priceView builds a quote command. The last positional argument is
// always the amount.
func priceView(use, short string, quote func(k *keeper.Keeper, args []string, amount math.Int) (math.Int, error)) *cobra.Command {
	nArgs := len(splitUse(use)) - 1
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nArgs),
		RunE: func(_ *cobra.Command, args []string) error {
			amount, err := parsePositive(args[nArgs-1])
			if err != nil {
				return err
			}
			return run(func(e *env) error {
				return printQuote(quote(e.keeper, args[:nArgs-1], amount))
			})
		},
	}
}
