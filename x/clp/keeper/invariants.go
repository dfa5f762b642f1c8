package keeper

import (
	"fmt"

	"cosmossdk.io/math"

	"github.com/nearswap/nearswap/x/clp/types"
)

// ShareSupplyInvariant checks that for every pool the per-account share
// balances sum exactly to the pool's total supply.
func ShareSupplyInvariant(k *Keeper) (string, bool) {
	var broken bool
	var msg string
	err := k.IteratePools(func(pool types.Pool) bool {
		sum := math.ZeroInt()
		_ = k.IterateShares(pool.Token, func(_ string, shares math.Int) bool {
			sum = sum.Add(shares)
			return false
		})
		if !sum.Equal(pool.TotalShares) {
			broken = true
			msg = fmt.Sprintf("pool %s: share sum %s != total supply %s", pool.Token, sum, pool.TotalShares)
			return true
		}
		return false
	})
	if err != nil {
		return err.Error(), true
	}
	return msg, broken
}

// PoolStateInvariant checks that every pool is either fresh or fully
// seeded and holds no negative balance.
func PoolStateInvariant(k *Keeper) (string, bool) {
	var broken bool
	var msg string
	err := k.IteratePools(func(pool types.Pool) bool {
		if pool.NearBal.IsNegative() || pool.TokenBal.IsNegative() || pool.TotalShares.IsNegative() {
			broken = true
			msg = fmt.Sprintf("pool %s has a negative balance: %s", pool.Token, pool.Info())
			return true
		}
		if !pool.Empty() && (!pool.NearBal.IsPositive() || !pool.TokenBal.IsPositive() || !pool.TotalShares.IsPositive()) {
			broken = true
			msg = fmt.Sprintf("pool %s is partially seeded: %s", pool.Token, pool.Info())
			return true
		}
		return false
	})
	if err != nil {
		return err.Error(), true
	}
	return msg, broken
}

// AllInvariants runs every module invariant.
func AllInvariants(k *Keeper) (string, bool) {
	if msg, broken := ShareSupplyInvariant(k); broken {
		return msg, broken
	}
	return PoolStateInvariant(k)
}
