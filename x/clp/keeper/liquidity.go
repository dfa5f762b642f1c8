package keeper

import (
	"encoding/json"

	"cosmossdk.io/math"

	"github.com/nearswap/nearswap/x/clp/types"
)

// AddLiquidity deposits the attached native amount together with a
// matching amount of reserve tokens and mints pool shares to the
// caller. The token amount is derived from the current reserve ratio
// and capped by maxTokenAmount; the caller must have granted the
// contract an allowance covering it. The pool is credited up front and
// rolled back in the completion callback if the token transfer fails.
func (k *Keeper) AddLiquidity(token string, maxTokenAmount, minShares math.Int) error {
	caller := k.host.Predecessor()
	nearIn := k.host.AttachedDeposit()
	if !nearIn.IsPositive() || !maxTokenAmount.IsPositive() {
		return types.ErrZeroAmount
	}

	pool, err := k.GetPool(token)
	if err != nil {
		return err
	}

	var tokenIn, sharesMinted math.Int
	firstDeposit := pool.TotalShares.IsZero()
	if firstDeposit {
		// The first deposit seeds the price: the full token allowance is
		// taken and shares equal the native amount.
		tokenIn = maxTokenAmount
		sharesMinted = nearIn
	} else {
		tokenIn, err = MulDiv(nearIn, pool.TokenBal, pool.NearBal)
		if err != nil {
			return err
		}
		tokenIn = tokenIn.AddRaw(1)
		if tokenIn.GT(maxTokenAmount) {
			return types.ErrMaxExceeded.Wrapf("deposit requires %s tokens, max is %s", tokenIn, maxTokenAmount)
		}
		sharesMinted, err = MulDiv(nearIn, pool.TotalShares, pool.NearBal)
		if err != nil {
			return err
		}
		if !sharesMinted.IsPositive() {
			return types.ErrZeroAmount.Wrap("deposit too small to mint shares")
		}
		if sharesMinted.LT(minShares) {
			return types.ErrMinNotMet.Wrapf("deposit mints %s shares, minimum is %s", sharesMinted, minShares)
		}
	}

	if pool.NearBal, err = CheckedAdd(pool.NearBal, nearIn); err != nil {
		return err
	}
	if pool.TokenBal, err = CheckedAdd(pool.TokenBal, tokenIn); err != nil {
		return err
	}
	if pool.TotalShares, err = CheckedAdd(pool.TotalShares, sharesMinted); err != nil {
		return err
	}
	shares, err := k.getShare(token, caller)
	if err != nil {
		return err
	}
	if shares, err = CheckedAdd(shares, sharesMinted); err != nil {
		return err
	}
	if err := k.SetPool(&pool); err != nil {
		return err
	}
	if err := k.setShare(token, caller, shares); err != nil {
		return err
	}

	pid := k.host.ScheduleTokenTransfer(token, caller, k.host.CurrentAccount(), tokenIn)
	args, err := json.Marshal(addLiquidityCallbackArgs{
		Token:   token,
		Caller:  caller,
		NearIn:  nearIn,
		TokenIn: tokenIn,
		Shares:  sharesMinted,
	})
	if err != nil {
		return err
	}
	k.host.OnComplete(pid, types.MethodAddLiquidityCallback, args)

	k.logger.Info(types.EventTypeAddLiquidity,
		types.AttributeKeyToken, token,
		types.AttributeKeyCaller, caller,
		types.AttributeKeyNear, nearIn.String(),
		types.AttributeKeyAmountIn, tokenIn.String(),
		types.AttributeKeyShares, sharesMinted.String(),
	)
	return nil
}

// WithdrawLiquidity redeems shares for a proportional slice of both
// reserves. Reserves and shares are debited up front; the native leg is
// paid out directly and the token leg through the reserve-token
// contract, with the completion callback re-crediting the pool if that
// transfer fails.
func (k *Keeper) WithdrawLiquidity(token string, shares, minNear, minTokens math.Int) error {
	caller := k.host.Predecessor()
	if !shares.IsPositive() || !minNear.IsPositive() || !minTokens.IsPositive() {
		return types.ErrZeroAmount
	}

	pool, err := k.GetPool(token)
	if err != nil {
		return err
	}
	owned, err := k.getShare(token, caller)
	if err != nil {
		return err
	}
	if owned.LT(shares) {
		return types.ErrInsufficientShares.Wrapf("redeeming %s of %s shares", shares, owned)
	}

	nearOut, err := MulDiv(shares, pool.NearBal, pool.TotalShares)
	if err != nil {
		return err
	}
	tokenOut, err := MulDiv(shares, pool.TokenBal, pool.TotalShares)
	if err != nil {
		return err
	}
	if nearOut.LT(minNear) || tokenOut.LT(minTokens) {
		return types.ErrMinNotMet.Wrapf("redeeming %s shares yields (%s, %s), minimum is (%s, %s)",
			shares, nearOut, tokenOut, minNear, minTokens)
	}

	if pool.NearBal, err = CheckedSub(pool.NearBal, nearOut); err != nil {
		return err
	}
	if pool.TokenBal, err = CheckedSub(pool.TokenBal, tokenOut); err != nil {
		return err
	}
	if pool.TotalShares, err = CheckedSub(pool.TotalShares, shares); err != nil {
		return err
	}
	if err := k.SetPool(&pool); err != nil {
		return err
	}
	if err := k.setShare(token, caller, owned.Sub(shares)); err != nil {
		return err
	}

	k.host.ScheduleNativeTransfer(caller, nearOut)
	pid := k.host.ScheduleTokenTransfer(token, k.host.CurrentAccount(), caller, tokenOut)
	args, err := json.Marshal(withdrawCallbackArgs{
		Token:     token,
		Recipient: caller,
		TokenOut:  tokenOut,
	})
	if err != nil {
		return err
	}
	k.host.OnComplete(pid, types.MethodWithdrawLiquidityCallback, args)

	k.metrics.LiquidityRemoved.Inc()
	k.logger.Info(types.EventTypeWithdrawLiquidity,
		types.AttributeKeyToken, token,
		types.AttributeKeyCaller, caller,
		types.AttributeKeyNear, nearOut.String(),
		types.AttributeKeyAmountOut, tokenOut.String(),
		types.AttributeKeyShares, shares.String(),
	)
	return nil
}
