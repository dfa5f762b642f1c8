package keeper

import (
	"encoding/json"

	"cosmossdk.io/math"

	"github.com/nearswap/nearswap/x/clp/types"
)

// Swap entry points come in pairs: the base form pays out to the
// caller, the Xfr form to an explicit recipient. Swaps spending the
// attached native deposit mutate the pool up front and revert in the
// output callback on failure; swaps spending reserve tokens record a
// pending swap and commit only once the inbound transfer resolves.

// SwapNearToReserveExactIn swaps the attached native deposit for at
// least minTokens reserve tokens, paid to the caller. Returns the
// granted amount.
func (k *Keeper) SwapNearToReserveExactIn(token string, minTokens math.Int) (math.Int, error) {
	return k.swapNearExactIn(token, k.host.Predecessor(), minTokens)
}

// SwapNearToReserveExactInXfr is SwapNearToReserveExactIn paying out to
// recipient.
func (k *Keeper) SwapNearToReserveExactInXfr(token string, minTokens math.Int, recipient string) (math.Int, error) {
	return k.swapNearExactIn(token, recipient, minTokens)
}

// SwapNearToReserveExactOut swaps native for exactly tokensOut reserve
// tokens, paid to the caller. The attached deposit caps the spend and
// any surplus is refunded. Returns the native amount charged.
func (k *Keeper) SwapNearToReserveExactOut(token string, tokensOut math.Int) (math.Int, error) {
	return k.swapNearExactOut(token, k.host.Predecessor(), tokensOut)
}

// SwapNearToReserveExactOutXfr is SwapNearToReserveExactOut paying out
// to recipient.
func (k *Keeper) SwapNearToReserveExactOutXfr(token string, tokensOut math.Int, recipient string) (math.Int, error) {
	return k.swapNearExactOut(token, recipient, tokensOut)
}

// SwapReserveToNearExactIn swaps tokensIn reserve tokens for at least
// minNear native, paid to the caller. The caller must have granted the
// contract an allowance covering tokensIn. Returns the quoted native
// amount; the pool commits when the inbound transfer resolves.
func (k *Keeper) SwapReserveToNearExactIn(token string, tokensIn, minNear math.Int) (math.Int, error) {
	return k.swapReserveExactIn(token, k.host.Predecessor(), tokensIn, minNear)
}

// SwapReserveToNearExactInXfr is SwapReserveToNearExactIn paying out to
// recipient.
func (k *Keeper) SwapReserveToNearExactInXfr(token string, tokensIn, minNear math.Int, recipient string) (math.Int, error) {
	return k.swapReserveExactIn(token, recipient, tokensIn, minNear)
}

// SwapReserveToNearExactOut swaps reserve tokens for exactly nearOut
// native, paid to the caller, spending at most maxTokens. Returns the
// token amount charged.
func (k *Keeper) SwapReserveToNearExactOut(token string, nearOut, maxTokens math.Int) (math.Int, error) {
	return k.swapReserveExactOut(token, k.host.Predecessor(), nearOut, maxTokens)
}

// SwapReserveToNearExactOutXfr is SwapReserveToNearExactOut paying out
// to recipient.
func (k *Keeper) SwapReserveToNearExactOutXfr(token string, nearOut, maxTokens math.Int, recipient string) (math.Int, error) {
	return k.swapReserveExactOut(token, recipient, nearOut, maxTokens)
}

// SwapTokensExactIn swaps tokensIn units of tokenFrom for at least
// minTokensTo units of tokenTo, routing through both pools' native
// reserves. Returns the quoted output amount.
func (k *Keeper) SwapTokensExactIn(tokenFrom string, tokensIn math.Int, tokenTo string, minTokensTo math.Int) (math.Int, error) {
	return k.swapTokensExactIn(tokenFrom, tokenTo, k.host.Predecessor(), tokensIn, minTokensTo)
}

// SwapTokensExactInXfr is SwapTokensExactIn paying out to recipient.
func (k *Keeper) SwapTokensExactInXfr(tokenFrom string, tokensIn math.Int, tokenTo string, minTokensTo math.Int, recipient string) (math.Int, error) {
	return k.swapTokensExactIn(tokenFrom, tokenTo, recipient, tokensIn, minTokensTo)
}

// SwapTokensExactOut swaps tokenFrom for exactly tokensTo units of
// tokenTo, spending at most maxTokensIn. Returns the input amount
// charged.
func (k *Keeper) SwapTokensExactOut(tokenFrom string, maxTokensIn math.Int, tokenTo string, tokensTo math.Int) (math.Int, error) {
	return k.swapTokensExactOut(tokenFrom, tokenTo, k.host.Predecessor(), tokensTo, maxTokensIn)
}

// SwapTokensExactOutXfr is SwapTokensExactOut paying out to recipient.
func (k *Keeper) SwapTokensExactOutXfr(tokenFrom string, maxTokensIn math.Int, tokenTo string, tokensTo math.Int, recipient string) (math.Int, error) {
	return k.swapTokensExactOut(tokenFrom, tokenTo, recipient, tokensTo, maxTokensIn)
}

// swapNearExactIn commits a native-for-token swap eagerly and schedules
// the token payout with a reverting callback.
func (k *Keeper) swapNearExactIn(token, recipient string, minTokens math.Int) (math.Int, error) {
	payer := k.host.Predecessor()
	nearIn := k.host.AttachedDeposit()
	if !nearIn.IsPositive() || !minTokens.IsPositive() {
		return math.Int{}, types.ErrZeroAmount
	}
	if err := types.ValidateAccountID(recipient, "recipient"); err != nil {
		return math.Int{}, err
	}
	pool, err := k.GetPool(token)
	if err != nil {
		return math.Int{}, err
	}
	params, err := k.GetParams()
	if err != nil {
		return math.Int{}, err
	}
	out, err := CalcOutAmount(nearIn, pool.NearBal, pool.TokenBal, params)
	if err != nil {
		return math.Int{}, err
	}
	if out.LT(minTokens) {
		return math.Int{}, types.ErrMinNotMet.Wrapf("swap yields %s tokens, minimum is %s", out, minTokens)
	}
	if err := k.commitNearSwap(&pool, payer, recipient, nearIn, out); err != nil {
		return math.Int{}, err
	}
	return out, nil
}

// swapNearExactOut charges exactly the required native input, refunds
// any surplus deposit and schedules the token payout.
func (k *Keeper) swapNearExactOut(token, recipient string, tokensOut math.Int) (math.Int, error) {
	payer := k.host.Predecessor()
	attached := k.host.AttachedDeposit()
	if !attached.IsPositive() || !tokensOut.IsPositive() {
		return math.Int{}, types.ErrZeroAmount
	}
	if err := types.ValidateAccountID(recipient, "recipient"); err != nil {
		return math.Int{}, err
	}
	pool, err := k.GetPool(token)
	if err != nil {
		return math.Int{}, err
	}
	params, err := k.GetParams()
	if err != nil {
		return math.Int{}, err
	}
	nearIn, err := CalcInAmount(tokensOut, pool.TokenBal, pool.NearBal, params)
	if err != nil {
		return math.Int{}, err
	}
	if nearIn.GT(attached) {
		return math.Int{}, types.ErrMaxExceeded.Wrapf("swap requires %s attached, got %s", nearIn, attached)
	}
	if surplus := attached.Sub(nearIn); surplus.IsPositive() {
		k.host.ScheduleNativeTransfer(payer, surplus)
	}
	if err := k.commitNearSwap(&pool, payer, recipient, nearIn, tokensOut); err != nil {
		return math.Int{}, err
	}
	return nearIn, nil
}

// commitNearSwap applies a native-for-token swap to the pool and
// schedules the outbound token transfer guarded by the output callback.
func (k *Keeper) commitNearSwap(pool *types.Pool, payer, recipient string, nearIn, tokensOut math.Int) error {
	var err error
	if pool.NearBal, err = CheckedAdd(pool.NearBal, nearIn); err != nil {
		return err
	}
	if pool.TokenBal, err = CheckedSub(pool.TokenBal, tokensOut); err != nil {
		return err
	}
	if err := k.SetPool(pool); err != nil {
		return err
	}

	pid := k.host.ScheduleTokenTransfer(pool.Token, k.host.CurrentAccount(), recipient, tokensOut)
	args, err := json.Marshal(swapOutputCallbackArgs{
		Token:     pool.Token,
		Payer:     payer,
		AmountIn:  nearIn,
		AmountOut: tokensOut,
	})
	if err != nil {
		return err
	}
	k.host.OnComplete(pid, types.MethodSwapOutputCallback, args)

	k.metrics.SwapsTotal.WithLabelValues(directionNearToToken).Inc()
	k.metrics.SwapVolume.WithLabelValues(directionNearToToken).Add(amountFloat(nearIn))
	k.logger.Info(types.EventTypeSwap,
		types.AttributeKeyToken, pool.Token,
		types.AttributeKeyCaller, payer,
		types.AttributeKeyRecipient, recipient,
		types.AttributeKeyAmountIn, nearIn.String(),
		types.AttributeKeyAmountOut, tokensOut.String(),
	)
	return nil
}

// swapReserveExactIn quotes a token-for-native swap and defers the
// commit behind the inbound token transfer.
func (k *Keeper) swapReserveExactIn(token, recipient string, tokensIn, minNear math.Int) (math.Int, error) {
	if !tokensIn.IsPositive() || !minNear.IsPositive() {
		return math.Int{}, types.ErrZeroAmount
	}
	pool, err := k.GetPool(token)
	if err != nil {
		return math.Int{}, err
	}
	params, err := k.GetParams()
	if err != nil {
		return math.Int{}, err
	}
	nearOut, err := CalcOutAmount(tokensIn, pool.TokenBal, pool.NearBal, params)
	if err != nil {
		return math.Int{}, err
	}
	if nearOut.LT(minNear) {
		return math.Int{}, types.ErrMinNotMet.Wrapf("swap yields %s native, minimum is %s", nearOut, minNear)
	}
	if err := k.recordPendingSwap(token, "", recipient, tokensIn, nearOut, minNear, math.ZeroInt()); err != nil {
		return math.Int{}, err
	}
	return nearOut, nil
}

// swapReserveExactOut quotes the token input needed for an exact native
// output and defers the commit behind the inbound token transfer.
func (k *Keeper) swapReserveExactOut(token, recipient string, nearOut, maxTokens math.Int) (math.Int, error) {
	if !nearOut.IsPositive() || !maxTokens.IsPositive() {
		return math.Int{}, types.ErrZeroAmount
	}
	pool, err := k.GetPool(token)
	if err != nil {
		return math.Int{}, err
	}
	params, err := k.GetParams()
	if err != nil {
		return math.Int{}, err
	}
	tokensIn, err := CalcInAmount(nearOut, pool.NearBal, pool.TokenBal, params)
	if err != nil {
		return math.Int{}, err
	}
	if tokensIn.GT(maxTokens) {
		return math.Int{}, types.ErrMaxExceeded.Wrapf("swap requires %s tokens, max is %s", tokensIn, maxTokens)
	}
	// An exact-out swap must deliver the full requested amount, so the
	// commit-time bound is the output itself.
	if err := k.recordPendingSwap(token, "", recipient, tokensIn, nearOut, nearOut, math.ZeroInt()); err != nil {
		return math.Int{}, err
	}
	return tokensIn, nil
}

// swapTokensExactIn quotes a two-hop token-for-token swap through the
// native reserves of both pools and defers the commit.
func (k *Keeper) swapTokensExactIn(tokenFrom, tokenTo, recipient string, tokensIn, minTokensTo math.Int) (math.Int, error) {
	if tokenFrom == tokenTo {
		return math.Int{}, types.ErrSameToken
	}
	if !tokensIn.IsPositive() || !minTokensTo.IsPositive() {
		return math.Int{}, types.ErrZeroAmount
	}
	from, err := k.GetPool(tokenFrom)
	if err != nil {
		return math.Int{}, err
	}
	to, err := k.GetPool(tokenTo)
	if err != nil {
		return math.Int{}, err
	}
	params, err := k.GetParams()
	if err != nil {
		return math.Int{}, err
	}
	nearMid, err := CalcOutAmount(tokensIn, from.TokenBal, from.NearBal, params)
	if err != nil {
		return math.Int{}, err
	}
	out, err := CalcOutAmount(nearMid, to.NearBal, to.TokenBal, params)
	if err != nil {
		return math.Int{}, err
	}
	if out.LT(minTokensTo) {
		return math.Int{}, types.ErrMinNotMet.Wrapf("swap yields %s %s, minimum is %s", out, tokenTo, minTokensTo)
	}
	if err := k.recordPendingSwap(tokenFrom, tokenTo, recipient, tokensIn, out, minTokensTo, nearMid); err != nil {
		return math.Int{}, err
	}
	return out, nil
}

// swapTokensExactOut quotes the input for an exact two-hop output,
// pricing the second leg first to find the native bridge amount.
func (k *Keeper) swapTokensExactOut(tokenFrom, tokenTo, recipient string, tokensTo, maxTokensIn math.Int) (math.Int, error) {
	if tokenFrom == tokenTo {
		return math.Int{}, types.ErrSameToken
	}
	if !tokensTo.IsPositive() || !maxTokensIn.IsPositive() {
		return math.Int{}, types.ErrZeroAmount
	}
	from, err := k.GetPool(tokenFrom)
	if err != nil {
		return math.Int{}, err
	}
	to, err := k.GetPool(tokenTo)
	if err != nil {
		return math.Int{}, err
	}
	params, err := k.GetParams()
	if err != nil {
		return math.Int{}, err
	}
	nearMid, err := CalcInAmount(tokensTo, to.TokenBal, to.NearBal, params)
	if err != nil {
		return math.Int{}, err
	}
	tokensIn, err := CalcInAmount(nearMid, from.NearBal, from.TokenBal, params)
	if err != nil {
		return math.Int{}, err
	}
	if tokensIn.GT(maxTokensIn) {
		return math.Int{}, types.ErrMaxExceeded.Wrapf("swap requires %s %s, max is %s", tokensIn, tokenFrom, maxTokensIn)
	}
	if err := k.recordPendingSwap(tokenFrom, tokenTo, recipient, tokensIn, tokensTo, tokensTo, nearMid); err != nil {
		return math.Int{}, err
	}
	return tokensIn, nil
}

// recordPendingSwap persists a quoted token-originating swap and
// schedules its inbound transfer. The pool commits in the input
// callback once the transfer resolves, re-priced against the reserves
// of that moment and bounded below by minOut.
func (k *Keeper) recordPendingSwap(tokenIn, tokenOut, recipient string, amountIn, amountOut, minOut, nearMid math.Int) error {
	if err := types.ValidateAccountID(recipient, "recipient"); err != nil {
		return err
	}
	payer := k.host.Predecessor()
	id, err := k.nextPendingID()
	if err != nil {
		return err
	}
	ps := &types.PendingSwap{
		Id:        id,
		Payer:     payer,
		Recipient: recipient,
		TokenIn:   tokenIn,
		AmountIn:  amountIn,
		TokenOut:  tokenOut,
		AmountOut: amountOut,
		MinOut:    minOut,
		NearMid:   nearMid,
	}
	if err := k.setPendingSwap(ps); err != nil {
		return err
	}

	pid := k.host.ScheduleTokenTransfer(tokenIn, payer, k.host.CurrentAccount(), amountIn)
	args, err := json.Marshal(swapInputCallbackArgs{Id: id})
	if err != nil {
		return err
	}
	k.host.OnComplete(pid, types.MethodSwapInputCallback, args)

	k.logger.Info(types.EventTypeSwapPending,
		types.AttributeKeyPendingID, id,
		types.AttributeKeyTokenFrom, tokenIn,
		types.AttributeKeyTokenTo, tokenOut,
		types.AttributeKeyCaller, payer,
		types.AttributeKeyAmountIn, amountIn.String(),
		types.AttributeKeyAmountOut, amountOut.String(),
	)
	return nil
}
