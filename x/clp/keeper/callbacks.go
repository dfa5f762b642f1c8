package keeper

import (
	"encoding/json"

	"cosmossdk.io/math"

	"github.com/nearswap/nearswap/x/clp/types"
)

// Completion callbacks observe the outcome of a scheduled transfer and
// either finalize or compensate the eager state change that preceded
// it. Only the contract account itself may invoke them, routed through
// HandleCallback.

type addLiquidityCallbackArgs struct {
	Token   string   `json:"token"`
	Caller  string   `json:"caller"`
	NearIn  math.Int `json:"near_in"`
	TokenIn math.Int `json:"token_in"`
	Shares  math.Int `json:"shares"`
}

type withdrawCallbackArgs struct {
	Token     string   `json:"token"`
	Recipient string   `json:"recipient"`
	TokenOut  math.Int `json:"token_out"`
}

type swapInputCallbackArgs struct {
	Id uint64 `json:"id"`
}

type swapOutputCallbackArgs struct {
	Token     string   `json:"token"`
	Payer     string   `json:"payer"`
	AmountIn  math.Int `json:"amount_in"`
	AmountOut math.Int `json:"amount_out"`
}

// HandleCallback dispatches a resolved host callback by method name.
func (k *Keeper) HandleCallback(method string, args []byte) error {
	switch method {
	case types.MethodAddLiquidityCallback:
		var a addLiquidityCallbackArgs
		if err := json.Unmarshal(args, &a); err != nil {
			return err
		}
		return k.addLiquidityTransferCallback(a)
	case types.MethodWithdrawLiquidityCallback:
		var a withdrawCallbackArgs
		if err := json.Unmarshal(args, &a); err != nil {
			return err
		}
		return k.withdrawLiquidityTransferCallback(a)
	case types.MethodSwapInputCallback:
		var a swapInputCallbackArgs
		if err := json.Unmarshal(args, &a); err != nil {
			return err
		}
		return k.swapInputTransferCallback(a)
	case types.MethodSwapOutputCallback:
		var a swapOutputCallbackArgs
		if err := json.Unmarshal(args, &a); err != nil {
			return err
		}
		return k.swapOutputTransferCallback(a)
	default:
		return types.ErrUnknownCallback.Wrap(method)
	}
}

// assertSelfCallback rejects callback invocations not originating from
// the contract account itself.
func (k *Keeper) assertSelfCallback() error {
	if k.host.Predecessor() != k.host.CurrentAccount() {
		return types.ErrUnauthorized.Wrapf("callback caller %s is not the contract", k.host.Predecessor())
	}
	return nil
}

// addLiquidityTransferCallback finalizes a deposit or, when the inbound
// token transfer failed, undoes the eager credit and refunds the native
// deposit. If the caller redeemed part of the minted shares before the
// failure arrived, only the remaining shares are undone and the refund
// scales pro-rata; the already-redeemed slice was paid out by the
// withdrawal.
func (k *Keeper) addLiquidityTransferCallback(a addLiquidityCallbackArgs) error {
	if err := k.assertSelfCallback(); err != nil {
		return err
	}
	if k.host.LastOutcomeSuccess() {
		k.metrics.LiquidityAdded.Inc()
		return nil
	}

	pool, err := k.GetPool(a.Token)
	if err != nil {
		return err
	}
	shares, err := k.getShare(a.Token, a.Caller)
	if err != nil {
		return err
	}
	undoShares, nearBack, tokenBack := a.Shares, a.NearIn, a.TokenIn
	if shares.LT(undoShares) {
		undoShares = shares
		if nearBack, err = MulDiv(undoShares, a.NearIn, a.Shares); err != nil {
			return err
		}
		if tokenBack, err = MulDiv(undoShares, a.TokenIn, a.Shares); err != nil {
			return err
		}
	}
	if pool.NearBal, err = CheckedSub(pool.NearBal, nearBack); err != nil {
		return err
	}
	if pool.TokenBal, err = CheckedSub(pool.TokenBal, tokenBack); err != nil {
		return err
	}
	if pool.TotalShares, err = CheckedSub(pool.TotalShares, undoShares); err != nil {
		return err
	}
	if err := k.SetPool(&pool); err != nil {
		return err
	}
	if err := k.setShare(a.Token, a.Caller, shares.Sub(undoShares)); err != nil {
		return err
	}
	if nearBack.IsPositive() {
		k.host.ScheduleNativeTransfer(a.Caller, nearBack)
	}

	k.metrics.TransferRollbacks.Inc()
	k.logger.Error(types.EventTypeRollback,
		"op", types.EventTypeAddLiquidity,
		types.AttributeKeyToken, a.Token,
		types.AttributeKeyCaller, a.Caller,
		types.AttributeKeyNear, nearBack.String(),
		types.AttributeKeyShares, undoShares.String(),
	)
	return nil
}

// withdrawLiquidityTransferCallback re-credits the pool when the token
// leg of a withdrawal failed. The returned tokens mint shares back at
// the current rate so remaining holders are not diluted; if the pool
// was fully drained there is no share supply to rejoin and the transfer
// is retried instead.
func (k *Keeper) withdrawLiquidityTransferCallback(a withdrawCallbackArgs) error {
	if err := k.assertSelfCallback(); err != nil {
		return err
	}
	if k.host.LastOutcomeSuccess() {
		return nil
	}

	pool, err := k.GetPool(a.Token)
	if err != nil {
		return err
	}
	if pool.TotalShares.IsZero() {
		k.logger.Error(types.EventTypeRollback,
			"op", types.EventTypeWithdrawLiquidity,
			types.AttributeKeyToken, a.Token,
			types.AttributeKeyRecipient, a.Recipient,
			"retry", true,
		)
		k.host.ScheduleTokenTransfer(a.Token, k.host.CurrentAccount(), a.Recipient, a.TokenOut)
		return nil
	}

	sharesBack, err := MulDiv(a.TokenOut, pool.TotalShares, pool.TokenBal)
	if err != nil {
		return err
	}
	if pool.TokenBal, err = CheckedAdd(pool.TokenBal, a.TokenOut); err != nil {
		return err
	}
	if pool.TotalShares, err = CheckedAdd(pool.TotalShares, sharesBack); err != nil {
		return err
	}
	shares, err := k.getShare(a.Token, a.Recipient)
	if err != nil {
		return err
	}
	if shares, err = CheckedAdd(shares, sharesBack); err != nil {
		return err
	}
	if err := k.SetPool(&pool); err != nil {
		return err
	}
	if err := k.setShare(a.Token, a.Recipient, shares); err != nil {
		return err
	}

	k.metrics.TransferRollbacks.Inc()
	k.logger.Error(types.EventTypeRollback,
		"op", types.EventTypeWithdrawLiquidity,
		types.AttributeKeyToken, a.Token,
		types.AttributeKeyRecipient, a.Recipient,
		types.AttributeKeyShares, sharesBack.String(),
	)
	return nil
}

// swapInputTransferCallback commits a pending token-originating swap
// once its inbound transfer resolved. A failed transfer abandons the
// quote; a successful one re-prices against the reserves of this
// moment, pays out at most the quoted amount, and abandons when the
// repriced output falls below the caller's bound.
func (k *Keeper) swapInputTransferCallback(a swapInputCallbackArgs) error {
	if err := k.assertSelfCallback(); err != nil {
		return err
	}
	ps, err := k.GetPendingSwap(a.Id)
	if err != nil {
		return err
	}
	if err := k.deletePendingSwap(a.Id); err != nil {
		return err
	}

	if !k.host.LastOutcomeSuccess() {
		// The inbound transfer_from failed, so no tokens moved.
		k.logger.Error(types.EventTypeSwapAbandoned,
			types.AttributeKeyPendingID, ps.Id,
			types.AttributeKeyCaller, ps.Payer,
		)
		return nil
	}
	if ps.TwoHop() {
		return k.commitTokensSwap(&ps)
	}
	return k.commitReserveSwap(&ps)
}

// commitReserveSwap applies a resolved token-for-native swap. The
// payout never exceeds what the constant product permits against
// current reserves, so the product cannot shrink even when other calls
// moved the pool between quote and commit.
func (k *Keeper) commitReserveSwap(ps *types.PendingSwap) error {
	pool, err := k.GetPool(ps.TokenIn)
	if err != nil {
		return err
	}
	params, err := k.GetParams()
	if err != nil {
		return err
	}
	payout, err := CalcOutAmount(ps.AmountIn, pool.TokenBal, pool.NearBal, params)
	if err != nil {
		return k.abandonPendingSwap(ps)
	}
	if payout.GT(ps.AmountOut) {
		payout = ps.AmountOut
	}
	if payout.LT(ps.MinOut) {
		return k.abandonPendingSwap(ps)
	}

	if pool.TokenBal, err = CheckedAdd(pool.TokenBal, ps.AmountIn); err != nil {
		return err
	}
	pool.NearBal = pool.NearBal.Sub(payout)
	if err := k.SetPool(&pool); err != nil {
		return err
	}
	k.host.ScheduleNativeTransfer(ps.Recipient, payout)

	k.metrics.SwapsTotal.WithLabelValues(directionTokenToNear).Inc()
	k.metrics.SwapVolume.WithLabelValues(directionTokenToNear).Add(amountFloat(ps.AmountIn))
	k.logger.Info(types.EventTypeSwapCommitted,
		types.AttributeKeyPendingID, ps.Id,
		types.AttributeKeyToken, ps.TokenIn,
		types.AttributeKeyRecipient, ps.Recipient,
		types.AttributeKeyAmountIn, ps.AmountIn.String(),
		types.AttributeKeyAmountOut, payout.String(),
	)
	return nil
}

// commitTokensSwap applies a resolved two-hop swap across both pools,
// repricing each leg so that neither pool's product shrinks.
func (k *Keeper) commitTokensSwap(ps *types.PendingSwap) error {
	from, err := k.GetPool(ps.TokenIn)
	if err != nil {
		return err
	}
	to, err := k.GetPool(ps.TokenOut)
	if err != nil {
		return err
	}
	params, err := k.GetParams()
	if err != nil {
		return err
	}
	nearMid, err := CalcOutAmount(ps.AmountIn, from.TokenBal, from.NearBal, params)
	if err != nil {
		return k.abandonPendingSwap(ps)
	}
	if nearMid.GT(ps.NearMid) {
		nearMid = ps.NearMid
	}
	payout, err := CalcOutAmount(nearMid, to.NearBal, to.TokenBal, params)
	if err != nil {
		return k.abandonPendingSwap(ps)
	}
	if payout.GT(ps.AmountOut) {
		payout = ps.AmountOut
	}
	if payout.LT(ps.MinOut) {
		return k.abandonPendingSwap(ps)
	}

	if from.TokenBal, err = CheckedAdd(from.TokenBal, ps.AmountIn); err != nil {
		return err
	}
	from.NearBal = from.NearBal.Sub(nearMid)
	if to.NearBal, err = CheckedAdd(to.NearBal, nearMid); err != nil {
		return err
	}
	to.TokenBal = to.TokenBal.Sub(payout)
	if err := k.SetPool(&from); err != nil {
		return err
	}
	if err := k.SetPool(&to); err != nil {
		return err
	}
	k.host.ScheduleTokenTransfer(ps.TokenOut, k.host.CurrentAccount(), ps.Recipient, payout)

	k.metrics.SwapsTotal.WithLabelValues(directionTokenToToken).Inc()
	k.metrics.SwapVolume.WithLabelValues(directionTokenToToken).Add(amountFloat(ps.AmountIn))
	k.logger.Info(types.EventTypeSwapCommitted,
		types.AttributeKeyPendingID, ps.Id,
		types.AttributeKeyTokenFrom, ps.TokenIn,
		types.AttributeKeyTokenTo, ps.TokenOut,
		types.AttributeKeyRecipient, ps.Recipient,
		types.AttributeKeyAmountIn, ps.AmountIn.String(),
		types.AttributeKeyAmountOut, payout.String(),
	)
	return nil
}

// abandonPendingSwap returns the already-received input tokens to the
// payer when a quote can no longer be honored.
func (k *Keeper) abandonPendingSwap(ps *types.PendingSwap) error {
	k.host.ScheduleTokenTransfer(ps.TokenIn, k.host.CurrentAccount(), ps.Payer, ps.AmountIn)
	k.metrics.TransferRollbacks.Inc()
	k.logger.Error(types.EventTypeSwapAbandoned,
		types.AttributeKeyPendingID, ps.Id,
		types.AttributeKeyCaller, ps.Payer,
		types.AttributeKeyAmountIn, ps.AmountIn.String(),
		"reason", "reserves moved below the quoted bound",
	)
	return nil
}

// swapOutputTransferCallback reverts a native-originating swap whose
// outbound token transfer failed, returning the native input to the
// payer.
func (k *Keeper) swapOutputTransferCallback(a swapOutputCallbackArgs) error {
	if err := k.assertSelfCallback(); err != nil {
		return err
	}
	if k.host.LastOutcomeSuccess() {
		return nil
	}

	pool, err := k.GetPool(a.Token)
	if err != nil {
		return err
	}
	if pool.NearBal, err = CheckedSub(pool.NearBal, a.AmountIn); err != nil {
		return err
	}
	if pool.TokenBal, err = CheckedAdd(pool.TokenBal, a.AmountOut); err != nil {
		return err
	}
	if err := k.SetPool(&pool); err != nil {
		return err
	}
	k.host.ScheduleNativeTransfer(a.Payer, a.AmountIn)

	k.metrics.TransferRollbacks.Inc()
	k.logger.Error(types.EventTypeRollback,
		"op", types.EventTypeSwap,
		types.AttributeKeyToken, a.Token,
		types.AttributeKeyCaller, a.Payer,
		types.AttributeKeyNear, a.AmountIn.String(),
	)
	return nil
}
