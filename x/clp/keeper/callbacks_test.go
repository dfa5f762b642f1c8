package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/nearswap/nearswap/testutil/keeper"
	"github.com/nearswap/nearswap/x/clp/types"
)

func TestHandleCallbackUnknownMethod(t *testing.T) {
	k, h := keepertest.ClpKeeper(t)

	h.SetCaller(keepertest.ContractAccount)
	err := k.HandleCallback("no_such_callback", []byte(`{}`))
	require.ErrorIs(t, err, types.ErrUnknownCallback)
}

func TestCallbackRejectsExternalCaller(t *testing.T) {
	k, h := keepertest.ClpKeeper(t)
	seedPool(t, k, h, tokenA, 3000, 500)

	// An attacker invoking a completion callback directly is rejected
	// before any state is touched.
	h.SetCaller(alice)
	for _, method := range []string{
		types.MethodAddLiquidityCallback,
		types.MethodWithdrawLiquidityCallback,
		types.MethodSwapInputCallback,
		types.MethodSwapOutputCallback,
	} {
		err := k.HandleCallback(method, []byte(`{}`))
		require.ErrorIs(t, err, types.ErrUnauthorized, method)
	}
	requirePool(t, k, tokenA, 3000, 500, 3000)
}

func TestSwapInputCallbackMissingPending(t *testing.T) {
	k, h := keepertest.ClpKeeper(t)

	h.SetCaller(keepertest.ContractAccount)
	err := k.HandleCallback(types.MethodSwapInputCallback, []byte(`{"id":42}`))
	require.ErrorIs(t, err, types.ErrPendingNotFound)
}

func TestCallbacksResolveInOrder(t *testing.T) {
	k, h := keepertest.ClpKeeper(t)
	seedPool(t, k, h, tokenA, 3000, 500)

	// Two deposits in flight resolve independently: the first fails and
	// rolls back, the second commits.
	h.SetCaller(bob)
	h.SetDeposit(math.NewInt(300))
	require.NoError(t, k.AddLiquidity(tokenA, math.NewInt(51), math.NewInt(300)))
	requirePool(t, k, tokenA, 3300, 551, 3300)

	h.SetCaller("carol.near")
	h.SetDeposit(math.NewInt(330))
	require.NoError(t, k.AddLiquidity(tokenA, math.NewInt(56), math.NewInt(330)))
	requirePool(t, k, tokenA, 3630, 607, 3630)

	require.NoError(t, h.ResolveNext(false, k.HandleCallback))
	require.NoError(t, h.ResolveNext(true, k.HandleCallback))

	requirePool(t, k, tokenA, 3330, 556, 3330)
	shares, err := k.SharesBalanceOf(tokenA, bob)
	require.NoError(t, err)
	require.True(t, shares.IsZero())
	shares, err = k.SharesBalanceOf(tokenA, "carol.near")
	require.NoError(t, err)
	require.Equal(t, math.NewInt(330), shares)
}
