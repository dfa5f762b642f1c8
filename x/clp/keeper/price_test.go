package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/nearswap/nearswap/testutil/keeper"
	"github.com/nearswap/nearswap/x/clp/types"
)

func TestPriceViews(t *testing.T) {
	k, h := keepertest.ClpKeeper(t)
	seedPool(t, k, h, tokenA, 3000, 500)

	out, err := k.PriceNearToTokenIn(tokenA, math.NewInt(100))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(16), out)

	in, err := k.PriceNearToTokenOut(tokenA, math.NewInt(50))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(335), in)

	out, err = k.PriceTokenToNearIn(tokenA, math.NewInt(100))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(498), out)

	in, err = k.PriceTokenToNearOut(tokenA, math.NewInt(498))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100), in)
}

func TestPriceViewsDoNotMutate(t *testing.T) {
	k, h := keepertest.ClpKeeper(t)
	seedPool(t, k, h, tokenA, 3000, 500)

	_, err := k.PriceNearToTokenIn(tokenA, math.NewInt(100))
	require.NoError(t, err)
	requirePool(t, k, tokenA, 3000, 500, 3000)
	require.Empty(t, h.Callbacks)
}

func TestPriceTokenToToken(t *testing.T) {
	k, h := keepertest.ClpKeeper(t)
	seedPool(t, k, h, tokenA, 1_000_000, 1_000_000)
	seedPool(t, k, h, tokenB, 1_000_000, 1_000_000)

	out, err := k.PriceTokenToTokenIn(tokenA, math.NewInt(1000), tokenB)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(993), out)

	in, err := k.PriceTokenToTokenOut(tokenA, tokenB, math.NewInt(993))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1001), in)

	_, err = k.PriceTokenToTokenIn(tokenA, math.NewInt(1000), tokenA)
	require.ErrorIs(t, err, types.ErrSameToken)
}

func TestPriceRoundTripNeverProfits(t *testing.T) {
	k, h := keepertest.ClpKeeper(t)
	seedPool(t, k, h, tokenA, 3000, 500)

	// Swapping out and immediately back can never return more than the
	// original input.
	for _, near := range []int64{10, 100, 1000, 2500} {
		tokens, err := k.PriceNearToTokenIn(tokenA, math.NewInt(near))
		require.NoError(t, err)
		if !tokens.IsPositive() {
			continue
		}
		back, err := k.PriceTokenToNearIn(tokenA, tokens)
		require.NoError(t, err)
		require.True(t, back.LTE(math.NewInt(near)), "near %d -> %s -> %s", near, tokens, back)
	}
}
