package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/nearswap/nearswap/testutil/keeper"
	"github.com/nearswap/nearswap/x/clp/types"
)

func TestCreatePool(t *testing.T) {
	k, h := keepertest.ClpKeeper(t)

	h.SetCaller(alice)
	require.NoError(t, k.CreatePool(tokenA))
	requirePool(t, k, tokenA, 0, 0, 0)
}

func TestCreatePoolTwice(t *testing.T) {
	k, h := keepertest.ClpKeeper(t)

	h.SetCaller(alice)
	require.NoError(t, k.CreatePool(tokenA))
	require.ErrorIs(t, k.CreatePool(tokenA), types.ErrPoolExists)
}

func TestCreatePoolInvalidToken(t *testing.T) {
	k, _ := keepertest.ClpKeeper(t)
	require.ErrorIs(t, k.CreatePool("UPPER.near"), types.ErrInvalidAccount)
}

func TestGetPoolNotFound(t *testing.T) {
	k, _ := keepertest.ClpKeeper(t)
	_, err := k.GetPool(tokenA)
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

func TestPoolInfo(t *testing.T) {
	k, h := keepertest.ClpKeeper(t)
	seedPool(t, k, h, tokenA, 3000, 500)

	info, err := k.PoolInfo(tokenA)
	require.NoError(t, err)
	require.Equal(t, "(3000, 500, 3000)", info.String())

	// Missing pools yield nil rather than an error.
	info, err = k.PoolInfo(tokenB)
	require.NoError(t, err)
	require.Nil(t, info)
}

func TestListPools(t *testing.T) {
	k, h := keepertest.ClpKeeper(t)

	h.SetCaller(alice)
	require.NoError(t, k.CreatePool(tokenB))
	require.NoError(t, k.CreatePool(tokenA))

	tokens, err := k.ListPools()
	require.NoError(t, err)
	// Store-key order, not insertion order.
	require.Equal(t, []string{tokenA, tokenB}, tokens)
}

func TestSharesBalanceOf(t *testing.T) {
	k, h := keepertest.ClpKeeper(t)
	seedPool(t, k, h, tokenA, 3000, 500)

	shares, err := k.SharesBalanceOf(tokenA, alice)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(3000), shares)

	// Accounts without an entry hold zero shares.
	shares, err = k.SharesBalanceOf(tokenA, bob)
	require.NoError(t, err)
	require.True(t, shares.IsZero())

	_, err = k.SharesBalanceOf(tokenB, alice)
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}
