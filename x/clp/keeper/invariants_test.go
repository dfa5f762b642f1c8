package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/nearswap/nearswap/testutil/keeper"
	"github.com/nearswap/nearswap/x/clp/keeper"
)

func TestInvariantsHold(t *testing.T) {
	k, h := keepertest.ClpKeeper(t)
	seedPool(t, k, h, tokenA, 3000, 500)
	seedPool(t, k, h, tokenB, 1_000_000, 1_000_000)

	// Mix of operations that must leave the ledgers consistent.
	h.SetCaller(bob)
	h.SetDeposit(math.NewInt(300))
	require.NoError(t, k.AddLiquidity(tokenA, math.NewInt(51), math.NewInt(300)))
	require.NoError(t, h.ResolveNext(true, k.HandleCallback))

	h.SetCaller(alice)
	h.SetDeposit(math.ZeroInt())
	require.NoError(t, k.WithdrawLiquidity(tokenA, math.NewInt(1000), math.NewInt(1), math.NewInt(1)))
	require.NoError(t, h.ResolveNext(true, k.HandleCallback))

	msg, broken := keeper.AllInvariants(k)
	require.False(t, broken, msg)
}

func TestShareSupplyInvariantDetectsDrift(t *testing.T) {
	k, h := keepertest.ClpKeeper(t)
	seedPool(t, k, h, tokenA, 3000, 500)

	pool, err := k.GetPool(tokenA)
	require.NoError(t, err)
	pool.TotalShares = pool.TotalShares.AddRaw(1)
	require.NoError(t, k.SetPool(&pool))

	msg, broken := keeper.ShareSupplyInvariant(k)
	require.True(t, broken)
	require.Contains(t, msg, tokenA)
}

func TestPoolStateInvariantDetectsPartialSeed(t *testing.T) {
	k, h := keepertest.ClpKeeper(t)

	h.SetCaller(alice)
	require.NoError(t, k.CreatePool(tokenA))
	pool, err := k.GetPool(tokenA)
	require.NoError(t, err)
	pool.NearBal = math.NewInt(10)
	require.NoError(t, k.SetPool(&pool))

	msg, broken := keeper.PoolStateInvariant(k)
	require.True(t, broken)
	require.Contains(t, msg, "partially seeded")
}
