package host_test

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/stretchr/testify/require"

	"github.com/nearswap/nearswap/x/clp/host"
	"github.com/nearswap/nearswap/x/clp/keeper"
)

func TestLocalHostFlushesCallbacks(t *testing.T) {
	h := host.NewLocal("nearswap.near", log.NewNopLogger())
	k := keeper.NewKeeper(dbm.NewMemDB(), h, log.NewNopLogger())
	h.Bind(k.HandleCallback)

	h.SetCaller("alice.near")
	require.NoError(t, k.InitRegistry("alice.near"))
	require.NoError(t, k.CreatePool("token-a.near"))

	h.SetDeposit(math.NewInt(3000))
	require.NoError(t, k.AddLiquidity("token-a.near", math.NewInt(500), math.NewInt(3000)))
	require.NoError(t, h.Flush())

	// The optimistic host resolves transfers as succeeded, so the eager
	// credit stands after the flush.
	pool, err := k.GetPool("token-a.near")
	require.NoError(t, err)
	require.Equal(t, math.NewInt(3000), pool.NearBal)
	require.Equal(t, math.NewInt(500), pool.TokenBal)

	// The caller identity is restored after the flush.
	require.Equal(t, "alice.near", h.Predecessor())
}
