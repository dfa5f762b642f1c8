package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/nearswap/nearswap/testutil/host"
	keepertest "github.com/nearswap/nearswap/testutil/keeper"
	"github.com/nearswap/nearswap/x/clp/keeper"
	"github.com/nearswap/nearswap/x/clp/types"
)

const (
	tokenA = "token-a.near"
	tokenB = "token-b.near"
	alice  = "alice.near"
	bob    = "bob.near"
)

// seedPool creates a pool and funds it with a first deposit from alice,
// resolving the inbound token transfer.
func seedPool(t *testing.T, k *keeper.Keeper, h *host.Host, token string, near, tokens int64) {
	t.Helper()
	h.SetCaller(alice)
	require.NoError(t, k.CreatePool(token))
	h.SetDeposit(math.NewInt(near))
	require.NoError(t, k.AddLiquidity(token, math.NewInt(tokens), math.NewInt(near)))
	require.NoError(t, h.ResolveNext(true, k.HandleCallback))
	h.SetDeposit(math.ZeroInt())
}

func requirePool(t *testing.T, k *keeper.Keeper, token string, near, tokens, shares int64) {
	t.Helper()
	pool, err := k.GetPool(token)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(near), pool.NearBal, "near balance")
	require.Equal(t, math.NewInt(tokens), pool.TokenBal, "token balance")
	require.Equal(t, math.NewInt(shares), pool.TotalShares, "total shares")
}

func TestInitRegistry(t *testing.T) {
	k, _ := keepertest.ClpKeeper(t)

	reg, err := k.Registry()
	require.NoError(t, err)
	require.Equal(t, keepertest.Owner, reg.Owner)
	require.Equal(t, keepertest.Owner, reg.FeeDst)

	require.ErrorIs(t, k.InitRegistry("other.near"), types.ErrAlreadyInit)
}

func TestSetFeeDst(t *testing.T) {
	k, h := keepertest.ClpKeeper(t)

	h.SetCaller(keepertest.Owner)
	require.NoError(t, k.SetFeeDst("fees.near"))
	feeDst, err := k.FeeDst()
	require.NoError(t, err)
	require.Equal(t, "fees.near", feeDst)

	h.SetCaller(alice)
	require.ErrorIs(t, k.SetFeeDst(alice), types.ErrUnauthorized)
}

func TestChangeOwner(t *testing.T) {
	k, h := keepertest.ClpKeeper(t)

	h.SetCaller(alice)
	require.ErrorIs(t, k.ChangeOwner(alice), types.ErrUnauthorized)

	h.SetCaller(keepertest.Owner)
	require.NoError(t, k.ChangeOwner(alice))
	owner, err := k.Owner()
	require.NoError(t, err)
	require.Equal(t, alice, owner)

	// The previous owner lost its rights.
	require.ErrorIs(t, k.ChangeOwner(keepertest.Owner), types.ErrUnauthorized)
}

func TestChangeOwnerInvalidAccount(t *testing.T) {
	k, h := keepertest.ClpKeeper(t)

	h.SetCaller(keepertest.Owner)
	require.ErrorIs(t, k.ChangeOwner("Bad..Account"), types.ErrInvalidAccount)
}
