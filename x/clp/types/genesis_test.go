package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/nearswap/nearswap/x/clp/types"
)

func validGenesis() *types.GenesisState {
	gs := types.DefaultGenesis("owner.near")
	gs.Pools = []types.PoolRecord{{
		Pool: types.Pool{
			Token:       "token-a.near",
			NearBal:     math.NewInt(3000),
			TokenBal:    math.NewInt(500),
			TotalShares: math.NewInt(3000),
		},
		Shares: []types.ShareRecord{
			{Account: "alice.near", Shares: math.NewInt(2000)},
			{Account: "bob.near", Shares: math.NewInt(1000)},
		},
	}}
	return gs
}

func TestGenesisValidate(t *testing.T) {
	require.NoError(t, validGenesis().Validate())
	require.NoError(t, types.DefaultGenesis("owner.near").Validate())
}

func TestGenesisValidateDuplicatePool(t *testing.T) {
	gs := validGenesis()
	gs.Pools = append(gs.Pools, gs.Pools[0])
	require.ErrorContains(t, gs.Validate(), "duplicate pool")
}

func TestGenesisValidateShareMismatch(t *testing.T) {
	gs := validGenesis()
	gs.Pools[0].Shares[0].Shares = math.NewInt(1999)
	require.ErrorContains(t, gs.Validate(), "share sum")
}

func TestGenesisValidatePartialPool(t *testing.T) {
	gs := validGenesis()
	gs.Pools[0].Pool.TokenBal = math.ZeroInt()
	require.ErrorContains(t, gs.Validate(), "partially seeded")
}

func TestGenesisValidateBadOwner(t *testing.T) {
	gs := validGenesis()
	gs.Registry.Owner = "Bad"
	require.ErrorIs(t, gs.Validate(), types.ErrInvalidAccount)
}
